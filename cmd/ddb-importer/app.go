package main

import (
	"fmt"
	"os"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/ddb-importer/internal/clients/ddb"
	"github.com/KirkDiggler/ddb-importer/internal/clients/srd"
	"github.com/KirkDiggler/ddb-importer/internal/config"
	"github.com/KirkDiggler/ddb-importer/internal/entities/document"
	"github.com/KirkDiggler/ddb-importer/internal/enrichers"
	"github.com/KirkDiggler/ddb-importer/internal/logger"
	"github.com/KirkDiggler/ddb-importer/internal/orchestrators/encounter"
	"github.com/KirkDiggler/ddb-importer/internal/orchestrators/importer"
	"github.com/KirkDiggler/ddb-importer/internal/parsers/activity"
	"github.com/KirkDiggler/ddb-importer/internal/parsers/feature"
	"github.com/KirkDiggler/ddb-importer/internal/parsers/spell"
	"github.com/KirkDiggler/ddb-importer/internal/pkg/idgen"
	"github.com/KirkDiggler/ddb-importer/internal/redis"
	"github.com/KirkDiggler/ddb-importer/internal/repositories/compendium"
)

// app wires dependencies from configuration. Clients are only built when a
// command needs them so offline commands work without credentials.
type app struct {
	cfg          *config.Config
	spellHints   *enrichers.Enricher
	featureHints *enrichers.Enricher
	builder      *activity.Builder
}

func newApp() (*app, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	logger.Setup(cfg, os.Stderr)

	spellCfg := &enrichers.Config{Base: enrichers.Spells()}
	featureCfg := &enrichers.Config{Base: enrichers.Features()}
	if cfg.Overrides != "" {
		file, err := enrichers.LoadFile(cfg.Overrides)
		if err != nil {
			return nil, fmt.Errorf("failed to load overrides: %w", err)
		}
		spellCfg.Extra = &file.Spells
		featureCfg.Extra = &file.Features
	}

	spellHints, err := enrichers.New(spellCfg)
	if err != nil {
		return nil, err
	}
	featureHints, err := enrichers.New(featureCfg)
	if err != nil {
		return nil, err
	}

	builder, err := activity.NewBuilder(&activity.Config{IDGenerator: idgen.NewRandom()})
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:          cfg,
		spellHints:   spellHints,
		featureHints: featureHints,
		builder:      builder,
	}, nil
}

func (a *app) spellParser(fallback document.ActivityType) (*spell.Parser, error) {
	return spell.NewParser(&spell.Config{
		Hints:              a.spellHints,
		ActivityBuilder:    a.builder,
		AddSpellEffects:    a.cfg.Import.AddSpellEffects,
		PactSpellsPrepared: a.cfg.Import.PactSpellsPrepared,
		FallbackType:       fallback,
	})
}

func (a *app) featureParser() (*feature.Parser, error) {
	return feature.NewParser(&feature.Config{
		Hints:           a.featureHints,
		ActivityBuilder: a.builder,
	})
}

func (a *app) ddbClient() (ddb.Client, error) {
	if err := a.cfg.RequireProxy(); err != nil {
		return nil, err
	}
	return ddb.New(&ddb.Config{
		Endpoint:    a.cfg.DDB.Endpoint,
		Cobalt:      a.cfg.DDB.Cobalt,
		BetaKey:     a.cfg.DDB.BetaKey,
		HTTPTimeout: a.cfg.HTTPTimeout,
		DebugDir:    a.cfg.DDB.DebugDir,
	})
}

func (a *app) srdClient() (srd.Client, error) {
	return srd.New(&srd.Config{
		BaseURL:     a.cfg.SRD.BaseURL,
		HTTPTimeout: a.cfg.HTTPTimeout,
	})
}

func (a *app) compendium() (compendium.Repository, error) {
	client, err := redis.NewClient(a.cfg.Redis.Addr, &redis.Options{
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})
	if err != nil {
		return nil, err
	}
	return compendium.NewRedis(&compendium.RedisConfig{Client: client})
}

func (a *app) importer(source importer.Source, fallback document.ActivityType) (importer.Service, error) {
	cfg := &importer.Config{EventBus: events.NewBus()}

	var err error
	switch source {
	case importer.SourceSRD:
		cfg.SRDClient, err = a.srdClient()
	default:
		cfg.DDBClient, err = a.ddbClient()
	}
	if err != nil {
		return nil, err
	}

	if cfg.Compendium, err = a.compendium(); err != nil {
		return nil, err
	}
	if cfg.SpellParser, err = a.spellParser(fallback); err != nil {
		return nil, err
	}
	if cfg.FeatureParser, err = a.featureParser(); err != nil {
		return nil, err
	}

	return importer.NewOrchestrator(cfg)
}

func (a *app) encounters() (encounter.Service, error) {
	client, err := a.ddbClient()
	if err != nil {
		return nil, err
	}
	repo, err := a.compendium()
	if err != nil {
		return nil, err
	}
	return encounter.NewOrchestrator(&encounter.Config{
		Client:     client,
		Compendium: repo,
	})
}
