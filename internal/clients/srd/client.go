// Package srd reads SRD spells from the dnd5e API and shapes them like proxy
// spell entries so the same parsers can import them.
package srd

//go:generate mockgen -destination=mock/mock_client.go -package=srdmock github.com/KirkDiggler/ddb-importer/internal/clients/srd Client

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"
	"golang.org/x/sync/errgroup"

	ddbentities "github.com/KirkDiggler/ddb-importer/internal/entities/ddb"
	"github.com/KirkDiggler/ddb-importer/internal/errors"
)

// Client defines the SRD lookups the importer makes
type Client interface {
	// ListSpells returns every SRD spell matching the input with full details
	ListSpells(ctx context.Context, input *ListSpellsInput) ([]*ddbentities.Spell, error)

	// GetSpell returns one SRD spell by its api key, e.g. "fireball"
	GetSpell(ctx context.Context, key string) (*ddbentities.Spell, error)
}

// ListSpellsInput filters the SRD spell list
type ListSpellsInput struct {
	// ClassName in any case, e.g. "wizard" or "Wizard" (optional)
	ClassName string
	// Level filter (optional)
	Level *int
}

// spellSource is the part of the dnd5e api client this package uses
type spellSource interface {
	ListSpells(input *dnd5e.ListSpellsInput) ([]*entities.ReferenceItem, error)
	GetSpell(key string) (*entities.Spell, error)
}

// Config contains configuration options for the SRD client.
type Config struct {
	// BaseURL for the D&D 5e API (optional, defaults to https://www.dnd5eapi.co/api/2014/)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached client (optional, defaults to 24 hours)
	CacheTTL time.Duration
	// Concurrency bounds the detail fetches (optional, defaults to 8)
	Concurrency int
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.dnd5eapi.co/api/2014/"
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 24 * time.Hour
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 8
	}
	return nil
}

type client struct {
	source      spellSource
	concurrency int
}

// New creates a new SRD client with the given configuration.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	baseClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  httpClient,
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create D&D 5e API client")
	}

	return &client{
		source:      dnd5e.NewCachedClient(baseClient, cfg.CacheTTL),
		concurrency: cfg.Concurrency,
	}, nil
}

func (c *client) GetSpell(_ context.Context, key string) (*ddbentities.Spell, error) {
	if key == "" {
		return nil, errors.InvalidArgument("spell key is required")
	}

	spell, err := c.source.GetSpell(key)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to get spell "+key)
	}
	if spell == nil {
		return nil, errors.NotFoundf("spell %s not found", key)
	}
	return convertSpell(spell, ""), nil
}

func (c *client) ListSpells(ctx context.Context, input *ListSpellsInput) ([]*ddbentities.Spell, error) {
	apiInput := &dnd5e.ListSpellsInput{}
	className := ""
	if input != nil {
		apiInput.Level = input.Level
		apiInput.Class = apiClassName(input.ClassName)
		className = displayClassName(input.ClassName)
	}

	slog.Info("Calling D&D 5e API to list spells", "class", apiInput.Class)
	refs, err := c.source.ListSpells(apiInput)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to list spells from D&D 5e API")
	}
	slog.Info("Got spell references", "count", len(refs))

	spells := make([]*ddbentities.Spell, len(refs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	for i, ref := range refs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			spell, err := c.source.GetSpell(ref.Key)
			if err != nil {
				slog.Error("Failed to get spell details", "spell", ref.Key, "error", err)
				return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to get spell "+ref.Key)
			}
			spells[i] = convertSpell(spell, className)
			slog.Debug("Loaded spell details", "spell", ref.Name)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return spells, nil
}
