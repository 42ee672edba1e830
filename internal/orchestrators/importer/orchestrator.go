// Package importer runs spell and feature imports: fetch, parse, store and
// announce each document.
package importer

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/ddb-importer/internal/clients/ddb"
	"github.com/KirkDiggler/ddb-importer/internal/clients/srd"
	ddbentities "github.com/KirkDiggler/ddb-importer/internal/entities/ddb"
	"github.com/KirkDiggler/ddb-importer/internal/entities/document"
	"github.com/KirkDiggler/ddb-importer/internal/errors"
	"github.com/KirkDiggler/ddb-importer/internal/pkg/clock"
	"github.com/KirkDiggler/ddb-importer/internal/pkg/idgen"
	"github.com/KirkDiggler/ddb-importer/internal/repositories/compendium"
)

// Service defines the interface for import runs
type Service interface {
	// ImportSpells fetches a class spell list and imports every spell. A
	// spell that fails to parse or store is recorded on the output and the
	// run carries on.
	ImportSpells(ctx context.Context, input *ImportSpellsInput) (*RunOutput, error)

	// ImportFeatures imports the given features
	ImportFeatures(ctx context.Context, input *ImportFeaturesInput) (*RunOutput, error)
}

// SpellParser builds spell items
type SpellParser interface {
	Parse(s *ddbentities.Spell) (*document.Item, error)
}

// FeatureParser builds feat items
type FeatureParser interface {
	Parse(f *ddbentities.Feature) (*document.Item, error)
}

// Config holds the dependencies for the importer
type Config struct {
	// DDBClient is required for ddb imports (optional)
	DDBClient ddb.Client
	// SRDClient is required for srd imports (optional)
	SRDClient     srd.Client
	Compendium    compendium.Repository
	SpellParser   SpellParser
	FeatureParser FeatureParser
	EventBus      events.EventBus
	// RunIDGenerator defaults to uuids
	RunIDGenerator idgen.Generator
	// Clock defaults to the system clock
	Clock clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.DDBClient == nil && c.SRDClient == nil {
		vb.Field("DDBClient", "a ddb or srd client is required")
	}
	if c.Compendium == nil {
		vb.RequiredField("Compendium")
	}
	if c.SpellParser == nil {
		vb.RequiredField("SpellParser")
	}
	if c.FeatureParser == nil {
		vb.RequiredField("FeatureParser")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}

	return vb.Build()
}

type orchestrator struct {
	ddbClient     ddb.Client
	srdClient     srd.Client
	compendium    compendium.Repository
	spellParser   SpellParser
	featureParser FeatureParser
	bus           events.EventBus
	runIDs        idgen.Generator
	clock         clock.Clock
}

// NewOrchestrator creates a new importer with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	runIDs := cfg.RunIDGenerator
	if runIDs == nil {
		runIDs = idgen.NewUUID("")
	}
	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	return &orchestrator{
		ddbClient:     cfg.DDBClient,
		srdClient:     cfg.SRDClient,
		compendium:    cfg.Compendium,
		spellParser:   cfg.SpellParser,
		featureParser: cfg.FeatureParser,
		bus:           cfg.EventBus,
		runIDs:        runIDs,
		clock:         clk,
	}, nil
}

func (o *orchestrator) ImportSpells(ctx context.Context, input *ImportSpellsInput) (*RunOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	source := input.Source
	if source == "" {
		source = SourceDDB
	}
	if !source.IsValid() {
		return nil, errors.InvalidArgumentf("unknown source %q", source)
	}

	spells, err := o.fetchSpells(ctx, source, input)
	if err != nil {
		return nil, err
	}

	run := o.startRun(source)
	run.Fetched = len(spells)
	slog.Info("Importing spells",
		"run_id", run.RunID,
		"source", source,
		"class", input.ClassName,
		"count", len(spells),
	)

	for _, s := range spells {
		name := spellName(s)
		item, err := o.spellParser.Parse(s)
		if err != nil {
			o.fail(run, name, err)
			continue
		}
		o.keep(ctx, run, item, input.DryRun)
	}

	o.finishRun(run)
	return run, nil
}

func (o *orchestrator) ImportFeatures(ctx context.Context, input *ImportFeaturesInput) (*RunOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	run := o.startRun(SourceDDB)
	run.Fetched = len(input.Features)
	slog.Info("Importing features", "run_id", run.RunID, "count", len(input.Features))

	for _, f := range input.Features {
		name := ""
		if f != nil {
			name = f.Name
		}
		item, err := o.featureParser.Parse(f)
		if err != nil {
			o.fail(run, name, err)
			continue
		}
		o.keep(ctx, run, item, input.DryRun)
	}

	o.finishRun(run)
	return run, nil
}

func (o *orchestrator) fetchSpells(ctx context.Context, source Source, input *ImportSpellsInput) ([]*ddbentities.Spell, error) {
	switch source {
	case SourceSRD:
		if o.srdClient == nil {
			return nil, errors.FailedPreconditionf("srd client is not configured")
		}
		spells, err := o.srdClient.ListSpells(ctx, &srd.ListSpellsInput{ClassName: input.ClassName})
		if err != nil {
			return nil, errors.Wrap(err, "failed to fetch srd spells")
		}
		return spells, nil
	default:
		if o.ddbClient == nil {
			return nil, errors.FailedPreconditionf("ddb client is not configured")
		}
		if input.ClassName == "" {
			return nil, errors.InvalidArgument("class name is required")
		}
		spells, err := o.ddbClient.ListClassSpells(ctx, &ddb.ListClassSpellsInput{
			ClassName:  input.ClassName,
			CampaignID: input.CampaignID,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to fetch class spells")
		}
		return spells, nil
	}
}

func (o *orchestrator) startRun(source Source) *RunOutput {
	return &RunOutput{
		RunID:     o.runIDs.Generate(),
		Source:    source,
		Failures:  []Failure{},
		Items:     []*document.Item{},
		StartedAt: o.clock.Now(),
	}
}

func (o *orchestrator) finishRun(run *RunOutput) {
	run.FinishedAt = o.clock.Now()
	slog.Info("Import run finished",
		"run_id", run.RunID,
		"parsed", run.Parsed,
		"stored", run.Stored,
		"failed", run.Failed(),
		"duration", run.FinishedAt.Sub(run.StartedAt),
	)
}

func (o *orchestrator) fail(run *RunOutput, name string, err error) {
	slog.Warn("Failed to import entry",
		"run_id", run.RunID,
		"name", name,
		"error", err,
	)
	run.Failures = append(run.Failures, Failure{Name: name, Error: err.Error()})
}

// keep records a parsed item and, unless dry, stores and announces it
func (o *orchestrator) keep(ctx context.Context, run *RunOutput, item *document.Item, dryRun bool) {
	run.Parsed++
	run.Items = append(run.Items, item)
	if dryRun {
		return
	}

	if _, err := o.compendium.Put(ctx, &compendium.PutInput{Item: item}); err != nil {
		o.fail(run, item.Name, err)
		return
	}
	run.Stored++

	event := events.NewGameEvent(EventDocumentImported, item, nil)
	event.Context().Set(ContextKeyRunID, run.RunID)
	event.Context().Set(ContextKeySource, string(run.Source))
	event.Context().Set(ContextKeyKind, string(item.Type))
	if err := o.bus.Publish(ctx, event); err != nil {
		slog.Warn("Failed to publish import event",
			"run_id", run.RunID,
			"document_id", item.ID,
			"error", err,
		)
	}
}

func spellName(s *ddbentities.Spell) string {
	if s == nil || s.Definition == nil {
		return ""
	}
	return s.Definition.Name
}
