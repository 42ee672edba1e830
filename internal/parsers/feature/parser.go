// Package feature turns class, race and feat features into host feat items
// and lays the curated feature overrides over them.
package feature

import (
	"log/slog"

	"github.com/KirkDiggler/ddb-importer/internal/entities/ddb"
	"github.com/KirkDiggler/ddb-importer/internal/entities/document"
	"github.com/KirkDiggler/ddb-importer/internal/enrichers"
	"github.com/KirkDiggler/ddb-importer/internal/errors"
	"github.com/KirkDiggler/ddb-importer/internal/parsers/activity"
	"github.com/KirkDiggler/ddb-importer/internal/parsers/common"
	"github.com/KirkDiggler/ddb-importer/internal/pkg/idgen"
)

// Hints looks up curated overrides by exact name
type Hints interface {
	Lookup(name string) enrichers.Override
}

// ActivityBuilder builds activities and applies the overrides that follow them
type ActivityBuilder interface {
	Build(t document.ActivityType, src *activity.Source, opts activity.BuildOptions) (*document.Activity, error)
	ApplyOverrides(item *document.Item, src *activity.Source, override enrichers.Override, withEffects bool) error
}

// Config holds the dependencies for the parser
type Config struct {
	Hints           Hints
	ActivityBuilder ActivityBuilder
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Hints == nil {
		vb.RequiredField("Hints")
	}
	if c.ActivityBuilder == nil {
		vb.RequiredField("ActivityBuilder")
	}
	return vb.Build()
}

// Parser builds feat items
type Parser struct {
	hints   Hints
	builder ActivityBuilder
}

// NewParser creates a feature parser
func NewParser(cfg *Config) (*Parser, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Parser{
		hints:   cfg.Hints,
		builder: cfg.ActivityBuilder,
	}, nil
}

// Parse builds the host item for a feature. Features take the hinted
// activity type; an unhinted feature with an activation gets a utility
// activity and anything else stays passive.
func (p *Parser) Parse(f *ddb.Feature) (*document.Item, error) {
	if f == nil {
		return nil, errors.InvalidArgument("feature is required")
	}
	if f.Name == "" {
		return nil, errors.InvalidArgumentf("feature %d has no name", f.ID)
	}

	description := f.Description
	if description == "" {
		description = f.Snippet
	}

	item := &document.Item{
		ID:      idgen.NamedStub(f.Name, nil),
		Name:    f.Name,
		Type:    document.ItemTypeFeat,
		Effects: []document.Effect{},
		Flags: map[string]any{
			"ddbimporter": map[string]any{
				"id":           f.ID,
				"type":         f.Type,
				"class":        f.ClassName,
				"originalName": f.Name,
			},
		},
	}
	item.System = document.ItemSystem{
		Source:      common.Source(f.Sources),
		Properties:  []string{},
		Description: document.Description{Value: description, Chat: f.Snippet},
		Activation:  common.Activation(f.Activation, ""),
		Target:      document.NewTarget(),
		Uses:        common.Uses(f.Name, f.LimitedUse),
		Activities:  make(map[string]document.Activity),
	}

	override := p.hints.Lookup(f.Name)
	src := &activity.Source{
		Name:       f.Name,
		Activation: item.System.Activation,
		Range:      item.System.Range,
		Target:     item.System.Target,
	}

	if t := activityType(f, override); t != document.ActivityTypeNone {
		act, err := p.builder.Build(t, src, activity.DefaultOptions(t))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to build activity for %s", f.Name)
		}
		if err := enrichers.ApplyActivityHint(act, override.Activity); err != nil {
			return nil, err
		}
		activity.AddActivity(item, act)
	}

	if err := p.builder.ApplyOverrides(item, src, override, true); err != nil {
		return nil, err
	}

	slog.Debug("Parsed feature",
		"name", item.Name,
		"type", f.Type,
		"activities", len(item.System.Activities),
		"effects", len(item.Effects),
	)
	return item, nil
}

func activityType(f *ddb.Feature, override enrichers.Override) document.ActivityType {
	if override.Activity != nil && override.Activity.Type.Valid() {
		return override.Activity.Type
	}
	if f.Activation != nil && f.Activation.ActivationType != nil {
		return document.ActivityTypeUtility
	}
	return document.ActivityTypeNone
}
