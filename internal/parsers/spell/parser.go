// Package spell turns source spell entries into host spell items. Target,
// range and activity type are inferred from the spell definition; curated
// overrides keyed by spell name are laid over the result.
package spell

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/ddb-importer/internal/entities/ddb"
	"github.com/KirkDiggler/ddb-importer/internal/entities/document"
	"github.com/KirkDiggler/ddb-importer/internal/enrichers"
	"github.com/KirkDiggler/ddb-importer/internal/errors"
	"github.com/KirkDiggler/ddb-importer/internal/parsers/activity"
	"github.com/KirkDiggler/ddb-importer/internal/parsers/common"
	"github.com/KirkDiggler/ddb-importer/internal/pkg/idgen"
)

// Component ids of a spell definition
const (
	componentVerbal   = 1
	componentSomatic  = 2
	componentMaterial = 3
)

const mysticArcanum = "Mystic Arcanum"

var materialCost = regexp.MustCompile(`([\d.,]+)\s*gp`)

// ActivityBuilder builds activities and applies the overrides that follow them
type ActivityBuilder interface {
	Build(t document.ActivityType, src *activity.Source, opts activity.BuildOptions) (*document.Activity, error)
	ApplyOverrides(item *document.Item, src *activity.Source, override enrichers.Override, withEffects bool) error
}

// Config holds the dependencies and import policy for the parser
type Config struct {
	Hints           Hints
	ActivityBuilder ActivityBuilder

	// AddSpellEffects attaches the effect hints of a spell
	AddSpellEffects bool
	// PactSpellsPrepared marks levelled pact spells as prepared
	PactSpellsPrepared bool
	// FallbackType is used when neither hints nor the cascade classify a
	// spell. Empty omits the activity.
	FallbackType document.ActivityType
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
	if c.FallbackType != document.ActivityTypeNone && !c.FallbackType.Valid() {
		vb.Fieldf("FallbackType", "unknown activity type %q", c.FallbackType)
	}
	return vb.Build()
}

// Parser builds spell items
type Parser struct {
	hints              Hints
	builder            ActivityBuilder
	addSpellEffects    bool
	pactSpellsPrepared bool
	fallbackType       document.ActivityType
}

// NewParser creates a spell parser
func NewParser(cfg *Config) (*Parser, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Parser{
		hints:              cfg.Hints,
		builder:            cfg.ActivityBuilder,
		addSpellEffects:    cfg.AddSpellEffects,
		pactSpellsPrepared: cfg.PactSpellsPrepared,
		fallbackType:       cfg.FallbackType,
	}, nil
}

// Parse builds the host item for a spell entry
func (p *Parser) Parse(s *ddb.Spell) (*document.Item, error) {
	if s == nil {
		return nil, errors.InvalidArgument("spell is required")
	}
	def := s.Definition
	if def == nil {
		return nil, errors.InvalidArgumentf("spell %d has no definition", s.ID)
	}

	item := &document.Item{
		ID:      idgen.NamedStub(def.Name, nil),
		Name:    def.Name,
		Type:    document.ItemTypeSpell,
		Effects: []document.Effect{},
		Flags: map[string]any{
			"ddbimporter": map[string]any{
				"id":           s.ID,
				"definitionId": def.ID,
				"entityTypeId": s.EntityTypeID,
				"originalName": def.Name,
				"tags":         def.Tags,
			},
		},
	}

	sys := &item.System
	sys.Level = def.Level
	if school, ok := common.School(def.School); ok {
		sys.School = school
	}
	sys.Source = common.Source(def.Sources)
	sys.Properties = properties(def, s.ForceMaterial)
	sys.Materials = materials(def.ComponentsDescription)
	sys.Preparation = p.preparation(s)
	sys.Description = document.Description{Value: def.Description}
	sys.Activation = activation(s)
	sys.Duration = duration(def.Duration)

	inferred := Infer(def)
	sys.Range = inferred.Range
	sys.Target = inferred.Target
	sys.Uses = common.Uses(def.Name, s.LimitedUse)
	sys.Ability = s.Ability
	sys.Activities = make(map[string]document.Activity)

	src := &activity.Source{
		Name:       def.Name,
		Definition: def,
		Activation: sys.Activation,
		Range:      sys.Range,
		Target:     sys.Target,
	}
	override := p.hints.Lookup(def.Name)

	if t := ResolveActivityType(def.Name, def, p.hints, p.fallbackType); t != document.ActivityTypeNone {
		act, err := p.builder.Build(t, src, activity.DefaultOptions(t))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to build activity for %s", def.Name)
		}
		if err := enrichers.ApplyActivityHint(act, override.Activity); err != nil {
			return nil, err
		}
		activity.AddActivity(item, act)
	} else {
		slog.Debug("Spell left without activity", "name", def.Name)
	}

	if err := p.builder.ApplyOverrides(item, src, override, p.addSpellEffects); err != nil {
		return nil, err
	}

	slog.Debug("Parsed spell",
		"name", item.Name,
		"id", item.ID,
		"activities", len(item.System.Activities),
		"effects", len(item.Effects),
	)
	return item, nil
}

func properties(def *ddb.SpellDefinition, forceMaterial bool) []string {
	props := []string{}
	if def.HasComponent(componentVerbal) {
		props = append(props, "vocal")
	}
	if def.HasComponent(componentSomatic) {
		props = append(props, "somatic")
	}
	if def.HasComponent(componentMaterial) || forceMaterial {
		props = append(props, "material")
	}
	if def.Ritual {
		props = append(props, "ritual")
	}
	if def.Concentration {
		props = append(props, "concentration")
	}
	return props
}

// materials reads the cost of a material component from "<n> gp". Grouping
// separators are dropped before parsing.
func materials(desc string) document.Materials {
	if desc == "" {
		return document.Materials{}
	}

	lower := strings.ToLower(desc)
	cost := 0
	if match := materialCost.FindStringSubmatch(lower); match != nil {
		digits := strings.NewReplacer(",", "", ".", "").Replace(match[1])
		if n, err := strconv.Atoi(digits); err == nil {
			cost = n
		}
	}

	return document.Materials{
		Value:    desc,
		Consumed: strings.Contains(lower, "consume"),
		Cost:     cost,
	}
}

func activation(s *ddb.Spell) document.Activation {
	a := s.Activation
	if a == nil {
		a = &s.Definition.Activation
	}
	return common.Activation(a, s.Definition.CastingTimeDescription)
}

func duration(d *ddb.Duration) document.Duration {
	if d == nil {
		return document.Duration{}
	}

	var units string
	if d.DurationUnit != nil {
		units = strings.ToLower(*d.DurationUnit)
	} else {
		units = strings.ToLower(d.DurationType)
		if len(units) > 4 {
			units = units[:4]
		}
	}

	out := document.Duration{Units: units}
	if d.DurationInterval != nil {
		out.Value = strconv.Itoa(*d.DurationInterval)
	}
	return out
}
