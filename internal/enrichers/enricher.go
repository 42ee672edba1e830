// Package enrichers holds the curated override tables keyed by exact display
// name, and applies them on top of the documents the parsers infer.
package enrichers

import (
	"github.com/KirkDiggler/ddb-importer/internal/entities/document"
	"github.com/KirkDiggler/ddb-importer/internal/errors"
)

// ActivityHint forces the activity type of a named item and adjusts the
// activity built for it. Data holds dotted or nested paths merged into the
// activity.
type ActivityHint struct {
	Type           document.ActivityType `yaml:"type"`
	Name           string                `yaml:"name"`
	ActivationType string                `yaml:"activation_type"`
	TargetType     string                `yaml:"target_type"`
	AddItemConsume bool                  `yaml:"add_item_consume"`
	Data           map[string]any        `yaml:"data"`
}

// BuildHint selects which parts of an additional activity are generated
type BuildHint struct {
	GenerateTarget     bool                 `yaml:"generate_target"`
	GenerateRange      bool                 `yaml:"generate_range"`
	GenerateActivation bool                 `yaml:"generate_activation"`
	ActivationOverride *document.Activation `yaml:"activation_override"`
}

// AdditionalActivity is an extra activity added next to the primary one
type AdditionalActivity struct {
	Name  string                `yaml:"name"`
	Type  document.ActivityType `yaml:"type"`
	Build BuildHint             `yaml:"build"`
	Data  map[string]any        `yaml:"data"`
}

// DocumentOverride replaces document fields by dotted path after generation
type DocumentOverride struct {
	RemoveDamage bool           `yaml:"remove_damage"`
	Data         map[string]any `yaml:"data"`
}

// EffectHint attaches an active effect to a named item
type EffectHint struct {
	Name     string             `yaml:"name"`
	Transfer *bool              `yaml:"transfer"`
	Changes  []EffectChangeHint `yaml:"changes"`
	Data     map[string]any     `yaml:"data"`
}

// EffectChangeHint is one change of an effect hint
type EffectChangeHint struct {
	Key      string              `yaml:"key"`
	Value    string              `yaml:"value"`
	Mode     document.EffectMode `yaml:"mode"`
	Priority int                 `yaml:"priority"`
}

// Override is everything the tables hold for one name
type Override struct {
	Activity             *ActivityHint
	AdditionalActivities []AdditionalActivity
	Document             *DocumentOverride
	Effect               *EffectHint
}

// IsZero reports whether no table had an entry
func (o Override) IsZero() bool {
	return o.Activity == nil && len(o.AdditionalActivities) == 0 && o.Document == nil && o.Effect == nil
}

// Table is a set of override tables keyed by exact display name
type Table struct {
	ActivityHints        map[string]ActivityHint         `yaml:"activity_hints"`
	AdditionalActivities map[string][]AdditionalActivity `yaml:"additional_activities"`
	DocumentOverrides    map[string]DocumentOverride     `yaml:"document_overrides"`
	EffectHints          map[string]EffectHint           `yaml:"effect_hints"`
}

// Merge returns base with every entry of extra laid over it. Entries are
// replaced whole, per name and per table.
func Merge(base, extra Table) Table {
	return Table{
		ActivityHints:        mergeEntries(base.ActivityHints, extra.ActivityHints),
		AdditionalActivities: mergeEntries(base.AdditionalActivities, extra.AdditionalActivities),
		DocumentOverrides:    mergeEntries(base.DocumentOverrides, extra.DocumentOverrides),
		EffectHints:          mergeEntries(base.EffectHints, extra.EffectHints),
	}
}

func mergeEntries[T any](base, extra map[string]T) map[string]T {
	out := make(map[string]T, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

// Config configures an Enricher
type Config struct {
	// Base is the built-in table, usually Spells() or Features()
	Base Table
	// Extra entries replace Base entries of the same name
	Extra *Table
}

// Validate validates the config
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	return nil
}

// Enricher answers exact name lookups against an immutable table
type Enricher struct {
	table Table
}

// New creates an enricher over the merged tables
func New(cfg *Config) (*Enricher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	table := Merge(cfg.Base, Table{})
	if cfg.Extra != nil {
		table = Merge(table, *cfg.Extra)
	}

	return &Enricher{table: table}, nil
}

// Lookup returns the overrides for name. Matching is exact and case
// sensitive; an unknown name yields the zero Override.
func (e *Enricher) Lookup(name string) Override {
	var o Override
	if e == nil {
		return o
	}

	if hint, ok := e.table.ActivityHints[name]; ok {
		o.Activity = &hint
	}
	if extra, ok := e.table.AdditionalActivities[name]; ok {
		o.AdditionalActivities = extra
	}
	if doc, ok := e.table.DocumentOverrides[name]; ok {
		o.Document = &doc
	}
	if effect, ok := e.table.EffectHints[name]; ok {
		o.Effect = &effect
	}
	return o
}

// Len returns the number of names with at least one entry
func (e *Enricher) Len() int {
	names := map[string]struct{}{}
	for k := range e.table.ActivityHints {
		names[k] = struct{}{}
	}
	for k := range e.table.AdditionalActivities {
		names[k] = struct{}{}
	}
	for k := range e.table.DocumentOverrides {
		names[k] = struct{}{}
	}
	for k := range e.table.EffectHints {
		names[k] = struct{}{}
	}
	return len(names)
}
