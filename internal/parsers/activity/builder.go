// Package activity builds host activities for parsed spells and features
package activity

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/KirkDiggler/ddb-importer/internal/entities/ddb"
	"github.com/KirkDiggler/ddb-importer/internal/entities/document"
	"github.com/KirkDiggler/ddb-importer/internal/errors"
	"github.com/KirkDiggler/ddb-importer/internal/parsers/common"
	"github.com/KirkDiggler/ddb-importer/internal/pkg/idgen"
)

// Attack types as numbered by the character service
const (
	attackTypeMelee  = 1
	attackTypeRanged = 2
)

// BuildOptions selects which parts of an activity are generated
type BuildOptions struct {
	GenerateSave       bool
	GenerateAttack     bool
	GenerateDamage     bool
	GenerateHealing    bool
	GenerateTarget     bool
	GenerateRange      bool
	GenerateActivation bool
	ActivationOverride *document.Activation
}

// DefaultOptions returns the options a primary activity of type t is built with
func DefaultOptions(t document.ActivityType) BuildOptions {
	opts := BuildOptions{
		GenerateTarget:     true,
		GenerateRange:      true,
		GenerateActivation: true,
	}

	switch t {
	case document.ActivityTypeSave:
		opts.GenerateSave = true
		opts.GenerateDamage = true
	case document.ActivityTypeAttack:
		opts.GenerateAttack = true
		opts.GenerateDamage = true
	case document.ActivityTypeDamage:
		opts.GenerateDamage = true
	case document.ActivityTypeHeal:
		opts.GenerateDamage = true
		opts.GenerateHealing = true
	}
	return opts
}

// Source is what an activity is built from: the item's already inferred
// activation, range and target, and the spell definition when there is one.
type Source struct {
	Name       string
	Definition *ddb.SpellDefinition
	Activation document.Activation
	Range      document.Range
	Target     document.Target
}

// Config holds the dependencies for the builder
type Config struct {
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	return vb.Build()
}

// Builder builds activities
type Builder struct {
	idGen idgen.Generator
}

// NewBuilder creates a new activity builder
func NewBuilder(cfg *Config) (*Builder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Builder{idGen: cfg.IDGenerator}, nil
}

// Build creates an activity of type t from src
func (b *Builder) Build(t document.ActivityType, src *Source, opts BuildOptions) (*document.Activity, error) {
	if !t.Valid() {
		return nil, errors.InvalidArgumentf("cannot build activity of type %q", t)
	}
	if src == nil {
		return nil, errors.InvalidArgument("source is required")
	}

	act := &document.Activity{
		ID:   b.idGen.Generate(),
		Type: t,
	}

	if opts.GenerateActivation {
		activation := src.Activation
		if opts.ActivationOverride != nil {
			activation = *opts.ActivationOverride
		}
		act.Activation = &activation
	}
	if opts.GenerateRange {
		rng := src.Range
		act.Range = &rng
	}
	if opts.GenerateTarget {
		target := src.Target
		act.Target = &target
	}

	def := src.Definition
	if opts.GenerateSave {
		act.Save = buildSave(def)
	}
	if opts.GenerateAttack {
		act.Attack = buildAttack(def)
	}
	if opts.GenerateDamage {
		act.Damage = buildDamage(def, t)
	}
	if opts.GenerateHealing {
		act.Healing = buildHealing(def)
	}

	slog.Debug("Built activity",
		"name", src.Name,
		"activity_id", act.ID,
		"type", t.String(),
	)
	return act, nil
}

func buildSave(def *ddb.SpellDefinition) *document.Save {
	save := &document.Save{DC: document.DC{Calculation: "spellcasting"}}
	if def != nil && def.SaveDCAbilityID != nil {
		if ability, ok := common.Ability(*def.SaveDCAbilityID); ok {
			save.Ability = ability
		}
	}
	return save
}

func buildAttack(def *ddb.SpellDefinition) *document.Attack {
	attack := &document.Attack{
		Type: document.AttackType{Classification: "spell"},
	}
	if def == nil || def.AttackType == nil {
		return attack
	}
	switch *def.AttackType {
	case attackTypeMelee:
		attack.Type.Value = "melee"
	case attackTypeRanged:
		attack.Type.Value = "ranged"
	}
	return attack
}

func buildDamage(def *ddb.SpellDefinition, t document.ActivityType) *document.ActivityDamage {
	damage := &document.ActivityDamage{
		OnSave: "none",
		Parts:  []document.DamagePart{},
	}
	if def == nil {
		return damage
	}

	if t == document.ActivityTypeSave && strings.Contains(strings.ToLower(def.Description), "half as much damage") {
		damage.OnSave = "half"
	}

	for _, mod := range def.Modifiers {
		if mod.Type != ddb.ModifierTypeDamage {
			continue
		}
		part := dicePart(mod)
		if mod.SubType != "" {
			part.Types = []string{mod.SubType}
		}
		damage.Parts = append(damage.Parts, part)
	}
	return damage
}

func buildHealing(def *ddb.SpellDefinition) *document.DamagePart {
	if def == nil {
		return nil
	}
	for _, mod := range def.Modifiers {
		if mod.Type == ddb.ModifierTypeBonus && mod.SubType == ddb.ModifierSubTypeHitPoints {
			part := dicePart(mod)
			part.Types = []string{"healing"}
			if mod.UsePrimaryStat {
				part.Bonus = joinBonus(part.Bonus, "@mod")
			}
			return &part
		}
	}
	return nil
}

func dicePart(mod ddb.Modifier) document.DamagePart {
	part := document.DamagePart{Types: []string{}}
	if mod.Die != nil {
		if mod.Die.DiceCount != nil {
			n := *mod.Die.DiceCount
			part.Number = &n
		}
		if mod.Die.DiceValue != nil {
			d := *mod.Die.DiceValue
			part.Denomination = &d
		}
		if mod.Die.FixedValue != nil && *mod.Die.FixedValue != 0 {
			part.Bonus = strconv.Itoa(*mod.Die.FixedValue)
		}
	}
	if mod.FixedValue != nil && *mod.FixedValue != 0 {
		part.Bonus = joinBonus(part.Bonus, strconv.Itoa(*mod.FixedValue))
	}
	return part
}

func joinBonus(existing, term string) string {
	if existing == "" {
		return term
	}
	return existing + " + " + term
}
