// Package ddb holds the payload shapes returned by the D&D Beyond proxy API.
// Only the fields the importer reads are modelled; everything else in the
// payload is ignored on decode.
package ddb

// RangeOrigin is the range origin enumeration of a spell definition.
// The zero value means the payload carried no origin.
type RangeOrigin string

// Range origins in use by the character service
const (
	RangeOriginTouch   RangeOrigin = "Touch"
	RangeOriginSelf    RangeOrigin = "Self"
	RangeOriginNone    RangeOrigin = "None"
	RangeOriginRanged  RangeOrigin = "Ranged"
	RangeOriginFeet    RangeOrigin = "Feet"
	RangeOriginMiles   RangeOrigin = "Miles"
	RangeOriginSight   RangeOrigin = "Sight"
	RangeOriginSpecial RangeOrigin = "Special"
	RangeOriginAny     RangeOrigin = "Any"
)

// Spell tags that drive activity classification
const (
	TagDamage  = "Damage"
	TagHealing = "Healing"
	TagBuff    = "Buff"
)

// Modifier types and sub types
const (
	ModifierTypeDamage       = "damage"
	ModifierTypeBonus        = "bonus"
	ModifierSubTypeHitPoints = "hit-points"
)

// Spell lookups describe where a spell entry came from on the sheet
const (
	LookupClassSpell   = "classSpell"
	LookupClassFeature = "classFeature"
	LookupRace         = "race"
	LookupItem         = "item"
	LookupFeat         = "feat"
)

// RestrictionRitualOnly marks spells that may only be cast as a ritual
const RestrictionRitualOnly = "As Ritual Only"

// Spell is one spell entry: a definition plus the sheet context it was
// granted in.
type Spell struct {
	ID                int              `json:"id"`
	EntityTypeID      int              `json:"entityTypeId"`
	Definition        *SpellDefinition `json:"definition"`
	Prepared          bool             `json:"prepared"`
	AlwaysPrepared    bool             `json:"alwaysPrepared"`
	UsesSpellSlot     bool             `json:"usesSpellSlot"`
	CastOnlyAsRitual  bool             `json:"castOnlyAsRitual"`
	RitualCastingType *int             `json:"ritualCastingType"`
	Restriction       string           `json:"restriction"`
	LimitedUse        *LimitedUse      `json:"limitedUse"`
	Activation        *Activation      `json:"activation"`

	// Importer context, resolved by whoever collected the spell
	Lookup        string `json:"lookup,omitempty"`
	LookupName    string `json:"lookupName,omitempty"`
	Class         string `json:"class,omitempty"`
	Ability       string `json:"ability,omitempty"`
	ForceMaterial bool   `json:"forceMaterial,omitempty"`
	Generic       bool   `json:"generic,omitempty"`
}

// SpellDefinition is the immutable description of a spell shared by every
// character that knows it.
type SpellDefinition struct {
	ID                     int        `json:"id"`
	Name                   string     `json:"name"`
	Level                  int        `json:"level"`
	School                 string     `json:"school"`
	Description            string     `json:"description"`
	Components             []int      `json:"components"`
	ComponentsDescription  string     `json:"componentsDescription"`
	Ritual                 bool       `json:"ritual"`
	Concentration          bool       `json:"concentration"`
	CastingTimeDescription string     `json:"castingTimeDescription"`
	Activation             Activation `json:"activation"`
	Duration               *Duration  `json:"duration"`
	Range                  Range      `json:"range"`
	Modifiers              []Modifier `json:"modifiers"`
	Tags                   []string   `json:"tags"`
	RequiresAttackRoll     bool       `json:"requiresAttackRoll"`
	RequiresSavingThrow    bool       `json:"requiresSavingThrow"`
	SaveDCAbilityID        *int       `json:"saveDcAbilityId"`
	AttackType             *int       `json:"attackType"`
	Sources                []Source   `json:"sources"`
}

// HasTag reports whether the definition carries the tag
func (d *SpellDefinition) HasTag(tag string) bool {
	for _, t := range d.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// HasModifierType reports whether any modifier has the given type
func (d *SpellDefinition) HasModifierType(modifierType string) bool {
	for _, m := range d.Modifiers {
		if m.Type == modifierType {
			return true
		}
	}
	return false
}

// HasComponent reports whether the definition lists the component id
// (1 verbal, 2 somatic, 3 material)
func (d *SpellDefinition) HasComponent(id int) bool {
	for _, c := range d.Components {
		if c == id {
			return true
		}
	}
	return false
}

// Range is the range block of a spell definition
type Range struct {
	Origin     RangeOrigin `json:"origin"`
	RangeValue *int        `json:"rangeValue"`
	AOEType    *string     `json:"aoeType"`
	AOEValue   *int        `json:"aoeValue"`
}

// Activation is the casting time of a spell or feature
type Activation struct {
	ActivationTime *int `json:"activationTime"`
	ActivationType *int `json:"activationType"`
}

// Duration is the duration block of a spell definition
type Duration struct {
	DurationInterval *int    `json:"durationInterval"`
	DurationUnit     *string `json:"durationUnit"`
	DurationType     string  `json:"durationType"`
}

// Modifier is a tagged effect descriptor attached to a spell
type Modifier struct {
	Type           string `json:"type"`
	SubType        string `json:"subType"`
	Die            *Die   `json:"die"`
	FixedValue     *int   `json:"fixedValue"`
	Restriction    string `json:"restriction"`
	StatID         *int   `json:"statId"`
	UsePrimaryStat bool   `json:"usePrimaryStat"`
}

// Die is a dice expression as served by the character service
type Die struct {
	DiceCount  *int   `json:"diceCount"`
	DiceValue  *int   `json:"diceValue"`
	FixedValue *int   `json:"fixedValue"`
	DiceString string `json:"diceString"`
}

// LimitedUse describes how often a spell or feature may be used
type LimitedUse struct {
	MaxUses                  int  `json:"maxUses"`
	NumberUsed               *int `json:"numberUsed"`
	ResetType                int  `json:"resetType"`
	StatModifierUsesID       *int `json:"statModifierUsesId"`
	Operator                 int  `json:"operator"`
	UseProficiencyBonus      bool `json:"useProficiencyBonus"`
	ProficiencyBonusOperator int  `json:"proficiencyBonusOperator"`
}

// Source is a book reference
type Source struct {
	SourceID   int  `json:"sourceId"`
	PageNumber *int `json:"pageNumber"`
}
