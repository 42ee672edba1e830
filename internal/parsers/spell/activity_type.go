package spell

import (
	"github.com/KirkDiggler/ddb-importer/internal/entities/ddb"
	"github.com/KirkDiggler/ddb-importer/internal/entities/document"
	"github.com/KirkDiggler/ddb-importer/internal/enrichers"
)

// Hints looks up curated overrides by exact name
type Hints interface {
	Lookup(name string) enrichers.Override
}

// ClassifyActivity picks the activity type from the spell's declared flags.
// The first matching rule wins:
//
//	saving throw without attack roll -> save
//	Damage tag with attack roll      -> attack
//	Damage tag                       -> damage
//	Healing tag                      -> heal
//	Buff tag                         -> utility
//
// Anything else is ActivityTypeNone.
func ClassifyActivity(def *ddb.SpellDefinition) document.ActivityType {
	if def == nil {
		return document.ActivityTypeNone
	}

	switch {
	case def.RequiresSavingThrow && !def.RequiresAttackRoll:
		return document.ActivityTypeSave
	case def.HasTag(ddb.TagDamage) && def.RequiresAttackRoll:
		return document.ActivityTypeAttack
	case def.HasTag(ddb.TagDamage):
		return document.ActivityTypeDamage
	case def.HasTag(ddb.TagHealing):
		return document.ActivityTypeHeal
	case def.HasTag(ddb.TagBuff):
		return document.ActivityTypeUtility
	}
	return document.ActivityTypeNone
}

// ResolveActivityType returns the activity type for a named spell. An override
// hint for the exact name wins outright; otherwise the flags are classified
// and fallback is used when nothing matches.
func ResolveActivityType(name string, def *ddb.SpellDefinition, hints Hints, fallback document.ActivityType) document.ActivityType {
	if hints != nil {
		if hint := hints.Lookup(name).Activity; hint != nil && hint.Type.Valid() {
			return hint.Type
		}
	}

	if t := ClassifyActivity(def); t != document.ActivityTypeNone {
		return t
	}

	if fallback.Valid() {
		return fallback
	}
	return document.ActivityTypeNone
}
