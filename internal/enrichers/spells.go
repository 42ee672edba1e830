package enrichers

import "github.com/KirkDiggler/ddb-importer/internal/entities/document"

func spellBonus(mode document.EffectMode, priority int, changes map[string]string) EffectHint {
	transfer := false
	hint := EffectHint{Transfer: &transfer}
	for _, key := range sortedKeys(changes) {
		hint.Changes = append(hint.Changes, EffectChangeHint{
			Key:      key,
			Value:    changes[key],
			Mode:     mode,
			Priority: priority,
		})
	}
	return hint
}

// Spells returns the built-in spell table. It covers the activity types the
// flag cascade cannot infer and the effects common buffs apply.
func Spells() Table {
	return Table{
		ActivityHints: map[string]ActivityHint{
			"Absorb Elements":        {Type: document.ActivityTypeUtility},
			"Animate Dead":           {Type: document.ActivityTypeSummon},
			"Bless":                  {Type: document.ActivityTypeUtility},
			"Conjure Animals":        {Type: document.ActivityTypeSummon},
			"Elemental Weapon":       {Type: document.ActivityTypeEnchant},
			"Find Familiar":          {Type: document.ActivityTypeSummon},
			"Find Steed":             {Type: document.ActivityTypeSummon},
			"Haste":                  {Type: document.ActivityTypeUtility},
			"Holy Weapon":            {Type: document.ActivityTypeEnchant},
			"Mage Armor":             {Type: document.ActivityTypeUtility},
			"Magic Weapon":           {Type: document.ActivityTypeEnchant},
			"Shield":                 {Type: document.ActivityTypeUtility, ActivationType: "reaction"},
			"Summon Beast":           {Type: document.ActivityTypeSummon},
			"Summon Fey":             {Type: document.ActivityTypeSummon},
			"Summon Undead":          {Type: document.ActivityTypeSummon},
			"Tenser's Floating Disk": {Type: document.ActivityTypeSummon},
		},
		DocumentOverrides: map[string]DocumentOverride{
			"Absorb Elements": {
				Data: map[string]any{
					"system.activation.condition": "When you take acid, cold, fire, lightning, or thunder damage",
				},
			},
		},
		EffectHints: map[string]EffectHint{
			"Bless": spellBonus(document.EffectModeAdd, 20, map[string]string{
				"system.bonuses.abilities.save": "+1d4",
				"system.bonuses.mwak.attack":    "+1d4",
				"system.bonuses.rwak.attack":    "+1d4",
				"system.bonuses.msak.attack":    "+1d4",
				"system.bonuses.rsak.attack":    "+1d4",
			}),
			"Haste": spellBonus(document.EffectModeAdd, 20, map[string]string{
				"system.attributes.ac.bonus": "+2",
			}),
			"Mage Armor": spellBonus(document.EffectModeOverride, 5, map[string]string{
				"system.attributes.ac.calc": "mage",
			}),
			"Shield": withData(map[string]any{"duration.rounds": 1}, spellBonus(document.EffectModeAdd, 20, map[string]string{
				"system.attributes.ac.bonus": "+5",
			})),
		},
	}
}

func withData(data map[string]any, hint EffectHint) EffectHint {
	hint.Data = data
	return hint
}
