package enrichers

import "github.com/KirkDiggler/ddb-importer/internal/entities/document"

const (
	superiorityDie  = "@scale.fighter.combat-superiority-die"
	maneuverSaveDC  = "8 + @prof + max(@abilities.dex.mod, @abilities.str.mod)"
	maneuverEffectP = 20
)

func customDamagePart(formula string, types ...string) map[string]any {
	typeList := make([]any, 0, len(types))
	for _, t := range types {
		typeList = append(typeList, t)
	}
	return map[string]any{
		"custom": map[string]any{
			"enabled": true,
			"formula": formula,
		},
		"types": typeList,
	}
}

func maneuverSave(ability, onSave string) map[string]any {
	return map[string]any{
		"damage": map[string]any{
			"onSave": onSave,
		},
		"save": map[string]any{
			"ability": ability,
			"dc": map[string]any{
				"calculation": "",
				"formula":     maneuverSaveDC,
			},
		},
	}
}

func maneuverDamage(types ...string) map[string]any {
	return map[string]any{
		"damage": map[string]any{
			"onSave": "none",
			"parts":  []any{customDamagePart(superiorityDie, types...)},
		},
	}
}

func superiorityRoll(name string) map[string]any {
	return map[string]any{
		"roll": map[string]any{
			"prompt":  false,
			"visible": false,
			"formula": superiorityDie,
			"name":    name,
		},
	}
}

func superiorityBonus(keys ...string) EffectHint {
	transfer := false
	changes := make([]EffectChangeHint, 0, len(keys))
	for _, key := range keys {
		changes = append(changes, EffectChangeHint{
			Key:      key,
			Value:    superiorityDie,
			Mode:     document.EffectModeAdd,
			Priority: maneuverEffectP,
		})
	}
	return EffectHint{Transfer: &transfer, Changes: changes}
}

// Features returns the built-in class feature table
func Features() Table {
	return Table{
		ActivityHints: map[string]ActivityHint{
			"Divine Intervention": {
				Type: document.ActivityTypeUtility,
				Data: map[string]any{
					"roll": map[string]any{
						"prompt":  false,
						"visible": false,
						"formula": "1d100",
						"name":    "Implore Aid",
					},
				},
			},
			"Harness Divine Power": {
				Type:           document.ActivityTypeUtility,
				ActivationType: "bonus",
				AddItemConsume: true,
			},
			"Hold Breath": {
				Type:           document.ActivityTypeUtility,
				TargetType:     document.AffectsSelf,
				ActivationType: "special",
			},
			"Lay on Hands: Healing Pool": {
				Type: document.ActivityTypeHeal,
				Name: "Healing",
			},
			"Maneuver: Ambush":                  {Type: document.ActivityTypeUtility},
			"Maneuver: Bait and Switch":         {Type: document.ActivityTypeUtility},
			"Maneuver: Disarming Attack (Str.)": {Type: document.ActivityTypeSave, Data: maneuverSave("str", "none")},
			"Maneuver: Distracting Strike":      {Type: document.ActivityTypeDamage, Data: maneuverDamage()},
			"Maneuver: Goading Attack (Str.)":   {Type: document.ActivityTypeSave, Data: maneuverSave("wis", "none")},
			"Maneuver: Lunging Attack":          {Type: document.ActivityTypeDamage, Data: maneuverDamage()},
			"Maneuver: Menacing Attack (Str.)":  {Type: document.ActivityTypeSave, Data: maneuverSave("wis", "none")},
			"Maneuver: Parry (Str.)":            {Type: document.ActivityTypeUtility, Data: superiorityRoll("Reduce Damage Roll")},
			"Maneuver: Pushing Attack (Str.)":   {Type: document.ActivityTypeSave, Data: maneuverSave("str", "none")},
			"Maneuver: Precision Attack":        {Type: document.ActivityTypeUtility, Data: superiorityRoll("Add to Attack Roll")},
			"Maneuver: Rally": {
				Type: document.ActivityTypeHeal,
				Data: map[string]any{
					"healing": map[string]any{
						"custom": map[string]any{
							"enabled": true,
							"formula": superiorityDie,
						},
						"types": []any{"temphp"},
					},
				},
			},
			"Maneuver: Riposte":         {Type: document.ActivityTypeDamage, Data: maneuverDamage()},
			"Maneuver: Sweeping Attack": {Type: document.ActivityTypeDamage, Data: maneuverDamage("bludgeoning", "piercing", "slashing")},
			"Maneuver: Tactical Assessment": {
				Type: document.ActivityTypeCheck,
				Data: map[string]any{
					"name":                       "Roll Check (Apply Effect First)",
					"flags.ddbimporter.noeffect": true,
					"check": map[string]any{
						"associated": []any{"his", "inv", "ins"},
						"ability":    "",
						"dc": map[string]any{
							"calculation": "",
							"formula":     "",
						},
					},
				},
			},
			"Maneuver: Trip Attack (Str.)": {Type: document.ActivityTypeSave, Data: maneuverSave("str", "full")},
			"Partially Amphibious": {
				Type:           document.ActivityTypeUtility,
				TargetType:     document.AffectsSelf,
				ActivationType: "special",
				AddItemConsume: true,
			},
			"Second Wind": {
				Type:           document.ActivityTypeHeal,
				TargetType:     document.AffectsSelf,
				AddItemConsume: true,
				Data: map[string]any{
					"healing": map[string]any{
						"number":       1,
						"denomination": 10,
						"bonus":        "@classes.fighter.levels",
						"types":        []any{"healing"},
						"scaling": map[string]any{
							"mode":    "whole",
							"number":  nil,
							"formula": "",
						},
					},
				},
			},
		},
		AdditionalActivities: map[string][]AdditionalActivity{
			"Maneuver: Tactical Assessment": {
				{
					Name: "Bonus Dice Effect",
					Type: document.ActivityTypeUtility,
					Build: BuildHint{
						GenerateActivation: true,
						ActivationOverride: &document.Activation{
							Type:  "special",
							Value: intPtr(1),
						},
					},
				},
			},
		},
		DocumentOverrides: map[string]DocumentOverride{
			"Action Surge": {RemoveDamage: true},
			"Arcane Propulsion Armor Gauntlet": {
				Data: map[string]any{"system.damage.bonus": "@mod"},
			},
			"Drake Companion": {
				Data: map[string]any{
					"system.uses.max":      "",
					"system.uses.recovery": []any{},
				},
			},
			"Epic Boon: Choose an Epic Boon feat": {
				Data: map[string]any{"name": "Epic Boon"},
			},
			"Harness Divine Power": {
				Data: map[string]any{"flags.ddbimporter.retainOriginalConsumption": true},
			},
			"Lay on Hands: Healing Pool":        {Data: map[string]any{"name": "Lay on Hands"}},
			"Maneuver: Disarming Attack (Str.)": {Data: map[string]any{"name": "Maneuver: Disarming Attack"}},
			"Maneuver: Goading Attack (Str.)":   {Data: map[string]any{"name": "Maneuver: Goading Attack"}},
			"Maneuver: Menacing Attack (Str.)":  {Data: map[string]any{"name": "Maneuver: Menacing Attack"}},
			"Maneuver: Parry (Str.)":            {Data: map[string]any{"name": "Maneuver: Parry"}},
			"Maneuver: Pushing Attack (Str.)":   {Data: map[string]any{"name": "Maneuver: Pushing Attack"}},
			"Maneuver: Trip Attack (Str.)":      {Data: map[string]any{"name": "Maneuver: Trip Attack"}},
			"Partially Amphibious": {
				Data: map[string]any{
					"system.uses": map[string]any{
						"spent": 0,
						"max":   "1",
						"recovery": []any{
							map[string]any{"period": "lr", "type": "recoverAll"},
						},
					},
					"flags.midiProperties.toggleEffect": true,
				},
			},
		},
		EffectHints: map[string]EffectHint{
			"Hold Breath": {
				Data: map[string]any{"duration.rounds": 600},
			},
			"Maneuver: Ambush":           superiorityBonus("system.attributes.init.bonus"),
			"Maneuver: Bait and Switch":  superiorityBonus("system.attributes.ac.bonus"),
			"Maneuver: Evasive Footwork": superiorityBonus("system.attributes.ac.bonus"),
			"Maneuver: Tactical Assessment": withName("Tactical Assessment Bonus", superiorityBonus(
				"system.skills.his.bonuses.check",
				"system.skills.inv.bonuses.check",
				"system.skills.ins.bonuses.check",
			)),
			"Partially Amphibious": {
				Data: map[string]any{"duration.rounds": 600},
			},
		},
	}
}

func withName(name string, hint EffectHint) EffectHint {
	hint.Name = name
	return hint
}

func intPtr(i int) *int {
	return &i
}
