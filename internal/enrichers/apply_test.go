package enrichers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/ddb-importer/internal/entities/document"
	"github.com/KirkDiggler/ddb-importer/internal/enrichers"
	"github.com/KirkDiggler/ddb-importer/internal/pkg/docpath"
)

func intPtr(i int) *int { return &i }

func TestApplyActivityHintMergesData(t *testing.T) {
	act := &document.Activity{
		ID:   "act1",
		Type: document.ActivityTypeSave,
		Damage: &document.ActivityDamage{
			OnSave: "half",
			Parts:  []document.DamagePart{{Number: intPtr(1), Denomination: intPtr(8), Types: []string{"fire"}}},
		},
		Save: &document.Save{Ability: "dex", DC: document.DC{Calculation: "spellcasting"}},
	}
	hint := enrichers.Features().ActivityHints["Maneuver: Trip Attack (Str.)"]

	require.NoError(t, enrichers.ApplyActivityHint(act, &hint))

	assert.Equal(t, "full", act.Damage.OnSave)
	assert.Len(t, act.Damage.Parts, 1, "parts survive a partial damage hint")
	assert.Equal(t, "str", act.Save.Ability)
	assert.Equal(t, "8 + @prof + max(@abilities.dex.mod, @abilities.str.mod)", act.Save.DC.Formula)
	assert.Equal(t, "", act.Save.DC.Calculation)
}

func TestApplyActivityHintFields(t *testing.T) {
	act := &document.Activity{ID: "act1", Type: document.ActivityTypeHeal}
	hint := enrichers.Features().ActivityHints["Second Wind"]

	require.NoError(t, enrichers.ApplyActivityHint(act, &hint))

	require.NotNil(t, act.Target)
	assert.Equal(t, "self", act.Target.Affects.Type)
	require.NotNil(t, act.Consumption)
	require.Len(t, act.Consumption.Targets, 1)
	assert.Equal(t, "itemUses", act.Consumption.Targets[0].Type)
	require.NotNil(t, act.Healing)
	assert.Equal(t, 10, *act.Healing.Denomination)
	assert.Equal(t, "@classes.fighter.levels", act.Healing.Bonus)
	assert.Equal(t, []string{"healing"}, act.Healing.Types)
}

func TestApplyActivityHintDottedFlags(t *testing.T) {
	act := &document.Activity{ID: "act1", Type: document.ActivityTypeCheck}
	hint := enrichers.Features().ActivityHints["Maneuver: Tactical Assessment"]

	require.NoError(t, enrichers.ApplyActivityHint(act, &hint))

	assert.Equal(t, "Roll Check (Apply Effect First)", act.Name)
	require.NotNil(t, act.Check)
	assert.Equal(t, []string{"his", "inv", "ins"}, act.Check.Associated)
	assert.Equal(t, map[string]any{"ddbimporter": map[string]any{"noeffect": true}}, act.Flags)
}

func TestApplyDocumentOverride(t *testing.T) {
	max := "3"
	item := &document.Item{
		ID:   "item1",
		Name: "Partially Amphibious",
		Type: document.ItemTypeFeat,
		System: document.ItemSystem{
			Uses: document.Uses{Max: &max},
		},
	}
	override := enrichers.Features().DocumentOverrides["Partially Amphibious"]

	require.NoError(t, enrichers.ApplyDocumentOverride(item, &override))

	require.NotNil(t, item.System.Uses.Max)
	assert.Equal(t, "1", *item.System.Uses.Max)
	require.NotNil(t, item.System.Uses.Spent)
	assert.Equal(t, 0, *item.System.Uses.Spent)
	assert.Equal(t, []document.Recovery{{Period: "lr", Type: "recoverAll"}}, item.System.Uses.Recovery)
	assert.Equal(t, true, item.Flags["midiProperties"].(map[string]any)["toggleEffect"])
}

func TestApplyDocumentOverrideKeepsHostOnlyPaths(t *testing.T) {
	item := &document.Item{
		ID:   "item1",
		Name: "Combat Superiority",
		Type: document.ItemTypeFeat,
	}
	override := enrichers.DocumentOverride{Data: map[string]any{
		"system.type.value":          "class",
		"system.requirements":        "Fighter 3",
		"flags.ddbimporter.noeffect": true,
		"sort":                       float64(100),
	}}

	require.NoError(t, enrichers.ApplyDocumentOverride(item, &override))

	m, err := document.ToMap(item)
	require.NoError(t, err)
	for path, want := range override.Data {
		got, ok := docpath.Get(m, path)
		if assert.True(t, ok, "path %s", path) {
			assert.Equal(t, want, got, "path %s", path)
		}
	}
	assert.Equal(t, "Fighter 3", item.System.Extra["requirements"])
	assert.Equal(t, "Combat Superiority", item.Name)
}

func TestMergeActivityDataKeepsHostOnlyPaths(t *testing.T) {
	act := &document.Activity{ID: "act1", Type: document.ActivityTypeUtility}

	require.NoError(t, enrichers.MergeActivityData(act, map[string]any{
		"sort":             float64(2),
		"visibility.level": map[string]any{"min": float64(3)},
	}))

	assert.EqualValues(t, 2, act.Extra["sort"])
	assert.Equal(t, map[string]any{"level": map[string]any{"min": float64(3)}}, act.Extra["visibility"])
}

func TestApplyDocumentOverrideRemovesDamage(t *testing.T) {
	item := &document.Item{
		Name: "Action Surge",
		System: document.ItemSystem{
			Damage: &document.Damage{Bonus: "2"},
			Activities: map[string]document.Activity{
				"a": {ID: "a", Damage: &document.ActivityDamage{OnSave: "none"}},
			},
		},
	}
	override := enrichers.Features().DocumentOverrides["Action Surge"]

	require.NoError(t, enrichers.ApplyDocumentOverride(item, &override))

	assert.Nil(t, item.System.Damage)
	assert.Nil(t, item.System.Activities["a"].Damage)
}

func TestApplyDocumentOverrideDamageBonus(t *testing.T) {
	item := &document.Item{Name: "Arcane Propulsion Armor Gauntlet"}
	override := enrichers.Features().DocumentOverrides["Arcane Propulsion Armor Gauntlet"]

	require.NoError(t, enrichers.ApplyDocumentOverride(item, &override))

	require.NotNil(t, item.System.Damage)
	assert.Equal(t, "@mod", item.System.Damage.Bonus)
}

func TestBuildEffect(t *testing.T) {
	hint := enrichers.Features().EffectHints["Maneuver: Ambush"]

	effect, err := enrichers.BuildEffect("eff1", "Maneuver: Ambush", &hint)
	require.NoError(t, err)

	assert.Equal(t, "eff1", effect.ID)
	assert.Equal(t, "Maneuver: Ambush", effect.Name)
	assert.False(t, effect.Transfer)
	require.Len(t, effect.Changes, 1)
	assert.Equal(t, document.EffectChange{
		Key:      "system.attributes.init.bonus",
		Value:    "@scale.fighter.combat-superiority-die",
		Mode:     document.EffectModeAdd,
		Priority: 20,
	}, effect.Changes[0])
}

func TestBuildEffectAppliesData(t *testing.T) {
	hint := enrichers.Features().EffectHints["Hold Breath"]

	effect, err := enrichers.BuildEffect("eff1", "Hold Breath", &hint)
	require.NoError(t, err)

	assert.True(t, effect.Transfer)
	require.NotNil(t, effect.Duration.Rounds)
	assert.Equal(t, 600, *effect.Duration.Rounds)
}

func TestBuildEffectRequiresHint(t *testing.T) {
	_, err := enrichers.BuildEffect("eff1", "Nothing", nil)
	assert.Error(t, err)
}
