package spell_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/ddb-importer/internal/entities/ddb"
	"github.com/KirkDiggler/ddb-importer/internal/entities/document"
	"github.com/KirkDiggler/ddb-importer/internal/parsers/spell"
)

func intPtr(i int) *int { return &i }

func strPtr(s string) *string { return &s }

func TestTargetCount(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        int
		found       bool
	}{
		{
			name:        "number word",
			description: "Choose three creatures of your choice within range.",
			want:        3,
			found:       true,
		},
		{
			name:        "largest wins",
			description: "One creature is marked. Up to five willing creature allies gain the benefit.",
			want:        5,
			found:       true,
		},
		{
			name:        "higher levels ignored",
			description: "Choose one target.\nAt Higher Levels. You can affect two additional targets, up to ten target creatures.",
			want:        1,
			found:       true,
		},
		{
			name:        "animated corpses ignored",
			description: "Choose four corpses of Medium size you have animated with this spell.\nOne creature must obey.",
			want:        1,
			found:       true,
		},
		{
			name:        "unmapped words",
			description: "A creature you can see must make a saving throw.",
			found:       false,
		},
		{
			name:        "empty",
			description: "",
			found:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := spell.TargetCount(tt.description)
			assert.Equal(t, tt.found, found)
			if tt.found {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestTargetsCreature(t *testing.T) {
	assert.True(t, spell.TargetsCreature("You touch a creature and heal it."))
	assert.True(t, spell.TargetsCreature("Each Creature of your choice that you can see within range."))
	assert.True(t, spell.TargetsCreature("three humanoids within range"))
	assert.False(t, spell.TargetsCreature("You create a wall of fire on a solid surface."))
}

func TestInferTarget(t *testing.T) {
	tests := []struct {
		name         string
		def          *ddb.SpellDefinition
		wantTarget   func(t *testing.T, target document.Target)
		wantRange    func(t *testing.T, rng document.Range)
		wantAdjusted bool
	}{
		{
			name: "area of effect wins",
			def: &ddb.SpellDefinition{
				Name:        "Burning Hands",
				Description: "Each creature in a 15-foot cone must make a Dexterity saving throw.",
				Range: ddb.Range{
					Origin:   ddb.RangeOriginSelf,
					AOEType:  strPtr("Cone"),
					AOEValue: intPtr(30),
				},
			},
			wantTarget: func(t *testing.T, target document.Target) {
				assert.Equal(t, "cone", target.Template.Type)
				assert.Equal(t, "30", target.Template.Size)
				assert.Equal(t, document.UnitsFeet, target.Template.Units)
				assert.Empty(t, target.Affects.Type)
				assert.Empty(t, target.Affects.Count)
			},
			wantRange: func(t *testing.T, rng document.Range) {
				require.NotNil(t, rng.Units)
				assert.Equal(t, document.UnitsSelf, *rng.Units)
				assert.Nil(t, rng.Value)
			},
		},
		{
			name: "touch a creature",
			def: &ddb.SpellDefinition{
				Name:        "Cure Wounds",
				Description: "A creature you touch regains a number of hit points.",
				Range:       ddb.Range{Origin: ddb.RangeOriginTouch, RangeValue: intPtr(5)},
			},
			wantTarget: func(t *testing.T, target document.Target) {
				assert.Equal(t, "1", target.Affects.Count)
				assert.Equal(t, document.AffectsCreature, target.Affects.Type)
			},
			wantRange: func(t *testing.T, rng document.Range) {
				require.NotNil(t, rng.Units)
				assert.Equal(t, document.UnitsTouch, *rng.Units)
				assert.Nil(t, rng.Value)
			},
		},
		{
			name: "ranged creatures of your choice",
			def: &ddb.SpellDefinition{
				Name:        "Bless",
				Description: "You bless up to three creatures of your choice within range.",
				Range:       ddb.Range{Origin: ddb.RangeOriginRanged, RangeValue: intPtr(30)},
			},
			wantTarget: func(t *testing.T, target document.Target) {
				assert.Equal(t, "3", target.Affects.Count)
				assert.Equal(t, document.AffectsCreature, target.Affects.Type)
			},
			wantRange: func(t *testing.T, rng document.Range) {
				require.NotNil(t, rng.Units)
				assert.Equal(t, document.UnitsFeet, *rng.Units)
				assert.Equal(t, 30, *rng.Value)
			},
		},
		{
			name: "self damage radius",
			def: &ddb.SpellDefinition{
				Name:        "Thunderclap",
				Description: "Each creature within range must succeed on a Constitution saving throw.",
				Range:       ddb.Range{Origin: ddb.RangeOriginSelf, RangeValue: intPtr(5)},
				Modifiers:   []ddb.Modifier{{Type: ddb.ModifierTypeDamage, SubType: "thunder"}},
			},
			wantTarget: func(t *testing.T, target document.Target) {
				assert.Equal(t, document.TemplateRadius, target.Template.Type)
			},
			wantRange: func(t *testing.T, rng document.Range) {
				require.NotNil(t, rng.Units)
				assert.Equal(t, document.UnitsFeet, *rng.Units)
				assert.Equal(t, 5, *rng.Value)
			},
			wantAdjusted: true,
		},
		{
			name: "self damage without range value",
			def: &ddb.SpellDefinition{
				Name:        "Shocking Grasp",
				Description: "Lightning springs from your hand to deliver a shock to a creature you try to touch.",
				Range:       ddb.Range{Origin: ddb.RangeOriginSelf},
				Modifiers:   []ddb.Modifier{{Type: ddb.ModifierTypeDamage, SubType: "lightning"}},
			},
			wantTarget: func(t *testing.T, target document.Target) {
				assert.Equal(t, document.AffectsCreature, target.Affects.Type)
				assert.Empty(t, target.Template.Type)
			},
			wantRange: func(t *testing.T, rng document.Range) {
				require.NotNil(t, rng.Units)
				assert.Equal(t, document.UnitsSelf, *rng.Units)
				assert.Nil(t, rng.Value)
			},
		},
		{
			name: "touch overrides a larger count",
			def: &ddb.SpellDefinition{
				Name:        "Shared Ward",
				Description: "You touch up to two creatures. Each creature you touch gains a ward.",
				Range:       ddb.Range{Origin: ddb.RangeOriginTouch},
			},
			wantTarget: func(t *testing.T, target document.Target) {
				assert.Equal(t, "1", target.Affects.Count)
				assert.Equal(t, document.AffectsCreature, target.Affects.Type)
			},
			wantRange: func(t *testing.T, rng document.Range) {
				require.NotNil(t, rng.Units)
				assert.Equal(t, document.UnitsTouch, *rng.Units)
				assert.Nil(t, rng.Value)
			},
		},
		{
			name: "no range drops the value",
			def: &ddb.SpellDefinition{
				Name:  "Contingency",
				Range: ddb.Range{Origin: ddb.RangeOriginNone, RangeValue: intPtr(60)},
			},
			wantTarget: func(t *testing.T, target document.Target) {
				assert.Equal(t, document.AffectsNone, target.Affects.Type)
			},
			wantRange: func(t *testing.T, rng document.Range) {
				require.NotNil(t, rng.Units)
				assert.Equal(t, document.UnitsNone, *rng.Units)
				assert.Nil(t, rng.Value)
			},
		},
		{
			name: "thick barrier sets width",
			def: &ddb.SpellDefinition{
				Name:        "Blade Barrier",
				Description: "You create a barrier up to 100 feet long, 20 foot high, and 10 foot thick.",
				Range:       ddb.Range{Origin: ddb.RangeOriginRanged, RangeValue: intPtr(90)},
			},
			wantTarget: func(t *testing.T, target document.Target) {
				assert.Equal(t, "10", target.Template.Width)
				assert.Equal(t, "20", target.Template.Height)
				assert.Empty(t, target.Template.Type)
			},
			wantRange: func(t *testing.T, rng document.Range) {
				assert.Equal(t, 90, *rng.Value)
			},
		},
		{
			name: "self without damage",
			def: &ddb.SpellDefinition{
				Name:        "Shield",
				Description: "An invisible barrier of magical force appears and protects you.",
				Range:       ddb.Range{Origin: ddb.RangeOriginSelf},
			},
			wantTarget: func(t *testing.T, target document.Target) {
				assert.Equal(t, document.AffectsSelf, target.Affects.Type)
			},
			wantRange: func(t *testing.T, rng document.Range) {
				require.NotNil(t, rng.Units)
				assert.Equal(t, document.UnitsSelf, *rng.Units)
			},
		},
		{
			name: "no range",
			def: &ddb.SpellDefinition{
				Name:  "Wish",
				Range: ddb.Range{Origin: ddb.RangeOriginNone},
			},
			wantTarget: func(t *testing.T, target document.Target) {
				assert.Equal(t, document.AffectsNone, target.Affects.Type)
			},
			wantRange: func(t *testing.T, rng document.Range) {
				require.NotNil(t, rng.Units)
				assert.Equal(t, document.UnitsNone, *rng.Units)
				assert.Nil(t, rng.Value)
			},
		},
		{
			name: "absent origin",
			def: &ddb.SpellDefinition{
				Name:        "Mystery",
				Description: "A creature you can see within range.",
			},
			wantTarget: func(t *testing.T, target document.Target) {
				assert.Empty(t, target.Affects.Type)
			},
			wantRange: func(t *testing.T, rng document.Range) {
				assert.Nil(t, rng.Units)
			},
		},
		{
			name: "wall of panels",
			def: &ddb.SpellDefinition{
				Name:        "Wall of Fire",
				Description: "You create a wall of fire. You can make the wall up to 60 feet long, 20 foot high, and 1 foot thick, or a ringed wall. Or ten 10-foot-square panels.",
				Range:       ddb.Range{Origin: ddb.RangeOriginRanged, RangeValue: intPtr(120)},
			},
			wantTarget: func(t *testing.T, target document.Target) {
				assert.Equal(t, document.TemplateWall, target.Template.Type)
				assert.Equal(t, document.UnitsFeet, target.Template.Units)
				assert.Equal(t, "100", target.Template.Size)
				assert.Equal(t, "20", target.Template.Height)
				assert.Empty(t, target.Template.Width)
			},
			wantRange: func(t *testing.T, rng document.Range) {
				assert.Equal(t, 120, *rng.Value)
			},
		},
		{
			name: "wall by length",
			def: &ddb.SpellDefinition{
				Name:        "Wall of Stone",
				Description: "The wall is 6 inches wide, and each panel is 10 feet long and 30 foot tall.",
				Range:       ddb.Range{Origin: ddb.RangeOriginRanged, RangeValue: intPtr(120)},
			},
			wantTarget: func(t *testing.T, target document.Target) {
				assert.Equal(t, document.TemplateWall, target.Template.Type)
				assert.Equal(t, "10", target.Template.Size)
				assert.Equal(t, "30", target.Template.Height)
			},
			wantRange: func(t *testing.T, rng document.Range) {
				assert.Equal(t, 120, *rng.Value)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, adjusted := spell.InferTarget(tt.def)
			assert.Equal(t, tt.wantAdjusted, adjusted != nil)

			result := spell.Infer(tt.def)
			tt.wantTarget(t, result.Target)
			tt.wantRange(t, result.Range)
		})
	}
}

func TestInferIsIdempotent(t *testing.T) {
	def := &ddb.SpellDefinition{
		Name:        "Bless",
		Description: "You bless up to three creatures of your choice within range.",
		Range:       ddb.Range{Origin: ddb.RangeOriginRanged, RangeValue: intPtr(30)},
	}

	first := spell.Infer(def)
	second := spell.Infer(def)
	assert.Equal(t, first, second)
	assert.Equal(t, 30, *def.Range.RangeValue)
}

func TestInferNilDefinition(t *testing.T) {
	result := spell.Infer(nil)
	assert.Equal(t, document.NewTarget(), result.Target)
	assert.Nil(t, result.Range.Units)
}

func TestInferRangeOrigins(t *testing.T) {
	tests := []struct {
		origin ddb.RangeOrigin
		units  string
	}{
		{ddb.RangeOriginFeet, document.UnitsFeet},
		{ddb.RangeOriginMiles, document.UnitsMiles},
		{ddb.RangeOriginSight, document.UnitsSpec},
		{ddb.RangeOriginSpecial, document.UnitsSpec},
		{ddb.RangeOriginAny, document.UnitsAny},
		{ddb.RangeOrigin("Unlisted"), document.UnitsFeet},
	}

	for _, tt := range tests {
		t.Run(string(tt.origin), func(t *testing.T) {
			rng := spell.InferRange(&ddb.SpellDefinition{
				Range: ddb.Range{Origin: tt.origin, RangeValue: intPtr(1)},
			})
			require.NotNil(t, rng.Units)
			assert.Equal(t, tt.units, *rng.Units)
			assert.Equal(t, 1, *rng.Value)
		})
	}

	for _, origin := range []ddb.RangeOrigin{ddb.RangeOriginTouch, ddb.RangeOriginSelf, ddb.RangeOriginNone} {
		t.Run(string(origin)+" drops value", func(t *testing.T) {
			rng := spell.InferRange(&ddb.SpellDefinition{
				Range: ddb.Range{Origin: origin, RangeValue: intPtr(60)},
			})
			require.NotNil(t, rng.Units)
			assert.Nil(t, rng.Value)
		})
	}
}
