package spell

import (
	"github.com/KirkDiggler/ddb-importer/internal/entities/ddb"
	"github.com/KirkDiggler/ddb-importer/internal/entities/document"
)

// InferRange derives the range of a spell from its range origin. Touch, self
// and none ranges drop the numeric value; an absent origin has no units.
func InferRange(def *ddb.SpellDefinition) document.Range {
	if def == nil {
		return document.Range{}
	}

	var value *int
	if def.Range.RangeValue != nil {
		v := *def.Range.RangeValue
		value = &v
	}
	units := document.UnitsFeet

	switch def.Range.Origin {
	case ddb.RangeOriginTouch:
		value = nil
		units = document.UnitsTouch
	case ddb.RangeOriginSelf:
		value = nil
		units = document.UnitsSelf
	case ddb.RangeOriginNone:
		value = nil
		units = document.UnitsNone
	case ddb.RangeOriginRanged, ddb.RangeOriginFeet:
		units = document.UnitsFeet
	case ddb.RangeOriginMiles:
		units = document.UnitsMiles
	case ddb.RangeOriginSight, ddb.RangeOriginSpecial:
		units = document.UnitsSpec
	case ddb.RangeOriginAny:
		units = document.UnitsAny
	case "":
		return document.Range{Value: value}
	}

	return document.Range{Value: value, Units: &units}
}

// Inference is the derived target and range of a spell
type Inference struct {
	Target document.Target
	Range  document.Range
}

// Infer derives target and range together, folding any range adjustment the
// target makes into the range. It never fails and does not modify def.
func Infer(def *ddb.SpellDefinition) Inference {
	rng := InferRange(def)
	target, adjusted := InferTarget(def)
	if adjusted != nil {
		rng = *adjusted
	}
	return Inference{Target: target, Range: rng}
}
