package spell

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/ddb-importer/internal/entities/ddb"
	"github.com/KirkDiggler/ddb-importer/internal/entities/document"
	"github.com/KirkDiggler/ddb-importer/internal/parsers/common"
)

var (
	touchesCreature  = regexp.MustCompile(`(?i)You touch a creature|You touch a willing creature|affecting one creature|creature you touch|a creature you|creature( that)? you can see|interrupt a creature|would strike a creature|creature of your choice|creature or object within range|cause a creature|creature must be within range`)
	creaturesInRange = regexp.MustCompile(`(?i)(humanoid|monster|creature|target)(s)? (or loose object )?(of your choice )?(that )?(you can see )?within range`)

	numberedTargets = regexp.MustCompile(`(?i)(\w*) (falling )?(willing )?(creature|target|monster|celestial|fiend|fey|corpse(s)? of|humanoid)`)
	higherLevels    = regexp.MustCompile(`(?i)At Higher Levels`)

	thickness = regexp.MustCompile(` (\d*) foot (thick|wide)`)
	height    = regexp.MustCompile(` (\d*) foot (tall|high)`)
	wallSize  = regexp.MustCompile(` (\d*) feet long`)
)

const (
	animatedException = "you have animated"
	tenWallPanels     = "ten 10-foot-"
	wallPanelsSize    = 100
	minimumDimension  = 5
)

// TargetsCreature reports whether the description reads as targeting one or
// more creatures.
func TargetsCreature(description string) bool {
	return touchesCreature.MatchString(description) || creaturesInRange.MatchString(description)
}

// TargetCount estimates how many creatures a description affects from
// "<number word> <creature noun>" fragments. Text from "At Higher Levels" on is
// ignored, as is any fragment whose line goes on to mention corpses you have
// animated. The largest number found wins.
func TargetCount(description string) (int, bool) {
	if loc := higherLevels.FindStringIndex(description); loc != nil {
		description = description[:loc[0]]
	}

	best, found := 0, false
	for _, match := range numberedTargets.FindAllStringSubmatchIndex(description, -1) {
		if restOfLineMentions(description[match[1]:], animatedException) {
			continue
		}

		word := description[match[2]:match[3]]
		n, ok := common.NumberWord(word)
		if !ok {
			continue
		}
		if !found || n > best {
			best, found = n, true
		}
	}
	return best, found
}

func restOfLineMentions(text, phrase string) bool {
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		text = text[:idx]
	}
	return strings.Contains(strings.ToLower(text), phrase)
}

// InferTarget derives the target of a spell. The returned range is non-nil
// when the target changes the spell's range: a self centred damage spell with
// a numeric range becomes a radius of that many feet.
func InferTarget(def *ddb.SpellDefinition) (document.Target, *document.Range) {
	target := document.NewTarget()
	if def == nil {
		return target, nil
	}

	if def.Range.AOEType != nil && *def.Range.AOEType != "" && def.Range.AOEValue != nil && *def.Range.AOEValue != 0 {
		target.Template.Size = strconv.Itoa(*def.Range.AOEValue)
		target.Template.Type = strings.ToLower(*def.Range.AOEType)
		return target, nil
	}

	targetsCreatures := TargetsCreature(def.Description)
	if targetsCreatures {
		if n, ok := TargetCount(def.Description); ok {
			target.Affects.Count = strconv.Itoa(n)
		}
	}

	var rangeAdjustment *document.Range

	switch def.Range.Origin {
	case ddb.RangeOriginTouch:
		if targetsCreatures {
			target.Affects.Count = "1"
			target.Affects.Type = document.AffectsCreature
		}
	case ddb.RangeOriginSelf:
		damaging := def.HasModifierType(ddb.ModifierTypeDamage)
		switch {
		case damaging && def.Range.RangeValue != nil && *def.Range.RangeValue != 0:
			value := *def.Range.RangeValue
			units := document.UnitsFeet
			rangeAdjustment = &document.Range{Value: &value, Units: &units}
			target.Template.Type = document.TemplateRadius
		case damaging:
			target.Affects.Type = document.AffectsCreature
		default:
			target.Affects.Type = document.AffectsSelf
		}
	case ddb.RangeOriginNone:
		target.Affects.Type = document.AffectsNone
	case ddb.RangeOriginRanged, ddb.RangeOriginFeet, ddb.RangeOriginMiles:
		if targetsCreatures {
			target.Affects.Type = document.AffectsCreature
		}
	case "":
		target.Affects.Type = ""
	}

	if n, ok := firstNumber(thickness, def.Description); ok && n > minimumDimension {
		target.Template.Width = strconv.Itoa(n)
	}
	if n, ok := firstNumber(height, def.Description); ok && n > minimumDimension {
		target.Template.Height = strconv.Itoa(n)
	}

	if strings.Contains(def.Name, "Wall") {
		target.Template.Type = document.TemplateWall
		target.Template.Units = document.UnitsFeet

		if strings.Contains(def.Description, tenWallPanels) {
			target.Template.Size = strconv.Itoa(wallPanelsSize)
		} else if n, ok := firstNumber(wallSize, def.Description); ok {
			target.Template.Size = strconv.Itoa(n)
		}
	}

	return target, rangeAdjustment
}

func firstNumber(re *regexp.Regexp, text string) (int, bool) {
	match := re.FindStringSubmatch(text)
	if match == nil {
		return 0, false
	}
	n, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}
	return n, true
}
