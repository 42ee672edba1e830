package srd

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/fadedpez/dnd5e-api/entities"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	ddbentities "github.com/KirkDiggler/ddb-importer/internal/entities/ddb"
	"github.com/KirkDiggler/ddb-importer/internal/parsers/common"
)

var (
	distance    = regexp.MustCompile(`(?i)^(\d+)\s*(feet|foot|ft|miles?)`)
	castingTime = regexp.MustCompile(`(?i)^(\d+)\s*(bonus action|reaction|action|minutes?|hours?)`)
	timeSpan    = regexp.MustCompile(`(?i)(\d+)\s*(rounds?|minutes?|hours?|days?)`)
	dice        = regexp.MustCompile(`(\d+)d(\d+)`)
)

// Activation type ids as numbered by the character service
var activationIDs = map[string]int{
	"action":       1,
	"bonus action": 3,
	"reaction":     4,
	"minute":       6,
	"hour":         7,
}

// title builds a caser per call since casers keep state
func title(s string) string {
	return cases.Title(language.English).String(s)
}

// apiClassName is the class key the dnd5e api filters on
func apiClassName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// displayClassName is the class name spell preparation rules are keyed by
func displayClassName(name string) string {
	return title(strings.TrimSpace(name))
}

// convertSpell shapes an SRD spell like a generic proxy spell entry. The SRD
// carries no attack flag, so a damaging spell without a save is treated as
// an attack.
func convertSpell(spell *entities.Spell, className string) *ddbentities.Spell {
	if spell == nil {
		return nil
	}

	def := &ddbentities.SpellDefinition{
		Name:          spell.Name,
		Level:         spell.SpellLevel,
		Ritual:        spell.Ritual,
		Concentration: spell.Concentration,
		Range:         convertRange(spell.Range),
		Activation:    convertActivation(spell.CastingTime),
		Duration:      convertDuration(spell.Duration),
		Tags:          []string{},
	}
	if spell.SpellSchool != nil {
		def.School = spell.SpellSchool.Name
	}

	if spell.AreaOfEffect != nil && spell.AreaOfEffect.Size > 0 {
		aoeType := title(spell.AreaOfEffect.Type)
		aoeValue := spell.AreaOfEffect.Size
		def.Range.AOEType = &aoeType
		def.Range.AOEValue = &aoeValue
	}

	if spell.DC != nil {
		def.RequiresSavingThrow = true
		if spell.DC.DCType != nil {
			if id, ok := common.AbilityID(spell.DC.DCType.Name); ok {
				def.SaveDCAbilityID = &id
			}
		}
	}

	if spell.SpellDamage != nil {
		def.Tags = append(def.Tags, ddbentities.TagDamage)
		def.Modifiers = append(def.Modifiers, damageModifier(spell))
		def.RequiresAttackRoll = spell.DC == nil
	}

	def.Description = describe(spell)

	return &ddbentities.Spell{
		Definition:    def,
		UsesSpellSlot: spell.SpellLevel > 0,
		Class:         className,
		Lookup:        classLookup(className),
		Generic:       true,
	}
}

func classLookup(className string) string {
	if className == "" {
		return ""
	}
	return ddbentities.LookupClassSpell
}

func convertRange(raw string) ddbentities.Range {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ddbentities.Range{}
	}

	if m := distance.FindStringSubmatch(trimmed); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			origin := ddbentities.RangeOriginRanged
			if strings.HasPrefix(strings.ToLower(m[2]), "mile") {
				origin = ddbentities.RangeOriginMiles
			}
			return ddbentities.Range{Origin: origin, RangeValue: &n}
		}
	}

	switch strings.ToLower(strings.Fields(trimmed)[0]) {
	case "self":
		return ddbentities.Range{Origin: ddbentities.RangeOriginSelf}
	case "touch":
		return ddbentities.Range{Origin: ddbentities.RangeOriginTouch}
	case "sight":
		return ddbentities.Range{Origin: ddbentities.RangeOriginSight}
	case "unlimited":
		return ddbentities.Range{Origin: ddbentities.RangeOriginAny}
	default:
		return ddbentities.Range{Origin: ddbentities.RangeOriginSpecial}
	}
}

func convertActivation(raw string) ddbentities.Activation {
	m := castingTime.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return ddbentities.Activation{}
	}

	n, err := strconv.Atoi(m[1])
	if err != nil {
		return ddbentities.Activation{}
	}
	unit := strings.TrimSuffix(strings.ToLower(m[2]), "s")
	id, ok := activationIDs[unit]
	if !ok {
		return ddbentities.Activation{}
	}
	return ddbentities.Activation{ActivationTime: &n, ActivationType: &id}
}

func convertDuration(raw string) *ddbentities.Duration {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}

	if m := timeSpan.FindStringSubmatch(trimmed); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			unit := title(strings.TrimSuffix(strings.ToLower(m[2]), "s"))
			return &ddbentities.Duration{
				DurationInterval: &n,
				DurationUnit:     &unit,
				DurationType:     "Time",
			}
		}
	}
	return &ddbentities.Duration{DurationType: trimmed}
}

func damageModifier(spell *entities.Spell) ddbentities.Modifier {
	mod := ddbentities.Modifier{Type: ddbentities.ModifierTypeDamage}
	if spell.SpellDamage.SpellDamageType != nil {
		mod.SubType = strings.ToLower(spell.SpellDamage.SpellDamageType.Name)
	}
	if spell.SpellDamage.SpellDamageAtSlotLevel == nil {
		return mod
	}

	base := baseDamage(spell.SpellLevel, spell.SpellDamage.SpellDamageAtSlotLevel)
	if m := dice.FindStringSubmatch(base); m != nil {
		count, _ := strconv.Atoi(m[1])
		value, _ := strconv.Atoi(m[2])
		mod.Die = &ddbentities.Die{
			DiceCount:  &count,
			DiceValue:  &value,
			DiceString: m[0],
		}
	}
	return mod
}

// baseDamage is the damage at the lowest slot the spell can be cast with
func baseDamage(level int, atSlot *entities.SpellDamageAtSlotLevel) string {
	switch level {
	case 0, 1:
		return atSlot.FirstLevel
	case 2:
		return atSlot.SecondLevel
	case 3:
		return atSlot.ThirdLevel
	case 4:
		return atSlot.FourthLevel
	case 5:
		return atSlot.FifthLevel
	case 6:
		return atSlot.SixthLevel
	case 7:
		return atSlot.SeventhLevel
	case 8:
		return atSlot.EighthLevel
	case 9:
		return atSlot.NinthLevel
	default:
		return ""
	}
}

// describe writes a short description from the structured fields. The text
// is worded so the creature heuristics pick up saves and areas.
func describe(spell *entities.Spell) string {
	var parts []string
	if spell.CastingTime != "" {
		parts = append(parts, fmt.Sprintf("Casting Time: %s", spell.CastingTime))
	}
	if spell.Range != "" {
		parts = append(parts, fmt.Sprintf("Range: %s", spell.Range))
	}
	if spell.Duration != "" {
		parts = append(parts, fmt.Sprintf("Duration: %s", spell.Duration))
	}
	if spell.DC != nil {
		save := "a saving throw"
		if spell.DC.DCType != nil {
			save = fmt.Sprintf("a %s saving throw", spell.DC.DCType.Name)
		}
		line := fmt.Sprintf("A creature of your choice must make %s", save)
		if strings.EqualFold(spell.DC.DCSuccess, "half") {
			line += ", taking half as much damage on a successful one"
		}
		parts = append(parts, line)
	}
	if spell.AreaOfEffect != nil && spell.AreaOfEffect.Size > 0 {
		parts = append(parts, fmt.Sprintf("Area: %d-foot %s", spell.AreaOfEffect.Size, spell.AreaOfEffect.Type))
	}
	return strings.Join(parts, ". ")
}
