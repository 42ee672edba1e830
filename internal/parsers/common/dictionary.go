// Package common holds the lookup tables and small converters shared by the
// spell and feature parsers.
package common

import "strings"

// numberWords maps natural number words to their value
var numberWords = map[string]int{
	"one":       1,
	"two":       2,
	"three":     3,
	"four":      4,
	"five":      5,
	"six":       6,
	"seven":     7,
	"eight":     8,
	"nine":      9,
	"ten":       10,
	"eleven":    11,
	"twelve":    12,
	"thirteen":  13,
	"fourteen":  14,
	"fifteen":   15,
	"sixteen":   16,
	"seventeen": 17,
	"eighteen":  18,
	"nineteen":  19,
	"twenty":    20,
}

// NumberWord resolves a natural number word, case-insensitive
func NumberWord(word string) (int, bool) {
	n, ok := numberWords[strings.ToLower(word)]
	return n, ok
}

var schools = map[string]string{
	"abjuration":    "abj",
	"conjuration":   "con",
	"divination":    "div",
	"enchantment":   "enc",
	"evocation":     "evo",
	"illusion":      "ill",
	"necromancy":    "nec",
	"transmutation": "trs",
}

// School returns the host school id for a school name
func School(name string) (string, bool) {
	id, ok := schools[strings.ToLower(name)]
	return id, ok
}

var activationTypes = map[int]string{
	1: "action",
	2: "none",
	3: "bonus",
	4: "reaction",
	6: "minute",
	7: "hour",
	8: "special",
}

// ActivationType returns the host activation type for a source activation type id
func ActivationType(id int) (string, bool) {
	t, ok := activationTypes[id]
	return t, ok
}

var resets = map[int]string{
	1: "sr",
	2: "lr",
	3: "day",
	4: "charges",
}

// ResetPeriod returns the host recovery period for a source reset type id
func ResetPeriod(id int) (string, bool) {
	p, ok := resets[id]
	return p, ok
}

var abilities = map[int]string{
	1: "str",
	2: "dex",
	3: "con",
	4: "int",
	5: "wis",
	6: "cha",
}

// Ability returns the ability abbreviation for a source stat id
func Ability(id int) (string, bool) {
	a, ok := abilities[id]
	return a, ok
}

var classPreparationModes = map[string]string{
	"Artificer": "prepared",
	"Cleric":    "prepared",
	"Druid":     "prepared",
	"Paladin":   "prepared",
	"Wizard":    "prepared",
	"Warlock":   "pact",
	"Bard":      "always",
	"Sorcerer":  "always",
	"Ranger":    "always",
}

// ClassPreparationMode returns the default preparation mode for a class
func ClassPreparationMode(className string) (string, bool) {
	m, ok := classPreparationModes[className]
	return m, ok
}

// AbilityID returns the source stat id for an ability abbreviation
func AbilityID(abbr string) (int, bool) {
	abbr = strings.ToLower(abbr)
	for id, a := range abilities {
		if a == abbr {
			return id, true
		}
	}
	return 0, false
}
