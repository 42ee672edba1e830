// Package formula parses the roll formulas written into activities and rolls
// sample values for them.
package formula

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/ddb-importer/internal/entities/document"
	"github.com/KirkDiggler/ddb-importer/internal/errors"
)

var (
	diceTermRegex     = regexp.MustCompile(`^(\d*)d(\d+)$`)
	constantTermRegex = regexp.MustCompile(`^\d+$`)
)

// DiceTerm is a signed XdY term
type DiceTerm struct {
	Count int
	Size  int
	Sign  int
}

// String renders the term as XdY
func (t DiceTerm) String() string {
	return fmt.Sprintf("%dd%d", t.Count, t.Size)
}

// Expression is a parsed formula. References such as "@mod" or
// "@classes.fighter.levels" cannot be resolved without an actor and are
// kept in Unresolved.
type Expression struct {
	Dice       []DiceTerm
	Constant   int
	Unresolved []string
}

// Parse splits a formula into dice, constants and references. Terms are
// joined by "+" or "-"; anything that is neither dice nor a number is
// treated as a reference.
func Parse(formula string) (*Expression, error) {
	expr := &Expression{}
	formula = strings.ReplaceAll(strings.ToLower(formula), " ", "")
	if formula == "" {
		return expr, nil
	}

	sign := 1
	start := 0
	for i := 0; i <= len(formula); i++ {
		if i < len(formula) && formula[i] != '+' && formula[i] != '-' {
			continue
		}
		term := formula[start:i]
		if term == "" {
			// only a leading sign may have an empty term before it
			if i != 0 {
				return nil, errors.InvalidArgumentf("invalid formula %q", formula)
			}
		} else if err := expr.add(term, sign); err != nil {
			return nil, err
		}
		if i < len(formula) {
			sign = 1
			if formula[i] == '-' {
				sign = -1
			}
		}
		start = i + 1
	}

	return expr, nil
}

func (e *Expression) add(term string, sign int) error {
	if m := diceTermRegex.FindStringSubmatch(term); m != nil {
		count := 1
		if m[1] != "" {
			count, _ = strconv.Atoi(m[1])
		}
		size, _ := strconv.Atoi(m[2])
		if count <= 0 || size <= 0 {
			return errors.InvalidArgumentf("dice count and size must be positive: %s", term)
		}
		e.Dice = append(e.Dice, DiceTerm{Count: count, Size: size, Sign: sign})
		return nil
	}
	if constantTermRegex.MatchString(term) {
		v, err := strconv.Atoi(term)
		if err != nil {
			return errors.InvalidArgumentf("invalid constant: %s", term)
		}
		e.Constant += sign * v
		return nil
	}
	e.Unresolved = append(e.Unresolved, term)
	return nil
}

// PartFormula renders a damage or healing part as a single formula
func PartFormula(part document.DamagePart) string {
	if part.Custom.Enabled {
		return part.Custom.Formula
	}

	terms := make([]string, 0, 2)
	if part.Number != nil && part.Denomination != nil && *part.Number > 0 && *part.Denomination > 0 {
		terms = append(terms, fmt.Sprintf("%dd%d", *part.Number, *part.Denomination))
	}
	if part.Bonus != "" {
		terms = append(terms, part.Bonus)
	}
	return strings.Join(terms, " + ")
}

// Result is one sample roll
type Result struct {
	Formula    string
	Rolls      []int
	Total      int
	Unresolved []string
}

// Roller rolls formulas with a dice roller
type Roller struct {
	dice dice.Roller
}

// NewRoller creates a Roller. A nil roller selects the toolkit's default
// random roller.
func NewRoller(roller dice.Roller) *Roller {
	if roller == nil {
		roller = dice.DefaultRoller
	}
	return &Roller{dice: roller}
}

// Roll rolls every dice term of a formula and adds its constants.
// Unresolved references count as zero and are reported on the result.
func (r *Roller) Roll(formula string) (*Result, error) {
	expr, err := Parse(formula)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Formula:    formula,
		Total:      expr.Constant,
		Unresolved: expr.Unresolved,
	}
	for _, term := range expr.Dice {
		rolls, err := r.dice.RollN(term.Count, term.Size)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll %s", term)
		}
		for _, v := range rolls {
			result.Rolls = append(result.Rolls, v)
			result.Total += term.Sign * v
		}
	}

	return result, nil
}

// RollActivity rolls samples for every damage part and the healing part of
// an activity, in that order. Parts with an empty formula are skipped.
func (r *Roller) RollActivity(act document.Activity) ([]*Result, error) {
	var parts []document.DamagePart
	if act.Damage != nil {
		parts = append(parts, act.Damage.Parts...)
	}
	if act.Healing != nil {
		parts = append(parts, *act.Healing)
	}

	results := make([]*Result, 0, len(parts))
	for _, part := range parts {
		f := PartFormula(part)
		if f == "" {
			continue
		}
		res, err := r.Roll(f)
		if err != nil {
			return nil, errors.Wrapf(err, "activity %s", act.ID)
		}
		results = append(results, res)
	}
	return results, nil
}
