package common

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/ddb-importer/internal/entities/ddb"
	"github.com/KirkDiggler/ddb-importer/internal/entities/document"
)

// Limited use operators
const (
	operatorAdd      = 1
	operatorMultiply = 2
)

// Activation converts a source activation. Unknown or untimed activations
// become a single action.
func Activation(a *ddb.Activation, condition string) document.Activation {
	if a != nil && a.ActivationType != nil && a.ActivationTime != nil && *a.ActivationTime != 0 {
		if activationType, ok := ActivationType(*a.ActivationType); ok {
			value := *a.ActivationTime
			return document.Activation{
				Type:      activationType,
				Value:     &value,
				Condition: condition,
			}
		}
	}

	one := 1
	return document.Activation{
		Type:      "action",
		Value:     &one,
		Condition: condition,
	}
}

// Uses converts a limited use block into host uses. The max formula adds or
// multiplies the ability modifier and proficiency bonus terms onto the base
// count as the source operators say.
func Uses(name string, lu *ddb.LimitedUse) document.Uses {
	uses := document.Uses{Recovery: []document.Recovery{}}
	if lu == nil {
		return uses
	}

	period, ok := ResetPeriod(lu.ResetType)
	if !ok {
		slog.Warn("Unknown reset type",
			"name", name,
			"reset_type", lu.ResetType,
		)
		return uses
	}

	if lu.MaxUses == 0 && lu.StatModifierUsesID == nil && !lu.UseProficiencyBonus {
		return uses
	}

	formula := ""
	if lu.MaxUses != 0 && lu.MaxUses != -1 {
		formula = fmt.Sprintf("%d", lu.MaxUses)
	}

	if lu.StatModifierUsesID != nil {
		if ability, found := Ability(*lu.StatModifierUsesID); found {
			formula = combine(formula, fmt.Sprintf("@abilities.%s.mod", ability), lu.Operator)
		}
	}

	if lu.UseProficiencyBonus {
		formula = combine(formula, "@prof", lu.ProficiencyBonusOperator)
	}

	if formula != "" {
		uses.Max = &formula
	}
	if lu.NumberUsed != nil {
		spent := *lu.NumberUsed
		uses.Spent = &spent
	}
	uses.Recovery = []document.Recovery{{Period: period, Type: "recoverAll"}}
	return uses
}

func combine(base, term string, operator int) string {
	if strings.TrimSpace(base) == "" {
		return term
	}
	if operator == operatorMultiply {
		return fmt.Sprintf("%s * %s", base, term)
	}
	return fmt.Sprintf("%s + %s", base, term)
}

// Source converts the first book reference
func Source(sources []ddb.Source) document.Source {
	if len(sources) == 0 {
		return document.Source{}
	}
	src := document.Source{SourceID: sources[0].SourceID}
	if sources[0].PageNumber != nil {
		src.Page = fmt.Sprintf("%d", *sources[0].PageNumber)
	}
	return src
}
