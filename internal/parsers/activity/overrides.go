package activity

import (
	"log/slog"

	"github.com/KirkDiggler/ddb-importer/internal/entities/document"
	"github.com/KirkDiggler/ddb-importer/internal/enrichers"
	"github.com/KirkDiggler/ddb-importer/internal/errors"
)

// AddActivity stores act on the item under its id
func AddActivity(item *document.Item, act *document.Activity) {
	if item.System.Activities == nil {
		item.System.Activities = make(map[string]document.Activity)
	}
	item.System.Activities[act.ID] = *act
}

// ApplyOverrides applies everything after the primary activity hint: extra
// activities, then document overrides, then the effect hint when effects
// are wanted. src describes the item the extra activities inherit from.
func (b *Builder) ApplyOverrides(item *document.Item, src *Source, override enrichers.Override, withEffects bool) error {
	if item == nil {
		return errors.InvalidArgument("item is required")
	}

	for _, extra := range override.AdditionalActivities {
		act, err := b.buildAdditional(src, extra)
		if err != nil {
			return errors.Wrapf(err, "failed to build additional activity %q for %s", extra.Name, item.Name)
		}
		AddActivity(item, act)
	}

	if err := enrichers.ApplyDocumentOverride(item, override.Document); err != nil {
		return err
	}

	if withEffects && override.Effect != nil {
		effect, err := enrichers.BuildEffect(b.idGen.Generate(), item.Name, override.Effect)
		if err != nil {
			return errors.Wrapf(err, "failed to build effect for %s", item.Name)
		}
		item.Effects = append(item.Effects, *effect)
		slog.Debug("Attached effect",
			"name", item.Name,
			"effect", effect.Name,
			"changes", len(effect.Changes),
		)
	}

	return nil
}

func (b *Builder) buildAdditional(src *Source, extra enrichers.AdditionalActivity) (*document.Activity, error) {
	opts := BuildOptions{
		GenerateTarget:     extra.Build.GenerateTarget,
		GenerateRange:      extra.Build.GenerateRange,
		GenerateActivation: extra.Build.GenerateActivation,
		ActivationOverride: extra.Build.ActivationOverride,
	}

	act, err := b.Build(extra.Type, src, opts)
	if err != nil {
		return nil, err
	}
	act.Name = extra.Name

	if err := enrichers.MergeActivityData(act, extra.Data); err != nil {
		return nil, err
	}
	return act, nil
}
