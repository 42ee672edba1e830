package enrichers

import (
	"log/slog"

	"github.com/KirkDiggler/ddb-importer/internal/entities/document"
	"github.com/KirkDiggler/ddb-importer/internal/errors"
	"github.com/KirkDiggler/ddb-importer/internal/pkg/docpath"
)

const itemUsesConsumption = "itemUses"

// ApplyActivityHint adjusts an activity with a hint. Hint data is merged last.
func ApplyActivityHint(act *document.Activity, hint *ActivityHint) error {
	if act == nil || hint == nil {
		return nil
	}

	if hint.Name != "" {
		act.Name = hint.Name
	}
	if hint.ActivationType != "" {
		if act.Activation == nil {
			act.Activation = &document.Activation{}
		}
		act.Activation.Type = hint.ActivationType
	}
	if hint.TargetType != "" {
		if act.Target == nil {
			target := document.NewTarget()
			act.Target = &target
		}
		act.Target.Affects.Type = hint.TargetType
	}
	if hint.AddItemConsume {
		if act.Consumption == nil {
			act.Consumption = &document.Consumption{}
		}
		act.Consumption.Targets = append(act.Consumption.Targets, document.ConsumptionTarget{
			Type:  itemUsesConsumption,
			Value: "1",
		})
	}

	return MergeActivityData(act, hint.Data)
}

// MergeActivityData deep merges generic data into an activity
func MergeActivityData(act *document.Activity, data map[string]any) error {
	if len(data) == 0 {
		return nil
	}

	m, err := document.ToMap(act)
	if err != nil {
		return errors.Wrapf(err, "failed to render activity %s", act.ID)
	}
	docpath.Merge(m, data)

	var merged document.Activity
	if err := document.FromMap(m, &merged); err != nil {
		return errors.Wrapf(err, "failed to apply data to activity %s", act.ID)
	}
	*act = merged

	warnUnretained(act, data, "activity", act.Name)
	return nil
}

// ApplyDocumentOverride replaces document fields by dotted path
func ApplyDocumentOverride(item *document.Item, override *DocumentOverride) error {
	if item == nil || override == nil {
		return nil
	}

	if override.RemoveDamage {
		item.System.Damage = nil
		for id, act := range item.System.Activities {
			act.Damage = nil
			item.System.Activities[id] = act
		}
	}

	if len(override.Data) == 0 {
		return nil
	}

	m, err := document.ToMap(item)
	if err != nil {
		return errors.Wrapf(err, "failed to render %s", item.Name)
	}
	for _, path := range sortedKeys(override.Data) {
		docpath.Set(m, path, override.Data[path])
	}

	var updated document.Item
	if err := document.FromMap(m, &updated); err != nil {
		return errors.Wrapf(err, "failed to apply overrides to %s", item.Name)
	}
	*item = updated

	warnUnretained(item, override.Data, "document", item.Name)
	return nil
}

// BuildEffect creates the active effect described by a hint
func BuildEffect(id, itemName string, hint *EffectHint) (*document.Effect, error) {
	if hint == nil {
		return nil, errors.InvalidArgument("effect hint is required")
	}

	effect := &document.Effect{
		ID:       id,
		Name:     itemName,
		Transfer: true,
		Changes:  make([]document.EffectChange, 0, len(hint.Changes)),
	}
	if hint.Name != "" {
		effect.Name = hint.Name
	}
	if hint.Transfer != nil {
		effect.Transfer = *hint.Transfer
	}
	for _, change := range hint.Changes {
		effect.Changes = append(effect.Changes, document.EffectChange{
			Key:      change.Key,
			Value:    change.Value,
			Mode:     change.Mode,
			Priority: change.Priority,
		})
	}

	if len(hint.Data) == 0 {
		return effect, nil
	}

	m, err := document.ToMap(effect)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to render effect %s", effect.Name)
	}
	for _, path := range sortedKeys(hint.Data) {
		docpath.Set(m, path, hint.Data[path])
	}

	var out document.Effect
	if err := document.FromMap(m, &out); err != nil {
		return nil, errors.Wrapf(err, "failed to apply data to effect %s", effect.Name)
	}

	warnUnretained(&out, hint.Data, "effect", out.Name)
	return &out, nil
}

// warnUnretained logs override paths that fall inside a typed block with no
// field for them. Unknown keys of documents, systems, activities and effects
// are kept in their Extra maps.
func warnUnretained(doc any, data map[string]any, kind, name string) {
	m, err := document.ToMap(doc)
	if err != nil {
		return
	}
	for _, path := range leafPaths("", data) {
		if _, ok := docpath.Get(m, path); !ok {
			slog.Warn("Override path not retained",
				"kind", kind,
				"name", name,
				"path", path,
			)
		}
	}
}

func leafPaths(prefix string, data map[string]any) []string {
	var paths []string
	for _, key := range sortedKeys(data) {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		if nested, ok := data[key].(map[string]any); ok && len(nested) > 0 {
			paths = append(paths, leafPaths(path, nested)...)
			continue
		}
		paths = append(paths, path)
	}
	return paths
}
