package enrichers

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/ddb-importer/internal/entities/document"
	"github.com/KirkDiggler/ddb-importer/internal/errors"
)

// File is a user maintained override file. Its entries are laid over the
// built-in tables.
//
//	spells:
//	  activity_hints:
//	    Magic Missile:
//	      type: damage
//	features:
//	  effect_hints:
//	    Rage:
//	      changes:
//	        - key: system.bonuses.mwak.damage
//	          value: "+2"
//	          mode: add
//	          priority: 20
type File struct {
	Spells   Table `yaml:"spells"`
	Features Table `yaml:"features"`
}

// LoadFile reads and validates an override file
func LoadFile(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("override file %s not found", path)
		}
		return nil, errors.Wrapf(err, "failed to read override file %s", path)
	}

	return ParseFile(raw)
}

// ParseFile decodes and validates override file content
func ParseFile(raw []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse override file")
	}

	vb := errors.NewValidationBuilder()
	validateTable(vb, "spells", f.Spells)
	validateTable(vb, "features", f.Features)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return &f, nil
}

func validateTable(vb *errors.ValidationBuilder, section string, t Table) {
	for _, name := range sortedKeys(t.ActivityHints) {
		hint := t.ActivityHints[name]
		if hint.Type != document.ActivityTypeNone && !hint.Type.Valid() {
			vb.Fieldf(section+"."+name, "unknown activity type %q", hint.Type)
		}
	}
	for _, name := range sortedKeys(t.AdditionalActivities) {
		for _, extra := range t.AdditionalActivities[name] {
			if !extra.Type.Valid() {
				vb.Fieldf(section+"."+name, "additional activity %q has unknown type %q", extra.Name, extra.Type)
			}
		}
	}
}

// UnmarshalYAML accepts the mode as its host number or its name
func (h *EffectChangeHint) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Key      string    `yaml:"key"`
		Value    string    `yaml:"value"`
		Mode     yaml.Node `yaml:"mode"`
		Priority int       `yaml:"priority"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}

	h.Key = raw.Key
	h.Value = raw.Value
	h.Priority = raw.Priority
	h.Mode = document.EffectModeCustom

	if raw.Mode.Kind == 0 {
		return nil
	}

	var number int
	if err := raw.Mode.Decode(&number); err == nil {
		h.Mode = document.EffectMode(number)
		return nil
	}

	var name string
	if err := raw.Mode.Decode(&name); err != nil {
		return err
	}
	mode, ok := document.ParseEffectMode(strings.ToLower(name))
	if !ok {
		return errors.InvalidArgumentf("unknown effect mode %q", name)
	}
	h.Mode = mode
	return nil
}
