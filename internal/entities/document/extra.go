package document

import (
	"encoding/json"
	"reflect"
	"strings"
)

// Documents keep keys their struct has no field for in Extra, so overrides
// of host fields the importer never generates survive a round trip.

func (i Item) MarshalJSON() ([]byte, error) {
	type plain Item
	return marshalWithExtra(plain(i), i.Extra)
}

func (i *Item) UnmarshalJSON(data []byte) error {
	type plain Item
	var p plain
	extra, err := unmarshalWithExtra(data, &p)
	if err != nil {
		return err
	}
	*i = Item(p)
	i.Extra = extra
	return nil
}

func (s ItemSystem) MarshalJSON() ([]byte, error) {
	type plain ItemSystem
	return marshalWithExtra(plain(s), s.Extra)
}

func (s *ItemSystem) UnmarshalJSON(data []byte) error {
	type plain ItemSystem
	var p plain
	extra, err := unmarshalWithExtra(data, &p)
	if err != nil {
		return err
	}
	*s = ItemSystem(p)
	s.Extra = extra
	return nil
}

func (a Activity) MarshalJSON() ([]byte, error) {
	type plain Activity
	return marshalWithExtra(plain(a), a.Extra)
}

func (a *Activity) UnmarshalJSON(data []byte) error {
	type plain Activity
	var p plain
	extra, err := unmarshalWithExtra(data, &p)
	if err != nil {
		return err
	}
	*a = Activity(p)
	a.Extra = extra
	return nil
}

func (e Effect) MarshalJSON() ([]byte, error) {
	type plain Effect
	return marshalWithExtra(plain(e), e.Extra)
}

func (e *Effect) UnmarshalJSON(data []byte) error {
	type plain Effect
	var p plain
	extra, err := unmarshalWithExtra(data, &p)
	if err != nil {
		return err
	}
	*e = Effect(p)
	e.Extra = extra
	return nil
}

// marshalWithExtra encodes v and adds the extra keys. Struct fields win over
// extra keys of the same name.
func marshalWithExtra(v any, extra map[string]any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil || len(extra) == 0 {
		return raw, err
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	for key, value := range extra {
		if _, ok := m[key]; !ok {
			m[key] = value
		}
	}
	return json.Marshal(m)
}

// unmarshalWithExtra decodes data into out and returns the keys out has no
// field for, or nil when there are none.
func unmarshalWithExtra(data []byte, out any) (map[string]any, error) {
	if err := json.Unmarshal(data, out); err != nil {
		return nil, err
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil || m == nil {
		return nil, err
	}

	known := jsonFieldNames(reflect.TypeOf(out).Elem())
	var extra map[string]any
	for key, value := range m {
		if _, ok := known[key]; ok {
			continue
		}
		if extra == nil {
			extra = make(map[string]any)
		}
		extra[key] = value
	}
	return extra, nil
}

func jsonFieldNames(t reflect.Type) map[string]struct{} {
	names := make(map[string]struct{}, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("json")
		if tag == "-" || !field.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if name == "" {
			name = field.Name
		}
		names[name] = struct{}{}
	}
	return names
}
