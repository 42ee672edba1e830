package document

import (
	"encoding/json"

	"github.com/KirkDiggler/ddb-importer/internal/errors"
)

// ToMap renders a document as its generic JSON form
func ToMap(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal document")
	}

	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal document map")
	}
	return out, nil
}

// FromMap decodes the generic JSON form back into out
func FromMap(m map[string]any, out any) error {
	raw, err := json.Marshal(m)
	if err != nil {
		return errors.Wrap(err, "failed to marshal document map")
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Wrap(err, "failed to unmarshal document")
	}
	return nil
}
