package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// readEntries reads a JSON file holding either a list of entries, a single
// entry or a proxy response envelope whose data is such a list. Debug dumps
// written by the proxy client can be fed straight back in.
func readEntries[T any](path string) ([]*T, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, fmt.Errorf("%s is empty", path)
	}

	if raw[0] == '[' {
		var list []*T
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", path, err)
		}
		return list, nil
	}

	var envelope struct {
		Success *bool           `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	if envelope.Success != nil && len(envelope.Data) > 0 {
		var list []*T
		if err := json.Unmarshal(envelope.Data, &list); err != nil {
			return nil, fmt.Errorf("failed to decode %s data: %w", path, err)
		}
		return list, nil
	}

	var single T
	if err := json.Unmarshal(raw, &single); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return []*T{&single}, nil
}
