// Package docpath reads and writes dotted paths such as "system.uses.max"
// over generic JSON maps.
package docpath

import "strings"

// Get returns the value at path
func Get(m map[string]any, path string) (any, bool) {
	if m == nil || path == "" {
		return nil, false
	}

	parts := strings.Split(path, ".")
	var current any = m
	for _, part := range parts {
		node, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = node[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// Set writes value at path, creating intermediate maps. A non-map value in
// the way is replaced.
func Set(m map[string]any, path string, value any) {
	if m == nil || path == "" {
		return
	}

	parts := strings.Split(path, ".")
	node := m
	for _, part := range parts[:len(parts)-1] {
		next, ok := node[part].(map[string]any)
		if !ok {
			next = map[string]any{}
			node[part] = next
		}
		node = next
	}
	node[parts[len(parts)-1]] = value
}

// Merge deep merges src into dst. Keys of src may be dotted paths. Nested
// maps are merged key by key, every other value replaces what is there.
func Merge(dst, src map[string]any) {
	for key, value := range src {
		incoming, isMap := value.(map[string]any)
		if !isMap {
			Set(dst, key, value)
			continue
		}

		existing, ok := Get(dst, key)
		if existingMap, sameKind := existing.(map[string]any); ok && sameKind {
			Merge(existingMap, incoming)
			continue
		}
		Set(dst, key, copyMap(incoming))
	}
}

// Delete removes the value at path
func Delete(m map[string]any, path string) {
	idx := strings.LastIndex(path, ".")
	if idx < 0 {
		delete(m, path)
		return
	}
	parent, ok := Get(m, path[:idx])
	if !ok {
		return
	}
	if node, isMap := parent.(map[string]any); isMap {
		delete(node, path[idx+1:])
	}
}

func copyMap(src map[string]any) map[string]any {
	out := make(map[string]any, len(src))
	for k, v := range src {
		if nested, ok := v.(map[string]any); ok {
			out[k] = copyMap(nested)
			continue
		}
		out[k] = v
	}
	return out
}
