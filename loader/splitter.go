package loader

import "fmt"

// coreKeys is the closed set of top-level keys this system understands.
// Everything else in a document is host-owned extension data and passes
// through uninterpreted.
var coreKeys = map[string]bool{
	"model":         true,
	"name":          true,
	"table":         true,
	"fields":        true,
	"relationships": true,
	"relations":     true,
	"options":       true,
	"metadata":      true,
}

// CoreKey reports whether a top-level key belongs to the core section.
func CoreKey(key string) bool { return coreKeys[key] }

// Split separates a raw document into the core section and the
// host-owned extension sections. A document may wrap its core section in
// an explicit "core" key; that convention takes precedence over the flat
// one, and mixing both in one document is an error. Extension sections
// are never validated.
func Split(doc map[string]any) (core map[string]any, ext map[string]any, err error) {
	if wrapped, ok := doc["core"]; ok {
		coreMap, ok := wrapped.(map[string]any)
		if !ok {
			return nil, nil, fmt.Errorf("loader: the core section must be a mapping, got %T", wrapped)
		}
		ext = make(map[string]any)
		for key, value := range doc {
			if key == "core" {
				continue
			}
			if coreKeys[key] {
				return nil, nil, fmt.Errorf("loader: document mixes the nested core convention with top-level core key %q", key)
			}
			ext[key] = value
		}
		return coreMap, ext, nil
	}

	core = make(map[string]any)
	ext = make(map[string]any)
	for key, value := range doc {
		if coreKeys[key] {
			core[key] = value
		} else {
			ext[key] = value
		}
	}
	return core, ext, nil
}

// Merge is the inverse of Split for documents using the flat convention:
// Merge(Split(doc)) == doc.
func Merge(core, ext map[string]any) map[string]any {
	out := make(map[string]any, len(core)+len(ext))
	for key, value := range core {
		out[key] = value
	}
	for key, value := range ext {
		out[key] = value
	}
	return out
}
