package manifest

import (
	"fmt"
)

// Input is everything Synthesize needs to build a document.
type Input struct {
	Meta Metadata
	// Existing is the document already on disk, or nil.
	Existing Document
	// Dependencies is the merged dependency map (see Merge).
	Dependencies map[string]string
	// DevDependencies is written only when non-empty.
	DevDependencies map[string]string
	// Extra holds configured package fields; they override everything else.
	Extra map[string]interface{}
	// Main is the entry point for the start script. Empty means no script.
	Main string
}

// Synthesize builds the package.json document. Each step overwrites earlier
// top-level keys: existing document, private flag, metadata, dependencies,
// devDependencies, start script, configured extra fields.
func Synthesize(in Input) Document {
	doc := Document{}
	for k, v := range in.Existing {
		doc[k] = v
	}

	doc[KeyPrivate] = true

	doc[KeyName] = in.Meta.Name
	doc[KeyDescription] = in.Meta.Description
	doc[KeyVersion] = in.Meta.Version

	deps := in.Dependencies
	if deps == nil {
		deps = map[string]string{}
	}
	doc[KeyDependencies] = deps

	if len(in.DevDependencies) > 0 {
		doc[KeyDevDependencies] = in.DevDependencies
	}

	if in.Main != "" {
		doc[KeyScripts] = map[string]interface{}{"start": "run " + in.Main}
	}

	for k, v := range in.Extra {
		doc[k] = normalizeValue(v)
	}

	return doc
}

// normalizeValue recursively converts YAML-decoded values to JSON-compatible
// types. yaml.v3 produces map[interface{}]interface{} when a mapping has
// non-string keys; those keys are rendered with fmt.Sprint.
func normalizeValue(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		m := make(map[string]interface{}, len(val))
		for k, v := range val {
			m[k] = normalizeValue(v)
		}
		return m
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(val))
		for k, v := range val {
			m[fmt.Sprint(k)] = normalizeValue(v)
		}
		return m
	case []interface{}:
		a := make([]interface{}, len(val))
		for i, v := range val {
			a[i] = normalizeValue(v)
		}
		return a
	default:
		return val
	}
}
