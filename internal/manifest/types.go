package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Document is a package.json document. Values are JSON-compatible: string
// keys at every depth.
type Document map[string]interface{}

// Top-level package.json keys written by Synthesize.
const (
	KeyName            = "name"
	KeyVersion         = "version"
	KeyDescription     = "description"
	KeyPrivate         = "private"
	KeyDependencies    = "dependencies"
	KeyDevDependencies = "devDependencies"
	KeyScripts         = "scripts"
)

// Metadata holds the project fields copied into the document.
type Metadata struct {
	Name        string
	Version     string
	Description string
}

// Marshal renders the document as pretty-printed JSON with a trailing newline.
func (d Document) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return nil, fmt.Errorf("encoding package.json: %w", err)
	}
	return buf.Bytes(), nil
}

// Dependencies returns the name → version map stored under key (dependencies
// or devDependencies). Non-string versions are rendered with fmt.Sprint; a
// missing or non-object value yields nil.
func (d Document) Dependencies(key string) map[string]string {
	switch deps := d[key].(type) {
	case map[string]string:
		return deps
	case map[string]interface{}:
		out := make(map[string]string, len(deps))
		for name, v := range deps {
			if s, ok := v.(string); ok {
				out[name] = s
			} else {
				out[name] = fmt.Sprint(v)
			}
		}
		return out
	default:
		return nil
	}
}
