package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// LoadExisting reads a package.json from disk. A missing file, or one that
// does not parse as a JSON object, yields a nil document and no error.
func LoadExisting(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, nil
	}
	return doc, nil
}

// Parse decodes package.json content. The top-level value must be an object.
func Parse(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing package.json: %w", err)
	}
	if doc == nil {
		return nil, fmt.Errorf("parsing package.json: top-level value is not an object")
	}
	return doc, nil
}
