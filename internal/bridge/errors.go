package bridge

import "errors"

var (
	// ErrManifestConflict is returned when package.json already exists and
	// persistence is off, so running would overwrite and then delete it.
	ErrManifestConflict = errors.New("package.json already exists")

	// ErrInvalidManifest is returned when the synthesized document fails
	// schema validation.
	ErrInvalidManifest = errors.New("synthesized package.json is invalid")
)
