// Package manifest builds the package.json document handed to npm. It merges
// host-declared dependencies with those already present in an on-disk
// package.json, overlays project metadata and configured extra fields, and
// validates the result against an embedded JSON Schema before it is written.
package manifest
