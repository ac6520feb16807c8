// Package cli defines the Cobra command tree for the npmbridge CLI. Each file
// in this package registers one top-level command (npm, deps, manifest, etc.)
// with the root command. Command implementations delegate to internal packages
// for business logic and only handle flag parsing, I/O formatting, and logging.
package cli
