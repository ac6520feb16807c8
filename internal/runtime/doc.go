// Package runtime runs the external package manager as a subprocess. The
// Runner interface lets callers substitute a fake in tests; NpmRuntime is the
// real implementation that execs npm in the project root and streams its
// output.
package runtime
