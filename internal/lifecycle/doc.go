// Package lifecycle writes a file for the duration of one operation and
// removes it afterwards. Removal is deferred so it also runs when the
// operation fails or panics. Paths awaiting removal are tracked in a
// process-wide registry that Cleanup and HandleSignals drain if the process
// exits before the deferred removal runs.
package lifecycle
