// Package bridge runs npm against a package.json synthesized from a host
// project. It checks the environment before touching the disk, builds and
// validates the document, writes it for the duration of the npm invocation,
// and exposes the install step as a guarded host hook.
package bridge
