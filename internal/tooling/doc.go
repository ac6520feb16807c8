// Package tooling locates the npm executable and checks that its version
// meets the minimum this tool is tested against.
package tooling
