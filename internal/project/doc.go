// Package project models the host project configuration (project.yaml): its
// metadata, the npm section, and the declared dependency lists. It resolves
// where package.json is written and reports deprecated configuration keys.
package project
