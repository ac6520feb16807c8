package project

// deprecatedKeys maps a deprecated top-level key to its replacement.
var deprecatedKeys = []struct {
	key         string
	replacement string
	set         func(p *Project) bool
}{
	{"node-dependencies", "npm.dependencies", func(p *Project) bool { return len(p.NodeDependencies) > 0 }},
	{"nodejs", "npm.package", func(p *Project) bool { return len(p.NodeJS) > 0 }},
}

// DeprecationWarnings returns one warning per deprecated key present in the
// project. It has no effect on how the project is interpreted.
func DeprecationWarnings(p *Project) []string {
	var warnings []string
	for _, d := range deprecatedKeys {
		_, inFile := p.keys[d.key]
		if inFile || d.set(p) {
			warnings = append(warnings, "project key "+d.key+" is deprecated; use "+d.replacement+" instead")
		}
	}
	return warnings
}
