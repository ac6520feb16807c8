package manifest

import (
	"sort"
	"strings"

	"github.com/agentx-labs/npmbridge/internal/project"
)

// Merge combines host-declared dependencies with those from an existing
// package.json. Host pairs come first, exact duplicate pairs collapse, and the
// first version seen for a name wins, so the host declaration takes precedence
// on a name collision. Conflicting versions are not an error.
func Merge(host []project.Dependency, existing map[string]string) map[string]string {
	pairs := make([]project.Dependency, 0, len(host)+len(existing))
	for _, d := range host {
		pairs = append(pairs, normalize(d))
	}

	names := make([]string, 0, len(existing))
	for name := range existing {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		pairs = append(pairs, normalize(project.Dependency{Name: name, Version: existing[name]}))
	}

	merged := make(map[string]string, len(pairs))
	for _, d := range dedupePairs(pairs) {
		if _, ok := merged[d.Name]; !ok {
			merged[d.Name] = d.Version
		}
	}
	return merged
}

// dedupePairs drops pairs equal to an earlier pair, preserving order.
func dedupePairs(pairs []project.Dependency) []project.Dependency {
	seen := make(map[project.Dependency]bool, len(pairs))
	out := make([]project.Dependency, 0, len(pairs))
	for _, d := range pairs {
		if seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	return out
}

func normalize(d project.Dependency) project.Dependency {
	return project.Dependency{
		Name:    strings.TrimSpace(d.Name),
		Version: strings.TrimSpace(d.Version),
	}
}
