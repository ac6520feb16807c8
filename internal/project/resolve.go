package project

import (
	"context"
)

// Resolution is the outcome of the host's dependency-resolution step.
type Resolution struct {
	Dependencies []Dependency
}

// ResolveDeclared is the host's own dependency-resolution step: it collects
// the declared dependencies, dropping exact duplicates while keeping order.
func ResolveDeclared(ctx context.Context, p *Project) (*Resolution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	seen := make(map[Dependency]bool)
	res := &Resolution{}
	for _, d := range p.HostDependencies() {
		if seen[d] {
			continue
		}
		seen[d] = true
		res.Dependencies = append(res.Dependencies, d)
	}
	return res, nil
}
