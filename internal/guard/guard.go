// Package guard wraps the host's dependency-resolution hook so the npm
// install step runs once per outermost call. Calls made while a guarded call
// is in progress, including recursive calls from the hook itself, pass
// straight through to the hook.
//
// Why the host re-enters the hook within one operation is not known; the
// guard only ensures the install side effect is not repeated.
package guard

import (
	"context"
	"fmt"
	"sync"

	"github.com/agentx-labs/npmbridge/internal/project"
)

// Hook is the host's dependency-resolution step.
type Hook func(ctx context.Context, p *project.Project) (*project.Resolution, error)

// Installer runs the install step for a project.
type Installer func(ctx context.Context, p *project.Project) error

// State is the lock state of a Guard.
type State int

const (
	Unlocked State = iota
	Locked
)

func (s State) String() string {
	switch s {
	case Unlocked:
		return "unlocked"
	case Locked:
		return "locked"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Guard holds the lock state shared by every hook it wraps.
type Guard struct {
	install Installer

	mu    sync.Mutex
	state State
}

// New returns an unlocked Guard that runs install after each outermost hook call.
func New(install Installer) *Guard {
	return &Guard{install: install}
}

// State returns the current lock state.
func (g *Guard) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// acquire moves the guard to Locked and reports whether it was Unlocked.
func (g *Guard) acquire() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state == Locked {
		return false
	}
	g.state = Locked
	return true
}

func (g *Guard) release() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.state = Unlocked
}

// Wrap returns a hook with the same arguments and results as hook. When the
// guard is unlocked it calls hook, then the installer with the same project,
// and returns hook's result. When locked it only calls hook. The install step
// is skipped if hook fails.
func (g *Guard) Wrap(hook Hook) Hook {
	return func(ctx context.Context, p *project.Project) (*project.Resolution, error) {
		if !g.acquire() {
			return hook(ctx, p)
		}
		defer g.release()

		res, err := hook(ctx, p)
		if err != nil {
			return res, err
		}
		if err := g.install(ctx, p); err != nil {
			return res, fmt.Errorf("installing npm dependencies: %w", err)
		}
		return res, nil
	}
}
