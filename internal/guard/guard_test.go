package guard

import (
	"context"
	"errors"
	"testing"

	"github.com/agentx-labs/npmbridge/internal/project"
)

type counter struct {
	installs int
	projects []*project.Project
	err      error
}

func (c *counter) install(_ context.Context, p *project.Project) error {
	c.installs++
	c.projects = append(c.projects, p)
	return c.err
}

func resolved(deps ...project.Dependency) *project.Resolution {
	return &project.Resolution{Dependencies: deps}
}

func TestWrap_SequentialCallsInstallEachTime(t *testing.T) {
	c := &counter{}
	g := New(c.install)
	hook := g.Wrap(func(context.Context, *project.Project) (*project.Resolution, error) {
		return resolved(), nil
	})

	p := &project.Project{Name: "foo"}
	for i := 0; i < 2; i++ {
		if _, err := hook(context.Background(), p); err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
	}

	if c.installs != 2 {
		t.Errorf("installs = %d, want 2", c.installs)
	}
	if g.State() != Unlocked {
		t.Errorf("state = %v, want unlocked", g.State())
	}
}

func TestWrap_RecursiveCallsInstallOnce(t *testing.T) {
	c := &counter{}
	g := New(c.install)

	var wrapped Hook
	depth := 0
	wrapped = g.Wrap(func(ctx context.Context, p *project.Project) (*project.Resolution, error) {
		depth++
		if depth < 4 {
			if _, err := wrapped(ctx, p); err != nil {
				return nil, err
			}
		}
		if c.installs != 0 {
			t.Error("install ran before the outermost hook returned")
		}
		return resolved(), nil
	})

	if _, err := wrapped(context.Background(), &project.Project{Name: "foo"}); err != nil {
		t.Fatalf("hook error: %v", err)
	}

	if depth != 4 {
		t.Errorf("hook ran %d times, want 4", depth)
	}
	if c.installs != 1 {
		t.Errorf("installs = %d, want 1", c.installs)
	}
}

func TestWrap_SharedAcrossWrappedHooks(t *testing.T) {
	c := &counter{}
	g := New(c.install)

	inner := g.Wrap(func(context.Context, *project.Project) (*project.Resolution, error) {
		return resolved(), nil
	})
	outer := g.Wrap(func(ctx context.Context, p *project.Project) (*project.Resolution, error) {
		return inner(ctx, p)
	})

	if _, err := outer(context.Background(), &project.Project{Name: "foo"}); err != nil {
		t.Fatalf("hook error: %v", err)
	}
	if c.installs != 1 {
		t.Errorf("installs = %d, want 1", c.installs)
	}
}

func TestWrap_PreservesArgumentsAndResult(t *testing.T) {
	c := &counter{}
	g := New(c.install)

	type key struct{}
	want := resolved(project.Dependency{Name: "lodash", Version: "^4.0.0"})
	p := &project.Project{Name: "foo"}

	var gotCtxValue interface{}
	var gotProject *project.Project
	hook := g.Wrap(func(ctx context.Context, hp *project.Project) (*project.Resolution, error) {
		gotCtxValue = ctx.Value(key{})
		gotProject = hp
		return want, nil
	})

	ctx := context.WithValue(context.Background(), key{}, "v")
	got, err := hook(ctx, p)
	if err != nil {
		t.Fatalf("hook error: %v", err)
	}
	if got != want {
		t.Errorf("result = %v, want %v", got, want)
	}
	if gotCtxValue != "v" || gotProject != p {
		t.Error("hook did not receive the original arguments")
	}
	if len(c.projects) != 1 || c.projects[0] != p {
		t.Error("installer should receive the hook's project argument")
	}
}

func TestWrap_HookFailureSkipsInstallAndUnlocks(t *testing.T) {
	c := &counter{}
	g := New(c.install)
	hookErr := errors.New("resolution failed")

	hook := g.Wrap(func(context.Context, *project.Project) (*project.Resolution, error) {
		return nil, hookErr
	})

	if _, err := hook(context.Background(), &project.Project{}); !errors.Is(err, hookErr) {
		t.Fatalf("expected hook error, got %v", err)
	}
	if c.installs != 0 {
		t.Errorf("installs = %d, want 0", c.installs)
	}
	if g.State() != Unlocked {
		t.Error("guard should unlock after a failed hook")
	}
}

func TestWrap_InstallFailureReturnsResultAndUnlocks(t *testing.T) {
	installErr := errors.New("npm exited 1")
	c := &counter{err: installErr}
	g := New(c.install)
	want := resolved()

	hook := g.Wrap(func(context.Context, *project.Project) (*project.Resolution, error) {
		return want, nil
	})

	got, err := hook(context.Background(), &project.Project{})
	if !errors.Is(err, installErr) {
		t.Fatalf("expected install error, got %v", err)
	}
	if got != want {
		t.Error("hook result should be returned alongside the install error")
	}
	if g.State() != Unlocked {
		t.Error("guard should unlock after a failed install")
	}

	// A following call starts a fresh outer invocation.
	c.err = nil
	if _, err := hook(context.Background(), &project.Project{}); err != nil {
		t.Fatalf("second call: %v", err)
	}
	if c.installs != 2 {
		t.Errorf("installs = %d, want 2", c.installs)
	}
}

func TestWrap_PanicUnlocks(t *testing.T) {
	c := &counter{}
	g := New(c.install)
	hook := g.Wrap(func(context.Context, *project.Project) (*project.Resolution, error) {
		panic("boom")
	})

	func() {
		defer func() { _ = recover() }()
		_, _ = hook(context.Background(), &project.Project{})
	}()

	if g.State() != Unlocked {
		t.Error("guard should unlock after a panicking hook")
	}
	if c.installs != 0 {
		t.Errorf("installs = %d, want 0", c.installs)
	}
}

func TestWrap_LockedDuringHook(t *testing.T) {
	g := New(func(context.Context, *project.Project) error { return nil })

	var during State
	hook := g.Wrap(func(context.Context, *project.Project) (*project.Resolution, error) {
		during = g.State()
		return resolved(), nil
	})
	if _, err := hook(context.Background(), &project.Project{}); err != nil {
		t.Fatal(err)
	}
	if during != Locked {
		t.Errorf("state during hook = %v, want locked", during)
	}
}

func TestStateString(t *testing.T) {
	if Unlocked.String() != "unlocked" || Locked.String() != "locked" {
		t.Error("unexpected State names")
	}
	if State(7).String() != "State(7)" {
		t.Errorf("State(7).String() = %q", State(7).String())
	}
}
