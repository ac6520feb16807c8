package bridge

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/agentx-labs/npmbridge/internal/guard"
	"github.com/agentx-labs/npmbridge/internal/lifecycle"
	"github.com/agentx-labs/npmbridge/internal/manifest"
	"github.com/agentx-labs/npmbridge/internal/project"
	"github.com/agentx-labs/npmbridge/internal/runtime"
	"github.com/agentx-labs/npmbridge/internal/tooling"
	"github.com/charmbracelet/log"
)

// Options configures a Bridge.
type Options struct {
	// Npm overrides the npm executable (path or name on PATH).
	Npm string
	// Runner replaces the npm subprocess; when nil npm is located on demand.
	Runner runtime.Runner
	// Persist keeps package.json on disk regardless of the project setting.
	Persist bool
	Logger  *log.Logger
	Stdout  io.Writer
	Stderr  io.Writer
}

// Bridge drives npm for host projects.
type Bridge struct {
	opts   Options
	logger *log.Logger
}

// New returns a Bridge. A nil logger discards output.
func New(opts Options) *Bridge {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Bridge{opts: opts, logger: logger}
}

// Persist reports whether package.json is kept for p.
func (b *Bridge) Persist(p *project.Project) bool {
	return b.opts.Persist || p.Persist()
}

// Manifest builds the package.json document for p, starting from any
// package.json already at the manifest path.
func (b *Bridge) Manifest(p *project.Project) (manifest.Document, error) {
	path, err := p.ManifestPath()
	if err != nil {
		return nil, err
	}

	existing, err := manifest.LoadExisting(path)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			b.logger.Warn("ignoring unparseable package.json", "path", path)
		}
	}

	doc := manifest.Synthesize(manifest.Input{
		Meta: manifest.Metadata{
			Name:        p.Name,
			Version:     p.Version,
			Description: p.Description,
		},
		Existing:        existing,
		Dependencies:    manifest.Merge(p.HostDependencies(), existing.Dependencies(manifest.KeyDependencies)),
		DevDependencies: manifest.Merge(p.HostDevDependencies(), existing.Dependencies(manifest.KeyDevDependencies)),
		Extra:           p.PackageFields(),
		Main:            p.Main,
	})

	result, err := manifest.Validate(doc)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		issues := make([]string, len(result.Issues))
		for i, issue := range result.Issues {
			issues[i] = issue.String()
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidManifest, strings.Join(issues, "; "))
	}
	return doc, nil
}

// CheckEnvironment returns ErrManifestConflict when package.json exists and
// would not be persisted, and tooling.ErrNpmNotFound when npm is needed but
// cannot be located.
func (b *Bridge) CheckEnvironment(p *project.Project) error {
	path, err := p.ManifestPath()
	if err != nil {
		return err
	}
	if !b.Persist(p) {
		_, err := os.Stat(path)
		if err == nil {
			return fmt.Errorf("%w at %s; remove it or enable persistence (npm.persist: true)", ErrManifestConflict, path)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("checking %s: %w", path, err)
		}
	}
	if b.opts.Runner == nil {
		if _, err := tooling.LocateNpm(b.opts.Npm); err != nil {
			return err
		}
	}
	return nil
}

// Run writes package.json for p and runs `npm args...` in the project root.
// Every check happens before the file is written. Unless persisting, the file
// is removed afterwards, also when npm fails.
func (b *Bridge) Run(ctx context.Context, p *project.Project, args []string) error {
	if err := b.CheckEnvironment(p); err != nil {
		return err
	}
	runner, err := b.runner()
	if err != nil {
		return err
	}

	doc, err := b.Manifest(p)
	if err != nil {
		return err
	}
	content, err := doc.Marshal()
	if err != nil {
		return err
	}

	root, err := p.Root()
	if err != nil {
		return err
	}
	path, err := p.ManifestPath()
	if err != nil {
		return err
	}

	persist := b.Persist(p)
	b.logger.Debug("writing package.json", "path", path, "persist", persist)

	err = lifecycle.WithManifest(path, content, persist, func() error {
		command := strings.TrimSpace("npm " + strings.Join(args, " "))
		b.logger.Debug("running", "command", command, "dir", root)

		out, err := runner.Run(ctx, root, args)
		if err != nil {
			return err
		}
		return out.Check(command)
	})
	if !persist {
		b.logger.Debug("removed package.json", "path", path)
	}
	return err
}

// Install runs `npm install` for p.
func (b *Bridge) Install(ctx context.Context, p *project.Project) error {
	return b.Run(ctx, p, []string{"install"})
}

// Hook wraps the host's dependency-resolution hook so npm install runs once
// per outermost call.
func (b *Bridge) Hook(resolve guard.Hook) guard.Hook {
	return guard.New(b.Install).Wrap(resolve)
}

func (b *Bridge) runner() (runtime.Runner, error) {
	if b.opts.Runner != nil {
		return b.opts.Runner, nil
	}
	bin, err := tooling.LocateNpm(b.opts.Npm)
	if err != nil {
		return nil, err
	}
	return &runtime.NpmRuntime{Bin: bin, Stdout: b.opts.Stdout, Stderr: b.opts.Stderr}, nil
}
