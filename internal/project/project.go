package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/agentx-labs/npmbridge/internal/branding"
	"go.yaml.in/yaml/v3"
)

// ManifestFile is the name of the npm manifest written into the project root.
const ManifestFile = "package.json"

// Project is the host project configuration read from project.yaml.
type Project struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Description string `yaml:"description"`
	// Main is the entry point used for the start script.
	Main string    `yaml:"main,omitempty"`
	Npm  NpmConfig `yaml:"npm"`

	// Deprecated: use Npm.Dependencies.
	NodeDependencies []Dependency `yaml:"node-dependencies,omitempty"`
	// Deprecated: use Npm.Package.
	NodeJS map[string]interface{} `yaml:"nodejs,omitempty"`

	// Dir is the directory project.yaml was loaded from.
	Dir string `yaml:"-"`

	// keys holds every top-level key so npm.root can reference one of them.
	keys map[string]interface{}
}

// NpmConfig is the npm section of project.yaml.
type NpmConfig struct {
	// Root is a directory, or ":key" naming another top-level key whose value is a directory.
	Root             string                 `yaml:"root,omitempty"`
	Persist          bool                   `yaml:"persist,omitempty"`
	WritePackageJSON bool                   `yaml:"write-package-json,omitempty"`
	Package          map[string]interface{} `yaml:"package,omitempty"`
	Dependencies     []Dependency           `yaml:"dependencies,omitempty"`
	DevDependencies  []Dependency           `yaml:"dev-dependencies,omitempty"`
}

// ConfigPath returns the full path to project.yaml for a project directory.
func ConfigPath(dir string) string {
	return filepath.Join(dir, branding.ProjectFile())
}

// Load reads and parses project.yaml from the given project directory.
func Load(dir string) (*Project, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving project directory %s: %w", dir, err)
	}

	path := ConfigPath(abs)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project config: %w", err)
	}

	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing project config %s: %w", path, err)
	}
	p.Dir = abs
	return p, nil
}

// Parse decodes project.yaml content. The returned project has no Dir set.
func Parse(data []byte) (*Project, error) {
	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, &p.keys); err != nil {
		return nil, err
	}
	if strings.TrimSpace(p.Name) == "" {
		return nil, fmt.Errorf("missing required field %q", "name")
	}
	return &p, nil
}

// Persist reports whether the synthesized package.json should be kept on disk.
func (p *Project) Persist() bool {
	return p.Npm.Persist || p.Npm.WritePackageJSON
}

// HostDependencies returns the npm dependencies declared by the project, in
// declaration order. The deprecated node-dependencies list follows npm.dependencies.
func (p *Project) HostDependencies() []Dependency {
	deps := make([]Dependency, 0, len(p.Npm.Dependencies)+len(p.NodeDependencies))
	deps = append(deps, p.Npm.Dependencies...)
	deps = append(deps, p.NodeDependencies...)
	return deps
}

// HostDevDependencies returns the npm devDependencies declared by the project.
func (p *Project) HostDevDependencies() []Dependency {
	return p.Npm.DevDependencies
}

// PackageFields returns the extra package.json fields from configuration.
// Keys under npm.package override the deprecated nodejs map.
func (p *Project) PackageFields() map[string]interface{} {
	if len(p.NodeJS) == 0 {
		return p.Npm.Package
	}
	fields := make(map[string]interface{}, len(p.NodeJS)+len(p.Npm.Package))
	for k, v := range p.NodeJS {
		fields[k] = v
	}
	for k, v := range p.Npm.Package {
		fields[k] = v
	}
	return fields
}

// Root resolves the directory package.json is written to. An empty root is the
// project directory; ":key" reads the directory from another top-level key;
// relative paths are resolved against the project directory.
func (p *Project) Root() (string, error) {
	root := strings.TrimSpace(p.Npm.Root)
	if strings.HasPrefix(root, ":") {
		key := strings.TrimPrefix(root, ":")
		v, ok := p.keys[key]
		if !ok {
			return "", fmt.Errorf("npm.root references %q, which is not set", key)
		}
		s, ok := v.(string)
		if !ok || strings.TrimSpace(s) == "" {
			return "", fmt.Errorf("npm.root references %q, which is not a directory path", key)
		}
		root = s
	}
	if root == "" {
		return p.Dir, nil
	}
	if filepath.IsAbs(root) {
		return filepath.Clean(root), nil
	}
	return filepath.Join(p.Dir, root), nil
}

// ManifestPath returns the path of package.json under Root.
func (p *Project) ManifestPath() (string, error) {
	root, err := p.Root()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, ManifestFile), nil
}
