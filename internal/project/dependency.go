package project

import (
	"fmt"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Dependency is a single (name, version) pair declared by the host project.
type Dependency struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

func (d Dependency) String() string {
	return d.Name + "@" + d.Version
}

// UnmarshalYAML accepts three forms:
//
//	- [lodash, ^4.0.0]
//	- {name: lodash, version: ^4.0.0}
//	- lodash@^4.0.0
func (d *Dependency) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		if len(node.Content) != 2 {
			return fmt.Errorf("line %d: dependency must be a [name, version] pair, got %d elements", node.Line, len(node.Content))
		}
		for _, c := range node.Content {
			if c.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: dependency name and version must be scalars", c.Line)
			}
		}
		d.Name = node.Content[0].Value
		d.Version = node.Content[1].Value
	case yaml.MappingNode:
		type plain Dependency
		var p plain
		if err := node.Decode(&p); err != nil {
			return err
		}
		*d = Dependency(p)
	case yaml.ScalarNode:
		name, version, err := splitSpec(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		d.Name, d.Version = name, version
	default:
		return fmt.Errorf("line %d: unsupported dependency form", node.Line)
	}

	d.Name = strings.TrimSpace(d.Name)
	d.Version = strings.TrimSpace(d.Version)
	if d.Name == "" {
		return fmt.Errorf("line %d: dependency name is empty", node.Line)
	}
	return nil
}

// splitSpec splits "name@version", keeping the leading @ of scoped packages.
func splitSpec(spec string) (string, string, error) {
	spec = strings.TrimSpace(spec)
	at := strings.LastIndex(spec, "@")
	if at <= 0 {
		return "", "", fmt.Errorf("dependency %q must be written as name@version", spec)
	}
	return spec[:at], spec[at+1:], nil
}
