// Package config provides the manifest loader for srcdeb.
package config

import (
	"os"
	"path/filepath"

	"github.com/srcdeb/srcdeb/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader reads and validates the package manifest.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the manifest from the source tree rooted at dir.
func (l *Loader) Load(dir string) (domain.Manifest, error) {
	path := filepath.Join(dir, domain.ManifestFile)
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the user's source tree
	if err != nil {
		return domain.Manifest{}, zerr.With(zerr.Wrap(err, "failed to read manifest"), "path", path)
	}
	return Parse(data)
}

// Parse decodes raw manifest bytes. It goes through yaml.Node rather than a
// plain struct so requires and conflicts keep their document order, which the
// control file generator must preserve.
func Parse(data []byte) (domain.Manifest, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return domain.Manifest{}, zerr.Wrap(err, "failed to parse manifest")
	}

	m := domain.Manifest{IgnoreModules: map[string]bool{}}
	root := documentRoot(&doc)
	if root == nil {
		return domain.Manifest{}, domain.ErrMissingPackageName
	}
	if root.Kind != yaml.MappingNode {
		return domain.Manifest{}, zerr.With(zerr.Wrap(domain.ErrBadFieldShape, "failed to decode manifest"), "field", "document")
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		switch key.Value {
		case "package":
			m.Package = scalarValue(value)
		case "description":
			m.Description = scalarValue(value)
		case "requires":
			deps, err := dependencyList("requires", value)
			if err != nil {
				return domain.Manifest{}, err
			}
			m.Requires = deps
		case "conflicts":
			deps, err := dependencyList("conflicts", value)
			if err != nil {
				return domain.Manifest{}, err
			}
			m.Conflicts = deps
		case "ignore":
			ignore, err := ignoreSet(value)
			if err != nil {
				return domain.Manifest{}, err
			}
			m.IgnoreModules = ignore
		}
	}

	if m.Package == "" {
		return domain.Manifest{}, domain.ErrMissingPackageName
	}
	return m, nil
}

func documentRoot(doc *yaml.Node) *yaml.Node {
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		return doc.Content[0]
	}
	return nil
}

func scalarValue(n *yaml.Node) string {
	if n.Kind == yaml.ScalarNode {
		return n.Value
	}
	return ""
}

// dependencyList decodes a flat mapping of package name to optional version
// constraint. Nested values are a shape violation.
func dependencyList(field string, n *yaml.Node) (domain.DependencyList, error) {
	if n.Kind == yaml.ScalarNode && n.Tag == "!!null" {
		return nil, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, zerr.With(zerr.Wrap(domain.ErrBadFieldShape, "failed to decode manifest"), "field", field)
	}

	deps := make(domain.DependencyList, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, value := n.Content[i], n.Content[i+1]
		if value.Kind != yaml.ScalarNode {
			return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrBadFieldShape, "failed to decode manifest"), "field", field), "package", key.Value)
		}
		constraint := value.Value
		if value.Tag == "!!null" {
			constraint = ""
		}
		deps = append(deps, domain.Dependency{Name: key.Value, Constraint: constraint})
	}
	return deps, nil
}

// ignoreSet decodes the ignore list: a sequence of module name scalars.
func ignoreSet(n *yaml.Node) (map[string]bool, error) {
	set := map[string]bool{}
	if n.Kind == yaml.ScalarNode && n.Tag == "!!null" {
		return set, nil
	}
	if n.Kind != yaml.SequenceNode {
		return nil, zerr.With(zerr.Wrap(domain.ErrBadFieldShape, "failed to decode manifest"), "field", "ignore")
	}
	for _, item := range n.Content {
		if item.Kind != yaml.ScalarNode {
			return nil, zerr.With(zerr.Wrap(domain.ErrBadFieldShape, "failed to decode manifest"), "field", "ignore")
		}
		set[item.Value] = true
	}
	return set, nil
}
