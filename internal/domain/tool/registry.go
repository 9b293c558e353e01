package tool

import (
	"embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog/*.yaml
var catalogFS embed.FS

// Registry is the immutable, ordered tool catalog. It is built once at
// start-up and shared by reference; none of its methods mutate it.
type Registry struct {
	tools  []Definition
	byName map[string]int
}

// NewRegistry builds a registry from definitions, keeping their order.
func NewRegistry(defs []Definition) (*Registry, error) {
	r := &Registry{
		tools:  make([]Definition, 0, len(defs)),
		byName: make(map[string]int, len(defs)),
	}
	for i, def := range defs {
		if strings.TrimSpace(def.Name) == "" {
			return nil, fmt.Errorf("tool definition %d has no name", i)
		}
		if _, exists := r.byName[def.Name]; exists {
			return nil, fmt.Errorf("duplicate tool definition %q", def.Name)
		}
		if strings.TrimSpace(def.ReplicateModel) == "" {
			return nil, fmt.Errorf("tool %q has no backing model", def.Name)
		}
		r.byName[def.Name] = len(r.tools)
		r.tools = append(r.tools, def.clone())
	}
	return r, nil
}

// LoadDefaultRegistry parses the embedded tool catalog.
func LoadDefaultRegistry() (*Registry, error) {
	raw, err := catalogFS.ReadFile("catalog/tools.yaml")
	if err != nil {
		return nil, fmt.Errorf("read tool catalog: %w", err)
	}

	var doc struct {
		Tools []Definition `yaml:"tools"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse tool catalog: %w", err)
	}
	return NewRegistry(doc.Tools)
}

// List returns every tool in catalog order.
func (r *Registry) List() []Definition {
	out := make([]Definition, len(r.tools))
	for i, def := range r.tools {
		out[i] = def.clone()
	}
	return out
}

// ListByCategory filters the catalog by exact category match. An unknown
// category yields an empty, non-nil slice.
func (r *Registry) ListByCategory(category string) []Definition {
	out := make([]Definition, 0)
	for _, def := range r.tools {
		if string(def.Category) == category {
			out = append(out, def.clone())
		}
	}
	return out
}

// Get resolves a tool by its exact name.
func (r *Registry) Get(name string) (Definition, bool) {
	idx, ok := r.byName[name]
	if !ok {
		return Definition{}, false
	}
	return r.tools[idx].clone(), true
}

// Len reports the number of tools in the catalog.
func (r *Registry) Len() int {
	return len(r.tools)
}
