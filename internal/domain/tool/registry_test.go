package tool

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func loadRegistry(t *testing.T) *Registry {
	t.Helper()
	reg, err := LoadDefaultRegistry()
	require.NoError(t, err)
	return reg
}

func TestLoadDefaultRegistry(t *testing.T) {
	reg := loadRegistry(t)

	tools := reg.List()
	require.Len(t, tools, 16)
	assert.Equal(t, "Brainstorm Ideas", tools[0].Name)
	assert.Equal(t, "Distribution", tools[len(tools)-1].Name)

	script, ok := reg.Get("Script Writer")
	require.True(t, ok)
	assert.Equal(t, CategoryPreProduction, script.Category)
	assert.Equal(t, "📝", script.Icon)
	assert.True(t, strings.HasPrefix(script.ReplicateModel, "meta/llama-2-7b-chat:"))
	assert.Equal(t, []string{"prompt", "system_prompt"}, script.InputNames())

	animation, ok := reg.Get("Animation")
	require.True(t, ok)
	motion, ok := animation.Input("motion_bucket_id")
	require.True(t, ok)
	assert.Equal(t, InputTypeInteger, motion)
}

// catalogInputOrder reads the declared input names of every tool straight
// from the YAML document, in file order.
func catalogInputOrder(t *testing.T) map[string][]string {
	t.Helper()
	raw, err := catalogFS.ReadFile("catalog/tools.yaml")
	require.NoError(t, err)

	var doc struct {
		Tools []struct {
			Name   string    `yaml:"name"`
			Inputs yaml.Node `yaml:"inputs"`
		} `yaml:"tools"`
	}
	require.NoError(t, yaml.Unmarshal(raw, &doc))

	out := make(map[string][]string, len(doc.Tools))
	for _, tool := range doc.Tools {
		require.Equal(t, yaml.MappingNode, tool.Inputs.Kind, tool.Name)
		names := make([]string, 0, len(tool.Inputs.Content)/2)
		for i := 0; i < len(tool.Inputs.Content); i += 2 {
			names = append(names, tool.Inputs.Content[i].Value)
		}
		out[tool.Name] = names
	}
	return out
}

func jsonObjectKeys(t *testing.T, raw []byte) []string {
	t.Helper()
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	require.NoError(t, err)
	require.Equal(t, json.Delim('{'), tok)

	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		require.NoError(t, err)
		keys = append(keys, tok.(string))
		var skip json.RawMessage
		require.NoError(t, dec.Decode(&skip))
	}
	return keys
}

func TestInputsKeepCatalogOrder(t *testing.T) {
	reg := loadRegistry(t)
	want := catalogInputOrder(t)

	assert.Equal(t, []string{"prompt", "genre"}, want["Brainstorm Ideas"])
	assert.Equal(t, []string{"video", "instructions"}, want["Editing"])

	for _, def := range reg.List() {
		assert.Equal(t, want[def.Name], def.InputNames(), def.Name)

		encoded, err := json.Marshal(def.Inputs)
		require.NoError(t, err)
		assert.Equal(t, want[def.Name], jsonObjectKeys(t, encoded), def.Name)

		schema := InputSchema(def)
		var props []string
		for pair := schema.Properties.Oldest(); pair != nil; pair = pair.Next() {
			props = append(props, pair.Key)
		}
		assert.Equal(t, want[def.Name], props, def.Name)
	}
}

func TestRegistryGetIsExactMatch(t *testing.T) {
	reg := loadRegistry(t)

	for _, name := range []string{"", "script writer", "Script Writer ", "Unknown Tool"} {
		_, ok := reg.Get(name)
		assert.False(t, ok, "expected %q to be unknown", name)
	}
}

func TestListByCategoryIsExhaustive(t *testing.T) {
	reg := loadRegistry(t)

	seen := make(map[string]int)
	for _, category := range Categories() {
		first := reg.ListByCategory(string(category))
		second := reg.ListByCategory(string(category))
		firstJSON, err := json.Marshal(first)
		require.NoError(t, err)
		secondJSON, err := json.Marshal(second)
		require.NoError(t, err)
		assert.JSONEq(t, string(firstJSON), string(secondJSON), "filtering must be idempotent")

		for _, def := range first {
			assert.Equal(t, category, def.Category)
			seen[def.Name]++
		}
	}

	all := reg.List()
	require.Len(t, seen, len(all))
	for _, def := range all {
		assert.Equal(t, 1, seen[def.Name], "tool %q should appear in exactly one category", def.Name)
	}
}

func TestListByCategoryUnknownIsEmpty(t *testing.T) {
	reg := loadRegistry(t)

	for _, category := range []string{"InvalidCategory", "", "pre-production"} {
		got := reg.ListByCategory(category)
		require.NotNil(t, got)
		assert.Empty(t, got)
	}

	body, err := json.Marshal(reg.ListByCategory("InvalidCategory"))
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(body))
}

func TestRegistryIsImmutableFromOutside(t *testing.T) {
	reg := loadRegistry(t)

	listed := reg.List()
	listed[0].Name = "Mutated"
	listed[0].Inputs.Set("injected", InputTypeText)

	def, ok := reg.Get("Brainstorm Ideas")
	require.True(t, ok)
	_, injected := def.Input("injected")
	assert.False(t, injected)
	assert.Equal(t, []string{"prompt", "genre"}, def.InputNames())
	assert.Equal(t, "Brainstorm Ideas", reg.List()[0].Name)
}

func TestNewRegistryRejectsBadDefinitions(t *testing.T) {
	tests := []struct {
		name string
		defs []Definition
	}{
		{"missing name", []Definition{{ReplicateModel: "a/b"}}},
		{"missing model", []Definition{{Name: "X"}}},
		{"duplicate", []Definition{{Name: "X", ReplicateModel: "a/b"}, {Name: "X", ReplicateModel: "a/c"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegistry(tt.defs)
			assert.Error(t, err)
		})
	}
}

func TestDefinitionJSONShape(t *testing.T) {
	reg := loadRegistry(t)
	def, _ := reg.Get("Voices")

	body, err := json.Marshal(def)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	for _, key := range []string{"name", "category", "description", "replicate_model", "inputs", "icon"} {
		assert.Contains(t, decoded, key)
	}
	assert.IsType(t, map[string]any{}, decoded["inputs"])

	body, err = json.Marshal(Definition{Name: "Bare", ReplicateModel: "a/b"}.clone())
	require.NoError(t, err)
	assert.Contains(t, string(body), `"inputs":{}`)
}
