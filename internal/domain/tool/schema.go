package tool

import (
	"github.com/invopop/jsonschema"
)

// InputSchema renders a tool's declared inputs as a JSON Schema object.
// Properties keep catalog order. Media inputs are URIs (hosted files or
// data: URIs).
func InputSchema(def Definition) *jsonschema.Schema {
	props := jsonschema.NewProperties()
	for pair := def.Inputs.Oldest(); pair != nil; pair = pair.Next() {
		props.Set(pair.Key, inputPropertySchema(pair.Value))
	}

	return &jsonschema.Schema{
		Version:     jsonschema.Version,
		Title:       def.Name,
		Description: def.Description,
		Type:        "object",
		Properties:  props,
	}
}

func inputPropertySchema(t InputType) *jsonschema.Schema {
	switch t {
	case InputTypeInteger:
		return &jsonschema.Schema{Type: "integer"}
	case InputTypeImage, InputTypeAudio, InputTypeVideo:
		return &jsonschema.Schema{
			Type:             "string",
			Format:           "uri",
			ContentMediaType: string(t) + "/*",
		}
	default:
		return &jsonschema.Schema{Type: "string"}
	}
}

// InputSchemas renders the schema of every tool in the registry, keyed by tool name.
func (r *Registry) InputSchemas() map[string]*jsonschema.Schema {
	out := make(map[string]*jsonschema.Schema, len(r.tools))
	for _, def := range r.tools {
		out[def.Name] = InputSchema(def)
	}
	return out
}
