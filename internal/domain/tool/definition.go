package tool

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Category groups tools by filmmaking phase.
type Category string

const (
	CategoryPreProduction  Category = "Pre-Production"
	CategoryProduction     Category = "Production"
	CategoryPostProduction Category = "Post-Production"
	CategoryDistribution   Category = "Distribution"
)

// Categories returns the fixed category enumeration in display order.
func Categories() []Category {
	return []Category{
		CategoryPreProduction,
		CategoryProduction,
		CategoryPostProduction,
		CategoryDistribution,
	}
}

// InputType tags a declared tool input. The tags describe the UI form only;
// inputs are forwarded to the provider without being checked against them.
type InputType string

const (
	InputTypeText    InputType = "text"
	InputTypeImage   InputType = "image"
	InputTypeAudio   InputType = "audio"
	InputTypeVideo   InputType = "video"
	InputTypeInteger InputType = "integer"
)

// InputFields maps input names to their types in catalog order. Clients build
// their forms from this order.
type InputFields = orderedmap.OrderedMap[string, InputType]

// Definition describes one tool of the catalog.
type Definition struct {
	Name           string       `json:"name" yaml:"name"`
	Category       Category     `json:"category" yaml:"category"`
	Description    string       `json:"description" yaml:"description"`
	ReplicateModel string       `json:"replicate_model" yaml:"replicate_model"`
	Inputs         *InputFields `json:"inputs" yaml:"inputs" swaggertype:"object,string"`
	Icon           string       `json:"icon" yaml:"icon"`
}

// InputNames returns the declared input names in catalog order.
func (d Definition) InputNames() []string {
	names := make([]string, 0, d.Inputs.Len())
	for pair := d.Inputs.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// Input returns the declared type of one input.
func (d Definition) Input(name string) (InputType, bool) {
	if d.Inputs == nil {
		return "", false
	}
	return d.Inputs.Get(name)
}

func (d Definition) clone() Definition {
	inputs := orderedmap.New[string, InputType](d.Inputs.Len())
	for pair := d.Inputs.Oldest(); pair != nil; pair = pair.Next() {
		inputs.Set(pair.Key, pair.Value)
	}
	d.Inputs = inputs
	return d
}
