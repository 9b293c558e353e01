package tool

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DemoProbeMessage is returned by the provider probe when running without credentials.
const DemoProbeMessage = "Demo mode: Replicate connection would work here. Add your API token to enable real AI functionality."

// DemoBank holds canned tool output served in demo mode.
type DemoBank struct {
	responses map[string]string
}

// NewDemoBank copies responses into a new bank.
func NewDemoBank(responses map[string]string) *DemoBank {
	copied := make(map[string]string, len(responses))
	for k, v := range responses {
		copied[k] = v
	}
	return &DemoBank{responses: copied}
}

// LoadDefaultDemoBank parses the embedded demo responses.
func LoadDefaultDemoBank() (*DemoBank, error) {
	raw, err := catalogFS.ReadFile("catalog/demo_responses.yaml")
	if err != nil {
		return nil, fmt.Errorf("read demo responses: %w", err)
	}

	var doc struct {
		Responses map[string]string `yaml:"responses"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse demo responses: %w", err)
	}
	return NewDemoBank(doc.Responses), nil
}

// Lookup returns the canned response for a tool, if one exists.
func (b *DemoBank) Lookup(toolName string) (string, bool) {
	resp, ok := b.responses[toolName]
	return resp, ok
}

// Response returns the canned response for a tool, or a placeholder naming it.
func (b *DemoBank) Response(toolName string) string {
	if resp, ok := b.Lookup(toolName); ok {
		return resp
	}
	return PlaceholderResponse(toolName)
}

// PlaceholderResponse is the demo output for tools without a canned response.
func PlaceholderResponse(toolName string) string {
	return fmt.Sprintf("Demo output for %s: This is a placeholder result. Add your Replicate API token to get real AI-generated content.", toolName)
}
