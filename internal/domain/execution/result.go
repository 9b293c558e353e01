package execution

import (
	"bytes"
	"encoding/json"
)

// ResultKind tags the shape of a normalized tool result.
type ResultKind string

const (
	ResultKindText       ResultKind = "text"
	ResultKindStructured ResultKind = "structured"
)

// Result is the normalized output of a tool run: either text or a structured
// JSON-compatible value (object, number, boolean). It marshals to the bare
// value, so clients see a string or the structured document directly.
type Result struct {
	Kind  ResultKind
	Text  string
	Value any
}

// TextResult wraps a string result.
func TextResult(s string) Result {
	return Result{Kind: ResultKindText, Text: s}
}

// StructuredResult wraps a JSON-compatible value.
func StructuredResult(v any) Result {
	return Result{Kind: ResultKindStructured, Value: v}
}

// IsText reports whether the result is a plain string.
func (r Result) IsText() bool {
	return r.Kind != ResultKindStructured
}

// Interface returns the result as a plain Go value.
func (r Result) Interface() any {
	if r.IsText() {
		return r.Text
	}
	return r.Value
}

// MarshalJSON implements json.Marshaler.
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Interface())
}

// UnmarshalJSON implements json.Unmarshaler. JSON strings become text results,
// anything else is kept as a structured value.
func (r *Result) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*r = TextResult(s)
		return nil
	}

	var v any
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return err
	}
	*r = StructuredResult(v)
	return nil
}
