package execution

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"iter"
	"reflect"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Normalize collapses a raw provider result into a storable Result.
//
//   - strings pass through as text
//   - streams and sequences (iter.Seq, channels, slices, arrays) are drained
//     and the string form of each element is concatenated in order
//   - objects, numbers and booleans pass through unchanged as structured values
//   - raw bytes become text, or a base64 data: URI when they are not textual
//   - anything else is rendered with its string form
func Normalize(raw any) Result {
	switch v := raw.(type) {
	case nil:
		return TextResult("")
	case Result:
		return v
	case string:
		return TextResult(v)
	case json.RawMessage:
		var decoded any
		if err := json.Unmarshal(v, &decoded); err != nil {
			return TextResult(string(v))
		}
		return Normalize(decoded)
	case []byte:
		return TextResult(encodeBytes(v))
	case json.Number:
		return StructuredResult(v)
	case bool:
		return StructuredResult(v)
	case map[string]any:
		return StructuredResult(v)
	case iter.Seq[any]:
		return TextResult(drain(v))
	case func(yield func(any) bool):
		return TextResult(drain(v))
	case iter.Seq[string]:
		var sb strings.Builder
		for item := range v {
			sb.WriteString(item)
		}
		return TextResult(sb.String())
	case fmt.Stringer:
		return TextResult(v.String())
	}

	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		var sb strings.Builder
		for i := 0; i < rv.Len(); i++ {
			sb.WriteString(elementString(rv.Index(i).Interface()))
		}
		return TextResult(sb.String())
	case reflect.Chan:
		if rv.Type().ChanDir()&reflect.RecvDir == 0 {
			break
		}
		var sb strings.Builder
		for {
			item, ok := rv.Recv()
			if !ok {
				break
			}
			sb.WriteString(elementString(item.Interface()))
		}
		return TextResult(sb.String())
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return StructuredResult(raw)
		}
	case reflect.String:
		return TextResult(rv.String())
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return StructuredResult(raw)
	case reflect.Pointer:
		if rv.IsNil() {
			return TextResult("")
		}
		return Normalize(rv.Elem().Interface())
	}

	return TextResult(fmt.Sprint(raw))
}

func drain(seq iter.Seq[any]) string {
	var sb strings.Builder
	for item := range seq {
		sb.WriteString(elementString(item))
	}
	return sb.String()
}

func elementString(item any) string {
	switch v := item.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case map[string]any, []any:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(encoded)
	default:
		return fmt.Sprint(v)
	}
}

func encodeBytes(data []byte) string {
	mime := mimetype.Detect(data)
	if mime.Is("text/plain") {
		return string(data)
	}
	return "data:" + mime.String() + ";base64," + base64.StdEncoding.EncodeToString(data)
}
