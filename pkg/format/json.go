package format

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"

	"github.com/pkg/errors"
)

// JSON pretty-prints v using the formatter's indentation unit.
//
// Text (string, []byte or json.RawMessage) must be valid JSON and is only
// re-indented: key order, duplicate keys and the spelling of numbers and string
// escapes (1.0, "\u00e9") are kept as written. Maps, slices, arrays and structs,
// or pointers to them, are serialised. Any other input yields
// ErrInvalidInputType.
func (f *Formatter) JSON(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return f.indentJSON([]byte(t))
	case []byte:
		return f.indentJSON(t)
	case json.RawMessage:
		return f.indentJSON(t)
	}

	if !isStructured(v) {
		return "", errors.Wrapf(ErrInvalidInputType, "cannot format %T as JSON", v)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", f.options.IndentUnit)
	if err := enc.Encode(v); err != nil {
		return "", errors.Wrap(err, "failed to encode JSON")
	}

	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func (f *Formatter) indentJSON(data []byte) (string, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace(data), "", f.options.IndentUnit); err != nil {
		return "", errors.Wrap(err, "failed to parse JSON")
	}

	return buf.String(), nil
}

func isStructured(v any) bool {
	if v == nil {
		return false
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		return true
	default:
		return false
	}
}
