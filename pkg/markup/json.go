package markup

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
)

// FromJSON decodes a JSON object into a document. encoding/json maps discard
// key order, so this walks the token stream instead and inserts keys in the
// order they appear. Numbers must be integral; nulls, fractional numbers and
// objects inside arrays are outside the value union and fail with an
// UnsupportedValueError naming the key path.
func FromJSON(r io.Reader) (*Record, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to read JSON: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("top-level JSON value must be an object, got %v", tok)
	}

	doc, err := decodeJSONObject(dec, nil, 1)
	if err != nil {
		return nil, err
	}

	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after JSON document")
	}
	return doc, nil
}

func decodeJSONObject(dec *json.Decoder, path []string, depth int) (*Record, error) {
	if depth > MaxDepth {
		return nil, &DepthError{Path: pathString(path), Limit: MaxDepth}
	}

	rec := NewRecord()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to read JSON: %w", err)
		}
		key := tok.(string)

		value, err := decodeJSONValue(dec, append(path, key), depth)
		if err != nil {
			return nil, err
		}
		if err := rec.Set(key, value); err != nil {
			return nil, fmt.Errorf("at %q: %w", pathString(path), err)
		}
	}

	// Closing '}'.
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("failed to read JSON: %w", err)
	}
	return rec, nil
}

func decodeJSONValue(dec *json.Decoder, path []string, depth int) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to read JSON: %w", err)
	}

	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			return decodeJSONObject(dec, path, depth+1)
		case '[':
			return decodeJSONArray(dec, path, depth+1)
		}
		return nil, fmt.Errorf("unexpected token %v at %q", v, pathString(path))
	case string:
		return v, nil
	case bool:
		return v, nil
	case json.Number:
		return decodeJSONNumber(v, path)
	default:
		// JSON null arrives as a nil token.
		return nil, &UnsupportedValueError{Path: pathString(path), Value: tok}
	}
}

// decodeJSONNumber converts an integral JSON number to int64. Exponent forms
// like 1e3 are accepted as long as the value is a whole number that float64
// represents exactly, which caps the usable exponent range at 2^53.
func decodeJSONNumber(v json.Number, path []string) (any, error) {
	if n, err := v.Int64(); err == nil {
		return n, nil
	}
	f, err := v.Float64()
	if err != nil || f != math.Trunc(f) || f < -maxExactFloat || f > maxExactFloat {
		return nil, &UnsupportedValueError{Path: pathString(path), Value: v}
	}
	return int64(f), nil
}

// Largest float64 magnitude below which every whole number is exact.
const maxExactFloat = float64(1 << 53)

func decodeJSONArray(dec *json.Decoder, path []string, depth int) ([]any, error) {
	if depth > MaxDepth {
		return nil, &DepthError{Path: pathString(path), Limit: MaxDepth}
	}

	elems := []any{}
	for dec.More() {
		value, err := decodeJSONValue(dec, path, depth)
		if err != nil {
			return nil, err
		}
		if rec, ok := value.(*Record); ok {
			// Arrays render inline, which leaves no place for a section.
			return nil, &UnsupportedValueError{Path: pathString(path), Value: rec}
		}
		elems = append(elems, value)
	}

	// Closing ']'.
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("failed to read JSON: %w", err)
	}
	return elems, nil
}
