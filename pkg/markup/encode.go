package markup

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MaxDepth is the maximum nesting depth Marshal and Unmarshal accept.
// Deeper documents fail with a DepthError instead of exhausting the stack.
const MaxDepth = 64

// Marshal serializes a document to configuration-markup text.
//
// Within each Record, scalar and array entries are emitted first as
// "key = value" lines and nested Records follow as bracketed sections, because
// a section header would otherwise swallow the flat keys after it. Relative
// order inside each group is insertion order. On error no partial output is
// returned.
func Marshal(doc *Record) ([]byte, error) {
	s, err := MarshalString(doc)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// MarshalString is Marshal returning a string.
func MarshalString(doc *Record) (string, error) {
	if doc == nil {
		return "", fmt.Errorf("cannot marshal nil document")
	}
	var b strings.Builder
	if err := encodeRecord(&b, doc, nil, 1); err != nil {
		return "", err
	}
	return b.String(), nil
}

func encodeRecord(b *strings.Builder, rec *Record, path []string, depth int) error {
	if depth > MaxDepth {
		return &DepthError{Path: pathString(path), Limit: MaxDepth}
	}

	// Partition entries: flat keys first, nested sections after.
	var nested []string
	for _, key := range rec.keys {
		value := rec.values[key]
		if _, ok := value.(*Record); ok {
			nested = append(nested, key)
			continue
		}
		writeKey(b, key)
		b.WriteString(" = ")
		if err := encodeValue(b, value, append(path, key), depth); err != nil {
			return err
		}
		b.WriteByte('\n')
	}

	for _, key := range nested {
		child := rec.values[key].(*Record)
		childPath := append(path, key)
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteByte('[')
		for i, seg := range childPath {
			if i > 0 {
				b.WriteByte('.')
			}
			writeKey(b, seg)
		}
		b.WriteString("]\n")
		if err := encodeRecord(b, child, childPath, depth+1); err != nil {
			return err
		}
	}

	return nil
}

func encodeValue(b *strings.Builder, value any, path []string, depth int) error {
	switch v := value.(type) {
	case string:
		writeQuoted(b, v)
	case bool:
		b.WriteString(strconv.FormatBool(v))
	case int:
		b.WriteString(strconv.FormatInt(int64(v), 10))
	case int8:
		b.WriteString(strconv.FormatInt(int64(v), 10))
	case int16:
		b.WriteString(strconv.FormatInt(int64(v), 10))
	case int32:
		b.WriteString(strconv.FormatInt(int64(v), 10))
	case int64:
		b.WriteString(strconv.FormatInt(v, 10))
	case uint:
		b.WriteString(strconv.FormatUint(uint64(v), 10))
	case uint8:
		b.WriteString(strconv.FormatUint(uint64(v), 10))
	case uint16:
		b.WriteString(strconv.FormatUint(uint64(v), 10))
	case uint32:
		b.WriteString(strconv.FormatUint(uint64(v), 10))
	case uint64:
		if v > math.MaxInt64 {
			return &UnsupportedValueError{Path: pathString(path), Value: value}
		}
		b.WriteString(strconv.FormatUint(v, 10))
	case []any:
		if depth+1 > MaxDepth {
			return &DepthError{Path: pathString(path), Limit: MaxDepth}
		}
		if len(v) == 0 {
			b.WriteString("[]")
			return nil
		}
		b.WriteString("[ ")
		for i, elem := range v {
			if i > 0 {
				b.WriteString(", ")
			}
			if err := encodeValue(b, elem, path, depth+1); err != nil {
				return err
			}
		}
		b.WriteString(" ]")
		return nil
	default:
		// *Record lands here when it appears inside an array: sections have
		// no inline form, so arrays hold scalars and arrays only.
		return &UnsupportedValueError{Path: pathString(path), Value: value}
	}
	return nil
}

func pathString(path []string) string {
	if len(path) == 0 {
		return "(root)"
	}
	return strings.Join(path, ".")
}

// writeKey emits a key bare when it is safe, quoted otherwise.
func writeKey(b *strings.Builder, key string) {
	if isBareKey(key) {
		b.WriteString(key)
		return
	}
	writeQuoted(b, key)
}

func isBareKey(key string) bool {
	if key == "" {
		return false
	}
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_' || r == '-':
		default:
			return false
		}
	}
	return true
}

func writeQuoted(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		case '\f':
			b.WriteString(`\f`)
		case '\r':
			b.WriteString(`\r`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(b, `\u%04X`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
}
