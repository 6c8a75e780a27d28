package markup

import (
	"strconv"
	"strings"
)

// Unmarshal parses configuration-markup text into a document. It reads
// exactly the subset Marshal emits: "key = value" lines, inline arrays,
// quoted strings, integers, booleans, bracketed section headers, blank lines
// and '#' comments. Errors carry the input line number; duplicate keys and
// duplicate section headers fail fast.
func Unmarshal(data []byte) (*Record, error) {
	return UnmarshalString(string(data))
}

// UnmarshalString is Unmarshal for a string input.
func UnmarshalString(text string) (*Record, error) {
	root := NewRecord()
	current := root
	defined := make(map[*Record]bool)

	// Split rather than scan: a single string value or inline array may span
	// far more than any fixed token buffer.
	for i, raw := range strings.Split(text, "\n") {
		lineNum := i + 1
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "[") {
			section, err := openSection(root, line, lineNum, defined)
			if err != nil {
				return nil, err
			}
			current = section
			continue
		}

		if err := parseAssignment(current, line, lineNum); err != nil {
			return nil, err
		}
	}

	return root, nil
}

// openSection resolves a "[a.b.c]" header against the root, creating
// intermediate records as needed.
func openSection(root *Record, line string, lineNum int, defined map[*Record]bool) (*Record, error) {
	if !strings.HasSuffix(line, "]") {
		return nil, &ParseError{Line: lineNum, Msg: "unterminated section header"}
	}
	segs, err := parseHeader(line[1:len(line)-1], lineNum)
	if err != nil {
		return nil, err
	}
	if len(segs)+1 > MaxDepth {
		return nil, &DepthError{Path: strings.Join(segs, "."), Limit: MaxDepth}
	}

	rec := root
	for _, seg := range segs {
		v, ok := rec.values[seg]
		if !ok {
			child := NewRecord()
			_ = rec.Set(seg, child)
			rec = child
			continue
		}
		child, ok := v.(*Record)
		if !ok {
			return nil, &ParseError{
				Line: lineNum,
				Msg:  "section name conflicts with key " + strconv.Quote(seg),
				Err:  &DuplicateKeyError{Key: seg},
			}
		}
		rec = child
	}

	// Identity is the resolved record itself: distinct paths never share a
	// record, so headers with exotic segment bytes cannot collide.
	if defined[rec] {
		return nil, &ParseError{
			Line: lineNum,
			Msg:  "section " + strconv.Quote(strings.Join(segs, ".")) + " defined twice",
			Err:  &DuplicateKeyError{Key: segs[len(segs)-1]},
		}
	}
	defined[rec] = true

	return rec, nil
}

func parseHeader(inner string, lineNum int) ([]string, error) {
	var segs []string
	s := inner
	for {
		s = strings.TrimLeft(s, " \t")
		key, rest, err := scanKey(s, lineNum)
		if err != nil {
			return nil, err
		}
		segs = append(segs, key)
		rest = strings.TrimLeft(rest, " \t")
		if rest == "" {
			return segs, nil
		}
		if rest[0] != '.' {
			return nil, &ParseError{Line: lineNum, Msg: "malformed section header"}
		}
		s = rest[1:]
	}
}

func parseAssignment(rec *Record, line string, lineNum int) error {
	key, rest, err := scanKey(line, lineNum)
	if err != nil {
		return err
	}
	rest = strings.TrimLeft(rest, " \t")
	if rest == "" || rest[0] != '=' {
		return &ParseError{Line: lineNum, Msg: "expected '=' after key " + strconv.Quote(key)}
	}
	rest = strings.TrimLeft(rest[1:], " \t")

	value, rest, err := scanValue(rest, lineNum, 1)
	if err != nil {
		return err
	}
	rest = strings.TrimLeft(rest, " \t")
	if rest != "" && !strings.HasPrefix(rest, "#") {
		return &ParseError{Line: lineNum, Msg: "unexpected trailing characters: " + strconv.Quote(rest)}
	}

	if err := rec.Set(key, value); err != nil {
		return &ParseError{Line: lineNum, Msg: err.Error(), Err: err}
	}
	return nil
}

// scanKey reads a bare or quoted key and returns the remainder of the line.
func scanKey(s string, lineNum int) (string, string, error) {
	if s == "" {
		return "", "", &ParseError{Line: lineNum, Msg: "missing key"}
	}
	if s[0] == '"' {
		return scanQuoted(s, lineNum)
	}
	i := 0
	for i < len(s) && isBareChar(s[i]) {
		i++
	}
	if i == 0 {
		return "", "", &ParseError{Line: lineNum, Msg: "invalid key"}
	}
	return s[:i], s[i:], nil
}

func isBareChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '_' || c == '-':
		return true
	}
	return false
}

func scanValue(s string, lineNum, depth int) (any, string, error) {
	if depth > MaxDepth {
		return nil, "", &DepthError{Path: "(array)", Limit: MaxDepth}
	}
	if s == "" {
		return nil, "", &ParseError{Line: lineNum, Msg: "missing value"}
	}

	switch s[0] {
	case '"':
		return scanQuoted(s, lineNum)
	case '[':
		return scanArray(s, lineNum, depth)
	}

	// Bare token: boolean or integer.
	i := 0
	for i < len(s) && s[i] != ',' && s[i] != ']' && s[i] != '#' && s[i] != ' ' && s[i] != '\t' {
		i++
	}
	token, rest := s[:i], s[i:]
	switch token {
	case "true":
		return true, rest, nil
	case "false":
		return false, rest, nil
	}
	n, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return nil, "", &ParseError{Line: lineNum, Msg: "invalid value " + strconv.Quote(token)}
	}
	return n, rest, nil
}

func scanArray(s string, lineNum, depth int) (any, string, error) {
	s = strings.TrimLeft(s[1:], " \t")
	if strings.HasPrefix(s, "]") {
		return []any{}, s[1:], nil
	}

	var elems []any
	for {
		v, rest, err := scanValue(s, lineNum, depth+1)
		if err != nil {
			return nil, "", err
		}
		elems = append(elems, v)

		rest = strings.TrimLeft(rest, " \t")
		if rest == "" {
			return nil, "", &ParseError{Line: lineNum, Msg: "unterminated array"}
		}
		switch rest[0] {
		case ',':
			s = strings.TrimLeft(rest[1:], " \t")
		case ']':
			return elems, rest[1:], nil
		default:
			return nil, "", &ParseError{Line: lineNum, Msg: "expected ',' or ']' in array"}
		}
	}
}

// scanQuoted reads a double-quoted string starting at s[0] and decodes the
// escape sequences writeQuoted produces.
func scanQuoted(s string, lineNum int) (string, string, error) {
	var b strings.Builder
	i := 1
	for i < len(s) {
		c := s[i]
		switch c {
		case '"':
			return b.String(), s[i+1:], nil
		case '\\':
			i++
			if i >= len(s) {
				return "", "", &ParseError{Line: lineNum, Msg: "unterminated escape sequence"}
			}
			switch s[i] {
			case '"':
				b.WriteByte('"')
			case '\\':
				b.WriteByte('\\')
			case 'b':
				b.WriteByte('\b')
			case 't':
				b.WriteByte('\t')
			case 'n':
				b.WriteByte('\n')
			case 'f':
				b.WriteByte('\f')
			case 'r':
				b.WriteByte('\r')
			case 'u':
				if i+4 >= len(s) {
					return "", "", &ParseError{Line: lineNum, Msg: "truncated \\u escape"}
				}
				n, err := strconv.ParseUint(s[i+1:i+5], 16, 32)
				if err != nil {
					return "", "", &ParseError{Line: lineNum, Msg: "invalid \\u escape"}
				}
				b.WriteRune(rune(n))
				i += 4
			default:
				return "", "", &ParseError{Line: lineNum, Msg: "unknown escape " + strconv.Quote(string(s[i]))}
			}
			i++
		default:
			b.WriteByte(c)
			i++
		}
	}
	return "", "", &ParseError{Line: lineNum, Msg: "unterminated string"}
}
