package markup

import "fmt"

// UnsupportedValueError is returned when a document contains a value outside
// the supported union. Path is the dotted key path of the offending entry.
type UnsupportedValueError struct {
	Path  string
	Value any
}

func (e *UnsupportedValueError) Error() string {
	return fmt.Sprintf("unsupported value of type %T at %q", e.Value, e.Path)
}

// DuplicateKeyError is returned when a Record would contain the same key twice
// at the same nesting level.
type DuplicateKeyError struct {
	Key string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key %q", e.Key)
}

// DepthError is returned when document nesting exceeds MaxDepth.
type DepthError struct {
	Path  string
	Limit int
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("nesting depth exceeds %d at %q", e.Limit, e.Path)
}

// ParseError reports a syntax or structure error with its input line number.
type ParseError struct {
	Line int
	Msg  string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
