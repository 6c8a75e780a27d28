// Package markup implements the configuration-markup text format: an
// INI/TOML-style document of key/value lines, inline arrays, and bracketed
// nested sections. It provides a deterministic serializer (Marshal) and a
// parser (Unmarshal) that round-trips everything the serializer emits.
package markup

// Record is an ordered mapping from string keys to values. Insertion order is
// preserved and duplicate keys are rejected, so serializing the same Record
// always yields the same bytes.
//
// Supported value types:
//   - string
//   - bool
//   - any Go integer type (canonicalized to int64 when parsed back)
//   - []any holding supported scalar or array values
//   - *Record (serialized as a nested section)
//
// Anything else (floats, nil, maps, records inside arrays) is rejected by
// Marshal with an UnsupportedValueError.
type Record struct {
	keys   []string
	values map[string]any
}

// NewRecord creates an empty Record.
func NewRecord() *Record {
	return &Record{
		values: make(map[string]any),
	}
}

// Set appends a key/value pair. It returns a DuplicateKeyError if the key is
// already present; values are not validated until Marshal. The zero Record is
// ready to use.
func (r *Record) Set(key string, value any) error {
	if _, exists := r.values[key]; exists {
		return &DuplicateKeyError{Key: key}
	}
	if r.values == nil {
		r.values = make(map[string]any)
	}
	r.keys = append(r.keys, key)
	r.values[key] = value
	return nil
}

// MustSet is Set for keys the caller knows are absent. It panics on a
// duplicate key.
func (r *Record) MustSet(key string, value any) {
	if err := r.Set(key, value); err != nil {
		panic(err)
	}
}

// Get returns the value stored under key.
func (r *Record) Get(key string) (any, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (r *Record) Keys() []string {
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)
	return keys
}

// Len returns the number of entries.
func (r *Record) Len() int {
	return len(r.keys)
}
