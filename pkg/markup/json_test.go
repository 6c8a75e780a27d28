package markup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromJSON_PreservesKeyOrder(t *testing.T) {
	doc, err := FromJSON(strings.NewReader(`{"zebra": 1, "apple": 2, "mango": 3}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"zebra", "apple", "mango"}, doc.Keys())
}

func TestFromJSON_ESLintRC(t *testing.T) {
	input := `{
		"extends": "eslint:recommended",
		"rules": {
			"consistent-return": 2,
			"indent": [1, 4],
			"no-else-return": 1,
			"semi": [1, "always"],
			"space-unary-ops": 2
		}
	}`

	doc, err := FromJSON(strings.NewReader(input))
	require.NoError(t, err)

	out, err := MarshalString(doc)
	require.NoError(t, err)

	expected := "extends = \"eslint:recommended\"\n" +
		"\n" +
		"[rules]\n" +
		"consistent-return = 2\n" +
		"indent = [ 1, 4 ]\n" +
		"no-else-return = 1\n" +
		"semi = [ 1, \"always\" ]\n" +
		"space-unary-ops = 2\n"
	assert.Equal(t, expected, out)

	// And the emitted text parses back into the same document.
	parsed, err := UnmarshalString(out)
	require.NoError(t, err)
	assert.Equal(t, doc, parsed)
}

func TestFromJSON_IntegralNumbers(t *testing.T) {
	// Exponent notation is still integral as long as the value is whole.
	tests := []struct {
		name  string
		input string
		want  int64
	}{
		{"plain", `{"n": 42}`, 42},
		{"exponent", `{"n": 1e3}`, 1000},
		{"signed exponent", `{"n": -2.5e1}`, -25},
		{"fraction with exponent", `{"n": 1.25e2}`, 125},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := FromJSON(strings.NewReader(tt.input))
			require.NoError(t, err)

			n, ok := doc.Get("n")
			require.True(t, ok)
			assert.Equal(t, tt.want, n)
		})
	}
}

func TestFromJSON_UnsupportedValues(t *testing.T) {
	tests := []struct {
		name  string
		input string
		path  string
	}{
		{"float", `{"ratio": 1.5}`, "ratio"},
		{"nested float", `{"rules": {"indent": 0.5}}`, "rules.indent"},
		{"fractional exponent", `{"ratio": 1.5e-1}`, "ratio"},
		{"exponent beyond exact range", `{"big": 1e30}`, "big"},
		{"null", `{"missing": null}`, "missing"},
		{"object in array", `{"items": [{"a": 1}]}`, "items"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromJSON(strings.NewReader(tt.input))
			require.Error(t, err)

			var unsupported *UnsupportedValueError
			require.ErrorAs(t, err, &unsupported)
			assert.Equal(t, tt.path, unsupported.Path)
		})
	}
}

func TestFromJSON_RejectsNonObjectRoot(t *testing.T) {
	for _, input := range []string{`[1, 2]`, `"text"`, `42`} {
		_, err := FromJSON(strings.NewReader(input))
		assert.Error(t, err, "input %s", input)
	}
}

func TestFromJSON_RejectsTrailingData(t *testing.T) {
	_, err := FromJSON(strings.NewReader(`{"a": 1} {"b": 2}`))
	assert.Error(t, err)
}

func TestFromJSON_DuplicateKeys(t *testing.T) {
	_, err := FromJSON(strings.NewReader(`{"a": 1, "a": 2}`))

	var dup *DuplicateKeyError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "a", dup.Key)
}
