package formatter

import (
	"strings"
	"testing"

	"github.com/confmark/confmark/pkg/markup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResults() []FileResult {
	return []FileResult{
		{
			FilePath: "src/app.js",
			Messages: []Message{
				{RuleID: "semi", Severity: 2, Message: "Missing semicolon.", Line: 3, Column: 10},
				{RuleID: "no-unused-vars", Severity: 1, Message: "'x' is defined but never used.", Line: 7, Column: 5},
			},
		},
		{
			FilePath: "src/util.js",
			Messages: nil,
		},
	}
}

func TestFormat_Golden(t *testing.T) {
	out, err := Format(sampleResults(), nil)
	require.NoError(t, err)

	expected := "errorCount = 1\n" +
		"warningCount = 1\n" +
		"fileCount = 2\n" +
		"\n" +
		"[files]\n" +
		"\n" +
		"[files.\"src/app.js\"]\n" +
		"errorCount = 1\n" +
		"warningCount = 1\n" +
		"\n" +
		"[files.\"src/app.js\".messages]\n" +
		"\n" +
		"[files.\"src/app.js\".messages.1]\n" +
		"ruleId = \"semi\"\n" +
		"severity = \"error\"\n" +
		"line = 3\n" +
		"column = 10\n" +
		"message = \"Missing semicolon.\"\n" +
		"\n" +
		"[files.\"src/app.js\".messages.2]\n" +
		"ruleId = \"no-unused-vars\"\n" +
		"severity = \"warning\"\n" +
		"line = 7\n" +
		"column = 5\n" +
		"message = \"'x' is defined but never used.\"\n" +
		"\n" +
		"[files.\"src/util.js\"]\n" +
		"errorCount = 0\n" +
		"warningCount = 0\n"
	assert.Equal(t, expected, out)
}

func TestFormat_OutputParsesBack(t *testing.T) {
	out, err := Format(sampleResults(), nil)
	require.NoError(t, err)

	doc, err := markup.UnmarshalString(out)
	require.NoError(t, err)

	errorCount, ok := doc.Get("errorCount")
	require.True(t, ok)
	assert.Equal(t, int64(1), errorCount)

	files, ok := doc.Get("files")
	require.True(t, ok)
	assert.Equal(t, []string{"src/app.js", "src/util.js"}, files.(*markup.Record).Keys())
}

func TestFormat_EmptyResults(t *testing.T) {
	out, err := Format(nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "errorCount = 0\nwarningCount = 0\nfileCount = 0\n", out)
}

func TestFormat_OptionsIgnored(t *testing.T) {
	plain, err := Format(sampleResults(), nil)
	require.NoError(t, err)

	withOpts, err := Format(sampleResults(), &Options{
		RulesMeta: map[string]any{"semi": map[string]any{"type": "layout"}},
	})
	require.NoError(t, err)

	assert.Equal(t, plain, withOpts)
}

func TestFormat_DuplicateFilePath(t *testing.T) {
	results := []FileResult{
		{FilePath: "src/app.js"},
		{FilePath: "src/app.js"},
	}

	_, err := Format(results, nil)
	require.Error(t, err)

	var dup *markup.DuplicateKeyError
	assert.ErrorAs(t, err, &dup)
}

func TestDecodeResults(t *testing.T) {
	input := `[
		{
			"filePath": "src/app.js",
			"messages": [
				{"ruleId": "semi", "severity": 2, "message": "Missing semicolon.", "line": 3, "column": 10}
			]
		}
	]`

	results, err := DecodeResults(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "src/app.js", results[0].FilePath)
	require.Len(t, results[0].Messages, 1)
	assert.Equal(t, "semi", results[0].Messages[0].RuleID)
	assert.Equal(t, 2, results[0].Messages[0].Severity)
}

func TestDecodeResults_Invalid(t *testing.T) {
	_, err := DecodeResults(strings.NewReader(`{"not": "an array"}`))
	assert.Error(t, err)
}

func TestSeverityString(t *testing.T) {
	tests := []struct {
		severity int
		expected string
	}{
		{2, "error"},
		{1, "warning"},
		{0, "info"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, severityString(tt.severity))
	}
}
