package formatter

import (
	"encoding/json"
	"fmt"
	"io"
)

// FileResult represents results for a single file. This mirrors one entry of
// the ESLint JSON output array.
type FileResult struct {
	FilePath string    `json:"filePath"`
	Messages []Message `json:"messages"`
}

// Message represents a single violation.
type Message struct {
	RuleID    string `json:"ruleId"`
	Severity  int    `json:"severity"` // 0=off, 1=warn, 2=error
	Message   string `json:"message"`
	Line      int    `json:"line"`
	Column    int    `json:"column"`
	EndLine   int    `json:"endLine,omitempty"`
	EndColumn int    `json:"endColumn,omitempty"`
}

// DecodeResults parses a lint results array from JSON.
func DecodeResults(r io.Reader) ([]FileResult, error) {
	var results []FileResult
	if err := json.NewDecoder(r).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to parse lint results: %w", err)
	}
	return results, nil
}

// severityString converts ESLint severity to string.
func severityString(severity int) string {
	switch severity {
	case 2:
		return "error"
	case 1:
		return "warning"
	default:
		return "info"
	}
}
