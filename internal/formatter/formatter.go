// Package formatter turns a lint results array into a configuration-markup
// document: run totals first, then one section per file with its messages.
package formatter

import (
	"fmt"
	"strconv"

	"github.com/confmark/confmark/pkg/markup"
)

// Options is the optional second argument of the formatter contract. Callers
// invoking the formatter as an output hook may pass rule metadata here; the
// markup output has no use for it, so it is accepted and ignored.
type Options struct {
	RulesMeta map[string]any `json:"rulesMeta,omitempty"`
}

// Format serializes a lint results array to configuration-markup text.
// opts may be nil.
func Format(results []FileResult, opts *Options) (string, error) {
	doc, err := BuildDocument(results)
	if err != nil {
		return "", err
	}
	return markup.MarshalString(doc)
}

// BuildDocument assembles the markup document for a results array.
func BuildDocument(results []FileResult) (*markup.Record, error) {
	totalErrors := 0
	totalWarnings := 0
	for _, res := range results {
		errs, warns := countSeverities(res.Messages)
		totalErrors += errs
		totalWarnings += warns
	}

	doc := markup.NewRecord()
	doc.MustSet("errorCount", totalErrors)
	doc.MustSet("warningCount", totalWarnings)
	doc.MustSet("fileCount", len(results))

	if len(results) == 0 {
		return doc, nil
	}

	files := markup.NewRecord()
	for _, res := range results {
		file := markup.NewRecord()
		errs, warns := countSeverities(res.Messages)
		file.MustSet("errorCount", errs)
		file.MustSet("warningCount", warns)

		if len(res.Messages) > 0 {
			messages := markup.NewRecord()
			for i, msg := range res.Messages {
				messages.MustSet(strconv.Itoa(i+1), messageRecord(msg))
			}
			file.MustSet("messages", messages)
		}

		if err := files.Set(res.FilePath, file); err != nil {
			return nil, fmt.Errorf("results list file %q twice: %w", res.FilePath, err)
		}
	}
	doc.MustSet("files", files)

	return doc, nil
}

func messageRecord(msg Message) *markup.Record {
	rec := markup.NewRecord()
	rec.MustSet("ruleId", msg.RuleID)
	rec.MustSet("severity", severityString(msg.Severity))
	rec.MustSet("line", msg.Line)
	rec.MustSet("column", msg.Column)
	rec.MustSet("message", msg.Message)
	return rec
}

func countSeverities(messages []Message) (errors, warnings int) {
	for _, msg := range messages {
		switch msg.Severity {
		case 2:
			errors++
		case 1:
			warnings++
		}
	}
	return errors, warnings
}
