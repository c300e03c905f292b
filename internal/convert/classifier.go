// Package convert drives the conversion of one voter report document into a
// deduplicated CSV record set: line classification, page-by-page aggregation,
// duplicate suppression, and output serialization.
package convert

import (
	"strings"

	"github.com/votertools/checkin2csv/internal/layout"
)

// Outcome is the classification decision for a single raw line.
type Outcome int

const (
	// Skip marks a line as noise: headers, footers, blanks, wrapped text,
	// or anything no layout matcher recognizes.
	Skip Outcome = iota
	// Parsed marks a line that one layout matcher extracted a record from.
	Parsed
)

// Classification is the explicit two-variant result of classifying one line.
// Record is only populated when Outcome is Parsed.
type Classification struct {
	Outcome Outcome
	Record  layout.Record
}

// MinLineLength is the shortest trimmed line that can hold a minimal valid
// record (sequence number, name, nine-digit State ID, precinct).
const MinLineLength = 20

// Classifier decides whether a raw line is noise or a candidate record, and
// extracts the record by trying each registered layout in priority order.
type Classifier struct {
	layouts []*layout.Layout
}

// NewClassifier creates a classifier over the registered layouts.
func NewClassifier() *Classifier {
	return &Classifier{layouts: layout.Layouts()}
}

// Classify maps one raw line to Skip or Parsed. The same line always yields
// the same decision. Lines that partially resemble a record (right digit
// count, missing precinct prefix) are noise; partial records are never
// emitted.
func (c *Classifier) Classify(line string) Classification {
	line = strings.TrimSpace(line)
	if len(line) < MinLineLength {
		return Classification{Outcome: Skip}
	}

	if layout.IsStructuralNoise(line) {
		return Classification{Outcome: Skip}
	}

	for _, l := range c.layouts {
		if rec, ok := l.TryMatch(line); ok {
			return Classification{Outcome: Parsed, Record: rec}
		}
	}

	// Unparseable lines are expected in real PDFs (repeated page headers,
	// footers, page-break artifacts) and must not abort processing.
	return Classification{Outcome: Skip}
}
