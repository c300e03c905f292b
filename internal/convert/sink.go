package convert

import "log"

// ProgressSink receives page-level progress events and warnings during a
// conversion. It is injected rather than ambient so tests can capture output
// deterministically.
type ProgressSink interface {
	// PageProcessed is called at a fixed page-count interval and on the
	// final page of a document.
	PageProcessed(page, totalPages, recordsSoFar int)
	// Warnf reports a non-fatal condition, such as a page with no
	// extractable text or a document with zero records.
	Warnf(format string, args ...any)
}

// LogSink writes progress events and warnings to a standard logger.
type LogSink struct {
	Logger *log.Logger
}

// PageProcessed logs per-page progress.
func (s *LogSink) PageProcessed(page, totalPages, recordsSoFar int) {
	s.Logger.Printf("   -> Page %d/%d  (%d records so far)", page, totalPages, recordsSoFar)
}

// Warnf logs a warning.
func (s *LogSink) Warnf(format string, args ...any) {
	s.Logger.Printf("WARNING: "+format, args...)
}

// nopSink discards all events. Used when no sink is configured.
type nopSink struct{}

func (nopSink) PageProcessed(page, totalPages, recordsSoFar int) {}

func (nopSink) Warnf(format string, args ...any) {}
