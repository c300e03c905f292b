package convert

import (
	"fmt"
	"path/filepath"

	"github.com/votertools/checkin2csv/internal/layout"
	"github.com/votertools/checkin2csv/internal/pdfsource"
)

const (
	// DefaultPageInterval is the page-count interval between progress events.
	DefaultPageInterval = 10
)

// PageSource yields zero or more whitespace-joined text lines per page, in
// top-to-bottom reading order. Implemented by pdfsource.Document; tests
// substitute an in-memory fake.
type PageSource interface {
	PageCount() int
	PageLines(page int) ([]string, error)
}

// Result is the final state of one document conversion. It has no further
// mutation after ConvertFile returns.
type Result struct {
	InputPath         string
	OutputPath        string
	PagesProcessed    int
	LinesScanned      int
	RecordsParsed     int
	DuplicatesRemoved int
	RecordsWritten    int
}

// Converter drives extraction across an entire document: it pulls pages from
// a source, classifies every line, accumulates parsed records in page/line
// order, deduplicates on the natural key, and serializes the survivors.
type Converter struct {
	classifier   *Classifier
	sink         ProgressSink
	maxFileSize  int64
	pageInterval int
}

// NewConverter creates a converter. A nil sink discards progress events; a
// non-positive pageInterval falls back to DefaultPageInterval.
func NewConverter(maxFileSize int64, pageInterval int, sink ProgressSink) *Converter {
	if sink == nil {
		sink = nopSink{}
	}
	if pageInterval <= 0 {
		pageInterval = DefaultPageInterval
	}

	return &Converter{
		classifier:   NewClassifier(),
		sink:         sink,
		maxFileSize:  maxFileSize,
		pageInterval: pageInterval,
	}
}

// Collect walks the source page by page, line by line, and returns every
// parsed record in page/line order plus the total number of lines scanned.
// A page that fails to yield text is treated as empty and skipped; it never
// fails the run. Deduplication depends on the returned order, so it must be
// preserved exactly.
func (c *Converter) Collect(src PageSource) ([]layout.Record, int) {
	totalPages := src.PageCount()
	var records []layout.Record
	linesScanned := 0

	for page := 1; page <= totalPages; page++ {
		lines, err := src.PageLines(page)
		if err != nil {
			c.sink.Warnf("page %d yielded no extractable text: %v", page, err)
		} else {
			for _, line := range lines {
				linesScanned++
				if cls := c.classifier.Classify(line); cls.Outcome == Parsed {
					records = append(records, cls.Record)
				}
			}
		}

		if page%c.pageInterval == 0 || page == totalPages {
			c.sink.PageProcessed(page, totalPages, len(records))
		}
	}

	return records, linesScanned
}

// ConvertFile converts one PDF document to CSV. If outputPath is empty the
// default derived name is used. A document that cannot be opened or decoded
// fails the whole run with zero output. The input handle is released on every
// exit path.
func (c *Converter) ConvertFile(inputPath, outputPath string) (*Result, error) {
	if outputPath == "" {
		outputPath = DefaultOutputPath(inputPath)
	}

	doc, err := pdfsource.Open(inputPath, c.maxFileSize)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", filepath.Base(inputPath), err)
	}
	defer doc.Close()

	return c.Convert(doc, inputPath, outputPath)
}

// Convert runs the full pipeline against an already-open source: collect in
// page/line order, deduplicate on the natural key, serialize. A document with
// zero parsed records produces a warning and no output file, but no error.
func (c *Converter) Convert(src PageSource, inputPath, outputPath string) (*Result, error) {
	records, linesScanned := c.Collect(src)

	result := &Result{
		InputPath:      inputPath,
		OutputPath:     outputPath,
		PagesProcessed: src.PageCount(),
		LinesScanned:   linesScanned,
		RecordsParsed:  len(records),
	}

	if len(records) == 0 {
		c.sink.Warnf("no voter records found in %s", filepath.Base(inputPath))
		return result, nil
	}

	unique, removed := Deduplicate(records, layout.NaturalKey)
	result.DuplicatesRemoved = removed

	if err := WriteCSV(outputPath, unique); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", filepath.Base(outputPath), err)
	}
	result.RecordsWritten = len(unique)

	return result, nil
}
