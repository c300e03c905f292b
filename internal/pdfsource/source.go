// Package pdfsource opens voter report PDFs and exposes their content as
// whitespace-joined text lines per page, in top-to-bottom reading order.
package pdfsource

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Document is an open PDF positioned for page-by-page text extraction. The
// underlying file handle is held for the lifetime of one conversion and must
// be released with Close on every exit path.
type Document struct {
	path   string
	file   *os.File
	reader *pdf.Reader
}

// Open validates and opens the PDF at path. A file that is missing,
// oversized, or structurally undecodable is fatal for the whole document.
func Open(path string, maxFileSize int64) (*Document, error) {
	validator := NewValidator(maxFileSize)
	if err := validator.ValidateFile(path); err != nil {
		return nil, err
	}

	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	return &Document{
		path:   path,
		file:   f,
		reader: reader,
	}, nil
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int {
	return d.reader.NumPage()
}

// PageLines extracts the text rows of one page, joining row fragments with
// single spaces and dropping blank lines. An extraction failure is returned
// to the caller, which treats the page as empty rather than failing the run.
func (d *Document) PageLines(pageNum int) ([]string, error) {
	if pageNum < 1 || pageNum > d.reader.NumPage() {
		return nil, fmt.Errorf("invalid page number %d (document has %d pages)", pageNum, d.reader.NumPage())
	}

	page := d.reader.Page(pageNum)
	if page.V.IsNull() {
		return nil, nil
	}

	rows, err := page.GetTextByRow()
	if err != nil {
		return nil, fmt.Errorf("failed to extract text from page %d: %w", pageNum, err)
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		var b strings.Builder
		for i, word := range row.Content {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(word.S)
		}
		if line := strings.TrimSpace(b.String()); line != "" {
			lines = append(lines, line)
		}
	}

	return lines, nil
}

// Path returns the input file path.
func (d *Document) Path() string {
	return d.path
}

// Close releases the underlying file handle.
func (d *Document) Close() error {
	return d.file.Close()
}
