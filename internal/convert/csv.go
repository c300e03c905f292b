package convert

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/votertools/checkin2csv/internal/layout"
)

// OutputSuffix is appended to the input file stem to derive the default
// output file name.
const OutputSuffix = "_converted"

// DefaultOutputPath derives the output CSV path from the input path:
// the same directory and stem, plus the conversion suffix.
func DefaultOutputPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	return strings.TrimSuffix(inputPath, ext) + OutputSuffix + ".csv"
}

// WriteCSV writes the records to path as UTF-8 CSV: a header row in the
// column order of the first record's layout, one data row per record, no
// index column. Fields containing the delimiter or quotes are quoted by the
// encoder, so names with embedded commas survive a round-trip. Records from
// a different layout than the first serialize their shared columns; absent
// columns are left empty.
func WriteCSV(path string, records []layout.Record) error {
	if len(records) == 0 {
		return fmt.Errorf("no records to write")
	}

	lay := layout.ByName(records[0].Layout)
	if lay == nil {
		return fmt.Errorf("unknown layout %q", records[0].Layout)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(lay.Columns); err != nil {
		f.Close()
		return fmt.Errorf("failed to write header: %w", err)
	}

	row := make([]string, len(lay.Columns))
	for _, rec := range records {
		for i, col := range lay.Columns {
			row[i] = rec.Fields[col]
		}
		if err := w.Write(row); err != nil {
			f.Close()
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("failed to flush output: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}

	return nil
}
