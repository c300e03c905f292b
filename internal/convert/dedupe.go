package convert

import "github.com/votertools/checkin2csv/internal/layout"

// Deduplicate filters the ordered record sequence to the first occurrence of
// each distinct non-empty key value, preserving relative order, and returns
// the number of removed duplicates. Records with an absent or empty key are
// never merged against another record. The operation is idempotent.
func Deduplicate(records []layout.Record, key string) ([]layout.Record, int) {
	unique := make([]layout.Record, 0, len(records))
	seen := make(map[string]bool, len(records))
	removed := 0

	for _, rec := range records {
		value := rec.Fields[key]
		if value == "" {
			unique = append(unique, rec)
			continue
		}
		if seen[value] {
			removed++
			continue
		}
		seen[value] = true
		unique = append(unique, rec)
	}

	return unique, removed
}
