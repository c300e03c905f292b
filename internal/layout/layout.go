// Package layout defines the known voter report layouts and the pattern
// matchers that extract records from single lines of page text.
//
// Each county prints visually similar tabular reports, but column count and
// order differ. A single generalized pattern produces false positives, so the
// matcher set is closed and explicit: adding a county means appending a new
// Layout, never editing an existing one.
package layout

import (
	"regexp"
	"strings"
)

// Column names shared across layouts.
const (
	ColNo           = "No"
	ColName         = "Name"
	ColStateID      = "State ID"
	ColPollingPlace = "Polling Place"
	ColPrecinct     = "Precinct"
	ColElection     = "Election"
	ColPct          = "Pct"
)

// NaturalKey is the field used to detect duplicate records. Every layout
// carries it.
const NaturalKey = ColStateID

// Record is one parsed data row. Fields correspond exactly to the column set
// of the layout that produced it; a Record is never partially populated.
type Record struct {
	Layout string
	Fields map[string]string
}

// Layout recognizes one county/report format and extracts its fixed column
// set from a single line. Layouts are stateless and immutable; they are built
// once at startup and tried in a fixed priority order for every line.
type Layout struct {
	Name    string
	Columns []string
	pattern *regexp.Regexp
}

// TryMatch applies the layout's extraction pattern to one line of text.
// On success it returns a fully populated Record; otherwise ok is false and
// the next layout in priority order should be tried.
func (l *Layout) TryMatch(line string) (Record, bool) {
	groups := l.pattern.FindStringSubmatch(line)
	if groups == nil {
		return Record{}, false
	}

	fields := make(map[string]string, len(l.Columns))
	for i, col := range l.Columns {
		fields[col] = strings.TrimSpace(groups[i+1])
	}

	return Record{Layout: l.Name, Fields: fields}, true
}

// Field shapes shared by the extraction patterns:
//
//	sequence number  1-4 digits
//	State ID         9-12 digits (bounded so page numbers and precinct codes
//	                 never match as IDs)
//	Name             lazy capture between fixed-shape neighbors, so embedded
//	                 spaces and punctuation survive intact
//	Polling Place    anchored to non-space at both ends, so a wide gutter in
//	                 a four-column row never yields an empty capture
//	Precinct         requires the structural "S " prefix and runs to end of
//	                 line ("S PCT 1" stays whole)
//	Election         must end with the literal word ELECTION
var layouts = []*Layout{
	{
		Name:    "checkin_polling_place",
		Columns: []string{ColNo, ColName, ColStateID, ColPollingPlace, ColPrecinct},
		pattern: regexp.MustCompile(`^\s*(\d{1,4})\s+(.+?)\s+(\d{9,12})\s+(\S(?:.*?\S)?)\s+(S\s+\S.*?)\s*$`),
	},
	{
		Name:    "checkin",
		Columns: []string{ColNo, ColName, ColStateID, ColPrecinct},
		pattern: regexp.MustCompile(`^\s*(\d{1,4})\s+(.+?)\s+(\d{9,12})\s+(S\s+\S.*?)\s*$`),
	},
	{
		Name:    "mailed_ballot",
		Columns: []string{ColElection, ColPct, ColStateID, ColName},
		pattern: regexp.MustCompile(`^\s*(.+?ELECTION)\s+(\d{1,4})\s+(\d{9,12})\s+(.+?)\s*$`),
	},
	{
		Name:    "personal_appearance",
		Columns: []string{ColElection, ColName, ColStateID, ColPrecinct},
		pattern: regexp.MustCompile(`^\s*(.+?ELECTION)\s+(.+?)\s+(\d{9,12})\s+(S\s+\S.*?)\s*$`),
	},
}

// Layouts returns the registered layouts in matcher priority order. The
// slice must not be modified by callers.
func Layouts() []*Layout {
	return layouts
}

// ByName returns the layout with the given name, or nil if unknown.
func ByName(name string) *Layout {
	for _, l := range layouts {
		if l.Name == name {
			return l
		}
	}
	return nil
}

// rejectPattern identifies structural non-data lines: column headers, report
// titles, section banners, and metadata rows such as "County Name" or date
// ranges. Prefix match, case-insensitive. The short alternatives are
// word-bounded so an election name opening with "TOWN" or "TOTAL" is never
// mistaken for a "To" date range.
var rejectPattern = regexp.MustCompile(`(?i)^(No\.|Name\b|State ID|Polling Place|Precinct\b|County Name|Election Name|Report\b|From\b|To\b|ePulse|Voter Check-in|Website Post Report)`)

// IsStructuralNoise reports whether the line is a known header, footer, or
// metadata row that no matcher should ever be tried against.
func IsStructuralNoise(line string) bool {
	return rejectPattern.MatchString(line)
}
