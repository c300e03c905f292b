package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/votertools/checkin2csv/internal/layout"
)

func TestClassify(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name       string
		line       string
		outcome    Outcome
		wantLayout string
	}{
		{
			name:       "check-in record",
			line:       "12   JOHN A SMITH   123456789   S PCT 1",
			outcome:    Parsed,
			wantLayout: "checkin",
		},
		{
			name:       "check-in record with surrounding whitespace",
			line:       "   12   JOHN A SMITH   123456789   S PCT 1   ",
			outcome:    Parsed,
			wantLayout: "checkin",
		},
		{
			name:       "polling place record claimed by the more specific shape",
			line:       "103  MARY JO CRUZ  4567890123  CIVIC CENTER ANNEX  S PCT 12",
			outcome:    Parsed,
			wantLayout: "checkin_polling_place",
		},
		{
			name:       "mailed ballot record",
			line:       "NOVEMBER 2024 GENERAL ELECTION  101  987654321  GARCIA, MARIA",
			outcome:    Parsed,
			wantLayout: "mailed_ballot",
		},
		{
			name:       "personal appearance record",
			line:       "MARCH 2026 PRIMARY ELECTION  ROBERT ONEIL  246813579  S 4-B",
			outcome:    Parsed,
			wantLayout: "personal_appearance",
		},
		{
			name:       "four columns with wide gutters stay on the plain check-in shape",
			line:       "17     OTHER VOTER     987654321     S PCT 3",
			outcome:    Parsed,
			wantLayout: "checkin",
		},
		{
			name:       "election name sharing a prefix with a rejection word",
			line:       "TOWN OF RIVERDALE GENERAL ELECTION  101  987654321  GARCIA, MARIA",
			outcome:    Parsed,
			wantLayout: "mailed_ballot",
		},
		{
			name:    "column header is noise regardless of layout",
			line:    "No.  Name  State ID  Precinct",
			outcome: Skip,
		},
		{
			name:    "blank line",
			line:    "",
			outcome: Skip,
		},
		{
			name:    "line below minimum length",
			line:    "12 J 123456789",
			outcome: Skip,
		},
		{
			name:    "partial resemblance without precinct prefix is noise",
			line:    "12   JOHN A SMITH   123456789   PCT 1",
			outcome: Skip,
		},
		{
			name:    "wrapped report text",
			line:    "THIS LINE IS JUST WRAPPED TEXT FROM THE REPORT BODY",
			outcome: Skip,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cls := c.Classify(tt.line)
			require.Equal(t, tt.outcome, cls.Outcome)
			if tt.outcome == Parsed {
				assert.Equal(t, tt.wantLayout, cls.Record.Layout)
				assert.NotEmpty(t, cls.Record.Fields[layout.NaturalKey])
			}
		})
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	c := NewClassifier()

	lines := []string{
		"12   JOHN A SMITH   123456789   S PCT 1",
		"No.  Name  State ID  Precinct",
		"random footer text that matches nothing at all",
	}
	for _, line := range lines {
		first := c.Classify(line)
		second := c.Classify(line)
		assert.Equal(t, first, second, line)
	}
}
