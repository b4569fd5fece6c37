package parsers

import (
	"testing"
	"time"

	"cookie-analytics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTime = "2021-09-15T17:51:13Z"

func newRow(raw string) models.RawRow {
	return models.RawRow{Raw: raw, Time: sampleTime, Environment: "prod"}
}

func TestRecordParser_Parse_Valid(t *testing.T) {
	t.Parallel()

	parser := NewRecordParser(time.UTC)
	row := newRow("2021-09-15 17:51:13 INFO BEGIN-COOKIE-SIZES(total=30) a: 1, bb: 22 END-COOKIE-SIZES trailing")

	result := parser.Parse(1, row, NewPayloadSet())

	require.Equal(t, OutcomeAccepted, result.Outcome)
	require.NotNil(t, result.Record)
	assert.Empty(t, result.Diagnostics)

	record := result.Record
	assert.Equal(t, time.Date(2021, 9, 15, 17, 51, 13, 0, time.UTC), record.Timestamp.UTC())
	assert.Equal(t, "prod", record.Environment)
	assert.Equal(t, 30, record.DeclaredTotalSize)
	assert.Equal(t, (1+1+3)+(2+22+3)-2, record.ComputedTotalSize)
	assert.Equal(t, []models.CookieSize{{Name: "a", Size: 1}, {Name: "bb", Size: 22}}, record.Cookies)
}

func TestRecordParser_Parse_DeclaredAndComputedMayDiffer(t *testing.T) {
	t.Parallel()

	parser := NewRecordParser(time.UTC)
	row := newRow("BEGIN-COOKIE-SIZES(total=3773) csrftoken: 64 END-COOKIE-SIZES")

	result := parser.Parse(1, row, NewPayloadSet())

	require.NotNil(t, result.Record)
	assert.Equal(t, 3773, result.Record.DeclaredTotalSize)
	assert.Equal(t, 9+64+1, result.Record.ComputedTotalSize)
}

func TestRecordParser_Parse_SkippedRows(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		raw              string
		time             string
		expectedOutcome  Outcome
		expectedCode     string
		expectedSeverity models.Severity
	}{
		{
			name:             "no marker",
			raw:              "GET /dashboard 200",
			expectedOutcome:  OutcomeNoMarker,
			expectedCode:     "PRS_1000",
			expectedSeverity: models.SeverityInfo,
		},
		{
			name:             "multiple markers",
			raw:              "BEGIN-COOKIE-SIZES(total=10) a: 1 END-COOKIE-SIZES BEGIN-COOKIE-SIZES(total=10) b: 1 END-COOKIE-SIZES",
			expectedOutcome:  OutcomeMultipleMarkers,
			expectedCode:     "PRS_1001",
			expectedSeverity: models.SeverityWarning,
		},
		{
			name:             "missing end marker",
			raw:              "BEGIN-COOKIE-SIZES(total=10) a: 1, b: 2",
			expectedOutcome:  OutcomeMalformedMarker,
			expectedCode:     "PRS_1002",
			expectedSeverity: models.SeverityWarning,
		},
		{
			name:             "non numeric total",
			raw:              "BEGIN-COOKIE-SIZES(total=abc) a: 1 END-COOKIE-SIZES",
			expectedOutcome:  OutcomeMalformedMarker,
			expectedCode:     "PRS_1002",
			expectedSeverity: models.SeverityWarning,
		},
		{
			name:             "unparseable timestamp",
			raw:              "BEGIN-COOKIE-SIZES(total=10) a: 1 END-COOKIE-SIZES",
			time:             "not a time",
			expectedOutcome:  OutcomeInvalidTimestamp,
			expectedCode:     "PRS_1003",
			expectedSeverity: models.SeverityWarning,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			row := newRow(tt.raw)
			if tt.time != "" {
				row.Time = tt.time
			}

			result := NewRecordParser(time.UTC).Parse(7, row, NewPayloadSet())

			assert.Nil(t, result.Record)
			assert.Equal(t, tt.expectedOutcome, result.Outcome)
			require.Len(t, result.Diagnostics, 1)
			assert.Equal(t, 7, result.Diagnostics[0].Row)
			assert.Equal(t, tt.expectedCode, result.Diagnostics[0].Code)
			assert.Equal(t, tt.expectedSeverity, result.Diagnostics[0].Severity)
		})
	}
}

func TestRecordParser_Parse_ZeroTotalIsSilent(t *testing.T) {
	t.Parallel()

	seen := NewPayloadSet()
	row := newRow("BEGIN-COOKIE-SIZES(total=0) csrftoken: 64, sessionid: 32 END-COOKIE-SIZES")

	result := NewRecordParser(time.UTC).Parse(1, row, seen)

	assert.Nil(t, result.Record)
	assert.Equal(t, OutcomeZeroTotal, result.Outcome)
	assert.Empty(t, result.Diagnostics)
	// The payload was not consumed, so a later non-zero row with it is still accepted.
	assert.True(t, seen.Add("csrftoken: 64, sessionid: 32"))
}

func TestRecordParser_Parse_DuplicatePayload(t *testing.T) {
	t.Parallel()

	parser := NewRecordParser(time.UTC)
	seen := NewPayloadSet()
	row := newRow("BEGIN-COOKIE-SIZES(total=30) a: 1, bb: 22 END-COOKIE-SIZES")

	first := parser.Parse(1, row, seen)
	require.Equal(t, OutcomeAccepted, first.Outcome)

	// Same payload, different surroundings and environment.
	dup := models.RawRow{
		Raw:         "other prefix BEGIN-COOKIE-SIZES(total=31)  a: 1, bb: 22  END-COOKIE-SIZES",
		Time:        sampleTime,
		Environment: "stage",
	}
	second := parser.Parse(2, dup, seen)

	assert.Nil(t, second.Record)
	assert.Equal(t, OutcomeDuplicatePayload, second.Outcome)
	require.Len(t, second.Diagnostics, 1)
	assert.Equal(t, "PRS_1005", second.Diagnostics[0].Code)
	assert.Equal(t, models.SeverityDebug, second.Diagnostics[0].Severity)
}

func TestRecordParser_Parse_InvalidFragmentsAreSkipped(t *testing.T) {
	t.Parallel()

	row := newRow("BEGIN-COOKIE-SIZES(total=100) csrftoken: 64, garbage, sessionid: abc, edxloggedin: 4 END-COOKIE-SIZES")

	result := NewRecordParser(time.UTC).Parse(3, row, NewPayloadSet())

	require.Equal(t, OutcomeAccepted, result.Outcome)
	require.NotNil(t, result.Record)
	assert.Equal(t, []models.CookieSize{{Name: "csrftoken", Size: 64}, {Name: "edxloggedin", Size: 4}}, result.Record.Cookies)
	assert.Equal(t, (9+64+3)+(11+4+3)-2, result.Record.ComputedTotalSize)

	require.Len(t, result.Diagnostics, 2)
	assert.Equal(t, "PRS_1004", result.Diagnostics[0].Code)
	assert.Equal(t, "garbage", result.Diagnostics[0].Content)
	assert.Equal(t, "sessionid: abc", result.Diagnostics[1].Content)
	assert.Equal(t, 3, result.Diagnostics[1].Row)
}

func TestRecordParser_Parse_RepeatedNameKeepsUniqueKeys(t *testing.T) {
	t.Parallel()

	row := newRow("BEGIN-COOKIE-SIZES(total=50) a: 1, b: 2, a: 5 END-COOKIE-SIZES")

	result := NewRecordParser(time.UTC).Parse(1, row, NewPayloadSet())

	require.NotNil(t, result.Record)
	assert.Equal(t, []models.CookieSize{{Name: "a", Size: 5}, {Name: "b", Size: 2}}, result.Record.Cookies)
	assert.Equal(t, 2, result.Record.CookieCount())
}

func TestRecordParser_Parse_NameMayContainColons(t *testing.T) {
	t.Parallel()

	row := newRow("BEGIN-COOKIE-SIZES(total=50) weird: name: 7 END-COOKIE-SIZES")

	result := NewRecordParser(time.UTC).Parse(1, row, NewPayloadSet())

	require.NotNil(t, result.Record)
	assert.Equal(t, []models.CookieSize{{Name: "weird: name", Size: 7}}, result.Record.Cookies)
}

func TestRecordParser_Parse_TimestampFormats(t *testing.T) {
	t.Parallel()

	expected := time.Date(2021, 9, 15, 17, 51, 13, 0, time.UTC)

	tests := []string{
		"2021-09-15T17:51:13Z",
		"2021-09-15T17:51:13+00:00",
		"2021-09-15 17:51:13",
		"2021-09-15T19:51:13+02:00",
	}

	for _, value := range tests {
		value := value
		t.Run(value, func(t *testing.T) {
			t.Parallel()

			row := models.RawRow{Raw: "BEGIN-COOKIE-SIZES(total=10) a: 1 END-COOKIE-SIZES", Time: value}
			result := NewRecordParser(time.UTC).Parse(1, row, NewPayloadSet())

			require.NotNil(t, result.Record)
			assert.True(t, expected.Equal(result.Record.Timestamp), "got %s", result.Record.Timestamp)
		})
	}
}

func TestPayloadSet_Add(t *testing.T) {
	t.Parallel()

	seen := NewPayloadSet()
	assert.True(t, seen.Add("a: 1"))
	assert.False(t, seen.Add("a: 1"))
	assert.True(t, seen.Add("a: 2"))
}
