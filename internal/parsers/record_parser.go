package parsers

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"cookie-analytics/internal/models"

	"github.com/araddon/dateparse"
)

const (
	beginMarker       = "BEGIN-COOKIE-SIZES"
	fragmentSeparator = ", "
)

var (
	// BEGIN-COOKIE-SIZES(total=3773) user-info: 903, csrftoken: 64, ... END-COOKIE-SIZES
	cookieLogRegex = regexp.MustCompile(`BEGIN-COOKIE-SIZES\(total=(\d+)\)(.*)END-COOKIE-SIZES`)
	// csrftoken: 64
	cookieSizeRegex = regexp.MustCompile(`(.*): (\d+)`)
)

// Outcome tells what happened to a row.
type Outcome string

const (
	OutcomeAccepted         Outcome = "accepted"
	OutcomeNoMarker         Outcome = "no_marker"
	OutcomeMultipleMarkers  Outcome = "multiple_markers"
	OutcomeMalformedMarker  Outcome = "malformed_marker"
	OutcomeZeroTotal        Outcome = "zero_total"
	OutcomeInvalidTimestamp Outcome = "invalid_timestamp"
	OutcomeDuplicatePayload Outcome = "duplicate_payload"
)

// PayloadSet records cookie-list payloads already turned into records.
type PayloadSet interface {
	// Add inserts payload and reports whether it was not present before.
	Add(payload string) bool
}

// ParseResult is the result of parsing one row. Record is nil unless Outcome is OutcomeAccepted.
// Diagnostics may be present for accepted rows (skipped fragments).
type ParseResult struct {
	Record      *models.CookieHeaderRecord
	Outcome     Outcome
	Diagnostics []models.Diagnostic
}

//go:generate mockgen -source=record_parser.go -destination=./mocks/record_parser_mock.go -package=mocks
type RecordParser interface {
	// Parse turns one exported row into at most one record. It never fails:
	// every problem is reported as a diagnostic and the row or fragment is skipped.
	Parse(rowNumber int, row models.RawRow, seen PayloadSet) ParseResult
}

type recordParser struct {
	location *time.Location
}

// NewRecordParser returns a parser that reads zone-less timestamps in loc.
func NewRecordParser(loc *time.Location) RecordParser {
	if loc == nil {
		loc = time.UTC
	}
	return &recordParser{location: loc}
}

func (p *recordParser) Parse(rowNumber int, row models.RawRow, seen PayloadSet) ParseResult {
	switch strings.Count(row.Raw, beginMarker) {
	case 0:
		return skip(OutcomeNoMarker, diagNoMarker(rowNumber))
	case 1:
	default:
		// A row carrying several entries can't be split reliably.
		return skip(OutcomeMultipleMarkers, diagMultipleMarkers(rowNumber, row.Raw))
	}

	match := cookieLogRegex.FindStringSubmatch(row.Raw)
	if match == nil {
		return skip(OutcomeMalformedMarker, diagMalformedMarker(rowNumber, row.Raw))
	}
	declaredTotal, err := strconv.Atoi(match[1])
	if err != nil {
		return skip(OutcomeMalformedMarker, diagMalformedMarker(rowNumber, row.Raw))
	}
	if declaredTotal == 0 {
		return ParseResult{Outcome: OutcomeZeroTotal}
	}

	timestamp, err := dateparse.ParseIn(strings.TrimSpace(row.Time), p.location)
	if err != nil {
		return skip(OutcomeInvalidTimestamp, diagInvalidTimestamp(rowNumber, row.Time))
	}

	payload := strings.TrimSpace(match[2])
	if !seen.Add(payload) {
		return skip(OutcomeDuplicatePayload, diagDuplicatePayload(rowNumber, payload))
	}

	cookies, diagnostics := p.parseCookieSizes(rowNumber, payload)

	return ParseResult{
		Record: &models.CookieHeaderRecord{
			Timestamp:         timestamp,
			Environment:       row.Environment,
			DeclaredTotalSize: declaredTotal,
			ComputedTotalSize: models.ComputeHeaderSize(cookies),
			Cookies:           cookies,
		},
		Outcome:     OutcomeAccepted,
		Diagnostics: diagnostics,
	}
}

// parseCookieSizes splits the payload into "name: size" fragments. Bad
// fragments are reported and skipped. A repeated name keeps its first
// position and takes the later size.
func (p *recordParser) parseCookieSizes(rowNumber int, payload string) ([]models.CookieSize, []models.Diagnostic) {
	var (
		cookies     []models.CookieSize
		diagnostics []models.Diagnostic
	)
	positions := make(map[string]int)

	for _, fragment := range strings.Split(payload, fragmentSeparator) {
		match := cookieSizeRegex.FindStringSubmatch(fragment)
		if match == nil {
			diagnostics = append(diagnostics, diagInvalidFragment(rowNumber, fragment))
			continue
		}
		size, err := strconv.Atoi(match[2])
		if err != nil {
			diagnostics = append(diagnostics, diagInvalidFragment(rowNumber, fragment))
			continue
		}

		name := match[1]
		if i, exists := positions[name]; exists {
			cookies[i].Size = size
			continue
		}
		positions[name] = len(cookies)
		cookies = append(cookies, models.CookieSize{Name: name, Size: size})
	}

	return cookies, diagnostics
}

func skip(outcome Outcome, diagnostic models.Diagnostic) ParseResult {
	return ParseResult{Outcome: outcome, Diagnostics: []models.Diagnostic{diagnostic}}
}
