package parsers

import (
	"cookie-analytics/internal/models"
)

const (
	codeNoMarker         = "PRS_1000"
	codeMultipleMarkers  = "PRS_1001"
	codeMalformedMarker  = "PRS_1002"
	codeInvalidTimestamp = "PRS_1003"
	codeInvalidFragment  = "PRS_1004"
	codeDuplicatePayload = "PRS_1005"
)

func diagNoMarker(row int) models.Diagnostic {
	return models.Diagnostic{
		Row:      row,
		Severity: models.SeverityInfo,
		Code:     codeNoMarker,
		Message:  "no " + beginMarker + " delimiter found, skipping row",
	}
}

func diagMultipleMarkers(row int, raw string) models.Diagnostic {
	return models.Diagnostic{
		Row:      row,
		Severity: models.SeverityWarning,
		Code:     codeMultipleMarkers,
		Message:  "multiple cookie entries found in same row, skipping row",
		Content:  raw,
	}
}

func diagMalformedMarker(row int, raw string) models.Diagnostic {
	return models.Diagnostic{
		Row:      row,
		Severity: models.SeverityWarning,
		Code:     codeMalformedMarker,
		Message:  "cookie size markers are malformed, skipping row",
		Content:  raw,
	}
}

func diagInvalidTimestamp(row int, value string) models.Diagnostic {
	return models.Diagnostic{
		Row:      row,
		Severity: models.SeverityWarning,
		Code:     codeInvalidTimestamp,
		Message:  "could not parse timestamp, skipping row",
		Content:  value,
	}
}

func diagInvalidFragment(row int, fragment string) models.Diagnostic {
	return models.Diagnostic{
		Row:      row,
		Severity: models.SeverityWarning,
		Code:     codeInvalidFragment,
		Message:  "could not parse cookie size",
		Content:  fragment,
	}
}

func diagDuplicatePayload(row int, payload string) models.Diagnostic {
	return models.Diagnostic{
		Row:      row,
		Severity: models.SeverityDebug,
		Code:     codeDuplicatePayload,
		Message:  "skipping already processed cookies",
		Content:  payload,
	}
}
