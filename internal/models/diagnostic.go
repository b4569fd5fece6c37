package models

// Severity of a parse diagnostic.
type Severity string

const (
	SeverityDebug   Severity = "debug"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
)

// Diagnostic describes a row or fragment that was skipped while parsing.
// Nothing that produces a Diagnostic aborts the batch.
type Diagnostic struct {
	Row      int // 1-based data row index; 0 when not tied to a row
	Severity Severity
	Code     string
	Message  string
	Content  string // offending text, if any
}
