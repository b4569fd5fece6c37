package loggers

const (
	FieldApp       = "app"
	FieldComponent = "component"
	FieldRunID     = "run_id"

	FieldDuration   = "duration"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldRow        = "row"
	FieldContent    = "content"
	FieldCookieName = "cookie_name"
	FieldDiagnostic = "diagnostic_code"
	FieldOutcomes   = "outcomes"
)
