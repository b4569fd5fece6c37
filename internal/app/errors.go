package app

import (
	"fmt"

	"cookie-analytics/internal/shared/svcerrors"
)

// Run and report lookup errors
const (
	codeInputNotFound       = "APP_1000"
	codeInvalidInput        = "APP_1001"
	codeInvalidRunID        = "APP_1002"
	codeReportNotFound      = "APP_1003"
	codeReportAlreadyExists = "APP_1004"
	codeReportStoreDisabled = "APP_1005"

	codeInternalReportWriteFailed = "APP_9000"
	codeInternalReportStoreFailed = "APP_9001"
	codeInternalRunCancelled      = "APP_9002"
)

func errInputNotFound(path string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeInputNotFound, fmt.Sprintf("input file %q not found", path), cause)
}

// errInvalidInput is returned when the table cannot be read: bad framing, missing header or column.
func errInvalidInput(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidInput, "failed to read input table", cause)
}

func errInvalidRunID(runID string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidRunID, fmt.Sprintf("invalid run id %q", runID), nil)
}

func errReportNotFound(runID string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeReportNotFound, fmt.Sprintf("no report stored for run %s", runID), cause)
}

func errReportAlreadyExists(runID string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewResourceConflictError(codeReportAlreadyExists, fmt.Sprintf("report for run %s already stored", runID), cause)
}

func errReportStoreDisabled() *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeReportStoreDisabled, "report storage is disabled (set report.output_dir)", nil)
}

func errInternalReportWriteFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReportWriteFailed, fmt.Errorf("reportWriteFailed: %w", cause))
}

func errInternalReportStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReportStoreFailed, fmt.Errorf("reportStoreFailed: %w", cause))
}

func errInternalRunCancelled(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalRunCancelled, fmt.Errorf("runCancelled: %w", cause))
}
