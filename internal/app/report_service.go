package app

import (
	"bytes"
	"context"
	"errors"
	"io"

	"cookie-analytics/internal/aggregators"
	"cookie-analytics/internal/loaders"
	"cookie-analytics/internal/models"
	"cookie-analytics/internal/parsers"
	"cookie-analytics/internal/reporters"
	"cookie-analytics/internal/shared/loggers"
	"cookie-analytics/internal/shared/ulid"
)

// RunSummary describes one completed run.
type RunSummary struct {
	RunID           string
	RowsRead        int
	RecordsAccepted int
	Outcomes        map[parsers.Outcome]int
	Diagnostics     int
	CookieNames     int
	ReportKey       string // empty when report storage is disabled
}

// ReportService runs the cookie size pipeline and serves stored reports.
type ReportService interface {
	// Generate reads the exported table from input and writes the report to out.
	Generate(ctx context.Context, runID string, input io.Reader, out io.Writer) (*RunSummary, error)
	// Show writes the stored report of a previous run to out.
	Show(ctx context.Context, runID string, out io.Writer) error
	// ListRuns returns the run IDs with a stored report, oldest first.
	ListRuns(ctx context.Context) ([]string, error)
}

type reportService struct {
	rowReader   loaders.RowReader
	batchLoader loaders.BatchLoader
	aggregator  aggregators.CookieAggregator
	reporter    reporters.CookieReporter
	reportStore reporters.ReportStore
}

// NewReportService wires the pipeline stages. reportStore may be nil, which
// disables persistence and Show.
func NewReportService(
	rowReader loaders.RowReader,
	batchLoader loaders.BatchLoader,
	aggregator aggregators.CookieAggregator,
	reporter reporters.CookieReporter,
	reportStore reporters.ReportStore,
) ReportService {
	return &reportService{
		rowReader:   rowReader,
		batchLoader: batchLoader,
		aggregator:  aggregator,
		reporter:    reporter,
		reportStore: reportStore,
	}
}

func (s *reportService) Generate(ctx context.Context, runID string, input io.Reader, out io.Writer) (*RunSummary, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().Msg("started generating cookie size report")

	rows, err := s.rowReader.ReadRows(input)
	if err != nil {
		return nil, errInvalidInput(err)
	}

	loaded, err := s.batchLoader.Load(ctx, rows)
	if err != nil {
		return nil, errInternalRunCancelled(err)
	}
	logDiagnostics(ctx, loaded.Diagnostics)

	stats := s.aggregator.Aggregate(ctx, loaded.Records)

	var report bytes.Buffer
	if _, err := s.reporter.Write(&report, stats); err != nil {
		return nil, errInternalReportWriteFailed(err)
	}

	summary := &RunSummary{
		RunID:           runID,
		RowsRead:        loaded.RowsRead,
		RecordsAccepted: len(loaded.Records),
		Outcomes:        loaded.Outcomes,
		Diagnostics:     len(loaded.Diagnostics),
		CookieNames:     stats.Len(),
	}

	if s.reportStore != nil {
		key, err := s.reportStore.Put(ctx, runID, report.Bytes())
		if err != nil {
			if errors.Is(err, reporters.ErrReportAlreadyExists) {
				return nil, errReportAlreadyExists(runID, err)
			}
			return nil, errInternalReportStoreFailed(err)
		}
		summary.ReportKey = key
	}

	if _, err := out.Write(report.Bytes()); err != nil {
		return nil, errInternalReportWriteFailed(err)
	}

	return summary, nil
}

func (s *reportService) Show(ctx context.Context, runID string, out io.Writer) error {
	if !ulid.IsValid(runID) {
		return errInvalidRunID(runID)
	}
	if s.reportStore == nil {
		return errReportStoreDisabled()
	}

	report, err := s.reportStore.Get(ctx, runID)
	if err != nil {
		if errors.Is(err, reporters.ErrReportNotFound) {
			return errReportNotFound(runID, err)
		}
		return errInternalReportStoreFailed(err)
	}

	if _, err := out.Write(report); err != nil {
		return errInternalReportWriteFailed(err)
	}
	return nil
}

func (s *reportService) ListRuns(ctx context.Context) ([]string, error) {
	if s.reportStore == nil {
		return nil, errReportStoreDisabled()
	}

	runIDs, err := s.reportStore.List(ctx)
	if err != nil {
		return nil, errInternalReportStoreFailed(err)
	}
	return runIDs, nil
}

// logDiagnostics emits each diagnostic at the level matching its severity.
func logDiagnostics(ctx context.Context, diagnostics []models.Diagnostic) {
	logger := loggers.Ctx(ctx)
	for _, d := range diagnostics {
		event := logger.Warn()
		switch d.Severity {
		case models.SeverityDebug:
			event = logger.Debug()
		case models.SeverityInfo:
			event = logger.Info()
		}

		event.
			Int(loggers.FieldRow, d.Row).
			Str(loggers.FieldDiagnostic, d.Code).
			Str(loggers.FieldContent, d.Content).
			Msg(d.Message)
	}
}
