package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"time"

	"cookie-analytics/internal/aggregators"
	"cookie-analytics/internal/loaders"
	"cookie-analytics/internal/normalizers"
	"cookie-analytics/internal/parsers"
	"cookie-analytics/internal/reporters"
	"cookie-analytics/internal/shared/configs"
	"cookie-analytics/internal/shared/filestorages"
	"cookie-analytics/internal/shared/loggers"
	"cookie-analytics/internal/shared/metrics"
	"cookie-analytics/internal/shared/svcerrors"
	"cookie-analytics/internal/shared/ulid"
)

// App holds all application dependencies for one invocation.
type App struct {
	config        *configs.Config
	appLogger     loggers.Logger
	reportService ReportService
}

// New creates and initializes a new App instance. Logs are written to logWriter.
func New(config *configs.Config, logWriter io.Writer) (*App, error) {
	appLogger, err := loggers.NewWithWriter(logWriter, config.Log.Level, config.Log.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "cookie-analytics").
		Logger()

	// Rules from the rules file are evaluated before the built-in table
	rules := normalizers.DefaultRules()
	if config.Normalizer.RulesFile != "" {
		userRules, err := normalizers.LoadRules(config.Normalizer.RulesFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load normalizer rules: %w", err)
		}
		rules = append(userRules, rules...)
	}
	normalizer := normalizers.NewCookieNameNormalizer(rules)

	// Initialize pipeline
	rowReader := loaders.NewCSVRowReader(loaders.Columns{
		Raw:         config.Input.RawColumn,
		Time:        config.Input.TimeColumn,
		Environment: config.Input.EnvColumn,
	})
	batchLoader := loaders.NewBatchLoader(parsers.NewRecordParser(time.UTC))
	aggregator := aggregators.NewCookieAggregator(normalizer)
	reporter := reporters.NewCookieReporter()

	// Initialize report store
	var reportStore reporters.ReportStore
	if config.Report.OutputDir != "" {
		fileStorage, err := filestorages.NewFileStorage(config.Report.OutputDir)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize storage: %w", err)
		}
		reportStore = reporters.NewReportStore(fileStorage)
	}

	return &App{
		config:        config,
		appLogger:     appLogger,
		reportService: NewReportService(rowReader, batchLoader, aggregator, reporter, reportStore),
	}, nil
}

// Run generates the report for the table at inputPath and writes it to out.
func (app *App) Run(ctx context.Context, inputPath string, out io.Writer) (*RunSummary, error) {
	runID := ulid.NewULID()
	runLogger := app.appLogger.With().
		Str(loggers.FieldComponent, "run").
		Str(loggers.FieldRunID, runID).
		Logger()
	ctx = runLogger.WithContext(ctx)

	runLogger.Info().
		Msgf("starting cookie size report (input=%s, log_level=%s, report_output_dir=%s)",
			inputPath,
			app.config.Log.Level,
			app.config.Report.OutputDir)

	start := time.Now()
	summary, err := app.generate(ctx, runID, inputPath, out)
	elapsed := time.Since(start)

	errorCode := metrics.ValueNoError
	if err != nil {
		svcErr := app.logError(ctx, err)
		errorCode = svcErr.Code
		err = svcErr
	}
	metricRunsTotal.WithLabelValues(errorCode).Inc()
	metricRunDuration.WithLabelValues(errorCode).Observe(elapsed.Seconds())

	if summary != nil {
		event := runLogger.Info().
			Int("rows_read", summary.RowsRead).
			Int("records_accepted", summary.RecordsAccepted).
			Int("diagnostics", summary.Diagnostics).
			Int("cookie_names", summary.CookieNames).
			Int64(loggers.FieldDuration, elapsed.Milliseconds()).
			Interface(loggers.FieldOutcomes, summary.Outcomes)
		if summary.ReportKey != "" {
			event = event.Str("report_key", summary.ReportKey)
		}
		event.Msg("run completed")
	}

	app.pushMetrics(ctx)
	return summary, err
}

func (app *App) generate(ctx context.Context, runID, inputPath string, out io.Writer) (summary *RunSummary, err error) {
	defer func() {
		if p := recover(); p != nil {
			loggers.Ctx(ctx).Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msgf("run panic recovered: %v", p)

			panicErr, ok := p.(error)
			if !ok {
				panicErr = fmt.Errorf("%v", p)
			}
			summary, err = nil, svcerrors.NewInternalErrorPanic(panicErr)
		}
	}()

	input, err := os.Open(inputPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errInputNotFound(inputPath, err)
		}
		return nil, errInvalidInput(err)
	}
	defer input.Close()

	return app.reportService.Generate(ctx, runID, input, out)
}

// Show writes the stored report of runID to out.
func (app *App) Show(ctx context.Context, runID string, out io.Writer) error {
	ctx = app.appLogger.With().
		Str(loggers.FieldComponent, "show").
		Logger().WithContext(ctx)
	if err := app.reportService.Show(ctx, runID, out); err != nil {
		return app.logError(ctx, err)
	}
	return nil
}

// ListRuns writes the IDs of runs with a stored report to out, one per line.
func (app *App) ListRuns(ctx context.Context, out io.Writer) error {
	ctx = app.appLogger.With().
		Str(loggers.FieldComponent, "runs").
		Logger().WithContext(ctx)
	runIDs, err := app.reportService.ListRuns(ctx)
	if err != nil {
		return app.logError(ctx, err)
	}
	for _, runID := range runIDs {
		if _, err := fmt.Fprintln(out, runID); err != nil {
			return app.logError(ctx, errInternalReportWriteFailed(err))
		}
	}
	return nil
}

// logError converts err to a ServiceError, logging internal errors at error level.
func (app *App) logError(ctx context.Context, err error) *svcerrors.ServiceError {
	svcErr, ok := svcerrors.AsServiceError(err)
	if !ok {
		svcErr = svcerrors.NewInternalErrorUndefined(err)
	}

	if svcErr.IsInternalError() {
		loggers.Ctx(ctx).Error().
			Err(svcErr.Cause).
			Str(loggers.FieldErrorCode, svcErr.Code).
			Msg("internal error in run")
	}
	return svcErr
}

// pushMetrics hands the run's metrics to the Pushgateway. Failures are logged only.
func (app *App) pushMetrics(ctx context.Context) {
	if app.config.Metrics.PushgatewayURL == "" {
		return
	}

	pushCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := metrics.Push(pushCtx, app.config.Metrics.PushgatewayURL, app.config.Metrics.Job); err != nil {
		loggers.Ctx(ctx).Warn().
			Err(err).
			Msg("failed to push metrics")
	}
}
