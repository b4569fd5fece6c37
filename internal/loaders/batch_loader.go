package loaders

import (
	"context"

	"cookie-analytics/internal/models"
	"cookie-analytics/internal/parsers"
	"cookie-analytics/internal/shared/loggers"
)

// LoadResult is everything a batch produced: accepted records in input order,
// per-outcome row counts, and the diagnostics raised along the way.
type LoadResult struct {
	Records     []*models.CookieHeaderRecord
	Outcomes    map[parsers.Outcome]int
	Diagnostics []models.Diagnostic
	RowsRead    int
}

// BatchLoader turns a batch of raw rows into cookie header records.
type BatchLoader interface {
	Load(ctx context.Context, rows []models.RawRow) (*LoadResult, error)
}

type batchLoader struct {
	recordParser parsers.RecordParser
}

func NewBatchLoader(recordParser parsers.RecordParser) BatchLoader {
	return &batchLoader{recordParser: recordParser}
}

// Load parses every row with one payload set shared across the batch, so an
// exact repeat of an earlier payload is dropped wherever it appears. Malformed
// rows never fail the batch; only cancellation does.
func (l *batchLoader) Load(ctx context.Context, rows []models.RawRow) (*LoadResult, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().Msgf("started loading batch of %d rows", len(rows))

	seen := parsers.NewPayloadSet()
	result := &LoadResult{
		Records:  make([]*models.CookieHeaderRecord, 0, len(rows)),
		Outcomes: make(map[parsers.Outcome]int),
	}

	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		parsed := l.recordParser.Parse(i+1, row, seen)
		result.RowsRead++
		result.Outcomes[parsed.Outcome]++
		result.Diagnostics = append(result.Diagnostics, parsed.Diagnostics...)
		metricRowsProcessedTotal.WithLabelValues(string(parsed.Outcome)).Inc()
		for _, d := range parsed.Diagnostics {
			metricDiagnosticsTotal.WithLabelValues(d.Code).Inc()
		}

		if parsed.Record != nil {
			result.Records = append(result.Records, parsed.Record)
		}
	}

	return result, nil
}
