package aggregators

import (
	"context"

	"cookie-analytics/internal/models"
	"cookie-analytics/internal/normalizers"
	"cookie-analytics/internal/shared/loggers"
)

// CookieAggregator folds cookie header records into per canonical name statistics.
type CookieAggregator interface {
	Aggregate(ctx context.Context, records []*models.CookieHeaderRecord) *models.CookieStatSet
}

type cookieAggregator struct {
	normalizer normalizers.CookieNameNormalizer
}

func NewCookieAggregator(normalizer normalizers.CookieNameNormalizer) CookieAggregator {
	return &cookieAggregator{normalizer: normalizer}
}

// Aggregate visits records in order. Ties on first-seen time go to the earlier record.
func (a *cookieAggregator) Aggregate(ctx context.Context, records []*models.CookieHeaderRecord) *models.CookieStatSet {
	logger := loggers.Ctx(ctx)
	logger.Debug().Msgf("started aggregating %d cookie header records", len(records))

	stats := models.NewCookieStatSet()
	for _, record := range records {
		for _, cookie := range record.Cookies {
			name := a.normalizer.Normalize(cookie.Name)
			if name != cookie.Name {
				logger.Trace().
					Str(loggers.FieldCookieName, cookie.Name).
					Msgf("normalized to %s", name)
			}

			stat, exists := stats.Get(name)
			if !exists {
				stat = newStat(cookie, record)
				stats.Put(name, stat)
				continue
			}
			observe(stat, cookie, record)
		}
		metricRecordsAggregatedTotal.Inc()
	}

	metricCookieNames.Set(float64(stats.Len()))
	return stats
}

// newStat seeds every bound from the first occurrence of a canonical name.
func newStat(cookie models.CookieSize, record *models.CookieHeaderRecord) *models.NormalizedCookieStat {
	fullSize := models.CookieFullSize(cookie.Name, cookie.Size)
	cookieCount := record.CookieCount()

	return &models.NormalizedCookieStat{
		Count:          1,
		MinSize:        cookie.Size,
		MaxSize:        cookie.Size,
		MinFullSize:    fullSize,
		MaxFullSize:    fullSize,
		FirstSeen:      record.Timestamp,
		Envs:           map[string]struct{}{record.Environment: {}},
		MinCookieCount: cookieCount,
		MaxCookieCount: cookieCount,
		MinHeaderSize:  record.DeclaredTotalSize,
		MaxHeaderSize:  record.DeclaredTotalSize,
	}
}

// observe widens stat with one more occurrence. Full size is computed from
// the raw name of this occurrence, not the canonical one.
func observe(stat *models.NormalizedCookieStat, cookie models.CookieSize, record *models.CookieHeaderRecord) {
	fullSize := models.CookieFullSize(cookie.Name, cookie.Size)
	cookieCount := record.CookieCount()

	stat.Count++
	stat.MinSize = min(stat.MinSize, cookie.Size)
	stat.MaxSize = max(stat.MaxSize, cookie.Size)
	stat.MinFullSize = min(stat.MinFullSize, fullSize)
	stat.MaxFullSize = max(stat.MaxFullSize, fullSize)
	if record.Timestamp.Before(stat.FirstSeen) {
		stat.FirstSeen = record.Timestamp
	}
	stat.Envs[record.Environment] = struct{}{}
	stat.MinCookieCount = min(stat.MinCookieCount, cookieCount)
	stat.MaxCookieCount = max(stat.MaxCookieCount, cookieCount)
	stat.MinHeaderSize = min(stat.MinHeaderSize, record.DeclaredTotalSize)
	stat.MaxHeaderSize = max(stat.MaxHeaderSize, record.DeclaredTotalSize)
}
