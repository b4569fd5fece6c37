package reporters

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"cookie-analytics/internal/models"
)

const reportHeader = "name,max_full_size,min_full_size,max_size,min_size,first_seen,count," +
	"max_cookie_count,min_cookie_count,max_header_size,min_header_size,envs"

const (
	firstSeenLayout         = "2006-01-02 15:04:05-07:00"
	firstSeenLayoutFraction = "2006-01-02 15:04:05.000000-07:00"
)

// CookieReporter renders aggregated cookie statistics as delimited text.
type CookieReporter interface {
	Write(w io.Writer, stats *models.CookieStatSet) (int, error)
}

type cookieReporter struct{}

func NewCookieReporter() CookieReporter {
	return &cookieReporter{}
}

// Write emits the header line and one line per cookie, largest max_full_size
// first. Equal sizes keep the set's insertion order. Returns the number of
// data rows written.
func (r *cookieReporter) Write(w io.Writer, stats *models.CookieStatSet) (int, error) {
	entries := stats.All()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Stat.MaxFullSize > entries[j].Stat.MaxFullSize
	})

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, reportHeader); err != nil {
		return 0, err
	}
	for _, entry := range entries {
		if _, err := fmt.Fprintln(bw, formatRow(entry)); err != nil {
			return 0, err
		}
	}
	if err := bw.Flush(); err != nil {
		return 0, err
	}

	metricReportRowsWrittenTotal.Add(float64(len(entries)))
	return len(entries), nil
}

func formatRow(entry models.NamedCookieStat) string {
	s := entry.Stat
	return fmt.Sprintf("%s,%d,%d,%d,%d,%s,%d,%d,%d,%d,%d,\"%s\"",
		entry.Name,
		s.MaxFullSize, s.MinFullSize,
		s.MaxSize, s.MinSize,
		formatFirstSeen(s.FirstSeen), s.Count,
		s.MaxCookieCount, s.MinCookieCount,
		s.MaxHeaderSize, s.MinHeaderSize,
		strings.Join(s.SortedEnvs(), ","),
	)
}

// formatFirstSeen prints microseconds only when present, e.g.
// "2021-09-15 17:51:13+00:00" or "2021-09-15 17:51:13.250000+00:00".
// The offset is always printed: timestamps exported without a zone are
// parsed as UTC and show "+00:00".
func formatFirstSeen(t time.Time) string {
	if t.Nanosecond()/int(time.Microsecond) != 0 {
		return t.Format(firstSeenLayoutFraction)
	}
	return t.Format(firstSeenLayout)
}
