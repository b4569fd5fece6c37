package models

import "time"

// CookieSize is one cookie's value size within a header, as reported by the log line.
type CookieSize struct {
	Name string
	Size int
}

// CookieHeaderRecord is one distinct observed cookie header.
//
// DeclaredTotalSize is what the log line itself reported; ComputedTotalSize is
// derived from Cookies. The two may differ (log lines are truncated) and are
// never reconciled.
//
// Cookies keeps the order in which names first appeared in the payload; names are unique.
type CookieHeaderRecord struct {
	Timestamp         time.Time
	Environment       string
	DeclaredTotalSize int
	ComputedTotalSize int
	Cookies           []CookieSize
}

// CookieCount is the number of distinct cookies in the whole header.
func (r *CookieHeaderRecord) CookieCount() int {
	return len(r.Cookies)
}

// ComputeHeaderSize returns the serialized size of a Cookie header holding
// cookies: each cookie costs name + value + len("=; "), and the last one has
// no trailing "; ". Never negative.
func ComputeHeaderSize(cookies []CookieSize) int {
	total := 0
	for _, c := range cookies {
		total += len(c.Name) + c.Size + 3
	}
	return max(0, total-2)
}

// CookieFullSize is the footprint of a single cookie in the header: name + value + "=" and one separator byte.
func CookieFullSize(name string, size int) int {
	return len(name) + size + 2
}
