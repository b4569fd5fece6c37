package models

import (
	"sort"
	"time"
)

// NormalizedCookieStat accumulates statistics for one canonical cookie name
// across every header it appeared in. Bounds only ever widen once seeded.
type NormalizedCookieStat struct {
	Count int

	MinSize int
	MaxSize int

	MinFullSize int
	MaxFullSize int

	FirstSeen time.Time
	Envs      map[string]struct{}

	MinCookieCount int
	MaxCookieCount int

	MinHeaderSize int
	MaxHeaderSize int
}

// SortedEnvs returns the distinct environments in lexical order.
func (s *NormalizedCookieStat) SortedEnvs() []string {
	envs := make([]string, 0, len(s.Envs))
	for env := range s.Envs {
		envs = append(envs, env)
	}
	sort.Strings(envs)
	return envs
}

// NamedCookieStat pairs a canonical name with its statistics.
type NamedCookieStat struct {
	Name string
	Stat *NormalizedCookieStat
}

// CookieStatSet maps canonical cookie names to their statistics and remembers
// the order in which names were first inserted.
type CookieStatSet struct {
	order  []string
	byName map[string]*NormalizedCookieStat
}

func NewCookieStatSet() *CookieStatSet {
	return &CookieStatSet{byName: make(map[string]*NormalizedCookieStat)}
}

// Get returns the stat for name, if any.
func (s *CookieStatSet) Get(name string) (*NormalizedCookieStat, bool) {
	stat, ok := s.byName[name]
	return stat, ok
}

// Put stores stat under name. A new name is appended to the insertion order.
func (s *CookieStatSet) Put(name string, stat *NormalizedCookieStat) {
	if _, exists := s.byName[name]; !exists {
		s.order = append(s.order, name)
	}
	s.byName[name] = stat
}

func (s *CookieStatSet) Len() int {
	return len(s.order)
}

// All returns every entry in insertion order.
func (s *CookieStatSet) All() []NamedCookieStat {
	all := make([]NamedCookieStat, 0, len(s.order))
	for _, name := range s.order {
		all = append(all, NamedCookieStat{Name: name, Stat: s.byName[name]})
	}
	return all
}
