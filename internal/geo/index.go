// Package geo provides a simple, deterministic, concurrency-safe in-memory
// index over the static Ukrainian settlements dataset (geonames extract).
// It is intentionally small:
//
//   - No logging in the library (callers decide how/what to log)
//   - Clear, documented types and functional options (Option pattern)
//   - Unicode- and case-insensitive matching across Latin, Ukrainian, and
//     Russian settlement names plus their alternate spellings
//   - Immutable, read-only index after construction (safe for concurrent use)
//   - Deterministic result order (dataset order, i.e. population-sorted in
//     the shipped file)
//
// Matching is normalized substring containment: a settlement matches when the
// folded query appears anywhere in one of its folded names.
package geo

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"
)

// Settlement is one row of the dataset, as shipped in ua.settlements.json.
type Settlement struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	NameUk      string   `json:"nameUk,omitempty"`
	NameRu      string   `json:"nameRu,omitempty"`
	Admin1      string   `json:"admin1,omitempty"`
	Admin2      string   `json:"admin2,omitempty"`
	Lat         float64  `json:"lat"`
	Lon         float64  `json:"lon"`
	Population  int      `json:"population"`
	FeatureCode string   `json:"featureCode"`
	Timezone    string   `json:"timezone,omitempty"`
	Alt         []string `json:"alt,omitempty"`
}

// Index is the minimal interface implemented by the settlement index.
type Index interface {
	// Search returns up to limit settlements whose names contain the query.
	Search(query string, limit int) []Settlement
}

// ----------------------------------------------------------------------------
// Options

type Option func(*config)

type config struct {
	defaultLimit int
	maxLimit     int
}

func defaultConfig() config {
	return config{
		defaultLimit: 20,
		maxLimit:     100,
	}
}

// WithDefaultLimit sets the result count used when Search is called with a
// non-positive limit.
func WithDefaultLimit(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.defaultLimit = n
		}
	}
}

// WithMaxLimit caps the result count regardless of what the caller asks for.
func WithMaxLimit(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxLimit = n
		}
	}
}

// ----------------------------------------------------------------------------
// Implementation

type entry struct {
	s     Settlement
	names []string // folded name, nameUk, nameRu, and alternates
}

type index struct {
	cfg     config
	entries []entry
}

// NewIndexFromFile builds an Index by reading the JSON dataset at path.
// A missing file yields an empty index and the error, so callers can choose
// to boot without geo search.
func NewIndexFromFile(path string, opts ...Option) (Index, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return &index{cfg: defaultConfig()}, err
	}
	return NewIndexFromReader(bytes.NewReader(b), opts...)
}

// NewIndexFromReader builds an Index from a JSON array of settlements.
func NewIndexFromReader(r io.Reader, opts ...Option) (Index, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	var rows []Settlement
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return &index{cfg: cfg}, err
	}
	return buildIndex(rows, cfg), nil
}

// NewIndexFromSettlements builds an Index directly from rows (tests, seeds).
func NewIndexFromSettlements(rows []Settlement, opts ...Option) Index {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return buildIndex(rows, cfg)
}

func buildIndex(rows []Settlement, cfg config) *index {
	entries := make([]entry, 0, len(rows))
	for _, s := range rows {
		names := make([]string, 0, 3+len(s.Alt))
		for _, n := range []string{s.Name, s.NameUk, s.NameRu} {
			if n = Normalize(n); n != "" {
				names = append(names, n)
			}
		}
		for _, a := range s.Alt {
			if a = Normalize(a); a != "" {
				names = append(names, a)
			}
		}
		if len(names) == 0 {
			continue
		}
		entries = append(entries, entry{s: s, names: names})
	}
	return &index{cfg: cfg, entries: entries}
}

// Search scans the dataset in order and collects settlements whose normalized
// names contain the normalized query, stopping at the limit. An empty or
// whitespace-only query returns nil.
func (i *index) Search(query string, limit int) []Settlement {
	q := Normalize(query)
	if q == "" {
		return nil
	}
	if limit <= 0 {
		limit = i.cfg.defaultLimit
	}
	if limit > i.cfg.maxLimit {
		limit = i.cfg.maxLimit
	}

	out := make([]Settlement, 0, limit)
	for _, e := range i.entries {
		if matches(e.names, q) {
			out = append(out, e.s)
			if len(out) >= limit {
				break
			}
		}
	}
	return out
}

func matches(names []string, q string) bool {
	for _, n := range names {
		if strings.Contains(n, q) {
			return true
		}
	}
	return false
}
