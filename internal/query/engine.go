// Package query implements the shared filter/sort/paginate engine behind the
// inventory, order and task listings. One generic pipeline, parameterized by a
// per-domain Descriptor, replaces what would otherwise be three drifting
// copies of the same algorithm.
package query

import (
	"math"
	"sort"
	"strings"
)

// SortDir is the sort direction of a listing request.
type SortDir string

const (
	Asc  SortDir = "asc"
	Desc SortDir = "desc"
)

// DefaultPageSize is the fixed page size used by every listing screen.
const DefaultPageSize = 10

// Request is a normalized listing request. Page and PageSize are >= 1 by the
// time they reach the engine; Search is matched case-insensitively as a
// substring; Seq is an opaque client token echoed back untouched so callers
// can discard responses superseded by a newer request.
type Request struct {
	Page     int
	PageSize int
	Search   string
	SortBy   string
	SortDir  SortDir
	Seq      int64
}

// Result is one page of a listing.
type Result[T any] struct {
	Items []T   `json:"items"`
	Total int   `json:"total"`
	Pages int   `json:"pages"`
	Seq   int64 `json:"seq,omitempty"`
}

// Filter is one categorical equality filter. The sentinel value "all" (or an
// empty value) disables it; active filters are ANDed together.
type Filter[T any] struct {
	Value string
	Field func(T) string
}

// Sentinel value that keeps a categorical filter inactive.
const All = "all"

func (f Filter[T]) active() bool { return f.Value != "" && f.Value != All }

// Descriptor wires a domain into the engine: which fields free-text search
// scans, and a comparator per sortable field. Sort fields form a closed
// enumeration; the HTTP layer rejects anything outside it at bind time, so an
// unknown SortBy here simply leaves the snapshot order untouched.
type Descriptor[T any] struct {
	Search []func(T) string
	Sort   map[string]func(a, b T) int
}

// Run filters, sorts and paginates records. Pure: the input slice is never
// mutated and no I/O happens. A page past the end yields an empty slice, not
// an error; pages is max(1, ceil(total/pageSize)).
func Run[T any](records []T, req Request, filters []Filter[T], d Descriptor[T]) Result[T] {
	matched := make([]T, 0, len(records))

	search := strings.ToLower(strings.TrimSpace(req.Search))
next:
	for _, rec := range records {
		if search != "" && !matchesSearch(rec, search, d.Search) {
			continue
		}
		for _, f := range filters {
			if f.active() && f.Field(rec) != f.Value {
				continue next
			}
		}
		matched = append(matched, rec)
	}

	if cmp, ok := d.Sort[req.SortBy]; ok {
		sort.SliceStable(matched, func(i, j int) bool {
			if req.SortDir == Desc {
				return cmp(matched[i], matched[j]) > 0
			}
			return cmp(matched[i], matched[j]) < 0
		})
	}

	total := len(matched)
	pages := int(math.Ceil(float64(total) / float64(req.PageSize)))
	if pages < 1 {
		pages = 1
	}

	start := (req.Page - 1) * req.PageSize
	if start > total {
		start = total
	}
	end := start + req.PageSize
	if end > total {
		end = total
	}

	return Result[T]{Items: matched[start:end], Total: total, Pages: pages, Seq: req.Seq}
}

func matchesSearch[T any](rec T, search string, fields []func(T) string) bool {
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field(rec)), search) {
			return true
		}
	}
	return false
}
