// Package listview derives the visible subset of a collection from a filter
// set, a free-text search term, a sort spec, and a page index. The same
// pipeline backs the inventory listing, the transfer history listing, and
// the export surface (which takes the filtered set before pagination).
package listview

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

type Direction string

const (
	Ascending  Direction = "ASC"
	Descending Direction = "DESC"
)

type Sort struct {
	Key       string
	Direction Direction
}

// Range bounds a date-typed field inclusively. A zero From or To leaves that
// side open.
type Range struct {
	From time.Time
	To   time.Time
}

type Query struct {
	// Filters apply as exact-match equality per field; empty values are no
	// constraint. All filters AND together.
	Filters map[string]string
	// Ranges constrain date-typed fields. A row whose date is missing never
	// satisfies a constrained range.
	Ranges map[string]Range
	// Search matches case-insensitively as a substring against each row's
	// searchable fields.
	Search string
	Sort   Sort
	Page   int
	Limit  int
}

// Value is a single comparable cell.
type Value struct {
	Text   string
	Date   *time.Time
	IsDate bool
	Num    int64
	IsNum  bool
}

func Text(s string) Value { return Value{Text: s} }

func Date(t *time.Time) Value { return Value{Date: t, IsDate: true} }

func Number(n int64) Value { return Value{Text: strconv.FormatInt(n, 10), Num: n, IsNum: true} }

// Row is one record of a listable collection.
type Row interface {
	// Field returns the cell for a filter/sort key. ok is false for keys the
	// row does not expose.
	Field(key string) (Value, bool)
	// SearchText returns the fields the free-text search may match.
	SearchText() []string
}

// Result is one materialized page plus the bookkeeping the pagination
// controls need. Total counts the filtered set before slicing.
type Result[T Row] struct {
	Rows       []T
	Total      int
	TotalPages int
	Page       int
	Limit      int
}

// Apply runs the whole pipeline: filter, search, sort, paginate.
func Apply[T Row](rows []T, q Query) Result[T] {
	filtered := Filter(rows, q)
	SortRows(filtered, q.Sort)
	return Paginate(filtered, q.Page, q.Limit)
}

// Filter returns the rows matching every filter, range, and the search term.
// The input slice is not modified.
func Filter[T Row](rows []T, q Query) []T {
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		if matches(row, q) {
			out = append(out, row)
		}
	}
	return out
}

func matches(row Row, q Query) bool {
	for key, want := range q.Filters {
		if want == "" {
			continue
		}
		v, ok := row.Field(key)
		if !ok || v.Text != want {
			return false
		}
	}
	for key, r := range q.Ranges {
		if r.From.IsZero() && r.To.IsZero() {
			continue
		}
		v, ok := row.Field(key)
		if !ok || !v.IsDate || v.Date == nil {
			return false
		}
		if !r.From.IsZero() && v.Date.Before(r.From) {
			return false
		}
		if !r.To.IsZero() && v.Date.After(r.To) {
			return false
		}
	}
	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		found := false
		for _, hay := range row.SearchText() {
			if strings.Contains(strings.ToLower(hay), needle) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// SortRows sorts in place by a single key. The sort is stable: rows with
// equal keys keep their relative order. Missing dates sort last regardless
// of direction.
func SortRows[T Row](rows []T, s Sort) {
	if s.Key == "" {
		return
	}
	desc := s.Direction == Descending
	sort.SliceStable(rows, func(i, j int) bool {
		a, aok := rows[i].Field(s.Key)
		b, bok := rows[j].Field(s.Key)
		if !aok || !bok {
			return false
		}
		if a.IsDate || b.IsDate {
			if a.Date == nil {
				return false
			}
			if b.Date == nil {
				return true
			}
			if desc {
				return a.Date.After(*b.Date)
			}
			return a.Date.Before(*b.Date)
		}
		if a.IsNum && b.IsNum {
			if desc {
				return a.Num > b.Num
			}
			return a.Num < b.Num
		}
		if desc {
			return a.Text > b.Text
		}
		return a.Text < b.Text
	})
}

// Paginate slices one page out of the (already filtered and sorted) set.
// Out-of-range pages clamp rather than error: page is never taken below 1
// or above the last non-empty page.
func Paginate[T Row](rows []T, page, limit int) Result[T] {
	if limit < 1 {
		limit = 1
	}
	total := len(rows)
	totalPages := (total + limit - 1) / limit

	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Result[T]{
		Rows:       rows[start:end],
		Total:      total,
		TotalPages: totalPages,
		Page:       page,
		Limit:      limit,
	}
}
