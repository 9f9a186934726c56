package paginate

import (
	"slices"
	"strings"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Request carries the pagination, search and sort parameters of a list query.
type Request struct {
	Page          int    `form:"page" json:"page"`
	PageSize      int    `form:"pageSize" json:"pageSize"`
	Search        string `form:"search" json:"search"`
	SortBy        string `form:"sortBy" json:"sortBy"`
	SortDirection string `form:"sortDirection" json:"sortDirection"`
}

// Normalized returns a copy of the request with page and page size clamped
// to their valid ranges. Out-of-range values are corrected, never rejected.
func (r Request) Normalized() Request {
	if r.Page < 1 {
		r.Page = DefaultPage
	}
	if r.PageSize < 1 {
		r.PageSize = 1
	}
	if r.PageSize > MaxPageSize {
		r.PageSize = MaxPageSize
	}
	return r
}

// Offset returns the number of rows to skip for the requested page.
func (r Request) Offset() int {
	return (r.Page - 1) * r.PageSize
}

// Descending reports whether the sort direction is "desc" (case-insensitive).
// Any other value means ascending.
func (r Request) Descending() bool {
	return strings.EqualFold(strings.TrimSpace(r.SortDirection), "desc")
}

// Direction returns the SQL sort keyword for the request.
func (r Request) Direction() string {
	if r.Descending() {
		return "DESC"
	}
	return "ASC"
}

// Column resolves a client-supplied sort field against an allow-list of
// column names. Unknown fields fall back to the entry named by fallback,
// so the resulting order is always deterministic and never user-controlled
// beyond the allow-list.
func Column(sortBy string, allowed map[string]string, fallback string) string {
	if col, ok := allowed[strings.ToLower(strings.TrimSpace(sortBy))]; ok {
		return col
	}
	return allowed[fallback]
}

// Result is one page of items plus the metadata needed to render pagers.
type Result[T any] struct {
	Items           []T  `json:"items"`
	TotalCount      int  `json:"totalCount"`
	CurrentPage     int  `json:"currentPage"`
	PageSize        int  `json:"pageSize"`
	TotalPages      int  `json:"totalPages"`
	HasPreviousPage bool `json:"hasPreviousPage"`
	HasNextPage     bool `json:"hasNextPage"`
}

// StartIndex is the one-based position of the first item on this page, or 0
// when the page is empty.
func (r Result[T]) StartIndex() int {
	if len(r.Items) == 0 {
		return 0
	}
	return (r.CurrentPage-1)*r.PageSize + 1
}

// EndIndex is the one-based position of the last item on this page.
func (r Result[T]) EndIndex() int {
	if len(r.Items) == 0 {
		return 0
	}
	return r.StartIndex() + len(r.Items) - 1
}

// NewResult builds a Result from an already-sliced page. The request must be
// normalized; totalCount is the size of the filtered set before slicing.
func NewResult[T any](items []T, totalCount int, req Request) Result[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := (totalCount + req.PageSize - 1) / req.PageSize
	return Result[T]{
		Items:           items,
		TotalCount:      totalCount,
		CurrentPage:     req.Page,
		PageSize:        req.PageSize,
		TotalPages:      totalPages,
		HasPreviousPage: req.Page > 1,
		HasNextPage:     req.Page < totalPages,
	}
}

// Definition describes how one entity type is searched and sorted.
// SearchFields returns the values matched against the search term;
// Sorts maps lowercased sort field names to comparators.
type Definition[T any] struct {
	SearchFields func(T) []string
	Sorts        map[string]func(a, b T) int
	DefaultSort  string
}

// Paginate applies the search filter, allow-listed sort and page slice to an
// in-memory collection. The semantics match the SQL-backed list queries: the
// search term is a case-insensitive substring match against the entity's
// fixed field list, unknown sort fields fall back to the default, and the
// total count reflects the filtered set before slicing.
func Paginate[T any](items []T, req Request, def Definition[T]) Result[T] {
	req = req.Normalized()

	filtered := make([]T, 0, len(items))
	if term := strings.ToLower(strings.TrimSpace(req.Search)); term != "" {
		for _, it := range items {
			for _, field := range def.SearchFields(it) {
				if strings.Contains(strings.ToLower(field), term) {
					filtered = append(filtered, it)
					break
				}
			}
		}
	} else {
		filtered = append(filtered, items...)
	}

	cmp := def.Sorts[strings.ToLower(strings.TrimSpace(req.SortBy))]
	if cmp == nil {
		cmp = def.Sorts[def.DefaultSort]
	}
	if cmp != nil {
		if req.Descending() {
			asc := cmp
			cmp = func(a, b T) int { return -asc(a, b) }
		}
		slices.SortStableFunc(filtered, cmp)
	}

	total := len(filtered)
	start := req.Offset()
	if start > total {
		start = total
	}
	end := start + req.PageSize
	if end > total {
		end = total
	}

	return NewResult(filtered[start:end], total, req)
}
