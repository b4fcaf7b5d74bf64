package blog

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	// QueryCategory is the query parameter carrying the active filter.
	QueryCategory = "category"
	// QueryPage is the query parameter carrying the 1-based page number.
	QueryPage = "page"
)

// ViewState is the user-controlled state of the board: the active filter and
// the current page.
type ViewState struct {
	Filter FilterKey
	Page   int
}

// DefaultState shows every post from the first page.
func DefaultState() ViewState {
	return ViewState{Filter: FilterAll, Page: 1}
}

// StateFromQuery derives the view state from the request query. Unknown
// categories fall back to FilterAll; missing or invalid pages to 1.
func StateFromQuery(q url.Values) ViewState {
	s := DefaultState()
	s.Filter = ParseFilter(q.Get(QueryCategory))
	if raw := strings.TrimSpace(q.Get(QueryPage)); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			s.Page = n
		}
	}
	return s
}

// WithFilter switches the active filter and resets to the first page.
func (s ViewState) WithFilter(key FilterKey) ViewState {
	return ViewState{Filter: key, Page: 1}
}

// WithPage moves to page n under the current filter.
func (s ViewState) WithPage(n int) ViewState {
	if n < 1 {
		n = 1
	}
	s.Page = n
	return s
}

// Query encodes the state as URL query values, omitting defaults.
func (s ViewState) Query() url.Values {
	q := url.Values{}
	if s.Filter != "" && s.Filter != FilterAll {
		q.Set(QueryCategory, string(s.Filter))
	}
	if s.Page > 1 {
		q.Set(QueryPage, strconv.Itoa(s.Page))
	}
	return q
}

// Href returns base with the state encoded in its query string.
func (s ViewState) Href(base string) string {
	if enc := s.Query().Encode(); enc != "" {
		return base + "?" + enc
	}
	return base
}
