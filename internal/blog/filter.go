package blog

import "strings"

// FilterKey selects which posts are visible: a category identifier or FilterAll.
type FilterKey string

// FilterAll is the sentinel key that disables category filtering.
const FilterAll FilterKey = "all"

// ParseFilter maps the category query parameter to the active filter. Only
// known categories activate a filter; anything else yields FilterAll.
func ParseFilter(raw string) FilterKey {
	if c, ok := ParseCategory(strings.TrimSpace(raw)); ok {
		return FilterKey(c)
	}
	return FilterAll
}

// Category returns the category selected by k, if any.
func (k FilterKey) Category() (Category, bool) {
	if k == FilterAll {
		return "", false
	}
	return ParseCategory(string(k))
}

// Filter narrows posts to the ones whose category equals key. FilterAll
// returns posts unchanged and a key outside the known categories returns an
// empty result.
func Filter(posts []Post, key FilterKey) []Post {
	if key == FilterAll {
		return posts
	}
	c, ok := ParseCategory(string(key))
	if !ok {
		return []Post{}
	}
	out := make([]Post, 0, len(posts))
	for _, p := range posts {
		if p.Category == c {
			out = append(out, p)
		}
	}
	return out
}
