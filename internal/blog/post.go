// Package blog holds the post model and the pure listing pipeline behind the
// blog board: sort by date, filter by category, paginate and count.
package blog

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Post is one blog entry as stored in the posts JSON document.
type Post struct {
	Title         string   `json:"title"`
	Link          string   `json:"link"`
	Image         string   `json:"image"`
	Category      Category `json:"category"`
	CategoryLabel string   `json:"categoryLabel"`
	Date          string   `json:"date"`
	Tags          []string `json:"tags"`
	Excerpt       string   `json:"excerpt"`
}

// PublishedAt returns the calendar date of the post. Missing or unparsable
// dates yield the zero time, which orders before every valid date.
func (p Post) PublishedAt() (time.Time, bool) {
	return ParseDate(p.Date)
}

// ParseDate parses a post date leniently; dates without a zone are read as
// UTC. The zero time and false are returned when raw is empty or cannot be
// parsed.
func ParseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	t, err := dateparse.ParseIn(raw, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
