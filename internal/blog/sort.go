package blog

import (
	"sort"
	"time"
)

// SortByDate returns a copy of posts ordered by publication date, most recent
// first. Posts sharing a date keep their input order; posts without a valid
// date sort last.
func SortByDate(posts []Post) []Post {
	type keyed struct {
		post Post
		at   time.Time
	}
	items := make([]keyed, len(posts))
	for i, p := range posts {
		at, _ := p.PublishedAt()
		items[i] = keyed{post: p, at: at}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].at.After(items[j].at)
	})
	out := make([]Post, len(items))
	for i, it := range items {
		out[i] = it.post
	}
	return out
}

// Latest returns up to limit of the most recent posts. A non-positive limit
// returns every post.
func Latest(posts []Post, limit int) []Post {
	sorted := SortByDate(posts)
	if limit <= 0 || limit >= len(sorted) {
		return sorted
	}
	return sorted[:limit]
}
