package blog

// CategoryCount is the number of posts filed under one category.
type CategoryCount struct {
	Category Category
	Count    int
}

// CountByCategory tallies posts per known category in display order. Posts
// with an unknown or missing category are not counted.
func CountByCategory(posts []Post) []CategoryCount {
	tally := make(map[Category]int, len(Categories))
	for _, p := range posts {
		tally[p.Category]++
	}
	out := make([]CategoryCount, 0, len(Categories))
	for _, c := range Categories {
		out = append(out, CategoryCount{Category: c, Count: tally[c]})
	}
	return out
}
