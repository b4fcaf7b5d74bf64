package blog

// PostsPerPage is the fixed size of a board page.
const PostsPerPage = 6

// Page is a window into a filtered post list.
type Page struct {
	Posts      []Post
	Number     int // 1-based
	Size       int
	TotalPages int
	Total      int
}

// Paginate slices posts into the 1-based page number of the given size.
// Numbers below 1 are clamped to 1; pages past the end are empty.
func Paginate(posts []Post, number, size int) Page {
	if size <= 0 {
		size = PostsPerPage
	}
	if number < 1 {
		number = 1
	}
	total := len(posts)
	pg := Page{
		Number:     number,
		Size:       size,
		Total:      total,
		TotalPages: (total + size - 1) / size,
		Posts:      []Post{},
	}
	start := (number - 1) * size
	if start >= total {
		return pg
	}
	end := start + size
	if end > total {
		end = total
	}
	pg.Posts = posts[start:end]
	return pg
}

// Empty reports whether the page has nothing to show.
func (p Page) Empty() bool { return len(p.Posts) == 0 }

// ShowControls reports whether pagination controls should be rendered at all.
func (p Page) ShowControls() bool { return p.TotalPages > 1 }

// HasPrev reports whether a "previous" control applies.
func (p Page) HasPrev() bool { return p.Number > 1 }

// HasNext reports whether a "next" control applies.
func (p Page) HasNext() bool { return p.Number < p.TotalPages }

// ControlKind distinguishes pagination controls.
type ControlKind string

const (
	ControlPrev ControlKind = "prev"
	ControlPage ControlKind = "page"
	ControlNext ControlKind = "next"
)

// Control is one entry of the pagination bar.
type Control struct {
	Kind    ControlKind
	Target  int // page number the control leads to
	Current bool
}

// Controls lists the pagination bar: previous when not on the first page,
// every page number without truncation, next when not on the last page.
// It is empty when the controls are hidden.
func (p Page) Controls() []Control {
	if !p.ShowControls() {
		return nil
	}
	out := make([]Control, 0, p.TotalPages+2)
	if p.HasPrev() {
		out = append(out, Control{Kind: ControlPrev, Target: p.Number - 1})
	}
	for i := 1; i <= p.TotalPages; i++ {
		out = append(out, Control{Kind: ControlPage, Target: i, Current: i == p.Number})
	}
	if p.HasNext() {
		out = append(out, Control{Kind: ControlNext, Target: p.Number + 1})
	}
	return out
}
