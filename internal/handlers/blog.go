package handlers

import (
	"strconv"

	"github.com/polyjj/jjubeuly/internal/blog"
)

// BlogPath is the list page route.
const BlogPath = "/blog"

// BlogBoardTarget is the element swapped by filter and pagination requests.
const BlogBoardTarget = "#blog-board"

// BlogView is the view model of the blog board and its sidebar.
type BlogView struct {
	Filters    []FilterButton
	Cards      []Card
	Message    string // set instead of cards when nothing can be shown
	LoadFailed bool
	Pagination Pagination
	Categories []CategoryLink
	// Href is the canonical address of the rendered state.
	Href   string
	Target string
}

// FilterButton is one entry of the category filter bar.
type FilterButton struct {
	Key    string
	Label  string
	Href   string
	Active bool
}

// Pagination is the rendered pagination bar.
type Pagination struct {
	Visible bool
	Links   []PageLink
}

// PageLink is one pagination control.
type PageLink struct {
	Kind    string // prev, page or next
	Label   string
	Href    string
	Current bool
}

// CategoryLink is one sidebar category entry.
type CategoryLink struct {
	Category string
	Label    string
	Href     string
	Count    int
}

// BuildBlogView runs the board pipeline for state over sorted posts.
func BuildBlogView(tr Translator, lang string, sorted []blog.Post, state blog.ViewState, opts CardOptions) BlogView {
	listing := blog.BuildListing(sorted, state)
	v := BlogView{
		Filters:    buildFilters(tr, lang, listing.State.Filter),
		Cards:      BuildCards(tr, lang, listing.Page.Posts, opts),
		Pagination: buildPagination(tr, lang, listing),
		Href:       listing.State.Href(BlogPath),
		Target:     BlogBoardTarget,
	}
	if listing.Page.Empty() {
		v.Message = tr.T(lang, "blog.empty")
	}
	return v
}

// BuildBlogFailure renders the board when the posts could not be loaded: the
// filter bar stays, the list becomes a single message and pagination is hidden.
func BuildBlogFailure(tr Translator, lang string, state blog.ViewState) BlogView {
	return BlogView{
		Filters:    buildFilters(tr, lang, state.Filter),
		Message:    tr.T(lang, "blog.load_failed"),
		LoadFailed: true,
		Href:       state.Href(BlogPath),
		Target:     BlogBoardTarget,
	}
}

// WithCategories attaches the sidebar category counts of all posts.
func (v BlogView) WithCategories(tr Translator, lang string, posts []blog.Post) BlogView {
	counts := blog.CountByCategory(posts)
	v.Categories = make([]CategoryLink, 0, len(counts))
	for _, c := range counts {
		v.Categories = append(v.Categories, CategoryLink{
			Category: string(c.Category),
			Label:    tr.T(lang, c.Category.LabelKey()),
			Href:     blog.DefaultState().WithFilter(blog.FilterKey(c.Category)).Href(BlogPath),
			Count:    c.Count,
		})
	}
	return v
}

func buildFilters(tr Translator, lang string, active blog.FilterKey) []FilterButton {
	if _, ok := active.Category(); !ok {
		active = blog.FilterAll
	}
	out := make([]FilterButton, 0, len(blog.Categories)+1)
	out = append(out, FilterButton{
		Key:    string(blog.FilterAll),
		Label:  tr.T(lang, "blog.filter_all"),
		Href:   BlogPath,
		Active: active == blog.FilterAll,
	})
	for _, c := range blog.Categories {
		key := blog.FilterKey(c)
		out = append(out, FilterButton{
			Key:    string(c),
			Label:  tr.T(lang, c.LabelKey()),
			Href:   blog.DefaultState().WithFilter(key).Href(BlogPath),
			Active: active == key,
		})
	}
	return out
}

func buildPagination(tr Translator, lang string, l blog.Listing) Pagination {
	controls := l.Page.Controls()
	if len(controls) == 0 {
		return Pagination{}
	}
	p := Pagination{Visible: true, Links: make([]PageLink, 0, len(controls))}
	for _, c := range controls {
		link := PageLink{
			Kind:    string(c.Kind),
			Href:    l.State.WithPage(c.Target).Href(BlogPath),
			Current: c.Current,
		}
		switch c.Kind {
		case blog.ControlPrev:
			link.Label = tr.T(lang, "blog.prev")
		case blog.ControlNext:
			link.Label = tr.T(lang, "blog.next")
		default:
			link.Label = strconv.Itoa(c.Target)
		}
		p.Links = append(p.Links, link)
	}
	return p
}
