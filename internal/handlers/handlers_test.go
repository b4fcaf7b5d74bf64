package handlers

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/polyjj/jjubeuly/internal/blog"
)

// echo translates every key to itself.
type echo struct{}

func (echo) T(_, key string) string { return key }

func posts(n int, cat blog.Category) []blog.Post {
	out := make([]blog.Post, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, blog.Post{
			Title:    fmt.Sprintf("%s-%02d", cat, i+1),
			Link:     fmt.Sprintf("/posts/%s-%02d.html", cat, i+1),
			Category: cat,
			Date:     fmt.Sprintf("2024-01-%02d", 28-i),
		})
	}
	return out
}

func TestBuildBlogViewSinglePage(t *testing.T) {
	t.Parallel()

	all := append(posts(3, blog.CategoryDesign), posts(5, blog.CategoryHobby)...)
	sorted := blog.SortByDate(all)
	v := BuildBlogView(echo{}, "ko", sorted, blog.ViewState{Filter: "design", Page: 1}, CardOptions{})

	require.Len(t, v.Cards, 3)
	require.False(t, v.Pagination.Visible)
	require.Empty(t, v.Pagination.Links)
	require.Empty(t, v.Message)
	require.Equal(t, "/blog?category=design", v.Href)

	var active []string
	for _, f := range v.Filters {
		if f.Active {
			active = append(active, f.Key)
		}
	}
	require.Equal(t, []string{"design"}, active)
	require.Len(t, v.Filters, len(blog.Categories)+1)
	require.Equal(t, "/blog", v.Filters[0].Href)

	require.Equal(t, []string{"0.1s", "0.2s", "0.3s"}, []string{v.Cards[0].Delay, v.Cards[1].Delay, v.Cards[2].Delay})
}

func TestBuildBlogViewSecondPage(t *testing.T) {
	t.Parallel()

	sorted := blog.SortByDate(posts(14, blog.CategoryPlanning))
	v := BuildBlogView(echo{}, "ko", sorted, blog.ViewState{Filter: "planning", Page: 2}, CardOptions{})

	require.Len(t, v.Cards, 6)
	require.Equal(t, "planning-07", v.Cards[0].Title)
	require.Equal(t, "planning-12", v.Cards[5].Title)

	require.True(t, v.Pagination.Visible)
	kinds := make([]string, 0, len(v.Pagination.Links))
	for _, l := range v.Pagination.Links {
		kinds = append(kinds, l.Kind)
	}
	require.Equal(t, []string{"prev", "page", "page", "page", "next"}, kinds)
	require.Equal(t, "/blog?category=planning", v.Pagination.Links[0].Href)
	require.Equal(t, "blog.prev", v.Pagination.Links[0].Label)
	require.True(t, v.Pagination.Links[2].Current)
	require.Equal(t, "2", v.Pagination.Links[2].Label)
	require.Equal(t, "/blog?category=planning&page=3", v.Pagination.Links[4].Href)
}

func TestBuildBlogViewEmpty(t *testing.T) {
	t.Parallel()

	v := BuildBlogView(echo{}, "ko", nil, blog.DefaultState(), CardOptions{})
	require.Empty(t, v.Cards)
	require.Equal(t, "blog.empty", v.Message)
	require.False(t, v.Pagination.Visible)
	require.True(t, v.Filters[0].Active)
}

func TestBuildBlogFailure(t *testing.T) {
	t.Parallel()

	v := BuildBlogFailure(echo{}, "ko", blog.ViewState{Filter: "hobby", Page: 3})
	require.True(t, v.LoadFailed)
	require.Equal(t, "blog.load_failed", v.Message)
	require.Empty(t, v.Cards)
	require.False(t, v.Pagination.Visible)
	require.Equal(t, "/blog?category=hobby&page=3", v.Href)
}

func TestWithCategories(t *testing.T) {
	t.Parallel()

	all := append(posts(2, blog.CategoryDesign), posts(1, blog.CategoryHobby)...)
	all = append(all, blog.Post{Title: "uncategorised"})
	v := BlogView{}.WithCategories(echo{}, "ko", all)

	require.Len(t, v.Categories, len(blog.Categories))
	sum := 0
	for _, c := range v.Categories {
		sum += c.Count
		require.Equal(t, "category."+c.Category, c.Label)
		require.Equal(t, "/blog?category="+c.Category, c.Href)
	}
	require.Equal(t, 3, sum)
	require.Equal(t, 2, v.Categories[1].Count)
}

func TestBuildCards(t *testing.T) {
	t.Parallel()

	cards := BuildCards(echo{}, "ko", []blog.Post{
		{
			Title:         "Hello",
			Category:      blog.CategoryDesign,
			CategoryLabel: "디자인",
			Date:          "2024-03-09",
			Tags:          []string{"figma", "ux"},
			Excerpt:       "**bold** text",
		},
		{Title: "No label", Category: blog.CategoryHobby, Date: "someday"},
	}, CardOptions{})

	require.Equal(t, "디자인", cards[0].CategoryLabel)
	require.Equal(t, "/blog?category=design", cards[0].CategoryHref)
	require.Equal(t, "2024. 03. 09", cards[0].Date)
	require.Equal(t, "2024-03-09", cards[0].DateTime)
	require.Equal(t, "figma, ux", cards[0].Tags)
	require.Contains(t, string(cards[0].Excerpt), "<strong>bold</strong>")

	require.Equal(t, "category.hobby", cards[1].CategoryLabel)
	require.Empty(t, cards[1].Date)
	require.Empty(t, cards[1].DateTime)
	require.Equal(t, "0.2s", cards[1].Delay)
}

func TestBuildLatestView(t *testing.T) {
	t.Parallel()

	sorted := blog.SortByDate(posts(8, blog.CategoryDailyLife))
	v := BuildLatestView(echo{}, "ko", sorted, 6, CardOptions{})
	require.Len(t, v.Cards, 6)
	require.Equal(t, "daily-life-01", v.Cards[0].Title)
	require.Empty(t, v.Message)
	require.Equal(t, "/blog", v.MoreHref)

	require.Equal(t, "blog.empty", BuildLatestView(echo{}, "ko", nil, 6, CardOptions{}).Message)
	require.Equal(t, "blog.load_failed", BuildLatestFailure(echo{}, "ko").Message)
}

func TestPostings(t *testing.T) {
	t.Parallel()

	got := Postings("https://example.com", []blog.Post{
		{Title: "A", Link: "posts/a.html", Date: "2024-05-01", Tags: []string{"x"}},
		{Title: "B", Link: "https://other.example/b"},
	})
	require.Equal(t, "https://example.com/posts/a.html", got[0].URL)
	require.Equal(t, "2024-05-01", got[0].DatePublished)
	require.Empty(t, got[0].Image)
	require.Equal(t, "https://other.example/b", got[1].URL)
	require.Empty(t, got[1].DatePublished)

	require.Equal(t, "posts/a.html", Postings("", []blog.Post{{Link: "posts/a.html"}})[0].URL)
}
