package handlers

import (
	"html/template"

	"github.com/polyjj/jjubeuly/internal/blog"
	"github.com/polyjj/jjubeuly/internal/format"
	"github.com/polyjj/jjubeuly/internal/seo"
)

// Card is the rendered summary of one post.
type Card struct {
	Title         string
	Link          string
	Image         string
	Category      string
	CategoryLabel string
	CategoryHref  string
	Date          string
	DateTime      string // machine-readable, empty when the date is unknown
	Tags          string
	Excerpt       template.HTML
	Delay         string
}

// CardOptions tunes card rendering.
type CardOptions struct {
	// ExcerptLength truncates excerpts to plain text of that many runes when > 0.
	ExcerptLength int
}

// BuildCards renders posts in order. Entry animation delays follow the
// position on the page.
func BuildCards(tr Translator, lang string, posts []blog.Post, opts CardOptions) []Card {
	cards := make([]Card, 0, len(posts))
	for i, p := range posts {
		cards = append(cards, buildCard(tr, lang, p, i, opts))
	}
	return cards
}

func buildCard(tr Translator, lang string, p blog.Post, index int, opts CardOptions) Card {
	published, ok := p.PublishedAt()
	c := Card{
		Title:         p.Title,
		Link:          p.Link,
		Image:         p.Image,
		Category:      string(p.Category),
		CategoryLabel: p.CategoryLabel,
		CategoryHref:  blog.DefaultState().WithFilter(blog.FilterKey(p.Category)).Href(BlogPath),
		Date:          format.PostDate(published),
		Tags:          format.Tags(p.Tags),
		Excerpt:       format.Excerpt(p.Excerpt, opts.ExcerptLength),
		Delay:         format.AnimationDelay(index),
	}
	if ok {
		c.DateTime = published.Format("2006-01-02")
	}
	if c.CategoryLabel == "" && p.Category.Known() {
		c.CategoryLabel = tr.T(lang, p.Category.LabelKey())
	}
	return c
}

// Postings maps posts to structured-data entries with absolute URLs.
func Postings(baseURL string, posts []blog.Post) []seo.Posting {
	out := make([]seo.Posting, 0, len(posts))
	for _, p := range posts {
		ps := seo.Posting{
			Headline: p.Title,
			URL:      absOrRaw(baseURL, p.Link),
			Image:    absOrRaw(baseURL, p.Image),
			Keywords: p.Tags,
			Section:  p.CategoryLabel,
		}
		if t, ok := p.PublishedAt(); ok {
			ps.DatePublished = t.Format("2006-01-02")
		}
		out = append(out, ps)
	}
	return out
}

func absOrRaw(baseURL, p string) string {
	if p == "" {
		return ""
	}
	if abs := seo.AbsURL(baseURL, p); abs != "" {
		return abs
	}
	return p
}
