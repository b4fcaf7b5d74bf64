package seo

import (
	"encoding/json"
)

// JSON marshals v to a compact JSON string. It returns an empty string on error.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// WebSite returns a minimal WebSite schema.
func WebSite(name, url, description string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if description != "" {
		m["description"] = description
	}
	return m
}

// BreadcrumbItem maps name and absolute item URL.
type BreadcrumbItem struct {
	Name string
	Item string
}

// BreadcrumbList builds schema.org BreadcrumbList.
func BreadcrumbList(items []BreadcrumbItem) map[string]any {
	el := make([]map[string]any, 0, len(items))
	for i, it := range items {
		el = append(el, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     it.Name,
			"item":     it.Item,
		})
	}
	return map[string]any{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": el,
	}
}

// Posting is the subset of a blog post exposed as structured data.
type Posting struct {
	Headline      string
	URL           string
	Image         string
	DatePublished string // YYYY-MM-DD, omitted when empty
	Keywords      []string
	Section       string
}

// BlogPosting returns a BlogPosting schema without @context, for nesting.
func BlogPosting(p Posting) map[string]any {
	m := map[string]any{
		"@type":    "BlogPosting",
		"headline": p.Headline,
	}
	if p.URL != "" {
		m["url"] = p.URL
	}
	if p.Image != "" {
		m["image"] = p.Image
	}
	if p.DatePublished != "" {
		m["datePublished"] = p.DatePublished
	}
	if len(p.Keywords) > 0 {
		m["keywords"] = p.Keywords
	}
	if p.Section != "" {
		m["articleSection"] = p.Section
	}
	return m
}

// Blog returns a Blog schema listing the given posts.
func Blog(name, url string, posts []Posting) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Blog",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if len(posts) > 0 {
		list := make([]map[string]any, 0, len(posts))
		for _, p := range posts {
			list = append(list, BlogPosting(p))
		}
		m["blogPost"] = list
	}
	return m
}
