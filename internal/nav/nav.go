package nav

import (
	"path"
	"strings"
)

// Item represents a top-level navigation item.
type Item struct {
	Path     string // e.g. "/blog"
	LabelKey string // i18n key, e.g. "nav.blog"
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
	Href     string
	LabelKey string
	Active   bool
}

// Crumb represents a breadcrumb entry. If LabelKey is empty, use Label.
type Crumb struct {
	Href     string
	LabelKey string
	Label    string
	Active   bool
}

// Main is the primary navigation definition.
var Main = []Item{
	{Path: "/", LabelKey: "nav.home"},
	{Path: "/blog", LabelKey: "nav.blog"},
}

// Build renders navigation items with active state given the current path.
func Build(currentPath string) []RenderedItem {
	if currentPath == "" {
		currentPath = "/"
	}
	items := make([]RenderedItem, 0, len(Main))
	for _, it := range Main {
		items = append(items, RenderedItem{
			Href:     it.Path,
			LabelKey: it.LabelKey,
			Active:   isActive(it.Path, currentPath),
		})
	}
	return items
}

func isActive(itemPath, currentPath string) bool {
	if itemPath == "/" {
		return currentPath == "/"
	}
	// exact or prefix boundary: "/blog" or "/blog/..."
	return currentPath == itemPath || strings.HasPrefix(currentPath, itemPath+"/")
}

// Breadcrumbs builds the trail for currentPath: Home, the top-level section
// and any deeper segments. A non-nil leaf is appended as the active entry,
// e.g. the selected blog category.
func Breadcrumbs(currentPath string, leaf *Crumb) []Crumb {
	if currentPath == "" {
		currentPath = "/"
	}
	crumbs := []Crumb{{Href: "/", LabelKey: "nav.home"}}

	clean := path.Clean("/" + strings.TrimPrefix(currentPath, "/"))
	if clean != "/" {
		parts := strings.Split(strings.TrimPrefix(clean, "/"), "/")
		href := ""
		for i, part := range parts {
			href += "/" + part
			c := Crumb{Href: href, Label: titleFromSegment(part)}
			if i == 0 {
				for _, it := range Main {
					if it.Path == href {
						c.LabelKey = it.LabelKey
						break
					}
				}
			}
			crumbs = append(crumbs, c)
		}
	}
	if leaf != nil {
		l := *leaf
		crumbs = append(crumbs, l)
	}
	crumbs[len(crumbs)-1].Active = true
	return crumbs
}

func titleFromSegment(seg string) string {
	if seg == "" {
		return seg
	}
	s := strings.NewReplacer("-", " ", "_", " ").Replace(seg)
	r := []rune(s)
	if r[0] >= 'a' && r[0] <= 'z' {
		r[0] -= 'a' - 'A'
	}
	return string(r)
}
