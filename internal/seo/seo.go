package seo

import "strings"

type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	URL         string
	SiteName    string
}

type Twitter struct {
	Card  string
	Image string
}

// Meta is the head metadata of a rendered page.
type Meta struct {
	Title       string
	Description string
	Canonical   string
	Robots      string
	OG          OpenGraph
	Twitter     Twitter
	JSONLD      []string
}

// NewMeta fills the Open Graph and Twitter cards from the page title and
// description. Canonical is baseURL joined with pathAndQuery, or empty when
// no base URL is configured.
func NewMeta(siteName, title, description, baseURL, pathAndQuery string) Meta {
	full := title
	if siteName != "" && title != siteName {
		full = title + " | " + siteName
	}
	m := Meta{
		Title:       full,
		Description: description,
		Canonical:   AbsURL(baseURL, pathAndQuery),
		OG: OpenGraph{
			Title:       full,
			Description: description,
			Type:        "website",
			SiteName:    siteName,
		},
		Twitter: Twitter{Card: "summary_large_image"},
	}
	m.OG.URL = m.Canonical
	return m
}

// AbsURL joins a base URL and a path. An empty base yields an empty string.
func AbsURL(baseURL, p string) string {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return ""
	}
	if strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
		return p
	}
	return baseURL + "/" + strings.TrimLeft(p, "/")
}
