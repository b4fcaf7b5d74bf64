package handlers

import (
	"github.com/polyjj/jjubeuly/internal/config"
	"github.com/polyjj/jjubeuly/internal/nav"
	"github.com/polyjj/jjubeuly/internal/seo"
)

// PageData is a generic view model for pages using the shared layout.
type PageData struct {
	Title     string
	Lang      string
	SEO       seo.Meta
	Analytics config.AnalyticsConfig

	Path        string
	Nav         []nav.RenderedItem
	Breadcrumbs []nav.Crumb

	// Optional per-page view model payloads
	Home *LatestView
	Blog *BlogView
}

// Translator resolves i18n keys for a language.
type Translator interface {
	T(lang, key string) string
}
