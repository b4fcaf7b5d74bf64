package main

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/polyjj/jjubeuly/internal/blog"
	handlersPkg "github.com/polyjj/jjubeuly/internal/handlers"
	"github.com/polyjj/jjubeuly/internal/logging"
	mw "github.com/polyjj/jjubeuly/internal/middleware"
	"github.com/polyjj/jjubeuly/internal/nav"
	"github.com/polyjj/jjubeuly/internal/seo"
)

// HomeHandler renders the landing page with the latest-posts widget.
func HomeHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)

	var latest handlersPkg.LatestView
	raw, err := posts.ListPosts(r.Context())
	if err != nil {
		logging.FromContext(r.Context()).Error("load blog posts", zap.Error(err), zap.String("page", "home"))
		latest = handlersPkg.BuildLatestFailure(i18nBundle, lang)
	} else {
		latest = handlersPkg.BuildLatestView(i18nBundle, lang, blog.SortByDate(raw), appConfig.Posts.LatestLimit, cardOptions())
	}

	brand := i18nBundle.T(lang, "site.name")
	vm := handlersPkg.PageData{
		Title:     i18nBundle.T(lang, "home.title"),
		Lang:      lang,
		Path:      r.URL.Path,
		Nav:       nav.Build(r.URL.Path),
		Analytics: appConfig.Analytics,
		Home:      &latest,
	}
	vm.SEO = seo.NewMeta(brand, vm.Title, i18nBundle.T(lang, "site.description"), appConfig.Site.BaseURL, "/")
	vm.SEO.JSONLD = append(vm.SEO.JSONLD, seo.JSON(seo.WebSite(brand, vm.SEO.Canonical, vm.SEO.Description)))

	renderPage(w, r, "home", vm)
}
