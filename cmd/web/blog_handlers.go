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

// BlogHandler renders the blog board. htmx requests from the filter bar and
// pagination receive the board fragment only.
func BlogHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	state := blog.StateFromQuery(r.URL.Query())
	fragment := mw.IsHTMX(r.Context()) && !mw.IsBoosted(r)

	var (
		view   handlersPkg.BlogView
		sorted []blog.Post
	)
	raw, err := posts.ListPosts(r.Context())
	if err != nil {
		logging.FromContext(r.Context()).Error("load blog posts", zap.Error(err), zap.String("page", "blog"))
		view = handlersPkg.BuildBlogFailure(i18nBundle, lang, state)
	} else {
		sorted = blog.SortByDate(raw)
		view = handlersPkg.BuildBlogView(i18nBundle, lang, sorted, state, cardOptions())
		if !fragment {
			view = view.WithCategories(i18nBundle, lang, sorted)
		}
	}

	vm := handlersPkg.PageData{
		Title: i18nBundle.T(lang, "blog.title"),
		Lang:  lang,
		Path:  r.URL.Path,
		Blog:  &view,
	}
	if fragment {
		w.Header().Set("HX-Push-Url", view.Href)
		renderTemplate(w, r, "frag_blog_board", vm)
		return
	}

	vm.Nav = nav.Build(r.URL.Path)
	vm.Breadcrumbs = nav.Breadcrumbs(r.URL.Path, categoryCrumb(lang, state))
	vm.Analytics = appConfig.Analytics

	brand := i18nBundle.T(lang, "site.name")
	vm.SEO = seo.NewMeta(brand, vm.Title, i18nBundle.T(lang, "blog.description"), appConfig.Site.BaseURL, view.Href)
	if state.Page > 1 {
		vm.SEO.Robots = "noindex, follow"
	}
	page := blog.BuildListing(sorted, state).Page
	vm.SEO.JSONLD = append(vm.SEO.JSONLD,
		seo.JSON(seo.Blog(brand, vm.SEO.Canonical, handlersPkg.Postings(appConfig.Site.BaseURL, page.Posts))),
		seo.JSON(seo.BreadcrumbList(breadcrumbItems(lang, vm.Breadcrumbs))),
	)

	renderPage(w, r, "blog", vm)
}

// LegacyBlogRedirect keeps links to the static blog.html working.
func LegacyBlogRedirect(w http.ResponseWriter, r *http.Request) {
	target := handlersPkg.BlogPath
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}
	http.Redirect(w, r, target, http.StatusMovedPermanently)
}

func cardOptions() handlersPkg.CardOptions {
	return handlersPkg.CardOptions{ExcerptLength: appConfig.Posts.ExcerptLength}
}

func categoryCrumb(lang string, state blog.ViewState) *nav.Crumb {
	c, ok := state.Filter.Category()
	if !ok {
		return nil
	}
	return &nav.Crumb{
		Href:  blog.DefaultState().WithFilter(state.Filter).Href(handlersPkg.BlogPath),
		Label: i18nBundle.T(lang, c.LabelKey()),
	}
}

func breadcrumbItems(lang string, crumbs []nav.Crumb) []seo.BreadcrumbItem {
	items := make([]seo.BreadcrumbItem, 0, len(crumbs))
	for _, c := range crumbs {
		name := c.Label
		if c.LabelKey != "" {
			name = i18nBundle.T(lang, c.LabelKey)
		}
		href := seo.AbsURL(appConfig.Site.BaseURL, c.Href)
		if href == "" {
			href = c.Href
		}
		items = append(items, seo.BreadcrumbItem{Name: name, Item: href})
	}
	return items
}
