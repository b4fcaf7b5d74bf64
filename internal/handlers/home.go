package handlers

import "github.com/polyjj/jjubeuly/internal/blog"

// LatestView is the latest-posts widget on the landing page.
type LatestView struct {
	Cards    []Card
	Message  string
	MoreHref string
}

// BuildLatestView shows the limit most recent of the sorted posts.
func BuildLatestView(tr Translator, lang string, sorted []blog.Post, limit int, opts CardOptions) LatestView {
	v := LatestView{
		Cards:    BuildCards(tr, lang, blog.Latest(sorted, limit), opts),
		MoreHref: BlogPath,
	}
	if len(v.Cards) == 0 {
		v.Message = tr.T(lang, "blog.empty")
	}
	return v
}

// BuildLatestFailure replaces the widget with the load failure message.
func BuildLatestFailure(tr Translator, lang string) LatestView {
	return LatestView{Message: tr.T(lang, "blog.load_failed"), MoreHref: BlogPath}
}
