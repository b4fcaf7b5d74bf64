package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/polyjj/jjubeuly/internal/i18n"
)

const langCookieName = "hl"

// Locale resolves the preferred language from the `hl` query parameter, the
// `hl` cookie, then Accept-Language, and stores it in the request context. A
// supported `hl` query value is persisted in the cookie.
func Locale(bundle *i18n.Bundle) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithLocaleFallback(r.Context(), bundle.Fallback())
			lang := ""
			if q := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("hl"))); q != "" && bundle.IsSupported(q) {
				lang = q
				http.SetCookie(w, &http.Cookie{
					Name:     langCookieName,
					Value:    q,
					Path:     "/",
					SameSite: http.SameSiteLaxMode,
					Expires:  time.Now().Add(365 * 24 * time.Hour),
				})
			} else if c, err := r.Cookie(langCookieName); err == nil && bundle.IsSupported(c.Value) {
				lang = strings.ToLower(c.Value)
			} else {
				lang = bundle.Resolve(r.Header.Get("Accept-Language"))
			}
			w.Header().Add("Vary", "Accept-Language")
			w.Header().Set("Content-Language", lang)
			next.ServeHTTP(w, r.WithContext(WithLang(ctx, lang)))
		})
	}
}

// Lang returns the language resolved for r, then the bundle fallback, else "ko".
func Lang(r *http.Request) string {
	ctx := r.Context()
	if v, ok := ctx.Value(ctxKeyLang).(string); ok && v != "" {
		return v
	}
	if fb, ok := ctx.Value(ctxKeyLocaleFB).(string); ok && fb != "" {
		return fb
	}
	return "ko"
}
