package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	chiMid "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/polyjj/jjubeuly/internal/i18n"
	"github.com/polyjj/jjubeuly/internal/logging"
)

func loadBundle(t *testing.T) *i18n.Bundle {
	t.Helper()
	b, err := i18n.Load("../../locales", "ko", []string{"ko", "en"})
	require.NoError(t, err)
	return b
}

func TestHTMXMarksRequests(t *testing.T) {
	t.Parallel()

	var seen, boosted bool
	h := HTMX(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = IsHTMX(r.Context())
		boosted = IsBoosted(r)
	}))

	req := httptest.NewRequest(http.MethodGet, "/blog", nil)
	req.Header.Set("HX-Request", "true")
	req.Header.Set("HX-Boosted", "true")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.True(t, seen)
	require.True(t, boosted)
	require.Contains(t, rec.Header().Values("Vary"), "HX-Request")

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/blog", nil))
	require.False(t, seen)
	require.False(t, boosted)
}

func TestLocaleResolution(t *testing.T) {
	t.Parallel()

	h := Locale(loadBundle(t))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, Lang(r))
	}))

	cases := []struct {
		name   string
		target string
		accept string
		cookie string
		want   string
	}{
		{name: "fallback", target: "/", want: "ko"},
		{name: "accept-language", target: "/", accept: "en-US,en;q=0.9", want: "en"},
		{name: "unsupported accept-language", target: "/", accept: "fr-FR", want: "ko"},
		{name: "cookie beats header", target: "/", accept: "en", cookie: "ko", want: "ko"},
		{name: "query beats cookie", target: "/?hl=en", cookie: "ko", want: "en"},
		{name: "unsupported query ignored", target: "/?hl=xx", accept: "en", want: "en"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, tc.target, nil)
		if tc.accept != "" {
			req.Header.Set("Accept-Language", tc.accept)
		}
		if tc.cookie != "" {
			req.AddCookie(&http.Cookie{Name: langCookieName, Value: tc.cookie})
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, tc.want, rec.Body.String(), tc.name)
		require.Equal(t, tc.want, rec.Header().Get("Content-Language"), tc.name)
	}
}

func TestLocaleQueryPersistsCookie(t *testing.T) {
	t.Parallel()

	h := Locale(loadBundle(t))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/blog?hl=en", nil))

	var found bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == langCookieName {
			found = true
			require.Equal(t, "en", c.Value)
		}
	}
	require.True(t, found)
}

func TestLangWithoutMiddleware(t *testing.T) {
	t.Parallel()

	require.Equal(t, "ko", Lang(httptest.NewRequest(http.MethodGet, "/", nil)))
}

func TestLoggerEmitsRequestEntry(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	var ctxLogger *zap.Logger
	h := chiMid.RequestID(Logger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxLogger = logging.FromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
		_, _ = io.WriteString(w, "short and stout")
	})))

	req := httptest.NewRequest(http.MethodGet, "/blog?page=2", nil)
	req.Header.Set("HX-Request", "true")
	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	h.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, ctxLogger)
	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	require.Equal(t, zapcore.WarnLevel, entries[0].Level)

	fields := entries[0].ContextMap()
	require.Equal(t, "/blog", fields["path"])
	require.EqualValues(t, http.StatusTeapot, fields["status"])
	require.EqualValues(t, len("short and stout"), fields["bytes"])
	require.Equal(t, "10.0.0.1", fields["remote_ip"])
	require.Equal(t, true, fields["htmx"])
	require.NotEmpty(t, fields["request_id"])
}

func TestAssetsWithCache(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "data"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "css"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data", "blog-posts.json"), []byte(`[]`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "css", "site.css"), []byte(`body{}`), 0o644))

	h := http.StripPrefix("/assets", AssetsWithCache(dir))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/css/site.css", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, assetCacheControl, rec.Header().Get("Cache-Control"))
	etag := rec.Header().Get("ETag")
	require.NotEmpty(t, etag)

	req := httptest.NewRequest(http.MethodGet, "/assets/css/site.css", nil)
	req.Header.Set("If-None-Match", etag)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotModified, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/data/blog-posts.json", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, dataCacheControl, rec.Header().Get("Cache-Control"))
	require.Equal(t, "[]", rec.Body.String())
}
