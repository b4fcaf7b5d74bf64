package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

const (
	assetCacheControl = "public, max-age=604800, stale-while-revalidate=86400"
	// the posts document is republished in place, so clients revalidate it
	dataCacheControl = "no-cache"
)

// AssetsWithCache wraps a file server and applies Cache-Control, Vary, and
// ETag handling. Requests reach it with the /assets prefix stripped.
func AssetsWithCache(dir string) http.Handler {
	// precompute ETags for files under dir, keyed by URL path
	etags := map[string]string{}
	_ = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info == nil || info.IsDir() {
			return nil
		}
		et, err := fileETag(path)
		if err != nil {
			return nil
		}
		if rel, err := filepath.Rel(dir, path); err == nil {
			etags["/"+filepath.ToSlash(rel)] = et
		}
		return nil
	})
	fs := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := "/" + strings.TrimPrefix(r.URL.Path, "/")
		w.Header().Set("Vary", "Accept-Encoding")
		if strings.HasPrefix(p, "/data/") {
			w.Header().Set("Cache-Control", dataCacheControl)
		} else {
			w.Header().Set("Cache-Control", assetCacheControl)
		}
		if et := etags[p]; et != "" {
			w.Header().Set("ETag", et)
			if inm := r.Header.Get("If-None-Match"); inm != "" && inm == et {
				w.WriteHeader(http.StatusNotModified)
				return
			}
		}
		fs.ServeHTTP(w, r)
	})
}

func fileETag(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return `W/"` + hex.EncodeToString(h.Sum(nil)[:16]) + `"`, nil
}
