package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/polyjj/jjubeuly/internal/blog"
	"github.com/polyjj/jjubeuly/internal/cms"
	"github.com/polyjj/jjubeuly/internal/config"
	"github.com/polyjj/jjubeuly/internal/i18n"
	"github.com/polyjj/jjubeuly/internal/logging"
	mw "github.com/polyjj/jjubeuly/internal/middleware"
)

// postLister loads the raw post collection once per call.
type postLister interface {
	ListPosts(ctx context.Context) ([]blog.Post, error)
}

var (
	templatesDir = "templates"
	publicDir    = "public"
	// devMode is set in main() from config: templates are reparsed per request
	devMode    bool
	tmplCache  *templateSet
	i18nBundle *i18n.Bundle
	appConfig  = config.Default()
	posts      postLister
)

func main() {
	var (
		cfgPath  string
		addr     string
		tmplPath string
		pubPath  string
		source   string
	)
	flag.StringVar(&cfgPath, "config", "config.yaml", "optional YAML config file")
	flag.StringVar(&addr, "addr", "", "HTTP listen address (overrides config)")
	flag.StringVar(&tmplPath, "templates", "", "templates directory (overrides config)")
	flag.StringVar(&pubPath, "public", "", "public assets directory (overrides config)")
	flag.StringVar(&source, "posts", "", "posts JSON source: file path, http(s) URL or gs://bucket/object")
	flag.Parse()

	logger, err := logging.New()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}
	if tmplPath != "" {
		cfg.Paths.Templates = tmplPath
	}
	if pubPath != "" {
		cfg.Paths.Public = pubPath
	}
	if source != "" {
		cfg.Posts.Source = source
	}

	appConfig = cfg
	templatesDir = cfg.Paths.Templates
	publicDir = cfg.Paths.Public
	devMode = cfg.Dev

	i18nBundle, err = i18n.Load(cfg.Paths.Locales, cfg.I18n.Fallback, cfg.I18n.Supported)
	if err != nil {
		logger.Fatal("load i18n", zap.Error(err))
	}

	if !devMode {
		// Parse templates once in production
		tc, err := parseTemplates()
		if err != nil {
			logger.Fatal("parse templates", zap.Error(err))
		}
		tmplCache = tc
	}

	client := cms.NewClient(cfg.Posts.Source, cms.WithCredentialsFile(cfg.Posts.CredentialsFile))
	defer func() { _ = client.Close() }()
	posts = client

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           newRouter(logger),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("web listening",
			zap.String("addr", cfg.Server.Addr),
			zap.Bool("dev", devMode),
			zap.String("posts_source", client.Source()),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen", zap.Error(err))
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", zap.Error(err))
		}
		logger.Info("web stopped")
	}
}

// newRouter wires middleware and routes.
func newRouter(logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	// If deployed behind a trusted reverse proxy/load balancer, RealIP will use
	// X-Forwarded-For to determine the client IP.
	r.Use(middleware.RealIP)
	r.Use(mw.HTMX)
	r.Use(mw.Locale(i18nBundle))
	r.Use(mw.Logger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(middleware.Timeout(30 * time.Second))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, "ok")
	})

	// Static assets under /assets/
	assets := http.StripPrefix("/assets", mw.AssetsWithCache(filepath.Join(publicDir, "assets")))
	r.Handle("/assets/*", assets)

	r.Get("/", HomeHandler)
	r.Get("/blog", BlogHandler)
	r.Get("/blog.html", LegacyBlogRedirect)
	return r
}
