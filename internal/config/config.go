// Package config resolves runtime settings from an optional YAML file and
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultPort        = "8080"
	defaultPostsSource = "public/assets/data/blog-posts.json"
	defaultLatestLimit = 6
	defaultFallback    = "ko"
)

// Config captures all runtime configuration organised by concern.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Dev       bool            `yaml:"dev"`
	Paths     PathsConfig     `yaml:"paths"`
	Posts     PostsConfig     `yaml:"posts"`
	Site      SiteConfig      `yaml:"site"`
	I18n      I18nConfig      `yaml:"i18n"`
	Analytics AnalyticsConfig `yaml:"analytics"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr         string        `yaml:"addr"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`
}

// PathsConfig locates templates, static assets and translations on disk.
type PathsConfig struct {
	Templates string `yaml:"templates"`
	Public    string `yaml:"public"`
	Locales   string `yaml:"locales"`
}

// PostsConfig points at the posts document and tunes how it is presented.
type PostsConfig struct {
	Source          string `yaml:"source"`
	CredentialsFile string `yaml:"credentials_file"`
	LatestLimit     int    `yaml:"latest_limit"`
	ExcerptLength   int    `yaml:"excerpt_length"`
}

// SiteConfig holds site identity used for titles and canonical URLs.
type SiteConfig struct {
	Name    string `yaml:"name"`
	BaseURL string `yaml:"base_url"`
}

// I18nConfig lists the supported locales.
type I18nConfig struct {
	Fallback  string   `yaml:"fallback"`
	Supported []string `yaml:"supported"`
}

// AnalyticsConfig holds client instrumentation identifiers surfaced to templates.
type AnalyticsConfig struct {
	GA4MeasurementID string `yaml:"ga4_measurement_id"` // e.g. G-XXXXXXXXXX
	GTMContainerID   string `yaml:"gtm_container_id"`   // e.g. GTM-XXXXXXX
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:         ":" + defaultPort,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Paths: PathsConfig{
			Templates: "templates",
			Public:    "public",
			Locales:   "locales",
		},
		Posts: PostsConfig{
			Source:      defaultPostsSource,
			LatestLimit: defaultLatestLimit,
		},
		Site: SiteConfig{Name: "jjubeuly"},
		I18n: I18nConfig{
			Fallback:  defaultFallback,
			Supported: []string{"ko", "en"},
		},
	}
}

// Load reads the YAML file at path on top of the defaults (a missing file is
// not an error) and then applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	if path = strings.TrimSpace(path); path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(raw, &cfg); err != nil {
				return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}
	applyEnv(&cfg, os.Getenv)
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config, getenv func(string) string) {
	// Port resolution: prefer JJUBEULY_PORT, then Cloud Run's PORT.
	if port := firstNonEmpty(getenv("JJUBEULY_PORT"), getenv("PORT")); port != "" {
		cfg.Server.Addr = ":" + strings.TrimPrefix(port, ":")
	}
	if getenv("JJUBEULY_DEV") != "" || getenv("DEV") != "" {
		cfg.Dev = true
	}
	if v := getenv("JJUBEULY_POSTS_SOURCE"); v != "" {
		cfg.Posts.Source = v
	}
	if v := getenv("JJUBEULY_GCS_CREDENTIALS"); v != "" {
		cfg.Posts.CredentialsFile = v
	}
	if v := getenv("JJUBEULY_BASE_URL"); v != "" {
		cfg.Site.BaseURL = v
	}
	if v := getenv("JJUBEULY_GA_MEASUREMENT_ID"); v != "" {
		cfg.Analytics.GA4MeasurementID = v
	}
	if v := getenv("JJUBEULY_GTM_CONTAINER_ID"); v != "" {
		cfg.Analytics.GTMContainerID = v
	}
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Posts.Source) == "" {
		return errors.New("config: posts.source is required")
	}
	if c.Posts.LatestLimit <= 0 {
		c.Posts.LatestLimit = defaultLatestLimit
	}
	if c.Posts.ExcerptLength < 0 {
		c.Posts.ExcerptLength = 0
	}
	c.Site.BaseURL = strings.TrimRight(strings.TrimSpace(c.Site.BaseURL), "/")
	c.I18n.Fallback = strings.ToLower(strings.TrimSpace(c.I18n.Fallback))
	if c.I18n.Fallback == "" {
		c.I18n.Fallback = defaultFallback
	}
	if len(c.I18n.Supported) == 0 {
		c.I18n.Supported = []string{c.I18n.Fallback}
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
