// Package cms loads the blog post collection from its published JSON
// document. The document may live on local disk, behind HTTP(S), or in a
// Cloud Storage bucket (gs://bucket/object).
package cms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/polyjj/jjubeuly/internal/blog"
)

// ErrLoadFailure is returned when the post collection cannot be fetched or
// parsed. Callers render a placeholder instead of the list.
var ErrLoadFailure = errors.New("cms: posts could not be loaded")

const (
	defaultTimeout = 5 * time.Second
	// maxDocumentBytes bounds the posts document read from any source.
	maxDocumentBytes = 8 << 20
)

type sourceKind int

const (
	sourceFile sourceKind = iota
	sourceHTTP
	sourceGCS
)

// objectOpener opens a Cloud Storage object for reading.
type objectOpener func(ctx context.Context, bucket, object string) (io.ReadCloser, error)

// Client provides read-only access to the posts document.
type Client struct {
	source string
	kind   sourceKind
	http   *http.Client

	credentialsFile string
	openObject      objectOpener
	gcsOnce         sync.Once
	gcs             *storage.Client
	gcsErr          error
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client used for http(s) sources.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithCredentialsFile sets a service account key used for gs:// sources.
// Without it, application default credentials apply.
func WithCredentialsFile(path string) Option {
	return func(c *Client) {
		c.credentialsFile = strings.TrimSpace(path)
	}
}

// NewClient constructs a Client for the given source: an http(s) URL, a
// gs://bucket/object URL, or a local file path.
func NewClient(source string, opts ...Option) *Client {
	source = strings.TrimSpace(source)
	c := &Client{
		source: source,
		kind:   classify(source),
		http:   &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	if c.openObject == nil {
		c.openObject = c.openStorageObject
	}
	return c
}

// Source returns the configured document location.
func (c *Client) Source() string {
	if c == nil {
		return ""
	}
	return c.source
}

// ListPosts fetches and decodes the post collection in document order.
// Every failure wraps ErrLoadFailure.
func (c *Client) ListPosts(ctx context.Context) ([]blog.Post, error) {
	if c == nil || c.source == "" {
		return nil, fmt.Errorf("%w: no source configured", ErrLoadFailure)
	}
	rc, err := c.open(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrLoadFailure, c.source, err)
	}
	defer rc.Close()

	posts, err := decodePosts(io.LimitReader(rc, maxDocumentBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", ErrLoadFailure, c.source, err)
	}
	return posts, nil
}

func (c *Client) open(ctx context.Context) (io.ReadCloser, error) {
	switch c.kind {
	case sourceHTTP:
		return c.openRemote(ctx)
	case sourceGCS:
		bucket, object, err := parseGCSURL(c.source)
		if err != nil {
			return nil, err
		}
		return c.openObject(ctx, bucket, object)
	default:
		return os.Open(c.source)
	}
}

func (c *Client) openRemote(ctx context.Context) (io.ReadCloser, error) {
	if c.http == nil {
		c.http = &http.Client{Timeout: defaultTimeout}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.source, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		resp.Body.Close()
		return nil, fmt.Errorf("remote status %d", resp.StatusCode)
	}
	return resp.Body, nil
}

func decodePosts(r io.Reader) ([]blog.Post, error) {
	var raw []blog.Post
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, errors.New("document is not a post array")
	}
	posts := make([]blog.Post, 0, len(raw))
	for _, p := range raw {
		posts = append(posts, normalizePost(p))
	}
	return posts, nil
}

func normalizePost(p blog.Post) blog.Post {
	p.Category = blog.Category(strings.TrimSpace(string(p.Category)))
	p.Date = strings.TrimSpace(p.Date)
	if p.Tags != nil {
		p.Tags = append([]string(nil), p.Tags...)
	}
	return p
}

func classify(source string) sourceKind {
	lower := strings.ToLower(source)
	switch {
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return sourceHTTP
	case strings.HasPrefix(lower, "gs://"):
		return sourceGCS
	default:
		return sourceFile
	}
}

func parseGCSURL(source string) (bucket, object string, err error) {
	rest := source[len("gs://"):]
	bucket, object, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || strings.Trim(object, "/") == "" {
		return "", "", fmt.Errorf("invalid storage url %q", source)
	}
	return bucket, object, nil
}

func (c *Client) openStorageObject(ctx context.Context, bucket, object string) (io.ReadCloser, error) {
	c.gcsOnce.Do(func() {
		var opts []option.ClientOption
		if c.credentialsFile != "" {
			opts = append(opts, option.WithCredentialsFile(c.credentialsFile))
		}
		c.gcs, c.gcsErr = storage.NewClient(context.Background(), opts...)
	})
	if c.gcsErr != nil {
		return nil, c.gcsErr
	}
	return c.gcs.Bucket(bucket).Object(object).NewReader(ctx)
}

// Close releases the storage client, if one was created.
func (c *Client) Close() error {
	if c == nil || c.gcs == nil {
		return nil
	}
	return c.gcs.Close()
}
