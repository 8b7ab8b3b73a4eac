package profile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Gabolonhez/Portfolio/internal/i18n"
)

const (
	DefaultMaxAttempts = 3
	DefaultBaseDelay   = 1000 * time.Millisecond
	DefaultPathPT      = "src/data/profilePT.json"
	DefaultPathEN      = "src/data/profileEN.json"
)

// maxDocumentBytes bounds how much of a response body is read.
const maxDocumentBytes = 4 << 20

// ErrDocumentTooLarge is returned for a response body over maxDocumentBytes.
var ErrDocumentTooLarge = errors.New("profile document too large")

// Result is the outcome of a fetch: either a fetched document or a
// fallback document together with the error that caused the fallback.
// Document never returns nil.
type Result struct {
	doc   *Document
	cause error
}

// Fetched wraps a document retrieved from its source.
func Fetched(doc *Document) Result { return Result{doc: doc} }

// FallbackResult wraps a synthesized document and the failure it replaces.
func FallbackResult(doc *Document, cause error) Result { return Result{doc: doc, cause: cause} }

// Document returns the document to render.
func (r Result) Document() *Document { return r.doc }

// IsFallback reports whether the document was synthesized locally.
func (r Result) IsFallback() bool { return r.cause != nil }

// Cause returns the last fetch error for a fallback result, nil otherwise.
func (r Result) Cause() error { return r.cause }

// Sleeper waits for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Fetcher retrieves profile documents with bounded retry and linear backoff.
type Fetcher struct {
	BaseURL     string
	Paths       map[i18n.Lang]string
	MaxAttempts int
	BaseDelay   time.Duration
	Identity    Identity

	client  *http.Client
	timeout time.Duration
	sleep   Sleeper
	logger  *zap.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(c *http.Client) Option { return func(f *Fetcher) { f.client = c } }

// WithTimeout bounds a single attempt when the default client is used.
func WithTimeout(d time.Duration) Option { return func(f *Fetcher) { f.timeout = d } }

// WithSleeper replaces the backoff wait (used by tests).
func WithSleeper(s Sleeper) Option { return func(f *Fetcher) { f.sleep = s } }

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option { return func(f *Fetcher) { f.logger = l } }

// NewFetcher creates a Fetcher rooted at baseURL. A file:// base URL reads
// the documents from the local filesystem.
func NewFetcher(baseURL string, opts ...Option) *Fetcher {
	f := &Fetcher{
		BaseURL: baseURL,
		Paths: map[i18n.Lang]string{
			i18n.PT: DefaultPathPT,
			i18n.EN: DefaultPathEN,
		},
		MaxAttempts: DefaultMaxAttempts,
		BaseDelay:   DefaultBaseDelay,
		Identity:    DefaultIdentity(),
		timeout:     10 * time.Second,
		sleep:       sleepContext,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.client == nil {
		f.client = newClient(baseURL, f.timeout)
	}
	if f.logger == nil {
		f.logger = zap.NewNop()
	}
	return f
}

// newClient returns an HTTP client that also understands file:// URLs
// rooted at the filesystem.
func newClient(baseURL string, timeout time.Duration) *http.Client {
	if !strings.HasPrefix(baseURL, "file://") {
		return &http.Client{Timeout: timeout}
	}
	t := &http.Transport{}
	t.RegisterProtocol("file", http.NewFileTransport(http.Dir("/")))
	return &http.Client{Transport: t, Timeout: timeout}
}

// URL returns the source location of the document for lang. Unknown
// languages resolve to the English document.
func (f *Fetcher) URL(lang i18n.Lang) string {
	p, ok := f.Paths[lang]
	if !ok {
		p = f.Paths[i18n.EN]
	}
	base := strings.TrimSuffix(f.BaseURL, "/")
	if base == "" {
		return p
	}
	return base + "/" + strings.TrimPrefix(p, "/")
}

// Fetch retrieves the document for lang. Each failed attempt is logged and
// followed by a wait of BaseDelay times the attempt number. When every
// attempt fails a fallback document is returned. The only error Fetch
// returns is the context's.
func (f *Fetcher) Fetch(ctx context.Context, lang i18n.Lang) (Result, error) {
	attempts := f.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	src := f.URL(lang)

	var lastErr error
	for i := 1; i <= attempts; i++ {
		doc, err := f.fetchOnce(ctx, src)
		if err == nil {
			f.logger.Debug("profile fetched", zap.String("url", src), zap.Int("attempt", i))
			return Fetched(doc), nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Result{}, ctxErr
		}
		lastErr = err
		f.logger.Warn("profile fetch attempt failed",
			zap.String("url", src),
			zap.Int("attempt", i),
			zap.Int("max_attempts", attempts),
			zap.Error(err))

		if i < attempts {
			if err := f.sleep(ctx, f.BaseDelay*time.Duration(i)); err != nil {
				return Result{}, err
			}
		}
	}

	cause := fmt.Errorf("loading profile after %d attempts: %w", attempts, lastErr)
	f.logger.Error("using fallback profile", zap.String("lang", string(lang)), zap.Error(cause))
	return FallbackResult(Fallback(f.Identity, lang), cause), nil
}

// fetchOnce performs a single retrieval and decode.
func (f *Fetcher) fetchOnce(ctx context.Context, src string) (*Document, error) {
	if _, err := url.Parse(src); err != nil {
		return nil, fmt.Errorf("invalid profile URL %q: %w", src, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("HTTP error: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if len(data) > maxDocumentBytes {
		return nil, fmt.Errorf("%w: over %d bytes", ErrDocumentTooLarge, maxDocumentBytes)
	}
	return Decode(data)
}
