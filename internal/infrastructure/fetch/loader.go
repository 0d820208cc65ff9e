// Package fetch loads page HTML from disk or over HTTP.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/bnema/readably/internal/application/port"
	pageurl "github.com/bnema/readably/internal/domain/url"
	infralogging "github.com/bnema/readably/internal/infrastructure/logging"
	"github.com/bnema/readably/internal/logging"
	"github.com/hashicorp/go-retryablehttp"
)

const (
	dialTimeout           = 5 * time.Second
	keepAlive             = 30 * time.Second
	tlsHandshakeTimeout   = 5 * time.Second
	responseHeaderTimeout = 10 * time.Second
	idleConnTimeout       = 90 * time.Second

	// maxPageSize caps downloaded documents.
	maxPageSize = 16 << 20
)

// Options configure the HTTP side of the loader.
type Options struct {
	Timeout      time.Duration
	RetryMax     int
	UserAgent    string
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
}

// Loader implements port.PageLoader.
type Loader struct {
	opts Options
}

var _ port.PageLoader = (*Loader)(nil)

// NewLoader creates a loader. Zero retry waits keep the retryablehttp defaults.
func NewLoader(opts Options) *Loader {
	return &Loader{opts: opts}
}

// Load returns the page at target: an http(s) URL, a file:// URL or a local path.
// A bare host such as "example.com/post" is fetched over https unless a local
// file with that name exists.
func (l *Loader) Load(ctx context.Context, target string) ([]byte, error) {
	target = pageurl.Normalize(target, isFile)
	if target == "" {
		return nil, fmt.Errorf("page target cannot be empty")
	}

	u, err := url.Parse(target)
	if err == nil {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return l.download(ctx, u.String())
		case "file":
			return readFile(u.Path)
		}
	}
	return readFile(target)
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read page %s: %w", path, err)
	}
	return data, nil
}

func (l *Loader) download(ctx context.Context, target string) ([]byte, error) {
	log := logging.FromContext(ctx)

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", target, err)
	}
	if l.opts.UserAgent != "" {
		req.Header.Set("User-Agent", l.opts.UserAgent)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := l.client(ctx).Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", target, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to fetch %s: unexpected status %s", target, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxPageSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read body of %s: %w", target, err)
	}

	log.Debug().Str("url", target).Int("bytes", len(data)).Msg("page downloaded")
	return data, nil
}

func (l *Loader) client(ctx context.Context) *retryablehttp.Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = l.opts.RetryMax
	retryClient.Logger = infralogging.NewLeveledAdapter(logging.FromContext(ctx))
	if l.opts.RetryWaitMin > 0 {
		retryClient.RetryWaitMin = l.opts.RetryWaitMin
	}
	if l.opts.RetryWaitMax > 0 {
		retryClient.RetryWaitMax = l.opts.RetryWaitMax
	}
	retryClient.HTTPClient = &http.Client{
		Timeout: l.opts.Timeout,
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   dialTimeout,
				KeepAlive: keepAlive,
			}).DialContext,
			TLSHandshakeTimeout:   tlsHandshakeTimeout,
			ResponseHeaderTimeout: responseHeaderTimeout,
			IdleConnTimeout:       idleConnTimeout,
		},
	}
	return retryClient
}
