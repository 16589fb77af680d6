package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"
)

const (
	// DefaultTimeout bounds a single fetch.
	DefaultTimeout = 30 * time.Second
	// DefaultMaxBytes caps the response body size.
	DefaultMaxBytes int64 = 16 << 20

	userAgent = "wintz-generator"
)

// ErrTooLarge is reported when a document exceeds the configured size cap.
var ErrTooLarge = errors.New("document exceeds size limit")

// NetworkError reports a failed fetch.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// StatusError reports a non-2xx HTTP response.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return "HTTP error " + e.Status
}

// Source retrieves a document by location.
type Source interface {
	Fetch(ctx context.Context, location string) ([]byte, error)
}

// Options configures a Fetcher.
type Options struct {
	// Timeout bounds each HTTP request. Zero means DefaultTimeout.
	Timeout time.Duration
	// MaxBytes caps the document size. Zero means DefaultMaxBytes.
	MaxBytes int64
	// Client overrides the HTTP client. Its Timeout is left untouched.
	Client *http.Client
}

// Fetcher is the default Source: HTTP(S) over net/http, local files for
// file:// URLs and plain paths.
type Fetcher struct {
	client   *http.Client
	maxBytes int64
}

// New creates a Fetcher from opts.
func New(opts Options) *Fetcher {
	client := opts.Client
	if client == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}

		client = &http.Client{Timeout: timeout}
	}

	maxBytes := opts.MaxBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}

	return &Fetcher{client: client, maxBytes: maxBytes}
}

// Fetch returns the raw document at location.
func (f *Fetcher) Fetch(ctx context.Context, location string) ([]byte, error) {
	var (
		data []byte
		err  error
	)

	u, parseErr := url.Parse(location)

	switch {
	case parseErr != nil:
		err = parseErr
	case u.Scheme == "http" || u.Scheme == "https":
		data, err = f.get(ctx, u.String())
	case u.Scheme == "file" && u.Host != "" && u.Host != "localhost":
		err = fmt.Errorf("file URL host %q is not local", u.Host)
	case u.Scheme == "file":
		data, err = f.readFile(u.Path)
	case u.Scheme == "":
		data, err = f.readFile(location)
	default:
		err = fmt.Errorf("unsupported URL scheme %q", u.Scheme)
	}

	if err != nil {
		return nil, &NetworkError{URL: location, Err: err}
	}

	return data, nil
}

func (f *Fetcher) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/xml, text/xml, text/plain;q=0.9, */*;q=0.5")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !(resp.StatusCode >= 200 && resp.StatusCode <= 299) {
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	return f.readAll(resp.Body)
}

func (f *Fetcher) readFile(path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New("empty file path")
	}

	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	st, err := fh.Stat()
	if err != nil {
		return nil, err
	}

	if !st.Mode().IsRegular() {
		return nil, fmt.Errorf("%s is not a regular file", path)
	}

	return f.readAll(fh)
}

// readAll reads r up to the size cap.
func (f *Fetcher) readAll(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, f.maxBytes+1))
	if err != nil {
		return nil, err
	}

	if int64(len(data)) > f.maxBytes {
		return nil, ErrTooLarge
	}

	return data, nil
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func(ctx context.Context, location string) ([]byte, error)

// Fetch calls fn.
func (fn SourceFunc) Fetch(ctx context.Context, location string) ([]byte, error) {
	return fn(ctx, location)
}
