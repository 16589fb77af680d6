package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const doc = `<supplementalData><windowsZones/></supplementalData>`

func TestFetcher_HTTP(t *testing.T) {
	var gotUA string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/xml")
		_, _ = w.Write([]byte(doc))
	}))
	defer srv.Close()

	data, err := New(Options{}).Fetch(context.Background(), srv.URL+"/windowsZones.xml")
	require.NoError(t, err)

	assert.Equal(t, doc, string(data))
	assert.Equal(t, "wintz-generator", gotUA)
}

func TestFetcher_HTTPStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := New(Options{}).Fetch(context.Background(), srv.URL)
	require.Error(t, err)

	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr), "got %T: %v", err, err)
	assert.Equal(t, srv.URL, netErr.URL)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
}

func TestFetcher_HTTPTimeout(t *testing.T) {
	release := make(chan struct{})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	_, err := New(Options{Timeout: 50 * time.Millisecond}).Fetch(context.Background(), srv.URL)

	var netErr *NetworkError
	assert.True(t, errors.As(err, &netErr), "got %T: %v", err, err)
}

func TestFetcher_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(doc))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(Options{}).Fetch(ctx, srv.URL)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFetcher_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	_, err := New(Options{}).Fetch(context.Background(), addr)

	var netErr *NetworkError
	assert.True(t, errors.As(err, &netErr), "got %T: %v", err, err)
}

func TestFetcher_SizeLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", 100)))
	}))
	defer srv.Close()

	_, err := New(Options{MaxBytes: 10}).Fetch(context.Background(), srv.URL)
	assert.ErrorIs(t, err, ErrTooLarge)

	data, err := New(Options{MaxBytes: 100}).Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Len(t, data, 100)
}

func TestFetcher_LocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "windowsZones.xml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	f := New(Options{})

	data, err := f.Fetch(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, doc, string(data))

	data, err = f.Fetch(context.Background(), "file://"+filepath.ToSlash(path))
	require.NoError(t, err)
	assert.Equal(t, doc, string(data))

	data, err = f.Fetch(context.Background(), "file://localhost"+filepath.ToSlash(path))
	require.NoError(t, err)
	assert.Equal(t, doc, string(data))
}

func TestFetcher_LocalFileErrors(t *testing.T) {
	dir := t.TempDir()
	f := New(Options{})

	tests := []struct {
		name     string
		location string
	}{
		{"missing file", filepath.Join(dir, "missing.xml")},
		{"directory", dir},
		{"unsupported scheme", "ftp://ftp.iana.org/tz/tzdata-latest.tar.gz"},
		{"remote file host", "file://fileserver/share/windowsZones.xml"},
		{"relative file url", "file://testdata/windowsZones.xml"},
		{"bad url", "http://[::1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.Fetch(context.Background(), tt.location)

			var netErr *NetworkError
			require.True(t, errors.As(err, &netErr), "got %T: %v", err, err)
			assert.Equal(t, tt.location, netErr.URL)
		})
	}
}

func TestSourceFunc(t *testing.T) {
	var src Source = SourceFunc(func(_ context.Context, location string) ([]byte, error) {
		return []byte(location), nil
	})

	data, err := src.Fetch(context.Background(), "memory")
	require.NoError(t, err)
	assert.Equal(t, "memory", string(data))
}
