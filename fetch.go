package gotld

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	// minListSize rejects truncated downloads and bogus local files;
	// the real list is a few hundred KB.
	minListSize = 1024

	maxDownloadSize = 10 << 20
	maxFileSize     = 50 << 20

	downloadAttempts = 3
)

var errNoMarker = errors.New("public suffix list markers not found")

// loadList reads the raw list bytes from the configured local file or,
// by default, from the network.
func (f *FQDN) loadList(ctx context.Context) ([]byte, error) {
	if f.SourceFile != "" {
		data, err := readListFile(f.SourceFile)
		if err != nil {
			return nil, err
		}
		return data, nil
	}
	return f.downloadList(ctx)
}

func readListFile(path string) ([]byte, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, &DownloadError{Err: err}
	}
	if fi.IsDir() {
		return nil, &DownloadError{Err: fmt.Errorf("path is not a file: %s", path)}
	}
	if fi.Size() > maxFileSize {
		return nil, &FormatError{Err: fmt.Errorf("file too large: %d bytes", fi.Size())}
	}
	if fi.Size() < minListSize {
		return nil, &FormatError{Err: fmt.Errorf("file too small to be a public suffix list: %d bytes", fi.Size())}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &DownloadError{Err: err}
	}
	return data, nil
}

// downloadList fetches the list with bounded retries. Each attempt is
// bounded by the configured timeout; backoff sleeps respect ctx.
func (f *FQDN) downloadList(ctx context.Context) ([]byte, error) {
	cli := f.HTTPClient
	if cli == nil {
		cli = &http.Client{Timeout: f.Timeout}
	}

	var lastErr error
	for attempt := 1; attempt <= downloadAttempts; attempt++ {
		data, err := fetchOnce(ctx, cli, f.SourceURL)
		if err == nil {
			return data, nil
		}
		lastErr = err

		logrus.WithField("attempt", attempt).WithError(err).Warn("public suffix list download failed")

		if attempt == downloadAttempts {
			break
		}
		backoff := time.Second << (attempt - 1)
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, &DownloadError{Err: ctx.Err()}
		case <-timer.C:
		}
	}
	return nil, lastErr
}

func fetchOnce(ctx context.Context, cli *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &DownloadError{Err: err}
	}
	req.Header.Set("User-Agent", "gotld/1.0")

	resp, err := cli.Do(req)
	if err != nil {
		return nil, &DownloadError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &DownloadError{Err: fmt.Errorf("HTTP status %s", resp.Status)}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDownloadSize+1))
	if err != nil {
		return nil, &DownloadError{Err: err}
	}
	if len(data) > maxDownloadSize {
		return nil, &FormatError{Err: fmt.Errorf("response too large: over %d bytes", maxDownloadSize)}
	}
	if len(data) < minListSize {
		return nil, &FormatError{Err: fmt.Errorf("response too small for a public suffix list: %d bytes", len(data))}
	}

	return data, nil
}

// looksLikePSL sniffs the first lines for markers that identify the
// Mozilla public suffix list, guarding against a wrong URL serving an
// HTML error page that would otherwise parse as garbage rules.
func looksLikePSL(data []byte) bool {
	markers := []string{
		"publicsuffix.org",
		"Mozilla Public Suffix List",
		"===BEGIN ICANN DOMAINS===",
		"===BEGIN PRIVATE DOMAINS===",
	}

	lines := strings.Split(string(data), "\n")
	if len(lines) > 50 {
		lines = lines[:50]
	}
	for _, line := range lines {
		for _, m := range markers {
			if strings.Contains(line, m) {
				return true
			}
		}
	}
	return false
}

// SaveList downloads the list and writes it to a local file, for use
// with WithSourceFile.
func SaveList(ctx context.Context, url, path string, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if url == "" {
		url = DefaultListURL
	}

	cli := &http.Client{Timeout: timeout}
	data, err := fetchOnce(ctx, cli, url)
	if err != nil {
		return err
	}
	if !looksLikePSL(data) {
		return &FormatError{Err: errNoMarker}
	}
	return os.WriteFile(path, data, 0644)
}
