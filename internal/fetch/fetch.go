// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch downloads reference PDFs into the analysis input
// directory.
package fetch

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// RetryBaseDelay controls the base duration for exponential backoff on
// retryable HTTP responses. Tests override this to avoid real sleeps.
var RetryBaseDelay = 2 * time.Second

const defaultMaxRetries = 3

// Options holds per-run download settings.
type Options struct {
	// UserAgent is sent with every request.
	UserAgent string

	// MaxRetries bounds retry attempts on 429/5xx. Zero uses the
	// default (3).
	MaxRetries int

	// Delay is the pause between consecutive downloads in a batch.
	Delay time.Duration
}

// BatchResult holds the outcome of a batch download run.
type BatchResult struct {
	Downloaded int
	Skipped    int
	Failed     int
}

// Total returns the number of URLs processed.
func (r BatchResult) Total() int {
	return r.Downloaded + r.Skipped + r.Failed
}

// HasFailures reports whether any download failed.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// Fetch downloads one PDF into inputDir, naming it after the last URL
// path segment. An already-present file is skipped. The download goes
// to a temporary sibling and is renamed on success so an interrupted
// run never leaves a truncated PDF in the corpus.
func Fetch(ctx context.Context, client *http.Client, rawURL, inputDir string, opts Options, w io.Writer) (skipped bool, err error) {
	name, err := fileName(rawURL)
	if err != nil {
		return false, err
	}
	destPath := filepath.Join(inputDir, name)

	if _, err := os.Stat(destPath); err == nil {
		fmt.Fprintf(w, "skipped: %s (already exists)\n", name)
		return true, nil
	}

	if err := os.MkdirAll(inputDir, 0o755); err != nil {
		return false, fmt.Errorf("creating input directory %s: %w", inputDir, err)
	}

	fmt.Fprintf(w, "downloading: %s\n", name)

	resp, err := doWithRetry(ctx, client, rawURL, opts)
	if err != nil {
		return false, fmt.Errorf("downloading %s: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("HTTP %d from %s", resp.StatusCode, rawURL)
	}

	tmpFile, err := os.CreateTemp(inputDir, ".fetch-*.tmp")
	if err != nil {
		return false, fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, copyErr := io.Copy(tmpFile, resp.Body)
	closeErr := tmpFile.Close()
	if copyErr != nil {
		os.Remove(tmpPath)
		return false, fmt.Errorf("writing download: %w", copyErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return false, fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return false, fmt.Errorf("renaming temp file: %w", err)
	}
	return false, nil
}

// FetchBatch downloads multiple URLs, printing per-item status and
// returning a summary. It continues after individual failures and
// applies a delay between consecutive downloads.
func FetchBatch(ctx context.Context, client *http.Client, urls []string, inputDir string, opts Options, w io.Writer) BatchResult {
	var result BatchResult
	for i, u := range urls {
		if i > 0 && opts.Delay > 0 {
			select {
			case <-ctx.Done():
				result.Failed += len(urls) - i
				fmt.Fprintf(w, "cancelled: %v\n", ctx.Err())
				return result
			case <-time.After(opts.Delay):
			}
		}
		wasSkipped, err := Fetch(ctx, client, u, inputDir, opts, w)
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", u, err)
			result.Failed++
			continue
		}
		if wasSkipped {
			result.Skipped++
		} else {
			result.Downloaded++
		}
	}
	fmt.Fprintf(w, "\nBatch summary: %d downloaded, %d skipped, %d failed (total: %d)\n",
		result.Downloaded, result.Skipped, result.Failed, result.Total())
	return result
}

// doWithRetry issues the GET and retries on 429 and 5xx with
// exponential backoff starting at RetryBaseDelay. After exhausting
// retries the last response is returned so the caller can report its
// status.
func doWithRetry(ctx context.Context, client *http.Client, rawURL string, opts Options) (*http.Response, error) {
	maxRetries := opts.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", opts.UserAgent)
	req.Header.Set("Accept", "application/pdf")

	for attempt := 0; ; attempt++ {
		resp, err := client.Do(req.Clone(ctx))
		if err != nil {
			return nil, err
		}

		if !retryable(resp.StatusCode) || attempt >= maxRetries {
			return resp, nil
		}

		// Drain and close the body before retrying.
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		backoff := time.Duration(math.Pow(2, float64(attempt))) * RetryBaseDelay
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}
}

func retryable(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}

// fileName derives the destination filename from the URL's last path
// segment, requiring a .pdf suffix so the corpus stays scannable.
func fileName(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parsing URL %q: %w", rawURL, err)
	}
	name := path.Base(u.Path)
	if name == "." || name == "/" || name == "" {
		return "", fmt.Errorf("URL %q has no file name", rawURL)
	}
	if !strings.HasSuffix(name, ".pdf") {
		return "", fmt.Errorf("URL %q does not name a PDF", rawURL)
	}
	return name, nil
}
