// Package fetch stages installation artifacts into the run workspace, either
// by copying them from a local source tree or by downloading them from the
// raw-content host.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/containers/ramalama-install/internal/messages"
	"github.com/containers/ramalama-install/internal/source"
)

// Fetcher stages one artifact from its locator into dest.
type Fetcher interface {
	Fetch(ctx context.Context, a source.Artifact, locator string, dest string) error
}

// Copier stages artifacts from a source checkout on the local filesystem.
type Copier struct {
	Out io.Writer
}

// Fetch copies locator to dest byte for byte, preserving the source file's
// modification time.
func (c Copier) Fetch(_ context.Context, a source.Artifact, locator string, dest string) error {
	src, err := os.Open(locator)
	if err != nil {
		return fmt.Errorf(messages.CopySourceMissingFmt, locator, err)
	}
	defer func() { _ = src.Close() }()

	info, err := src.Stat()
	if err != nil {
		return fmt.Errorf(messages.CopySourceMissingFmt, locator, err)
	}

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o755)
	if err != nil {
		return fmt.Errorf(messages.CopyCreateDestFmt, dest, err)
	}
	if _, err := io.Copy(out, src); err != nil {
		_ = out.Close()
		return fmt.Errorf(messages.FetchWriteDestFmt, dest, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf(messages.FetchWriteDestFmt, dest, err)
	}
	_ = os.Chtimes(dest, info.ModTime(), info.ModTime())

	_, _ = fmt.Fprintf(c.Out, messages.CopiedFmt, a.Name)
	return nil
}

const (
	downloadMaxTries   = 4
	downloadMaxElapsed = 2 * time.Minute
	requestTimeout     = 30 * time.Second
)

var newBackOff = func() backoff.BackOff {
	return backoff.NewExponentialBackOff()
}

// Downloader stages artifacts over HTTPS. Transient failures (network errors
// and 5xx responses) are retried with exponential backoff; other failure
// statuses are final on the first response.
type Downloader struct {
	client *http.Client
	out    io.Writer
}

// NewDownloader returns a downloader reporting progress to out.
func NewDownloader(out io.Writer) *Downloader {
	return &Downloader{
		client: &http.Client{
			Timeout:       requestTimeout,
			CheckRedirect: checkRedirect,
		},
		out: out,
	}
}

// insecureRedirectError marks a redirect that would leave HTTPS.
type insecureRedirectError struct {
	url string
}

func (e *insecureRedirectError) Error() string {
	return fmt.Sprintf(messages.FetchInsecureRedirectFmt, e.url)
}

func checkRedirect(req *http.Request, _ []*http.Request) error {
	if req.URL.Scheme != "https" {
		return &insecureRedirectError{url: req.URL.String()}
	}
	return nil
}

// Fetch downloads locator into dest. The remote Last-Modified time, when
// present, is applied to the file so installed copies carry the upstream
// timestamp.
func (d *Downloader) Fetch(ctx context.Context, a source.Artifact, locator string, dest string) error {
	operation := func() (time.Time, error) {
		return d.attempt(ctx, locator, dest)
	}
	modTime, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(newBackOff()),
		backoff.WithMaxTries(downloadMaxTries),
		backoff.WithMaxElapsedTime(downloadMaxElapsed),
	)
	if err != nil {
		return err
	}
	if !modTime.IsZero() {
		_ = os.Chtimes(dest, modTime, modTime)
	}
	_, _ = fmt.Fprintf(d.out, messages.FetchDownloadedFmt, a.Name)
	return nil
}

func (d *Downloader) attempt(ctx context.Context, url string, dest string) (time.Time, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return time.Time{}, backoff.Permanent(fmt.Errorf(messages.FetchCreateRequestErrFmt, url, err))
	}

	resp, err := d.client.Do(req)
	if err != nil {
		var insecure *insecureRedirectError
		if errors.As(err, &insecure) {
			return time.Time{}, backoff.Permanent(insecure)
		}
		return time.Time{}, fmt.Errorf(messages.FetchFailedFmt, url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		statusErr := fmt.Errorf(messages.FetchUnexpectedStatusFmt, url, resp.Status)
		if resp.StatusCode >= 500 && resp.StatusCode <= 599 {
			return time.Time{}, statusErr
		}
		return time.Time{}, backoff.Permanent(statusErr)
	}

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o755)
	if err != nil {
		return time.Time{}, backoff.Permanent(fmt.Errorf(messages.FetchWriteDestFmt, dest, err))
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		_ = out.Close()
		return time.Time{}, fmt.Errorf(messages.FetchFailedFmt, url, err)
	}
	if err := out.Close(); err != nil {
		return time.Time{}, backoff.Permanent(fmt.Errorf(messages.FetchWriteDestFmt, dest, err))
	}

	var modTime time.Time
	if lastModified := resp.Header.Get("Last-Modified"); lastModified != "" {
		if parsed, perr := http.ParseTime(lastModified); perr == nil {
			modTime = parsed
		}
	}
	return modTime, nil
}
