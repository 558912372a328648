package export

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tinytelemetry/slides/internal/model"
)

// defaultArtifactName is used when the artifact URL has no usable file name.
const defaultArtifactName = "presentation"

// Downloader saves server-hosted presentation artifacts to disk.
type Downloader struct {
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewDownloader creates a downloader. A nil client uses http.DefaultClient.
func NewDownloader(httpClient *http.Client, logger zerolog.Logger) *Downloader {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Downloader{
		httpClient: httpClient,
		logger:     logger.With().Str("component", "export").Logger(),
	}
}

// Download fetches rawURL into dir and returns the written path. The URL is
// used as given; nothing is checked before the request is made.
func (d *Downloader) Download(ctx context.Context, rawURL, dir string) (string, error) {
	if strings.TrimSpace(rawURL) == "" {
		return "", model.ExportError("download", model.ErrNoArtifact)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", model.ExportError("build download request", err)
	}
	resp, err := d.httpClient.Do(req)
	if err != nil {
		return "", model.TransportError("download presentation", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", model.ServiceError(fmt.Sprintf("download returned status %d", resp.StatusCode), nil)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", model.ExportError("create export directory", err)
	}
	dst := filepath.Join(dir, artifactName(rawURL))

	f, err := os.Create(dst)
	if err != nil {
		return "", model.ExportError("create file", err)
	}
	n, copyErr := io.Copy(f, resp.Body)
	closeErr := f.Close()
	if copyErr != nil {
		_ = os.Remove(dst)
		return "", model.TransportError("read presentation", copyErr)
	}
	if closeErr != nil {
		return "", model.ExportError("close file", closeErr)
	}

	d.logger.Info().Str("url", rawURL).Str("path", dst).Int64("bytes", n).Msg("artifact downloaded")
	return dst, nil
}

// artifactName derives a local file name from the URL path.
func artifactName(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return defaultArtifactName
	}
	name := path.Base(u.Path)
	if name == "" || name == "." || name == "/" {
		return defaultArtifactName
	}
	return name
}
