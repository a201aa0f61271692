package plugin

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/rolandpakai/liferay-ckeditor/ckapi"
	"github.com/rolandpakai/liferay-ckeditor/pkg/config"
	"github.com/rolandpakai/liferay-ckeditor/pkg/logging"
	"github.com/rolandpakai/liferay-ckeditor/pkg/tracing"
)

// Fetcher downloads one plugin archive and extracts it into the plugins
// directory, replacing any prior extraction for that plugin name.
type Fetcher interface {
	Fetch(ctx context.Context, name, version string) error
}

// NewFetcher picks the fetcher implementation from the configured
// download base: s3:// bases go through the s3 mirror, everything else
// is plain HTTP.
func NewFetcher(layout config.Layout) Fetcher {
	base := config.DownloadBase()
	if strings.HasPrefix(base, "s3://") {
		return &S3Fetcher{Layout: layout, Base: base}
	}
	return &HTTPFetcher{Layout: layout, Base: base}
}

// archivePath is the fixed URL layout CKEditor uses for plugin releases.
func archivePath(name, version string) string {
	return fmt.Sprintf("%s/releases/%s_%s.zip", name, name, version)
}

// tempArchive returns a unique temp file path for a downloaded archive.
func tempArchive(name string) string {
	return filepath.Join(os.TempDir(), fmt.Sprintf("ck-%s-%s.zip", name, uuid.NewString()))
}

// HTTPFetcher downloads plugin archives over plain HTTP(S).
type HTTPFetcher struct {
	Layout config.Layout
	Base   string
}

// Errors:
//
//    - liferay-ckeditor-error-http -- download fails or server does not return 200
//    - liferay-ckeditor-error-io -- temp file handling fails
//    - liferay-ckeditor-error-extract -- archive extraction fails
func (f *HTTPFetcher) Fetch(ctx context.Context, name, version string) error {
	log := logging.Ctx(ctx)
	url := fmt.Sprintf("%s/%s", f.Base, archivePath(name, version))
	log.Info("plugin", "downloading %s...", url)

	ctx, span := tracing.Start(ctx, "fetch plugin", trace.WithAttributes(
		attribute.String(tracing.AttrKeyCkPluginName, name),
	))
	defer span.End()

	tmp := tempArchive(name)
	out, err := os.Create(tmp)
	if err != nil {
		return ckapi.ErrorIo("failed to create temp file", tmp, err)
	}
	defer os.Remove(tmp)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		out.Close()
		return ckapi.ErrorHttp(url, err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		out.Close()
		return ckapi.ErrorHttp(url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		out.Close()
		return ckapi.ErrorHttp(url, fmt.Errorf("unexpected status: %s", resp.Status))
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		return ckapi.ErrorHttp(url, err)
	}
	if err := out.Close(); err != nil {
		return ckapi.ErrorIo("failed to finish writing archive", tmp, err)
	}

	return extract(ctx, tmp, name, f.Layout.PluginsDir())
}
