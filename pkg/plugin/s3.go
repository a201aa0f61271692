package plugin

import (
	"context"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/rolandpakai/liferay-ckeditor/ckapi"
	"github.com/rolandpakai/liferay-ckeditor/pkg/config"
	"github.com/rolandpakai/liferay-ckeditor/pkg/logging"
	"github.com/rolandpakai/liferay-ckeditor/pkg/tracing"
)

// S3Fetcher downloads plugin archives from an s3://bucket/prefix mirror
// that carries the same key layout as the upstream download site.
type S3Fetcher struct {
	Layout config.Layout
	Base   string
}

// splitBase splits s3://bucket/prefix into bucket and prefix.
func (f *S3Fetcher) splitBase() (bucket, prefix string) {
	trimmed := strings.TrimPrefix(f.Base, "s3://")
	parts := strings.SplitN(trimmed, "/", 2)
	bucket = parts[0]
	if len(parts) == 2 {
		prefix = parts[1]
	}
	return
}

// Errors:
//
//    - liferay-ckeditor-error-http -- s3 access or download fails
//    - liferay-ckeditor-error-io -- temp file handling fails
//    - liferay-ckeditor-error-extract -- archive extraction fails
func (f *S3Fetcher) Fetch(ctx context.Context, name, version string) error {
	log := logging.Ctx(ctx)
	bucket, prefix := f.splitBase()
	key := path.Join(prefix, archivePath(name, version))
	addr := fmt.Sprintf("s3://%s/%s", bucket, key)
	log.Info("plugin", "downloading %s...", addr)

	ctx, span := tracing.Start(ctx, "fetch plugin", trace.WithAttributes(
		attribute.String(tracing.AttrKeyCkPluginName, name),
	))
	defer span.End()

	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return ckapi.ErrorHttp(addr, err)
	}
	downloader := manager.NewDownloader(s3.NewFromConfig(cfg))

	tmp := tempArchive(name)
	out, err := os.Create(tmp)
	if err != nil {
		return ckapi.ErrorIo("failed to create temp file", tmp, err)
	}
	defer os.Remove(tmp)

	_, err = downloader.Download(ctx, out, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		out.Close()
		return ckapi.ErrorHttp(addr, err)
	}
	if err := out.Close(); err != nil {
		return ckapi.ErrorIo("failed to finish writing archive", tmp, err)
	}

	return extract(ctx, tmp, name, f.Layout.PluginsDir())
}
