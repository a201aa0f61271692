package workflows

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"go.opentelemetry.io/otel/trace"

	"github.com/rolandpakai/liferay-ckeditor/ckapi"
	"github.com/rolandpakai/liferay-ckeditor/pkg/config"
	"github.com/rolandpakai/liferay-ckeditor/pkg/logging"
	"github.com/rolandpakai/liferay-ckeditor/pkg/prompt"
	"github.com/rolandpakai/liferay-ckeditor/pkg/tracing"
	"github.com/rolandpakai/liferay-ckeditor/pkg/vcs"
)

// relBuildConfig is the build configuration path as seen from the
// builder's working directory (ckeditor-dev/dev/builder).
const relBuildConfig = "../../../build-config.js"

// Build runs CKEditor's bundled build script and replaces the publish
// directory with the release output.
type Build struct {
	Layout config.Layout
	Runner vcs.Runner
	Prompt prompt.Prompter
	// Debug leaves the build output unminified.
	Debug bool
}

// BuildArgs returns the arguments passed to the build script.
func (w *Build) BuildArgs() []string {
	args := []string{"--build-config", relBuildConfig}
	if w.Debug {
		args = append(args, "--leave-js-unminified", "--leave-css-unminified")
	}
	return args
}

// Errors:
//
//    - liferay-ckeditor-error-build -- the build script exits non-zero
//    - liferay-ckeditor-error-io -- publishing the release output fails
func (w *Build) Run(ctx context.Context) error {
	log := logging.Ctx(ctx)

	ok, err := w.Prompt.Confirm("Build CKEditor now?")
	if err != nil {
		return err
	}
	if !ok {
		log.Out("aborting, nothing changed.")
		return nil
	}

	buildCtx, span := tracing.Start(ctx, "ckeditor build",
		trace.WithAttributes(tracing.AttrFullExecNameBuild))
	err = w.Runner.Stream(buildCtx, w.Layout.BuilderDir(), log.InfoWriter("build"),
		w.Layout.BuildScript(), w.BuildArgs()...)
	tracing.EndWithStatus(span, err)
	if err != nil {
		return ckapi.ErrorBuild(err)
	}

	// Only replace the publish dir once the build demonstrably produced output.
	release := w.Layout.ReleaseDir()
	if _, err := os.Stat(release); err != nil {
		return ckapi.ErrorIo("build produced no release output", release, err)
	}

	publish := w.Layout.PublishDir()
	if err := os.RemoveAll(publish); err != nil {
		return ckapi.ErrorIo("failed to clear publish directory", publish, err)
	}
	if err := copyDir(release, publish); err != nil {
		return ckapi.ErrorIo("failed to publish release output", publish, err)
	}

	log.Out("build published to %s", publish)
	return nil
}

// copyDir copies src into dst recursively, preserving file modes.
func copyDir(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		return copyFile(path, target, info.Mode())
	})
}

func copyFile(src, dst string, mode os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
