package plugin

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rolandpakai/liferay-ckeditor/ckapi"
	"github.com/rolandpakai/liferay-ckeditor/pkg/logging"
)

// extract unzips the archive into pluginsDir, removing any prior
// extraction for the plugin name first. Archives carry a top-level
// directory matching the plugin name.
//
// Errors:
//
//    - liferay-ckeditor-error-io -- prior extraction cannot be removed
//    - liferay-ckeditor-error-extract -- archive is unreadable or contains bad paths
func extract(ctx context.Context, archive string, name string, pluginsDir string) error {
	log := logging.Ctx(ctx)

	prior := filepath.Join(pluginsDir, name)
	if err := os.RemoveAll(prior); err != nil {
		return ckapi.ErrorIo("failed to remove prior extraction", prior, err)
	}
	if err := os.MkdirAll(pluginsDir, 0755); err != nil {
		return ckapi.ErrorIo("failed to create plugins directory", pluginsDir, err)
	}

	r, err := zip.OpenReader(archive)
	if err != nil {
		return ckapi.ErrorExtract(archive, err)
	}
	defer r.Close()

	for _, f := range r.File {
		if err := extractFile(f, pluginsDir); err != nil {
			return ckapi.ErrorExtract(archive, err)
		}
	}

	log.Info("plugin", "extracted %s into %s", name, pluginsDir)
	return nil
}

func extractFile(f *zip.File, destDir string) error {
	// reject entries that would land outside destDir
	dest := filepath.Join(destDir, filepath.FromSlash(f.Name))
	if !strings.HasPrefix(dest, filepath.Clean(destDir)+string(os.PathSeparator)) {
		return fmt.Errorf("archive entry escapes destination: %q", f.Name)
	}

	if f.FileInfo().IsDir() {
		return os.MkdirAll(dest, 0755)
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return err
	}

	in, err := f.Open()
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, f.Mode())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
