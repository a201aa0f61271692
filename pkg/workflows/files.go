package workflows

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/warpfork/go-fsx"

	"github.com/rolandpakai/liferay-ckeditor/ckapi"
)

// listPatches returns the patch file names under patches/, in lexical
// order. A missing directory is the same as an empty one.
//
// Errors:
//
//    - liferay-ckeditor-error-io -- patch directory cannot be read
func listPatches(fsys fsx.FS) ([]string, error) {
	var names []string
	err := fsx.WalkDir(fsys, "patches", func(path string, d fsx.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), ".patch") {
			names = append(names, d.Name())
		}
		return nil
	})
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, ckapi.ErrorIo("failed to list patch directory", "patches", err)
	}
	return names, nil
}
