package util

import (
	"os"

	"github.com/rolandpakai/liferay-ckeditor/ckapi"
	"github.com/rolandpakai/liferay-ckeditor/pkg/config"
)

// Layout resolves the host repository layout from the working directory.
// The tool is expected to be invoked from the host repository root.
//
// Errors:
//
//    - liferay-ckeditor-error-io --
func Layout() (config.Layout, error) {
	pwd, err := os.Getwd()
	if err != nil {
		return config.Layout{}, ckapi.ErrorIo("failed to get working directory", "", err)
	}
	return config.DefaultLayout(pwd), nil
}
