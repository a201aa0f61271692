package ckapi

import (
	"github.com/serum-errors/go-serum"
)

const (
	CodeUsage        = "liferay-ckeditor-error-usage"
	CodePrecondition = "liferay-ckeditor-error-precondition"
	CodeGit          = "liferay-ckeditor-error-git"
	CodeHttp         = "liferay-ckeditor-error-http"
	CodeExtract      = "liferay-ckeditor-error-extract"
	CodeBuild        = "liferay-ckeditor-error-build"
	CodePatchApply   = "liferay-ckeditor-error-patch-apply"
	CodeIo           = "liferay-ckeditor-error-io"
	CodeInvalidTag   = "liferay-ckeditor-error-invalid-tag"
)

// ErrorUsage is returned when a command is invoked with the wrong shape of arguments.
//
// Errors:
//
//    - liferay-ckeditor-error-usage --
func ErrorUsage(reason string) error {
	return serum.Error(CodeUsage,
		serum.WithMessageTemplate("usage error: {{reason}}"),
		serum.WithDetail("reason", reason),
	)
}

// ErrorPrecondition is returned when a workflow cannot start because the
// repository is not in the state it requires. The message carries the
// remediation hint.
//
// Errors:
//
//    - liferay-ckeditor-error-precondition --
func ErrorPrecondition(reason string, remedy string) error {
	return serum.Error(CodePrecondition,
		serum.WithMessageTemplate("{{reason}} ({{remedy}})"),
		serum.WithDetail("reason", reason),
		serum.WithDetail("remedy", remedy),
	)
}

// ErrorGit is returned when a git command or query fails
//
// Errors:
//
//    - liferay-ckeditor-error-git --
func ErrorGit(context string, cause error) error {
	result := serum.Errorf(CodeGit, "git error: %s: %w", context, cause)
	addDetails(result, [][2]string{
		{"context", context},
	})
	return result
}

// ErrorHttp is returned when downloading a plugin archive fails
//
// Errors:
//
//    - liferay-ckeditor-error-http --
func ErrorHttp(url string, cause error) error {
	result := serum.Errorf(CodeHttp, "download of %q failed: %w", url, cause)
	addDetails(result, [][2]string{
		{"url", url},
	})
	return result
}

// ErrorExtract is returned when unzipping a plugin archive fails
//
// Errors:
//
//    - liferay-ckeditor-error-extract --
func ErrorExtract(archive string, cause error) error {
	result := serum.Errorf(CodeExtract, "extraction of %q failed: %w", archive, cause)
	addDetails(result, [][2]string{
		{"archive", archive},
	})
	return result
}

// ErrorBuild is returned when the CKEditor build script exits non-zero
//
// Errors:
//
//    - liferay-ckeditor-error-build --
func ErrorBuild(cause error) error {
	return serum.Errorf(CodeBuild, "ckeditor build failed: %w", cause)
}

// ErrorPatchApply is returned when applying a patch file fails partway.
// The submodule is left in the in-progress apply state on purpose; the
// recipe tells the operator how to continue or abort.
//
// Errors:
//
//    - liferay-ckeditor-error-patch-apply --
func ErrorPatchApply(patchFile string, cause error) error {
	result := serum.Errorf(CodePatchApply,
		"failed to apply patch %q: %w", patchFile, cause)
	addDetails(result, [][2]string{
		{"patchFile", patchFile},
	})
	return result
}

// ErrorIo wraps generic I/O errors from the Go stdlib
//
// Errors:
//
//    - liferay-ckeditor-error-io --
func ErrorIo(context string, path string, cause error) error {
	result := serum.Errorf(CodeIo,
		"io error: %s: %w", context, cause)
	addDetails(result, [][2]string{{"context", context}, {"path", path}})
	return result
}

// ErrorInvalidTag is returned when the user types a tag that does not
// exist in the submodule.
//
// Errors:
//
//    - liferay-ckeditor-error-invalid-tag --
func ErrorInvalidTag(tag string) error {
	return serum.Error(CodeInvalidTag,
		serum.WithMessageTemplate("tag {{tag|q}} does not exist"),
		serum.WithDetail("tag", tag),
	)
}

// addDetails is a helper method to get around the fact that doing a type coercion within
// an exported function is not currently allowed by serum.
func addDetails(err error, details [][2]string) {
	s := err.(*serum.ErrorValue)
	s.Data.Details = append(s.Data.Details, details...)
}
