package tracing

import "go.opentelemetry.io/otel/attribute"

// Span attribute keys used by ck
const (
	AttrKeyCkErrorCode     = "ck.error.code"
	AttrKeyCkExecName      = "ck.exec.name"
	AttrKeyCkExecOperation = "ck.exec.operation"
	AttrKeyCkPluginName    = "ck.plugin.name"
	AttrKeyCkTag           = "ck.tag"
)

// Attribute values
const (
	AttrValueExecNameGit   = "git"
	AttrValueExecNameBuild = "build.sh"

	AttrValueExecOperationGitSubmodule   = "submodule"
	AttrValueExecOperationGitCheckout    = "checkout"
	AttrValueExecOperationGitClean       = "clean"
	AttrValueExecOperationGitFormatPatch = "format-patch"
	AttrValueExecOperationGitAm          = "am"
	AttrValueExecOperationGitFetch       = "fetch"
	AttrValueExecOperationGitRebase      = "rebase"
	AttrValueExecOperationGitCommit      = "commit"
)

// Enumerated attributes
var (
	AttrFullExecNameGit   = attribute.String(AttrKeyCkExecName, AttrValueExecNameGit)
	AttrFullExecNameBuild = attribute.String(AttrKeyCkExecName, AttrValueExecNameBuild)
)
