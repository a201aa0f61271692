package config

import (
	"os"
	"path/filepath"
)

const (
	// EnvCkDebug switches the build workflow to leave output unminified.
	// Any non-empty value counts.
	EnvCkDebug = "CK_DEBUG"
	// EnvCkDownloadBase overrides the base address for plugin archive downloads.
	// Accepts http(s):// bases as well as s3://bucket/prefix mirrors.
	EnvCkDownloadBase = "CK_DOWNLOAD_BASE"
)

// DefaultDownloadBase is where CKEditor publishes plugin release archives.
const DefaultDownloadBase = "https://download.ckeditor.com"

// PatchBranch is the long-lived branch inside the submodule that holds
// our customizations on top of the pinned upstream revision.
const PatchBranch = "liferay"

// PluginNames lists the plugin archives fetched on every setup and update.
var PluginNames = []string{"scayt", "wsc"}

// Layout resolves the fixed relative paths of the host repository.
// The zero value is not useful; construct with DefaultLayout.
type Layout struct {
	// Root is the host repository root. Every other path hangs off it.
	Root string
}

func DefaultLayout(root string) Layout {
	return Layout{Root: root}
}

// SubmoduleDir is the vendored CKEditor source tree.
func (l Layout) SubmoduleDir() string {
	return filepath.Join(l.Root, "ckeditor-dev")
}

// PatchesDir holds one exported patch file per commit on the patch branch.
func (l Layout) PatchesDir() string {
	return filepath.Join(l.Root, "patches")
}

// PluginsDir holds the extracted plugin archives, one subdir per plugin.
func (l Layout) PluginsDir() string {
	return filepath.Join(l.Root, "plugins")
}

// PublishDir receives the build output. Fully replaced on every build.
func (l Layout) PublishDir() string {
	return filepath.Join(l.Root, "ckeditor")
}

// BuildConfig is the build configuration consumed by CKEditor's builder.
func (l Layout) BuildConfig() string {
	return filepath.Join(l.Root, "build-config.js")
}

// BuilderDir is the working directory for CKEditor's own build script.
func (l Layout) BuilderDir() string {
	return filepath.Join(l.SubmoduleDir(), "dev", "builder")
}

// BuildScript is CKEditor's bundled build entrypoint.
func (l Layout) BuildScript() string {
	return filepath.Join(l.BuilderDir(), "build.sh")
}

// ReleaseDir is where the build script leaves its release output.
func (l Layout) ReleaseDir() string {
	return filepath.Join(l.BuilderDir(), "release", "ckeditor")
}

// Debug reports whether the unminified-output mode is requested.
func Debug() bool {
	return os.Getenv(EnvCkDebug) != ""
}

// DownloadBase returns the plugin archive base, honoring the env override.
func DownloadBase() string {
	if v := os.Getenv(EnvCkDownloadBase); v != "" {
		return v
	}
	return DefaultDownloadBase
}
