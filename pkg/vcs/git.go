package vcs

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/rolandpakai/liferay-ckeditor/ckapi"
	"github.com/rolandpakai/liferay-ckeditor/pkg/config"
	"github.com/rolandpakai/liferay-ckeditor/pkg/tracing"
)

// Client is the git surface the workflows run against.
// Mutating operations shell out to the git command inside the submodule
// (or the host repository, where noted); read-only queries go through
// go-git. Fakes implement this interface in tests.
type Client interface {
	// SubmoduleInit makes sure the submodule is initialized and checked out.
	// Idempotent.
	SubmoduleInit(ctx context.Context) error
	// ResetAndClean discards all local changes and untracked files in the
	// submodule working tree.
	ResetAndClean(ctx context.Context) error
	// DetachHead detaches the submodule HEAD from whatever branch it is on.
	DetachHead(ctx context.Context) error
	// ForceBranch force-creates (or moves) the named branch to HEAD.
	ForceBranch(ctx context.Context, name string) error
	// Checkout checks out the given ref in the submodule.
	Checkout(ctx context.Context, ref string) error
	// NearestTag returns the nearest tag describing the submodule HEAD.
	NearestTag(ctx context.Context) (string, error)
	// Fetch updates remote refs and tags in the submodule.
	Fetch(ctx context.Context) error
	// ApplyPatch applies one patch file to the current submodule branch,
	// preserving authorship (git am). A failure leaves the apply in
	// progress; that state is deliberately not cleaned up here.
	ApplyPatch(ctx context.Context, path string) error
	// ExportPatches writes one patch file per commit in base..HEAD to outDir.
	ExportPatches(ctx context.Context, base string, outDir string) error
	// LogRange returns a one-line-per-commit listing of base..tip.
	LogRange(ctx context.Context, base, tip string) (string, error)
	// Rebase rebases branch onto the given ref inside the submodule.
	Rebase(ctx context.Context, onto, branch string) error
	// CommitSubmoduleBump stages the submodule path in the host repository
	// and commits it with the given message.
	CommitSubmoduleBump(ctx context.Context, message string) error

	// HasBranch reports whether the named local branch exists in the submodule.
	HasBranch(name string) (bool, error)
	// Tags lists all tag names in the submodule.
	Tags() ([]string, error)
	// HasTag reports whether the named tag exists in the submodule.
	HasTag(name string) (bool, error)
	// TagSubject returns the subject line of the commit a tag points at.
	TagSubject(name string) (string, error)
	// PinnedSubmoduleHash returns the submodule revision recorded by the
	// host repository's HEAD commit. This is the patch export base.
	PinnedSubmoduleHash() (string, error)
}

// Shell implements Client over a Runner plus go-git read queries.
type Shell struct {
	Layout config.Layout
	Run    Runner
}

func NewShell(layout config.Layout, runner Runner) *Shell {
	return &Shell{Layout: layout, Run: runner}
}

// git runs one git command with a span around it.
func (s *Shell) git(ctx context.Context, op string, dir string, args ...string) (string, error) {
	ctx, span := tracing.Start(ctx, "git "+op, trace.WithAttributes(
		tracing.AttrFullExecNameGit,
		attribute.String(tracing.AttrKeyCkExecOperation, op),
	))
	out, err := s.Run.Run(ctx, dir, "git", args...)
	tracing.EndWithStatus(span, err)
	return out, err
}

// Errors:
//
//    - liferay-ckeditor-error-git --
func (s *Shell) SubmoduleInit(ctx context.Context) error {
	_, err := s.git(ctx, tracing.AttrValueExecOperationGitSubmodule, s.Layout.Root,
		"submodule", "update", "--init", "ckeditor-dev")
	if err != nil {
		return ckapi.ErrorGit("failed to initialize submodule", err)
	}
	return nil
}

// Errors:
//
//    - liferay-ckeditor-error-git --
func (s *Shell) ResetAndClean(ctx context.Context) error {
	if _, err := s.git(ctx, "reset", s.Layout.SubmoduleDir(), "reset", "--hard"); err != nil {
		return ckapi.ErrorGit("failed to reset submodule", err)
	}
	if _, err := s.git(ctx, tracing.AttrValueExecOperationGitClean, s.Layout.SubmoduleDir(), "clean", "-dfx"); err != nil {
		return ckapi.ErrorGit("failed to clean submodule", err)
	}
	return nil
}

// Errors:
//
//    - liferay-ckeditor-error-git --
func (s *Shell) DetachHead(ctx context.Context) error {
	_, err := s.git(ctx, tracing.AttrValueExecOperationGitCheckout, s.Layout.SubmoduleDir(),
		"checkout", "--detach")
	if err != nil {
		return ckapi.ErrorGit("failed to detach submodule HEAD", err)
	}
	return nil
}

// Errors:
//
//    - liferay-ckeditor-error-git --
func (s *Shell) ForceBranch(ctx context.Context, name string) error {
	_, err := s.git(ctx, "branch", s.Layout.SubmoduleDir(), "branch", "-f", name)
	if err != nil {
		return ckapi.ErrorGit("failed to move branch "+name, err)
	}
	return nil
}

// Errors:
//
//    - liferay-ckeditor-error-git --
func (s *Shell) Checkout(ctx context.Context, ref string) error {
	_, err := s.git(ctx, tracing.AttrValueExecOperationGitCheckout, s.Layout.SubmoduleDir(),
		"checkout", ref)
	if err != nil {
		return ckapi.ErrorGit("failed to check out "+ref, err)
	}
	return nil
}

// Errors:
//
//    - liferay-ckeditor-error-git --
func (s *Shell) NearestTag(ctx context.Context) (string, error) {
	out, err := s.git(ctx, "describe", s.Layout.SubmoduleDir(),
		"describe", "--tags", "--abbrev=0")
	if err != nil {
		return "", ckapi.ErrorGit("failed to describe submodule HEAD", err)
	}
	return strings.TrimSpace(out), nil
}

// Errors:
//
//    - liferay-ckeditor-error-git --
func (s *Shell) Fetch(ctx context.Context) error {
	_, err := s.git(ctx, tracing.AttrValueExecOperationGitFetch, s.Layout.SubmoduleDir(),
		"fetch", "--tags", "origin")
	if err != nil {
		return ckapi.ErrorGit("failed to fetch submodule remote", err)
	}
	return nil
}

// Errors:
//
//    - liferay-ckeditor-error-patch-apply --
func (s *Shell) ApplyPatch(ctx context.Context, path string) error {
	_, err := s.git(ctx, tracing.AttrValueExecOperationGitAm, s.Layout.SubmoduleDir(),
		"am", path)
	if err != nil {
		return ckapi.ErrorPatchApply(path, err)
	}
	return nil
}

// Errors:
//
//    - liferay-ckeditor-error-git --
func (s *Shell) ExportPatches(ctx context.Context, base string, outDir string) error {
	_, err := s.git(ctx, tracing.AttrValueExecOperationGitFormatPatch, s.Layout.SubmoduleDir(),
		"format-patch", "-o", outDir, base)
	if err != nil {
		return ckapi.ErrorGit("failed to export patches", err)
	}
	return nil
}

// Errors:
//
//    - liferay-ckeditor-error-git --
func (s *Shell) LogRange(ctx context.Context, base, tip string) (string, error) {
	out, err := s.git(ctx, "log", s.Layout.SubmoduleDir(),
		"log", "--oneline", base+".."+tip)
	if err != nil {
		return "", ckapi.ErrorGit("failed to list commits "+base+".."+tip, err)
	}
	return out, nil
}

// Errors:
//
//    - liferay-ckeditor-error-git --
func (s *Shell) Rebase(ctx context.Context, onto, branch string) error {
	_, err := s.git(ctx, tracing.AttrValueExecOperationGitRebase, s.Layout.SubmoduleDir(),
		"rebase", onto, branch)
	if err != nil {
		return ckapi.ErrorGit("failed to rebase "+branch+" onto "+onto, err)
	}
	return nil
}

// Errors:
//
//    - liferay-ckeditor-error-git --
func (s *Shell) CommitSubmoduleBump(ctx context.Context, message string) error {
	if _, err := s.git(ctx, "add", s.Layout.Root, "add", "ckeditor-dev"); err != nil {
		return ckapi.ErrorGit("failed to stage submodule reference", err)
	}
	_, err := s.git(ctx, tracing.AttrValueExecOperationGitCommit, s.Layout.Root,
		"commit", "-m", message)
	if err != nil {
		return ckapi.ErrorGit("failed to commit submodule bump", err)
	}
	return nil
}
