package workflows

import (
	"context"
	"os"
	"path/filepath"

	"github.com/warpfork/go-fsx"

	"github.com/rolandpakai/liferay-ckeditor/ckapi"
	"github.com/rolandpakai/liferay-ckeditor/pkg/config"
	"github.com/rolandpakai/liferay-ckeditor/pkg/logging"
	"github.com/rolandpakai/liferay-ckeditor/pkg/prompt"
	"github.com/rolandpakai/liferay-ckeditor/pkg/vcs"
)

// Patch exports the commits on the patch branch as one patch file per
// commit, relative to the submodule revision pinned by the host repo.
type Patch struct {
	Layout config.Layout
	FS     fsx.FS // rooted at Layout.Root
	Git    vcs.Client
	Prompt prompt.Prompter
}

// Errors:
//
//    - liferay-ckeditor-error-git --
//    - liferay-ckeditor-error-io --
//    - liferay-ckeditor-error-precondition -- patch branch missing
func (w *Patch) Run(ctx context.Context) error {
	log := logging.Ctx(ctx)

	if err := w.Git.SubmoduleInit(ctx); err != nil {
		return err
	}

	hasBranch, err := w.Git.HasBranch(config.PatchBranch)
	if err != nil {
		return err
	}
	if !hasBranch {
		return ckapi.ErrorPrecondition(
			"branch \""+config.PatchBranch+"\" does not exist in ckeditor-dev",
			"run 'ck setup' first")
	}

	// The export base is what the host repo records for the submodule,
	// not whatever the submodule HEAD happens to be right now.
	base, err := w.Git.PinnedSubmoduleHash()
	if err != nil {
		return err
	}

	if err := w.Git.Checkout(ctx, config.PatchBranch); err != nil {
		return err
	}

	existing, err := listPatches(w.FS)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		preview, err := w.Git.LogRange(ctx, base, config.PatchBranch)
		if err != nil {
			return err
		}
		log.Out("commits to be exported:")
		log.OutRaw(preview)
		ok, err := w.Prompt.Confirm("Delete the existing patch files and re-export?")
		if err != nil {
			return err
		}
		if !ok {
			log.Out("aborting, nothing changed.")
			return nil
		}
		for _, p := range existing {
			path := filepath.Join(w.Layout.PatchesDir(), p)
			if err := os.Remove(path); err != nil {
				return ckapi.ErrorIo("failed to delete stale patch file", path, err)
			}
		}
	}

	if err := w.Git.ExportPatches(ctx, base, w.Layout.PatchesDir()); err != nil {
		return err
	}

	log.Out("patches exported to %s", w.Layout.PatchesDir())
	return nil
}
