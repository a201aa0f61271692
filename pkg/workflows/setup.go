package workflows

import (
	"context"
	"path/filepath"

	"github.com/MakeNowJust/heredoc"
	"github.com/warpfork/go-fsx"

	"github.com/rolandpakai/liferay-ckeditor/pkg/config"
	"github.com/rolandpakai/liferay-ckeditor/pkg/logging"
	"github.com/rolandpakai/liferay-ckeditor/pkg/plugin"
	"github.com/rolandpakai/liferay-ckeditor/pkg/prompt"
	"github.com/rolandpakai/liferay-ckeditor/pkg/vcs"
)

// RecoveryRecipe is printed when a patch fails to apply. The submodule
// is left mid-apply so the operator can finish or abandon the series.
var RecoveryRecipe = heredoc.Doc(`
	Patch application halted. The submodule is left mid-apply.
	To finish by hand, inside ckeditor-dev/ either:
	    resolve the conflicts, 'git add' the files, then 'git am --continue'
	or abandon the attempt with:
	    'git am --abort'
`)

// Setup resets the submodule onto the patch branch, fetches the plugin
// archives for the checked-out version, and reapplies the stored patch
// series.
type Setup struct {
	Layout  config.Layout
	FS      fsx.FS // rooted at Layout.Root
	Git     vcs.Client
	Plugins plugin.Fetcher
	Prompt  prompt.Prompter
}

// Errors:
//
//    - liferay-ckeditor-error-git --
//    - liferay-ckeditor-error-http --
//    - liferay-ckeditor-error-extract --
//    - liferay-ckeditor-error-io --
//    - liferay-ckeditor-error-patch-apply --
func (w *Setup) Run(ctx context.Context) error {
	log := logging.Ctx(ctx)

	if err := w.Git.SubmoduleInit(ctx); err != nil {
		return err
	}

	ok, err := w.Prompt.Confirm("This will reset ckeditor-dev and discard all local changes. Continue?")
	if err != nil {
		return err
	}
	if !ok {
		log.Out("aborting, nothing changed.")
		return nil
	}

	if err := w.Git.ResetAndClean(ctx); err != nil {
		return err
	}
	if err := w.Git.DetachHead(ctx); err != nil {
		return err
	}
	if err := w.Git.ForceBranch(ctx, config.PatchBranch); err != nil {
		return err
	}
	if err := w.Git.Checkout(ctx, config.PatchBranch); err != nil {
		return err
	}

	version, err := w.Git.NearestTag(ctx)
	if err != nil {
		return err
	}
	log.Info("setup", "checked out branch %q at CKEditor %s", config.PatchBranch, version)

	for _, name := range config.PluginNames {
		if err := w.Plugins.Fetch(ctx, name, version); err != nil {
			return err
		}
	}

	patches, err := listPatches(w.FS)
	if err != nil {
		return err
	}
	if len(patches) == 0 {
		log.Out("no patch files found, skipping patch application.")
		return nil
	}
	for _, p := range patches {
		log.Info("setup", "applying %s", p)
		if err := w.Git.ApplyPatch(ctx, filepath.Join(w.Layout.PatchesDir(), p)); err != nil {
			log.OutRaw(RecoveryRecipe)
			return err
		}
	}

	log.Out("setup complete: %d patch(es) applied.", len(patches))
	return nil
}
