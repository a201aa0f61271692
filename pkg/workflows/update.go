package workflows

import (
	"context"
	"fmt"

	"github.com/rolandpakai/liferay-ckeditor/ckapi"
	"github.com/rolandpakai/liferay-ckeditor/pkg/config"
	"github.com/rolandpakai/liferay-ckeditor/pkg/logging"
	"github.com/rolandpakai/liferay-ckeditor/pkg/plugin"
	"github.com/rolandpakai/liferay-ckeditor/pkg/prompt"
	"github.com/rolandpakai/liferay-ckeditor/pkg/vcs"
)

// candidateCount is how many release tags are presented for selection.
const candidateCount = 6

// Update moves the vendored editor to a newer upstream tag, commits the
// bump in the host repository, refreshes the plugins, and optionally
// rebases the patch branch.
type Update struct {
	Layout  config.Layout
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
//    - liferay-ckeditor-error-invalid-tag -- typed tag does not exist
//    - liferay-ckeditor-error-precondition -- no release tags available
func (w *Update) Run(ctx context.Context) error {
	log := logging.Ctx(ctx)

	if err := w.Git.SubmoduleInit(ctx); err != nil {
		return err
	}
	if err := w.Git.Fetch(ctx); err != nil {
		return err
	}

	tags, err := w.Git.Tags()
	if err != nil {
		return err
	}
	releases := vcs.SortedReleaseTags(tags)
	if len(releases) == 0 {
		return ckapi.ErrorPrecondition(
			"no release tags found in ckeditor-dev",
			"check that the submodule remote is reachable")
	}
	if len(releases) > candidateCount {
		releases = releases[:candidateCount]
	}

	log.Out("most recent CKEditor versions:")
	for _, t := range releases {
		log.Out("  %s", t)
	}

	tag, err := w.Prompt.Ask("Which version do you want to update to?")
	if err != nil {
		return err
	}
	exists, err := w.Git.HasTag(tag)
	if err != nil {
		return err
	}
	if !exists {
		return ckapi.ErrorInvalidTag(tag)
	}

	ok, err := w.Prompt.Confirm(fmt.Sprintf("Check out %s and commit the version bump?", tag))
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
	if err := w.Git.Checkout(ctx, tag); err != nil {
		return err
	}

	subject, err := w.Git.TagSubject(tag)
	if err != nil {
		return err
	}
	message := fmt.Sprintf("Update CKEditor to %s\n\n%s", tag, subject)
	if err := w.Git.CommitSubmoduleBump(ctx, message); err != nil {
		return err
	}
	log.Info("update", "committed bump to %s", tag)

	for _, name := range config.PluginNames {
		if err := w.Plugins.Fetch(ctx, name, tag); err != nil {
			return err
		}
	}

	ok, err = w.Prompt.Confirm(fmt.Sprintf("Rebase the %q patch branch onto %s?", config.PatchBranch, tag))
	if err != nil {
		return err
	}
	if !ok {
		log.Out("skipping rebase.")
		return nil
	}
	// A conflicted rebase surfaces git's own exit status; no detection
	// or resolution is attempted here.
	if err := w.Git.Rebase(ctx, tag, config.PatchBranch); err != nil {
		return err
	}

	log.Out("update to %s complete.", tag)
	return nil
}
