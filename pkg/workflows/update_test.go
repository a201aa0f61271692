package workflows_test

import (
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/serum-errors/go-serum"

	"github.com/rolandpakai/liferay-ckeditor/ckapi"
	"github.com/rolandpakai/liferay-ckeditor/pkg/config"
	"github.com/rolandpakai/liferay-ckeditor/pkg/workflows"
)

func TestUpdateRequiresReleaseTags(t *testing.T) {
	ctx, _, _ := testLog(t)
	git := &fakeGit{tags: []string{"experimental", "v-broken"}}
	w := &workflows.Update{
		Layout:  config.DefaultLayout("/repo"),
		Git:     git,
		Plugins: &fakeFetcher{},
		Prompt:  &fakePrompt{},
	}

	err := w.Run(ctx)
	qt.Assert(t, serum.Code(err), qt.Equals, ckapi.CodePrecondition)
}

func TestUpdateRejectsUnknownTag(t *testing.T) {
	ctx, _, _ := testLog(t)
	git := &fakeGit{tags: []string{"4.21.0", "4.22.1"}}
	plugins := &fakeFetcher{}
	w := &workflows.Update{
		Layout:  config.DefaultLayout("/repo"),
		Git:     git,
		Plugins: plugins,
		Prompt:  &fakePrompt{answers: []string{"9.99.9"}},
	}

	err := w.Run(ctx)
	qt.Assert(t, serum.Code(err), qt.Equals, ckapi.CodeInvalidTag)
	qt.Assert(t, git.mutations(), qt.HasLen, 0)
	qt.Assert(t, plugins.fetched, qt.HasLen, 0)
}

func TestUpdateDeclineChangesNothing(t *testing.T) {
	ctx, stdout, _ := testLog(t)
	git := &fakeGit{tags: []string{"4.21.0", "4.22.1"}}
	w := &workflows.Update{
		Layout:  config.DefaultLayout("/repo"),
		Git:     git,
		Plugins: &fakeFetcher{},
		Prompt:  &fakePrompt{answers: []string{"4.22.1"}, confirms: []bool{false}},
	}

	err := w.Run(ctx)
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, git.mutations(), qt.HasLen, 0)
	qt.Assert(t, stdout.String(), qt.Contains, "aborting, nothing changed.")
}

func TestUpdateListsNewestCandidatesFirst(t *testing.T) {
	ctx, stdout, _ := testLog(t)
	git := &fakeGit{tags: []string{
		"4.8.0", "4.9.0", "4.10.0", "4.11.0", "4.12.0", "4.13.0", "4.14.0", "nightly",
	}}
	w := &workflows.Update{
		Layout:  config.DefaultLayout("/repo"),
		Git:     git,
		Plugins: &fakeFetcher{},
		Prompt:  &fakePrompt{answers: []string{"4.14.0"}, confirms: []bool{false}},
	}

	err := w.Run(ctx)
	qt.Assert(t, err, qt.IsNil)
	out := stdout.String()
	qt.Assert(t, out, qt.Contains, "most recent CKEditor versions:\n  4.14.0\n  4.13.0\n  4.12.0\n  4.11.0\n  4.10.0\n  4.9.0\n")
	// only six candidates are offered
	qt.Assert(t, out, qt.Not(qt.Contains), "4.8.0")
}

func TestUpdateBumpAndRebase(t *testing.T) {
	ctx, stdout, _ := testLog(t)
	git := &fakeGit{
		tags:       []string{"4.21.0", "4.22.1"},
		tagSubject: "CKEditor 4.22.1",
	}
	plugins := &fakeFetcher{}
	w := &workflows.Update{
		Layout:  config.DefaultLayout("/repo"),
		Git:     git,
		Plugins: plugins,
		Prompt:  &fakePrompt{answers: []string{"4.22.1"}, confirms: []bool{true, true}},
	}

	err := w.Run(ctx)
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, git.mutations(), qt.DeepEquals, []string{
		"reset-and-clean",
		"checkout 4.22.1",
		"commit-bump Update CKEditor to 4.22.1\n\nCKEditor 4.22.1",
		"rebase " + config.PatchBranch + " onto 4.22.1",
	})
	qt.Assert(t, plugins.fetched, qt.DeepEquals, []string{"scayt 4.22.1", "wsc 4.22.1"})
	qt.Assert(t, stdout.String(), qt.Contains, "update to 4.22.1 complete.")
}

func TestUpdateSkipsRebaseOnDecline(t *testing.T) {
	ctx, stdout, _ := testLog(t)
	git := &fakeGit{
		tags:       []string{"4.22.1"},
		tagSubject: "CKEditor 4.22.1",
	}
	w := &workflows.Update{
		Layout:  config.DefaultLayout("/repo"),
		Git:     git,
		Plugins: &fakeFetcher{},
		Prompt:  &fakePrompt{answers: []string{"4.22.1"}, confirms: []bool{true, false}},
	}

	err := w.Run(ctx)
	qt.Assert(t, err, qt.IsNil)
	for _, c := range git.calls {
		qt.Assert(t, c, qt.Not(qt.Contains), "rebase")
	}
	qt.Assert(t, stdout.String(), qt.Contains, "skipping rebase.")
}
