package workflows_test

import (
	"context"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/warpfork/go-testmark"

	"github.com/rolandpakai/liferay-ckeditor/pkg/config"
	"github.com/rolandpakai/liferay-ckeditor/pkg/workflows"
)

// TestTranscripts drives the workflows with scripted prompts and pins
// their stdout against the fixtures in testdata/transcripts.md.
func TestTranscripts(t *testing.T) {
	doc, err := testmark.ReadFile("testdata/transcripts.md")
	qt.Assert(t, err, qt.IsNil)

	scenarios := map[string]func(ctx context.Context) error{
		"setup/decline/stdout": func(ctx context.Context) error {
			w := &workflows.Setup{
				Layout:  config.DefaultLayout("/repo"),
				FS:      patchFS("0001-a.patch"),
				Git:     &fakeGit{},
				Plugins: &fakeFetcher{},
				Prompt:  &fakePrompt{confirms: []bool{false}},
			}
			return w.Run(ctx)
		},
		"setup/patch-failure/stdout": func(ctx context.Context) error {
			w := &workflows.Setup{
				Layout:  config.DefaultLayout("/repo"),
				FS:      patchFS("0001-a.patch", "0002-b.patch"),
				Git:     &fakeGit{nearestTag: "4.22.1", applyFail: "0002"},
				Plugins: &fakeFetcher{},
				Prompt:  &fakePrompt{confirms: []bool{true}},
			}
			err := w.Run(ctx)
			if err == nil {
				t.Fatal("expected the scripted patch failure")
			}
			return nil
		},
		"update/select-and-bump/stdout": func(ctx context.Context) error {
			w := &workflows.Update{
				Layout:  config.DefaultLayout("/repo"),
				Git:     &fakeGit{tags: []string{"4.21.0", "4.22.1"}, tagSubject: "CKEditor 4.22.1"},
				Plugins: &fakeFetcher{},
				Prompt:  &fakePrompt{answers: []string{"4.22.1"}, confirms: []bool{true, true}},
			}
			return w.Run(ctx)
		},
	}

	for _, hunk := range doc.DataHunks {
		hunk := hunk
		t.Run(hunk.Name, func(t *testing.T) {
			run, ok := scenarios[hunk.Name]
			if !ok {
				t.Fatalf("no scenario for hunk %q", hunk.Name)
			}
			ctx, stdout, _ := testLog(t)
			qt.Assert(t, run(ctx), qt.IsNil)
			qt.Assert(t,
				strings.TrimRight(stdout.String(), "\n"),
				qt.Equals,
				strings.TrimRight(string(hunk.Body), "\n"))
		})
	}
}
