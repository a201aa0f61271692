package workflows_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/serum-errors/go-serum"

	"github.com/rolandpakai/liferay-ckeditor/ckapi"
	"github.com/rolandpakai/liferay-ckeditor/pkg/config"
	"github.com/rolandpakai/liferay-ckeditor/pkg/workflows"
)

func TestBuildArgs(t *testing.T) {
	w := &workflows.Build{}
	qt.Check(t, w.BuildArgs(), qt.DeepEquals, []string{
		"--build-config", "../../../build-config.js",
	})

	w.Debug = true
	qt.Check(t, w.BuildArgs(), qt.DeepEquals, []string{
		"--build-config", "../../../build-config.js",
		"--leave-js-unminified", "--leave-css-unminified",
	})
}

func TestBuildDeclineRunsNothing(t *testing.T) {
	ctx, stdout, _ := testLog(t)
	runner := &fakeRunner{}
	w := &workflows.Build{
		Layout: config.DefaultLayout(t.TempDir()),
		Runner: runner,
		Prompt: &fakePrompt{confirms: []bool{false}},
	}

	err := w.Run(ctx)
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, runner.name, qt.Equals, "")
	qt.Assert(t, stdout.String(), qt.Equals, "aborting, nothing changed.\n")
}

func TestBuildScriptFailure(t *testing.T) {
	ctx, _, _ := testLog(t)
	w := &workflows.Build{
		Layout: config.DefaultLayout(t.TempDir()),
		Runner: &fakeRunner{err: fmt.Errorf("exit status 1")},
		Prompt: &fakePrompt{confirms: []bool{true}},
	}

	err := w.Run(ctx)
	qt.Assert(t, serum.Code(err), qt.Equals, ckapi.CodeBuild)
}

func TestBuildWithoutReleaseOutput(t *testing.T) {
	ctx, _, _ := testLog(t)
	w := &workflows.Build{
		Layout: config.DefaultLayout(t.TempDir()),
		Runner: &fakeRunner{},
		Prompt: &fakePrompt{confirms: []bool{true}},
	}

	err := w.Run(ctx)
	qt.Assert(t, serum.Code(err), qt.Equals, ckapi.CodeIo)
}

func TestBuildPublishesRelease(t *testing.T) {
	ctx, stdout, stderr := testLog(t)
	layout := config.DefaultLayout(t.TempDir())

	// simulate a prior publish plus a fresh build result
	qt.Assert(t, os.MkdirAll(layout.PublishDir(), 0755), qt.IsNil)
	stale := filepath.Join(layout.PublishDir(), "stale.js")
	qt.Assert(t, os.WriteFile(stale, []byte("old"), 0644), qt.IsNil)
	release := filepath.Join(layout.ReleaseDir(), "skins", "moono")
	qt.Assert(t, os.MkdirAll(release, 0755), qt.IsNil)
	fresh := filepath.Join(layout.ReleaseDir(), "ckeditor.js")
	qt.Assert(t, os.WriteFile(fresh, []byte("built"), 0644), qt.IsNil)

	runner := &fakeRunner{output: "building packages...\n"}
	w := &workflows.Build{
		Layout: layout,
		Runner: runner,
		Prompt: &fakePrompt{confirms: []bool{true}},
	}

	err := w.Run(ctx)
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, runner.dir, qt.Equals, layout.BuilderDir())
	qt.Assert(t, runner.name, qt.Equals, layout.BuildScript())
	qt.Assert(t, runner.args, qt.DeepEquals, w.BuildArgs())

	// build output is re-emitted through the tagged log
	qt.Assert(t, stderr.String(), qt.Contains, "building packages...")

	// publish dir is replaced wholesale
	_, statErr := os.Stat(stale)
	qt.Assert(t, os.IsNotExist(statErr), qt.IsTrue)
	body, readErr := os.ReadFile(filepath.Join(layout.PublishDir(), "ckeditor.js"))
	qt.Assert(t, readErr, qt.IsNil)
	qt.Assert(t, string(body), qt.Equals, "built")
	_, statErr = os.Stat(filepath.Join(layout.PublishDir(), "skins", "moono"))
	qt.Assert(t, statErr, qt.IsNil)

	qt.Assert(t, stdout.String(), qt.Contains, "build published to "+layout.PublishDir())
}
