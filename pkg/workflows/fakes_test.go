package workflows_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/rolandpakai/liferay-ckeditor/ckapi"
	"github.com/rolandpakai/liferay-ckeditor/pkg/logging"
)

// testLog returns a context carrying a logger that writes into the
// returned buffers, so tests can assert on output without a terminal.
func testLog(t *testing.T) (context.Context, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	log := logging.NewLogger(&stdout, &stderr, false, false, false)
	return log.WithContext(context.Background()), &stdout, &stderr
}

// fakeGit records every call in order and answers queries from canned
// fields. Set failCall to the name of a recorded call to make that call
// return a git error.
type fakeGit struct {
	calls []string

	failCall string

	branchExists bool
	tags         []string
	nearestTag   string
	pinned       string
	tagSubject   string
	logRange     string

	// applyFail makes ApplyPatch fail for paths containing the substring.
	applyFail string
}

func (g *fakeGit) record(call string) error {
	g.calls = append(g.calls, call)
	if g.failCall != "" && strings.HasPrefix(call, g.failCall) {
		return ckapi.ErrorGit(call, fmt.Errorf("scripted failure"))
	}
	return nil
}

func (g *fakeGit) SubmoduleInit(ctx context.Context) error { return g.record("submodule-init") }
func (g *fakeGit) ResetAndClean(ctx context.Context) error { return g.record("reset-and-clean") }
func (g *fakeGit) DetachHead(ctx context.Context) error    { return g.record("detach-head") }
func (g *fakeGit) ForceBranch(ctx context.Context, name string) error {
	return g.record("force-branch " + name)
}
func (g *fakeGit) Checkout(ctx context.Context, ref string) error {
	return g.record("checkout " + ref)
}
func (g *fakeGit) NearestTag(ctx context.Context) (string, error) {
	if err := g.record("nearest-tag"); err != nil {
		return "", err
	}
	return g.nearestTag, nil
}
func (g *fakeGit) Fetch(ctx context.Context) error { return g.record("fetch") }
func (g *fakeGit) ApplyPatch(ctx context.Context, path string) error {
	g.calls = append(g.calls, "apply-patch "+path)
	if g.applyFail != "" && strings.Contains(path, g.applyFail) {
		return ckapi.ErrorPatchApply(path, fmt.Errorf("scripted conflict"))
	}
	return nil
}
func (g *fakeGit) ExportPatches(ctx context.Context, base string, outDir string) error {
	return g.record("export-patches " + base)
}
func (g *fakeGit) LogRange(ctx context.Context, base, tip string) (string, error) {
	if err := g.record("log-range " + base + ".." + tip); err != nil {
		return "", err
	}
	return g.logRange, nil
}
func (g *fakeGit) Rebase(ctx context.Context, onto, branch string) error {
	return g.record("rebase " + branch + " onto " + onto)
}
func (g *fakeGit) CommitSubmoduleBump(ctx context.Context, message string) error {
	return g.record("commit-bump " + message)
}

func (g *fakeGit) HasBranch(name string) (bool, error) { return g.branchExists, nil }
func (g *fakeGit) Tags() ([]string, error)             { return g.tags, nil }
func (g *fakeGit) HasTag(name string) (bool, error) {
	for _, t := range g.tags {
		if t == name {
			return true, nil
		}
	}
	return false, nil
}
func (g *fakeGit) TagSubject(name string) (string, error) { return g.tagSubject, nil }
func (g *fakeGit) PinnedSubmoduleHash() (string, error)   { return g.pinned, nil }

// mutations returns the recorded calls that change repository state.
// Queries and the idempotent submodule init are filtered out.
func (g *fakeGit) mutations() []string {
	var out []string
	for _, c := range g.calls {
		switch {
		case c == "submodule-init", c == "nearest-tag", c == "fetch",
			strings.HasPrefix(c, "log-range"):
			continue
		}
		out = append(out, c)
	}
	return out
}

// fakePrompt answers confirmations and questions from scripted queues.
type fakePrompt struct {
	confirms []bool
	answers  []string

	asked []string
}

func (p *fakePrompt) Confirm(question string) (bool, error) {
	p.asked = append(p.asked, question)
	if len(p.confirms) == 0 {
		return false, nil
	}
	answer := p.confirms[0]
	p.confirms = p.confirms[1:]
	return answer, nil
}

func (p *fakePrompt) Ask(question string) (string, error) {
	p.asked = append(p.asked, question)
	if len(p.answers) == 0 {
		return "", nil
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}

// fakeFetcher records plugin fetches as "name version" pairs.
type fakeFetcher struct {
	fetched []string
	err     error
}

func (f *fakeFetcher) Fetch(ctx context.Context, name, version string) error {
	if f.err != nil {
		return f.err
	}
	f.fetched = append(f.fetched, name+" "+version)
	return nil
}

// fakeRunner scripts the build script invocation.
type fakeRunner struct {
	dir    string
	name   string
	args   []string
	output string
	err    error
}

func (r *fakeRunner) Run(ctx context.Context, dir string, name string, args ...string) (string, error) {
	panic("workflows only stream the build script")
}

func (r *fakeRunner) Stream(ctx context.Context, dir string, out io.Writer, name string, args ...string) error {
	r.dir = dir
	r.name = name
	r.args = args
	if r.output != "" {
		fmt.Fprint(out, r.output)
	}
	return r.err
}
