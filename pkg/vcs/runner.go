package vcs

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/rolandpakai/liferay-ckeditor/pkg/logging"
)

// Runner executes external commands. The indirection exists so workflow
// logic can be exercised against a scripted fake.
type Runner interface {
	// Run executes the command in dir and returns its stdout.
	Run(ctx context.Context, dir string, name string, args ...string) (string, error)
	// Stream executes the command in dir with stdout and stderr wired to out.
	Stream(ctx context.Context, dir string, out io.Writer, name string, args ...string) error
}

// ExecRunner implements Runner with os/exec.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, dir string, name string, args ...string) (string, error) {
	log := logging.Ctx(ctx)
	log.Debug("exec", "%s %s", name, strings.Join(args, " "))
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return stdout.String(), fmt.Errorf("%w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}

func (ExecRunner) Stream(ctx context.Context, dir string, out io.Writer, name string, args ...string) error {
	log := logging.Ctx(ctx)
	log.Debug("exec", "%s %s", name, strings.Join(args, " "))
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = out
	cmd.Stderr = out
	return cmd.Run()
}
