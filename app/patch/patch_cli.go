package patchcli

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/urfave/cli/v2"
	"github.com/warpfork/go-fsx/osfs"

	appbase "github.com/rolandpakai/liferay-ckeditor/app/base"
	"github.com/rolandpakai/liferay-ckeditor/app/base/util"
	"github.com/rolandpakai/liferay-ckeditor/pkg/prompt"
	"github.com/rolandpakai/liferay-ckeditor/pkg/vcs"
	"github.com/rolandpakai/liferay-ckeditor/pkg/workflows"
)

func init() {
	appbase.App.Commands = append(appbase.App.Commands, patchCmdDef)
}

var patchCmdDef = &cli.Command{
	Name:  "patch",
	Usage: "Export the patch branch commits as patch files",
	Description: heredoc.Doc(`
		Regenerates patches/ from the commits on the patch branch relative
		to the submodule revision the host repository pins. Existing patch
		files are deleted first (after confirmation, with a preview of the
		commits to be exported); the result mirrors the commit range
		exactly.
	`),
	Action: util.ChainCmdMiddleware(cmdPatch,
		util.CmdMiddlewareNoArgs,
		util.CmdMiddlewareLogging,
		util.CmdMiddlewareTracingConfig,
		util.CmdMiddlewareTracingSpan,
	),
}

func cmdPatch(c *cli.Context) error {
	layout, err := util.Layout()
	if err != nil {
		return err
	}
	w := &workflows.Patch{
		Layout: layout,
		FS:     osfs.DirFS(layout.Root),
		Git:    vcs.NewShell(layout, vcs.ExecRunner{}),
		Prompt: prompt.NewTerm(c.App.Reader, c.App.Writer),
	}
	return w.Run(c.Context)
}
