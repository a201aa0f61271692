package setupcli

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/urfave/cli/v2"
	"github.com/warpfork/go-fsx/osfs"

	appbase "github.com/rolandpakai/liferay-ckeditor/app/base"
	"github.com/rolandpakai/liferay-ckeditor/app/base/util"
	"github.com/rolandpakai/liferay-ckeditor/pkg/plugin"
	"github.com/rolandpakai/liferay-ckeditor/pkg/prompt"
	"github.com/rolandpakai/liferay-ckeditor/pkg/vcs"
	"github.com/rolandpakai/liferay-ckeditor/pkg/workflows"
)

func init() {
	appbase.App.Commands = append(appbase.App.Commands, setupCmdDef)
}

var setupCmdDef = &cli.Command{
	Name:  "setup",
	Usage: "Reset ckeditor-dev onto the patch branch and reapply the stored patches",
	Description: heredoc.Doc(`
		Initializes the ckeditor-dev submodule, discards every local change
		and untracked file inside it, moves the patch branch to the pinned
		revision, downloads the plugin archives for that version, and
		applies the patch files from patches/ in order.

		Destructive steps ask for confirmation first; declining leaves the
		repository untouched.
	`),
	Action: util.ChainCmdMiddleware(cmdSetup,
		util.CmdMiddlewareNoArgs,
		util.CmdMiddlewareLogging,
		util.CmdMiddlewareTracingConfig,
		util.CmdMiddlewareTracingSpan,
	),
}

func cmdSetup(c *cli.Context) error {
	layout, err := util.Layout()
	if err != nil {
		return err
	}
	w := &workflows.Setup{
		Layout:  layout,
		FS:      osfs.DirFS(layout.Root),
		Git:     vcs.NewShell(layout, vcs.ExecRunner{}),
		Plugins: plugin.NewFetcher(layout),
		Prompt:  prompt.NewTerm(c.App.Reader, c.App.Writer),
	}
	return w.Run(c.Context)
}
