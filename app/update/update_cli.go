package updatecli

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/urfave/cli/v2"

	appbase "github.com/rolandpakai/liferay-ckeditor/app/base"
	"github.com/rolandpakai/liferay-ckeditor/app/base/util"
	"github.com/rolandpakai/liferay-ckeditor/pkg/plugin"
	"github.com/rolandpakai/liferay-ckeditor/pkg/prompt"
	"github.com/rolandpakai/liferay-ckeditor/pkg/vcs"
	"github.com/rolandpakai/liferay-ckeditor/pkg/workflows"
)

func init() {
	appbase.App.Commands = append(appbase.App.Commands, updateCmdDef)
}

var updateCmdDef = &cli.Command{
	Name:  "update",
	Usage: "Move the vendored editor to a newer upstream version",
	Description: heredoc.Doc(`
		Fetches upstream tags, presents the most recent release versions,
		checks out the chosen tag, commits the submodule bump in the host
		repository, re-downloads the plugin archives, and optionally
		rebases the patch branch onto the new tag.
	`),
	Action: util.ChainCmdMiddleware(cmdUpdate,
		util.CmdMiddlewareNoArgs,
		util.CmdMiddlewareLogging,
		util.CmdMiddlewareTracingConfig,
		util.CmdMiddlewareTracingSpan,
	),
}

func cmdUpdate(c *cli.Context) error {
	layout, err := util.Layout()
	if err != nil {
		return err
	}
	w := &workflows.Update{
		Layout:  layout,
		Git:     vcs.NewShell(layout, vcs.ExecRunner{}),
		Plugins: plugin.NewFetcher(layout),
		Prompt:  prompt.NewTerm(c.App.Reader, c.App.Writer),
	}
	return w.Run(c.Context)
}
