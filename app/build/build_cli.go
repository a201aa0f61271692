package buildcli

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/urfave/cli/v2"

	appbase "github.com/rolandpakai/liferay-ckeditor/app/base"
	"github.com/rolandpakai/liferay-ckeditor/app/base/util"
	"github.com/rolandpakai/liferay-ckeditor/pkg/config"
	"github.com/rolandpakai/liferay-ckeditor/pkg/prompt"
	"github.com/rolandpakai/liferay-ckeditor/pkg/vcs"
	"github.com/rolandpakai/liferay-ckeditor/pkg/workflows"
)

func init() {
	appbase.App.Commands = append(appbase.App.Commands, buildCmdDef)
}

var buildCmdDef = &cli.Command{
	Name:  "build",
	Usage: "Build CKEditor and replace the publish directory with the output",
	Description: heredoc.Doc(`
		Runs CKEditor's bundled build script against build-config.js and,
		on success, replaces ckeditor/ with the release output. Set CK_DEBUG
		to any non-empty value to leave the output unminified.
	`),
	Action: util.ChainCmdMiddleware(cmdBuild,
		util.CmdMiddlewareNoArgs,
		util.CmdMiddlewareLogging,
		util.CmdMiddlewareTracingConfig,
		util.CmdMiddlewareTracingSpan,
	),
}

func cmdBuild(c *cli.Context) error {
	layout, err := util.Layout()
	if err != nil {
		return err
	}
	w := &workflows.Build{
		Layout: layout,
		Runner: vcs.ExecRunner{},
		Prompt: prompt.NewTerm(c.App.Reader, c.App.Writer),
		Debug:  config.Debug(),
	}
	return w.Run(c.Context)
}
