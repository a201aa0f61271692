package appbase

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/rolandpakai/liferay-ckeditor/ckapi"
)

const VERSION = "v1.0.0"

var App = &cli.App{
	Name:    "ck",
	Version: VERSION,
	Usage:   "maintain the vendored, patched CKEditor inside this repository",

	Reader:    closedReader{}, // Replace with os.Stdin in real application; or other wiring, in tests.
	Writer:    panicWriter{},  // Replace with os.Stdout in real application; or other wiring, in tests.
	ErrWriter: panicWriter{},  // Replace with os.Stderr in real application; or other wiring, in tests.

	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			EnvVars: []string{"CK_DEBUG"},
		},
		&cli.BoolFlag{
			Name: "quiet",
		},
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Enable JSON API output",
		},
		&cli.StringFlag{
			Name:      "trace.file",
			Usage:     "Enable tracing and emit output to file",
			TakesFile: true,
		},
		&cli.BoolFlag{
			Name:  "trace.http.enable",
			Usage: "Enable remote tracing over http",
		},
		&cli.BoolFlag{
			Name:  "trace.http.insecure",
			Usage: "Allows insecure http",
		},
		&cli.StringFlag{
			Name:  "trace.http.endpoint",
			Usage: "Sets an endpoint for remote open-telemetry tracing collection",
		},
	},

	// The commands slice is updated by each package that contains commands.
	// Import the parent of this package to get that all done for you!
	Commands: []*cli.Command{},

	// Dispatch contract: no subcommand is a usage error; a string that
	// matches no subcommand prints usage but is not an error.
	Action: func(c *cli.Context) error {
		cli.ShowAppHelp(c)
		switch c.Args().Len() {
		case 0:
			return ckapi.ErrorUsage("a subcommand is required")
		case 1:
			return nil
		default:
			return ckapi.ErrorUsage("expected exactly one subcommand")
		}
	},

	ExitErrHandler: func(c *cli.Context, err error) {
		if err == nil {
			return
		}
		if c.Bool("json") {
			bytes, err := json.Marshal(err)
			if err != nil {
				panic("error marshaling json")
			}
			fmt.Fprintf(c.App.ErrWriter, "%s\n", string(bytes))
		} else {
			fmt.Fprintf(c.App.ErrWriter, "error: %s\n", err)
		}
	},
}

// Aaaand the other modifications to `urfave/cli` that are unfortunately only possible by manipulating globals:
func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:               "version", // And no short aliases.  "-v" is for "verbose"!
		Usage:              "print the version",
		DisableDefaultText: true,
	}
}

type closedReader struct{}

// Read is a dummy method that always returns EOF.
func (c closedReader) Read(p []byte) (int, error) {
	return 0, io.EOF
}

type panicWriter struct{}

// Write is a dummy method that always panics.  You're supposed to replace panicWriter values before use.
func (p panicWriter) Write(data []byte) (int, error) {
	panic("replace the Writer and ErrWriter on the App value in packages that use it!")
}
