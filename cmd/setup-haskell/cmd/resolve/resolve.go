// Package resolve implements `setup-haskell resolve`, which prints the
// versions an install run would use without installing anything.
package resolve

import (
	"github.com/urfave/cli"

	"github.com/haskell-ci/setup-haskell/actions"
	"github.com/haskell-ci/setup-haskell/cmd/setup-haskell/display"
	"github.com/haskell-ci/setup-haskell/cmd/setup-haskell/flags"
	"github.com/haskell-ci/setup-haskell/cmd/setup-haskell/setup"
	"github.com/haskell-ci/setup-haskell/config"
)

// Cmd exports the `resolve` CLI command.
var Cmd = cli.Command{
	Name:   "resolve",
	Usage:  "Print the resolved tool versions as JSON",
	Action: Run,
	Flags:  flags.WithGlobalFlags(flags.WithVersionFlags(nil)),
}

var _ cli.ActionFunc = Run

func Run(ctx *cli.Context) error {
	err := setup.SetContext(ctx, actions.FromEnv())
	if err != nil {
		return err
	}

	opts, err := config.Resolve(config.CurrentRequest(), config.Catalog())
	if err != nil {
		return err
	}
	return display.JSON(opts)
}
