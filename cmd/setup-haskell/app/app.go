package app

import (
	"github.com/urfave/cli"

	"github.com/haskell-ci/setup-haskell/cmd/setup-haskell/cmd/install"
	"github.com/haskell-ci/setup-haskell/cmd/setup-haskell/cmd/resolve"
	"github.com/haskell-ci/setup-haskell/cmd/setup-haskell/flags"
	"github.com/haskell-ci/setup-haskell/cmd/setup-haskell/version"
)

func New() *cli.App {
	return &cli.App{
		Name:    "setup-haskell",
		Usage:   "Install GHC, cabal-install and stack on a CI runner (https://github.com/haskell-ci/setup-haskell/)",
		Version: version.String(),
		Action:  install.Run,
		Flags:   flags.Combine(install.Cmd.Flags, resolve.Cmd.Flags),
		Commands: []cli.Command{
			install.Cmd,
			resolve.Cmd,
		},
	}
}
