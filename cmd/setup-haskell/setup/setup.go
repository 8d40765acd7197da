// Package setup implements initialization for all application packages.
package setup

import (
	"github.com/apex/log"
	"github.com/urfave/cli"

	"github.com/haskell-ci/setup-haskell/actions"
	"github.com/haskell-ci/setup-haskell/cmd/setup-haskell/display"
	"github.com/haskell-ci/setup-haskell/cmd/setup-haskell/version"
	"github.com/haskell-ci/setup-haskell/config"
)

// SetContext initializes all application-level packages.
func SetContext(ctx *cli.Context, runner *actions.Runner) error {
	// Logging comes first so that configuration problems are reported.
	log.SetHandler(log.HandlerFunc(display.Handler))
	log.SetLevel(log.DebugLevel)

	err := config.Init(ctx, runner)
	if err != nil {
		return err
	}

	display.SetInteractive(config.Interactive())
	display.SetDebug(config.Debug())
	log.WithField("log", display.File()).Debug("logging initialized")

	if v, err := version.Semver(); err == nil {
		log.WithField("version", v.String()).Debug("release build")
	} else {
		log.WithError(err).WithField("build", version.Short()).Debug("unreleased build")
	}

	return nil
}
