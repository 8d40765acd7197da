// Package install implements `setup-haskell install`.
package install

import (
	"fmt"

	"github.com/apex/log"
	"github.com/urfave/cli"

	"github.com/haskell-ci/setup-haskell/actions"
	"github.com/haskell-ci/setup-haskell/cabal"
	"github.com/haskell-ci/setup-haskell/cache"
	"github.com/haskell-ci/setup-haskell/catalog"
	"github.com/haskell-ci/setup-haskell/cmd/setup-haskell/display"
	"github.com/haskell-ci/setup-haskell/cmd/setup-haskell/flags"
	"github.com/haskell-ci/setup-haskell/cmd/setup-haskell/setup"
	"github.com/haskell-ci/setup-haskell/cmd/setup-haskell/version"
	"github.com/haskell-ci/setup-haskell/config"
	"github.com/haskell-ci/setup-haskell/download"
	"github.com/haskell-ci/setup-haskell/env"
	"github.com/haskell-ci/setup-haskell/errors"
	"github.com/haskell-ci/setup-haskell/exec"
	"github.com/haskell-ci/setup-haskell/installer"
	"github.com/haskell-ci/setup-haskell/tool"
)

// Cmd exports the `install` CLI command.
var Cmd = cli.Command{
	Name:   "install",
	Usage:  "Install the requested Haskell tools (default command)",
	Action: Run,
	Flags:  flags.WithGlobalFlags(flags.WithVersionFlags(nil)),
}

var _ cli.ActionFunc = Run

// Installer installs one tool version.
type Installer interface {
	Install(t tool.Tool, version string) (installer.Location, error)
}

// Actions is the part of the CI runner that install talks to.
type Actions interface {
	Group(name string, fn func() error) error
	SetOutput(name, value string) error
}

// Deps are the effects an install run performs.
type Deps struct {
	Env       env.Context
	Installer Installer
	Actions   Actions
	Runner    exec.Runner
}

func Run(ctx *cli.Context) error {
	runner := actions.FromEnv()
	err := setup.SetContext(ctx, runner)
	if err != nil {
		return err
	}

	host, err := env.FromHost()
	if err != nil {
		return errors.UnknownError(err, "could not detect the runner environment")
	}

	store := cache.Store{Root: host.ToolCache, Arch: host.Arch}
	client := &download.Client{Dir: host.Temp, UserAgent: version.UserAgent(), Progress: display.InProgress}
	deps := Deps{
		Env:       host,
		Installer: installer.New(host, store, client, exec.System{}, runner),
		Actions:   runner,
		Runner:    exec.System{},
	}

	_, err = Do(config.CurrentRequest(), config.Catalog(), deps)
	return err
}

// Do resolves a request and installs every enabled tool. Configuration
// problems are reported before anything is installed. The run stops at the
// first tool that cannot be installed.
func Do(req config.Request, c catalog.Catalog, deps Deps) (config.Options, error) {
	opts, err := config.Resolve(req, c)
	if err != nil {
		return config.Options{}, err
	}
	log.WithField("options", opts).Debug("resolved options")

	for _, t := range opts.Enabled() {
		resolved := opts.Program(t).Resolved
		err := deps.Actions.Group(fmt.Sprintf("Installing %s version %s", t, resolved), func() error {
			loc, err := deps.Installer.Install(t, resolved)
			if err != nil {
				return err
			}
			log.WithFields(log.Fields{"tool": t, "dir": loc.Dir, "source": loc.Source}).Debug("installed")
			return deps.Actions.SetOutput(fmt.Sprintf("%s-version", t), resolved)
		})
		if err != nil {
			return opts, err
		}
	}

	if opts.StackSetup {
		err := deps.Actions.Group("Pre-installing GHC with stack", func() error {
			return stackSetup(deps, opts.GHC.Resolved)
		})
		if err != nil {
			return opts, err
		}
	}

	if opts.Cabal.Enable {
		configurer := &cabal.Configurer{Env: deps.Env, Runner: deps.Runner, Outputs: deps.Actions}
		err := deps.Actions.Group("Setting up cabal", func() error {
			// stack projects download their own index.
			return configurer.Configure(!opts.Stack.Enable)
		})
		if err != nil {
			return opts, err
		}
	}

	return opts, nil
}

func stackSetup(deps Deps, ghc string) error {
	argv := []string{"setup"}
	if ghc != "" {
		argv = append(argv, ghc)
	}
	_, stderr, err := deps.Runner.Run(exec.Cmd{Name: "stack", Argv: argv})
	if err != nil {
		log.WithField("stderr", stderr).Debug("stack setup failed")
		return err
	}
	return nil
}
