// Package cabal configures cabal-install after it has been installed.
package cabal

import (
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"github.com/pkg/errors"

	"github.com/haskell-ci/setup-haskell/env"
	"github.com/haskell-ci/setup-haskell/exec"
	"github.com/haskell-ci/setup-haskell/files"
)

// WindowsStoreDir is a short store path; the default one under AppData makes
// builds of deep package trees exceed the Windows path length limit.
const WindowsStoreDir = `C:\sr`

// Outputs publishes step outputs.
type Outputs interface {
	SetOutput(name, value string) error
}

// Configurer writes the cabal user configuration for CI use.
type Configurer struct {
	Env     env.Context
	Runner  exec.Runner
	Outputs Outputs
}

// Configure creates the user config, disables the curl/wget transports in
// favor of cabal's built-in HTTP client, points the store somewhere short on
// Windows, and publishes the store location as the `cabal-store` output. If
// updateIndex is set, the package index is downloaded too.
func (c *Configurer) Configure(updateIndex bool) error {
	if err := c.run("user-config", "update"); err != nil {
		return err
	}

	file, err := c.ConfigFile()
	if err != nil {
		return err
	}
	log.Infof("The cabal config file is: %s", file)

	if err := files.Append(file, "http-transport: plain-http\n"); err != nil {
		return errors.Wrap(err, "could not write cabal config")
	}

	store := filepath.Join(c.Env.Home, ".cabal", "store")
	if c.Env.OS == env.Windows {
		store = WindowsStoreDir
		if err := files.Append(file, "store-dir: "+store+"\n"); err != nil {
			return errors.Wrap(err, "could not write cabal config")
		}
	}
	if err := c.Outputs.SetOutput("cabal-store", store); err != nil {
		return err
	}

	if err := c.run("user-config", "update"); err != nil {
		return err
	}
	if updateIndex {
		return c.run("update")
	}
	return nil
}

// ConfigFile returns the path of the user config. cabal prints it on the last
// line of its help text.
func (c *Configurer) ConfigFile() (string, error) {
	stdout, stderr, err := c.Runner.Run(exec.Cmd{Name: "cabal", Argv: []string{"--help"}})
	if err != nil {
		return "", errors.Wrapf(err, "cabal --help failed: %s", stderr)
	}
	file := lastLine(stdout + stderr)
	if file == "" {
		return "", errors.New("could not find the cabal config file in `cabal --help`")
	}
	return file, nil
}

func (c *Configurer) run(argv ...string) error {
	_, stderr, err := c.Runner.Run(exec.Cmd{Name: "cabal", Argv: argv})
	if err != nil {
		return errors.Wrapf(err, "cabal %s failed: %s", strings.Join(argv, " "), stderr)
	}
	return nil
}

func lastLine(s string) string {
	lines := strings.Split(s, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if l := strings.TrimSpace(lines[i]); l != "" {
			return l
		}
	}
	return ""
}
