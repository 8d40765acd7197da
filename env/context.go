// Package env describes the machine that tools are installed onto.
//
// Everything the installer would otherwise read from process-global state
// (environment variables, the home directory, runtime.GOOS) is collected into
// a Context once at startup and passed down explicitly. Tests build Contexts
// by hand and never touch the real environment.
package env

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/apex/log"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
)

// Context is an explicit snapshot of the host environment.
type Context struct {
	OS   OS
	Arch string // Tool cache architecture key, e.g. "x64".

	Root       string // Filesystem root that system-wide installs live under.
	Home       string // User home directory.
	ToolCache  string // Root of the shared tool cache ($RUNNER_TOOL_CACHE).
	Temp       string // Scratch space for downloads ($RUNNER_TEMP).
	Chocolatey string // Chocolatey install root ($ChocolateyInstall).
}

// FromHost builds a Context from the current process.
func FromHost() (Context, error) {
	o, err := ParseOS(runtime.GOOS)
	if err != nil {
		return Context{}, err
	}

	home, err := homedir.Dir()
	if err != nil {
		return Context{}, errors.Wrap(err, "could not determine home directory")
	}

	ctx := Context{
		OS:         o,
		Arch:       arch(runtime.GOARCH),
		Root:       string(filepath.Separator),
		Home:       home,
		ToolCache:  os.Getenv("RUNNER_TOOL_CACHE"),
		Temp:       os.Getenv("RUNNER_TEMP"),
		Chocolatey: os.Getenv("ChocolateyInstall"),
	}
	if ctx.ToolCache == "" {
		ctx.ToolCache = filepath.Join(home, ".cache", "setup-haskell", "tools")
	}
	if ctx.Temp == "" {
		ctx.Temp = os.TempDir()
	}
	if ctx.Chocolatey == "" && o == Windows {
		ctx.Chocolatey = `C:\ProgramData\chocolatey`
	}

	log.WithFields(log.Fields{
		"os":         ctx.OS,
		"arch":       ctx.Arch,
		"home":       ctx.Home,
		"tool-cache": ctx.ToolCache,
		"temp":       ctx.Temp,
	}).Debug("detected environment")
	return ctx, nil
}

// Executable returns the platform file name of an executable.
func (c Context) Executable(name string) string {
	return name + c.OS.ExeSuffix()
}

func arch(goarch string) string {
	switch goarch {
	case "amd64":
		return "x64"
	case "386":
		return "x86"
	}
	return goarch
}
