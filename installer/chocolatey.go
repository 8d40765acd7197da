package installer

import (
	"github.com/pkg/errors"

	"github.com/haskell-ci/setup-haskell/env"
	"github.com/haskell-ci/setup-haskell/exec"
	"github.com/haskell-ci/setup-haskell/tool"
)

// ChocolateyStrategy installs GHC and cabal on Windows.
type ChocolateyStrategy struct {
	Runner exec.Runner
}

func (*ChocolateyStrategy) Name() string { return Chocolatey.String() }

func (*ChocolateyStrategy) Supports(t tool.Tool, os env.OS) bool {
	return os == env.Windows && (t == tool.GHC || t == tool.Cabal)
}

func (c *ChocolateyStrategy) Attempt(t tool.Tool, version string) error {
	// -m allows side-by-side versions, -r limits output to machine-readable lines.
	_, stderr, err := c.Runner.Run(exec.Cmd{
		Name: "choco",
		Argv: []string{"install", t.String(), "--version", version, "-m", "--no-progress", "-r"},
	})
	if err != nil {
		return errors.Wrapf(err, "choco install %s %s failed: %s", t, version, stderr)
	}
	return nil
}
