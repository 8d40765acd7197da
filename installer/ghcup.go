package installer

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/pkg/errors"

	"github.com/haskell-ci/setup-haskell/env"
	"github.com/haskell-ci/setup-haskell/exec"
	"github.com/haskell-ci/setup-haskell/tool"
)

// GhcupStrategy installs GHC and cabal with ghcup, which is itself fetched on
// first use and kept in the tool cache.
type GhcupStrategy struct {
	Env     env.Context
	Runner  exec.Runner
	Fetcher Fetcher
	Cache   Cache
	Sources Sources
}

func (*GhcupStrategy) Name() string { return Ghcup.String() }

func (*GhcupStrategy) Supports(t tool.Tool, os env.OS) bool {
	return (os == env.Linux || os == env.Darwin) && (t == tool.GHC || t == tool.Cabal)
}

func (g *GhcupStrategy) Attempt(t tool.Tool, version string) error {
	bin, err := g.bootstrap()
	if err != nil {
		return err
	}

	subcommand := "install"
	if t == tool.Cabal {
		subcommand = "install-cabal"
	}
	if _, stderr, err := g.Runner.Run(exec.Cmd{Name: bin, Argv: []string{subcommand, version}}); err != nil {
		return errors.Wrapf(err, "ghcup %s %s failed: %s", subcommand, version, stderr)
	}

	// Several GHCs can be installed side by side; only the one that is set
	// is linked into ~/.ghcup/bin.
	if t == tool.GHC {
		if _, stderr, err := g.Runner.Run(exec.Cmd{Name: bin, Argv: []string{"set", version}}); err != nil {
			return errors.Wrapf(err, "ghcup set %s failed: %s", version, stderr)
		}
	}
	return nil
}

// bootstrap returns the path of an executable ghcup, downloading it if it is
// not cached yet.
func (g *GhcupStrategy) bootstrap() (string, error) {
	v := g.Sources.GhcupVersion
	dir := g.Cache.Find("ghcup", v)
	if dir == "" {
		platform := "linux"
		if g.Env.OS == env.Darwin {
			platform = "apple-darwin"
		}
		url := fmt.Sprintf(g.Sources.GhcupURL, v, platform, v)
		file, err := g.Fetcher.Download(url)
		if err != nil {
			return "", errors.Wrap(err, "could not download ghcup")
		}

		staging, err := ioutil.TempDir(g.Env.Temp, "ghcup-")
		if err != nil {
			return "", err
		}
		defer os.RemoveAll(staging)
		if err := os.Rename(file, filepath.Join(staging, "ghcup")); err != nil {
			return "", errors.Wrap(err, "could not stage ghcup")
		}

		dir, err = g.Cache.CacheDir(staging, "ghcup", v)
		if err != nil {
			return "", err
		}
	} else {
		log.WithField("dir", dir).Debug("using cached ghcup")
	}

	bin := filepath.Join(dir, "ghcup")
	if err := os.Chmod(bin, 0755); err != nil {
		return "", errors.Wrap(err, "could not make ghcup executable")
	}
	return bin, nil
}
