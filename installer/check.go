package installer

import (
	"path/filepath"

	"github.com/apex/log"
	"github.com/pkg/errors"

	"github.com/haskell-ci/setup-haskell/env"
	"github.com/haskell-ci/setup-haskell/exec"
	"github.com/haskell-ci/setup-haskell/files"
	"github.com/haskell-ci/setup-haskell/tool"
)

// Location is a directory verified to contain a working tool.
type Location struct {
	Tool    tool.Tool
	Version string
	Dir     string
	Source  string // "cache" or the conventional location that matched.
}

// Installed checks the tool cache, then each conventional location for the
// tool on this platform. The first directory that contains the tool's
// executable is registered onto the PATH and returned. Directories without
// the executable are ignored, as are shared directories whose executable
// reports a different version.
func (i *Installer) Installed(t tool.Tool, version string) (Location, bool, error) {
	candidates := []candidate{{source: "cache", dir: i.Cache.Find(t.String(), version)}}
	candidates = append(candidates, conventional(i.Env, t, version)...)

	for _, c := range candidates {
		if c.dir == "" {
			continue
		}
		dir, ok := i.resolve(t, c.dir)
		if !ok {
			continue
		}
		if c.shared && !i.reports(t, dir, version) {
			continue
		}

		loc := Location{Tool: t, Version: version, Dir: dir, Source: c.source}
		if err := i.register(loc); err != nil {
			return Location{}, false, err
		}
		log.WithFields(log.Fields{
			"tool":    t,
			"version": version,
			"dir":     dir,
			"source":  c.source,
		}).Infof("Found %s %s at %s. Setup successful.", t, version, dir)
		return loc, true, nil
	}
	return Location{}, false, nil
}

// resolve returns the directory holding the tool's executable: either dir
// itself or its bin/ subdirectory.
func (i *Installer) resolve(t tool.Tool, dir string) (string, bool) {
	exe := i.Env.Executable(t.Executable())
	for _, d := range []string{dir, filepath.Join(dir, "bin")} {
		ok, err := files.Executable(i.Env.OS == env.Windows, d, exe)
		if err != nil {
			log.WithError(err).WithField("dir", d).Debug("could not inspect candidate")
			continue
		}
		if ok {
			return d, true
		}
	}
	log.WithFields(log.Fields{"tool": t, "dir": dir}).Debug("no executable in candidate directory")
	return "", false
}

// reports runs `<exe> --numeric-version` in dir and compares the output.
func (i *Installer) reports(t tool.Tool, dir, version string) bool {
	if i.Runner == nil {
		return false
	}
	exe := filepath.Join(dir, i.Env.Executable(t.Executable()))
	if _, err := exec.WhichVersion(i.Runner, version, []string{"--numeric-version"}, exe); err != nil {
		log.WithFields(log.Fields{"tool": t, "version": version, "dir": dir}).Debug("shared install has a different version")
		return false
	}
	return true
}

func (i *Installer) register(loc Location) error {
	if prev, ok := i.active[loc.Tool]; ok {
		if prev.Dir == loc.Dir {
			return nil
		}
		log.WithFields(log.Fields{
			"tool":     loc.Tool,
			"previous": prev.Dir,
			"dir":      loc.Dir,
		}).Warn("replacing the active install of a tool")
	}
	if err := i.Registrar.AddPath(loc.Dir); err != nil {
		return errors.Wrapf(err, "could not add %s to PATH", loc.Dir)
	}
	if i.active == nil {
		i.active = make(map[tool.Tool]Location)
	}
	i.active[loc.Tool] = loc
	return nil
}
