// Package installer installs Haskell tools onto a CI machine.
//
// For each (tool, version) the Installer first looks for an existing working
// install. If there is none, it runs the install strategies declared for the
// tool on the current platform one at a time, re-checking for a working
// install after every attempt, until one succeeds. A strategy exiting cleanly
// proves nothing by itself; only the re-check counts.
package installer

import (
	"fmt"

	"github.com/apex/log"

	"github.com/haskell-ci/setup-haskell/env"
	"github.com/haskell-ci/setup-haskell/errors"
	"github.com/haskell-ci/setup-haskell/exec"
	"github.com/haskell-ci/setup-haskell/tool"
)

// Cache is the shared tool cache.
type Cache interface {
	Find(tool, version string) string
	CacheDir(src, tool, version string) (string, error)
}

// Fetcher downloads and unpacks files.
type Fetcher interface {
	Download(url string) (string, error)
	Extract(archive string) (string, error)
}

// Registrar makes a directory's executables available to the rest of the run.
type Registrar interface {
	AddPath(dir string) error
}

// A Strategy is one way of installing tools. It does not decide when it runs
// and does not certify its own result.
type Strategy interface {
	Name() string
	Supports(t tool.Tool, os env.OS) bool
	Attempt(t tool.Tool, version string) error
}

// Installer installs tools. Construct it with New.
type Installer struct {
	Env        env.Context
	Cache      Cache
	Registrar  Registrar
	Runner     exec.Runner // Queries versions of shared installs.
	Strategies map[Kind]Strategy

	active map[tool.Tool]Location
}

// New returns an Installer wired with the default strategies.
func New(ctx env.Context, cache Cache, fetcher Fetcher, runner exec.Runner, registrar Registrar) *Installer {
	return &Installer{
		Env:       ctx,
		Cache:     cache,
		Registrar: registrar,
		Runner:    runner,
		Strategies: map[Kind]Strategy{
			Apt:          &AptStrategy{Runner: runner},
			Chocolatey:   &ChocolateyStrategy{Runner: runner},
			Ghcup:        &GhcupStrategy{Env: ctx, Runner: runner, Fetcher: fetcher, Cache: cache, Sources: DefaultSources},
			StackRelease: &StackReleaseStrategy{Env: ctx, Fetcher: fetcher, Cache: cache, Sources: DefaultSources},
		},
	}
}

// Install makes the given version of a tool available on the PATH.
func (i *Installer) Install(t tool.Tool, version string) (Location, error) {
	fields := log.Fields{"tool": t, "version": version, "os": i.Env.OS}

	loc, ok, err := i.Installed(t, version)
	if err != nil {
		return Location{}, err
	}
	if ok {
		return loc, nil
	}

	log.WithFields(fields).Warnf("%s %s was not found in the cache. It will be downloaded.", t, version)

	kinds := Order(t, i.Env.OS)
	if len(kinds) == 0 {
		return Location{}, &errors.Error{
			Cause:   errors.ErrUnsupported,
			Type:    errors.User,
			Message: fmt.Sprintf("no install strategy for %s on %s", t, i.Env.OS),
		}
	}

	var attempted []string
	for _, kind := range kinds {
		s, ok := i.Strategies[kind]
		if !ok || !s.Supports(t, i.Env.OS) {
			log.WithFields(fields).WithField("strategy", kind).Warn("strategy is not available for this tool and platform; skipping")
			continue
		}

		attempted = append(attempted, s.Name())
		log.WithFields(fields).WithField("strategy", s.Name()).Infof("Attempting to install %s %s using %s", t, version, s.Name())
		if err := s.Attempt(t, version); err != nil {
			log.WithFields(fields).WithField("strategy", s.Name()).WithError(err).Warn(errors.ErrStrategyFailed.Error())
		}

		loc, ok, err := i.Installed(t, version)
		if err != nil {
			return Location{}, err
		}
		if ok {
			return loc, nil
		}
		log.WithFields(fields).WithField("strategy", s.Name()).Warnf("%s did not produce a working %s %s", s.Name(), t, version)
	}

	return Location{}, errors.Exhausted(t.String(), version, i.Env.OS.String(), attempted)
}

// Active returns the location registered for a tool during this run.
func (i *Installer) Active(t tool.Tool) (Location, bool) {
	loc, ok := i.active[t]
	return loc, ok
}
