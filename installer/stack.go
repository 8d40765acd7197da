package installer

import (
	"fmt"
	"path/filepath"

	"github.com/apex/log"
	"github.com/pkg/errors"

	"github.com/haskell-ci/setup-haskell/catalog"
	"github.com/haskell-ci/setup-haskell/env"
	"github.com/haskell-ci/setup-haskell/files"
	"github.com/haskell-ci/setup-haskell/tool"
)

// StackReleaseStrategy installs stack from its release archives into the tool
// cache.
type StackReleaseStrategy struct {
	Env     env.Context
	Fetcher Fetcher
	Cache   Cache
	Sources Sources
}

func (*StackReleaseStrategy) Name() string { return StackRelease.String() }

func (*StackReleaseStrategy) Supports(t tool.Tool, os env.OS) bool {
	return t == tool.Stack && os != env.UnknownOS
}

func (s *StackReleaseStrategy) Attempt(t tool.Tool, version string) error {
	url, err := s.URL(version)
	if err != nil {
		return err
	}

	archive, err := s.Fetcher.Download(url)
	if err != nil {
		return err
	}
	extracted, err := s.Fetcher.Extract(archive)
	if err != nil {
		return errors.Wrapf(err, "could not extract %s", archive)
	}

	dir, err := s.binDir(extracted)
	if err != nil {
		return err
	}
	cached, err := s.Cache.CacheDir(dir, tool.Stack.String(), version)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{"version": version, "dir": cached}).Debug("cached stack")
	return nil
}

// URL returns the archive for a stack version on this platform.
func (s *StackReleaseStrategy) URL(version string) (string, error) {
	var build, ext string
	switch s.Env.OS {
	case env.Linux:
		build, ext = "linux-x86_64", "tar.gz"
	case env.Darwin:
		build, ext = "osx-x86_64", "tar.gz"
	case env.Windows:
		build, ext = "windows-x86_64", "zip"
	default:
		return "", errors.Errorf("no stack build for %s", s.Env.OS)
	}

	if version == catalog.Latest {
		return fmt.Sprintf(s.Sources.StackLatestURL, build, ext), nil
	}
	return fmt.Sprintf(s.Sources.StackURL, version, version, build, ext), nil
}

// binDir finds the directory holding the stack executable. Release archives
// contain a single stack-<version>-<build> directory, except on Windows where
// the executable sits at the top level.
func (s *StackReleaseStrategy) binDir(extracted string) (string, error) {
	matches, err := files.Glob(filepath.Join(extracted, "stack-*"))
	if err != nil {
		return "", err
	}

	var dirs []string
	for _, m := range matches {
		if ok, _ := files.ExistsFolder(m); ok {
			dirs = append(dirs, m)
		}
	}
	switch len(dirs) {
	case 1:
		return dirs[0], nil
	case 0:
		if ok, _ := files.Exists(extracted, s.Env.Executable("stack")); ok {
			return extracted, nil
		}
		return "", errors.Errorf("no stack executable in %s", extracted)
	}
	return "", errors.Errorf("expected one stack directory in %s, found %d", extracted, len(dirs))
}
