// Package cache implements the shared tool cache: a directory tree of
// installed tools keyed by (tool, version, arch), laid out the same way as the
// GitHub Actions hosted tool cache so that entries are reused across jobs.
//
//	<root>/<tool>/<version>/<arch>/           tool contents
//	<root>/<tool>/<version>/<arch>.complete   marker written last
//
// An entry without its marker is a partial copy and is never returned.
package cache

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/pkg/errors"

	"github.com/haskell-ci/setup-haskell/files"
)

// Store is a tool cache rooted at a directory.
type Store struct {
	Root string
	Arch string
}

func (s Store) dir(tool, version string) string {
	return filepath.Join(s.Root, tool, version, s.Arch)
}

func (s Store) marker(tool, version string) string {
	return s.dir(tool, version) + ".complete"
}

// Find returns the cached directory for (tool, version), or "" if there is no
// complete entry.
func (s Store) Find(tool, version string) string {
	if tool == "" || version == "" {
		return ""
	}
	dir := s.dir(tool, version)
	ok, err := files.Exists(s.marker(tool, version))
	if err != nil || !ok {
		log.WithFields(log.Fields{"tool": tool, "version": version}).Debug("not in tool cache")
		return ""
	}
	ok, err = files.ExistsFolder(dir)
	if err != nil || !ok {
		return ""
	}
	log.WithFields(log.Fields{"tool": tool, "version": version, "dir": dir}).Debug("found in tool cache")
	return dir
}

// CacheDir copies the contents of src into the cache under (tool, version) and
// returns the cached directory. Any previous entry is replaced.
func (s Store) CacheDir(src, tool, version string) (string, error) {
	ok, err := files.ExistsFolder(src)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errors.Errorf("cannot cache %s: not a directory", src)
	}

	dir := s.dir(tool, version)
	marker := s.marker(tool, version)
	if err := files.Rm(marker); err != nil {
		return "", err
	}
	if err := files.Rm(dir); err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.Wrap(err, "could not create cache directory")
	}
	if err := files.CopyDir(src, dir); err != nil {
		return "", errors.Wrapf(err, "could not copy %s into cache", src)
	}
	if err := ioutil.WriteFile(marker, nil, 0644); err != nil {
		return "", errors.Wrap(err, "could not mark cache entry complete")
	}

	log.WithFields(log.Fields{"tool": tool, "version": version, "dir": dir}).Debug("cached directory")
	return dir, nil
}
