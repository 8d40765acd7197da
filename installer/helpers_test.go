package installer_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/haskell-ci/setup-haskell/cache"
	"github.com/haskell-ci/setup-haskell/env"
	"github.com/haskell-ci/setup-haskell/exec"
	"github.com/haskell-ci/setup-haskell/installer"
	"github.com/haskell-ci/setup-haskell/tool"
)

// registrar records PATH registrations.
type registrar struct {
	paths []string
}

func (r *registrar) AddPath(dir string) error {
	r.paths = append(r.paths, dir)
	return nil
}

// strategy is a scripted install strategy.
type strategy struct {
	name     string
	supports func(tool.Tool, env.OS) bool
	attempt  func(tool.Tool, string) error
	calls    int
}

func (s *strategy) Name() string { return s.name }

func (s *strategy) Supports(t tool.Tool, os env.OS) bool {
	if s.supports == nil {
		return true
	}
	return s.supports(t, os)
}

func (s *strategy) Attempt(t tool.Tool, version string) error {
	s.calls++
	if s.attempt == nil {
		return nil
	}
	return s.attempt(t, version)
}

func failing(name string) *strategy {
	return &strategy{name: name, attempt: func(tool.Tool, string) error {
		return errors.New(name + " exited with status 100")
	}}
}

// runner records commands, fails those named in fail, and prints out[name]
// for the others.
type runner struct {
	cmds []exec.Cmd
	fail map[string]bool
	out  map[string]string
}

func (r *runner) Run(cmd exec.Cmd) (string, string, error) {
	r.cmds = append(r.cmds, cmd)
	if r.fail[cmd.Name] {
		return "", "E: Unable to locate package", errors.New("exit status 100")
	}
	return r.out[cmd.Name], "", nil
}

// fetcher serves canned downloads and extractions.
type fetcher struct {
	t         *testing.T
	urls      []string
	content   string
	extracted string
}

func (f *fetcher) Download(url string) (string, error) {
	f.urls = append(f.urls, url)
	dir := f.t.TempDir()
	file := filepath.Join(dir, filepath.Base(url))
	return file, ioutil.WriteFile(file, []byte(f.content), 0644)
}

func (f *fetcher) Extract(archive string) (string, error) {
	if f.extracted == "" {
		return "", errors.New("not an archive")
	}
	return f.extracted, nil
}

type fixture struct {
	ctx       env.Context
	store     cache.Store
	registrar *registrar
	runner    *runner
}

func newFixture(t *testing.T, os env.OS) fixture {
	root := t.TempDir()
	ctx := env.Context{
		OS:         os,
		Arch:       "x64",
		Root:       filepath.Join(root, "root"),
		Home:       filepath.Join(root, "home"),
		ToolCache:  filepath.Join(root, "toolcache"),
		Temp:       filepath.Join(root, "tmp"),
		Chocolatey: filepath.Join(root, "chocolatey"),
	}
	require.NoError(t, mkdirs(ctx.Temp, ctx.Home))
	return fixture{
		ctx:       ctx,
		store:     cache.Store{Root: ctx.ToolCache, Arch: ctx.Arch},
		registrar: &registrar{},
		runner:    &runner{out: make(map[string]string)},
	}
}

func (f fixture) installer(strategies map[installer.Kind]installer.Strategy) *installer.Installer {
	return &installer.Installer{
		Env:        f.ctx,
		Cache:      f.store,
		Registrar:  f.registrar,
		Runner:     f.runner,
		Strategies: strategies,
	}
}

// placeExecutable creates dir/name as an executable file.
func placeExecutable(t *testing.T, dir, name string) {
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, name), []byte("#!/bin/sh\n"), 0755))
}

func mkdirs(dirs ...string) error {
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0755); err != nil {
			return err
		}
	}
	return nil
}

// placeVersioned creates dir/name as an executable that reports version.
func (f fixture) placeVersioned(t *testing.T, dir, name, version string) {
	placeExecutable(t, dir, name)
	f.runner.out[filepath.Join(dir, name)] = version + "\n"
}
