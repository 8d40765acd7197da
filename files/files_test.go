package files_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haskell-ci/setup-haskell/files"
)

func TestNonExistentParentIsNotErr(t *testing.T) {
	ok, err := files.Exists(filepath.Join("testdata", "parent", "does", "not", "exist", "file"))
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestExecutable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not meaningful on windows")
	}
	dir := t.TempDir()
	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, "ghc"), []byte("#!/bin/sh\n"), 0755))
	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, "README"), []byte("docs"), 0644))

	ok, err := files.Executable(false, dir, "ghc")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = files.Executable(false, dir, "README")
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = files.Executable(true, dir, "README")
	assert.NoError(t, err)
	assert.True(t, ok, "existence is enough on windows")

	ok, err = files.Executable(false, dir)
	assert.NoError(t, err)
	assert.False(t, ok, "directories are not executables")
}

func TestCopyDir(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(src, "bin"), 0755))
	require.NoError(t, ioutil.WriteFile(filepath.Join(src, "bin", "stack"), []byte("binary"), 0755))

	dest := filepath.Join(t.TempDir(), "copy")
	require.NoError(t, files.CopyDir(src, dest))

	contents, err := files.Read(dest, "bin", "stack")
	assert.NoError(t, err)
	assert.Equal(t, "binary", string(contents))
}

func TestAppend(t *testing.T) {
	name := filepath.Join(t.TempDir(), "config")
	require.NoError(t, files.Append(name, "a: 1\n"))
	require.NoError(t, files.Append(name, "b: 2\n"))

	contents, err := files.Read(name)
	assert.NoError(t, err)
	assert.Equal(t, "a: 1\nb: 2\n", string(contents))
}

func TestReadAny(t *testing.T) {
	var v struct {
		Name string `yaml:"name" toml:"name"`
	}
	assert.NoError(t, files.ReadAny(&v, filepath.Join("testdata", "named.yml")))
	assert.Equal(t, "from-yaml", v.Name)

	assert.NoError(t, files.ReadAny(&v, filepath.Join("testdata", "named.toml")))
	assert.Equal(t, "from-toml", v.Name)

	assert.Error(t, files.ReadAny(&v, filepath.Join("testdata", "named.ini")))
}
