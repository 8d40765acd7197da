// Package catalog holds the supported-version catalog for each tool and
// resolves user version specifiers against it.
package catalog

import (
	_ "embed"
	"strconv"
	"strings"

	"github.com/apex/log"
	"github.com/blang/semver"
	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"

	"github.com/haskell-ci/setup-haskell/files"
	"github.com/haskell-ci/setup-haskell/tool"
)

//go:embed defaults.yml
var defaultsYAML []byte

// Entry is the default version and the supported versions of one tool.
// Supported is ordered most-recent first.
type Entry struct {
	Version   string   `yaml:"version" toml:"version"`
	Supported []string `yaml:"supported" toml:"supported"`
}

// Catalog is the read-only version configuration for all tools.
type Catalog struct {
	GHC   Entry `yaml:"ghc" toml:"ghc"`
	Cabal Entry `yaml:"cabal" toml:"cabal"`
	Stack Entry `yaml:"stack" toml:"stack"`
}

// Default returns the catalog shipped with the binary.
func Default() (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(defaultsYAML, &c); err != nil {
		return Catalog{}, errors.Wrap(err, "could not parse built-in catalog")
	}
	return c, nil
}

// Load reads a catalog from a YAML or TOML file.
func Load(path string) (Catalog, error) {
	var c Catalog
	if err := files.ReadAny(&c, path); err != nil {
		return Catalog{}, errors.Wrapf(err, "could not read catalog %s", path)
	}
	return c, nil
}

// Entry returns the catalog entry for a tool.
func (c Catalog) Entry(t tool.Tool) Entry {
	switch t {
	case tool.GHC:
		return c.GHC
	case tool.Cabal:
		return c.Cabal
	case tool.Stack:
		return c.Stack
	}
	return Entry{}
}

// Check warns about supported lists that are not ordered most-recent first.
// Resolution treats list order as priority, so a misordered list silently
// changes what "latest" and prefixes resolve to.
func (c Catalog) Check() {
	for _, t := range tool.All {
		supported := c.Entry(t).Supported
		for i := 1; i < len(supported); i++ {
			cmp, ok := compare(supported[i-1], supported[i])
			if ok && cmp < 0 {
				log.WithFields(log.Fields{
					"tool":   t,
					"before": supported[i-1],
					"after":  supported[i],
				}).Warn("supported versions are not ordered most-recent first")
			}
		}
	}
}

// compare orders dotted versions. The first three components are compared as
// semantic versions and any further components (cabal uses four) numerically.
func compare(a, b string) (int, bool) {
	ha, ta, err := split(a)
	if err != nil {
		return 0, false
	}
	hb, tb, err := split(b)
	if err != nil {
		return 0, false
	}
	if cmp := ha.Compare(hb); cmp != 0 {
		return cmp, true
	}
	for i := 0; i < len(ta) || i < len(tb); i++ {
		var x, y uint64
		if i < len(ta) {
			x = ta[i]
		}
		if i < len(tb) {
			y = tb[i]
		}
		if x != y {
			if x < y {
				return -1, true
			}
			return 1, true
		}
	}
	return 0, true
}

func split(v string) (semver.Version, []uint64, error) {
	parts := strings.Split(v, ".")
	head := parts
	if len(head) > 3 {
		head = parts[:3]
	}
	sv, err := semver.ParseTolerant(strings.Join(head, "."))
	if err != nil {
		return semver.Version{}, nil, err
	}
	var tail []uint64
	for _, p := range parts[len(head):] {
		n, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			return semver.Version{}, nil, err
		}
		tail = append(tail, n)
	}
	return sv, tail, nil
}
