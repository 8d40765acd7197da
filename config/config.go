// Package config implements application-level configuration functionality.
//
// Values come from three sources, in priority order: CLI flags, GitHub
// Actions step inputs, and the built-in catalog defaults. Each key function
// in keys.go makes its own choice between them.
package config

import (
	"github.com/apex/log"
	"github.com/urfave/cli"

	"github.com/haskell-ci/setup-haskell/actions"
	"github.com/haskell-ci/setup-haskell/catalog"
	"github.com/haskell-ci/setup-haskell/cmd/setup-haskell/flags"
)

var (
	ctx    *cli.Context
	inputs Inputs
	cat    catalog.Catalog
)

// Init initializes application-level configuration.
func Init(c *cli.Context, runner *actions.Runner) error {
	// First, set the CLI flags.
	ctx = c

	// Second, read the step inputs.
	if file := c.String(flags.InputsFile); file != "" {
		if err := runner.LoadInputs(file); err != nil {
			return err
		}
	}
	var in Inputs
	if err := runner.DecodeInputs(&in, InputNames...); err != nil {
		return err
	}
	inputs = in

	// Third, load the version catalog.
	loaded, err := loadCatalog(c.String(flags.Catalog))
	if err != nil {
		return err
	}
	loaded.Check()
	cat = loaded

	log.WithField("inputs", inputs).Debug("configuration initialized")
	return nil
}

func loadCatalog(path string) (catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	log.WithField("filename", path).Debug("loading catalog")
	return catalog.Load(path)
}
