// Package tool defines the Haskell tools that can be installed.
package tool

import (
	"strings"

	"github.com/pkg/errors"
)

// A Tool is one component of a Haskell toolchain. Its String form is used as
// the tool cache key and to select install strategies.
type Tool int

// Supported tools.
const (
	Invalid Tool = iota // Placeholder
	GHC                 // The Glasgow Haskell Compiler (https://www.haskell.org/ghc/)
	Cabal               // cabal-install (https://www.haskell.org/cabal/)
	Stack               // Stack (https://www.haskellstack.org/)
)

// All enumerates all tools in installation order. Later tools may assume that
// earlier tools are already on the PATH.
var All = []Tool{
	GHC,
	Cabal,
	Stack,
}

var ErrUnknownTool = errors.New("unknown tool")

// Parse returns the tool given a string key.
func Parse(key string) (Tool, error) {
	switch strings.ToLower(key) {
	case "ghc":
		return GHC, nil
	case "cabal", "cabal-install":
		return Cabal, nil
	case "stack":
		return Stack, nil
	}
	return Invalid, errors.Wrapf(ErrUnknownTool, "%q", key)
}

func (t Tool) String() string {
	switch t {
	case GHC:
		return "ghc"
	case Cabal:
		return "cabal"
	case Stack:
		return "stack"
	}
	return "invalid"
}

// Executable is the name of the tool's binary, without any platform suffix.
func (t Tool) Executable() string {
	return t.String()
}
