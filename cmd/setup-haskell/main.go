package main

import (
	"fmt"
	"os"

	"github.com/haskell-ci/setup-haskell/actions"
	"github.com/haskell-ci/setup-haskell/cmd/setup-haskell/app"
	"github.com/haskell-ci/setup-haskell/errors"
)

func main() {
	err := app.New().Run(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		if !expected(err) {
			fmt.Fprint(os.Stderr, errors.ReportBugMessage)
		}
		// The annotation marks the step as failed in the workflow summary.
		fmt.Fprintf(os.Stderr, "::error::%s\n", actions.EscapeData(summary(err)))
		os.Exit(1)
	}
}

func summary(err error) string {
	var e *errors.Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return err.Error()
}

// expected is true for errors that explain themselves.
func expected(err error) bool {
	var e *errors.Error
	return errors.As(err, &e) && e.Type != errors.Unknown
}
