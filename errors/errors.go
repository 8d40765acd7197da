// Package errors implements application-level errors that carry enough context
// to explain to a user what went wrong and how to fix it.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/mitchellh/go-wordwrap"
)

// Sentinel causes. Match them with errors.Is.
var (
	ErrInvalidConfiguration = stderrors.New("invalid configuration")
	ErrEmptyCatalog         = stderrors.New("supported version catalog is empty")
	ErrStrategyFailed       = stderrors.New("install strategy failed")
	ErrStrategiesExhausted  = stderrors.New("all install strategies failed")
	ErrUnsupported          = stderrors.New("unsupported tool or platform")
)

// Type classifies who is probably responsible for an error.
type Type string

const (
	Unknown Type = "unknown"
	User    Type = "user"
	Exec    Type = "exec"
	Network Type = "network"
)

// Error is an error with a user-facing explanation.
type Error struct {
	Cause           error
	Type            Type
	Message         string
	Troubleshooting string
	Link            string
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Message != "" {
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		if b.Len() > 0 {
			b.WriteString(": ")
		}
		b.WriteString(e.Cause.Error())
	}
	if e.Troubleshooting != "" {
		b.WriteString("\n\n")
		b.WriteString(color.HiYellowString("TROUBLESHOOTING:"))
		b.WriteString("\n")
		b.WriteString(wordwrap.WrapString(e.Troubleshooting, width))
	}
	if e.Link != "" {
		b.WriteString("\n\n")
		b.WriteString(wordwrap.WrapString("For more information, see "+color.HiBlueString(e.Link)+".", width))
	}
	return b.String()
}

// Unwrap returns the cause so that errors.Is and errors.As see through Error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New is errors.New from the standard library.
func New(message string) error {
	return stderrors.New(message)
}

// Is is errors.Is from the standard library.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As is errors.As from the standard library.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// UnknownError wraps an unexpected error with a message.
func UnknownError(err error, message string) *Error {
	return &Error{
		Cause:   err,
		Type:    Unknown,
		Message: message,
	}
}

// Configuration reports inconsistent run options. All problems are reported
// together so that a user can fix them in one pass.
func Configuration(problems ...string) *Error {
	return &Error{
		Cause:           ErrInvalidConfiguration,
		Type:            User,
		Message:         strings.Join(problems, "\n"),
		Troubleshooting: "Check the inputs passed to the setup step. Options that depend on stack (stack-no-global, stack-setup-ghc) also require stack-version.",
	}
}

// Exhausted reports that no strategy produced a working install.
func Exhausted(tool, version, os string, attempted []string) *Error {
	return &Error{
		Cause:   ErrStrategiesExhausted,
		Type:    Exec,
		Message: fmt.Sprintf("%s %s could not be installed on %s", tool, version, os),
		Troubleshooting: fmt.Sprintf(
			"Tried: %s. Make sure that %s %s exists for this platform, or pick a version from the supported list. Run with --debug to see the output of every attempt.",
			strings.Join(attempted, ", "), tool, version),
	}
}
