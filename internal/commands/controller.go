// Package commands contains the CLI commands for the application
package commands

import (
	"errors"
	"io"
	"os"
)

var (
	ErrMissingArgs    = errors.New("missing JSON arguments")
	ErrSampleMismatch = errors.New("response does not match sample call")
	ErrUnknownMethod  = errors.New("sample call targets an unknown method")
)

type Flags struct {
	LogLevel       string
	LogFormat      string
	PreferencesDir string
}

type Controller struct {
	Flags *Flags

	// Stdout receives command output. Defaults to os.Stdout.
	Stdout io.Writer
}

func (c *Controller) stdout() io.Writer {
	if c.Stdout == nil {
		return os.Stdout
	}
	return c.Stdout
}
