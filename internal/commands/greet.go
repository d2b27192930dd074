package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/zamm-dev/zamm/internal/greet"
)

// Usage is printed when no JSON arguments are given
const Usage = "Usage: zamm <json-args>"

// Greet decodes the first argument as GreetArgs, calls greet and prints the JSON response
func (c *Controller) Greet(ctx context.Context, args []string) error {
	if len(args) < 1 {
		fmt.Fprintln(c.stdout(), Usage)
		return ErrMissingArgs
	}

	log.Debug().Str("method", greet.MethodName).Str("args", args[0]).Msg("invoking method")

	out, err := greet.Method.Call([]byte(args[0]))
	if err != nil {
		return fmt.Errorf("%s: %w", greet.MethodName, err)
	}

	_, err = fmt.Fprintln(c.stdout(), string(out))
	return err
}
