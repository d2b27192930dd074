package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/zamm-dev/zamm/internal/samplecall"
)

// Verify replays a recorded sample call and checks the response against the recording
func (c *Controller) Verify(ctx context.Context, path string) error {
	sample, err := samplecall.Load(path)
	if err != nil {
		return err
	}

	method, ok := c.lookup(sample.Method())
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownMethod, sample.Method())
	}

	// Methods without arguments are recorded with the method name only
	raw := []byte("null")
	if args := sample.Args(); len(args) > 0 {
		raw = []byte(args[0])
	}

	out, err := method.Call(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", method.Name(), err)
	}

	ok, err = sample.Matches(out)
	if err != nil {
		return err
	}
	if !ok {
		log.Debug().Str("want", sample.Response).Str("got", string(out)).Msg("sample call mismatch")
		return fmt.Errorf("%w: %s", ErrSampleMismatch, path)
	}

	_, err = fmt.Fprintf(c.stdout(), "%s: ok\n", path)
	return err
}
