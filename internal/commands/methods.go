package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/zamm-dev/zamm/internal/api"
)

// Methods prints the descriptors of the available API methods as JSON
func (c *Controller) Methods(ctx context.Context) error {
	methods := c.catalogue()
	descriptors := make([]api.Descriptor, 0, len(methods))
	for _, m := range methods {
		descriptors = append(descriptors, m.Describe())
	}

	data, err := json.MarshalIndent(descriptors, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode method descriptors: %w", err)
	}

	_, err = fmt.Fprintln(c.stdout(), string(data))
	return err
}
