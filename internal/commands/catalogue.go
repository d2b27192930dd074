package commands

import (
	"github.com/zamm-dev/zamm/internal/api"
	"github.com/zamm-dev/zamm/internal/apikeys"
	"github.com/zamm-dev/zamm/internal/greet"
	"github.com/zamm-dev/zamm/internal/preferences"
	"github.com/zamm-dev/zamm/internal/system"
)

// catalogue returns the methods that can be listed and replayed from sample calls
func (c *Controller) catalogue() []api.Callable {
	dir := ""
	if c.Flags != nil {
		dir = c.Flags.PreferencesDir
	}

	return []api.Callable{
		greet.Method,
		system.Method,
		preferences.NewMethod(dir),
		apikeys.Method,
	}
}

func (c *Controller) lookup(name string) (api.Callable, bool) {
	for _, m := range c.catalogue() {
		if m.Name() == name {
			return m, true
		}
	}
	return nil, false
}
