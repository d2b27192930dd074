// Package preferences reads user preferences from the zamm config directory.
package preferences

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/zamm-dev/zamm/internal/api"
)

// MethodName is the name of the preferences method
const MethodName = "get_preferences"

// FileName is the preferences file inside the preferences directory
const FileName = "preferences.yaml"

var ErrNoDir = errors.New("no preferences dir found")

// Preferences are the user's UI settings. Unset values are nil.
type Preferences struct {
	UnceasingAnimations *bool `json:"unceasing_animations" yaml:"unceasing_animations"`
	SoundOn             *bool `json:"sound_on" yaml:"sound_on"`
}

// ToObject implements api.Encodable
func (p Preferences) ToObject() api.Object {
	return api.Object{
		"unceasing_animations": boolOrNil(p.UnceasingAnimations),
		"sound_on":             boolOrNil(p.SoundOn),
	}
}

// NewMethod describes get_preferences reading from dir
func NewMethod(dir string) api.Method[api.NoArgs, Preferences] {
	return api.NewMethod(MethodName, api.NoArgsFromObject, func(api.NoArgs) (Preferences, error) {
		return Get(dir), nil
	})
}

// DefaultDir returns the zamm directory under the user config directory,
// or an empty string when that is unknown.
func DefaultDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "zamm")
}

// Get returns the preferences stored in dir. Any failure yields the defaults.
func Get(dir string) Preferences {
	prefs, err := Load(dir)
	if err != nil {
		log.Warn().Err(err).Str("dir", dir).Msg("error getting preferences")
		return Preferences{}
	}
	return prefs
}

// Load reads preferences.yaml from dir. A missing file is not an error.
func Load(dir string) (Preferences, error) {
	if dir == "" {
		return Preferences{}, ErrNoDir
	}

	path, err := filepath.Abs(filepath.Join(dir, FileName))
	if err != nil {
		return Preferences{}, fmt.Errorf("failed to resolve preferences path: %w", err)
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Debug().Str("path", path).Msg("no preferences found")
		return Preferences{}, nil
	}
	if err != nil {
		return Preferences{}, fmt.Errorf("failed to read preferences: %w", err)
	}

	log.Debug().Str("path", path).Msg("reading preferences")

	var prefs Preferences
	if err := yaml.Unmarshal(data, &prefs); err != nil {
		return Preferences{}, fmt.Errorf("failed to parse preferences: %w", err)
	}
	return prefs, nil
}

func boolOrNil(b *bool) any {
	if b == nil {
		return nil
	}
	return *b
}
