// Package samplecall loads recorded API calls used to check the entry point
// against known request/response pairs.
package samplecall

import (
	"errors"
	"fmt"
	"os"
	"reflect"

	"gopkg.in/yaml.v3"

	"github.com/zamm-dev/zamm/internal/api"
)

var (
	ErrNoMethod = errors.New("sample call request has no method name")
)

// SampleCall is one recorded request and the response it produced.
// Request holds the method name followed by its JSON arguments.
type SampleCall struct {
	Request  []string `yaml:"request"`
	Response string   `yaml:"response"`
}

// Load reads a sample call from a YAML file
func Load(path string) (*SampleCall, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sample call: %w", err)
	}

	return Parse(data)
}

// Parse decodes a sample call from YAML
func Parse(data []byte) (*SampleCall, error) {
	var sample SampleCall
	if err := yaml.Unmarshal(data, &sample); err != nil {
		return nil, fmt.Errorf("failed to parse sample call: %w", err)
	}
	if len(sample.Request) == 0 || sample.Request[0] == "" {
		return nil, ErrNoMethod
	}

	return &sample, nil
}

// Method returns the name of the called method
func (s *SampleCall) Method() string {
	return s.Request[0]
}

// Args returns the arguments passed after the method name
func (s *SampleCall) Args() []string {
	return s.Request[1:]
}

// Matches reports whether actual encodes the same value as the recorded response.
// Key order and whitespace are ignored.
func (s *SampleCall) Matches(actual []byte) (bool, error) {
	want, err := api.DecodeObject([]byte(s.Response))
	if err != nil {
		return false, fmt.Errorf("recorded response: %w", err)
	}

	got, err := api.DecodeObject(actual)
	if err != nil {
		return false, fmt.Errorf("actual response: %w", err)
	}

	return reflect.DeepEqual(want, got), nil
}
