package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zamm-dev/zamm/internal/api"
	"github.com/zamm-dev/zamm/internal/commands"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), append([]string{"zamm"}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_NoArgs(t *testing.T) {
	// Test: Missing JSON argument prints usage and exits 1
	code, stdout, _ := runCLI(t)
	assert.Equal(t, 1, code)
	assert.Equal(t, commands.Usage+"\n", stdout)
}

func TestRun_Greet(t *testing.T) {
	code, stdout, _ := runCLI(t, `{"name": "World"}`)
	require.Equal(t, 0, code)

	resp, err := api.Decode([]byte(stdout), api.GreetResponseFromObject)
	require.NoError(t, err)
	assert.Equal(t, "Hello, World! You have been greeted from Python", resp.Greeting)
}

func TestRun_MalformedJSON(t *testing.T) {
	// Test: Malformed input exits non-zero without a response object
	code, stdout, stderr := runCLI(t, `{"name": `)
	assert.NotEqual(t, 0, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "failed to run zamm")
}

func TestRun_ShapeMismatch(t *testing.T) {
	code, stdout, _ := runCLI(t, `{"first_name": "World"}`)
	assert.NotEqual(t, 0, code)
	assert.Empty(t, stdout)
}

func TestRun_LogLevelFlag(t *testing.T) {
	code, stdout, _ := runCLI(t, "--log-level", "debug", `{"name": "Ada"}`)
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "Hello, Ada!")

	code, _, stderr := runCLI(t, "--log-level", "loud", `{"name": "Ada"}`)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "failed to parse log level")
}

func TestRun_Methods(t *testing.T) {
	code, stdout, _ := runCLI(t, "methods")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, `"name": "greet"`)
}

func TestRun_Verify(t *testing.T) {
	code, stdout, _ := runCLI(t, "verify", filepath.Join("internal", "samplecall", "testdata", "greet-world.yaml"))
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, ": ok")

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("request: [greet, '{\"name\": \"x\"}']\nresponse: '{\"greeting\": \"y\"}'\n"), 0644))

	code, stdout, stderr := runCLI(t, "verify", path)
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "does not match")
}

func TestRun_HelpIsNotACommand(t *testing.T) {
	// Test: A bare "help" argument is treated as (malformed) JSON input
	code, stdout, stderr := runCLI(t, "help")
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "malformed JSON")
}

func TestRun_HTMLCharactersUnescaped(t *testing.T) {
	code, stdout, _ := runCLI(t, `{"name": "<b>é & co"}`)
	require.Equal(t, 0, code)
	assert.Equal(t, `{"greeting":"Hello, <b>é & co! You have been greeted from Python"}`+"\n", stdout)
}

func TestRun_VerifyPreferences(t *testing.T) {
	dir := filepath.Join("internal", "preferences", "testdata", "sound-override")
	sample := filepath.Join("internal", "commands", "testdata", "sample-calls", "get_preferences-sound-override.yaml")

	code, stdout, _ := runCLI(t, "--preferences-dir", dir, "verify", sample)
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, ": ok")
}

func TestBuild(t *testing.T) {
	assert.Equal(t, "dev (HEAD) now", build())
}
