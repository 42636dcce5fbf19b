package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
interpreter: /bin/bash
args: ["-lc"]
dir: /srv/app
env:
  CI: "1"
timeout: 30s
wait_timeout: 5s
max_output: 1024
allow_failure: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/bin/bash", cfg.Interpreter)
	assert.Equal(t, []string{"-lc"}, cfg.Args)
	assert.Equal(t, "/srv/app", cfg.Dir)
	assert.Equal(t, map[string]string{"CI": "1"}, cfg.Env)
	assert.Equal(t, 30*time.Second, cfg.Timeout())
	assert.Equal(t, 5*time.Second, cfg.WaitTimeout())
	assert.Equal(t, 1024, cfg.MaxOutput)
	assert.True(t, cfg.AllowFailure)
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultInterpreter, cfg.Interpreter)
	assert.Zero(t, cfg.Timeout())
	assert.Zero(t, cfg.WaitTimeout())
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeConfig(t, "interpreter: [not: valid")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestLoadInvalidTimeout(t *testing.T) {
	path := writeConfig(t, "timeout: soon")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid timeout")
}

func TestLoadNegativeMaxOutput(t *testing.T) {
	path := writeConfig(t, "max_output: -1")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_output")
}

func TestSpecSeeding(t *testing.T) {
	exitCode := 2
	cfg := &Config{
		Interpreter:  "/bin/bash",
		Args:         []string{"-lc"},
		RawTimeout:   "1m",
		ExpectedExit: &exitCode,
	}

	spec := cfg.Spec().WithCommand("make test")
	assert.Equal(t, []string{"/bin/bash", "-lc", "make test"}, spec.Argv())
}

func TestSpecDefaultsInterpreter(t *testing.T) {
	spec := Default().Spec().WithCommand("true")
	assert.Equal(t, []string{DefaultInterpreter, "-c", "true"}, spec.Argv())
}
