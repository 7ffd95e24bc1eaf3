package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/arthur-debert/inreplace/pkg/errors"
	"github.com/arthur-debert/inreplace/pkg/inreplace"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolated(t *testing.T) LoadOptions {
	t.Helper()
	return LoadOptions{
		UserConfigDir: t.TempDir(),
		WorkDir:       t.TempDir(),
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "fatal", cfg.OnMissingChange)
	assert.Equal(t, "regexp2", cfg.Regex.Engine)
	assert.Equal(t, 5*time.Second, cfg.Regex.Timeout)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, "auto", cfg.Output.Color)
	assert.False(t, cfg.Output.Diff)
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, inreplace.Fatal, cfg.Policy())
	assert.Equal(t, 5*time.Second, cfg.PatternOptions().Timeout)
}

func TestLoadWithoutFiles(t *testing.T) {
	cfg, err := Load(isolated(t))
	require.NoError(t, err)

	def, err := Default()
	require.NoError(t, err)
	assert.Equal(t, def, cfg)
}

func TestLoadLayers(t *testing.T) {
	opts := isolated(t)
	writeFile(t, opts.UserConfigDir, "config.toml", `
on_missing_change = "warn"

[output]
format = "json"
color = "never"
`)
	writeFile(t, opts.WorkDir, ".inreplace.yaml", `
output:
  format: yaml
regex:
  timeout: 2s
`)
	t.Setenv("INREPLACE_REGEX_ENGINE", "re2")
	t.Setenv("INREPLACE_UNRELATED", "ignored")
	opts.Overrides = map[string]interface{}{"output.diff": true}

	cfg, err := Load(opts)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.OnMissingChange)
	assert.Equal(t, inreplace.Warn, cfg.Policy())
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, "never", cfg.Output.Color)
	assert.Equal(t, 2*time.Second, cfg.Regex.Timeout)
	assert.Equal(t, "re2", cfg.Regex.Engine)
	assert.True(t, cfg.Output.Diff)
}

func TestLoadEnvironmentKeysWithUnderscores(t *testing.T) {
	t.Setenv("INREPLACE_ON_MISSING_CHANGE", "warn")
	t.Setenv("INREPLACE_OUTPUT_DIFF", "true")

	cfg, err := Load(isolated(t))
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.OnMissingChange)
	assert.True(t, cfg.Output.Diff)
}

func TestLoadExplicitConfigFile(t *testing.T) {
	opts := isolated(t)
	writeFile(t, opts.WorkDir, ".inreplace.toml", `on_missing_change = "warn"`)
	opts.ConfigFile = writeFile(t, t.TempDir(), "custom.toml", `
[output]
format = "json"
`)

	cfg, err := Load(opts)
	require.NoError(t, err)

	// the explicit file replaces the project lookup
	assert.Equal(t, "fatal", cfg.OnMissingChange)
	assert.Equal(t, "json", cfg.Output.Format)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		code    errors.ErrorCode
	}{
		{"invalid enum", ".inreplace.toml", "on_missing_change = \"ignore\"\n", errors.ErrConfigValid},
		{"invalid format", ".inreplace.toml", "[output]\nformat = \"xml\"\n", errors.ErrConfigValid},
		{"negative timeout", ".inreplace.toml", "[regex]\ntimeout = \"-1s\"\n", errors.ErrConfigValid},
		{"broken toml", ".inreplace.toml", "on_missing_change = \n", errors.ErrConfigParse},
		{"broken yaml", ".inreplace.yaml", "output: [\n", errors.ErrConfigParse},
		{"unknown key", ".inreplace.toml", "colour = \"never\"\n", errors.ErrConfigParse},
		{"bad duration", ".inreplace.toml", "[regex]\ntimeout = \"soon\"\n", errors.ErrConfigParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := isolated(t)
			writeFile(t, opts.WorkDir, tt.file, tt.content)

			_, err := Load(opts)
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetErrorCode(err), "got %v", err)
		})
	}
}

func TestLoadMissingConfigFile(t *testing.T) {
	opts := isolated(t)
	opts.ConfigFile = filepath.Join(t.TempDir(), "nope.toml")

	_, err := Load(opts)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestLoadUnsupportedConfigFile(t *testing.T) {
	opts := isolated(t)
	opts.ConfigFile = writeFile(t, t.TempDir(), "config.ini", "x=1")

	_, err := Load(opts)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestUserConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")
	assert.Equal(t, filepath.Join("/tmp/xdg-config", "inreplace"), UserConfigDir())
}

func TestGenerateConfigContent(t *testing.T) {
	content, err := GenerateConfigContent()
	require.NoError(t, err)

	var uncommented []string
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "[") {
			uncommented = append(uncommented, line)
			continue
		}
		require.True(t, strings.HasPrefix(trimmed, "#"), "value left active: %q", line)
		if strings.Contains(trimmed, " = ") {
			uncommented = append(uncommented, strings.TrimPrefix(trimmed, "# "))
		}
	}

	var parsed fileConfig
	require.NoError(t, toml.Unmarshal([]byte(strings.Join(uncommented, "\n")), &parsed))
	assert.Equal(t, "fatal", parsed.OnMissingChange)
	assert.Equal(t, "regexp2", parsed.Regex.Engine)
	assert.Equal(t, "5s", parsed.Regex.Timeout)
	assert.Equal(t, "text", parsed.Output.Format)
	assert.Equal(t, "auto", parsed.Output.Color)
	assert.Contains(t, content, "# text, json or yaml")
}

func TestCommentOutConfigValues(t *testing.T) {
	in := "# note\n[regex]\nengine = 're2'\n\n"
	assert.Equal(t, "# note\n[regex]\n# engine = 're2'\n\n", commentOutConfigValues(in))
}
