package config

import (
	"strings"

	"github.com/arthur-debert/inreplace/pkg/errors"
	"github.com/pelletier/go-toml/v2"
)

// fileConfig is the on-disk shape of Config, durations as strings
type fileConfig struct {
	OnMissingChange string     `toml:"on_missing_change" comment:"What to do when a file comes out unchanged: fatal or warn."`
	Regex           fileRegex  `toml:"regex"`
	Output          fileOutput `toml:"output"`
}

type fileRegex struct {
	Engine  string `toml:"engine" comment:"regexp2 (backtracking, lookaround) or re2 (Go regexp, linear time)."`
	Timeout string `toml:"timeout" comment:"Longest a single regexp2 match may run. 0s disables the limit."`
}

type fileOutput struct {
	Format string `toml:"format" comment:"text, json or yaml"`
	Color  string `toml:"color" comment:"auto, always or never"`
	Diff   bool   `toml:"diff" comment:"Print a unified diff of every changed file."`
}

// Marshal renders cfg as TOML
func Marshal(cfg *Config) ([]byte, error) {
	out, err := toml.Marshal(fileConfig{
		OnMissingChange: cfg.OnMissingChange,
		Regex: fileRegex{
			Engine:  cfg.Regex.Engine,
			Timeout: cfg.Regex.Timeout.String(),
		},
		Output: fileOutput(cfg.Output),
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return out, nil
}

// GenerateConfigContent returns the defaults as TOML with every value
// commented out, ready to be saved as a user or project config.
func GenerateConfigContent() (string, error) {
	cfg, err := Default()
	if err != nil {
		return "", err
	}
	out, err := Marshal(cfg)
	if err != nil {
		return "", err
	}
	header := "# inreplace configuration. Uncomment a value to override the default.\n\n"
	return header + commentOutConfigValues(string(out)), nil
}

// commentOutConfigValues takes the TOML content and comments out all non-comment, non-blank lines
// that contain configuration values (assignments)
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		// Keep blank lines as-is
		if trimmed == "" {
			result = append(result, line)
			continue
		}

		// Keep lines that are already comments
		if strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		// Keep section headers (e.g., [regex], [output]) as-is
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		// Comment out configuration value lines
		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
