package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/inreplace/pkg/errors"
	"github.com/arthur-debert/inreplace/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix prefixes every environment override
	EnvPrefix = "INREPLACE_"

	appDir = "inreplace"
)

var (
	userConfigNames    = []string{"config.toml", "config.yaml", "config.yml"}
	projectConfigNames = []string{".inreplace.toml", ".inreplace.yaml", ".inreplace.yml"}
)

// LoadOptions says where to look for configuration files
type LoadOptions struct {
	// ConfigFile replaces the project config lookup. It must exist.
	ConfigFile string
	// WorkDir is searched for a project config. Defaults to ".".
	WorkDir string
	// UserConfigDir overrides $XDG_CONFIG_HOME/inreplace.
	UserConfigDir string
	// Overrides are applied last, keyed by dotted config keys.
	Overrides map[string]interface{}
}

// Default returns the embedded defaults
func Default() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}
	return unmarshal(k)
}

// Load merges every configuration layer and validates the result
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}
	known := k.Keys()

	// 2. User config
	userDir := opts.UserConfigDir
	if userDir == "" {
		userDir = UserConfigDir()
	}
	if path := firstExisting(userDir, userConfigNames); path != "" {
		if err := loadFile(k, path); err != nil {
			return nil, err
		}
		logger.Debug().Str("path", path).Msg("Loaded user config")
	}

	// 3. Project config
	projectPath := opts.ConfigFile
	if projectPath != "" {
		if _, err := os.Stat(projectPath); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not found", projectPath).
				WithDetail("path", projectPath)
		}
	} else {
		workDir := opts.WorkDir
		if workDir == "" {
			workDir = "."
		}
		projectPath = firstExisting(workDir, projectConfigNames)
	}
	if projectPath != "" {
		if err := loadFile(k, projectPath); err != nil {
			return nil, err
		}
		logger.Debug().Str("path", projectPath).Msg("Loaded project config")
	}

	// 4. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKeyMapper(known)), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	// 5. Overrides from flags
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	cfg, err := unmarshal(k)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// UserConfigDir returns the directory holding the user config
func UserConfigDir() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		base = xdg.ConfigHome
	}
	return filepath.Join(base, appDir)
}

func loadFile(k *koanf.Koanf, path string) error {
	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		parser = toml.Parser()
	case ".yaml", ".yml":
		parser = yaml.Parser()
	default:
		return errors.Newf(errors.ErrConfigLoad, "unsupported config file type %s", path).
			WithDetail("path", path)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config %s", path).
			WithDetail("path", path)
	}
	return nil
}

func firstExisting(dir string, names []string) string {
	for _, name := range names {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// envKeyMapper maps INREPLACE_REGEX_TIMEOUT to regex.timeout. Only known
// keys are mapped so underscores inside key names survive; anything else is
// dropped.
func envKeyMapper(known []string) func(string) string {
	byEnv := make(map[string]string, len(known))
	for _, key := range known {
		byEnv[strings.ToUpper(strings.ReplaceAll(key, ".", "_"))] = key
	}
	return func(s string) string {
		return byEnv[strings.TrimPrefix(s, EnvPrefix)]
	}
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			ErrorUnused:      true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode configuration")
	}
	return &cfg, nil
}
