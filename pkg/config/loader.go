package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/jonas-elhs/metemplate/pkg/errors"
	"github.com/jonas-elhs/metemplate/pkg/logging"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds the settings from the embedded defaults, the settings file at
// settingsFile (skipped when empty or absent) and the environment.
func Load(settingsFile string) (*Config, error) {
	return LoadWithOverrides(settingsFile, nil)
}

// LoadWithOverrides is Load with a final layer of dotted keys, such as
// "logging.file", that win over every other source.
func LoadWithOverrides(settingsFile string, overrides map[string]interface{}) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Load defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Load settings file if it exists
	if settingsFile != "" {
		if _, err := os.Stat(settingsFile); err == nil {
			if err := k.Load(file.Provider(settingsFile), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load settings from %s", settingsFile).
					WithDetail("path", settingsFile)
			}
			logger.Debug().Str("path", settingsFile).Msg("Loaded settings file")
		}
	}

	// 3. Load env vars
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	// 4. Caller overrides
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply setting overrides")
		}
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			TagName:          "koanf",
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal settings")
	}

	// 6. Validate
	if err := validate(&cfg); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("fileMode", fmt.Sprintf("%#o", cfg.Output.FileMode)).
		Str("dirMode", fmt.Sprintf("%#o", cfg.Output.DirMode)).
		Bool("logFile", cfg.Logging.File).
		Msg("Settings loaded")

	return &cfg, nil
}

// Default returns the embedded defaults without consulting files or the environment
func Default() *Config {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		panic(fmt.Sprintf("embedded defaults are invalid: %v", err))
	}
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		panic(fmt.Sprintf("embedded defaults are invalid: %v", err))
	}
	return &cfg
}

// envKey maps METEMPLATE_OUTPUT_FILE_MODE to output.file_mode
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}

func validate(cfg *Config) error {
	if cfg.Output.FileMode <= 0 || cfg.Output.FileMode > 0o777 {
		return errors.Newf(errors.ErrConfigParse, "invalid output.file_mode %#o", cfg.Output.FileMode)
	}
	if cfg.Output.DirMode <= 0 || cfg.Output.DirMode > 0o777 {
		return errors.Newf(errors.ErrConfigParse, "invalid output.dir_mode %#o", cfg.Output.DirMode)
	}
	if cfg.Project.ConfigFile == "" || cfg.Project.TemplatesDir == "" || cfg.Project.ValuesDir == "" {
		return errors.New(errors.ErrConfigParse, "project layout settings must not be empty")
	}
	return nil
}
