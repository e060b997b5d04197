package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hogwarts-cloud/sizer/internal/models"
	"github.com/hogwarts-cloud/sizer/internal/validate"
	"github.com/hogwarts-cloud/sizer/internal/workbook"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

const (
	ConfigName = "sizer"
	EnvPrefix  = "SIZER"
)

type Config struct {
	Server   Server              `json:"server"`
	Log      Log                 `json:"log"`
	Mail     Mail                `json:"mail"`
	Workbook Workbook            `json:"workbook"`
	Baseline models.Baseline     `json:"baseline"`
	Defaults models.Requirements `json:"defaults"`
}

type Server struct {
	Address         string        `json:"address"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
}

type Log struct {
	Level string `json:"level"`
}

type Mail struct {
	Server     string   `json:"server"`
	Sender     string   `json:"sender"`
	Recipients []string `json:"recipients"`
}

type Workbook struct {
	Path  string `json:"path"`
	Sheet string `json:"sheet"`
}

func Default() Config {
	return Config{
		Server: Server{
			Address:         "127.0.0.1:5000",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Log: Log{
			Level: "info",
		},
		Mail: Mail{
			Server:     "localhost:25",
			Sender:     "sizer@localhost",
			Recipients: []string{},
		},
		Workbook: Workbook{
			Sheet: workbook.DefaultSheet,
		},
		Baseline: models.DefaultBaseline(),
		Defaults: models.DefaultRequirements(),
	}
}

// Load reads sizer.yaml from path when present and applies SIZER_* environment
// overrides on top of the built-in defaults. An empty path skips the file.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName(ConfigName)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := setDefaults(v, Default()); err != nil {
		return Config{}, fmt.Errorf("failed to set defaults: %w", err)
	}

	if path != "" {
		v.AddConfigPath(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	cfg := Default()

	if err := v.Unmarshal(&cfg, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)), useJSONTags); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validator := validate.New()

	if err := validator.RunBaseline(cfg.Baseline); err != nil {
		return Config{}, fmt.Errorf("failed to validate baseline: %w", err)
	}

	if err := validator.Run(cfg.Defaults); err != nil {
		return Config{}, fmt.Errorf("failed to validate defaults: %w", err)
	}

	return cfg, nil
}

// ResolveDefaults overlays the configured workbook, if any, on the default requirements.
func (c Config) ResolveDefaults() (models.Requirements, error) {
	if c.Workbook.Path == "" {
		return c.Defaults, nil
	}

	file, err := os.Open(c.Workbook.Path)
	if err != nil {
		return models.Requirements{}, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() { _ = file.Close() }()

	defaults, err := workbook.LoadDefaults(file, c.Workbook.Sheet, c.Defaults)
	if err != nil {
		return models.Requirements{}, fmt.Errorf("failed to load workbook defaults: %w", err)
	}

	return defaults, nil
}

func useJSONTags(c *mapstructure.DecoderConfig) {
	c.TagName = "json"
}

// setDefaults registers every leaf key so that AutomaticEnv can override it.
func setDefaults(v *viper.Viper, cfg Config) error {
	settings := make(map[string]any)

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  &settings,
	})
	if err != nil {
		return err
	}

	if err := decoder.Decode(cfg); err != nil {
		return err
	}

	flatten(v, "", settings)

	return nil
}

func flatten(v *viper.Viper, prefix string, settings map[string]any) {
	for key, value := range settings {
		if prefix != "" {
			key = prefix + "." + key
		}

		if nested, ok := value.(map[string]any); ok {
			flatten(v, key, nested)
			continue
		}

		v.SetDefault(key, value)
	}
}
