package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix    = "mines"
	defaultLevel = "beginner"
)

type LogConfig struct {
	File       string `mapstructure:"file"`
	Level      string `mapstructure:"level"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
}

type Config struct {
	Level       string    `mapstructure:"level"`
	Custom      string    `mapstructure:"custom"`
	Layout      string    `mapstructure:"layout"`
	Seed        uint64    `mapstructure:"seed"`
	StrictWin   bool      `mapstructure:"strict_win"`
	Color       bool      `mapstructure:"color"`
	Development bool      `mapstructure:"development"`
	Log         LogConfig `mapstructure:"log"`
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"level":           c.Level,
		"custom":          c.Custom,
		"layout":          c.Layout,
		"seed":            c.Seed,
		"strict_win":      c.StrictWin,
		"color":           c.Color,
		"development":     c.Development,
		"log_file":        c.Log.File,
		"log_level":       c.Log.Level,
		"log_max_size":    c.Log.MaxSize,
		"log_max_backups": c.Log.MaxBackups,
		"log_max_age":     c.Log.MaxAge,
	}
}

func (c Config) LogLevel() (logrus.Level, error) {
	if c.Development {
		return logrus.DebugLevel, nil
	}
	return logrus.ParseLevel(c.Log.Level)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("level", defaultLevel)
	v.SetDefault("custom", "")
	v.SetDefault("layout", "")
	v.SetDefault("seed", 0)
	v.SetDefault("strict_win", false)
	v.SetDefault("color", true)
	v.SetDefault("development", Development())
	v.SetDefault("log.file", "minesweeper.log")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.max_size", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 28)
}

func newFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("minesweeper", pflag.ContinueOnError)
	flags.StringP("config", "c", "", "config file path")
	flags.String("env-file", ".env", "dotenv file loaded before reading the environment")
	flags.StringP("level", "l", defaultLevel, "level preset: very-beginner, beginner, middle, advanced")
	flags.String("custom", "", "custom board as rows:cols:mines, overrides --level")
	flags.String("layout", "", "YAML board layout file, overrides --level and --custom")
	flags.Uint64("seed", 0, "random seed, 0 picks one")
	flags.Bool("strict-win", false, "require every land mine to be flagged to win")
	flags.Bool("color", true, "colored output")
	flags.Bool("development", false, "debug logging")
	flags.String("log-file", "minesweeper.log", "log file path")
	flags.String("log-level", "info", "log level")
	return flags
}

// Load reads the configuration from flags, MINES_* env variables, an
// optional config file and defaults, in that order of precedence.
func Load(args []string) (*Config, error) {
	flags := newFlagSet()
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	envFile, _ := flags.GetString("env-file")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindings := map[string]string{
		"level":       "level",
		"custom":      "custom",
		"layout":      "layout",
		"seed":        "seed",
		"strict_win":  "strict-win",
		"color":       "color",
		"development": "development",
		"log.file":    "log-file",
		"log.level":   "log-level",
	}
	for key, flag := range bindings {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return nil, err
		}
	}

	configPath, _ := flags.GetString("config")
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	} else {
		v.SetConfigName("minesweeper")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		var notFound viper.ConfigFileNotFoundError
		if err := v.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}
	if _, err := c.LogLevel(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Usage is the flag help text.
func Usage() string {
	return newFlagSet().FlagUsages()
}
