package config

import (
	"errors"
	"strings"

	"logogen/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	FileName  = "logogen"
	FileType  = "toml"
	EnvPrefix = "LOGOGEN"
)

type Config struct {
	Paths    domain.Paths
	Engine   string
	LogLevel zerolog.Level
	Pretty   bool
}

// Flags returns the command line flags understood by Load.
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("logogen", pflag.ContinueOnError)
	fs.String("root", ".", "project root holding logo.png and public/")
	fs.String("source", "", "source image, overrides <root>/logo.png")
	fs.String("output", "", "output directory, overrides <root>/public")
	fs.String("engine", "imaging", "resize engine: imaging or nfnt")
	fs.Bool("debug", false, "enable debug logging")
	return fs
}

// Load merges defaults, an optional logogen.toml in configDir, LOGOGEN_* environment variables and fs, in increasing
// order of precedence.
func Load(v *viper.Viper, fs *pflag.FlagSet, configDir string) (*Config, error) {
	v.SetDefault("paths.root", ".")
	v.SetDefault("paths.source", "")
	v.SetDefault("paths.output", "")
	v.SetDefault("resize.engine", "imaging")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", true)

	v.SetConfigName(FileName)
	v.SetConfigType(FileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		bindings := map[string]string{
			"paths.root":    "root",
			"paths.source":  "source",
			"paths.output":  "output",
			"resize.engine": "engine",
		}
		for key, flag := range bindings {
			if f := fs.Lookup(flag); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, err
				}
			}
		}
		if f := fs.Lookup("debug"); f != nil && f.Changed && f.Value.String() == "true" {
			v.Set("log.level", "debug")
		}
	}

	paths := domain.ResolvePaths(v.GetString("paths.root"))
	if source := v.GetString("paths.source"); source != "" {
		paths.Source = source
	}
	if output := v.GetString("paths.output"); output != "" {
		paths.Output = output
	}

	var logLevel zerolog.Level

	switch v.GetString("log.level") {
	case "info":
		logLevel = zerolog.InfoLevel
	case "debug":
		logLevel = zerolog.DebugLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	return &Config{
		Paths:    paths,
		Engine:   v.GetString("resize.engine"),
		LogLevel: logLevel,
		Pretty:   v.GetBool("log.pretty"),
	}, nil
}
