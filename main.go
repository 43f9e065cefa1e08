package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"logogen/internal/adapters/file"
	"logogen/internal/adapters/resizer"
	"logogen/internal/config"
	"logogen/internal/core/service"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := config.Flags()
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := config.Load(viper.GetViper(), flags, ".")
	if err != nil {
		log.Error().Err(err).Msg("could not read config file")
		return err
	}

	if cfg.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	r, err := resizer.New(cfg.Engine)
	if err != nil {
		log.Error().Err(err).Msg("failed initializing resizer")
		return err
	}

	generator := service.NewLogoGenerator(file.NewStore(), r, cfg.Paths)

	report, err := generator.Generate(ctx)
	if err != nil {
		log.Error().Err(err).Msg("logo generation failed")
		return err
	}

	log.Info().
		Int("count", len(report.Generated)).
		Str("output", report.Output).
		Msgf("generated %d logo files in %s", len(report.Generated), report.Output)

	return nil
}
