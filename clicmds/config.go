package clicmds

import (
	"os"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"gitlab.com/chronicle/chronicle"
	"gitlab.com/chronicle/keeper"
	"gitlab.com/chronicle/store"
)

// StoreFlags shared by every command that opens the document
func StoreFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Usage: "config to use",
			Value: "",
		},
		&cli.StringFlag{
			Name:  "datadir",
			Usage: "data directory",
			Value: "",
		},
		&cli.StringFlag{
			Name:  "backend",
			Usage: "storage backend, badger or memory",
			Value: "",
		},
		&cli.StringFlag{
			Name:  "loglevel",
			Usage: "debug, info, warn or error",
			Value: "",
		},
	}
}

// LoadConfig from --config if given, any flag that is set overrides the
// file
func LoadConfig(ctx *cli.Context) (*chronicle.Config, error) {
	cfg := &chronicle.Config{}

	if ctx.String("config") != "" {
		f, err := os.Open(ctx.String("config"))
		if err != nil {
			return nil, err
		}
		defer f.Close()

		if err := toml.NewDecoder(f).Decode(cfg); err != nil {
			return nil, errors.Wrapf(err, "decode config %s", ctx.String("config"))
		}
	}

	if ctx.String("datadir") != "" {
		cfg.DataPath = ctx.String("datadir")
	}
	if ctx.String("backend") != "" {
		cfg.Backend = ctx.String("backend")
	}
	if ctx.String("loglevel") != "" {
		cfg.LogLevel = ctx.String("loglevel")
	}
	cfg.Defaults()
	return cfg, nil
}

func setupLogging(ctx *cli.Context, cfg *chronicle.Config) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: ctx.App.ErrWriter})

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warn().Str("level", cfg.LogLevel).Msg("unknown log level, using info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
}

// openKeeper loads config, opens the store and returns a keeper wired to
// prompt on the app's reader. The returned func closes the store.
func openKeeper(ctx *cli.Context) (*keeper.Keeper, func(), error) {
	cfg, err := LoadConfig(ctx)
	if err != nil {
		return nil, nil, err
	}
	setupLogging(ctx, cfg)

	kv, err := store.New(cfg)
	if err != nil {
		return nil, nil, err
	}

	if err := kv.Init(); err != nil {
		log.Error().Err(err).Str("path", cfg.DataPath).Msg("failed to init store")
		return nil, nil, err
	}

	closer := func() {
		if err := kv.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close store")
		}
	}

	prompt := newPrompter(ctx, ctx.Bool("yes"))
	k := keeper.New(cfg, kv,
		keeper.WithConfirmer(prompt),
		keeper.WithNotifier(prompt),
	)
	return k, closer, nil
}
