package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"gitlab.com/chronicle/clicmds"
)

func main() {
	app := cli.NewApp()
	app.Name = "chronicle"
	app.Version = "0.1"
	app.Usage = "Keep the memories of your circles"
	app.Commands = clicmds.Commands()
	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Msg("chronicle failed")
	}
}
