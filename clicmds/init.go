package clicmds

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/gobuffalo/packr/v2"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const configTemplate = "chronicle.toml"

var templates = packr.New("chronicle-templates", "./templates")

// InitFlags for writing a config file
func InitFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "out",
			Usage: "where to write the config",
			Value: configTemplate,
		},
		&cli.BoolFlag{
			Name:  "force",
			Usage: "overwrite an existing file",
			Value: false,
		},
	}
}

// Init writes the default config
func Init(ctx *cli.Context) error {
	out := ctx.String("out")
	if _, err := os.Stat(out); err == nil && !ctx.Bool("force") {
		return errors.Errorf("%s already exists, use --force to overwrite", out)
	}

	tmpl, err := templates.Find(configTemplate)
	if err != nil {
		return errors.Wrap(err, "missing config template")
	}

	if err := ioutil.WriteFile(out, tmpl, 0600); err != nil {
		return err
	}
	fmt.Fprintf(ctx.App.Writer, "wrote %s\n", out)
	return nil
}
