package clicmds

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"gitlab.com/chronicle/store"
)

// BackupFlags for export and import
func BackupFlags() []cli.Flag {
	return append(StoreFlags(),
		&cli.StringFlag{
			Name:  "format",
			Usage: "json or msgpack",
			Value: "json",
		},
		&cli.StringFlag{
			Name:  "file",
			Usage: "file to write to or read from, - for stdout/stdin",
			Value: "-",
		},
	)
}

// Reconcile recomputes member counts
func Reconcile(ctx *cli.Context) error {
	k, closer, err := openKeeper(ctx)
	if err != nil {
		return err
	}
	defer closer()

	fixed, err := k.Reconcile()
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.App.Writer, "corrected %d circle(s)\n", fixed)
	return nil
}

// Check prints integrity violations and fails if there are any
func Check(ctx *cli.Context) error {
	k, closer, err := openKeeper(ctx)
	if err != nil {
		return err
	}
	defer closer()

	violations := k.Check()
	for _, v := range violations {
		fmt.Fprintln(ctx.App.Writer, v.String())
	}
	if len(violations) > 0 {
		return errors.Errorf("%d violation(s) found", len(violations))
	}
	fmt.Fprintln(ctx.App.Writer, "ok")
	return nil
}

// Export the document
func Export(ctx *cli.Context) error {
	codec, err := store.CodecByName(ctx.String("format"))
	if err != nil {
		return err
	}

	k, closer, err := openKeeper(ctx)
	if err != nil {
		return err
	}
	defer closer()

	path := ctx.String("file")
	if path == "-" {
		if err := k.Export(ctx.App.Writer, codec); err != nil {
			log.Error().Err(err).Msg("export failed")
			return err
		}
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := k.Export(f, codec); err != nil {
		f.Close()
		log.Error().Err(err).Msg("export failed")
		return err
	}
	if err := f.Close(); err != nil {
		log.Error().Err(err).Str("file", path).Msg("export failed")
		return errors.Wrapf(err, "close %s", path)
	}
	return nil
}

// Import replaces the document
func Import(ctx *cli.Context) error {
	codec, err := store.CodecByName(ctx.String("format"))
	if err != nil {
		return err
	}

	k, closer, err := openKeeper(ctx)
	if err != nil {
		return err
	}
	defer closer()

	var r io.Reader = os.Stdin
	if ctx.App.Reader != nil {
		r = ctx.App.Reader
	}
	if path := ctx.String("file"); path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	if err := k.Import(r, codec); err != nil {
		log.Error().Err(err).Msg("import failed")
		return err
	}
	return nil
}
