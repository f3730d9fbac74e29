package clicmds_test

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/urfave/cli/v2"
	"gitlab.com/chronicle/chronicle"
	"gitlab.com/chronicle/clicmds"
)

func TestLoadConfig(t *testing.T) {
	path := "testdata/config.toml"
	defer os.RemoveAll(path)
	cfgData := "backend = \"memory\"\nmax_document_bytes = 1024\nlog_level = \"warn\"\n"
	if err := ioutil.WriteFile(path, []byte(cfgData), 0600); err != nil {
		t.Fatalf("error writing config: %s\n", err)
	}

	var cfg *chronicle.Config
	app := cli.NewApp()
	app.Writer = ioutil.Discard
	app.Commands = []*cli.Command{
		{
			Name:  "cfg",
			Flags: clicmds.StoreFlags(),
			Action: func(ctx *cli.Context) error {
				var err error
				cfg, err = clicmds.LoadConfig(ctx)
				return err
			},
		},
	}

	if err := app.Run([]string{"app", "cfg", "--config", path}); err != nil {
		t.Fatalf("err: %s\n", err)
	}
	if cfg.Backend != chronicle.BackendMemory || cfg.MaxDocumentBytes != 1024 || cfg.LogLevel != "warn" {
		t.Fatalf("file values not applied %#v\n", cfg)
	}

	if err := app.Run([]string{"app", "cfg", "--config", path, "--backend", "badger", "--datadir", "elsewhere", "--loglevel", "debug"}); err != nil {
		t.Fatalf("err: %s\n", err)
	}

	if cfg.Backend != chronicle.BackendBadger {
		t.Fatalf("backend flag should override the file, got %s\n", cfg.Backend)
	}
	if cfg.DataPath != "elsewhere" {
		t.Fatalf("datadir flag should override the file, got %s\n", cfg.DataPath)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("loglevel flag should override the file, got %s\n", cfg.LogLevel)
	}
	if cfg.MaxDocumentBytes != 1024 {
		t.Fatalf("file value without a flag was lost %#v\n", cfg)
	}
	if cfg.StorageKey != chronicle.StorageKey {
		t.Fatalf("defaults not applied %#v\n", cfg)
	}

	if err := app.Run([]string{"app", "cfg", "--config", "testdata/missing.toml"}); err == nil {
		t.Fatalf("expected error for missing config")
	}
}
