package clicmds

import "github.com/urfave/cli/v2"

// Commands of the chronicle app
func Commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:   "init",
			Usage:  "write a default config file",
			Action: Init,
			Flags:  InitFlags(),
		},
		CircleCommand(),
		MemberCommand(),
		EventCommand(),
		MemoryCommand(),
		{
			Name:   "reconcile",
			Usage:  "recompute circle member counts",
			Action: Reconcile,
			Flags:  StoreFlags(),
		},
		{
			Name:   "check",
			Usage:  "report broken references and count drift",
			Action: Check,
			Flags:  StoreFlags(),
		},
		{
			Name:   "export",
			Usage:  "back up the document",
			Action: Export,
			Flags:  BackupFlags(),
		},
		{
			Name:   "import",
			Usage:  "replace the document from a backup",
			Action: Import,
			Flags:  BackupFlags(),
		},
		{
			Name:    "dbview",
			Aliases: []string{"db"},
			Usage:   "inspect the stored document",
			Action:  DBView,
			Flags:   DBViewFlags(),
		},
	}
}
