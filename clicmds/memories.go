package clicmds

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"gitlab.com/chronicle/chronicle"
)

// MemoryCommand groups the memory subcommands
func MemoryCommand() *cli.Command {
	return &cli.Command{
		Name:  "memory",
		Usage: "manage memories of an event",
		Subcommands: []*cli.Command{
			{
				Name:      "list",
				Usage:     "list memories of an event",
				ArgsUsage: "EVENT_ID",
				Action:    ListMemories,
				Flags:     StoreFlags(),
			},
			{
				Name:      "add",
				Usage:     "attach a memory to an event",
				ArgsUsage: "TITLE",
				Action:    AddMemory,
				Flags: append(StoreFlags(),
					&cli.StringFlag{Name: "event", Usage: "owning event id", Required: true},
					&cli.StringFlag{Name: "description", Usage: "memory description", Value: ""},
					&cli.StringFlag{Name: "type", Usage: "photo, video, audio or text", Value: "text"},
					&cli.StringFlag{Name: "media", Usage: "media url", Value: ""},
					&cli.StringFlag{Name: "thumbnail", Usage: "thumbnail url", Value: ""},
					&cli.StringFlag{Name: "audio", Usage: "linked audio url", Value: ""},
					&cli.StringFlag{Name: "size", Usage: "compressed size for display", Value: ""},
				),
			},
			{
				Name:      "rm",
				Usage:     "delete a memory",
				ArgsUsage: "MEMORY_ID",
				Action:    RemoveMemory,
				Flags:     StoreFlags(),
			},
		},
	}
}

// ListMemories prints the memories of the event given as first argument
func ListMemories(ctx *cli.Context) error {
	k, closer, err := openKeeper(ctx)
	if err != nil {
		return err
	}
	defer closer()

	for _, m := range k.ListMemories(ctx.Args().First()) {
		fmt.Fprintf(ctx.App.Writer, "%s\t%s\t%s\t%s\n", m.ID, m.Type, m.Title, m.CompressedSize)
	}
	return nil
}

// AddMemory creates a memory titled by the first argument
func AddMemory(ctx *cli.Context) error {
	k, closer, err := openKeeper(ctx)
	if err != nil {
		return err
	}
	defer closer()

	in := chronicle.MemoryInput{
		EventID:        ctx.String("event"),
		Title:          ctx.Args().First(),
		Description:    ctx.String("description"),
		Type:           ctx.String("type"),
		MediaURL:       ctx.String("media"),
		Thumbnail:      ctx.String("thumbnail"),
		CompressedSize: ctx.String("size"),
	}
	if audio := ctx.String("audio"); audio != "" {
		in.LinkedAudioURL = &audio
	}

	m, err := k.CreateMemory(in)
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, m.ID)
	return nil
}

// RemoveMemory deletes the memory id given as the first argument
func RemoveMemory(ctx *cli.Context) error {
	k, closer, err := openKeeper(ctx)
	if err != nil {
		return err
	}
	defer closer()

	k.DeleteMemory(ctx.Args().First())
	return nil
}
