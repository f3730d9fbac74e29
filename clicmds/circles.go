package clicmds

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"gitlab.com/chronicle/chronicle"
)

// CircleCommand groups the circle subcommands
func CircleCommand() *cli.Command {
	return &cli.Command{
		Name:  "circle",
		Usage: "manage circles",
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "list circles",
				Action: ListCircles,
				Flags:  StoreFlags(),
			},
			{
				Name:      "add",
				Usage:     "create a circle",
				ArgsUsage: "NAME",
				Action:    AddCircle,
				Flags: append(StoreFlags(),
					&cli.StringFlag{Name: "icon", Usage: "circle icon", Value: "⭕"},
					&cli.StringFlag{Name: "color", Usage: "circle color", Value: ""},
				),
			},
			{
				Name:      "rm",
				Usage:     "delete a circle with everything in it",
				ArgsUsage: "CIRCLE_ID",
				Action:    RemoveCircle,
				Flags: append(StoreFlags(),
					&cli.BoolFlag{Name: "yes", Usage: "do not ask for confirmation", Value: false},
				),
			},
		},
	}
}

// ListCircles prints every circle
func ListCircles(ctx *cli.Context) error {
	k, closer, err := openKeeper(ctx)
	if err != nil {
		return err
	}
	defer closer()

	for _, c := range k.ListCircles() {
		fmt.Fprintf(ctx.App.Writer, "%s\t%s %s\t%s\tmembers=%d\n", c.ID, c.Icon, c.Name, c.Color, c.MemberCount)
	}
	return nil
}

// AddCircle creates a circle named by the first argument
func AddCircle(ctx *cli.Context) error {
	k, closer, err := openKeeper(ctx)
	if err != nil {
		return err
	}
	defer closer()

	c, err := k.CreateCircle(chronicle.CircleInput{
		Name:  ctx.Args().First(),
		Icon:  ctx.String("icon"),
		Color: ctx.String("color"),
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, c.ID)
	return nil
}

// RemoveCircle deletes the circle id given as the first argument
func RemoveCircle(ctx *cli.Context) error {
	k, closer, err := openKeeper(ctx)
	if err != nil {
		return err
	}
	defer closer()

	if !k.DeleteCircle(ctx.Args().First()) {
		return errors.New("circle not deleted")
	}
	return nil
}
