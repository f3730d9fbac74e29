package clicmds

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"gitlab.com/chronicle/chronicle"
)

// EventCommand groups the event subcommands
func EventCommand() *cli.Command {
	return &cli.Command{
		Name:  "event",
		Usage: "manage events of a member",
		Subcommands: []*cli.Command{
			{
				Name:      "list",
				Usage:     "list events of a member by year",
				ArgsUsage: "MEMBER_ID",
				Action:    ListEvents,
				Flags:     StoreFlags(),
			},
			{
				Name:      "add",
				Usage:     "add an event to a member",
				ArgsUsage: "TITLE",
				Action:    AddEvent,
				Flags: append(StoreFlags(),
					&cli.StringFlag{Name: "circle", Usage: "circle id of the member", Value: ""},
					&cli.StringFlag{Name: "member", Usage: "owning member id", Required: true},
					&cli.StringFlag{Name: "icon", Usage: "event icon", Value: "📅"},
					&cli.StringFlag{Name: "date", Usage: "event date as displayed", Value: ""},
					&cli.IntFlag{Name: "year", Usage: "year used for ordering", Value: 0},
				),
			},
			{
				Name:      "rm",
				Usage:     "delete an event with its memories",
				ArgsUsage: "EVENT_ID",
				Action:    RemoveEvent,
				Flags:     StoreFlags(),
			},
		},
	}
}

// ListEvents prints the events of the member given as first argument
func ListEvents(ctx *cli.Context) error {
	k, closer, err := openKeeper(ctx)
	if err != nil {
		return err
	}
	defer closer()

	for _, e := range k.ListEvents(ctx.Args().First()) {
		fmt.Fprintf(ctx.App.Writer, "%s\t%d\t%s %s\t%s\n", e.ID, e.Year, e.Icon, e.Title, e.Date)
	}
	return nil
}

// AddEvent creates an event titled by the first argument
func AddEvent(ctx *cli.Context) error {
	k, closer, err := openKeeper(ctx)
	if err != nil {
		return err
	}
	defer closer()

	circleID := ctx.String("circle")
	if circleID == "" {
		// events carry their member's circle
		if m := k.LoadDocument().FindMember(ctx.String("member")); m != nil {
			circleID = m.CircleID
		}
	}

	e, err := k.CreateEvent(chronicle.EventInput{
		CircleID: circleID,
		MemberID: ctx.String("member"),
		Title:    ctx.Args().First(),
		Icon:     ctx.String("icon"),
		Date:     ctx.String("date"),
		Year:     ctx.Int("year"),
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, e.ID)
	return nil
}

// RemoveEvent deletes the event id given as the first argument
func RemoveEvent(ctx *cli.Context) error {
	k, closer, err := openKeeper(ctx)
	if err != nil {
		return err
	}
	defer closer()

	k.DeleteEvent(ctx.Args().First())
	return nil
}
