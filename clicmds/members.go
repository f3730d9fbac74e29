package clicmds

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"gitlab.com/chronicle/chronicle"
)

// MemberCommand groups the member subcommands
func MemberCommand() *cli.Command {
	return &cli.Command{
		Name:  "member",
		Usage: "manage members of a circle",
		Subcommands: []*cli.Command{
			{
				Name:      "list",
				Usage:     "list members of a circle",
				ArgsUsage: "CIRCLE_ID",
				Action:    ListMembers,
				Flags:     StoreFlags(),
			},
			{
				Name:      "add",
				Usage:     "add a member to a circle",
				ArgsUsage: "NAME",
				Action:    AddMember,
				Flags: append(StoreFlags(),
					&cli.StringFlag{Name: "circle", Usage: "owning circle id", Required: true},
					&cli.StringFlag{Name: "avatar", Usage: "member avatar", Value: ""},
					&cli.BoolFlag{Name: "admin", Usage: "member is a circle admin", Value: false},
				),
			},
			{
				Name:      "rm",
				Usage:     "delete a member with their events and memories",
				ArgsUsage: "MEMBER_ID",
				Action:    RemoveMember,
				Flags:     StoreFlags(),
			},
		},
	}
}

// ListMembers prints the members of the circle given as first argument
func ListMembers(ctx *cli.Context) error {
	k, closer, err := openKeeper(ctx)
	if err != nil {
		return err
	}
	defer closer()

	for _, m := range k.ListMembers(ctx.Args().First()) {
		admin := ""
		if m.IsAdmin {
			admin = "\tadmin"
		}
		fmt.Fprintf(ctx.App.Writer, "%s\t%s %s%s\n", m.ID, m.Avatar, m.Name, admin)
	}
	return nil
}

// AddMember creates a member named by the first argument
func AddMember(ctx *cli.Context) error {
	k, closer, err := openKeeper(ctx)
	if err != nil {
		return err
	}
	defer closer()

	m, err := k.CreateMember(ctx.String("circle"), chronicle.MemberInput{
		Name:    ctx.Args().First(),
		Avatar:  ctx.String("avatar"),
		IsAdmin: ctx.Bool("admin"),
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, m.ID)
	return nil
}

// RemoveMember deletes the member id given as the first argument
func RemoveMember(ctx *cli.Context) error {
	k, closer, err := openKeeper(ctx)
	if err != nil {
		return err
	}
	defer closer()

	if !k.DeleteMember(ctx.Args().First()) {
		return errors.New("member not found")
	}
	return nil
}
