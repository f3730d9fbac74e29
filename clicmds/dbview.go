package clicmds

import (
	"context"
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"gitlab.com/chronicle/store"
)

func DBViewFlags() []cli.Flag {
	return append(StoreFlags(),
		&cli.BoolFlag{
			Name:  "dump",
			Usage: "dumps the decoded document",
			Value: false,
		},
		&cli.StringFlag{
			Name:  "lineage",
			Usage: "prints the chain of owners of a record id",
			Value: "",
		},
		&cli.StringFlag{
			Name:  "descendants",
			Usage: "prints every record owned by a record id",
			Value: "",
		},
	)
}

func DBView(ctx *cli.Context) error {
	k, closer, err := openKeeper(ctx)
	if err != nil {
		return err
	}
	defer closer()

	doc := k.LoadDocument()
	fmt.Fprintf(ctx.App.Writer, "Had %d circles, %d members, %d events, %d memories (version %s, updated %s)\n",
		len(doc.Circles), len(doc.Members), len(doc.Events), len(doc.Memories),
		doc.Settings.Version, doc.Settings.LastUpdated.Format("2006-01-02 15:04:05"))

	if ctx.Bool("dump") {
		fmt.Fprint(ctx.App.Writer, spew.Sdump(doc))
	}

	if ctx.String("lineage") == "" && ctx.String("descendants") == "" {
		return nil
	}

	graph := store.NewHierarchyGraph("memstore", "")
	if err := graph.Init(); err != nil {
		log.Error().Err(err).Msg("failed to init hierarchy graph")
		return err
	}
	defer graph.Close()

	if err := graph.Load(doc); err != nil {
		return err
	}

	gctx := context.Background()
	if id := ctx.String("lineage"); id != "" {
		path, err := graph.Lineage(gctx, id)
		if err != nil {
			return err
		}
		fmt.Fprintf(ctx.App.Writer, "Lineage: %s\n", describe(gctx, graph, path, " -> "))
	}

	if id := ctx.String("descendants"); id != "" {
		ids, err := graph.Descendants(gctx, id)
		if err != nil {
			return err
		}
		fmt.Fprintf(ctx.App.Writer, "Had %d descendants\n", len(ids))
		if len(ids) > 0 {
			fmt.Fprintf(ctx.App.Writer, "%s\n", describe(gctx, graph, ids, "\n"))
		}
	}
	return nil
}

func describe(ctx context.Context, graph *store.HierarchyGraph, ids []string, sep string) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		label, err := graph.Label(ctx, id)
		if err != nil || label == "" {
			parts = append(parts, id)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s [%s]", id, label))
	}
	return strings.Join(parts, sep)
}
