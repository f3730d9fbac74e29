// +build !js

package store

import (
	"context"
	"sort"

	"github.com/cayleygraph/cayley"
	"github.com/cayleygraph/quad"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gitlab.com/chronicle/chronicle"
)

// Predicates linking records in the hierarchy graph
const (
	PredBelongsTo = "belongs_to"
	PredInCircle  = "in_circle"
	PredKind      = "kind"
	PredLabel     = "label"
)

const maxLineageDepth = 8

// HierarchyGraph is a quad view of a document, child -belongs_to-> parent.
// It is rebuilt from the document, never written back.
type HierarchyGraph struct {
	Store    *cayley.Handle
	dbType   string
	filepath string
}

// NewHierarchyGraph backed by dbType (memstore, bolt) at filepath
func NewHierarchyGraph(dbType, filepath string) *HierarchyGraph {
	return &HierarchyGraph{dbType: dbType, filepath: filepath}
}

// Init the quad store
func (g *HierarchyGraph) Init() error {
	var err error

	g.Store, err = InitGraph(g.dbType, g.filepath)
	return err
}

// Load every record of doc as quads
func (g *HierarchyGraph) Load(doc *chronicle.Document) error {
	quads := make([]quad.Quad, 0, 3*(len(doc.Circles)+len(doc.Members)+len(doc.Events)+len(doc.Memories)))
	node := func(id, kind, label string) {
		quads = append(quads,
			quad.Make(quad.IRI(id), quad.IRI(PredKind), quad.String(kind), nil),
			quad.Make(quad.IRI(id), quad.IRI(PredLabel), quad.String(label), nil),
		)
	}
	link := func(child, pred, parent string) {
		quads = append(quads, quad.Make(quad.IRI(child), quad.IRI(pred), quad.IRI(parent), nil))
	}

	for _, c := range doc.Circles {
		node(c.ID, "circle", c.Name)
	}
	for _, m := range doc.Members {
		node(m.ID, "member", m.Name)
		link(m.ID, PredBelongsTo, m.CircleID)
	}
	for _, e := range doc.Events {
		node(e.ID, "event", e.Title)
		link(e.ID, PredBelongsTo, e.MemberID)
		link(e.ID, PredInCircle, e.CircleID)
	}
	for _, m := range doc.Memories {
		node(m.ID, "memory", m.Title)
		link(m.ID, PredBelongsTo, m.EventID)
	}

	// a document with repeated ids would otherwise fail on duplicate quads
	seen := make(map[string]struct{}, len(quads))
	unique := quads[:0]
	for _, q := range quads {
		if _, ok := seen[q.String()]; ok {
			continue
		}
		seen[q.String()] = struct{}{}
		unique = append(unique, q)
	}

	log.Debug().Int("quads", len(unique)).Msg("loading hierarchy graph")
	return g.Store.AddQuadSet(unique)
}

// Lineage returns id followed by each ancestor up to its circle
func (g *HierarchyGraph) Lineage(ctx context.Context, id string) ([]string, error) {
	entries := []string{id}
	if err := g.walkParent(ctx, &entries, id); err != nil {
		return nil, err
	}
	return entries, nil
}

// walkParent recursively follows belongs_to until there is no parent
func (g *HierarchyGraph) walkParent(ctx context.Context, entries *[]string, id string) error {
	if len(*entries) > maxLineageDepth {
		return errors.Errorf("max depth exceeded walking lineage of %s", id)
	}

	parents, err := g.ids(ctx, cayley.StartPath(g.Store, quad.IRI(id)).Out(quad.IRI(PredBelongsTo)))
	if err != nil {
		return err
	}
	if len(parents) == 0 {
		return nil
	}

	*entries = append(*entries, parents[0])
	return g.walkParent(ctx, entries, parents[0])
}

// Descendants of id at every depth, sorted
func (g *HierarchyGraph) Descendants(ctx context.Context, id string) ([]string, error) {
	found := make([]string, 0)
	frontier := []string{id}

	for depth := 0; len(frontier) > 0; depth++ {
		if depth > maxLineageDepth {
			return nil, errors.Errorf("max depth exceeded walking descendants of %s", id)
		}

		next := make([]string, 0)
		for _, parent := range frontier {
			children, err := g.ids(ctx, cayley.StartPath(g.Store, quad.IRI(parent)).In(quad.IRI(PredBelongsTo)))
			if err != nil {
				return nil, err
			}
			next = append(next, children...)
		}
		found = append(found, next...)
		frontier = next
	}

	sort.Strings(found)
	return found, nil
}

// Label stored for id, empty if unknown
func (g *HierarchyGraph) Label(ctx context.Context, id string) (string, error) {
	var label string
	err := cayley.StartPath(g.Store, quad.IRI(id)).Out(quad.IRI(PredLabel)).Iterate(ctx).EachValue(g.Store, func(v quad.Value) {
		if s, ok := v.(quad.String); ok {
			label = string(s)
		}
	})
	return label, err
}

func (g *HierarchyGraph) ids(ctx context.Context, p *cayley.Path) ([]string, error) {
	ids := make([]string, 0)
	err := p.Iterate(ctx).EachValue(g.Store, func(v quad.Value) {
		if iri, ok := v.(quad.IRI); ok {
			ids = append(ids, string(iri))
		}
	})
	return ids, err
}

// Close the quad store
func (g *HierarchyGraph) Close() error {
	if g.Store == nil {
		return nil
	}
	return g.Store.Close()
}
