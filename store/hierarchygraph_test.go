// +build !js

package store_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gitlab.com/chronicle/chronicle"
	"gitlab.com/chronicle/store"
)

func TestHierarchyGraph(t *testing.T) {
	g := store.NewHierarchyGraph("memstore", "")
	if err := g.Init(); err != nil {
		t.Fatalf("error init graph: %s\n", err)
	}
	defer g.Close()

	doc := testMakeDocument()
	doc.Circles = append(doc.Circles, &chronicle.Circle{ID: "circle_2", Name: "Friends"})
	if err := g.Load(doc); err != nil {
		t.Fatalf("error loading: %s\n", err)
	}

	ctx := context.Background()
	lineage, err := g.Lineage(ctx, "memory_1")
	if err != nil {
		t.Fatalf("error walking lineage: %s\n", err)
	}
	expect := []string{"memory_1", "event_1", "member_1", "circle_1"}
	if diff := cmp.Diff(expect, lineage); diff != "" {
		t.Fatalf("unexpected lineage (-want +got):\n%s", diff)
	}

	desc, err := g.Descendants(ctx, "circle_1")
	if err != nil {
		t.Fatalf("error walking descendants: %s\n", err)
	}
	expect = []string{"event_1", "member_1", "memory_1", "memory_2"}
	if diff := cmp.Diff(expect, desc); diff != "" {
		t.Fatalf("unexpected descendants (-want +got):\n%s", diff)
	}

	desc, err = g.Descendants(ctx, "circle_2")
	if err != nil || len(desc) != 0 {
		t.Fatalf("expected no descendants got %v %v\n", desc, err)
	}

	label, err := g.Label(ctx, "event_1")
	if err != nil || label != "Graduation" {
		t.Fatalf("expected Graduation got %q %v\n", label, err)
	}
}

func TestInitGraphBolt(t *testing.T) {
	g := store.NewHierarchyGraph("bolt", "testdata/graph.bolt")
	defer removeAll("testdata/graph.bolt")
	if err := g.Init(); err != nil {
		t.Fatalf("error init graph: %s\n", err)
	}
	g.Close()
}
