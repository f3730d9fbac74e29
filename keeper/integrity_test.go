package keeper_test

import (
	"bytes"
	"testing"

	"gitlab.com/chronicle/chronicle"
	"gitlab.com/chronicle/keeper"
	"gitlab.com/chronicle/store"
)

func TestCheck(t *testing.T) {
	r := newTestRig(t, nil)
	c := testMakeChain(t, r.keeper, "one")

	doc := r.keeper.LoadDocument()
	doc.Members = append(doc.Members, &chronicle.Member{ID: "member_orphan", CircleID: "circle_gone"})
	doc.Events = append(doc.Events,
		&chronicle.Event{ID: "event_orphan", MemberID: "member_gone"},
		&chronicle.Event{ID: "event_mismatch", MemberID: c.member.ID, CircleID: "circle_other"},
	)
	doc.Memories = append(doc.Memories, &chronicle.Memory{ID: "memory_orphan", EventID: "event_gone"})
	doc.Circles[0].MemberCount = 5

	kinds := map[keeper.ViolationKind]string{}
	for _, v := range keeper.Check(doc) {
		kinds[v.Kind] = v.RecordID
	}

	expect := map[keeper.ViolationKind]string{
		keeper.OrphanMember:   "member_orphan",
		keeper.OrphanEvent:    "event_orphan",
		keeper.OrphanMemory:   "memory_orphan",
		keeper.CircleMismatch: "event_mismatch",
		keeper.CountDrift:     c.circle.ID,
	}
	for kind, id := range expect {
		if kinds[kind] != id {
			t.Fatalf("expected %s for %s got %q\n", kind, id, kinds[kind])
		}
	}
	if len(kinds) != len(expect) {
		t.Fatalf("unexpected violations %v\n", kinds)
	}
}

func TestReconcile(t *testing.T) {
	r := newTestRig(t, nil)
	c1 := testMakeChain(t, r.keeper, "one")
	testMakeChain(t, r.keeper, "two")

	fixed, err := r.keeper.Reconcile()
	if err != nil || fixed != 0 {
		t.Fatalf("expected nothing to fix got %d %v\n", fixed, err)
	}

	doc := r.keeper.LoadDocument()
	doc.Circles[0].MemberCount = 7
	doc.Circles[1].MemberCount = 0
	r.keeper.SaveDocument(doc)

	fixed, err = r.keeper.Reconcile()
	if err != nil || fixed != 2 {
		t.Fatalf("expected 2 fixes got %d %v\n", fixed, err)
	}
	for _, c := range r.keeper.ListCircles() {
		if c.MemberCount != 1 {
			t.Fatalf("circle %s has memberCount %d\n", c.ID, c.MemberCount)
		}
	}

	r.keeper.DeleteMember(c1.member.ID)
	if v := r.keeper.Check(); len(v) != 0 {
		t.Fatalf("unexpected violations %v\n", v)
	}
}

func TestExportImport(t *testing.T) {
	for _, codec := range []store.Codec{store.JSONCodec{}, store.MsgpackCodec{}} {
		src := newTestRig(t, nil)
		testMakeChain(t, src.keeper, "one")
		testMakeChain(t, src.keeper, "two")

		buf := &bytes.Buffer{}
		if err := src.keeper.Export(buf, codec); err != nil {
			t.Fatalf("%s error exporting: %s\n", codec.Name(), err)
		}

		dst := newTestRig(t, nil)
		if err := dst.keeper.Import(buf, codec); err != nil {
			t.Fatalf("%s error importing: %s\n", codec.Name(), err)
		}

		want := ids(src.keeper.LoadDocument())
		got := ids(dst.keeper.LoadDocument())
		if len(want) != 8 || len(got) != len(want) {
			t.Fatalf("%s expected %v got %v\n", codec.Name(), want, got)
		}
		for i := range want {
			if want[i] != got[i] {
				t.Fatalf("%s expected %v got %v\n", codec.Name(), want, got)
			}
		}
	}
}

func TestImportGarbage(t *testing.T) {
	r := newTestRig(t, nil)
	testMakeChain(t, r.keeper, "one")
	before := r.raw(t)

	if err := r.keeper.Import(bytes.NewBufferString("not a document"), store.JSONCodec{}); err == nil {
		t.Fatalf("expected import error")
	}
	if string(before) != string(r.raw(t)) {
		t.Fatalf("failed import changed the document")
	}
}
