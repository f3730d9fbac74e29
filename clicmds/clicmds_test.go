package clicmds_test

import (
	"bytes"
	"io/ioutil"
	"os"
	"strings"
	"testing"

	"github.com/urfave/cli/v2"
	"gitlab.com/chronicle/clicmds"
)

func testRun(t *testing.T, stdin string, args ...string) (string, error) {
	out := &bytes.Buffer{}
	app := cli.NewApp()
	app.Commands = clicmds.Commands()
	app.Reader = strings.NewReader(stdin)
	app.Writer = out
	app.ErrWriter = ioutil.Discard
	err := app.Run(append([]string{"chronicle"}, args...))
	return out.String(), err
}

func testMustRun(t *testing.T, args ...string) string {
	out, err := testRun(t, "", args...)
	if err != nil {
		t.Fatalf("%v failed: %s\n", args, err)
	}
	return out
}

func TestHierarchyCommands(t *testing.T) {
	dir := "testdata/hierarchy"
	os.RemoveAll(dir)
	defer os.RemoveAll(dir)
	store := []string{"--datadir", dir, "--loglevel", "error"}
	with := func(args ...string) []string {
		return append(append(args[:2:2], store...), args[2:]...)
	}

	circleID := strings.TrimSpace(testMustRun(t, with("circle", "add", "--icon", "🏠", "Family")...))
	if !strings.HasPrefix(circleID, "circle_") {
		t.Fatalf("unexpected circle id %q\n", circleID)
	}
	memberID := strings.TrimSpace(testMustRun(t, with("member", "add", "--circle", circleID, "Alice")...))
	eventID := strings.TrimSpace(testMustRun(t, with("event", "add", "--member", memberID, "--year", "2020", "Graduation")...))
	memoryID := strings.TrimSpace(testMustRun(t, with("memory", "add", "--event", eventID, "--type", "photo", "Photo")...))

	out := testMustRun(t, with("circle", "list")...)
	if !strings.Contains(out, "Family") || !strings.Contains(out, "members=1") {
		t.Fatalf("unexpected circle list %q\n", out)
	}

	out = testMustRun(t, with("event", "list", memberID)...)
	if !strings.Contains(out, "2020") || !strings.Contains(out, "Graduation") {
		t.Fatalf("unexpected event list %q\n", out)
	}

	out = testMustRun(t, append([]string{"dbview"}, append(store, "--lineage", memoryID)...)...)
	expect := "Lineage: " + memoryID + " [Photo] -> " + eventID + " [Graduation] -> " + memberID + " [Alice] -> " + circleID + " [Family]"
	if !strings.Contains(out, expect) {
		t.Fatalf("expected %q in %q\n", expect, out)
	}

	out = testMustRun(t, append([]string{"check"}, store...)...)
	if strings.TrimSpace(out) != "ok" {
		t.Fatalf("unexpected check output %q\n", out)
	}

	if _, err := testRun(t, "n\n", with("circle", "rm", circleID)...); err == nil {
		t.Fatalf("circle removed without confirmation")
	}
	if out := testMustRun(t, with("memory", "list", eventID)...); !strings.Contains(out, memoryID) {
		t.Fatalf("memory missing after cancelled delete %q\n", out)
	}

	if _, err := testRun(t, "y\n", with("circle", "rm", circleID)...); err != nil {
		t.Fatalf("error removing circle: %s\n", err)
	}
	if out := testMustRun(t, with("circle", "list")...); out != "" {
		t.Fatalf("expected no circles got %q\n", out)
	}
	if out := testMustRun(t, with("memory", "list", eventID)...); out != "" {
		t.Fatalf("expected no memories got %q\n", out)
	}
}

func TestRemoveMissingMember(t *testing.T) {
	if _, err := testRun(t, "", "member", "rm", "--backend", "memory", "member_nope"); err == nil {
		t.Fatalf("expected error removing a missing member")
	}
}

func TestRemoveMissingEventAndMemory(t *testing.T) {
	testMustRun(t, "event", "rm", "--backend", "memory", "event_nope")
	testMustRun(t, "memory", "rm", "--backend", "memory", "memory_nope")
}

func TestExportFile(t *testing.T) {
	src := "testdata/export-file"
	backup := "testdata/backup.json"
	for _, p := range []string{src, backup} {
		os.RemoveAll(p)
		defer os.RemoveAll(p)
	}

	testMustRun(t, "circle", "add", "--datadir", src, "--icon", "🏠", "Family")
	testMustRun(t, "export", "--datadir", src, "--file", backup)
	data, err := ioutil.ReadFile(backup)
	if err != nil {
		t.Fatalf("error reading export: %s\n", err)
	}
	if !strings.Contains(string(data), "Family") || !strings.HasSuffix(strings.TrimSpace(string(data)), "}") {
		t.Fatalf("export was not written in full: %q\n", string(data))
	}

	if _, err := testRun(t, "", "export", "--datadir", src, "--file", "testdata/no/such/dir/backup.json"); err == nil {
		t.Fatalf("expected error exporting into a missing directory")
	}
}

func TestExportImport(t *testing.T) {
	src := "testdata/export-src"
	dst := "testdata/export-dst"
	backup := "testdata/backup.mp"
	for _, p := range []string{src, dst, backup} {
		os.RemoveAll(p)
		defer os.RemoveAll(p)
	}

	testMustRun(t, "circle", "add", "--datadir", src, "--icon", "💼", "Work")
	testMustRun(t, "export", "--datadir", src, "--format", "msgpack", "--file", backup)
	testMustRun(t, "import", "--datadir", dst, "--format", "msgpack", "--file", backup)

	out := testMustRun(t, "circle", "list", "--datadir", dst)
	if !strings.Contains(out, "Work") {
		t.Fatalf("imported document missing circle: %q\n", out)
	}

	out = testMustRun(t, "export", "--datadir", dst)
	if !strings.Contains(out, `"circles":[`) {
		t.Fatalf("expected json on stdout got %q\n", out)
	}
}

func TestInit(t *testing.T) {
	path := "testdata/chronicle.toml"
	os.RemoveAll(path)
	defer os.RemoveAll(path)

	testMustRun(t, "init", "--out", path)
	data, err := ioutil.ReadFile(path)
	if err != nil {
		t.Fatalf("error reading written config: %s\n", err)
	}
	if !strings.Contains(string(data), "storage_key") {
		t.Fatalf("unexpected config %q\n", string(data))
	}

	if _, err := testRun(t, "", "init", "--out", path); err == nil {
		t.Fatalf("expected error overwriting without --force")
	}
	testMustRun(t, "init", "--out", path, "--force")
}
