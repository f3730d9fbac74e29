package chronicle_test

import (
	"testing"

	"gitlab.com/chronicle/chronicle"
)

func TestConfigDefaults(t *testing.T) {
	cfg := &chronicle.Config{MaxDocumentBytes: 10}
	cfg.Defaults()

	if cfg.Backend != chronicle.BackendBadger {
		t.Fatalf("expected badger backend got %s\n", cfg.Backend)
	}
	if cfg.StorageKey != chronicle.StorageKey {
		t.Fatalf("expected default storage key got %s\n", cfg.StorageKey)
	}
	if cfg.MaxDocumentBytes != 10 {
		t.Fatalf("defaults should not touch set fields, got %d\n", cfg.MaxDocumentBytes)
	}

	cfg = &chronicle.Config{Backend: chronicle.BackendMemory, DataPath: "x"}
	cfg.Defaults()
	if cfg.Backend != chronicle.BackendMemory || cfg.DataPath != "x" {
		t.Fatalf("set fields were overwritten: %#v\n", cfg)
	}
}
