package store_test

import (
	"testing"

	"github.com/pkg/errors"
	"gitlab.com/chronicle/chronicle"
	"gitlab.com/chronicle/store"
)

func TestMemoryStore(t *testing.T) {
	s := store.NewMemoryStore(0)
	if err := s.Init(); err != nil {
		t.Fatalf("error init: %s\n", err)
	}

	v, err := s.Get("missing")
	if err != nil || v != nil {
		t.Fatalf("expected nil, nil got %v, %v\n", v, err)
	}

	in := []byte("hello")
	if err := s.Set("k", in); err != nil {
		t.Fatalf("error setting: %s\n", err)
	}
	in[0] = 'j'

	v, _ = s.Get("k")
	if string(v) != "hello" {
		t.Fatalf("store kept a reference to the caller's slice: %q\n", string(v))
	}
	v[0] = 'y'
	v, _ = s.Get("k")
	if string(v) != "hello" {
		t.Fatalf("store returned its own slice: %q\n", string(v))
	}
}

func TestMemoryStoreQuota(t *testing.T) {
	s := store.NewMemoryStore(10)
	if err := s.Init(); err != nil {
		t.Fatalf("error init: %s\n", err)
	}

	if err := s.Set("k", []byte("0123456789")); err != nil {
		t.Fatalf("value at quota should fit: %s\n", err)
	}

	// replacing a value only counts the difference
	if err := s.Set("k", []byte("012345678")); err != nil {
		t.Fatalf("smaller replacement should fit: %s\n", err)
	}

	err := s.Set("other", []byte("01"))
	if !errors.Is(err, chronicle.ErrQuotaExceeded) {
		t.Fatalf("expected quota exceeded got %v\n", err)
	}

	v, _ := s.Get("other")
	if v != nil {
		t.Fatalf("rejected value was stored")
	}
}
