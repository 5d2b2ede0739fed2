package registry

import (
	"context"
	"testing"
)

type nopDevice struct{}

func (nopDevice) Do(context.Context, map[string]any) map[string]any { return nil }
func (nopDevice) Close() error                                      { return nil }

type nopBuilder struct{}

func (nopBuilder) Build(context.Context, BuildInput) (Device, error) { return nopDevice{}, nil }

func TestRegisterAndLookup(t *testing.T) {
	RegisterBuilder("test_kind", nopBuilder{})

	b, ok := LookupBuilder("test_kind")
	if !ok || b == nil {
		t.Fatal("expected builder for test_kind")
	}
	if _, ok := LookupBuilder("missing"); ok {
		t.Fatal("did not expect a builder for missing kind")
	}

	found := false
	for _, k := range Kinds() {
		if k == "test_kind" {
			found = true
		}
	}
	if !found {
		t.Fatal("Kinds() does not list test_kind")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on duplicate registration")
		}
	}()
	RegisterBuilder("dup_kind", nopBuilder{})
	RegisterBuilder("dup_kind", nopBuilder{})
}

func TestRegisterEmptyKindPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on empty kind")
		}
	}()
	RegisterBuilder("", nopBuilder{})
}
