package board

import (
	"context"
	"testing"

	"buzzercode-go/errcode"
)

type stubBoard struct{}

func (stubBoard) GPIOPinByName(name string) (GPIOPin, error) { return nil, nil }

var _ Board = stubBoard{}

func TestFromDependencies_Resolves(t *testing.T) {
	deps := Dependencies{"local": stubBoard{}}
	b, err := FromDependencies(deps, "local")
	if err != nil {
		t.Fatalf("FromDependencies: %v", err)
	}
	if b == nil {
		t.Fatal("expected a board")
	}
}

func TestFromDependencies_Missing(t *testing.T) {
	_, err := FromDependencies(Dependencies{}, "local")
	if errcode.Of(err) != errcode.DependencyUnresolved {
		t.Fatalf("code = %q, want dependency_unresolved", errcode.Of(err))
	}
}

func TestFromDependencies_WrongType(t *testing.T) {
	deps := Dependencies{"local": "not a board"}
	_, err := FromDependencies(deps, "local")
	if errcode.Of(err) != errcode.DependencyUnresolved {
		t.Fatalf("code = %q, want dependency_unresolved", errcode.Of(err))
	}
}

// Compile-time check that context-first pin methods stay on the contract.
type noopPin struct{}

func (noopPin) SetPWMFrequency(context.Context, uint) error { return nil }
func (noopPin) SetPWM(context.Context, float64) error       { return nil }

var _ GPIOPin = noopPin{}
