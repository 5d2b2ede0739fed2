// Package registry installs device builders by kind so a process can
// assemble its configured devices without hard-wiring each one.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"buzzercode-go/board"
)

// BuildInput is provided to a device builder to construct a Device.
type BuildInput struct {
	ID         string
	Attributes map[string]any
	Deps       board.Dependencies
}

// Device is a built, ready device.
type Device interface {
	// Do handles runtime commands; every entry maps to a string result.
	Do(ctx context.Context, cmd map[string]any) map[string]any

	// Close releases the device, quiescing any output it drives.
	Close() error
}

// Builder constructs a Device from attributes and resolved dependencies.
type Builder interface {
	Build(ctx context.Context, in BuildInput) (Device, error)
}

var (
	muBuilders sync.RWMutex
	builders   = map[string]Builder{}
)

// RegisterBuilder installs a builder for a given device kind string.
// It panics on duplicate registration to catch mistakes at start-up.
func RegisterBuilder(kind string, b Builder) {
	muBuilders.Lock()
	defer muBuilders.Unlock()
	if kind == "" {
		panic("registry: empty device kind for builder")
	}
	if _, dup := builders[kind]; dup {
		panic(fmt.Sprintf("registry: duplicate builder for kind %q", kind))
	}
	builders[kind] = b
}

// LookupBuilder returns the builder for a kind, if installed.
func LookupBuilder(kind string) (Builder, bool) {
	muBuilders.RLock()
	defer muBuilders.RUnlock()
	b, ok := builders[kind]
	return b, ok
}

// Kinds lists the installed builder kinds, sorted.
func Kinds() []string {
	muBuilders.RLock()
	defer muBuilders.RUnlock()
	out := make([]string, 0, len(builders))
	for k := range builders {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
