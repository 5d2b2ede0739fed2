// Package board defines the board capability a buzzer device drives its
// tones through, and the dependency map it is resolved from.
package board

import (
	"context"
	"fmt"

	"buzzercode-go/errcode"
)

// A GPIOPin is an individual pin on a board, addressable by name.
type GPIOPin interface {
	// SetPWMFrequency sets the pin's PWM frequency in Hz.
	SetPWMFrequency(ctx context.Context, freqHz uint) error

	// SetPWM sets the pin's duty cycle as a fraction in [0, 1].
	// 0 turns the output off.
	SetPWM(ctx context.Context, dutyCycle float64) error
}

// A Board exposes named GPIO pins.
type Board interface {
	GPIOPinByName(name string) (GPIOPin, error)
}

// Dependencies maps dependency names to resolved capabilities, as handed
// to a device builder by whatever assembles the process.
type Dependencies map[string]any

// FromDependencies resolves the named board capability. A missing entry or
// an entry of the wrong type both fail with DependencyUnresolved.
func FromDependencies(deps Dependencies, name string) (Board, error) {
	res, ok := deps[name]
	if !ok {
		return nil, errcode.Wrap(errcode.DependencyUnresolved,
			fmt.Sprintf("board %q not found among dependencies", name), nil)
	}
	b, ok := res.(Board)
	if !ok {
		return nil, errcode.Wrap(errcode.DependencyUnresolved,
			fmt.Sprintf("dependency %q is %T, not a board", name, res), nil)
	}
	return b, nil
}
