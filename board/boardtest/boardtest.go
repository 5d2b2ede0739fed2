// Package boardtest provides a recording fake board for driver tests.
package boardtest

import (
	"context"
	"sync"

	"buzzercode-go/board"
)

// OpKind discriminates recorded pin operations.
type OpKind string

const (
	OpFreq OpKind = "freq"
	OpPWM  OpKind = "pwm"
)

// Op is one recorded hardware call.
type Op struct {
	Kind OpKind
	Freq uint    // set for OpFreq
	Duty float64 // set for OpPWM
}

// Pin records every PWM call made against it. Error fields inject
// failures at the matching call site.
type Pin struct {
	mu  sync.Mutex
	ops []Op

	// FreqErr, if set, is returned by SetPWMFrequency.
	FreqErr error
	// PWMErr, if set, is consulted per call with the requested duty.
	PWMErr func(duty float64) error
}

func (p *Pin) SetPWMFrequency(_ context.Context, freqHz uint) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.FreqErr != nil {
		return p.FreqErr
	}
	p.ops = append(p.ops, Op{Kind: OpFreq, Freq: freqHz})
	return nil
}

func (p *Pin) SetPWM(_ context.Context, duty float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.PWMErr != nil {
		if err := p.PWMErr(duty); err != nil {
			return err
		}
	}
	p.ops = append(p.ops, Op{Kind: OpPWM, Duty: duty})
	return nil
}

// Ops returns a copy of the recorded calls in order.
func (p *Pin) Ops() []Op {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Op(nil), p.ops...)
}

// Reset clears the recorded calls.
func (p *Pin) Reset() {
	p.mu.Lock()
	p.ops = nil
	p.mu.Unlock()
}

var _ board.GPIOPin = (*Pin)(nil)

// Board hands out fake pins by name, creating them on first lookup.
type Board struct {
	mu   sync.Mutex
	pins map[string]*Pin

	// LookupErr, if set, makes every GPIOPinByName call fail.
	LookupErr error
}

func NewBoard() *Board {
	return &Board{pins: map[string]*Pin{}}
}

func (b *Board) GPIOPinByName(name string) (board.GPIOPin, error) {
	if b.LookupErr != nil {
		return nil, b.LookupErr
	}
	return b.Pin(name), nil
}

// Pin returns the named fake pin for inspection, creating it if needed.
func (b *Board) Pin(name string) *Pin {
	b.mu.Lock()
	defer b.mu.Unlock()
	p, ok := b.pins[name]
	if !ok {
		p = &Pin{}
		b.pins[name] = p
	}
	return p
}

var _ board.Board = (*Board)(nil)
