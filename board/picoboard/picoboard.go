//go:build rp2040 || rp2350

// Package picoboard implements the board capability on RP2-family boards
// (Pico / Pico 2) using the machine PWM slices.
package picoboard

import (
	"context"
	"strconv"
	"sync"

	"machine"

	"buzzercode-go/board"
	"buzzercode-go/errcode"
	"buzzercode-go/x/mathx"
	"buzzercode-go/x/timex"
)

// Local interface to avoid depending on an unexported concrete type in machine.
type pwmCtrl interface {
	Configure(cfg machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	Top() uint32
	Set(channel uint8, value uint32)
}

// Select controller handle for a given slice number (0..7).
func pwmGroupBySlice(slice uint8) pwmCtrl {
	switch slice {
	case 0:
		return machine.PWM0
	case 1:
		return machine.PWM1
	case 2:
		return machine.PWM2
	case 3:
		return machine.PWM3
	case 4:
		return machine.PWM4
	case 5:
		return machine.PWM5
	case 6:
		return machine.PWM6
	default:
		return machine.PWM7
	}
}

// Board maps digit pin names to GP numbers (Pico numbering).
type Board struct {
	mu   sync.Mutex
	pins map[string]*pwmPin
}

func New() *Board {
	return &Board{pins: map[string]*pwmPin{}}
}

func (b *Board) GPIOPinByName(name string) (board.GPIOPin, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if p, ok := b.pins[name]; ok {
		return p, nil
	}
	n, err := strconv.Atoi(name)
	if err != nil || n < 0 || n > 28 {
		return nil, errcode.Wrap(errcode.HardwareComm, "no GPIO pin named "+name, err)
	}
	slice, err := machine.PWMPeripheral(machine.Pin(n))
	if err != nil {
		return nil, errcode.Wrap(errcode.HardwareComm, "no PWM slice for GP"+name, err)
	}
	p := &pwmPin{pin: machine.Pin(n), ctrl: pwmGroupBySlice(slice)}
	b.pins[name] = p
	return p, nil
}

var _ board.Board = (*Board)(nil)

type pwmPin struct {
	mu     sync.Mutex
	pin    machine.Pin
	ctrl   pwmCtrl
	chIdx  uint8
	ready  bool
	freqHz uint
}

func (p *pwmPin) SetPWMFrequency(_ context.Context, freqHz uint) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	period := timex.PeriodFromHz(uint32(mathx.Clamp(freqHz, 1, 1<<31)))
	if err := p.ctrl.Configure(machine.PWMConfig{Period: period}); err != nil {
		return errcode.Wrap(errcode.HardwareComm, "configuring PWM slice", err)
	}
	p.pin.Configure(machine.PinConfig{Mode: machine.PinPWM})
	ch, err := p.ctrl.Channel(p.pin)
	if err != nil {
		return errcode.Wrap(errcode.HardwareComm, "resolving PWM channel", err)
	}
	p.chIdx = ch
	p.freqHz = freqHz
	p.ready = true
	return nil
}

func (p *pwmPin) SetPWM(_ context.Context, dutyCycle float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		if dutyCycle <= 0 {
			return nil
		}
		return errcode.Wrap(errcode.HardwareComm, "PWM frequency not set", nil)
	}
	duty := mathx.Clamp(dutyCycle, 0, 1)
	p.ctrl.Set(p.chIdx, uint32(duty*float64(p.ctrl.Top())))
	return nil
}

var _ board.GPIOPin = (*pwmPin)(nil)
