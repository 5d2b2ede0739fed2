// Package periphboard implements the board capability on top of periph.io,
// mapping named pins to the host's GPIO registry.
package periphboard

import (
	"context"
	"fmt"
	"sync"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"

	"buzzercode-go/board"
	"buzzercode-go/errcode"
	"buzzercode-go/x/mathx"
)

// Board resolves pins through periph's GPIO registry.
type Board struct {
	mu   sync.Mutex
	pins map[string]*pwmPin
}

// New initialises the periph host drivers and returns a board.
func New() (*Board, error) {
	if _, err := host.Init(); err != nil {
		return nil, errcode.Wrap(errcode.HardwareComm, "periph host init failed", err)
	}
	return &Board{pins: map[string]*pwmPin{}}, nil
}

// GPIOPinByName looks the pin up by registry name. Digit-only names are
// also tried with the conventional "GPIO" prefix so a configured pin "12"
// finds GPIO12 on a Pi.
func (b *Board) GPIOPinByName(name string) (board.GPIOPin, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if p, ok := b.pins[name]; ok {
		return p, nil
	}
	raw := gpioreg.ByName(name)
	if raw == nil {
		raw = gpioreg.ByName("GPIO" + name)
	}
	if raw == nil {
		return nil, errcode.Wrap(errcode.HardwareComm,
			fmt.Sprintf("no GPIO pin named %q", name), nil)
	}
	p := &pwmPin{pin: raw}
	b.pins[name] = p
	return p, nil
}

var _ board.Board = (*Board)(nil)

// pwmPin adapts periph's combined PWM(duty, freq) call to the split
// frequency/duty contract: the frequency is remembered and applied on the
// next duty change.
type pwmPin struct {
	mu     sync.Mutex
	pin    gpio.PinIO
	freqHz uint
}

func (p *pwmPin) SetPWMFrequency(_ context.Context, freqHz uint) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.freqHz = freqHz
	return nil
}

func (p *pwmPin) SetPWM(_ context.Context, dutyCycle float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if dutyCycle <= 0 {
		if err := p.pin.Halt(); err != nil {
			return errcode.Wrap(errcode.HardwareComm, "halting "+p.pin.Name(), err)
		}
		return nil
	}
	if p.freqHz == 0 {
		return errcode.Wrap(errcode.HardwareComm,
			"PWM frequency not set on "+p.pin.Name(), nil)
	}

	duty := gpio.Duty(mathx.Clamp(dutyCycle, 0, 1) * float64(gpio.DutyMax))
	freq := physic.Frequency(p.freqHz) * physic.Hertz
	if err := p.pin.PWM(duty, freq); err != nil {
		return errcode.Wrap(errcode.HardwareComm, "PWM on "+p.pin.Name(), err)
	}
	return nil
}

var _ board.GPIOPin = (*pwmPin)(nil)
