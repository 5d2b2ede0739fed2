// Package buzzer implements a piezo buzzer device driven through a board's
// PWM-capable GPIO pin: single tones, a built-in melody, and string-keyed
// runtime commands.
package buzzer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/juju/loggo"

	"buzzercode-go/board"
	"buzzercode-go/errcode"
	"buzzercode-go/types"
	"buzzercode-go/x/mathx"
	"buzzercode-go/x/timex"
)

var logger = loggo.GetLogger("buzzer.driver")

// Driver drives one piezo buzzer. All hardware-touching operations are
// serialized; overlapping calls queue on the driver mutex.
type Driver struct {
	mu    sync.Mutex
	pin   string
	board board.Board

	// sleep performs the timed waits between PWM transitions.
	sleep func(ctx context.Context, d time.Duration) error
}

// New validates cfg, resolves the board dependency and returns a ready
// driver. Configuration failures are fatal: no driver is returned.
func New(cfg Config, deps board.Dependencies) (*Driver, error) {
	if _, err := cfg.Validate(); err != nil {
		return nil, err
	}
	b, err := board.FromDependencies(deps, cfg.Board)
	if err != nil {
		return nil, err
	}
	logger.Debugf("using pin %s on board %q", cfg.PiezoPin, cfg.Board)
	return &Driver{pin: cfg.PiezoPin, board: b, sleep: timex.Sleep}, nil
}

// Info reports the pin the driver was configured with.
func (d *Driver) Info() types.BuzzerInfo {
	return types.BuzzerInfo{Pin: d.pin}
}

// SoundBuzzer drives one tone: set frequency, raise the duty cycle, hold
// for the requested duration, drop the duty cycle back to zero. The
// frequency is truncated to whole Hz. Argument violations fail before any
// hardware call. Cancelling ctx cuts the hold short; the duty cycle still
// returns to zero.
func (d *Driver) SoundBuzzer(ctx context.Context, req types.SoundRequest) error {
	if err := validateRequest(req); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	freq := uint(req.FrequencyHz)
	logger.Infof("activating buzzer: frequency=%d duration=%g duty_cycle=%g",
		freq, req.DurationS, req.DutyCycle)

	pin, err := d.board.GPIOPinByName(d.pin)
	if err != nil {
		return errcode.Wrap(errcode.HardwareComm,
			fmt.Sprintf("looking up pin %q", d.pin), err)
	}
	if err := pin.SetPWMFrequency(ctx, freq); err != nil {
		return errcode.Wrap(errcode.HardwareComm, "setting PWM frequency", err)
	}
	if err := d.holdTone(ctx, pin, req.DutyCycle, secondsToDuration(req.DurationS)); err != nil {
		return err
	}
	logger.Infof("buzzer operation completed successfully")
	return nil
}

// holdTone raises the duty cycle, waits, and lowers it again. The off-call
// runs on every exit path, detached from ctx so a cancelled caller still
// silences the pin. Caller holds d.mu.
func (d *Driver) holdTone(ctx context.Context, pin board.GPIOPin, duty float64, dur time.Duration) error {
	onErr := pin.SetPWM(ctx, duty)
	var waitErr error
	if onErr == nil {
		waitErr = d.sleep(ctx, dur)
	}
	offErr := pin.SetPWM(context.WithoutCancel(ctx), 0)

	switch {
	case onErr != nil:
		return errcode.Wrap(errcode.HardwareComm, "setting PWM duty cycle", onErr)
	case waitErr != nil:
		return errcode.Wrap(errcode.Timeout, "tone cut short", waitErr)
	case offErr != nil:
		return errcode.Wrap(errcode.HardwareComm, "clearing PWM duty cycle", offErr)
	}
	return nil
}

// Close silences the buzzer. Safe to call with a tone pending; it queues
// behind the running operation.
func (d *Driver) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	pin, err := d.board.GPIOPinByName(d.pin)
	if err != nil {
		return errcode.Wrap(errcode.HardwareComm,
			fmt.Sprintf("looking up pin %q", d.pin), err)
	}
	return pin.SetPWM(context.Background(), 0)
}

func validateRequest(req types.SoundRequest) error {
	if req.FrequencyHz <= 0 {
		return errcode.Wrap(errcode.InvalidArgument,
			fmt.Sprintf("Frequency must be a positive number. Got: %v", req.FrequencyHz), nil)
	}
	if req.DurationS <= 0 {
		return errcode.Wrap(errcode.InvalidArgument,
			fmt.Sprintf("Duration must be a positive number. Got: %v", req.DurationS), nil)
	}
	if !mathx.Between(req.DutyCycle, 0, 1) {
		return errcode.Wrap(errcode.InvalidArgument,
			fmt.Sprintf("Duty cycle must be between 0 and 1. Got: %v", req.DutyCycle), nil)
	}
	return nil
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
