package buzzer

import (
	"context"
	"fmt"
	"time"

	"buzzercode-go/errcode"
)

type note struct {
	freqHz uint
	durS   float64
}

// Hedwig's Theme as (frequency Hz, duration s) pairs.
var hedwigTheme = []note{
	{622, 0.4}, {740, 0.4}, {784, 0.4}, {740, 0.4},
	{622, 0.4}, {784, 0.4}, {740, 0.8}, {622, 0.4},
	{740, 0.4}, {784, 0.4}, {622, 0.4}, {740, 0.4},
	{622, 0.4}, {587, 0.4}, {622, 0.4}, {659, 0.8},
	{740, 0.4}, {622, 0.4}, {740, 0.4}, {784, 0.4},
	{622, 0.4}, {587, 0.8},
}

const (
	melodyDuty = 0.5
	noteGap    = 100 * time.Millisecond
)

// PlayMelody plays the built-in melody to completion. It has no
// caller-facing error channel; failures abort the remaining notes and are
// logged.
func (d *Driver) PlayMelody(ctx context.Context) {
	if err := d.playMelody(ctx); err != nil {
		logger.Errorf("playing melody: %v", err)
	}
}

func (d *Driver) playMelody(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	logger.Infof("playing Hedwig's Theme")
	pin, err := d.board.GPIOPinByName(d.pin)
	if err != nil {
		return errcode.Wrap(errcode.HardwareComm,
			fmt.Sprintf("looking up pin %q", d.pin), err)
	}

	for _, n := range hedwigTheme {
		logger.Debugf("note: frequency=%d duration=%g", n.freqHz, n.durS)
		if err := pin.SetPWMFrequency(ctx, n.freqHz); err != nil {
			return errcode.Wrap(errcode.HardwareComm, "setting PWM frequency", err)
		}
		if err := d.holdTone(ctx, pin, melodyDuty, secondsToDuration(n.durS)); err != nil {
			return err
		}
		if err := d.sleep(ctx, noteGap); err != nil {
			return errcode.Wrap(errcode.Timeout, "melody cut short", err)
		}
	}

	logger.Infof("finished playing Hedwig's Theme")
	return nil
}
