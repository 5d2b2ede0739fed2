//go:build rp2040 || rp2350

// Command pico-buzzer: piezo bring-up for RP2040/Pico.
//
// Build/flash (TinyGo):
//
//	tinygo flash -target pico ./cmd/pico-buzzer
//
// Wiring assumption: piezo element on GP15 (PWM slice 7, channel B).
package main

import (
	"context"
	"time"

	"machine"

	"tinygo.org/x/drivers/tone"

	"buzzercode-go/board"
	"buzzercode-go/board/picoboard"
	"buzzercode-go/buzzer"
	"buzzercode-go/types"
)

const buzzerPin = "15"

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(3 * time.Second)
	println("== pico-buzzer: piezo bring-up ==")

	// Boot chirp straight through the tone driver, before the device
	// stack comes up.
	if sp, err := tone.New(machine.PWM7, machine.GP15); err == nil {
		sp.SetNote(tone.A4)
		time.Sleep(150 * time.Millisecond)
		sp.Stop()
	}

	deps := board.Dependencies{"local": picoboard.New()}
	drv, err := buzzer.New(buzzer.Config{PiezoPin: buzzerPin, Board: "local"}, deps)
	if err != nil {
		println("buzzer init failed:", err.Error())
		return
	}
	defer drv.Close()

	ctx := context.Background()
	for {
		_ = drv.SoundBuzzer(ctx, types.SoundRequest{
			FrequencyHz: 880, DurationS: 0.2, DutyCycle: 0.5,
		})
		time.Sleep(time.Second)

		drv.PlayMelody(ctx)
		time.Sleep(5 * time.Second)
	}
}
