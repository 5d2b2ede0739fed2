package buzzer

import (
	"context"
	"fmt"

	"buzzercode-go/types"
)

// Runtime command names.
const (
	CmdSoundBuzzer     = "sound_buzzer"
	CmdPlayHarryPotter = "play_harry_potter"
)

// Do handles runtime commands. Each entry of cmd resolves to exactly one
// command variant and produces a string result under the same key; nothing
// escapes as an error. Entries of a multi-command request run in
// unspecified order.
func (d *Driver) Do(ctx context.Context, cmd map[string]any) map[string]any {
	result := make(map[string]any, len(cmd))
	for name, args := range cmd {
		result[name] = parseCommand(name, args).run(ctx, d)
	}
	return result
}

// command is the closed set of things Do can be asked to run.
type command interface {
	run(ctx context.Context, d *Driver) string
}

func parseCommand(name string, args any) command {
	switch name {
	case CmdSoundBuzzer:
		req := types.DefaultSoundRequest()
		if m, ok := args.(map[string]any); ok {
			if v, ok := numberArg(m, "frequency"); ok {
				req.FrequencyHz = v
			}
			if v, ok := numberArg(m, "duration"); ok {
				req.DurationS = v
			}
			if v, ok := numberArg(m, "duty_cycle"); ok {
				req.DutyCycle = v
			}
		}
		return soundCommand{req: req}
	case CmdPlayHarryPotter:
		return melodyCommand{}
	default:
		return unknownCommand{name: name}
	}
}

type soundCommand struct {
	req types.SoundRequest
}

func (c soundCommand) run(ctx context.Context, d *Driver) string {
	if err := d.SoundBuzzer(ctx, c.req); err != nil {
		logger.Errorf("sound_buzzer command: %v", err)
		return "Error: " + err.Error()
	}
	return fmt.Sprintf("Buzzer activated: %dHz for %gs with %g%% duty cycle.",
		uint(c.req.FrequencyHz), c.req.DurationS, c.req.DutyCycle*100)
}

type melodyCommand struct{}

func (melodyCommand) run(ctx context.Context, d *Driver) string {
	if err := d.playMelody(ctx); err != nil {
		logger.Errorf("play_harry_potter command: %v", err)
		return "Error: " + err.Error()
	}
	return "Played Harry Potter theme song."
}

type unknownCommand struct {
	name string
}

func (c unknownCommand) run(context.Context, *Driver) string {
	return "Unknown command: " + c.name
}

// numberArg reads a numeric argument of any JSON-ish numeric shape.
func numberArg(m map[string]any, key string) (float64, bool) {
	v, ok := m[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	default:
		return 0, false
	}
}
