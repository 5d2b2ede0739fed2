package types

// ------------------------
// Buzzer
// ------------------------

// BuzzerInfo describes a configured piezo buzzer.
type BuzzerInfo struct {
	Pin   string `json:"pin"`
	Board string `json:"board"`
}

// SoundRequest is the payload for a single tone.
type SoundRequest struct {
	FrequencyHz float64 `json:"frequency"`  // > 0; truncated to whole Hz before use
	DurationS   float64 `json:"duration"`   // > 0, seconds
	DutyCycle   float64 `json:"duty_cycle"` // 0..1
}

// Defaults applied when a command omits a field.
const (
	DefaultFrequencyHz = 1000.0
	DefaultDurationS   = 1.0
	DefaultDutyCycle   = 0.5
)

// DefaultSoundRequest returns a request with all defaults filled in.
func DefaultSoundRequest() SoundRequest {
	return SoundRequest{
		FrequencyHz: DefaultFrequencyHz,
		DurationS:   DefaultDurationS,
		DutyCycle:   DefaultDutyCycle,
	}
}
