package buzzer

import (
	"github.com/pkg/errors"

	"buzzercode-go/errcode"
)

// Config names the GPIO pin driving the piezo element and the board
// capability the pin belongs to.
type Config struct {
	PiezoPin string `json:"piezo_pin"`
	Board    string `json:"board"`
}

// ParseAttributes builds a Config from a raw attribute map. Attributes of
// the wrong type fail with InvalidConfig.
func ParseAttributes(attrs map[string]any) (Config, error) {
	var cfg Config
	if v, ok := attrs["piezo_pin"]; ok {
		s, ok := v.(string)
		if !ok {
			return Config{}, errors.Wrap(errcode.InvalidConfig,
				"piezo_pin must be configured as a string")
		}
		cfg.PiezoPin = s
	}
	if v, ok := attrs["board"]; ok {
		s, ok := v.(string)
		if !ok {
			return Config{}, errors.Wrap(errcode.InvalidConfig,
				"board must be configured as a string")
		}
		cfg.Board = s
	}
	return cfg, nil
}

// Validate checks the config and returns the names of the dependencies it
// implies (the board).
func (c Config) Validate() ([]string, error) {
	if c.PiezoPin == "" {
		return nil, errors.Wrap(errcode.InvalidConfig, "piezo_pin is required")
	}
	if !isDigits(c.PiezoPin) {
		return nil, errors.Wrap(errcode.InvalidConfig,
			"piezo_pin must be a numeric string (digits only)")
	}
	if c.Board == "" {
		return nil, errors.Wrap(errcode.InvalidConfig, "board is required")
	}
	return []string{c.Board}, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
