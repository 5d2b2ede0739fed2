package buzzer

import (
	"context"

	"buzzercode-go/registry"
)

// Kind is the device kind the buzzer registers under.
const Kind = "piezo"

func init() { registry.RegisterBuilder(Kind, builder{}) }

type builder struct{}

func (builder) Build(_ context.Context, in registry.BuildInput) (registry.Device, error) {
	cfg, err := ParseAttributes(in.Attributes)
	if err != nil {
		return nil, err
	}
	return New(cfg, in.Deps)
}

var _ registry.Device = (*Driver)(nil)
