package buzzer

import (
	"testing"

	"buzzercode-go/errcode"
)

func TestParseAttributes(t *testing.T) {
	cases := []struct {
		name    string
		attrs   map[string]any
		want    Config
		wantErr errcode.Code
	}{
		{
			name:  "both set",
			attrs: map[string]any{"piezo_pin": "12", "board": "local"},
			want:  Config{PiezoPin: "12", Board: "local"},
		},
		{
			name:  "absent keys leave zero values",
			attrs: map[string]any{},
			want:  Config{},
		},
		{
			name:    "pin of wrong type",
			attrs:   map[string]any{"piezo_pin": 12},
			wantErr: errcode.InvalidConfig,
		},
		{
			name:    "board of wrong type",
			attrs:   map[string]any{"piezo_pin": "12", "board": 7},
			wantErr: errcode.InvalidConfig,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseAttributes(tc.attrs)
			if tc.wantErr != "" {
				if errcode.Of(err) != tc.wantErr {
					t.Fatalf("code = %q, want %q (err: %v)", errcode.Of(err), tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAttributes: %v", err)
			}
			if got != tc.want {
				t.Fatalf("config = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{PiezoPin: "12", Board: "local"}, false},
		{"pin with letter", Config{PiezoPin: "12a", Board: "local"}, true},
		{"empty pin", Config{Board: "local"}, true},
		{"empty board", Config{PiezoPin: "12"}, true},
		{"pin with sign", Config{PiezoPin: "-3", Board: "local"}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			deps, err := tc.cfg.Validate()
			if tc.wantErr {
				if errcode.Of(err) != errcode.InvalidConfig {
					t.Fatalf("code = %q, want invalid_config (err: %v)", errcode.Of(err), err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate: %v", err)
			}
			if len(deps) != 1 || deps[0] != tc.cfg.Board {
				t.Fatalf("implicit deps = %v, want [%s]", deps, tc.cfg.Board)
			}
		})
	}
}
