package macro

import (
	"errors"
	"testing"

	"github.com/TanaroSch/macro-manager/internal/keyspec"
)

func TestKeyName(t *testing.T) {
	tests := []struct {
		name string
		in   keyspec.KeySpec
		want string
	}{
		{"character", keyspec.Char('a'), "A"},
		{"apostrophe", keyspec.Char('\''), "'"},
		{"quote character", keyspec.Char('"'), "\""},
		{"named", keyspec.Named("home"), "HOME"},
		{"keypad five", keyspec.VirtualCode(65437), "KP_5"},
		{"other virtual", keyspec.VirtualCode(65438), "<65438>"},
		{"unbound", keyspec.KeySpec{}, "NONE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KeyName(tt.in); got != tt.want {
				t.Errorf("KeyName(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRegistryKeyName(t *testing.T) {
	r := NewRegistry()
	r.Add(keyspec.VirtualCode(65437), "anything", "Keypad")
	r.Add(keyspec.Char('\''), "", "")

	if got, err := r.KeyName(0); err != nil || got != "KP_5" {
		t.Errorf("KeyName(0) = %q, %v; want KP_5", got, err)
	}
	if got, err := r.KeyName(1); err != nil || got != "'" {
		t.Errorf("KeyName(1) = %q, %v; want '", got, err)
	}
	if _, err := r.KeyName(2); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("KeyName(2) error = %v, want ErrOutOfRange", err)
	}
}
