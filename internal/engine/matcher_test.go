package engine

import (
	"testing"

	"github.com/TanaroSch/macro-manager/internal/keyspec"
)

func TestMatch(t *testing.T) {
	home := KeyEvent{Key: keyspec.Named("home"), VirtualCode: 65360, HasVirtual: true}
	charA := KeyEvent{Key: keyspec.Char('a'), Char: 'a', HasChar: true, VirtualCode: 65, HasVirtual: true}

	tests := []struct {
		name    string
		ev      KeyEvent
		hotkeys []keyspec.KeySpec
		want    int
		wantOK  bool
	}{
		{
			name:    "raw equality overrides earlier virtual-code match",
			ev:      home,
			hotkeys: []keyspec.KeySpec{keyspec.Named("home"), keyspec.VirtualCode(65360)},
			want:    0,
			wantOK:  true,
		},
		{
			name:    "raw equality overrides later virtual-code match",
			ev:      home,
			hotkeys: []keyspec.KeySpec{keyspec.VirtualCode(65360), keyspec.Named("home")},
			want:    1,
			wantOK:  true,
		},
		{
			name:    "character check overrides virtual-code check",
			ev:      charA,
			hotkeys: []keyspec.KeySpec{keyspec.Char('a'), keyspec.VirtualCode(65)},
			want:    0,
			wantOK:  true,
		},
		{
			name:    "virtual code alone",
			ev:      KeyEvent{Key: keyspec.VirtualCode(65437), VirtualCode: 65437, HasVirtual: true},
			hotkeys: []keyspec.KeySpec{keyspec.Char('5'), keyspec.VirtualCode(65437)},
			want:    1,
			wantOK:  true,
		},
		{
			name:    "later duplicate wins within a scan",
			ev:      CharEvent('a'),
			hotkeys: []keyspec.KeySpec{keyspec.Char('a'), keyspec.Char('b'), keyspec.Char('a')},
			want:    2,
			wantOK:  true,
		},
		{
			name:    "no cross-variant coercion",
			ev:      CharEvent('a'),
			hotkeys: []keyspec.KeySpec{keyspec.VirtualCode('a'), keyspec.Named("a")},
			want:    -1,
			wantOK:  false,
		},
		{
			name:    "unbound hotkeys never match",
			ev:      KeyEvent{},
			hotkeys: []keyspec.KeySpec{{}, {}},
			want:    -1,
			wantOK:  false,
		},
		{
			name:    "empty registry",
			ev:      CharEvent('a'),
			hotkeys: nil,
			want:    -1,
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Match(tt.ev, tt.hotkeys)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Match() = %d, %v; want %d, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
