//go:build !linux && !windows

package input

import (
	"github.com/TanaroSch/macro-manager/internal/engine"
	"github.com/TanaroSch/macro-manager/internal/keyspec"
)

// translate reports the raw key code only; macOS key codes are layout
// dependent and have no portable character mapping.
func translate(raw uint16) engine.KeyEvent {
	return engine.KeyEvent{
		Key:         keyspec.VirtualCode(int(raw)),
		VirtualCode: int(raw),
		HasVirtual:  true,
	}
}
