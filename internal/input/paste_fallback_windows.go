//go:build windows

package input

import (
	"fmt"
	"syscall"
	"unsafe"
)

const (
	inputKeyboard = 1
	keyEventKeyUp = 0x0002
	vkControl     = 0x11
	vkV           = 0x56
)

// keyboardInput mirrors the Win32 INPUT structure for keyboard events.
type keyboardInput struct {
	Type uint32
	Ki   struct {
		WVk         uint16
		WScan       uint16
		DwFlags     uint32
		Time        uint32
		DwExtraInfo uintptr
		Padding1    uint32
		Padding2    uint32
		Padding3    uint32
	}
}

var procSendInput = syscall.NewLazyDLL("user32.dll").NewProc("SendInput")

// fallbackPaste sends Ctrl+V through SendInput.
func fallbackPaste() error {
	steps := []struct {
		vk    uint16
		flags uint32
	}{
		{vkControl, 0},
		{vkV, 0},
		{vkV, keyEventKeyUp},
		{vkControl, keyEventKeyUp},
	}

	inputs := make([]keyboardInput, len(steps))
	for i, s := range steps {
		inputs[i].Type = inputKeyboard
		inputs[i].Ki.WVk = s.vk
		inputs[i].Ki.DwFlags = s.flags
	}

	ret, _, err := procSendInput.Call(
		uintptr(len(inputs)),
		uintptr(unsafe.Pointer(&inputs[0])),
		uintptr(unsafe.Sizeof(inputs[0])),
	)
	if ret != uintptr(len(inputs)) {
		return fmt.Errorf("SendInput sent %d of %d inputs: %v", ret, len(inputs), err)
	}
	return nil
}
