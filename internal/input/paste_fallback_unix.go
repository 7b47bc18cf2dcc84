//go:build !windows

package input

import (
	"errors"
	"log"
	"os/exec"
)

// pasteFallbacks are external tools tried when robotgo cannot send the
// paste shortcut, as happens under Wayland.
var pasteFallbacks = [][]string{
	{"xdotool", "key", "ctrl+v"},
	{"wtype", "-M", "ctrl", "-P", "v", "-m", "ctrl"},
	{"osascript", "-e", `tell application "System Events" to keystroke "v" using command down`},
}

func fallbackPaste() error {
	for _, args := range pasteFallbacks {
		out, err := exec.Command(args[0], args[1:]...).CombinedOutput()
		if err == nil {
			log.Printf("Paster: pasted with %s", args[0])
			return nil
		}
		log.Printf("Paster: %s paste failed: %v %s", args[0], err, out)
	}
	return errors.New("no paste method succeeded (tried xdotool, wtype, osascript)")
}
