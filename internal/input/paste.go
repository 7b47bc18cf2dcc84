package input

import (
	"fmt"
	"log"
	"runtime"

	"github.com/atotto/clipboard"
	"github.com/go-vgo/robotgo"
)

// Paster emits macro text by placing it on the clipboard and sending the
// platform paste shortcut. The previous clipboard content is restored.
type Paster struct {
	// SettleMs is how long to wait after pasting before restoring the
	// clipboard.
	SettleMs int
}

// NewPaster returns a Paster with a default settle time.
func NewPaster() *Paster {
	return &Paster{SettleMs: 100}
}

func pasteModifier() string {
	if runtime.GOOS == "darwin" {
		return "cmd"
	}
	return "ctrl"
}

// Type implements engine.Injector.
func (p *Paster) Type(text string) error {
	original, err := clipboard.ReadAll()
	if err != nil {
		// An empty or non-text clipboard is not worth failing over.
		log.Printf("Paster: could not read clipboard, it will not be restored: %v", err)
		original = ""
	}

	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}

	tapErr := robotgo.KeyTap("v", pasteModifier())
	if tapErr != nil {
		log.Printf("Paster: paste shortcut failed, trying fallback: %v", tapErr)
		if fbErr := fallbackPaste(); fbErr == nil {
			tapErr = nil
		}
	}
	robotgo.MilliSleep(p.SettleMs)

	if restoreErr := clipboard.WriteAll(original); restoreErr != nil {
		log.Printf("Paster: failed to restore clipboard: %v", restoreErr)
	}
	if tapErr != nil {
		return fmt.Errorf("paste shortcut: %w", tapErr)
	}
	log.Printf("Paster: pasted %d characters", len([]rune(text)))
	return nil
}
