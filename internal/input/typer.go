package input

import (
	"fmt"
	"log"

	"github.com/go-vgo/robotgo"
)

// stroke is one emission step: either literal text typed as Unicode, or a
// named key tapped.
type stroke struct {
	text string
	tap  string
}

// plan splits text into strokes. Newlines and tabs become key taps since
// typing them as Unicode is not reliable across platforms; carriage
// returns are dropped.
func plan(text string, perRune bool) []stroke {
	var (
		strokes []stroke
		run     []rune
	)
	flush := func() {
		if len(run) > 0 {
			strokes = append(strokes, stroke{text: string(run)})
			run = run[:0]
		}
	}
	for _, r := range text {
		switch r {
		case '\r':
			continue
		case '\n':
			flush()
			strokes = append(strokes, stroke{tap: "enter"})
		case '\t':
			flush()
			strokes = append(strokes, stroke{tap: "tab"})
		default:
			run = append(run, r)
			if perRune {
				flush()
			}
		}
	}
	flush()
	return strokes
}

// Typer types macro text as synthetic keystrokes with robotgo.
type Typer struct {
	// KeyDelayMs pauses between characters; zero types each run of
	// characters in one call.
	KeyDelayMs int
}

// NewTyper returns a Typer with the given per-character delay.
func NewTyper(keyDelayMs int) *Typer {
	return &Typer{KeyDelayMs: keyDelayMs}
}

// Type implements engine.Injector.
func (t *Typer) Type(text string) error {
	strokes := plan(text, t.KeyDelayMs > 0)
	log.Printf("Typer: emitting %d strokes", len(strokes))

	for _, s := range strokes {
		if s.tap != "" {
			if err := robotgo.KeyTap(s.tap); err != nil {
				return fmt.Errorf("key tap %q: %w", s.tap, err)
			}
		} else {
			robotgo.TypeStr(s.text)
		}
		if t.KeyDelayMs > 0 {
			robotgo.MilliSleep(t.KeyDelayMs)
		}
	}
	return nil
}
