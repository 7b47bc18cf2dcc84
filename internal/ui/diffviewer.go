package ui

import (
	"fmt"
	"os"
	"time"

	"github.com/TanaroSch/macro-manager/internal/diffutil"
)

// ShowDiffViewer writes an HTML diff of two macro file versions to a
// temporary file and opens it in the default browser.
func ShowDiffViewer(title, original, modified string) error {
	f, err := os.CreateTemp("", "macromanager-diff-*.html")
	if err != nil {
		return fmt.Errorf("failed to create diff file: %w", err)
	}
	if _, err := f.WriteString(diffutil.HTML(title, original, modified)); err != nil {
		f.Close()
		os.Remove(f.Name())
		return fmt.Errorf("failed to write diff file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write diff file: %w", err)
	}

	if err := OpenFileInDefaultApp(f.Name()); err != nil {
		os.Remove(f.Name())
		return err
	}
	// The browser has loaded the page well before this.
	time.AfterFunc(time.Minute, func() { os.Remove(f.Name()) })
	return nil
}
