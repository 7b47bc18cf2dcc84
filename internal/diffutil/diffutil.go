// Package diffutil summarizes what changed between two versions of the
// macro file.
package diffutil

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Stats counts line-level changes between two texts.
type Stats struct {
	OriginalLines int
	ModifiedLines int
	Inserted      int
	Deleted       int
}

// Changed reports whether the texts differ.
func (s Stats) Changed() bool {
	return s.Inserted > 0 || s.Deleted > 0
}

// Compare diffs original and modified line by line.
func Compare(original, modified string) Stats {
	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 5 * time.Second

	a, b, lineArray := dmp.DiffLinesToChars(original, modified)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	stats := Stats{
		OriginalLines: lineCount(original),
		ModifiedLines: lineCount(modified),
	}
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			stats.Inserted += lineCount(d.Text)
		case diffmatchpatch.DiffDelete:
			stats.Deleted += lineCount(d.Text)
		}
	}
	return stats
}

// HTML renders a line-level diff of original and modified as a standalone
// page.
func HTML(title, original, modified string) string {
	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 5 * time.Second

	a, b, lineArray := dmp.DiffLinesToChars(original, modified)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArray)

	var buf strings.Builder
	buf.WriteString("<!DOCTYPE html>\n<html><head><meta charset=\"utf-8\"><title>")
	buf.WriteString(html.EscapeString(title))
	buf.WriteString("</title></head>\n<body style=\"font-family:monospace;white-space:pre-wrap\">\n")
	fmt.Fprintf(&buf, "<h3>%s</h3>\n<p>%s</p>\n", html.EscapeString(title), html.EscapeString(Summary(Compare(original, modified))))
	buf.WriteString(dmp.DiffPrettyHtml(diffs))
	buf.WriteString("\n</body></html>\n")
	return buf.String()
}

// Summary renders stats as a short notification body.
func Summary(s Stats) string {
	if !s.Changed() {
		return "No changes"
	}
	return fmt.Sprintf("%d line(s) added, %d removed (%d -> %d lines)",
		s.Inserted, s.Deleted, s.OriginalLines, s.ModifiedLines)
}

// lineCount returns the number of physical lines in s.
func lineCount(s string) int {
	if s == "" {
		return 0
	}
	n := strings.Count(s, "\n")
	if !strings.HasSuffix(s, "\n") {
		n++ // final line has no trailing newline
	}
	return n
}
