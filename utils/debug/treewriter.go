// Package debug has helpers producing human readable dumps for debug reports.
package debug

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// TreeWriter accumulates indented text, two spaces per level.
type TreeWriter struct {
	w *strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{
		w: &strings.Builder{},
	}
}

func (tw TreeWriter) String() string {
	return tw.w.String()
}

func (tw TreeWriter) indent(depth int) {
	for range depth {
		tw.w.WriteString("  ")
	}
}

func (tw TreeWriter) Line(depth int, format string, args ...any) {
	tw.indent(depth)
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

// TextBlock writes labeled text value quoted, so names with leading spaces or
// control characters are visible.
func (tw TreeWriter) TextBlock(depth int, label, value string) {
	tw.indent(depth)
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	tw.w.WriteString(encodeText(value))
	tw.w.WriteByte('\n')
}

// Counter writes labeled number aligned to width characters.
func (tw TreeWriter) Counter(depth int, label string, width, n int) {
	tw.indent(depth)
	fmt.Fprintf(tw.w, "%-*s %d\n", width, label+":", n)
}

// Bytes writes labeled hex dump of data, one indented line per 16 bytes.
func (tw TreeWriter) Bytes(depth int, label string, data []byte) {
	tw.Line(depth, "%s: %d byte(s)", label, len(data))
	for line := range strings.Lines(hex.Dump(data)) {
		tw.indent(depth + 1)
		tw.w.WriteString(line)
	}
}

func encodeText(raw string) string {
	if raw == "" {
		return `""`
	}
	return strconv.Quote(raw)
}
