package debug

import (
	"strings"
	"testing"
)

func TestNewTreeWriter(t *testing.T) {
	tw := NewTreeWriter()
	if tw == nil {
		t.Fatal("NewTreeWriter() returned nil")
	}
	if tw.String() != "" {
		t.Error("Expected empty string from new TreeWriter")
	}
}

func TestTreeWriter_Line(t *testing.T) {
	tests := []struct {
		name   string
		depth  int
		format string
		args   []any
		want   string
	}{
		{name: "no depth", depth: 0, format: "tabs", want: "tabs\n"},
		{name: "depth 1", depth: 1, format: "tab", want: "  tab\n"},
		{name: "depth 3", depth: 3, format: "item", want: "      item\n"},
		{name: "with formatting", depth: 1, format: "tab #%d struct=%d", args: []any{0, 471}, want: "  tab #0 struct=471\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.Line(tt.depth, tt.format, tt.args...)
			if got := tw.String(); got != tt.want {
				t.Errorf("Line() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_TextBlock(t *testing.T) {
	tw := NewTreeWriter()
	tw.TextBlock(1, "name", "Abyssal Sire")
	tw.TextBlock(2, "name", "")
	tw.TextBlock(0, "name", "Dragon's \"fire\"\n")

	want := "  name: \"Abyssal Sire\"\n    name: \"\"\nname: \"Dragon's \\\"fire\\\"\\n\"\n"
	if got := tw.String(); got != want {
		t.Errorf("TextBlock() = %q, want %q", got, want)
	}
}

func TestTreeWriter_Counter(t *testing.T) {
	tw := NewTreeWriter()
	tw.Counter(0, "tabs", 8, 5)
	tw.Counter(1, "items", 8, 1234)

	want := "tabs:    5\n  items:   1234\n"
	if got := tw.String(); got != want {
		t.Errorf("Counter() = %q, want %q", got, want)
	}
}

func TestEncodeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: `""`},
		{name: "simple text", input: "hello", want: `"hello"`},
		{name: "with quotes", input: `say "hi"`, want: `"say \"hi\""`},
		{name: "with newline", input: "line1\nline2", want: `"line1\nline2"`},
		{name: "non ascii", input: "Café", want: `"Café"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := encodeText(tt.input); got != tt.want {
				t.Errorf("encodeText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_ComplexTree(t *testing.T) {
	tw := NewTreeWriter()
	tw.Line(0, "collection log")
	tw.Line(1, "tab #%d", 0)
	tw.TextBlock(2, "page", "Abyssal Sire")
	tw.Line(3, "%d %s", 13262, "Abyssal orphan")

	result := tw.String()
	for _, want := range []string{
		"collection log\n",
		"  tab #0\n",
		"    page: \"Abyssal Sire\"\n",
		"      13262 Abyssal orphan\n",
	} {
		if !strings.Contains(result, want) {
			t.Errorf("missing line %q in:\n%s", want, result)
		}
	}
}

func TestTreeWriter_Bytes(t *testing.T) {
	tw := NewTreeWriter()
	tw.Bytes(1, "raw", []byte{'M', 0x01})

	got := tw.String()
	if !strings.HasPrefix(got, "  raw: 2 byte(s)\n    00000000  4d 01 ") {
		t.Errorf("Bytes() = %q, want label and indented offset line", got)
	}
	if !strings.HasSuffix(got, "|M.|\n") {
		t.Errorf("Bytes() = %q, want printable column", got)
	}

	tw = NewTreeWriter()
	tw.Bytes(0, "raw", nil)
	if got := tw.String(); got != "raw: 0 byte(s)\n" {
		t.Errorf("Bytes(nil) = %q", got)
	}

	tw = NewTreeWriter()
	tw.Bytes(0, "raw", make([]byte, 17))
	if n := strings.Count(tw.String(), "\n"); n != 3 {
		t.Errorf("Bytes(17 bytes) wrote %d lines, want 3", n)
	}
}
