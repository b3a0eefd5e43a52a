package ui

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

// newMarkdownWriterForTest bypasses the *os.File check so tests can run
// without an actual TTY.
func newMarkdownWriterForTest(out io.Writer, raw, isTTY bool) *MarkdownWriter {
	return &MarkdownWriter{
		out:   out,
		opts:  MarkdownOptions{Raw: raw, Style: "dark", Width: 80},
		isTTY: isTTY,
	}
}

func TestMarkdownWriter_RawMode_PassesThrough(t *testing.T) {
	var buf bytes.Buffer
	mdw := newMarkdownWriterForTest(&buf, true, true)
	input := "# Review report\n\nStreak: **12 days**\n"
	if _, err := io.WriteString(mdw, input); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := buf.String(); got != input {
		t.Errorf("raw mode: got %q, want %q", got, input)
	}
	if err := mdw.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if buf.String() != input {
		t.Error("Flush in raw mode should not write additional bytes")
	}
}

func TestMarkdownWriter_NonTTY_PassesThrough(t *testing.T) {
	var buf bytes.Buffer
	mdw := newMarkdownWriterForTest(&buf, false, false)
	input := "## Forecast\n\n- Today: 42\n"
	io.WriteString(mdw, input) //nolint:errcheck
	if got := buf.String(); got != input {
		t.Errorf("non-TTY mode: got %q, want %q", got, input)
	}
}

func TestMarkdownWriter_TTYMode_BuffersUntilFlush(t *testing.T) {
	var buf bytes.Buffer
	mdw := newMarkdownWriterForTest(&buf, false, true)

	for _, c := range []string{"# Retent", "ion\n\n", "- Jan 2024: 88%\n", "- Feb 2024: 91%\n"} {
		if _, err := io.WriteString(mdw, c); err != nil {
			t.Fatalf("Write chunk %q: %v", c, err)
		}
	}
	if buf.Len() != 0 {
		t.Fatalf("expected nothing before Flush; got %q", buf.String())
	}

	if err := mdw.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Retention") || !strings.Contains(out, "Feb 2024") {
		t.Errorf("rendered output missing content; got:\n%s", out)
	}
}

func TestMarkdownWriter_Flush_EmptyBuffer_NoOp(t *testing.T) {
	var buf bytes.Buffer
	mdw := newMarkdownWriterForTest(&buf, false, true)
	if err := mdw.Flush(); err != nil {
		t.Fatalf("Flush on empty buffer: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Flush on empty buffer should write nothing")
	}
}

func TestFlush_RendersTable(t *testing.T) {
	var buf bytes.Buffer
	mdw := newMarkdownWriterForTest(&buf, false, true)
	mdw.opts.Style = "light"
	if _, err := io.WriteString(mdw, "| Hour | Minutes |\n|---|---|\n| 8 AM | 35 |\n"); err != nil {
		t.Fatal(err)
	}
	if err := mdw.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "|---|") || !strings.Contains(out, "8 AM") || !strings.Contains(out, "Minutes") {
		t.Errorf("rendered table missing cells; got: %q", out)
	}
}

func TestNewMarkdownWriter_NonTTYFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "report-*.md")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	mdw := NewMarkdownWriter(f, MarkdownOptions{})
	if mdw.isTTY {
		t.Error("expected isTTY=false for a regular file")
	}
	if !mdw.passthrough() {
		t.Error("a regular file should get raw markdown")
	}
}

func TestNewMarkdownWriter_NonFileWriter(t *testing.T) {
	var buf bytes.Buffer
	mdw := NewMarkdownWriter(&buf, MarkdownOptions{Raw: true})
	if mdw.isTTY || !mdw.opts.Raw {
		t.Errorf("unexpected writer state: isTTY=%v raw=%v", mdw.isTTY, mdw.opts.Raw)
	}
}
