package ui

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
)

// MarkdownOptions controls how a report is rendered.
type MarkdownOptions struct {
	// Raw forces plain markdown output regardless of TTY.
	Raw bool
	// Width is the word-wrap column; zero means DefaultWidth.
	Width int
	// Style is a glamour standard style ("dark", "light"); empty picks
	// one from the terminal background.
	Style string
}

// MarkdownWriter is an io.Writer that buffers markdown and renders it as
// styled terminal output (via glamour) when Flush is called.
//
// In raw mode or non-TTY contexts, all writes pass through immediately to the
// underlying writer without buffering.
type MarkdownWriter struct {
	out   io.Writer
	buf   bytes.Buffer
	opts  MarkdownOptions
	isTTY bool
}

// NewMarkdownWriter creates a MarkdownWriter targeting out.
//
//   - opts.Raw                  → plain pass-through
//   - out is a non-TTY *os.File → plain pass-through
//   - out is a TTY *os.File     → buffer, render on Flush
func NewMarkdownWriter(out io.Writer, opts MarkdownOptions) *MarkdownWriter {
	tty := false
	if f, ok := out.(*os.File); ok {
		tty = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &MarkdownWriter{
		out:   out,
		opts:  opts,
		isTTY: tty,
	}
}

func (m *MarkdownWriter) passthrough() bool {
	return m.opts.Raw || !m.isTTY
}

// Write satisfies io.Writer.
func (m *MarkdownWriter) Write(p []byte) (int, error) {
	if m.passthrough() {
		return m.out.Write(p)
	}
	return m.buf.Write(p)
}

// Flush renders the buffered content and writes it to the underlying
// writer. In raw or non-TTY mode this is a no-op.
//
// If rendering fails, Flush falls back to the raw buffered content and
// prints a warning to stderr.
func (m *MarkdownWriter) Flush() error {
	if m.passthrough() || m.buf.Len() == 0 {
		return nil
	}

	r, err := newRenderer(m.opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, Muted.Render("  (markdown rendering unavailable, showing raw output)"))
		_, werr := m.out.Write(m.buf.Bytes())
		return werr
	}

	rendered, err := r.Render(m.buf.String())
	if err != nil {
		fmt.Fprintln(os.Stderr, Muted.Render("  (markdown rendering failed, showing raw output)"))
		_, werr := m.out.Write(m.buf.Bytes())
		return werr
	}

	_, err = fmt.Fprint(m.out, rendered)
	return err
}

func newRenderer(opts MarkdownOptions) (*glamour.TermRenderer, error) {
	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}
	style := glamour.WithAutoStyle()
	if opts.Style != "" {
		style = glamour.WithStandardStyle(opts.Style)
	}
	return glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
}
