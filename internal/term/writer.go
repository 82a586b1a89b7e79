// Package term is the terminal side of the animation: it prints each frame
// and moves the cursor back so the next frame overwrites it in place.
package term

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/x/ansi"
	xterm "golang.org/x/term"

	"cubespin/internal/raster"
)

type fdWriter interface {
	io.Writer
	Fd() uintptr
}

// Writer emits frames as text rows followed by a cursor-up of height+1 lines.
// Cursor hiding is only done when the destination is a terminal.
type Writer struct {
	w   io.Writer
	log *slog.Logger
	fd  int
	tty bool

	buf  bytes.Buffer
	rows int
}

// New wraps w. If w is a terminal file its size is checked in Start.
func New(w io.Writer, log *slog.Logger) *Writer {
	if log == nil {
		log = slog.Default()
	}
	tw := &Writer{w: w, log: log, fd: -1}
	if f, ok := w.(fdWriter); ok {
		tw.fd = int(f.Fd())
		tw.tty = xterm.IsTerminal(tw.fd)
	}
	return tw
}

// IsTerminal reports whether the destination is a TTY.
func (t *Writer) IsTerminal() bool { return t.tty }

// Start hides the cursor and warns when the terminal cannot fit a frame.
func (t *Writer) Start(width, height int) error {
	if !t.tty {
		return nil
	}
	if cols, rows, err := xterm.GetSize(t.fd); err == nil && (cols < width || rows <= height) {
		t.log.Warn("terminal smaller than frame", "cols", cols, "rows", rows, "width", width, "height", height)
	}
	if _, err := io.WriteString(t.w, ansi.HideCursor); err != nil {
		return fmt.Errorf("term: hide cursor: %w", err)
	}
	return nil
}

// WriteFrame prints every row of fb and repositions the cursor, in one write.
func (t *Writer) WriteFrame(fb *raster.FrameBuffer) error {
	t.buf.Reset()
	t.buf.Grow((fb.Width()+1)*fb.Height() + 8)
	for y := 0; y < fb.Height(); y++ {
		t.buf.Write(fb.Row(y))
		t.buf.WriteByte('\n')
	}
	t.buf.WriteString(ansi.CursorUp(fb.Height() + 1))
	t.rows = fb.Height()

	if _, err := t.w.Write(t.buf.Bytes()); err != nil {
		return fmt.Errorf("term: write frame: %w", err)
	}
	return nil
}

// Close moves the cursor below the last frame and shows it again.
func (t *Writer) Close() error {
	var out string
	if t.rows > 0 {
		out = ansi.CursorDown(t.rows+1) + "\r"
	}
	if t.tty {
		out += ansi.ShowCursor
	}
	if out == "" {
		return nil
	}
	if _, err := io.WriteString(t.w, out); err != nil {
		return fmt.Errorf("term: restore cursor: %w", err)
	}
	return nil
}
