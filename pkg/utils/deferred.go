// Package utils holds small helpers shared by the CLI entrypoint.
package utils

import (
	"bytes"
	"io"
	"sync"
)

// DeferredWriter buffers writes until Flush. The TUI owns the terminal while
// it runs, so log lines are held here and printed after it exits.
type DeferredWriter struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// Write implements io.Writer.
func (d *DeferredWriter) Write(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.buf.Write(p)
}

// Flush writes each buffered line to w as a separate write and resets the
// buffer. Line-at-a-time writes let zerolog.ConsoleWriter format each event.
func (d *DeferredWriter) Flush(w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for {
		line, err := d.buf.ReadBytes('\n')
		if len(line) > 0 {
			if _, werr := w.Write(line); werr != nil {
				return werr
			}
		}
		if err != nil {
			break
		}
	}

	d.buf.Reset()
	return nil
}
