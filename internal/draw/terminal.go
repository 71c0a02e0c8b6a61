package draw

import (
	"io"
	"os"
	"strconv"

	"golang.org/x/term"
)

// maxChunkSize caps a single write so a frame leaves the SSH channel in
// MTU-sized packets instead of one large burst.
const maxChunkSize = 1400

// ChunkWriter collects one frame of terminal output (canvas diff, border and
// HUD text) and sends it on Flush. Positions given to WriteAt are 1-based
// inside the render area; the writer shifts them by the centering offset.
type ChunkWriter struct {
	out     io.Writer
	frame   []byte
	originX int
	originY int
}

// NewChunkWriter returns a writer for out whose render area starts offsetCol
// columns and offsetRow rows from the terminal's top-left corner.
func NewChunkWriter(out io.Writer, offsetCol, offsetRow int) *ChunkWriter {
	return &ChunkWriter{
		out:     out,
		frame:   make([]byte, 0, 16*1024),
		originX: offsetCol,
		originY: offsetRow,
	}
}

// SetOffset moves the render area, typically after a resize.
func (cw *ChunkWriter) SetOffset(offsetCol, offsetRow int) {
	cw.originX, cw.originY = offsetCol, offsetRow
}

// MoveCursor queues a cursor jump to (col, row) of the render area.
func (cw *ChunkWriter) MoveCursor(col, row int) {
	cw.frame = append(cw.frame, "\033["...)
	cw.frame = strconv.AppendInt(cw.frame, int64(row+cw.originY), 10)
	cw.frame = append(cw.frame, ';')
	cw.frame = strconv.AppendInt(cw.frame, int64(col+cw.originX), 10)
	cw.frame = append(cw.frame, 'H')
}

// Write queues raw bytes. It never fails.
func (cw *ChunkWriter) Write(p []byte) (int, error) {
	cw.frame = append(cw.frame, p...)
	return len(p), nil
}

// WriteString queues s.
func (cw *ChunkWriter) WriteString(s string) {
	cw.frame = append(cw.frame, s...)
}

// WriteAt queues s at (col, row). Positions left of or above the render area
// are pulled back to its edge so HUD text never lands in the margin.
func (cw *ChunkWriter) WriteAt(col, row int, s string) {
	cw.MoveCursor(max(col, 1), max(row, 1))
	cw.WriteString(s)
}

// Len returns the number of queued bytes.
func (cw *ChunkWriter) Len() int {
	return len(cw.frame)
}

var _ io.Writer = (*ChunkWriter)(nil)

// Flush sends the queued frame in chunks of at most maxChunkSize bytes and
// empties the queue, even when a write fails.
func (cw *ChunkWriter) Flush() error {
	defer func() { cw.frame = cw.frame[:0] }()
	for rest := cw.frame; len(rest) > 0; {
		n := min(len(rest), maxChunkSize)
		if _, err := cw.out.Write(rest[:n]); err != nil {
			return err
		}
		rest = rest[n:]
	}
	return nil
}

// TermSizeFunc reports the terminal size in columns and rows.
type TermSizeFunc func() (width, height int, err error)

// StdoutSize reads the size of the terminal attached to stdout.
func StdoutSize() (width, height int, err error) {
	return term.GetSize(int(os.Stdout.Fd()))
}
