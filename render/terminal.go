package render

import (
	"bufio"
	"io"
	"iter"
	"os"
	"os/exec"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-engine/model"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	clearCmd = "clear"
)

// Board is the read-only view a renderer needs. *model.Grid implements it.
type Board interface {
	Width() int
	Height() int
	All() iter.Seq2[model.Coord, bool]
}

// TerminalRenderer draws a board as two-character blocks per cell
type TerminalRenderer struct {
	Out io.Writer
}

// NewTerminalRenderer returns a renderer writing to stdout.
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{Out: os.Stdout}
}

// Display renders the board, one line per row
func (r *TerminalRenderer) Display(b Board) error {
	var (
		w     = bufio.NewWriter(r.Out)
		width = b.Width()
	)
	for c, alive := range b.All() {
		if alive {
			w.WriteString(gridPosBlock)
		} else {
			w.WriteString(gridPosEmpty)
		}
		if c.X == width-1 {
			w.WriteByte('\n')
		}
	}
	return errors.Wrap(w.Flush(), "[Display] failed to write board")
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.Out
	return errors.Wrap(cmd.Run(), "[Clear] failed to clear terminal")
}
