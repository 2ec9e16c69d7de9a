package model

import (
	"bufio"
	"io"
	"os"
	"os/exec"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-editor/rules"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	macosClearCmd = "clear"
)

// TerminalRenderer writes grids to a terminal, Out defaults to os.Stdout
type TerminalRenderer struct {
	Out io.Writer
}

func (r *TerminalRenderer) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}

// Display renders the grid, two characters per cell
func (r *TerminalRenderer) Display(g *Grid) error {
	w := bufio.NewWriter(r.out())
	for y := range g.height {
		for x := range g.width {
			if g.cells[x+y*g.width] == rules.Alive {
				w.WriteString(gridPosBlock)
			} else {
				w.WriteString(gridPosEmpty)
			}
		}
		w.WriteByte('\n')
	}
	return errors.Wrap(w.Flush(), "[Display] failed to write grid")
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	cmd := exec.Command(macosClearCmd)
	cmd.Stdout = r.out()
	return errors.Wrap(cmd.Run(), "[Clear] failed to clear terminal")
}
