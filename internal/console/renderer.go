package console

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Renderer draws game states as text.
type Renderer struct {
	out io.Writer
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Render - prints the grid and, once the game is over, its result. Winning cells are bracketed.
func (that *Renderer) Render(state *entity.GameState) {
	fmt.Fprint(that.out, FormatBoard(state))

	if winner, ok := state.Winner(); ok {
		fmt.Fprintf(that.out, "%s wins!\n", winner)
	} else if state.Tie() {
		fmt.Fprintln(that.out, "No one wins this time.")
	}
}

func FormatBoard(state *entity.GameState) string {
	board := state.Board()
	winningCells := state.WinningCells()

	var sb strings.Builder
	sb.WriteString("    A   B   C\n")

	for row := range 3 {
		if row > 0 {
			sb.WriteString("   ---+---+---\n")
		}

		cells := make([]string, 0, 3)
		for col := range 3 {
			index := 3*row + col
			mark := string(board.Cells()[index])
			if slices.Contains(winningCells, index) {
				cells = append(cells, "["+mark+"]")
			} else {
				cells = append(cells, " "+mark+" ")
			}
		}

		fmt.Fprintf(&sb, "%c  %s\n", rows[row], strings.Join(cells, "|"))
	}

	return sb.String()
}
