package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const (
	BoardSize = 9

	EmptyCell = ' '
)

var (
	ErrInvalidCell  = fmt.Errorf("%w: invalid cell index", apperror.ErrInvalidMove)
	ErrCellOccupied = fmt.Errorf("%w: cell is already occupied", apperror.ErrInvalidMove)
)

// Board is an immutable 3x3 grid stored row-major as nine cells of 'X', 'O' or ' '.
// Counts are taken once at construction.
type Board struct {
	cells string

	xCount int
	oCount int
}

// NewBoard - validates the cells and builds a board from them.
func NewBoard(cells string) (Board, error) {
	if err := ValidateBoard(cells); err != nil {
		return Board{}, err
	}

	return Board{
		cells:  cells,
		xCount: strings.Count(cells, Cross.String()),
		oCount: strings.Count(cells, Naught.String()),
	}, nil
}

// EmptyBoard - returns a board with all nine cells empty.
func EmptyBoard() Board {
	return Board{cells: strings.Repeat(string(EmptyCell), BoardSize)}
}

func (that Board) Cells() string {
	if that.cells == "" {
		return EmptyBoard().cells
	}
	return that.cells
}

// At - returns the symbol in the cell, or NoSymbol if the cell is empty.
func (that Board) At(index int) Symbol {
	cell := that.Cells()[index]
	if cell == EmptyCell {
		return NoSymbol
	}
	return Symbol(cell)
}

func (that Board) IsEmptyAt(index int) bool {
	return that.Cells()[index] == EmptyCell
}

func (that Board) XCount() int {
	return that.xCount
}

func (that Board) OCount() int {
	return that.oCount
}

func (that Board) EmptyCount() int {
	return BoardSize - that.xCount - that.oCount
}

// Count - returns how many cells hold the symbol.
func (that Board) Count(symbol Symbol) int {
	switch symbol {
	case Cross:
		return that.xCount
	case Naught:
		return that.oCount
	default:
		return that.EmptyCount()
	}
}

// EmptyCells - returns the indices of empty cells in ascending order.
func (that Board) EmptyCells() []int {
	indices := make([]int, 0, that.EmptyCount())
	for i := range BoardSize {
		if that.IsEmptyAt(i) {
			indices = append(indices, i)
		}
	}

	return indices
}

// Place - returns a new board with the symbol put into the cell; the receiver is left as is.
func (that Board) Place(index int, symbol Symbol) (Board, error) {
	if index < 0 || index >= BoardSize {
		return Board{}, fmt.Errorf("%w: cell %d", ErrInvalidCell, index)
	}

	if !symbol.IsValid() {
		return Board{}, fmt.Errorf("%w: unknown symbol %q", apperror.ErrInvalidState, symbol)
	}

	if !that.IsEmptyAt(index) {
		return Board{}, fmt.Errorf("%w: cell %d", ErrCellOccupied, index)
	}

	cells := []byte(that.Cells())
	cells[index] = symbol.cell()

	return NewBoard(string(cells))
}

func (that Board) String() string {
	return that.Cells()
}
