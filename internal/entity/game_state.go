package entity

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// WinCombos - rows top to bottom, columns left to right, then both diagonals.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// GameState is a board together with the symbol that opened the game.
// It is validated once in NewGameState and never changes afterwards.
type GameState struct {
	board          Board
	startingSymbol Symbol

	currentSymbol Symbol
	winner        Symbol
	winningCells  []int
}

// NewGameState - builds and validates a state; whose turn it is follows from the symbol counts.
func NewGameState(board Board, startingSymbol Symbol) (*GameState, error) {
	if !startingSymbol.IsValid() {
		return nil, fmt.Errorf("%w: unknown starting symbol %q", apperror.ErrInvalidState, startingSymbol)
	}

	state := &GameState{
		board:          board,
		startingSymbol: startingSymbol,
		currentSymbol:  startingSymbol,
	}

	if board.XCount() != board.OCount() {
		state.currentSymbol = startingSymbol.Other()
	}

	state.winner, state.winningCells = determineWinner(board)

	if err := ValidateGameState(state); err != nil {
		return nil, err
	}

	return state, nil
}

// NewGame - returns the state of a game nobody has moved in yet.
func NewGame(startingSymbol Symbol) (*GameState, error) {
	return NewGameState(EmptyBoard(), startingSymbol)
}

func determineWinner(board Board) (Symbol, []int) {
	for _, combo := range WinCombos {
		for _, symbol := range Symbols {
			if board.At(combo[0]) == symbol && board.At(combo[1]) == symbol && board.At(combo[2]) == symbol {
				return symbol, combo[:]
			}
		}
	}

	return NoSymbol, nil
}

func (that *GameState) Board() Board {
	return that.board
}

func (that *GameState) StartingSymbol() Symbol {
	return that.startingSymbol
}

// CurrentSymbol - the symbol to move next.
func (that *GameState) CurrentSymbol() Symbol {
	return that.currentSymbol
}

func (that *GameState) GameNotStarted() bool {
	return that.board.EmptyCount() == BoardSize
}

// Winner - returns the winning symbol; false if nobody has won.
func (that *GameState) Winner() (Symbol, bool) {
	return that.winner, that.winner != NoSymbol
}

// WinningCells - the three indices of the winning line, empty if there is no winner.
func (that *GameState) WinningCells() []int {
	return slices.Clone(that.winningCells)
}

func (that *GameState) Tie() bool {
	return that.winner == NoSymbol && that.board.EmptyCount() == 0
}

func (that *GameState) GameOver() bool {
	return that.winner != NoSymbol || that.Tie()
}

// PossibleMoves - one move per empty cell in ascending order, none once the game is over.
// A state whose side to move already leads has no valid successor and yields ErrInvalidState.
func (that *GameState) PossibleMoves() ([]Move, error) {
	if that.GameOver() {
		return nil, nil
	}

	moves := make([]Move, 0, that.board.EmptyCount())
	for _, index := range that.board.EmptyCells() {
		move, err := that.MakeMoveTo(index)
		if err != nil {
			return nil, err
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// MakeMoveTo - places the current symbol into the cell and returns the resulting move.
func (that *GameState) MakeMoveTo(index int) (Move, error) {
	board, err := that.board.Place(index, that.currentSymbol)
	if err != nil {
		return Move{}, err
	}

	after, err := NewGameState(board, that.startingSymbol)
	if err != nil {
		return Move{}, fmt.Errorf("failed to make move to cell %d: %w", index, err)
	}

	return Move{
		Symbol:      that.currentSymbol,
		CellIndex:   index,
		BeforeState: that,
		AfterState:  after,
	}, nil
}

// EvaluateScore - 1 if the symbol won, -1 if it lost, 0 on a tie.
func (that *GameState) EvaluateScore(symbol Symbol) (int, error) {
	if !that.GameOver() {
		return 0, fmt.Errorf("%w: game is not over yet", apperror.ErrNoGameScore)
	}

	switch that.winner {
	case NoSymbol:
		return 0, nil
	case symbol:
		return 1, nil
	default:
		return -1, nil
	}
}

func (that *GameState) String() string {
	return fmt.Sprintf("%q (%s to move)", that.board.Cells(), that.currentSymbol)
}
