package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Symbol is the mark a player puts on the board.
type Symbol string

const (
	Cross  Symbol = "X"
	Naught Symbol = "O"

	// NoSymbol is returned where a symbol is absent, e.g. no winner yet.
	NoSymbol Symbol = ""
)

// Symbols lists both marks in a fixed order.
var Symbols = [2]Symbol{Cross, Naught}

// Other - returns the opponent's symbol.
func (that Symbol) Other() Symbol {
	if that == Naught {
		return Cross
	}
	return Naught
}

func (that Symbol) IsValid() bool {
	return that == Cross || that == Naught
}

func (that Symbol) String() string {
	return string(that)
}

func (that Symbol) cell() byte {
	return that[0]
}

// ParseSymbol - parses "x", "X", "o" or "O".
func ParseSymbol(value string) (Symbol, error) {
	symbol := Symbol(strings.ToUpper(strings.TrimSpace(value)))
	if !symbol.IsValid() {
		return NoSymbol, fmt.Errorf("%w: unknown symbol %q", apperror.ErrInvalidState, value)
	}

	return symbol, nil
}
