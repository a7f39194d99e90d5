package entity

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

type Symbol string

const (
	Empty Symbol = ""
	X     Symbol = "X"
	O     Symbol = "O"
)

const BoardSize = 9

// WinCombos lists every line of the board in row-major indices.
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

func (that Symbol) IsMark() bool {
	return that == X || that == O
}

func (that Symbol) Opponent() Symbol {
	switch that {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

// Board is the 3x3 grid in row-major order.
type Board [BoardSize]Symbol

func NewBoard() *Board {
	return &Board{}
}

func (that *Board) Cell(index int) Symbol {
	if index < 0 || index >= BoardSize {
		return Empty
	}
	return that[index]
}

// AvailableMoves returns the empty cell indices in ascending order.
func (that *Board) AvailableMoves() []int {
	moves := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == Empty {
			moves = append(moves, i)
		}
	}
	return moves
}

func (that *Board) IsFull() bool {
	for _, cell := range that {
		if cell == Empty {
			return false
		}
	}
	return true
}

// Validate reports why index can not be played, or nil if it can.
func (that *Board) Validate(index int) error {
	return ValidateCell(index, that.AvailableMoves())
}

// ValidateCell classifies index against a set of free cells: ErrInvalidIndex when it
// is off the board, ErrOccupiedCell when it is not free.
func ValidateCell(index int, available []int) error {
	if index < 0 || index >= BoardSize {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidIndex, index)
	}

	if !slices.Contains(available, index) {
		return fmt.Errorf("%w: %d", apperror.ErrOccupiedCell, index)
	}

	return nil
}

// ApplyMove places symbol at index. It is the only method that mutates the board,
// and it leaves the board untouched when it returns false.
func (that *Board) ApplyMove(index int, symbol Symbol) bool {
	if !symbol.IsMark() {
		return false
	}

	if err := that.Validate(index); err != nil {
		return false
	}

	that[index] = symbol
	return true
}

// CheckWin reports whether the move just applied at index completed a line for symbol.
// Only the lines through index are inspected, so it must be called right after
// ApplyMove(index, symbol) succeeded. Use Winner for an arbitrary board.
func (that *Board) CheckWin(index int, symbol Symbol) bool {
	if index < 0 || index >= BoardSize || !symbol.IsMark() {
		return false
	}

	row := index / 3
	if that.lineOf(symbol, row*3, row*3+1, row*3+2) {
		return true
	}

	col := index % 3
	if that.lineOf(symbol, col, col+3, col+6) {
		return true
	}

	// edge midpoints (1, 3, 5, 7) are on no diagonal
	if index%2 == 0 {
		if that.lineOf(symbol, 0, 4, 8) || that.lineOf(symbol, 2, 4, 6) {
			return true
		}
	}

	return false
}

// Winner scans all lines and returns the symbol holding a complete one, or Empty.
func (that *Board) Winner() Symbol {
	for _, combo := range WinCombos {
		a := that[combo[0]]
		if a.IsMark() && that.lineOf(a, combo[0], combo[1], combo[2]) {
			return a
		}
	}
	return Empty
}

func (that *Board) lineOf(symbol Symbol, a, b, c int) bool {
	return that[a] == symbol && that[b] == symbol && that[c] == symbol
}

// String returns a compact single-line form such as "X.O.X....", used in logs.
func (that *Board) String() string {
	var sb strings.Builder
	for _, cell := range that {
		if cell == Empty {
			sb.WriteByte('.')
			continue
		}
		sb.WriteString(string(cell))
	}
	return sb.String()
}
