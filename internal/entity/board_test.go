package entity

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

func TestBoard_AvailableMoves(t *testing.T) {
	t.Run("Empty board offers every cell", func(t *testing.T) {
		// Given: a new board
		board := NewBoard()

		// When: asking for available moves
		moves := board.AvailableMoves()

		// Then: all nine cells are listed in order
		assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, moves)
		assert.False(t, board.IsFull())
	})

	t.Run("Occupied cells are excluded", func(t *testing.T) {
		// Given: a board with three marks
		board := &Board{
			X, Empty, O,
			Empty, X, Empty,
			Empty, Empty, Empty,
		}

		// When: asking for available moves
		moves := board.AvailableMoves()

		// Then: only empty cells remain and the board is untouched
		assert.Equal(t, []int{1, 3, 5, 6, 7, 8}, moves)
		assert.Equal(t, "X.O.X....", board.String())
	})

	t.Run("Full board offers nothing", func(t *testing.T) {
		// Given: a full board
		board := &Board{X, O, X, X, O, O, O, X, X}

		// Then: there are no moves and the board is full
		assert.Empty(t, board.AvailableMoves())
		assert.True(t, board.IsFull())
	})
}

func TestBoard_ApplyMove(t *testing.T) {
	t.Run("Successful move", func(t *testing.T) {
		// Given: a new board
		board := NewBoard()

		// When: X plays the center
		ok := board.ApplyMove(4, X)

		// Then: the center holds X
		require.True(t, ok)
		assert.Equal(t, X, board.Cell(4))
		assert.Len(t, board.AvailableMoves(), 8)
	})

	t.Run("Occupied cell is rejected", func(t *testing.T) {
		// Given: a board where X holds cell 0
		board := NewBoard()
		require.True(t, board.ApplyMove(0, X))
		before := *board

		// When: O tries the same cell
		ok := board.ApplyMove(0, O)

		// Then: the move is rejected and nothing changes
		assert.False(t, ok)
		assert.Equal(t, before, *board)
	})

	t.Run("Out of range indices are rejected", func(t *testing.T) {
		// Given: a new board
		board := NewBoard()

		// Then: indices outside 0..8 never mutate the board
		for _, index := range []int{-1, 9, 20} {
			assert.False(t, board.ApplyMove(index, X), "index %d", index)
		}
		assert.Equal(t, Board{}, *board)
	})

	t.Run("Empty symbol is rejected", func(t *testing.T) {
		// Given: a new board
		board := NewBoard()

		// When: trying to place the empty symbol
		ok := board.ApplyMove(3, Empty)

		// Then: the move is rejected
		assert.False(t, ok)
		assert.Len(t, board.AvailableMoves(), BoardSize)
	})
}

func TestBoard_Validate(t *testing.T) {
	// Given: a board where O holds cell 3
	board := &Board{}
	board[3] = O

	// Then: each rejection is classified
	require.ErrorIs(t, board.Validate(9), apperror.ErrInvalidIndex)
	require.ErrorIs(t, board.Validate(-1), apperror.ErrInvalidIndex)
	require.ErrorIs(t, board.Validate(3), apperror.ErrOccupiedCell)
	require.NoError(t, board.Validate(2))
}

func TestValidateCell(t *testing.T) {
	// Given: only cells 1 and 2 are free
	available := []int{1, 2}

	// Then: the same classification as the board applies
	require.ErrorIs(t, ValidateCell(9, available), apperror.ErrInvalidIndex)
	require.ErrorIs(t, ValidateCell(-1, available), apperror.ErrInvalidIndex)
	require.ErrorIs(t, ValidateCell(0, available), apperror.ErrOccupiedCell)
	require.NoError(t, ValidateCell(2, available))
}

func TestBoard_CheckWin(t *testing.T) {
	t.Run("Diagonal blocked, then column completed", func(t *testing.T) {
		// Given: X:4, O:0, X:8
		board := NewBoard()
		require.True(t, board.ApplyMove(4, X))
		require.True(t, board.ApplyMove(0, O))
		require.True(t, board.ApplyMove(8, X))

		// Then: the main diagonal is not X's because O holds 0
		assert.False(t, board.CheckWin(8, X))

		// When: play continues X:1, O:2, X:7
		require.True(t, board.ApplyMove(1, X))
		assert.False(t, board.CheckWin(1, X))
		require.True(t, board.ApplyMove(2, O))
		assert.False(t, board.CheckWin(2, O))
		require.True(t, board.ApplyMove(7, X))

		// Then: line 1-4-7 is complete for X
		assert.True(t, board.CheckWin(7, X))
		assert.Equal(t, X, board.Winner())
	})

	t.Run("Row, column and diagonals", func(t *testing.T) {
		tests := []struct {
			name   string
			board  Board
			index  int
			symbol Symbol
			want   bool
		}{
			{
				name:  "top row",
				board: Board{X, X, X, O, O, Empty, Empty, Empty, Empty},
				index: 1, symbol: X, want: true,
			},
			{
				name:  "right column",
				board: Board{X, X, O, Empty, X, O, Empty, Empty, O},
				index: 5, symbol: O, want: true,
			},
			{
				name:  "main diagonal from corner",
				board: Board{O, X, X, Empty, O, X, Empty, Empty, O},
				index: 8, symbol: O, want: true,
			},
			{
				name:  "anti diagonal from center",
				board: Board{O, O, X, Empty, X, Empty, X, Empty, Empty},
				index: 4, symbol: X, want: true,
			},
			{
				name:  "line of the other symbol",
				board: Board{O, O, O, X, X, Empty, Empty, Empty, Empty},
				index: 4, symbol: X, want: false,
			},
			{
				name:  "two of three is not a line",
				board: Board{X, Empty, X, Empty, O, Empty, Empty, Empty, Empty},
				index: 2, symbol: X, want: false,
			},
			{
				name:  "edge midpoint never checks diagonals",
				board: Board{X, Empty, Empty, X, X, O, O, Empty, X},
				index: 3, symbol: X, want: false,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				assert.Equal(t, tt.want, tt.board.CheckWin(tt.index, tt.symbol))
			})
		}
	})

	t.Run("Out of range index never wins", func(t *testing.T) {
		board := &Board{X, X, X, Empty, Empty, Empty, Empty, Empty, Empty}

		assert.False(t, board.CheckWin(9, X))
		assert.False(t, board.CheckWin(-1, X))
	})
}

func TestBoard_Winner(t *testing.T) {
	t.Run("Full board without a line has no winner", func(t *testing.T) {
		// Given: a full board with no three in a row
		board := &Board{X, O, X, X, O, O, O, X, X}

		// Then: nobody wins
		assert.Equal(t, Empty, board.Winner())
		assert.True(t, board.IsFull())
	})

	t.Run("Returns the line owner", func(t *testing.T) {
		board := &Board{O, X, Empty, O, X, Empty, O, Empty, Empty}

		assert.Equal(t, O, board.Winner())
	})
}

func TestBoard_RandomGames(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	for game := 0; game < 500; game++ {
		board := NewBoard()
		symbol := X

		for !board.IsFull() {
			moves := board.AvailableMoves()
			index := moves[rng.IntN(len(moves))]
			filled := BoardSize - len(moves)

			// a legal move fills exactly one more cell
			require.True(t, board.ApplyMove(index, symbol))
			require.Len(t, board.AvailableMoves(), BoardSize-filled-1)

			// replaying it is always rejected
			require.False(t, board.ApplyMove(index, symbol.Opponent()))
			require.Equal(t, symbol, board.Cell(index))

			// with no earlier winner the local check agrees with a full scan
			won := board.CheckWin(index, symbol)
			require.Equal(t, board.Winner() == symbol, won, "board %s index %d", board, index)
			if won {
				break
			}

			symbol = symbol.Opponent()
		}

		if board.Winner() == Empty {
			require.True(t, board.IsFull())
		}
	}
}

func TestSymbol_Opponent(t *testing.T) {
	assert.Equal(t, O, X.Opponent())
	assert.Equal(t, X, O.Opponent())
	assert.Equal(t, Empty, Empty.Opponent())
}
