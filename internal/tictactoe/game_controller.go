package tictactoe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

var ErrNoMoveSource = errors.New("player has no move source")

// MoveSource produces the next cell for a player given the free cells.
type MoveSource interface {
	NextMove(ctx context.Context, available []int) (int, error)
}

type display interface {
	Render(board *entity.Board, status string) error
	Announce(message string) error
}

// Seat binds a player to the source of its moves.
type Seat struct {
	Player entity.Player
	Source MoveSource
}

// GameController runs one game from the empty board to a win or a draw.
// It is the only writer of its board.
type GameController struct {
	logger  *slog.Logger
	display display

	id     string
	seats  [2]Seat
	board  *entity.Board
	result entity.Result
	played bool
}

func NewGameController(logger *slog.Logger, display display, first, second Seat) (*GameController, error) {
	if first.Source == nil || second.Source == nil {
		return nil, ErrNoMoveSource
	}

	if !first.Player.Symbol.IsMark() || first.Player.Symbol.Opponent() != second.Player.Symbol {
		return nil, fmt.Errorf("%w: %q and %q", apperror.ErrInvalidSeats, first.Player.Symbol, second.Player.Symbol)
	}

	id := uuid.NewString()

	return &GameController{
		logger:  logger.With("component", "game_controller", "game_id", id),
		display: display,
		id:      id,
		seats:   [2]Seat{first, second},
		board:   entity.NewBoard(),
		result:  entity.InProgress(),
	}, nil
}

func (that *GameController) ID() string {
	return that.id
}

// Board returns a copy of the current board.
func (that *GameController) Board() entity.Board {
	return *that.board
}

func (that *GameController) Result() entity.Result {
	return that.result
}

// Run plays the game to its end. A controller runs once; later calls return ErrGameFinished.
func (that *GameController) Run(ctx context.Context) (entity.Result, error) {
	log := that.logger.With("method", "Run")

	if that.played {
		return that.result, apperror.ErrGameFinished
	}
	that.played = true

	log.Info("game started",
		"first", that.seats[0].Player.Name,
		"second", that.seats[1].Player.Name,
	)

	current := 0
	for {
		if err := ctx.Err(); err != nil {
			log.Info("game interrupted", "board", that.board.String())
			return that.result, fmt.Errorf("game interrupted: %w", err)
		}

		seat := that.seats[current]

		index, err := that.awaitMove(ctx, seat)
		if err != nil {
			return that.result, err
		}

		log.Debug("move applied", "player", seat.Player.Name, "cell", index, "board", that.board.String())

		if that.board.CheckWin(index, seat.Player.Symbol) {
			return that.finish(entity.Win(seat.Player.Symbol), fmt.Sprintf("%s wins!", seat.Player.Name))
		}

		if that.board.IsFull() {
			if winner := that.board.Winner(); winner != entity.Empty {
				log.Error("full board holds a line the move check missed", "winner", winner, "board", that.board.String())
			}
			return that.finish(entity.Draw(), "It's a tie!")
		}

		current = 1 - current
	}
}

// awaitMove asks seat for moves until one is applied to the board.
// A computer source must get it right the first time.
func (that *GameController) awaitMove(ctx context.Context, seat Seat) (int, error) {
	player := seat.Player

	status := fmt.Sprintf("%s's turn (%s)", player.Name, player.Symbol)
	if err := that.display.Render(that.board, status); err != nil {
		return 0, fmt.Errorf("failed to render board: %w", err)
	}

	for {
		if player.IsComputer() {
			if err := that.display.Announce(player.Name + " is thinking..."); err != nil {
				return 0, fmt.Errorf("failed to announce: %w", err)
			}
		}

		index, err := seat.Source.NextMove(ctx, that.board.AvailableMoves())
		if err != nil {
			return 0, fmt.Errorf("failed to get move from %s: %w", player.Name, err)
		}

		if that.board.ApplyMove(index, player.Symbol) {
			return index, nil
		}

		if player.IsComputer() {
			return 0, fmt.Errorf("%w: %s chose cell %d", apperror.ErrIllegalMove, player.Name, index)
		}

		that.logger.Warn("move refused, asking again", "player", player.Name, "cell", index)

		if err = that.display.Announce("Invalid move. Try again."); err != nil {
			return 0, fmt.Errorf("failed to announce: %w", err)
		}
	}
}

// finish shows the final board and puts the outcome on the last line.
func (that *GameController) finish(result entity.Result, outcome string) (entity.Result, error) {
	that.result = result

	that.logger.Info("game finished", "result", result.String(), "board", that.board.String())

	if err := that.display.Render(that.board, "Final board:"); err != nil {
		return that.result, fmt.Errorf("failed to render final board: %w", err)
	}

	if err := that.display.Announce(outcome); err != nil {
		return that.result, fmt.Errorf("failed to announce: %w", err)
	}

	return that.result, nil
}
