package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	msgInvalidMove  = "Invalid move. Try again."
	msgInvalidInput = "Invalid input. Please enter a number between 0-8."
)

type lineReader interface {
	ReadLine(ctx context.Context) (string, error)
}

// HumanMoveSource reads moves line by line and re-prompts until one is legal.
type HumanMoveSource struct {
	logger *slog.Logger
	name   string
	lines  lineReader
	out    io.Writer
}

func NewHumanMoveSource(logger *slog.Logger, name string, lines lineReader, out io.Writer) *HumanMoveSource {
	return &HumanMoveSource{
		logger: logger.With("component", "human", "player", name),
		name:   name,
		lines:  lines,
		out:    out,
	}
}

func (that *HumanMoveSource) NextMove(ctx context.Context, available []int) (int, error) {
	for {
		if _, err := fmt.Fprintf(that.out, "%s, enter your move (0-%d): ", that.name, entity.BoardSize-1); err != nil {
			return 0, fmt.Errorf("failed to write prompt: %w", err)
		}

		line, err := that.lines.ReadLine(ctx)
		if err != nil {
			return 0, fmt.Errorf("human move interrupted: %w", err)
		}

		index, err := parseMove(line, available)
		if err == nil {
			return index, nil
		}

		that.logger.Debug("move rejected", "input", line, "error", err)

		msg := msgInvalidMove
		if errors.Is(err, apperror.ErrMalformedInput) {
			msg = msgInvalidInput
		}

		if _, err = fmt.Fprintln(that.out, msg); err != nil {
			return 0, fmt.Errorf("failed to write message: %w", err)
		}
	}
}

// parseMove classifies raw input as a legal index or one of the input errors.
func parseMove(line string, available []int) (int, error) {
	index, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", apperror.ErrMalformedInput, line)
	}

	if err = entity.ValidateCell(index, available); err != nil {
		return 0, err
	}

	return index, nil
}
