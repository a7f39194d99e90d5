package console

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	defaultHumanName     = "Human"
	defaultComputerName  = "Computer"
	defaultComputer1Name = "Computer 1"
	defaultComputer2Name = "Computer 2"
)

// Preset holds choices made ahead of time; empty fields are asked for.
type Preset struct {
	Mode       entity.Mode
	FirstName  string
	SecondName string
}

// SessionSetup asks for the game mode and player names.
type SessionSetup struct {
	lines  *LineReader
	out    io.Writer
	preset Preset
}

func NewSessionSetup(lines *LineReader, out io.Writer, preset Preset) *SessionSetup {
	return &SessionSetup{
		lines:  lines,
		out:    out,
		preset: preset,
	}
}

func (that *SessionSetup) Setup(ctx context.Context) (*entity.Session, error) {
	if err := that.print("Welcome to Tic-Tac-Toe!\n"); err != nil {
		return nil, err
	}

	mode := that.preset.Mode
	if mode == "" {
		var err error
		if mode, err = that.askMode(ctx); err != nil {
			return nil, err
		}
	}

	firstKind, secondKind := entity.KindHuman, entity.KindComputer
	firstPrompt, firstDefault := "Enter your name", defaultHumanName
	secondPrompt, secondDefault := "Enter computer's name", defaultComputerName

	if mode == entity.ModeComputerVsComputer {
		firstKind = entity.KindComputer
		firstPrompt, firstDefault = "Enter first computer's name", defaultComputer1Name
		secondPrompt, secondDefault = "Enter second computer's name", defaultComputer2Name
	}

	firstName, err := that.askName(ctx, that.preset.FirstName, firstPrompt, firstDefault)
	if err != nil {
		return nil, err
	}

	secondName, err := that.askName(ctx, that.preset.SecondName, secondPrompt, secondDefault)
	if err != nil {
		return nil, err
	}

	first, err := entity.NewPlayer(firstName, entity.X, firstKind)
	if err != nil {
		return nil, fmt.Errorf("invalid first player: %w", err)
	}

	second, err := entity.NewPlayer(secondName, entity.O, secondKind)
	if err != nil {
		return nil, fmt.Errorf("invalid second player: %w", err)
	}

	return &entity.Session{Mode: mode, First: first, Second: second}, nil
}

func (that *SessionSetup) askMode(ctx context.Context) (entity.Mode, error) {
	if err := that.print("\nGame modes:\n1. Human vs Computer\n2. Computer vs Computer\n"); err != nil {
		return "", err
	}

	for {
		if err := that.print("\nSelect game mode (1 or 2): "); err != nil {
			return "", err
		}

		line, err := that.lines.ReadLine(ctx)
		if err != nil {
			return "", err
		}

		choice, err := strconv.Atoi(line)
		switch {
		case err != nil:
			err = that.print("Invalid input. Please enter 1 or 2.\n")
		case choice == 1:
			return entity.ModeHumanVsComputer, nil
		case choice == 2:
			return entity.ModeComputerVsComputer, nil
		default:
			err = that.print("Invalid mode. Please select 1 or 2.\n")
		}

		if err != nil {
			return "", err
		}
	}
}

func (that *SessionSetup) askName(ctx context.Context, preset, prompt, fallback string) (string, error) {
	if preset != "" {
		return preset, nil
	}

	if err := that.print(fmt.Sprintf("%s (default: %s): ", prompt, fallback)); err != nil {
		return "", err
	}

	line, err := that.lines.ReadLine(ctx)
	if err != nil {
		return "", err
	}

	if line == "" {
		return fallback, nil
	}

	return line, nil
}

func (that *SessionSetup) print(text string) error {
	if _, err := io.WriteString(that.out, text); err != nil {
		return fmt.Errorf("failed to write prompt: %w", err)
	}

	return nil
}
