package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-console/internal/transport/console"
)

// RunApp - runs one game on the terminal.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	_, err := Play(ctx, logger, conf, os.Stdin, os.Stdout)
	return shutdownError(log, err)
}

// shutdownError treats a cancelled session as a normal exit.
func shutdownError(log *slog.Logger, err error) error {
	if errors.Is(err, context.Canceled) {
		log.Info("Application context canceled, shutting down")
		return nil
	}

	return err
}

// Play sets up a session from in, plays it to the end and returns the result.
func Play(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) (entity.Result, error) {
	log := logger.With("component", "app")

	lines := console.NewLineReader(in)
	setup := console.NewSessionSetup(lines, out, console.Preset{
		Mode:       entity.Mode(conf.Mode),
		FirstName:  conf.Players.First,
		SecondName: conf.Players.Second,
	})

	session, err := setup.Setup(ctx)
	if err != nil {
		return entity.InProgress(), fmt.Errorf("session setup failed: %w", err)
	}

	log.Info("session ready", "mode", session.Mode, "first", session.First.Name, "second", session.Second.Name)

	// both computers draw from one generator so a seed fixes the whole game
	rng := service.NewSeededRand(conf.Seed)
	seat := func(player entity.Player) tictactoe.Seat {
		if player.IsComputer() {
			return tictactoe.Seat{Player: player, Source: service.NewComputerMoveSource(rng, conf.ComputerDelay)}
		}
		return tictactoe.Seat{Player: player, Source: service.NewHumanMoveSource(logger, player.Name, lines, out)}
	}

	controller, err := tictactoe.NewGameController(logger, console.NewDisplay(out), seat(session.First), seat(session.Second))
	if err != nil {
		return entity.InProgress(), fmt.Errorf("could not create game: %w", err)
	}

	result, err := controller.Run(ctx)
	if err != nil {
		return result, fmt.Errorf("game %s failed: %w", controller.ID(), err)
	}

	return result, nil
}
