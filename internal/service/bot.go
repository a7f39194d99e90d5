package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// ComputerMoveSource picks uniformly at random among the available cells.
type ComputerMoveSource struct {
	rng   *rand.Rand
	delay time.Duration
}

// NewComputerMoveSource uses rng for every choice; pass an explicitly seeded one
// for reproducible games. delay imitates thinking time and may be zero.
func NewComputerMoveSource(rng *rand.Rand, delay time.Duration) *ComputerMoveSource {
	return &ComputerMoveSource{
		rng:   rng,
		delay: delay,
	}
}

// NewSeededRand returns a generator for seed, falling back to the clock when seed is zero.
func NewSeededRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano()) //nolint: gosec // it's ok
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) //nolint: gosec // not used for security
}

func (that *ComputerMoveSource) NextMove(ctx context.Context, available []int) (int, error) {
	if len(available) == 0 {
		return 0, apperror.ErrNoAvailableMoves
	}

	if that.delay > 0 {
		timer := time.NewTimer(that.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return 0, fmt.Errorf("computer move interrupted: %w", ctx.Err())
		case <-timer.C:
		}
	}

	return available[that.rng.IntN(len(available))], nil
}
