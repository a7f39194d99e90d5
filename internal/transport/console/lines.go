package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

type line struct {
	text string
	err  error
}

// LineReader hands out trimmed input lines and gives up waiting when the context is done.
// Reading happens on its own goroutine, so a blocked read never holds the caller.
// It is meant for a single consumer at a time.
type LineReader struct {
	scanner *bufio.Scanner
	lines   chan line
	once    sync.Once

	err error
}

func NewLineReader(in io.Reader) *LineReader {
	return &LineReader{
		scanner: bufio.NewScanner(in),
		lines:   make(chan line),
	}
}

func (that *LineReader) ReadLine(ctx context.Context) (string, error) {
	that.once.Do(func() {
		go that.scan()
	})

	if that.err != nil {
		return "", that.err
	}

	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("read interrupted: %w", err)
	}

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("read interrupted: %w", ctx.Err())
	case next := <-that.lines:
		if next.err != nil {
			that.err = next.err
			return "", next.err
		}
		return next.text, nil
	}
}

func (that *LineReader) scan() {
	for that.scanner.Scan() {
		that.lines <- line{text: strings.TrimSpace(that.scanner.Text())}
	}

	err := apperror.ErrInputClosed
	if scanErr := that.scanner.Err(); scanErr != nil {
		err = fmt.Errorf("failed to read input: %w", scanErr)
	}

	that.lines <- line{err: err}
}
