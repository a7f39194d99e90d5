package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const rowSeparator = "-------------"

// Display prints the board as a 3x3 grid followed by a status line.
type Display struct {
	out io.Writer
}

func NewDisplay(out io.Writer) *Display {
	return &Display{out: out}
}

func (that *Display) Render(board *entity.Board, status string) error {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(status)
	sb.WriteString("\n")
	sb.WriteString(FormatBoard(board))

	if _, err := io.WriteString(that.out, sb.String()); err != nil {
		return fmt.Errorf("failed to write board: %w", err)
	}

	return nil
}

func (that *Display) Announce(message string) error {
	if _, err := fmt.Fprintln(that.out, message); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

// FormatBoard renders rows like "| X | O |   |", each followed by a separator line.
func FormatBoard(board *entity.Board) string {
	var sb strings.Builder

	for row := 0; row < 3; row++ {
		cells := make([]string, 3)
		for col := 0; col < 3; col++ {
			cells[col] = " "
			if mark := board.Cell(row*3 + col); mark != entity.Empty {
				cells[col] = string(mark)
			}
		}

		sb.WriteString("| " + strings.Join(cells, " | ") + " |\n")
		sb.WriteString(rowSeparator + "\n")
	}

	return sb.String()
}
