package entity

type Mode string

const (
	ModeHumanVsComputer    Mode = "human-vs-computer"
	ModeComputerVsComputer Mode = "computer-vs-computer"
)

// Session is what the setup step hands to a game: the mode and both players,
// X moving first.
type Session struct {
	Mode   Mode
	First  Player
	Second Player
}
