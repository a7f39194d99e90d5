package entity

import "errors"

type Kind string

const (
	KindHuman    Kind = "human"
	KindComputer Kind = "computer"
)

var (
	ErrEmptyName     = errors.New("player name is empty")
	ErrInvalidSymbol = errors.New("player symbol must be X or O")
)

// Player is fixed for the whole game.
type Player struct {
	Name   string
	Symbol Symbol
	Kind   Kind
}

func NewPlayer(name string, symbol Symbol, kind Kind) (Player, error) {
	if name == "" {
		return Player{}, ErrEmptyName
	}

	if !symbol.IsMark() {
		return Player{}, ErrInvalidSymbol
	}

	return Player{Name: name, Symbol: symbol, Kind: kind}, nil
}

func (that Player) IsComputer() bool {
	return that.Kind == KindComputer
}
