package entity

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWin        Status = "win"
	StatusDraw       Status = "draw"
)

// Result is derived from the board after each move and never stored on it.
type Result struct {
	Status Status
	Winner Symbol
}

func InProgress() Result {
	return Result{Status: StatusInProgress}
}

func Win(symbol Symbol) Result {
	return Result{Status: StatusWin, Winner: symbol}
}

func Draw() Result {
	return Result{Status: StatusDraw}
}

func (that Result) IsFinished() bool {
	return that.Status == StatusWin || that.Status == StatusDraw
}

func (that Result) String() string {
	switch that.Status {
	case StatusWin:
		return "win(" + string(that.Winner) + ")"
	case StatusDraw:
		return "draw"
	default:
		return "in progress"
	}
}
