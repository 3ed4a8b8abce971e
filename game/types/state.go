package types

// FoodType is the fruit flavor of the current food item. It only drives the
// render color. The declaration order is the spawn cycle.
type FoodType int

const (
	Apple FoodType = iota
	Banana
	Grape
	Blueberry
	Orange

	FoodTypeCount = int(Orange) + 1
)

var foodNames = [FoodTypeCount]string{"apple", "banana", "grape", "blueberry", "orange"}

// Next returns the flavor that follows f in the cycle
func (f FoodType) Next() FoodType {
	return FoodType((int(f) + 1) % FoodTypeCount)
}

func (f FoodType) String() string {
	if f < 0 || int(f) >= FoodTypeCount {
		return "unknown"
	}
	return foodNames[f]
}

// GameState is the state of the round state machine
type GameState int

const (
	Playing GameState = iota
	Paused
	GameOver
)

func (s GameState) String() string {
	switch s {
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case GameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Outcome records why a round ended
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWallCollision
	OutcomeSelfCollision
	OutcomeBoardFull // the snake filled every cell: a win
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWallCollision:
		return "wall collision"
	case OutcomeSelfCollision:
		return "self collision"
	case OutcomeBoardFull:
		return "board full"
	default:
		return "none"
	}
}

// Won reports whether the outcome is the full-board success
func (o Outcome) Won() bool {
	return o == OutcomeBoardFull
}

// Command is a discrete inbound input, already decoupled from any key binding
type Command int

const (
	CmdNone Command = iota
	CmdUp
	CmdDown
	CmdLeft
	CmdRight
	CmdTogglePause
	CmdRestart
)

// Direction returns the heading carried by a directional command
func (c Command) Direction() (Direction, bool) {
	switch c {
	case CmdUp:
		return Up, true
	case CmdDown:
		return Down, true
	case CmdLeft:
		return Left, true
	case CmdRight:
		return Right, true
	default:
		return None, false
	}
}
