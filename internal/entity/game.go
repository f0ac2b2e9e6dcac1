package entity

const (
	StatusSetup   = "setup"
	StatusOngoing = "ongoing"
	StatusWon     = "won"
	StatusDrawn   = "drawn"

	PlayerX = "X"
	PlayerO = "O"

	EmptyCell = ""

	BoardSize = 9
)

// WinCombos lists the rows, then the columns, then the diagonals.
// The first fully matching triple is reported as the winning line.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Game is the state of one hot-seat session: the board, whose turn it is and the two players.
type Game struct {
	Board       [BoardSize]string `json:"board"`
	Turn        string            `json:"player_turn"`
	Status      string            `json:"status"`
	Winner      string            `json:"winner,omitempty"`
	WinningLine []int             `json:"winning_line,omitempty"`
	Players     [2]Player         `json:"players"`
}

func NewGame() *Game {
	return &Game{
		Turn:   PlayerX,
		Status: StatusSetup,
		Players: [2]Player{
			{Mark: PlayerX, Name: DefaultNameX},
			{Mark: PlayerO, Name: DefaultNameO},
		},
	}
}

// Clear empties the board and hands the first move to X.
func (that *Game) Clear() {
	that.Board = [BoardSize]string{}
	that.Turn = PlayerX
	that.Status = StatusOngoing
	that.Winner = ""
	that.WinningLine = nil
}

// Player returns the player holding the mark, nil for an unknown mark.
func (that *Game) Player(mark string) *Player {
	switch mark {
	case PlayerX:
		return &that.Players[0]
	case PlayerO:
		return &that.Players[1]
	default:
		return nil
	}
}

func (that *Game) IsFull() bool {
	for _, cell := range that.Board {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

func (that *Game) IsSetup() bool {
	return that.Status == StatusSetup
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusWon || that.Status == StatusDrawn
}

// Snapshot returns a copy that shares no memory with the receiver.
func (that *Game) Snapshot() Game {
	snapshot := *that
	if that.WinningLine != nil {
		snapshot.WinningLine = append([]int(nil), that.WinningLine...)
	}

	return snapshot
}

// TurnResult is what the outer layers render after a move.
type TurnResult struct {
	Game        Game     `json:"game"`
	Leaderboard []Record `json:"leaderboard,omitempty"`
}
