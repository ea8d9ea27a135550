package board

type GameStatus uint8

const (
	InProgress GameStatus = iota
	Win
	Lose
)

func (s GameStatus) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Win:
		return "win"
	case Lose:
		return "lose"
	default:
		return "!"
	}
}

type WinRule uint8

const (
	// WinLenient counts any opened or flagged cell as checked, so a
	// misplaced flag does not block the win.
	WinLenient WinRule = iota
	// WinStrict requires every mine flagged and every safe cell opened.
	WinStrict
)

func (r WinRule) checked(c Cell) bool {
	if r == WinStrict {
		if c.IsLandMine() {
			return c.IsFlagged()
		}
		return c.IsOpened()
	}
	return c.IsChecked()
}
