package board

type SnapshotStatus uint8

const (
	SnapshotUnchecked SnapshotStatus = iota
	SnapshotEmpty
	SnapshotFlagged
	SnapshotLandMine
	SnapshotNumber
)

func (s SnapshotStatus) String() string {
	switch s {
	case SnapshotUnchecked:
		return "UNCHECKED"
	case SnapshotEmpty:
		return "EMPTY"
	case SnapshotFlagged:
		return "FLAGGED"
	case SnapshotLandMine:
		return "LAND_MINE"
	case SnapshotNumber:
		return "NUMBER"
	default:
		return "!"
	}
}

// Snapshot is what a renderer needs to draw a single cell. Count is only
// meaningful for [SnapshotNumber].
type Snapshot struct {
	Status SnapshotStatus
	Count  int
}
