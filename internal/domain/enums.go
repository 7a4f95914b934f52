package domain

type PunchKind string

const (
	PunchClockIn    PunchKind = "clock_in"
	PunchBreakStart PunchKind = "break_start"
	PunchBreakEnd   PunchKind = "break_end"
	PunchClockOut   PunchKind = "clock_out"
)

// ValidPunchKinds is the canonical set of accepted punch kinds.
var ValidPunchKinds = map[PunchKind]bool{
	PunchClockIn: true, PunchBreakStart: true, PunchBreakEnd: true, PunchClockOut: true,
}

// SortRank orders punch kinds that share an exact timestamp: a clock-in
// sorts before a break start, a break end before a clock-out. Unknown
// kinds sort last.
func (k PunchKind) SortRank() int {
	switch k {
	case PunchClockIn:
		return 0
	case PunchBreakStart:
		return 1
	case PunchBreakEnd:
		return 2
	case PunchClockOut:
		return 3
	default:
		return 4
	}
}

type ShiftStatus string

const (
	ShiftInProgress ShiftStatus = "in_progress"
	ShiftOnBreak    ShiftStatus = "on_break"
	ShiftComplete   ShiftStatus = "complete"
	ShiftIncomplete ShiftStatus = "incomplete"
)

type WorkerStatus string

const (
	WorkerActive   WorkerStatus = "active"
	WorkerInactive WorkerStatus = "inactive"
)
