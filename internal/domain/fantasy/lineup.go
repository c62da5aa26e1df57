package fantasy

// Eligible roster positions.
const (
	PositionQB = "QB"
	PositionRB = "RB"
	PositionWR = "WR"
	PositionTE = "TE"
)

// Slot names as they appear in the TeamStats payload.
const (
	SlotQuarterback = "quarterback"
	SlotRunningBack = "runningBack"
	SlotReceivers   = "receivers"
	SlotTightEnd    = "tightEnd"
)

// slotLimits caps how many ranked players each position contributes to a lineup.
var slotLimits = map[string]int{
	PositionQB: 1,
	PositionRB: 1,
	PositionWR: 2,
	PositionTE: 1,
}

// IsEligiblePosition reports whether a position can fill a lineup slot.
func IsEligiblePosition(position string) bool {
	_, ok := slotLimits[position]
	return ok
}

// Lineup is the fantasy roster picked from a ranked player list.
type Lineup struct {
	Quarterback *PlayerStats
	RunningBack *PlayerStats
	Receivers   []PlayerStats
	TightEnd    *PlayerStats
}

// SelectLineup walks ranked once, best first, and hands each player the open
// slot for their position until that position's limit is spent.
func SelectLineup(ranked []PlayerStats) Lineup {
	remaining := make(map[string]int, len(slotLimits))
	for pos, limit := range slotLimits {
		remaining[pos] = limit
	}

	lineup := Lineup{Receivers: make([]PlayerStats, 0, slotLimits[PositionWR])}
	for i := range ranked {
		player := ranked[i]
		if remaining[player.Position] <= 0 {
			continue
		}
		remaining[player.Position]--

		switch player.Position {
		case PositionQB:
			lineup.Quarterback = &player
		case PositionRB:
			lineup.RunningBack = &player
		case PositionWR:
			lineup.Receivers = append(lineup.Receivers, player)
		case PositionTE:
			lineup.TightEnd = &player
		}
	}
	return lineup
}

// EmptySlots counts unfilled slots keyed by payload slot name. Filled slots are omitted.
func (l Lineup) EmptySlots() map[string]int {
	empty := make(map[string]int)
	if l.Quarterback == nil {
		empty[SlotQuarterback] = 1
	}
	if l.RunningBack == nil {
		empty[SlotRunningBack] = 1
	}
	if missing := slotLimits[PositionWR] - len(l.Receivers); missing > 0 {
		empty[SlotReceivers] = missing
	}
	if l.TightEnd == nil {
		empty[SlotTightEnd] = 1
	}
	return empty
}
