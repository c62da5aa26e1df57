package fantasy

// Scoring weights (full point per reception).
const (
	RushingYardPoints      = 0.1
	RushingTouchdownPoints = 6.0

	ReceivingYardPoints      = 0.1
	ReceivingTouchdownPoints = 6.0
	ReceptionPoints          = 1.0

	PassingYardPoints      = 0.04
	PassingTouchdownPoints = 4.0

	TouchdownValue = 7
	FieldGoalValue = 3
)

func (s RushingStats) fantasyPoints() float64 {
	return float64(s.Yards)*RushingYardPoints + float64(s.RushingTouchdowns)*RushingTouchdownPoints
}

func (s ReceivingStats) fantasyPoints() float64 {
	return float64(s.Yards)*ReceivingYardPoints +
		float64(s.ReceivingTouchdowns)*ReceivingTouchdownPoints +
		float64(s.Receptions)*ReceptionPoints
}

func (s PassingStats) fantasyPoints() float64 {
	return float64(s.Yards)*PassingYardPoints + float64(s.PassingTouchdowns)*PassingTouchdownPoints
}

// ratio divides num by den and yields 0 when den is zero.
// Every share, rate and per-game value in this package goes through it.
func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
