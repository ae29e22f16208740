package ledger

import "strconv"

// MonthlySummary holds the lowest, highest and final running balance of
// one customer in one calendar month.
type MonthlySummary struct {
	Min    int64
	Max    int64
	Ending int64
}

func newMonthlySummary(amount int64) *MonthlySummary {
	return &MonthlySummary{
		Min:    amount,
		Max:    amount,
		Ending: amount,
	}
}

// apply adds amount to the running balance. A new minimum is checked
// before a new maximum and only one of them is updated per call.
func (s *MonthlySummary) apply(amount int64) {
	s.Ending += amount
	if s.Ending < s.Min {
		s.Min = s.Ending
	} else if s.Ending > s.Max {
		s.Max = s.Ending
	}
}

func (s MonthlySummary) String() string {
	return strconv.FormatInt(s.Min, 10) + "," +
		strconv.FormatInt(s.Max, 10) + "," +
		strconv.FormatInt(s.Ending, 10)
}
