package ledger

// dailyBalances is a running sum per exact date string. Dates are kept in
// the order they were first recorded.
type dailyBalances struct {
	sums  map[string]int64
	dates []string
}

func newDailyBalances() *dailyBalances {
	return &dailyBalances{
		sums: make(map[string]int64),
	}
}

func (d *dailyBalances) accumulate(date string, amount int64) {
	if _, ok := d.sums[date]; !ok {
		d.dates = append(d.dates, date)
	}
	d.sums[date] += amount
}

// read returns the sum for date, or zero when nothing was recorded.
func (d *dailyBalances) read(date string) int64 {
	return d.sums[date]
}
