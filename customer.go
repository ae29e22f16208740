package ledger

// Customer is the ledger of a single customer: one summary per month and
// one credit balance per day.
type Customer struct {
	ID     string
	months map[string]*MonthlySummary
	daily  *dailyBalances
}

func NewCustomer(id string) *Customer {
	return &Customer{
		ID:     id,
		months: make(map[string]*MonthlySummary),
		daily:  newDailyBalances(),
	}
}

// RecordChange applies a credit or debit to the summary of the month the
// date falls in. The date must be in MM/DD/YYYY form.
func (c *Customer) RecordChange(date string, amount int64) {
	key := monthYear(date)
	if s, ok := c.months[key]; ok {
		s.apply(amount)
		return
	}
	c.months[key] = newMonthlySummary(amount)
}

// RecordDailyBalance adds amount to the balance of the exact date. Callers
// only pass credits.
func (c *Customer) RecordDailyBalance(date string, amount int64) {
	c.daily.accumulate(date, amount)
}

// DailyBalance returns the credit balance recorded on date, or zero.
func (c *Customer) DailyBalance(date string) int64 {
	return c.daily.read(date)
}

// MonthlySummary returns the summary for an MM/YYYY month.
func (c *Customer) MonthlySummary(monthYear string) (MonthlySummary, bool) {
	s, ok := c.months[monthYear]
	if !ok {
		return MonthlySummary{}, false
	}
	return *s, true
}

// MonthlyRows returns one row per month in chronological order.
func (c *Customer) MonthlyRows() []MonthlyRow {
	type keyed struct {
		key string
		row MonthlyRow
	}

	// The sort key is the full output line with the date written as
	// YYYY/MM, so plain string comparison orders months by year first.
	rows := make([]keyed, 0, len(c.months))
	for my, s := range c.months {
		row := MonthlyRow{CustomerID: c.ID, MonthYear: my, MonthlySummary: *s}
		key := c.ID + "," + swapAroundSlash(my) + "," + s.String()
		rows = append(rows, keyed{key: key, row: row})
	}

	quickSort(rows, func(a, b keyed) bool {
		return a.key < b.key
	})

	res := make([]MonthlyRow, len(rows))
	for i, r := range rows {
		res[i] = r.row
	}
	return res
}

// ExportMonthlyRows returns the monthly rows formatted as
// "id,MM/YYYY,min,max,ending" in chronological order.
func (c *Customer) ExportMonthlyRows() []string {
	rows := c.MonthlyRows()
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = r.String()
	}
	return lines
}

// DailyRows returns the recorded daily balances in the order the dates
// were first seen.
func (c *Customer) DailyRows() []DailyRow {
	rows := make([]DailyRow, len(c.daily.dates))
	for i, date := range c.daily.dates {
		rows[i] = DailyRow{CustomerID: c.ID, Date: date, Balance: c.daily.read(date)}
	}
	return rows
}

// RenderDailyBalances formats the daily balances as "id | date | balance".
func (c *Customer) RenderDailyBalances() []string {
	rows := c.DailyRows()
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = r.String()
	}
	return lines
}
