// Package ledger aggregates banking transactions into per customer monthly
// balance summaries and daily credit balances.
package ledger // import "kastelo.dev/ledger"

import (
	"strconv"
	"strings"
)

// Transaction is a single validated input record. Date is in MM/DD/YYYY
// form and Amount is signed; negative amounts are debits.
type Transaction struct {
	CustomerID string
	Date       string
	Amount     int64
}

// IsCredit reports whether the transaction counts towards daily balances.
func (t Transaction) IsCredit() bool {
	return t.Amount >= 0
}

// MonthlyRow is one line of the monthly export.
type MonthlyRow struct {
	CustomerID string
	MonthYear  string // MM/YYYY
	MonthlySummary
}

func (r MonthlyRow) String() string {
	return r.CustomerID + "," + r.MonthYear + "," + r.MonthlySummary.String()
}

// Period returns the row's month as YYYY-MM, which sorts chronologically.
func (r MonthlyRow) Period() string {
	return strings.Replace(swapAroundSlash(r.MonthYear), "/", "-", 1)
}

// DailyRow is one stored daily credit balance.
type DailyRow struct {
	CustomerID string
	Date       string // MM/DD/YYYY
	Balance    int64
}

func (r DailyRow) String() string {
	return r.CustomerID + " | " + r.Date + " | " + strconv.FormatInt(r.Balance, 10)
}

// monthYear derives the MM/YYYY bucket key from an MM/DD/YYYY date.
func monthYear(date string) string {
	return date[:2] + "/" + date[6:]
}

// swapAroundSlash turns "a/b" into "b/a". Strings without a slash are
// returned unchanged.
func swapAroundSlash(s string) string {
	i := strings.IndexByte(s, '/')
	if i == -1 {
		return s
	}
	return s[i+1:] + "/" + s[:i]
}
