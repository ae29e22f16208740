package ledger

// Engine routes transactions to per customer ledgers and exports the
// results. It is not safe for concurrent use.
type Engine struct {
	customers map[string]*Customer
	order     []string
}

func NewEngine() *Engine {
	return &Engine{
		customers: make(map[string]*Customer),
	}
}

func (e *Engine) customer(id string) (*Customer, bool) {
	c, ok := e.customers[id]
	if !ok {
		c = NewCustomer(id)
		e.customers[id] = c
		e.order = append(e.order, id)
	}
	return c, ok
}

// RecordTransaction applies a credit or debit to the customer's monthly
// summaries, creating the customer on first sight.
func (e *Engine) RecordTransaction(id, date string, amount int64) {
	c, _ := e.customer(id)
	c.RecordChange(date, amount)
}

// RecordCreditTransaction adds a credit to the customer's daily balances.
// A customer that has not been seen yet is created and the credit is
// applied to its monthly summary instead; no daily balance is recorded.
func (e *Engine) RecordCreditTransaction(id, date string, amount int64) {
	c, existed := e.customer(id)
	if !existed {
		c.RecordChange(date, amount)
		return
	}
	c.RecordDailyBalance(date, amount)
}

// Ingest feeds every transaction to RecordTransaction and then the
// credits, in their original order, to RecordCreditTransaction.
func (e *Engine) Ingest(txs []Transaction) {
	for _, tx := range txs {
		e.RecordTransaction(tx.CustomerID, tx.Date, tx.Amount)
	}
	for _, tx := range txs {
		if tx.IsCredit() {
			e.RecordCreditTransaction(tx.CustomerID, tx.Date, tx.Amount)
		}
	}
}

// Customer returns the ledger for id, if any transaction referenced it.
func (e *Engine) Customer(id string) (*Customer, bool) {
	c, ok := e.customers[id]
	return c, ok
}

// Len returns the number of customers.
func (e *Engine) Len() int {
	return len(e.order)
}

// AllMonthlyRows returns the monthly rows of all customers. Customers
// appear in the order they were first seen, each with its months in
// chronological order.
func (e *Engine) AllMonthlyRows() []MonthlyRow {
	var res []MonthlyRow
	for _, id := range e.order {
		res = append(res, e.customers[id].MonthlyRows()...)
	}
	return res
}

// ExportAllMonthlyRows is AllMonthlyRows formatted as output lines.
func (e *Engine) ExportAllMonthlyRows() []string {
	var res []string
	for _, id := range e.order {
		res = append(res, e.customers[id].ExportMonthlyRows()...)
	}
	return res
}

func (e *Engine) AllDailyRows() []DailyRow {
	var res []DailyRow
	for _, id := range e.order {
		res = append(res, e.customers[id].DailyRows()...)
	}
	return res
}

func (e *Engine) RenderAllDailyBalances() []string {
	var res []string
	for _, id := range e.order {
		res = append(res, e.customers[id].RenderDailyBalances()...)
	}
	return res
}
