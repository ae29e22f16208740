package ledger

import (
	"reflect"
	"testing"
)

func TestEngineEndToEnd(t *testing.T) {
	e := NewEngine()
	e.Ingest([]Transaction{
		{CustomerID: "A1", Date: "01/15/2021", Amount: 100},
		{CustomerID: "A1", Date: "01/20/2021", Amount: -30},
		{CustomerID: "A1", Date: "02/01/2021", Amount: 50},
	})

	expected := []string{
		"A1,01/2021,70,100,70",
		"A1,02/2021,50,50,50",
	}
	if rows := e.ExportAllMonthlyRows(); !reflect.DeepEqual(rows, expected) {
		t.Errorf("export mismatch\n%#v\n%#v", rows, expected)
	}
	if rows := e.ExportAllMonthlyRows(); !reflect.DeepEqual(rows, expected) {
		t.Errorf("second export mismatch\n%#v\n%#v", rows, expected)
	}
}

func TestEngineDailyExcludesDebits(t *testing.T) {
	e := NewEngine()
	e.Ingest([]Transaction{
		{CustomerID: "A1", Date: "01/15/2021", Amount: 100},
		{CustomerID: "A1", Date: "01/15/2021", Amount: -60},
		{CustomerID: "A1", Date: "01/15/2021", Amount: 0},
		{CustomerID: "A1", Date: "01/16/2021", Amount: -10},
	})

	c, ok := e.Customer("A1")
	if !ok {
		t.Fatal("customer A1 missing")
	}
	if v := c.DailyBalance("01/15/2021"); v != 100 {
		t.Errorf("01/15/2021: got %d, expected 100", v)
	}
	if v := c.DailyBalance("01/16/2021"); v != 0 {
		t.Errorf("01/16/2021: got %d, expected 0", v)
	}
	expected := []string{"A1 | 01/15/2021 | 100"}
	if lines := e.RenderAllDailyBalances(); !reflect.DeepEqual(lines, expected) {
		t.Errorf("render mismatch\n%#v\n%#v", lines, expected)
	}
}

func TestEngineCreditForUnknownCustomer(t *testing.T) {
	e := NewEngine()
	e.RecordCreditTransaction("N1", "04/01/2022", 40)

	c, ok := e.Customer("N1")
	if !ok {
		t.Fatal("customer N1 not created")
	}
	if v := c.DailyBalance("04/01/2022"); v != 0 {
		t.Errorf("daily balance recorded for new customer: %d", v)
	}
	s, ok := c.MonthlySummary("04/2022")
	if !ok || s != (MonthlySummary{Min: 40, Max: 40, Ending: 40}) {
		t.Errorf("unexpected summary %+v, %v", s, ok)
	}

	// Once the customer exists, credits go to the daily balance only.
	e.RecordCreditTransaction("N1", "04/01/2022", 10)
	if v := c.DailyBalance("04/01/2022"); v != 10 {
		t.Errorf("daily balance: got %d, expected 10", v)
	}
	if s, _ := c.MonthlySummary("04/2022"); s.Ending != 40 {
		t.Errorf("monthly summary changed by credit: %+v", s)
	}
}

func TestEngineCustomerOrder(t *testing.T) {
	e := NewEngine()
	e.RecordTransaction("C", "02/01/2020", 1)
	e.RecordTransaction("A", "03/01/2020", 2)
	e.RecordTransaction("C", "01/01/2020", 3)
	e.RecordTransaction("B", "01/01/2020", 4)

	expected := []string{
		"C,01/2020,3,3,3",
		"C,02/2020,1,1,1",
		"A,03/2020,2,2,2",
		"B,01/2020,4,4,4",
	}
	if rows := e.ExportAllMonthlyRows(); !reflect.DeepEqual(rows, expected) {
		t.Errorf("export mismatch\n%#v\n%#v", rows, expected)
	}
	if e.Len() != 3 {
		t.Errorf("expected 3 customers, got %d", e.Len())
	}

	rows := e.AllMonthlyRows()
	if len(rows) != len(expected) {
		t.Fatalf("expected %d rows, got %d", len(expected), len(rows))
	}
	for i, r := range rows {
		if r.String() != expected[i] {
			t.Errorf("row %d: %q, expected %q", i, r.String(), expected[i])
		}
	}
}

func TestEngineEmpty(t *testing.T) {
	e := NewEngine()
	if rows := e.ExportAllMonthlyRows(); len(rows) != 0 {
		t.Errorf("expected no rows, got %#v", rows)
	}
	if _, ok := e.Customer("nobody"); ok {
		t.Error("unexpected customer")
	}
}
