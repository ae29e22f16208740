package ledger

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	expected := []Transaction{
		{CustomerID: "A1", Date: "01/15/2021", Amount: 100},
		{CustomerID: "A1", Date: "01/20/2021", Amount: -30},
		{CustomerID: "B7", Date: "03/02/2021", Amount: 250},
		{CustomerID: "A1", Date: "02/01/2021", Amount: 50},
		{CustomerID: "B7", Date: "03/09/2021", Amount: -400},
		{CustomerID: "B7", Date: "03/10/2021", Amount: 20},
	}

	res, err := ReadFile("testdata/transactions.csv", ParseOptions{})
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(res.Transactions, expected) {
		t.Errorf("mismatch\n%#v\n%#v", res.Transactions, expected)
	}

	rejected := []struct {
		line int
		err  error
	}{
		{5, ErrFieldCount},
		{6, ErrEmptyField},
		{7, ErrDateFormat},
		{8, ErrFieldCount},
		{9, ErrAmount},
	}
	if len(res.Rejected) != len(rejected) {
		t.Fatalf("expected %d rejected lines, got %d: %v", len(rejected), len(res.Rejected), res.Rejected)
	}
	for i, r := range rejected {
		got := res.Rejected[i]
		if got.Line != r.line || !errors.Is(got, r.err) {
			t.Errorf("rejection %d: line %d %v, expected line %d %v", i, got.Line, got.Err, r.line, r.err)
		}
	}

	credits := res.Credits()
	if len(credits) != 4 {
		t.Errorf("expected 4 credits, got %d", len(credits))
	}
	for _, tx := range credits {
		if tx.Amount < 0 {
			t.Errorf("debit among credits: %+v", tx)
		}
	}
}

func TestParseStrict(t *testing.T) {
	in := "A1,01/15/2021,100\nA1,1/15/2021,100\n"
	_, err := Parse(strings.NewReader(in), ParseOptions{Strict: true})

	var lerr *LineError
	if !errors.As(err, &lerr) {
		t.Fatalf("expected a LineError, got %v", err)
	}
	if lerr.Line != 2 || !errors.Is(err, ErrDateFormat) {
		t.Errorf("unexpected error %v", err)
	}
}

func TestParseEncoding(t *testing.T) {
	cases := []struct {
		name     string
		encoding string
		in       []byte
		id       string
	}{
		{"utf-8 with BOM", "", []byte("\xef\xbb\xbfA1,01/15/2021,100\r\n"), "A1"},
		{"cp850", "IBM850", []byte("\x8f1,01/15/2021,100\n"), "Å1"},
		{"latin1", "ISO-8859-1", []byte("\xc51,01/15/2021,100\n"), "Å1"},
	}

	for _, tc := range cases {
		res, err := Parse(bytes.NewReader(tc.in), ParseOptions{Encoding: tc.encoding})
		if err != nil {
			t.Errorf("%s: %v", tc.name, err)
			continue
		}
		if len(res.Transactions) != 1 {
			t.Errorf("%s: expected one transaction, got %#v (rejected %v)", tc.name, res.Transactions, res.Rejected)
			continue
		}
		if id := res.Transactions[0].CustomerID; id != tc.id {
			t.Errorf("%s: customer %q, expected %q", tc.name, id, tc.id)
		}
	}
}

func TestParseUnknownEncoding(t *testing.T) {
	_, err := Parse(strings.NewReader(""), ParseOptions{Encoding: "no-such-charset"})
	if !errors.Is(err, ErrUnknownEncoding) {
		t.Errorf("expected ErrUnknownEncoding, got %v", err)
	}
}

func TestParseFeedsEngine(t *testing.T) {
	res, err := ReadFile("testdata/transactions.csv", ParseOptions{})
	if err != nil {
		t.Fatal(err)
	}

	e := NewEngine()
	e.Ingest(res.Transactions)

	expected := []string{
		"A1,01/2021,70,100,70",
		"A1,02/2021,50,50,50",
		"B7,03/2021,-150,250,-130",
	}
	if rows := e.ExportAllMonthlyRows(); !reflect.DeepEqual(rows, expected) {
		t.Errorf("export mismatch\n%#v\n%#v", rows, expected)
	}

	daily := []string{
		"A1 | 01/15/2021 | 100",
		"A1 | 02/01/2021 | 50",
		"B7 | 03/02/2021 | 250",
		"B7 | 03/10/2021 | 20",
	}
	if lines := e.RenderAllDailyBalances(); !reflect.DeepEqual(lines, daily) {
		t.Errorf("daily mismatch\n%#v\n%#v", lines, daily)
	}
}
