package main

import (
	"log/slog"
	"os"

	"kastelo.dev/ledger"
	"kastelo.dev/ledger/excel"
)

func main() {
	res, err := ledger.Parse(os.Stdin, ledger.ParseOptions{})
	if err != nil {
		slog.Error("Error parsing transactions", "error", err)
		os.Exit(1)
	}

	eng := ledger.NewEngine()
	eng.Ingest(res.Transactions)

	bs, err := excel.ReportXLSX(excel.Report{Monthly: eng.AllMonthlyRows()})
	if err != nil {
		slog.Error("Error creating Excel file", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile("monthly.xlsx", bs, 0o644); err != nil {
		slog.Error("Error writing Excel file", "error", err)
		os.Exit(1)
	}
}
