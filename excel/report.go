// Package excel renders ledger exports as XLSX workbooks.
package excel

import (
	"github.com/xuri/excelize/v2"
	"kastelo.dev/ledger"
)

const (
	MonthlySheet = "Monthly"
	DailySheet   = "Daily"
)

// Report is the content of a workbook. The Daily sheet is only written
// when Daily is non-empty.
type Report struct {
	Monthly []ledger.MonthlyRow
	Daily   []ledger.DailyRow
}

// ReportXLSX returns the report as an XLSX document.
func ReportXLSX(rep Report) ([]byte, error) {
	xlsx := excelize.NewFile()
	defer xlsx.Close()

	_ = xlsx.SetAppProps(&excelize.AppProperties{
		Application: "kastelo.dev/ledger",
		DocSecurity: 2,
	})

	st, err := newStyles(xlsx)
	if err != nil {
		return nil, err
	}

	sheet := xlsx.GetSheetName(xlsx.GetActiveSheetIndex())
	if err := xlsx.SetSheetName(sheet, MonthlySheet); err != nil {
		return nil, err
	}
	if err := writeMonthlySheet(xlsx, st, rep.Monthly); err != nil {
		return nil, err
	}

	if len(rep.Daily) > 0 {
		if _, err := xlsx.NewSheet(DailySheet); err != nil {
			return nil, err
		}
		if err := writeDailySheet(xlsx, st, rep.Daily); err != nil {
			return nil, err
		}
	}

	xlsx.SetActiveSheet(0)

	buf, err := xlsx.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeHeader(xlsx *excelize.File, st *styles, sheet string, cols ...string) {
	col := 'A'
	for _, hdr := range cols {
		_ = xlsx.SetCellValue(sheet, cell(col, 1), hdr)
		col++
	}
	_ = xlsx.SetCellStyle(sheet, cell('A', 1), cell(col-1, 1), st.header)

	_ = xlsx.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func writeMonthlySheet(xlsx *excelize.File, st *styles, rows []ledger.MonthlyRow) error {
	sheet := MonthlySheet
	_ = xlsx.SetColWidth(sheet, "A", "A", 16)
	_ = xlsx.SetColWidth(sheet, "B", "B", 10)
	_ = xlsx.SetColWidth(sheet, "C", "E", 14)
	writeHeader(xlsx, st, sheet, "Customer", "Month", "Min", "Max", "Ending")

	for i, r := range rows {
		row := i + 2
		if err := xlsx.SetCellValue(sheet, cell('A', row), r.CustomerID); err != nil {
			return err
		}
		_ = xlsx.SetCellValue(sheet, cell('B', row), r.MonthYear)
		_ = xlsx.SetCellStyle(sheet, cell('A', row), cell('B', row), st.text)

		for col, v := range map[rune]int64{'C': r.Min, 'D': r.Max, 'E': r.Ending} {
			_ = xlsx.SetCellValue(sheet, cell(col, row), v)
			_ = xlsx.SetCellStyle(sheet, cell(col, row), cell(col, row), st.forAmount(v))
		}
	}
	return nil
}

func writeDailySheet(xlsx *excelize.File, st *styles, rows []ledger.DailyRow) error {
	sheet := DailySheet
	_ = xlsx.SetColWidth(sheet, "A", "A", 16)
	_ = xlsx.SetColWidth(sheet, "B", "B", 12)
	_ = xlsx.SetColWidth(sheet, "C", "C", 14)
	writeHeader(xlsx, st, sheet, "Customer", "Date", "Balance")

	for i, r := range rows {
		row := i + 2
		if err := xlsx.SetCellValue(sheet, cell('A', row), r.CustomerID); err != nil {
			return err
		}
		_ = xlsx.SetCellValue(sheet, cell('B', row), r.Date)
		_ = xlsx.SetCellStyle(sheet, cell('A', row), cell('B', row), st.text)
		_ = xlsx.SetCellValue(sheet, cell('C', row), r.Balance)
		_ = xlsx.SetCellStyle(sheet, cell('C', row), cell('C', row), st.forAmount(r.Balance))
	}
	return nil
}
