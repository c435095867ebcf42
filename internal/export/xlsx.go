package export

import (
	"fmt"
	"io"

	"github.com/ardi-the-water/denj/internal/domain"
	"github.com/xuri/excelize/v2"
)

const xlsxSheet = "فاکتورها"

// WriteXLSX writes the same columns as WriteCSV into a spreadsheet
// workbook. Numeric columns stay numeric so totals can be summed
// directly in the spreadsheet.
func WriteXLSX(w io.Writer, invoices []domain.Invoice) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(xlsxSheet)
	if err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("dropping default sheet: %w", err)
	}

	header := make([]interface{}, len(csvHeader))
	for i, h := range csvHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(xlsxSheet, "A1", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	rowNum := 2
	for _, inv := range invoices {
		if inv.ID == "" {
			continue
		}
		cells := csvRow(inv)
		row := []interface{}{
			cells[0], cells[1], cells[2], cells[3], cells[4],
			itemsSummary(inv.Items),
			inv.TotalQuantity(), inv.Subtotal, inv.Discount, inv.Total,
		}
		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return fmt.Errorf("computing cell name: %w", err)
		}
		if err := f.SetSheetRow(xlsxSheet, cell, &row); err != nil {
			return fmt.Errorf("writing row for invoice %s: %w", inv.ID, err)
		}
		rowNum++
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
