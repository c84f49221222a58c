package service

import (
	"fmt"

	"github.com/dmoros/lavanderia-pos/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// ExportService builds spreadsheet reports out of normalized receipts.
type ExportService struct{}

// NewExportService creates a new export service
func NewExportService() *ExportService {
	return &ExportService{}
}

const reportSheet = "Ventas"

// DailyReport writes one row per receipt plus a grand-total row
func (s *ExportService) DailyReport(receipts []entity.UnifiedReceipt) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", reportSheet); err != nil {
		return nil, fmt.Errorf("export: failed to name sheet: %w", err)
	}

	headers := []string{"Folio", "Fecha", "Cliente", "Método", "Total"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(reportSheet, cell, h); err != nil {
			return nil, fmt.Errorf("export: failed to write header: %w", err)
		}
	}

	grandTotal := decimal.Zero
	for row, r := range receipts {
		values := []interface{}{
			r.ID,
			r.Date,
			r.Client,
			r.Payment.Method.Label(),
			r.Totals.Total.InexactFloat64(),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(reportSheet, cell, v); err != nil {
				return nil, fmt.Errorf("export: failed to write receipt %s: %w", r.ID, err)
			}
		}
		grandTotal = grandTotal.Add(r.Totals.Total)
	}

	totalRow := len(receipts) + 2
	labelCell, _ := excelize.CoordinatesToCellName(4, totalRow)
	valueCell, _ := excelize.CoordinatesToCellName(5, totalRow)
	if err := f.SetCellValue(reportSheet, labelCell, "TOTAL"); err != nil {
		return nil, fmt.Errorf("export: failed to write total row: %w", err)
	}
	if err := f.SetCellValue(reportSheet, valueCell, grandTotal.InexactFloat64()); err != nil {
		return nil, fmt.Errorf("export: failed to write total row: %w", err)
	}

	return f, nil
}
