package service

import (
	"testing"

	"github.com/dmoros/lavanderia-pos/internal/domain/entity"
	"github.com/dmoros/lavanderia-pos/internal/domain/enum"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyReport_WritesRowsAndGrandTotal(t *testing.T) {
	s := NewExportService()

	receipts := []entity.UnifiedReceipt{
		{
			ID:      "T1",
			Date:    "05/03/2024",
			Client:  "Ana",
			Totals:  entity.Totals{Total: decimal.NewFromInt(100)},
			Payment: entity.PaymentInfo{Method: enum.PaymentCash},
		},
		{
			ID:      "T2",
			Date:    "05/03/2024",
			Client:  "Luis",
			Totals:  entity.Totals{Total: decimal.NewFromInt(50)},
			Payment: entity.PaymentInfo{Method: enum.PaymentCard},
		},
	}

	f, err := s.DailyReport(receipts)
	require.NoError(t, err)
	defer f.Close()

	cell := func(ref string) string {
		v, err := f.GetCellValue("Ventas", ref)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "Folio", cell("A1"))
	assert.Equal(t, "Total", cell("E1"))

	assert.Equal(t, "T1", cell("A2"))
	assert.Equal(t, "Ana", cell("C2"))
	assert.Equal(t, "Efectivo", cell("D2"))
	assert.Equal(t, "100", cell("E2"))

	assert.Equal(t, "T2", cell("A3"))
	assert.Equal(t, "Tarjeta", cell("D3"))

	assert.Equal(t, "TOTAL", cell("D4"))
	assert.Equal(t, "150", cell("E4"))
}

func TestDailyReport_EmptyDay(t *testing.T) {
	s := NewExportService()

	f, err := s.DailyReport(nil)
	require.NoError(t, err)
	defer f.Close()

	label, err := f.GetCellValue("Ventas", "D2")
	require.NoError(t, err)
	assert.Equal(t, "TOTAL", label)

	total, err := f.GetCellValue("Ventas", "E2")
	require.NoError(t, err)
	assert.Equal(t, "0", total)
}

func TestDailyReport_SheetName(t *testing.T) {
	s := NewExportService()

	f, err := s.DailyReport(nil)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Ventas"}, f.GetSheetList())
}
