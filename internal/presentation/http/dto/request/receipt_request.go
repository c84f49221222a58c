package request

import "encoding/json"

// RenderReceiptRequest carries a legacy payload (ticket, cart or income
// shape) plus an optional print profile override
type RenderReceiptRequest struct {
	Payload json.RawMessage `json:"payload" binding:"required"`
	WidthMm int             `json:"width_mm"`
	Thermal *bool           `json:"thermal,omitempty"`
}

// DailyReportRequest carries the day's payloads for the xlsx export
type DailyReportRequest struct {
	Receipts []json.RawMessage `json:"receipts" binding:"required,min=1"`
}
