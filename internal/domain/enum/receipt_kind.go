package enum

import "encoding/json"

// ReceiptKind distinguishes sale receipts from expense vouchers
type ReceiptKind int

const (
	ReceiptSale    ReceiptKind = 0
	ReceiptExpense ReceiptKind = 1
)

func (k ReceiptKind) String() string {
	names := [...]string{"sale", "expense"}
	if int(k) < 0 || int(k) >= len(names) {
		return "sale"
	}
	return names[k]
}

// Title returns the heading printed at the top of a receipt of this kind
func (k ReceiptKind) Title() string {
	if k == ReceiptExpense {
		return "Comprobante de gasto"
	}
	return "Ticket de venta"
}

func (k ReceiptKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *ReceiptKind) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*k = ReceiptKind(i)
		return nil
	}
	if str == "expense" {
		*k = ReceiptExpense
	} else {
		*k = ReceiptSale
	}
	return nil
}
