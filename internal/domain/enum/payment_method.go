package enum

import (
	"encoding/json"
	"strings"
)

// PaymentMethod represents how a sale was paid
type PaymentMethod int

const (
	PaymentCash     PaymentMethod = 0
	PaymentCard     PaymentMethod = 1
	PaymentTransfer PaymentMethod = 2
)

func (m PaymentMethod) String() string {
	names := [...]string{"cash", "card", "transfer"}
	if int(m) < 0 || int(m) >= len(names) {
		return "transfer"
	}
	return names[m]
}

// Label returns the customer-facing Spanish label used on receipts
func (m PaymentMethod) Label() string {
	switch m {
	case PaymentCash:
		return "Efectivo"
	case PaymentCard:
		return "Tarjeta"
	default:
		return "Transferencia"
	}
}

// ParsePaymentMethod normalizes free-form payment method strings coming from
// the backend or legacy tickets. Matching is case-insensitive and by
// substring; anything unrecognized falls back to transfer rather than failing.
func ParsePaymentMethod(s string) PaymentMethod {
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "efectivo") || strings.Contains(lower, "cash"):
		return PaymentCash
	case strings.Contains(lower, "tarjeta") || strings.Contains(lower, "card"):
		return PaymentCard
	default:
		return PaymentTransfer
	}
}

func (m PaymentMethod) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *PaymentMethod) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*m = PaymentMethod(i)
		return nil
	}
	*m = ParsePaymentMethod(str)
	return nil
}
