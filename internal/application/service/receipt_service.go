package service

import (
	"encoding/json"
	"log"
	"sort"
	"time"

	"github.com/dmoros/lavanderia-pos/internal/domain/entity"
	"github.com/dmoros/lavanderia-pos/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReceiptService normalizes the three legacy payload shapes into one
// canonical UnifiedReceipt. Normalization degrades rather than fails:
// unparsable pieces, unknown payment methods and missing quantities all
// produce a best-effort receipt. The only fatal case is a payload with
// neither products nor totals.
type ReceiptService struct {
	company entity.Company
}

// NewReceiptService creates a receipt service issuing under the given company
func NewReceiptService(company entity.Company) *ReceiptService {
	return &ReceiptService{company: company}
}

// NormalizeRaw parses and normalizes a raw payload in one step
func (s *ReceiptService) NormalizeRaw(raw []byte) (*entity.UnifiedReceipt, error) {
	src, err := s.ParseSource(raw)
	if err != nil {
		return nil, err
	}
	return s.Normalize(src)
}

// ParseSource matches the payload against the known shapes in fixed
// priority order (ticket, cart, income) and tags the result. All later
// logic dispatches on the tag; no shape-sniffing happens downstream.
func (s *ReceiptService) ParseSource(raw []byte) (*entity.Source, error) {
	var probe struct {
		IncomeID string `json:"incomeId"`
		Products []struct {
			UnitPrice json.RawMessage `json:"unitPrice"`
		} `json:"products"`
		Totals json.RawMessage `json:"totals"`
		Total  json.RawMessage `json:"total"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, err
	}

	switch {
	case len(probe.Products) > 0 && probe.Products[0].UnitPrice != nil:
		var ticket entity.TicketPayload
		if err := json.Unmarshal(raw, &ticket); err != nil {
			return nil, err
		}
		return &entity.Source{Kind: entity.SourceTicket, Ticket: &ticket}, nil

	case len(probe.Products) > 0:
		var cart entity.CartPayload
		if err := json.Unmarshal(raw, &cart); err != nil {
			return nil, err
		}
		return &entity.Source{Kind: entity.SourceCart, Cart: &cart}, nil

	case probe.IncomeID != "" || probe.Total != nil:
		var income entity.IncomePayload
		if err := json.Unmarshal(raw, &income); err != nil {
			return nil, err
		}
		return &entity.Source{Kind: entity.SourceIncome, Income: &income}, nil

	case probe.Totals != nil:
		// Ticket with no product breakdown but server totals
		var ticket entity.TicketPayload
		if err := json.Unmarshal(raw, &ticket); err != nil {
			return nil, err
		}
		return &entity.Source{Kind: entity.SourceTicket, Ticket: &ticket}, nil
	}

	return nil, ErrEmptyReceipt
}

// Normalize builds the canonical receipt for a tagged source
func (s *ReceiptService) Normalize(src *entity.Source) (*entity.UnifiedReceipt, error) {
	switch src.Kind {
	case entity.SourceCart:
		return s.normalizeCart(src.Cart)
	case entity.SourceIncome:
		return s.normalizeIncome(src.Income)
	default:
		return s.normalizeTicket(src.Ticket)
	}
}

func (s *ReceiptService) normalizeTicket(t *entity.TicketPayload) (*entity.UnifiedReceipt, error) {
	if len(t.Products) == 0 && t.Totals == nil {
		return nil, ErrEmptyReceipt
	}

	date, tm := splitTimestamp(t.PaymentDate)
	receipt := &entity.UnifiedReceipt{
		ID:       receiptID(t.ID),
		Kind:     enum.ReceiptSale,
		Date:     date,
		Time:     tm,
		Client:   t.Client.Name,
		User:     t.User.Name,
		Company:  s.company,
		Products: make([]entity.UnifiedLine, 0, len(t.Products)),
	}

	for _, p := range t.Products {
		receipt.Products = append(receipt.Products, entity.UnifiedLine{
			Name:      p.Name,
			Quantity:  inferQuantity(p.Quantity, p.UnitPrice, p.Subtotal),
			UnitPrice: p.UnitPrice,
			Subtotal:  p.Subtotal,
			Options:   flattenTicketOptions(p.Options),
			Pieces:    parsePieces(p.Pieces),
		})
	}

	receipt.Totals = payloadTotals(t.Totals, receipt.Products)
	receipt.Payment = exactPayment(t.PaymentMethod, receipt.Totals)
	return receipt, nil
}

func (s *ReceiptService) normalizeCart(c *entity.CartPayload) (*entity.UnifiedReceipt, error) {
	if len(c.Products) == 0 && c.Totals == nil {
		return nil, ErrEmptyReceipt
	}

	date, tm := splitTimestamp(c.PaymentDate)
	receipt := &entity.UnifiedReceipt{
		ID:       receiptID(c.ID),
		Kind:     enum.ReceiptSale,
		Date:     date,
		Time:     tm,
		Client:   c.Client,
		User:     c.User,
		Company:  s.company,
		Products: make([]entity.UnifiedLine, 0, len(c.Products)),
	}

	for _, p := range c.Products {
		qty := 1
		if p.Quantity != nil && *p.Quantity > 0 {
			qty = *p.Quantity
		}
		receipt.Products = append(receipt.Products, entity.UnifiedLine{
			Name:      p.Name,
			Quantity:  qty,
			UnitPrice: p.Price,
			Subtotal:  p.Price.Mul(decimal.NewFromInt(int64(qty))),
			Options:   labelOptions(p.SelectedOptions),
			Pieces:    parsePieces(p.Pieces),
		})
	}

	receipt.Totals = payloadTotals(c.Totals, receipt.Products)
	receipt.Payment = exactPayment(c.PaymentMethod, receipt.Totals)
	return receipt, nil
}

func (s *ReceiptService) normalizeIncome(in *entity.IncomePayload) (*entity.UnifiedReceipt, error) {
	date, tm := splitTimestamp(in.PaymentDate)
	totals := entity.Totals{
		Subtotal: in.Total,
		Tax:      decimal.Zero,
		Total:    in.Total,
	}
	return &entity.UnifiedReceipt{
		ID:       receiptID(in.IncomeID),
		Kind:     enum.ReceiptSale,
		Date:     date,
		Time:     tm,
		Client:   in.Client,
		User:     in.User,
		Company:  s.company,
		Products: []entity.UnifiedLine{},
		Totals:   totals,
		Payment:  exactPayment(in.PaymentMethod, totals),
	}, nil
}

// flattenTicketOptions turns either ticket option encoding into the unified
// one. The nested shape is signalled by a "choices" key in the first
// element; both encodings flatten to identical output.
func flattenTicketOptions(raw json.RawMessage) []entity.OptionSummary {
	if len(raw) == 0 {
		return nil
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil || len(elems) == 0 {
		return nil
	}

	var first map[string]json.RawMessage
	_ = json.Unmarshal(elems[0], &first)
	if _, nested := first["choices"]; nested {
		var groups []entity.TicketOptionNested
		if err := json.Unmarshal(raw, &groups); err != nil {
			log.Printf("receipt: ignoring malformed nested options: %v", err)
			return nil
		}
		out := make([]entity.OptionSummary, 0, len(groups))
		for _, g := range groups {
			summary := entity.OptionSummary{Name: g.Name, Choices: make([]entity.ChoiceSummary, 0, len(g.Choices))}
			for _, c := range g.Choices {
				summary.Choices = append(summary.Choices, entity.ChoiceSummary{Name: c.Name, Price: c.Price})
			}
			out = append(out, summary)
		}
		return out
	}

	var pairs []entity.TicketOptionFlat
	if err := json.Unmarshal(raw, &pairs); err != nil {
		log.Printf("receipt: ignoring malformed flat options: %v", err)
		return nil
	}
	out := make([]entity.OptionSummary, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, entity.OptionSummary{
			Name:    p.OptionName,
			Choices: []entity.ChoiceSummary{{Name: p.ChoiceName, Price: decimal.Zero}},
		})
	}
	return out
}

// labelOptions wraps the cart's opaque label strings into synthetic
// single-choice groups. Keys are sorted so the output order is stable.
func labelOptions(selected map[string]json.RawMessage) []entity.OptionSummary {
	if len(selected) == 0 {
		return nil
	}

	keys := make([]string, 0, len(selected))
	for k := range selected {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var out []entity.OptionSummary
	for _, k := range keys {
		raw := selected[k]

		var label string
		if err := json.Unmarshal(raw, &label); err == nil {
			out = append(out, syntheticOption(label))
			continue
		}

		var labels []string
		if err := json.Unmarshal(raw, &labels); err == nil {
			for _, l := range labels {
				out = append(out, syntheticOption(l))
			}
			continue
		}

		log.Printf("receipt: ignoring unreadable selected option %q", k)
	}
	return out
}

func syntheticOption(label string) entity.OptionSummary {
	return entity.OptionSummary{
		Name:    label,
		Choices: []entity.ChoiceSummary{{Name: label, Price: decimal.Zero}},
	}
}

// parsePieces decodes the JSON-encoded pieces string carried by piecework
// lines. A malformed value only drops that line's breakdown; normalization
// of the rest of the receipt continues.
func parsePieces(raw string) *entity.PiecesBreakdown {
	if raw == "" {
		return nil
	}
	var p entity.PiecesBreakdown
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		log.Printf("receipt: ignoring malformed pieces %q: %v", raw, err)
		return nil
	}
	return &p
}

// inferQuantity tolerates backends that omit the quantity field: with a
// positive unit price it is recovered as round(subtotal / unitPrice),
// otherwise it defaults to one.
func inferQuantity(explicit *int, unitPrice, subtotal decimal.Decimal) int {
	if explicit != nil && *explicit > 0 {
		return *explicit
	}
	if unitPrice.IsPositive() {
		qty := int(subtotal.Div(unitPrice).Round(0).IntPart())
		if qty >= 1 {
			return qty
		}
	}
	return 1
}

func payloadTotals(totals *entity.PayloadTotals, lines []entity.UnifiedLine) entity.Totals {
	if totals != nil {
		return entity.Totals{
			Subtotal: totals.Subtotal,
			Tax:      totals.IVA,
			Total:    totals.Total,
		}
	}

	// No totals block: fall back to the line sums
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.Subtotal)
	}
	return entity.Totals{Subtotal: subtotal, Tax: decimal.Zero, Total: subtotal}
}

// exactPayment records a settled payment for the receipt total; completed
// payloads carry no tendered amount, so cash is treated as exact.
func exactPayment(method string, totals entity.Totals) entity.PaymentInfo {
	return entity.PaymentInfo{
		Method:         enum.ParsePaymentMethod(method),
		AmountTendered: totals.Total,
		Change:         decimal.Zero,
	}
}

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// splitTimestamp renders the payload timestamp as the separate date and
// time strings shown on receipts. An unparsable value is carried through
// verbatim as the date rather than dropped.
func splitTimestamp(raw string) (string, string) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			if layout == "2006-01-02" {
				return t.Format("02/01/2006"), ""
			}
			return t.Format("02/01/2006"), t.Format("15:04")
		}
	}
	return raw, ""
}

func receiptID(explicit string) string {
	if explicit != "" {
		return explicit
	}
	return uuid.New().String()
}
