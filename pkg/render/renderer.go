package render

import (
	"fmt"
	"strings"

	"github.com/dmoros/lavanderia-pos/internal/domain/entity"
	"github.com/dmoros/lavanderia-pos/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// Renderer turns a UnifiedReceipt into presentation output. It never
// mutates the receipt; one receipt is rendered once per target.
type Renderer struct {
	currency string
}

// NewRenderer creates a renderer with the configured currency prefix
func NewRenderer(currency string) *Renderer {
	return &Renderer{currency: currency}
}

// LineView is one product row ready for on-screen display
type LineView struct {
	Name      string   `json:"name"`
	Quantity  int      `json:"quantity"`
	UnitPrice string   `json:"unit_price"`
	Subtotal  string   `json:"subtotal"`
	Options   []string `json:"options,omitempty"`
	Pieces    string   `json:"pieces,omitempty"`
}

// ViewModel is the structured, framework-agnostic screen rendering
type ViewModel struct {
	Title          string     `json:"title"`
	Folio          string     `json:"folio"`
	Date           string     `json:"date"`
	Time           string     `json:"time"`
	Company        string     `json:"company"`
	Client         string     `json:"client,omitempty"`
	Attendant      string     `json:"attendant,omitempty"`
	Lines          []LineView `json:"lines"`
	Subtotal       string     `json:"subtotal"`
	Tax            string     `json:"tax"`
	Total          string     `json:"total"`
	PaymentMethod  string     `json:"payment_method"`
	Cash           bool       `json:"cash"`
	AmountTendered string     `json:"amount_tendered,omitempty"`
	Change         string     `json:"change,omitempty"`
}

// Screen renders the in-app receipt card model
func (r *Renderer) Screen(receipt *entity.UnifiedReceipt) ViewModel {
	vm := ViewModel{
		Title:         receipt.Kind.Title(),
		Folio:         receipt.ID,
		Date:          receipt.Date,
		Time:          receipt.Time,
		Company:       receipt.Company.Name,
		Client:        receipt.Client,
		Attendant:     receipt.User,
		Lines:         make([]LineView, 0, len(receipt.Products)),
		Subtotal:      r.money(receipt.Totals.Subtotal),
		Tax:           r.money(receipt.Totals.Tax),
		Total:         r.money(receipt.Totals.Total),
		PaymentMethod: receipt.Payment.Method.Label(),
		Cash:          receipt.Payment.Method == enum.PaymentCash,
	}

	for _, line := range receipt.Products {
		lv := LineView{
			Name:      line.Name,
			Quantity:  line.Quantity,
			UnitPrice: r.money(line.UnitPrice),
			Subtotal:  r.money(line.Subtotal),
		}
		for _, o := range line.Options {
			lv.Options = append(lv.Options, r.optionText(o))
		}
		if line.Pieces != nil {
			lv.Pieces = piecesText(*line.Pieces)
		}
		vm.Lines = append(vm.Lines, lv)
	}

	if vm.Cash {
		vm.AmountTendered = r.money(receipt.Payment.AmountTendered)
		vm.Change = r.money(receipt.Payment.Change)
	}
	return vm
}

// Printable renders the full HTML document for the given profile.
// Output is byte-deterministic: the same receipt and profile always produce
// the same string.
func (r *Renderer) Printable(receipt *entity.UnifiedReceipt, p Profile) string {
	d := NewDoc()
	d.Raw("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	d.El("title", "", receipt.Company.Name)
	d.Raw("<style>").Raw(stylesheet(p)).Raw("</style>\n</head>\n<body>\n")

	d.El("h1", "", receipt.Company.Name)
	if receipt.Company.Address != "" {
		d.El("p", "muted", receipt.Company.Address)
	}
	if receipt.Company.Phone != "" {
		d.El("p", "muted", receipt.Company.Phone)
	}
	if receipt.Company.TaxID != "" {
		d.El("p", "muted", "RFC: "+receipt.Company.TaxID)
	}
	d.El("p", "muted", receipt.Kind.Title())
	d.Rule()

	d.Row("meta", "Folio", receipt.ID)
	d.Row("meta", "Fecha", dateLine(receipt))
	if receipt.Client != "" {
		d.Row("meta", "Cliente", receipt.Client)
	}
	if receipt.User != "" {
		d.Row("meta", "Atendió", receipt.User)
	}
	d.Rule()

	if p.Compact() {
		r.compactBody(d, receipt)
	} else {
		r.standardBody(d, receipt)
	}

	d.Rule()
	d.El("p", "footer", "¡Gracias por su preferencia!")
	d.Raw("</body>\n</html>\n")
	return d.String()
}

// compactBody is the 46mm layout: item lines and the grand total only
func (r *Renderer) compactBody(d *Doc, receipt *entity.UnifiedReceipt) {
	for _, line := range receipt.Products {
		d.Row("item", itemLabel(line), r.money(line.Subtotal))
	}
	if len(receipt.Products) > 0 {
		d.Rule()
	}
	d.Row("total", "TOTAL", r.money(receipt.Totals.Total))
	d.Row("meta", "Pago", receipt.Payment.Method.Label())
}

// standardBody is the 58/80mm and full-page layout with the complete
// breakdown
func (r *Renderer) standardBody(d *Doc, receipt *entity.UnifiedReceipt) {
	if len(receipt.Products) > 0 {
		d.Raw("<div class=\"cols\"><span>Producto</span><span>Importe</span></div>\n")
	}
	for _, line := range receipt.Products {
		d.Row("item", itemLabel(line), r.money(line.Subtotal))
		if line.Quantity > 1 {
			d.El("p", "detail", "@ "+r.money(line.UnitPrice)+" c/u")
		}
		for _, o := range line.Options {
			d.El("p", "detail", r.optionText(o))
		}
		if line.Pieces != nil {
			d.El("p", "detail", piecesText(*line.Pieces))
		}
	}
	d.Rule()

	d.Row("amount", "Subtotal", r.money(receipt.Totals.Subtotal))
	d.Row("amount", "IVA", r.money(receipt.Totals.Tax))
	d.Row("total", "TOTAL", r.money(receipt.Totals.Total))
	d.Row("meta", "Pago", receipt.Payment.Method.Label())
	if receipt.Payment.Method == enum.PaymentCash {
		d.Row("amount", "Recibido", r.money(receipt.Payment.AmountTendered))
		d.Row("amount", "Cambio", r.money(receipt.Payment.Change))
	}
}

// money renders an amount with the currency prefix and exactly two decimals
func (r *Renderer) money(d decimal.Decimal) string {
	return r.currency + d.StringFixed(2)
}

// optionText flattens an option group to one display string. Synthetic
// label groups (one choice named like the group) print as the bare label.
func (r *Renderer) optionText(o entity.OptionSummary) string {
	if len(o.Choices) == 1 && o.Choices[0].Name == o.Name {
		return o.Name
	}
	parts := make([]string, 0, len(o.Choices))
	for _, c := range o.Choices {
		if c.Price.IsPositive() {
			parts = append(parts, c.Name+" +"+r.money(c.Price))
		} else {
			parts = append(parts, c.Name)
		}
	}
	return o.Name + ": " + strings.Join(parts, ", ")
}

func itemLabel(line entity.UnifiedLine) string {
	return fmt.Sprintf("%dx %s", line.Quantity, line.Name)
}

func piecesText(p entity.PiecesBreakdown) string {
	return fmt.Sprintf("Pantalones %d, Prendas %d, Otros %d (%d piezas)",
		p.Pantalones, p.Prendas, p.Otros, p.Total())
}

func dateLine(receipt *entity.UnifiedReceipt) string {
	if receipt.Time == "" {
		return receipt.Date
	}
	return receipt.Date + " " + receipt.Time
}
