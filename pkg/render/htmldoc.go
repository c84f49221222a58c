package render

import (
	"fmt"
	"html"
	"strings"
)

// Doc accumulates a printable HTML document. Writes are append-only and
// every dynamic string passes through html escaping, so the same receipt
// always yields the same byte sequence.
type Doc struct {
	buf strings.Builder
}

// NewDoc creates an empty document
func NewDoc() *Doc {
	return &Doc{}
}

// Raw writes s verbatim. Only static markup goes through here.
func (d *Doc) Raw(s string) *Doc {
	d.buf.WriteString(s)
	return d
}

// El writes <tag class="class">text</tag> with the text escaped
func (d *Doc) El(tag, class, text string) *Doc {
	d.buf.WriteString("<")
	d.buf.WriteString(tag)
	if class != "" {
		d.buf.WriteString(` class="`)
		d.buf.WriteString(class)
		d.buf.WriteString(`"`)
	}
	d.buf.WriteString(">")
	d.buf.WriteString(html.EscapeString(text))
	d.buf.WriteString("</")
	d.buf.WriteString(tag)
	d.buf.WriteString(">\n")
	return d
}

// Row writes a left label and a right-aligned value on one line
func (d *Doc) Row(class, label, value string) *Doc {
	d.buf.WriteString(`<div class="row `)
	d.buf.WriteString(class)
	d.buf.WriteString(`"><span>`)
	d.buf.WriteString(html.EscapeString(label))
	d.buf.WriteString(`</span><span>`)
	d.buf.WriteString(html.EscapeString(value))
	d.buf.WriteString("</span></div>\n")
	return d
}

// Rule writes a separator line
func (d *Doc) Rule() *Doc {
	d.buf.WriteString("<hr>\n")
	return d
}

// String returns the accumulated document
func (d *Doc) String() string {
	return d.buf.String()
}

// stylesheet returns the fixed CSS for a profile. Thermal profiles pin the
// body to the physical paper width; the full-page profile centers a card.
func stylesheet(p Profile) string {
	if p.Thermal {
		return fmt.Sprintf(
			"body{width:%dmm;margin:0;padding:2mm;font-family:monospace;font-size:%dpx;color:#000}"+
				"h1{font-size:%dpx;text-align:center;margin:0 0 2px 0}"+
				"p{margin:1px 0}.muted{text-align:center}.detail{padding-left:8px}"+
				".footer{text-align:center}.row{display:flex;justify-content:space-between}"+
				".total{font-weight:bold}.cols{display:flex;justify-content:space-between;font-weight:bold}"+
				"hr{border:none;border-top:1px dashed #000;margin:3px 0}",
			p.WidthMm, thermalFontPx(p.WidthMm), thermalFontPx(p.WidthMm)+2)
	}
	return "body{max-width:640px;margin:24px auto;padding:16px;font-family:Arial,sans-serif;font-size:14px;color:#222}" +
		"h1{font-size:20px;text-align:center;margin:0 0 4px 0}" +
		"p{margin:2px 0}.muted{text-align:center;color:#555}.detail{padding-left:16px;color:#555}" +
		".footer{text-align:center;color:#555}.row{display:flex;justify-content:space-between}" +
		".total{font-weight:bold;font-size:16px}.cols{display:flex;justify-content:space-between;font-weight:bold}" +
		"hr{border:none;border-top:1px solid #ccc;margin:8px 0}"
}

func thermalFontPx(widthMm int) int {
	if widthMm <= 46 {
		return 9
	}
	return 11
}
