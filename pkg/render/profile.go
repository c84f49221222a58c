package render

// Profile selects the physical width and density of printable output.
// 46mm thermal paper gets the ultra-compact layout; 58/80mm thermal and the
// full-page profile get the standard line-by-line breakdown.
type Profile struct {
	WidthMm int  `json:"width_mm"`
	Thermal bool `json:"thermal"`
}

var (
	Thermal46 = Profile{WidthMm: 46, Thermal: true}
	Thermal58 = Profile{WidthMm: 58, Thermal: true}
	Thermal80 = Profile{WidthMm: 80, Thermal: true}
	FullPage  = Profile{WidthMm: 80, Thermal: false}
)

// Compact reports whether the profile uses the ultra-compact layout:
// no column headers, no subtotal/tax rows, no option detail.
func (p Profile) Compact() bool {
	return p.Thermal && p.WidthMm <= 46
}
