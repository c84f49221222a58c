package enum

// OptionKind tells how an option group counts its selected choices.
// Single (radio) groups always count as one unit no matter what quantity a
// choice carries; multi (checkbox) groups let each choice bring its own
// quantity multiplier.
type OptionKind string

const (
	OptionSingle OptionKind = "single"
	OptionMulti  OptionKind = "multi"
)

// Valid reports whether k is one of the known kinds
func (k OptionKind) Valid() bool {
	return k == OptionSingle || k == OptionMulti
}
