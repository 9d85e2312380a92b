package arxml

import "strconv"

// Unbounded is the numeric upper bound for an unlimited multiplicity.
const Unbounded = -1

// Multiplicity carries the display form of a cardinality range together
// with its derived integer bounds.
type Multiplicity struct {
	Display string
	Lower   int
	Upper   int // Unbounded (-1) when the upper bound is "*"
}

// String returns the display form ("1", "0..1", "0..*").
func (m Multiplicity) String() string {
	return m.Display
}

// EncodeMultiplicity derives a Multiplicity from raw LOWER-MULTIPLICITY
// and UPPER-MULTIPLICITY text. Both inputs default to "1" when empty.
// The encoding is total: unparsable bounds fall back to 1, so every
// input yields a value. It is invoked identically for containers,
// parameters, and references.
func EncodeMultiplicity(lowerText, upperText string) Multiplicity {
	if lowerText == "" {
		lowerText = "1"
	}
	if upperText == "" {
		upperText = "1"
	}

	m := Multiplicity{Lower: parseBound(lowerText)}
	switch {
	case upperText == "*":
		m.Display = lowerText + "..*"
		m.Upper = Unbounded
	case lowerText == upperText:
		m.Display = lowerText
		m.Upper = parseBound(upperText)
	default:
		m.Display = lowerText + ".." + upperText
		m.Upper = parseBound(upperText)
	}
	return m
}

// parseBound parses a multiplicity bound, falling back to 1.
func parseBound(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 1
	}
	return n
}
