package table

// CharMax is the upper bound of the character domain. The lexical automaton
// operates on bytes, so conditions and complements cover 0x00 through 0xff.
const CharMax = 0xff

// Range is an inclusive character range. The producer guarantees Min <= Max.
type Range struct {
	Min byte `json:"min"`
	Max byte `json:"max"`
}

// CharacterSet is a set of characters represented as inclusive ranges. The
// producer keeps the ranges sorted and non-overlapping; this package relies
// on that discipline without re-checking it.
type CharacterSet struct {
	Ranges []Range `json:"ranges"`
}

// Includes reports whether the set contains c.
func (s CharacterSet) Includes(c byte) bool {
	for _, r := range s.Ranges {
		if r.Min <= c && c <= r.Max {
			return true
		}
	}
	return false
}

// Complement returns the set of all characters outside s.
func (s CharacterSet) Complement() CharacterSet {
	var ranges []Range
	next := 0
	for _, r := range s.Ranges {
		if int(r.Min) > next {
			ranges = append(ranges, Range{Min: byte(next), Max: r.Min - 1})
		}
		next = int(r.Max) + 1
	}
	if next <= CharMax {
		ranges = append(ranges, Range{Min: byte(next), Max: CharMax})
	}
	return CharacterSet{Ranges: ranges}
}

// MostCompactRepresentation returns whichever of s and its complement has
// fewer ranges, along with true when the original form was chosen. Ties favor
// the original form, and an empty representation is never chosen, so a
// universal set still yields a proper range test rather than an empty
// disjunction.
func (s CharacterSet) MostCompactRepresentation() (CharacterSet, bool) {
	c := s.Complement()
	if len(c.Ranges) == 0 || len(s.Ranges) <= len(c.Ranges) {
		return s, true
	}
	return c, false
}
