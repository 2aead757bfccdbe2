package transposition

// The encodings below follow spec.md §3 exactly. minScore/maxScore are the
// Position package's board.MinScore/board.MaxScore, passed in rather than
// imported directly so this package stays free of a board dependency and
// is easy to unit test against small hand-picked ranges.

// EncodeUpperBound packs an upper bound on the score into the 8-bit
// upper-bound-only encoding (returned widened to uint16 for storage in the
// shared Table).
func EncodeUpperBound(ubound, minScore int) uint16 {
	return uint16(ubound - minScore + 1)
}

// DecodeUpperBound unpacks a value stored by EncodeUpperBound.
func DecodeUpperBound(v uint16, minScore int) int {
	return int(v) + minScore - 1
}

// dualBoundSplit is the value above which a dual-bound entry encodes a
// lower bound rather than an upper bound; the two ranges are disjoint by
// construction.
func dualBoundSplit(minScore, maxScore int) int {
	return maxScore - minScore + 1
}

// EncodeLowerBound packs a lower bound (from a beta-cutoff) into the
// dual-bound 16-bit encoding.
func EncodeLowerBound(lbound, minScore, maxScore int) uint16 {
	return uint16(lbound + maxScore - 2*minScore + 2)
}

// EncodeDualUpperBound packs an upper bound (node exit without a cutoff)
// into the dual-bound 16-bit encoding. Distinct from EncodeUpperBound only
// in that it must stay below dualBoundSplit so DecodeDualBound can tell
// the two kinds of entry apart.
func EncodeDualUpperBound(ubound, minScore int) uint16 {
	return EncodeUpperBound(ubound, minScore)
}

// Bound is a decoded transposition-table entry: either a lower bound
// (IsLower true) or an upper bound.
type Bound struct {
	Value   int
	IsLower bool
}

// DecodeDualBound decodes a value stored in the dual-bound encoding.
func DecodeDualBound(v uint16, minScore, maxScore int) Bound {
	if int(v) > dualBoundSplit(minScore, maxScore) {
		return Bound{Value: int(v) + 2*minScore - maxScore - 2, IsLower: true}
	}
	return Bound{Value: int(v) + minScore - 1, IsLower: false}
}
