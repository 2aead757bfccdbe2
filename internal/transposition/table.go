// Package transposition implements the solver's fixed-size transposition
// table: a lossy, direct-mapped dictionary from a position key to a bound
// on its score.
//
// The table never chains and never evicts beyond "newest write wins" at a
// slot. Correctness survives collisions for two reasons: a stored bound is
// always re-validated against the caller's current alpha-beta window
// before being trusted, and a 32-bit truncation of the 49-bit key is
// checked against the slot's stored partial key before a hit is accepted,
// making a false-positive collision within one slot vanishingly unlikely at
// the table size used here.
package transposition

import "github.com/elyra-labs/c4solver/internal/errs"

// DefaultSize is the first prime at or above 2^23, matching the reference
// implementation's table size.
const DefaultSize uint64 = (1 << 23) + 9

// Table is a fixed-size, direct-mapped transposition table. The stored
// value is an opaque 16-bit field; callers encode/decode it according to
// whichever bound scheme they use (see EncodeUpperBound/EncodeLowerBound
// in bounds.go). An 8-bit upper-bound-only variant is simply a Table whose values
// never exceed 255 — the two table "variants" named in spec.md §3 share
// this one representation, per the merge called for in §9.
type Table struct {
	size   uint64
	keys   []uint32
	values []uint16
	// set tracks which slots have ever been written, distinguishing an
	// empty slot from a genuine value of 0.
	set []bool
}

// New constructs a table with the given number of slots. size must be odd
// (ideally prime) so that key%size distributes keys uniformly; this is a
// caller invariant and violating it is a PreconditionViolation.
func New(size uint64) (*Table, error) {
	if size%2 == 0 {
		return nil, errs.Newf(errs.PreconditionViolation, "transposition table size must be odd, got %d", size)
	}
	return &Table{
		size:   size,
		keys:   make([]uint32, size),
		values: make([]uint16, size),
		set:    make([]bool, size),
	}, nil
}

func (t *Table) index(key uint64) uint64 {
	return key % t.size
}

// Insert unconditionally overwrites the slot for key. Collisions lose the
// previous occupant; there is no eviction policy beyond this.
func (t *Table) Insert(key uint64, value uint16) {
	i := t.index(key)
	t.keys[i] = uint32(key)
	t.values[i] = value
	t.set[i] = true
}

// Get returns the stored value for key, if the slot is occupied and its
// stored partial key matches the low 32 bits of key.
func (t *Table) Get(key uint64) (uint16, bool) {
	i := t.index(key)
	if t.set[i] && t.keys[i] == uint32(key) {
		return t.values[i], true
	}
	return 0, false
}

// Reset clears every slot, returning the table to empty.
func (t *Table) Reset() {
	for i := range t.set {
		t.set[i] = false
	}
}
