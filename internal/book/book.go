// Package book implements the opening book: an immutable, pre-computed
// lookup from position key to an exact-score bound, valid only for
// positions at or below a maximum ply depth.
//
// The on-disk format is a small binary header followed by a flat array of
// little-endian keys and a flat array of little-endian values (see
// spec.md §6.2). It is read once at solver construction and never
// mutated afterward.
package book

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"

	"github.com/elyra-labs/c4solver/internal/board"
	"github.com/elyra-labs/c4solver/internal/errs"
	"github.com/elyra-labs/c4solver/internal/transposition"
)

// Book is a read-only, depth-bounded transposition table loaded from
// file.
type Book struct {
	depth int
	table *transposition.Table
}

// header mirrors the 6-byte on-disk header of spec.md §6.2.
type header struct {
	Width, Height, Depth, KeySize, ValueSize, LogSize uint8
}

// Load reads an opening book file at path. Width/Height mismatches against
// this package's fixed board size, an unreadable file, or truncated data
// are all fatal: Load returns a ResourceUnavailable error if the file
// cannot be opened, or a MalformedInput error for any other problem.
func Load(path string) (*Book, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.Wrap(errs.ResourceUnavailable, err, "opening book file")
	}
	defer f.Close()

	return loadFrom(f)
}

func loadFrom(f *os.File) (*Book, error) {
	r := bufio.NewReader(f)

	var h header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, errs.Wrap(errs.MalformedInput, err, "opening book header")
	}
	if int(h.Width) != board.Width || int(h.Height) != board.Height {
		return nil, errs.Newf(errs.MalformedInput, "opening book is for a %dx%d board, solver is %dx%d", h.Width, h.Height, board.Width, board.Height)
	}
	if h.KeySize > 4 {
		return nil, errs.Newf(errs.MalformedInput, "opening book key size %d exceeds 4 bytes", h.KeySize)
	}
	if h.ValueSize > 2 {
		return nil, errs.Newf(errs.MalformedInput, "opening book value size %d exceeds 2 bytes", h.ValueSize)
	}

	info, err := f.Stat()
	if err != nil {
		return nil, errs.Wrap(errs.MalformedInput, err, "opening book file stat")
	}
	const headerSize = 6
	entrySize := int64(h.KeySize) + int64(h.ValueSize)
	if entrySize == 0 {
		return nil, errs.New(errs.MalformedInput, "opening book key and value size are both zero")
	}
	n := (info.Size() - headerSize) / entrySize
	if n < 0 {
		return nil, errs.New(errs.MalformedInput, "opening book file is smaller than its header")
	}

	keys := make([]uint64, n)
	for i := range keys {
		k, err := readLE(r, int(h.KeySize))
		if err != nil {
			return nil, errs.Wrap(errs.MalformedInput, err, "opening book keys")
		}
		keys[i] = k
	}

	values := make([]uint16, n)
	for i := range values {
		v, err := readLE(r, int(h.ValueSize))
		if err != nil {
			return nil, errs.Wrap(errs.MalformedInput, err, "opening book values")
		}
		values[i] = uint16(v)
	}

	table, err := transposition.New(nextOddAtLeast(n))
	if err != nil {
		return nil, errs.Wrap(errs.MalformedInput, err, "opening book table")
	}
	for i := range keys {
		table.Insert(keys[i], values[i])
	}

	return &Book{depth: int(h.Depth), table: table}, nil
}

// readLE reads n little-endian bytes (n <= 8) zero-padded into a uint64.
func readLE(r io.Reader, n int) (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:n]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

func nextOddAtLeast(n int64) uint64 {
	size := uint64(n)*2 + 1
	if size < 11 {
		size = 11
	}
	return size
}

// Depth returns the maximum ply count this book has entries for.
func (b *Book) Depth() int { return b.depth }

// Lookup returns the raw dual-bound-encoded value for pos, if pos is
// within the book's depth and present in the table. Decode with
// transposition.DecodeDualBound.
func (b *Book) Lookup(pos board.Position) (uint16, bool) {
	if pos.Plies() > b.depth {
		return 0, false
	}
	return b.table.Get(pos.Key())
}
