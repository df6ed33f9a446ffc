package ui

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Hasher accumulates a digest of a widget tree. Widgets feed it their kind
// and every piece of content that affects layout.
type Hasher struct {
	d   *xxhash.Digest
	buf [8]byte
}

// NewHasher returns an empty Hasher.
func NewHasher() *Hasher {
	return &Hasher{d: xxhash.New()}
}

// WriteUint64 feeds v.
func (h *Hasher) WriteUint64(v uint64) {
	binary.LittleEndian.PutUint64(h.buf[:], v)
	h.d.Write(h.buf[:])
}

// WriteUint8 feeds v.
func (h *Hasher) WriteUint8(v uint8) {
	h.buf[0] = v
	h.d.Write(h.buf[:1])
}

// WriteFloat64 feeds the bit pattern of v.
func (h *Hasher) WriteFloat64(v float64) {
	h.WriteUint64(math.Float64bits(v))
}

// WriteBool feeds v.
func (h *Hasher) WriteBool(v bool) {
	if v {
		h.WriteUint8(1)
	} else {
		h.WriteUint8(0)
	}
}

// WriteString feeds s prefixed by its length, so adjacent strings cannot
// collide ("ab"+"c" vs "a"+"bc").
func (h *Hasher) WriteString(s string) {
	h.WriteUint64(uint64(len(s)))
	h.d.WriteString(s)
}

// Sum64 returns the digest of everything written so far.
func (h *Hasher) Sum64() uint64 {
	return h.d.Sum64()
}

// Hash returns the digest of a widget tree.
func Hash[M, R any](w Widget[M, R]) uint64 {
	h := NewHasher()
	w.Hash(h)
	return h.Sum64()
}

// widget kind discriminants
const (
	kindRow uint8 = iota + 1
	kindColumn
	kindText
	kindButton
	kindCheckbox
	kindRadio
	kindSlider
	kindPanel
	kindImage
	kindSpace
)
