// Copyright 2025, Joffrey Bion. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package mtf implements the move-to-front transform over the full
// 16-bit code-unit alphabet.
//
// The recency list is represented the way the teacher package represents
// its (256-entry) MTF dictionary: a flat array shifted in place with a
// copy-based move-to-front step. At this alphabet's size a linear search
// for the current rank of a code unit would be too slow to be credible
// (up to 65536 comparisons per symbol), so a second array tracks the
// current rank of every code unit directly, turning the lookup into an
// O(1) operation; only the promotion shift remains O(k).
package mtf

// Codec holds the state of one MTF transform. The zero value is not
// ready for use; call Reset before the first Encode or Decode.
type Codec struct {
	list [1 << 16]uint16 // list[rank] = code unit currently at that rank
	pos  [1 << 16]uint16 // pos[c] = current rank of code unit c
}

// New returns a Codec in its initial lexicographic order.
func New() *Codec {
	c := new(Codec)
	c.Reset()
	return c
}

// Reset restores the lexicographic initial order 0, 1, ..., 65535.
func (c *Codec) Reset() {
	for i := 0; i < 1<<16; i++ {
		c.list[i] = uint16(i)
		c.pos[i] = uint16(i)
	}
}

// promote moves the code unit currently at rank k to rank 0, shifting
// everything between the two ranks down by one.
func (c *Codec) promote(k uint16) {
	v := c.list[k]
	for i := k; i > 0; i-- {
		c.list[i] = c.list[i-1]
		c.pos[c.list[i]] = i
	}
	c.list[0] = v
	c.pos[v] = 0
}

// EncodeRaw finds the current rank of c, promotes it to the front, and
// returns the rank it held before promotion.
func (c *Codec) EncodeRaw(symbol uint16) uint16 {
	k := c.pos[symbol]
	c.promote(k)
	return k
}

// DecodeRaw looks up the code unit currently at rank k, promotes it to
// the front, and returns it.
func (c *Codec) DecodeRaw(rank uint16) uint16 {
	symbol := c.list[rank]
	c.promote(rank)
	return symbol
}

// indexShiftStart is the constant rotation applied to raw MTF ranks to
// keep low ranks mapped onto printable characters ('A' == 0x0041).
const indexShiftStart = 0x0041

// shiftIndex maps a raw rank to the code unit representing it in the
// adapted encoding.
func shiftIndex(k uint16) uint16 {
	return k + indexShiftStart // wraps modulo 65536 via uint16 overflow
}

// unshiftIndex is the inverse of shiftIndex.
func unshiftIndex(c uint16) uint16 {
	return c - indexShiftStart
}

// Encode performs the adapted move-to-front step: it behaves like
// EncodeRaw, but returns the rank remapped through the index shift so
// that small ranks land on printable characters.
func (c *Codec) Encode(symbol uint16) uint16 {
	return shiftIndex(c.EncodeRaw(symbol))
}

// Decode is the inverse of Encode: it un-shifts shifted back to a raw
// rank and performs the corresponding DecodeRaw.
func (c *Codec) Decode(shifted uint16) uint16 {
	return c.DecodeRaw(unshiftIndex(shifted))
}

// EncodeString applies Encode to every code unit of in, in order,
// sharing a single MTF list across the whole call.
func (c *Codec) EncodeString(in []uint16) []uint16 {
	out := make([]uint16, len(in))
	for i, v := range in {
		out[i] = c.Encode(v)
	}
	return out
}

// DecodeString applies Decode to every code unit of in, in order,
// sharing a single MTF list across the whole call.
func (c *Codec) DecodeString(in []uint16) []uint16 {
	out := make([]uint16, len(in))
	for i, v := range in {
		out[i] = c.Decode(v)
	}
	return out
}
