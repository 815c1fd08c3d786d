// Copyright 2025, Joffrey Bion. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bitio implements a big-endian (MSB-first) bit stream reader and
// writer, shared by the static and adaptive Huffman codecs, plus the
// length-prefixed integer encoding the static codec uses for its
// character count.
package bitio

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "bitio: " + string(e) }

// ErrTruncated is returned when a read is attempted past the end of the
// underlying byte stream.
var ErrTruncated error = Error("truncated bit stream")

// magnitudeWidthLong and magnitudeWidthInt are the two width-prefix sizes
// used by the length-prefixed integer encoding (spec: 6 bits and 5 bits).
const (
	magnitudeWidthLong = 6
	magnitudeWidthInt  = 5
)

// bitLen returns bitlen(v), the number of bits needed to represent v, with
// bitLen(0) == 1 (so that magnitude m = bitLen(v)-1 is never negative).
func bitLen(v uint64) uint {
	n := uint(1)
	for v >>= 1; v != 0; v >>= 1 {
		n++
	}
	return n
}
