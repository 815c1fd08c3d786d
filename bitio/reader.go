// Copyright 2025, Joffrey Bion. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitio

import (
	"bufio"
	"io"
)

// byteReader is the minimal interface Reader needs from its source.
type byteReader interface {
	ReadByte() (byte, error)
}

// Reader unpacks individual bits, most-significant-bit first within each
// byte, from an underlying byte stream. Reading past the end of the
// stream reports ErrTruncated.
type Reader struct {
	r     byteReader
	buf   byte
	nbits uint // number of unread bits remaining in buf, 0..7
}

// NewReader returns a Reader that pulls bytes from r.
func NewReader(r io.Reader) *Reader {
	if br, ok := r.(byteReader); ok {
		return &Reader{r: br}
	}
	return &Reader{r: bufio.NewReader(r)}
}

// ReadBit reads a single bit.
func (r *Reader) ReadBit() (byte, error) {
	if r.nbits == 0 {
		b, err := r.r.ReadByte()
		if err != nil {
			return 0, ErrTruncated
		}
		r.buf = b
		r.nbits = 8
	}
	r.nbits--
	return (r.buf >> r.nbits) & 1, nil
}

// ReadBits reads width bits, most-significant bit first, and returns them
// as the low-order width bits of the result. width must be in [0, 64].
func (r *Reader) ReadBits(width uint) (uint64, error) {
	var v uint64
	for i := uint(0); i < width; i++ {
		b, err := r.ReadBit()
		if err != nil {
			return 0, err
		}
		v = v<<1 | uint64(b)
	}
	return v, nil
}

// ReadCodeUnit reads a 16-bit code unit.
func (r *Reader) ReadCodeUnit() (uint16, error) {
	v, err := r.ReadBits(16)
	if err != nil {
		return 0, err
	}
	return uint16(v), nil
}

// ReadLengthPrefixedLong reads a length-prefixed integer with a 6-bit
// magnitude field: 6 bits give m = bitlen(v)-1, then v follows in exactly
// m+1 bits.
func (r *Reader) ReadLengthPrefixedLong() (uint64, error) {
	m, err := r.ReadBits(magnitudeWidthLong)
	if err != nil {
		return 0, err
	}
	return r.ReadBits(uint(m) + 1)
}

// ReadLengthPrefixedInt reads a length-prefixed integer with a 5-bit
// magnitude field.
func (r *Reader) ReadLengthPrefixedInt() (uint32, error) {
	m, err := r.ReadBits(magnitudeWidthInt)
	if err != nil {
		return 0, err
	}
	v, err := r.ReadBits(uint(m) + 1)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}
