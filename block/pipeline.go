// Copyright 2025, Joffrey Bion. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package block chunks a code-unit stream into fixed-size blocks and
// applies the Burrows-Wheeler transform followed by move-to-front on the
// way down (and the inverses, in reverse order, on the way up), framing
// each block with a small hexadecimal header carrying the BWT primary
// index.
package block

import (
	"fmt"
	"io"
	"strconv"

	"github.com/joffrey-bion/jpack/bwt"
	"github.com/joffrey-bion/jpack/mtf"
)

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "block: " + string(e) }

// ErrMalformed is returned when the intermediate stream's block framing
// is inconsistent: a header with no following content, or a header that
// is not valid hexadecimal.
var ErrMalformed error = Error("malformed block framing")

const (
	// Size is the number of code units per block (spec: BLOCK_SIZE).
	Size = 4096

	// HeaderSize is the number of code units in a block header (spec:
	// BLOCK_HEADER_SIZE): an uppercase hexadecimal rendering of the BWT
	// primary index, left-padded with '0'.
	HeaderSize = 3
)

// SymbolReader yields one 16-bit code unit per call, reporting io.EOF
// once exhausted.
type SymbolReader interface {
	ReadSymbol() (uint16, error)
}

// SymbolWriter accepts one 16-bit code unit per call.
type SymbolWriter interface {
	WriteSymbol(uint16) error
}

// Compress reads code units from r in chunks of up to Size, BWT- and
// MTF-transforms each chunk, and writes header‖content to w for each
// block. The shared MTF list is reset once before the first block, not
// between blocks.
func Compress(r SymbolReader, w SymbolWriter) error {
	codec := mtf.New()
	for {
		chunk, err := readUpTo(r, Size)
		if err != nil {
			return err
		}
		if len(chunk) == 0 {
			return nil
		}

		l, p := bwt.Forward(chunk)
		if err := writeHeader(w, p); err != nil {
			return err
		}
		for _, c := range codec.EncodeString(l) {
			if err := w.WriteSymbol(c); err != nil {
				return err
			}
		}

		if len(chunk) < Size {
			return nil // short chunk: this was the last block
		}
	}
}

// Uncompress reads header-framed blocks from r, MTF⁻¹- and BWT⁻¹-transforms
// each one, and writes the reconstructed code units to w.
func Uncompress(r SymbolReader, w SymbolWriter) error {
	codec := mtf.New()
	for {
		header, err := readUpTo(r, HeaderSize)
		if err != nil {
			return err
		}
		if len(header) == 0 {
			return nil // stream exhausted between blocks
		}
		if len(header) < HeaderSize {
			return ErrMalformed
		}
		p, err := parseHeader(header)
		if err != nil {
			return err
		}

		content, err := readUpTo(r, Size)
		if err != nil {
			return err
		}
		if len(content) == 0 {
			return ErrMalformed
		}

		l := codec.DecodeString(content)
		s := bwt.Inverse(l, p)
		for _, c := range s {
			if err := w.WriteSymbol(c); err != nil {
				return err
			}
		}

		if len(content) < Size {
			return nil
		}
	}
}

// readUpTo reads up to n symbols from r, stopping early (without error)
// at io.EOF.
func readUpTo(r SymbolReader, n int) ([]uint16, error) {
	buf := make([]uint16, 0, n)
	for len(buf) < n {
		c, err := r.ReadSymbol()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		buf = append(buf, c)
	}
	return buf, nil
}

// writeHeader renders p as HeaderSize uppercase hexadecimal code units,
// left-padded with '0'.
func writeHeader(w SymbolWriter, p int) error {
	s := fmt.Sprintf("%0*X", HeaderSize, p)
	for _, r := range s {
		if err := w.WriteSymbol(uint16(r)); err != nil {
			return err
		}
	}
	return nil
}

// parseHeader parses a HeaderSize-code-unit hexadecimal header back into
// a primary index.
func parseHeader(header []uint16) (int, error) {
	b := make([]byte, len(header))
	for i, c := range header {
		if c > 0x7f {
			return 0, ErrMalformed
		}
		b[i] = byte(c)
	}
	v, err := strconv.ParseUint(string(b), 16, 32)
	if err != nil {
		return 0, ErrMalformed
	}
	return int(v), nil
}
