// Copyright 2025, Joffrey Bion. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package static implements semi-adaptive (two-pass) Huffman coding over
// the 16-bit code-unit alphabet: a first pass counts frequencies and
// builds an optimal prefix code, then a second pass emits the source
// character count, the serialised code tree, and the concatenated
// codewords.
package static

import (
	"io"

	"github.com/joffrey-bion/jpack/bitio"
)

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "huffman/static: " + string(e) }

// ErrMalformed is returned when a serialised code tree is structurally
// inconsistent with the bit stream being decoded.
var ErrMalformed error = Error("malformed code tree")

// SymbolReader yields one 16-bit code unit per call, reporting io.EOF
// once exhausted.
type SymbolReader interface {
	ReadSymbol() (uint16, error)
}

// SymbolWriter accepts one 16-bit code unit per call.
type SymbolWriter interface {
	WriteSymbol(uint16) error
}

// Encode reads every symbol out of r, buffering them to compute a
// frequency table, builds the optimal code tree for that table, and
// writes the source character count, the serialised tree, and the
// encoded source to w in that order. An input containing no symbols
// produces a count of zero and nothing else.
func Encode(r SymbolReader, w io.Writer) error {
	var symbols []uint16
	freq := make(map[uint16]uint64)
	for {
		c, err := r.ReadSymbol()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		symbols = append(symbols, c)
		freq[c]++
	}

	bw := bitio.NewWriter(w)
	bw.WriteLengthPrefixedLong(uint64(len(symbols)))
	if len(symbols) > 0 {
		root := buildTree(freq)
		writeTree(bw, root)
		codes := buildCodeTable(root)
		for _, c := range symbols {
			for _, bit := range codes[c] {
				bw.WriteBit(bit)
			}
		}
	}
	return bw.Close()
}

// Decode reads a stream produced by Encode from r and writes the
// reconstructed symbols to w.
func Decode(r io.Reader, w SymbolWriter) error {
	br := bitio.NewReader(r)
	n, err := br.ReadLengthPrefixedLong()
	if err != nil {
		return err
	}
	if n == 0 {
		return nil
	}
	root, err := readTree(br)
	if err != nil {
		return err
	}
	for i := uint64(0); i < n; i++ {
		sym, err := decodeSymbol(br, root)
		if err != nil {
			return err
		}
		if err := w.WriteSymbol(sym); err != nil {
			return err
		}
	}
	return nil
}
