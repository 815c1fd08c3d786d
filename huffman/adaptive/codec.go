// Copyright 2025, Joffrey Bion. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package adaptive

import (
	"io"

	"github.com/joffrey-bion/jpack/bitio"
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

// Encode transmits every symbol read from r through a fresh Vitter tree,
// writing the resulting bit stream to w.
func Encode(r SymbolReader, w io.Writer) error {
	codec := New()
	bw := bitio.NewWriter(w)
	for {
		c, err := r.ReadSymbol()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		codec.EncodeAndTransmit(c, bw)
	}
	return bw.Close()
}

// Decode reconstructs symbols from a stream produced by Encode using a
// fresh Vitter tree, stopping as soon as the underlying stream has no
// more bits to give: a Vitter stream carries no explicit symbol count or
// terminator, so exhaustion of the bit stream is itself the end of
// message. The zero bits that pad Encode's last byte can decode as
// extra trailing symbols.
func Decode(r io.Reader, w SymbolWriter) error {
	codec := New()
	br := bitio.NewReader(r)
	for {
		c, err := codec.ReceiveAndDecode(br)
		if err == bitio.ErrTruncated {
			return nil
		}
		if err != nil {
			return err
		}
		if err := w.WriteSymbol(c); err != nil {
			return err
		}
	}
}
