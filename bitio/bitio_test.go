// Copyright 2025, Joffrey Bion. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitio

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/joffrey-bion/jpack/internal/testutil"
)

func TestWriteBitsThenReadBits(t *testing.T) {
	var vectors = []struct {
		value uint64
		width uint
	}{
		{0, 1}, {1, 1}, {0, 8}, {0xff, 8}, {0x1234, 16}, {0, 16},
		{0x7fff, 15}, {1, 6}, {63, 6}, {0, 5}, {31, 5},
	}
	for i, v := range vectors {
		var buf bytes.Buffer
		w := NewWriter(&buf)
		w.WriteBits(v.value, v.width)
		if err := w.Close(); err != nil {
			t.Fatalf("test %d: Close: %v", i, err)
		}
		r := NewReader(&buf)
		got, err := r.ReadBits(v.width)
		if err != nil {
			t.Fatalf("test %d: ReadBits: %v", i, err)
		}
		if got != v.value {
			t.Errorf("test %d: got %#x, want %#x", i, got, v.value)
		}
	}
}

func TestWriteBitsPacksMSBFirst(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.WriteBits(0b1011, 4)
	w.WriteBits(0b0001, 4)
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	got := buf.Bytes()
	want := []byte{0b10110001}
	if !bytes.Equal(got, want) {
		t.Errorf("got %08b, want %08b", got, want)
	}
}

func TestCloseOnNonByteBoundaryPadsWithZeros(t *testing.T) {
	for k := 1; k <= 7; k++ {
		var buf bytes.Buffer
		w := NewWriter(&buf)
		w.WriteBits(uint64(1<<k-1), uint(k)) // k ones
		if err := w.Close(); err != nil {
			t.Fatal(err)
		}
		got := buf.Bytes()
		if len(got) != 1 {
			t.Fatalf("k=%d: expected exactly one byte, got %d", k, len(got))
		}
		want := byte(1<<k-1) << (8 - k)
		if got[0] != want {
			t.Errorf("k=%d: got %08b, want %08b", k, got[0], want)
		}
	}
}

func TestLengthPrefixedLongRoundTrip(t *testing.T) {
	rng := testutil.NewRand(1)
	values := []uint64{0, 1, 2, 3, 4, 1023, 1024, 1<<20 - 1, 1 << 40, ^uint64(0)}
	for i := 0; i < 50; i++ {
		values = append(values, binary.LittleEndian.Uint64(rng.Bytes(8)))
	}
	for _, v := range values {
		var buf bytes.Buffer
		w := NewWriter(&buf)
		w.WriteLengthPrefixedLong(v)
		if err := w.Close(); err != nil {
			t.Fatal(err)
		}
		r := NewReader(&buf)
		got, err := r.ReadLengthPrefixedLong()
		if err != nil {
			t.Fatalf("value %d: %v", v, err)
		}
		if got != v {
			t.Errorf("value %d: got %d", v, got)
		}
	}
}

func TestLengthPrefixedIntRoundTrip(t *testing.T) {
	for _, v := range []uint32{0, 1, 2, 0xffff, 0xffffffff, 1 << 20} {
		var buf bytes.Buffer
		w := NewWriter(&buf)
		w.WriteLengthPrefixedInt(v)
		if err := w.Close(); err != nil {
			t.Fatal(err)
		}
		r := NewReader(&buf)
		got, err := r.ReadLengthPrefixedInt()
		if err != nil {
			t.Fatalf("value %d: %v", v, err)
		}
		if got != v {
			t.Errorf("value %d: got %d", v, got)
		}
	}
}

func TestReadBitsFromFixedHexVector(t *testing.T) {
	// 0xac is 1010 1100: the high nibble (1010 = 0xa) followed by the low
	// nibble (1100 = 0xc), packed MSB-first into a single byte.
	r := NewReader(bytes.NewReader(testutil.MustDecodeHex("ac")))
	hi, err := r.ReadBits(4)
	if err != nil {
		t.Fatal(err)
	}
	if hi != 0xa {
		t.Errorf("high nibble: got %#x, want %#x", hi, 0xa)
	}
	lo, err := r.ReadBits(4)
	if err != nil {
		t.Fatal(err)
	}
	if lo != 0xc {
		t.Errorf("low nibble: got %#x, want %#x", lo, 0xc)
	}
}

func TestReadPastEndIsTruncated(t *testing.T) {
	r := NewReader(bytes.NewReader(nil))
	if _, err := r.ReadBit(); err != ErrTruncated {
		t.Errorf("got %v, want ErrTruncated", err)
	}
}

func TestCodeUnitRoundTrip(t *testing.T) {
	for _, c := range []uint16{0, 1, 0x41, 0xffff, 0x7fff} {
		var buf bytes.Buffer
		w := NewWriter(&buf)
		w.WriteCodeUnit(c)
		if err := w.Close(); err != nil {
			t.Fatal(err)
		}
		r := NewReader(&buf)
		got, err := r.ReadCodeUnit()
		if err != nil {
			t.Fatal(err)
		}
		if got != c {
			t.Errorf("got %#x, want %#x", got, c)
		}
	}
}
