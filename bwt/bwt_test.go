// Copyright 2025, Joffrey Bion. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bwt

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/joffrey-bion/jpack/internal/testutil"
)

func toCodeUnits(s string) []uint16 {
	out := make([]uint16, len(s))
	for i, r := range []byte(s) {
		out[i] = uint16(r)
	}
	return out
}

func fromCodeUnits(c []uint16) string {
	b := make([]byte, len(c))
	for i, v := range c {
		b[i] = byte(v)
	}
	return string(b)
}

func TestForwardKnownVectors(t *testing.T) {
	var vectors = []struct {
		input string
		last  string
		ptr   int
	}{
		{"abracadabra", "rdarcaaaabb", 2},
		{"a", "a", 0},
		{"aaaa", "aaaa", 0},
	}
	for i, v := range vectors {
		l, p := Forward(toCodeUnits(v.input))
		if got := fromCodeUnits(l); got != v.last {
			t.Errorf("test %d: last column: got %q, want %q", i, got, v.last)
		}
		if p != v.ptr {
			t.Errorf("test %d: primary index: got %d, want %d", i, p, v.ptr)
		}
	}
}

func TestInverseUndoesForwardKnownVectors(t *testing.T) {
	var inputs = []string{
		"abracadabra",
		"a",
		"aaaa",
		"Hello, world!",
		"The quick brown fox jumps over the lazy dog.",
		"0123456789",
	}
	for _, s := range inputs {
		l, p := Forward(toCodeUnits(s))
		got := fromCodeUnits(Inverse(l, p))
		if diff := cmp.Diff(s, got); diff != "" {
			t.Errorf("round-trip mismatch for %q (-want +got):\n%s", s, diff)
		}
	}
}

func TestInverseUndoesForwardRandom(t *testing.T) {
	rng := testutil.NewRand(42)
	for trial := 0; trial < 200; trial++ {
		n := rng.Intn(300) + 1
		s := make([]uint16, n)
		for i := range s {
			s[i] = uint16(rng.Intn(5)) // small alphabet to force runs and ties
		}
		l, p := Forward(s)
		got := Inverse(l, p)
		if diff := cmp.Diff(s, got); diff != "" {
			t.Fatalf("trial %d (n=%d): round-trip mismatch (-want +got):\n%s", trial, n, diff)
		}
	}
}

func TestInverseUndoesForwardFullAlphabet(t *testing.T) {
	rng := testutil.NewRand(7)
	for trial := 0; trial < 50; trial++ {
		n := rng.Intn(500) + 1
		s := make([]uint16, n)
		for i := range s {
			s[i] = uint16(rng.Intn(1 << 16))
		}
		l, p := Forward(s)
		got := Inverse(l, p)
		if diff := cmp.Diff(s, got); diff != "" {
			t.Fatalf("trial %d (n=%d): round-trip mismatch (-want +got):\n%s", trial, n, diff)
		}
	}
}
