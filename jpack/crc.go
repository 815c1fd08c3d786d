// Copyright 2025, Joffrey Bion. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package jpack

import (
	"hash/crc32"

	"github.com/dsnet/golib/hashmerge"

	"github.com/joffrey-bion/jpack/block"
)

// checksum combines a CRC-32 computed independently over each
// block.Size-sized chunk of symbols into a single running value via
// hashmerge.CombineCRC32, the same technique the teacher package uses to
// combine per-block CRCs into a whole-stream CRC without re-reading the
// data (bzip2/common.go's combineCRC). Unlike bzip2, this checksum has
// no wire-format compatibility to preserve, so the bit-reversal bzip2
// applies around crc32.IEEE (to match its own specified byte order) is
// not needed here.
func checksum(symbols []uint16) uint32 {
	var crc uint32
	for start := 0; start < len(symbols); start += block.Size {
		end := start + block.Size
		if end > len(symbols) {
			end = len(symbols)
		}
		chunk := symbols[start:end]
		buf := make([]byte, 2*len(chunk))
		for i, c := range chunk {
			buf[2*i] = byte(c >> 8)
			buf[2*i+1] = byte(c)
		}
		chunkCRC := crc32.ChecksumIEEE(buf)
		crc = hashmerge.CombineCRC32(crc32.IEEE, crc, chunkCRC, int64(len(buf)))
	}
	return crc
}
