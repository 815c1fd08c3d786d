// Copyright 2025, Joffrey Bion. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package jpack composes the block pipeline and the static Huffman
// codec into the primary compressor, staging the intermediate stream
// through a temporary file exactly as the original two-stage driver did,
// and appending a whole-file CRC-32 trailer so a truncated or corrupted
// archive is caught instead of silently mis-decoded.
package jpack

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"

	"github.com/joffrey-bion/jpack/block"
	"github.com/joffrey-bion/jpack/huffman/static"
)

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "jpack: " + string(e) }

// ErrChecksumMismatch is returned by Uncompress when the trailing CRC-32
// does not match the CRC of the decoded content: the archive is
// malformed or was truncated after compression.
var ErrChecksumMismatch error = Error("checksum mismatch: archive is corrupt or truncated")

// Compress reads UTF-8 text from src, runs it through the block pipeline
// and the static Huffman codec, and writes the resulting archive
// (Huffman stream followed by a 4-byte big-endian CRC-32 trailer) to
// dst.
func Compress(src io.Reader, dst io.Writer) error {
	symbols, err := readAllSymbols(src)
	if err != nil {
		return err
	}
	crc := checksum(symbols)

	tmpPath, err := stageBlockPipeline(symbols)
	if err != nil {
		return err
	}
	defer os.Remove(tmpPath)

	stage1, err := os.Open(tmpPath)
	if err != nil {
		return err
	}
	defer stage1.Close()

	if err := static.Encode(newIntermediateReader(stage1), dst); err != nil {
		return err
	}

	var trailer [4]byte
	binary.BigEndian.PutUint32(trailer[:], crc)
	_, err = dst.Write(trailer[:])
	return err
}

// Uncompress reverses Compress: it reads an archive from src, verifies
// its CRC-32 trailer, and writes the reconstructed UTF-8 text to dst.
func Uncompress(src io.Reader, dst io.Writer) error {
	data, err := io.ReadAll(src)
	if err != nil {
		return err
	}
	if len(data) < 4 {
		return static.ErrMalformed
	}
	payload, trailer := data[:len(data)-4], data[len(data)-4:]
	wantCRC := binary.BigEndian.Uint32(trailer)

	tmp, err := os.CreateTemp("", "jpack-stage2-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if err := static.Decode(bytes.NewReader(payload), newIntermediateWriter(tmp)); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	stage2, err := os.Open(tmpPath)
	if err != nil {
		return err
	}
	defer stage2.Close()

	sink := new(symbolBuffer)
	if err := block.Uncompress(newIntermediateReader(stage2), sink); err != nil {
		return err
	}

	if got := checksum(sink.data); got != wantCRC {
		return ErrChecksumMismatch
	}
	return writeAllSymbols(dst, sink.data)
}

// stageBlockPipeline runs the block pipeline over symbols and returns the
// path to a temporary file holding its intermediate-stream output,
// closed and ready to be reopened for stage 2. The caller owns deleting
// it.
func stageBlockPipeline(symbols []uint16) (string, error) {
	tmp, err := os.CreateTemp("", "jpack-stage1-*")
	if err != nil {
		return "", err
	}
	path := tmp.Name()
	if err := block.Compress(&symbolBuffer{data: symbols}, newIntermediateWriter(tmp)); err != nil {
		tmp.Close()
		return path, err
	}
	if err := tmp.Close(); err != nil {
		return path, err
	}
	return path, nil
}

// symbolBuffer is an in-memory SymbolReader/SymbolWriter, used both to
// feed the block pipeline its already-decoded source and to collect its
// decoded output for CRC verification.
type symbolBuffer struct {
	data []uint16
	pos  int
}

func (s *symbolBuffer) ReadSymbol() (uint16, error) {
	if s.pos >= len(s.data) {
		return 0, io.EOF
	}
	c := s.data[s.pos]
	s.pos++
	return c, nil
}

func (s *symbolBuffer) WriteSymbol(c uint16) error {
	s.data = append(s.data, c)
	return nil
}
