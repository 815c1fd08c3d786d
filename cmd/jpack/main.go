// Copyright 2025, Joffrey Bion. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command jpack compresses and decompresses text files using the BWT +
// move-to-front + static Huffman pipeline implemented by the jpack
// package.
//
// Usage:
//
//	jpack -c|-d|-t <source> [<destination>]
package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/joffrey-bion/jpack/jpack"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: jpack -c|-d|-t <source> [<destination>]")
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "jpack:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) < 2 || len(args) > 3 {
		usage()
		return usageError("expected 2 or 3 arguments")
	}
	mode, source := args[0], args[1]

	switch mode {
	case "-c":
		dest := source + ".pck"
		if len(args) == 3 {
			dest = args[2]
		}
		return compressFile(source, dest)
	case "-d":
		dest := source + ".pck"
		if len(args) == 3 {
			dest = args[2]
		}
		return uncompressFile(source, dest)
	case "-t":
		return selfTest(source)
	default:
		usage()
		return usageError(fmt.Sprintf("unknown mode %q", mode))
	}
}

type usageError string

func (e usageError) Error() string { return string(e) }

func compressFile(sourcePath, destPath string) error {
	src, err := openSource(sourcePath)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(destPath)
	if err != nil {
		return err
	}
	defer dst.Close()

	return jpack.Compress(src, dst)
}

func uncompressFile(sourcePath, destPath string) error {
	src, err := openSource(sourcePath)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(destPath)
	if err != nil {
		return err
	}
	defer dst.Close()

	return jpack.Uncompress(src, dst)
}

// selfTest compresses <source>.txt into <source>.pck, then decompresses
// it back into <source>-R.txt, leaving both artifacts on disk for
// inspection. Beyond the two stages succeeding, it re-reads both text
// files and reports whether they are byte-for-byte identical.
func selfTest(source string) error {
	txtPath := source + ".txt"
	pckPath := source + ".pck"
	restoredPath := source + "-R.txt"

	if err := compressFile(txtPath, pckPath); err != nil {
		return fmt.Errorf("compress stage: %w", err)
	}
	if err := uncompressFile(pckPath, restoredPath); err != nil {
		return fmt.Errorf("decompress stage: %w", err)
	}

	original, err := os.ReadFile(txtPath)
	if err != nil {
		return err
	}
	restored, err := os.ReadFile(restoredPath)
	if err != nil {
		return err
	}
	if !bytes.Equal(original, restored) {
		fmt.Printf("self-test FAILED: %s and %s differ\n", txtPath, restoredPath)
		return errors.New("self-test: round-trip mismatch")
	}
	fmt.Printf("self-test passed: %s -> %s -> %s (byte-for-byte identical)\n", txtPath, pckPath, restoredPath)
	return nil
}

// openSource opens path, translating a missing file into the NotFound
// category instead of a raw os.PathError.
func openSource(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, notFoundError(path)
		}
		return nil, err
	}
	return f, nil
}

type notFoundError string

func (e notFoundError) Error() string { return fmt.Sprintf("file not found: %s", string(e)) }
