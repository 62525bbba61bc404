// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"encoding/binary"
	"math"
	"os"
	"syscall"

	"github.com/cpmech/gosl/chk"

	"github.com/IgASF/IgASF/sparsity"
)

const pathStdout = "stdout"
const pathStdin = "stdin"

// writeN loops syscall.Write until all of buf is written, retrying on
// EINTR and forcing blocking mode once on EAGAIN -- the same recovery
// original_source/src/tools/matrixio.cpp's writeN applies (spec.md §7).
func writeN(fd int, buf []byte) error {
	for len(buf) > 0 {
		n, err := syscall.Write(fd, buf)
		if err != nil {
			switch err {
			case syscall.EINTR:
				continue
			case syscall.EAGAIN:
				if serr := syscall.SetNonblock(fd, false); serr != nil {
					return chk.Err("format: cannot force blocking mode on write: %v", serr)
				}
				continue
			default:
				return chk.Err("format: write error: %v", err)
			}
		}
		buf = buf[n:]
	}
	return nil
}

// readN is writeN's mirror for reads
func readN(fd int, buf []byte) error {
	for len(buf) > 0 {
		n, err := syscall.Read(fd, buf)
		if err != nil {
			switch err {
			case syscall.EINTR:
				continue
			case syscall.EAGAIN:
				if serr := syscall.SetNonblock(fd, false); serr != nil {
					return chk.Err("format: cannot force blocking mode on read: %v", serr)
				}
				continue
			default:
				return chk.Err("format: read error: %v", err)
			}
		}
		if n == 0 {
			return chk.Err("format: unexpected end of file")
		}
		buf = buf[n:]
	}
	return nil
}

func putInt32(b []byte, v int) {
	binary.LittleEndian.PutUint32(b, uint32(int32(v)))
}

func getInt32(b []byte) int {
	return int(int32(binary.LittleEndian.Uint32(b)))
}

// WriteMatrix writes m to path in the fixed binary format (spec.md §6, as
// implemented by original_source/src/tools/matrixio.cpp): header{int
// rowMajor, int rows, int cols, int nnzs}, a null byte, then outer starts
// (rows+1 ints, row-major is always written), inner indices (nnzs ints),
// values (nnzs doubles), all little-endian. The name "stdout" streams to
// the process's standard output instead of opening a file.
func WriteMatrix(m *sparsity.Matrix, path string) error {
	fd := syscall.Stdout
	if path != pathStdout {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
		if err != nil {
			return chk.Err("format: cannot open %q for writing: %v", path, err)
		}
		defer f.Close()
		fd = int(f.Fd())
	}

	rows := m.Pattern.Rows()
	cols := m.Pattern.Cols
	nnz := m.Pattern.NNZ()

	head := make([]byte, 16)
	putInt32(head[0:4], 1) // rowMajor
	putInt32(head[4:8], rows)
	putInt32(head[8:12], cols)
	putInt32(head[12:16], nnz)
	if err := writeN(fd, head); err != nil {
		return err
	}
	if err := writeN(fd, []byte{0}); err != nil {
		return err
	}

	outer := make([]byte, 4*len(m.Pattern.RowStart))
	for i, v := range m.Pattern.RowStart {
		putInt32(outer[4*i:4*i+4], v)
	}
	if err := writeN(fd, outer); err != nil {
		return err
	}

	inner := make([]byte, 4*nnz)
	for i, v := range m.Pattern.ColIdx {
		putInt32(inner[4*i:4*i+4], v)
	}
	if err := writeN(fd, inner); err != nil {
		return err
	}

	vals := make([]byte, 8*nnz)
	for i, v := range m.Values {
		binary.LittleEndian.PutUint64(vals[8*i:8*i+8], math.Float64bits(v))
	}
	return writeN(fd, vals)
}

// ReadMatrix reads a matrix file written by WriteMatrix. Column-major
// files (rowMajor=0) are rejected: every matrix this module produces is
// row-major, and transposing a column-major CSR stream into this
// codebase's row-major Sparsity is unneeded complexity the spec does not
// exercise (spec.md §7 "unsupported configuration").
func ReadMatrix(path string) (*sparsity.Matrix, error) {
	fd := syscall.Stdin
	if path != pathStdin {
		f, err := os.Open(path)
		if err != nil {
			return nil, chk.Err("format: cannot open %q for reading: %v", path, err)
		}
		defer f.Close()
		fd = int(f.Fd())
	}

	head := make([]byte, 16)
	if err := readN(fd, head); err != nil {
		return nil, err
	}
	rowMajor := getInt32(head[0:4])
	rows := getInt32(head[4:8])
	cols := getInt32(head[8:12])
	nnz := getInt32(head[12:16])
	if rowMajor == 0 {
		return nil, chk.Err("format: column-major matrix files are not supported")
	}

	nullByte := make([]byte, 1)
	if err := readN(fd, nullByte); err != nil {
		return nil, err
	}
	if nullByte[0] != 0 {
		return nil, chk.Err("format: expected null byte after header, got %d", nullByte[0])
	}

	outer := make([]byte, 4*(rows+1))
	if err := readN(fd, outer); err != nil {
		return nil, err
	}
	rowStart := make([]int, rows+1)
	for i := range rowStart {
		rowStart[i] = getInt32(outer[4*i : 4*i+4])
	}

	inner := make([]byte, 4*nnz)
	if err := readN(fd, inner); err != nil {
		return nil, err
	}
	colIdx := make([]int, nnz)
	for i := range colIdx {
		colIdx[i] = getInt32(inner[4*i : 4*i+4])
	}

	vals := make([]byte, 8*nnz)
	if err := readN(fd, vals); err != nil {
		return nil, err
	}
	values := make([]float64, nnz)
	for i := range values {
		values[i] = math.Float64frombits(binary.LittleEndian.Uint64(vals[8*i : 8*i+8]))
	}

	pattern := sparsity.New(rowStart, colIdx, cols)
	return &sparsity.Matrix{Pattern: pattern, Values: values}, nil
}
