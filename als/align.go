// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package als

import "unsafe"

// Width is the fixed SIMD lane width this package's kernels are tuned for.
// Row strides and vector capacities are always padded to a multiple of Width.
const Width = 8

// alignment is the byte alignment guaranteed for every AlignedVector and
// AlignedMatrix base pointer (32 bytes, enough for one AVX2 Float32x8 lane
// or two AVX-512 half-loads without crossing an unaligned boundary).
const alignment = 32

// Stride rounds cols up to the next multiple of Width. Every row of an
// AlignedMatrix, and every AlignedVector's backing capacity, is allocated
// at this width.
func Stride(cols int) int {
	if cols < 0 {
		panic("als: negative length")
	}
	return ((cols + Width - 1) / Width) * Width
}

// alignedAlloc returns a []float32 of length n whose element 0 starts at a
// 32-byte aligned address, by over-allocating and slicing into the first
// aligned offset of a raw backing array. The extra bytes are held live by
// the returned slice's underlying array (Go slices keep their whole backing
// array reachable), so there is nothing to separately free.
func alignedAlloc(n int) []float32 {
	if n == 0 {
		return nil
	}
	const elemSize = 4 // unsafe.Sizeof(float32(0))
	raw := make([]float32, n+alignment/elemSize)
	addr := uintptr(unsafe.Pointer(&raw[0]))
	misalign := addr % alignment
	var offset int
	if misalign != 0 {
		offset = int((alignment - misalign) / elemSize)
	}
	return raw[offset : offset+n : offset+n]
}

// AlignedVector is a fixed-capacity, 32-byte aligned, zero-padded vector of
// logical length n backed by a Width-padded allocation. Data()[n:cap(Data))]
// is always zero immediately after NewAlignedVector and after any kernel write that
// goes through this package's masked stores; callers must not assume it
// stays zero if they write past n directly through Data().
type AlignedVector struct {
	data []float32
	n    int
}

// NewAlignedVector allocates a vector of logical length n with Width-padded
// capacity and zeroed contents.
func NewAlignedVector(n int) *AlignedVector {
	if n < 0 {
		panic("als: negative vector length")
	}
	return &AlignedVector{data: alignedAlloc(Stride(n)), n: n}
}

// Len returns the logical (unpadded) length.
func (v *AlignedVector) Len() int { return v.n }

// Data returns the full Width-padded backing slice, including padding.
func (v *AlignedVector) Data() []float32 { return v.data }

// Slice returns the logical (unpadded) view, Data()[:Len()].
func (v *AlignedVector) Slice() []float32 { return v.data[:v.n] }

// Free releases v's reference to its backing storage. After Free, v must
// not be used again. Double-free and use-after-free are caller errors; the
// Go garbage collector reclaims the memory once unreachable, so Free exists
// to mirror the explicit allocate/free external interface, not to perform
// a real release.
func (v *AlignedVector) Free() {
	v.data = nil
	v.n = 0
}

// AlignedMatrix is a rows x cols matrix stored row-major with each row
// padded to Stride(cols) floats, 32-byte aligned at row 0.
type AlignedMatrix struct {
	data   []float32
	rows   int
	cols   int
	stride int
}

// NewAlignedMatrix allocates a rows x cols matrix with zeroed, Width-padded
// rows.
func NewAlignedMatrix(rows, cols int) *AlignedMatrix {
	if rows < 0 || cols < 0 {
		panic("als: negative matrix dimension")
	}
	stride := Stride(cols)
	return &AlignedMatrix{
		data:   alignedAlloc(rows * stride),
		rows:   rows,
		cols:   cols,
		stride: stride,
	}
}

// Rows, Cols and Stride report the matrix's logical shape and row stride.
func (m *AlignedMatrix) Rows() int   { return m.rows }
func (m *AlignedMatrix) Cols() int   { return m.cols }
func (m *AlignedMatrix) Stride() int { return m.stride }

// Row returns the full Width-padded storage for row i, including padding.
func (m *AlignedMatrix) Row(i int) []float32 {
	base := i * m.stride
	return m.data[base : base+m.stride]
}

// RowSlice returns the logical (unpadded) view of row i.
func (m *AlignedMatrix) RowSlice(i int) []float32 {
	return m.Row(i)[:m.cols]
}

// Data returns the full backing slice (rows*stride), including padding.
func (m *AlignedMatrix) Data() []float32 { return m.data }

// ShrinkRows narrows m's logical row count to n without reallocating,
// provided n rows still fit in the existing backing storage. It is used by
// RowScratch to present a smaller logical view of an arena sized for the
// largest row it expects to handle, rather than reallocating per row.
func (m *AlignedMatrix) ShrinkRows(n int) {
	if n < 0 || n*m.stride > len(m.data) {
		panic("als: ShrinkRows exceeds backing capacity")
	}
	m.rows = n
}

// ShrinkCols narrows m's logical column count to n without reallocating,
// provided n fits within the row stride already allocated. See ShrinkRows.
func (m *AlignedMatrix) ShrinkCols(n int) {
	if n < 0 || n > m.stride {
		panic("als: ShrinkCols exceeds row stride")
	}
	m.cols = n
}

// Free releases m's reference to its backing storage; see AlignedVector.Free.
func (m *AlignedMatrix) Free() {
	m.data = nil
	m.rows, m.cols, m.stride = 0, 0, 0
}
