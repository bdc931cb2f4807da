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

import (
	"fmt"

	"github.com/ajroetker/go-als/hwy"
	"gonum.org/v1/gonum/mat"
)

// Transpose writes dst = srcᵀ. dst must be shaped cols(src) x rows(src).
//
// Processed in lanes x lanes blocks (lanes = hwy.MaxLanes[float32](), the
// SIMD width hwy's active dispatch level provides) via an in-register
// transpose: load lanes rows of the block, run a log2(lanes)-stage
// InterleaveLower/InterleaveUpper butterfly to swap rows for columns, then
// store.
//
// Boundary blocks (src.Rows()/src.Cols() not a multiple of lanes) are
// handled by masking rather than a separate scalar path: missing input
// rows are supplied as a zero vector, and hwy.TailMask bounds both the
// column read and the row write, so out-of-range input lanes read as zero
// and out-of-range output lanes are never written.
func Transpose(src, dst *AlignedMatrix) error {
	if dst.Rows() != src.Cols() || dst.Cols() != src.Rows() {
		return fmt.Errorf("als: transpose %w: src %dx%d, dst %dx%d", ErrDimensionMismatch, src.Rows(), src.Cols(), dst.Rows(), dst.Cols())
	}
	rows, cols := src.Rows(), src.Cols()
	lanes := hwy.MaxLanes[float32]()
	if lanes == 0 {
		return nil
	}

	block := make([]hwy.Vec[float32], lanes)
	for i := 0; i < rows; i += lanes {
		rowCount := min(lanes, rows-i)
		rowMask := hwy.TailMask[float32](rowCount)
		for j := 0; j < cols; j += lanes {
			colCount := min(lanes, cols-j)
			colMask := hwy.TailMask[float32](colCount)

			for r := 0; r < lanes; r++ {
				if r < rowCount {
					block[r] = hwy.MaskLoad(colMask, src.Row(i+r)[j:])
				} else {
					block[r] = hwy.Zero[float32]()
				}
			}

			// In-register butterfly transpose of the lanes x lanes block:
			// log2(lanes) stages of InterleaveLower/Upper. Each stage pairs
			// row a with row a+lanes/2 and emits the interleaved halves to
			// rows 2a and 2a+1, so after the final stage block[c] holds
			// column c of the input in natural lane order.
			half := lanes / 2
			for level := 0; (1 << level) < lanes; level++ {
				next := make([]hwy.Vec[float32], lanes)
				for a := 0; a < half; a++ {
					next[2*a] = hwy.InterleaveLower(block[a], block[a+half])
					next[2*a+1] = hwy.InterleaveUpper(block[a], block[a+half])
				}
				block = next
			}

			for c := 0; c < colCount; c++ {
				hwy.MaskStore(rowMask, block[c], dst.Row(j+c)[i:])
			}
		}
	}
	return nil
}

// GatherRows copies F[idx[k]] into dst[k] for k in [0,len(idx)), including
// the full stride width (K padding included). Out-of-range entries of idx
// are a caller error; GatherRows does not validate them.
func GatherRows(f *AlignedMatrix, idx []int32, dst *AlignedMatrix) error {
	if dst.Rows() != len(idx) || dst.Stride() != f.Stride() {
		return fmt.Errorf("als: gather_rows %w", ErrDimensionMismatch)
	}
	for k, id := range idx {
		copy(dst.Row(k), f.Row(int(id)))
	}
	return nil
}

// ProdVector computes out[:m.Rows()] = m * v, where v has length m.Cols().
// out must have length at least m.Rows(); elements of out past m.Rows()
// are never written.
//
// Each output element is one Dot call: Dot already walks the row in
// lanes-wide hwy chunks with a masked tail, so every row of the product
// gets the same SIMD treatment without a separate hand-vectorized loop.
func ProdVector(m *AlignedMatrix, v []float32, out []float32) error {
	if len(v) < m.Cols() || len(out) < m.Rows() {
		return fmt.Errorf("als: prod_vector %w", ErrDimensionMismatch)
	}
	for i := 0; i < m.Rows(); i++ {
		out[i] = Dot(m.RowSlice(i), v, m.Cols())
	}
	return nil
}

// SubProdVector computes out[:rows] = s - m*v, where rows = m.Rows(). This
// is the primitive the Conjugate Gradients residual update is built from.
func SubProdVector(s []float32, m *AlignedMatrix, v []float32, out []float32) error {
	if len(s) < m.Rows() || len(v) < m.Cols() || len(out) < m.Rows() {
		return fmt.Errorf("als: sub_prod_vector %w", ErrDimensionMismatch)
	}
	for i := 0; i < m.Rows(); i++ {
		out[i] = s[i] - Dot(m.RowSlice(i), v, m.Cols())
	}
	return nil
}

// SyrkTranspose computes out = m * mᵀ, an m.Rows() x m.Rows() symmetric
// matrix. Only the lower triangle (j <= i) is computed directly; the
// strictly-upper entries are copied from their mirror so that out[i][j]
// and out[j][i] are bit-identical (CG assumes a symmetric A).
func SyrkTranspose(m *AlignedMatrix, out *AlignedMatrix) error {
	n := m.Rows()
	if out.Rows() != n || out.Cols() != n {
		return fmt.Errorf("als: syrk_transpose %w", ErrDimensionMismatch)
	}
	for i := 0; i < n; i++ {
		rowI := m.RowSlice(i)
		outRowI := out.Row(i)
		for j := 0; j <= i; j++ {
			v := Dot(rowI, m.RowSlice(j), m.Cols())
			outRowI[j] = v
			out.Row(j)[i] = v
		}
	}
	return nil
}

// SyrkTransposeParallel is SyrkTranspose with the outer row loop split
// across pool. Rows are assigned dynamically via pool.ParallelForAtomic
// so that rows near the diagonal (cheap) and rows far from it (expensive)
// load-balance across workers.
func SyrkTransposeParallel(m *AlignedMatrix, out *AlignedMatrix, pool WorkPool) error {
	n := m.Rows()
	if out.Rows() != n || out.Cols() != n {
		return fmt.Errorf("als: syrk_transpose %w", ErrDimensionMismatch)
	}
	if pool == nil || n == 0 {
		return SyrkTranspose(m, out)
	}
	pool.ParallelForAtomic(n, func(i int) {
		rowI := m.RowSlice(i)
		outRowI := out.Row(i)
		for j := 0; j <= i; j++ {
			v := Dot(rowI, m.RowSlice(j), m.Cols())
			outRowI[j] = v
			out.Row(j)[i] = v
		}
	})
	return nil
}

// WorkPool is the subset of hwy/contrib/workerpool.Pool's API that this
// package's parallel kernels need. It is satisfied by *workerpool.Pool;
// declaring it locally keeps als's API free of a hard dependency on the
// pool's concrete type for callers that only ever use the sequential path.
type WorkPool interface {
	ParallelForAtomic(n int, fn func(i int))
}

// AddEye adds v to every diagonal element of the n x n matrix m in place.
func AddEye(m *AlignedMatrix, v float32) error {
	if m.Rows() != m.Cols() {
		return fmt.Errorf("als: add_eye %w: not square (%dx%d)", ErrDimensionMismatch, m.Rows(), m.Cols())
	}
	for i := 0; i < m.Rows(); i++ {
		m.Row(i)[i] += v
	}
	return nil
}

// Invert computes out = m⁻¹ for a square n x n matrix using gonum's dense
// LU-based inverse. The per-row ALS solve never calls it, preferring CG,
// but callers that want a direct solve for small K x K Gram systems may
// use it instead.
func Invert(m *AlignedMatrix, out *AlignedMatrix) error {
	n := m.Rows()
	if m.Cols() != n || out.Rows() != n || out.Cols() != n {
		return fmt.Errorf("als: invert %w", ErrDimensionMismatch)
	}
	src := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			src.Set(i, j, float64(m.RowSlice(i)[j]))
		}
	}
	var dst mat.Dense
	if err := dst.Inverse(src); err != nil {
		return fmt.Errorf("%w: %v", ErrSingular, err)
	}
	for i := 0; i < n; i++ {
		row := out.Row(i)
		for j := 0; j < n; j++ {
			row[j] = float32(dst.At(i, j))
		}
	}
	return nil
}
