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

import "fmt"

// RowScratch is the ephemeral working set one per-row ALS solve needs:
// the gathered design matrix X, the ratings r, the Gram system A and b,
// and the CG scratch it solves with. A caller driving many rows (one
// worker per goroutine; see the driver package) should allocate one
// RowScratch per worker sized to the largest observation count it expects
// and reuse it across rows, rather than allocate-then-free per row.
type RowScratch struct {
	k      int
	maxObs int

	x   *AlignedMatrix // m x k, rows gathered from the partner factor
	xt  *AlignedMatrix // k x m, transpose of x
	a   *AlignedMatrix // k x k Gram system
	rhs []float32      // length k, b = Xt * r
	r   []float32      // length maxObs, observed ratings
	idx []int32        // length maxObs, gathered partner row indices
	cg  *CGScratch     // CG working vectors for a k-dimensional solve
}

// NewRowScratch allocates a RowScratch for Gram systems of size k, sized to
// handle rows with up to maxObs observations without reallocating.
func NewRowScratch(k, maxObs int) *RowScratch {
	return &RowScratch{
		k:      k,
		maxObs: maxObs,
		x:      NewAlignedMatrix(maxObs, k),
		xt:     NewAlignedMatrix(k, maxObs),
		a:      NewAlignedMatrix(k, k),
		rhs:    make([]float32, k),
		r:      make([]float32, maxObs),
		idx:    make([]int32, maxObs),
		cg:     NewCGScratch(k),
	}
}

// grow reallocates x, xt, r, and idx if m exceeds the scratch's current
// capacity. This only happens if a row's observation count was
// underestimated when sizing the scratch; it keeps UpdateRow correct (if
// slower, for that one row) rather than panicking or truncating data.
func (s *RowScratch) grow(m int) {
	if m <= s.maxObs {
		return
	}
	s.maxObs = m
	s.x = NewAlignedMatrix(m, s.k)
	s.xt = NewAlignedMatrix(s.k, m)
	s.r = make([]float32, m)
	s.idx = make([]int32, m)
}

// UpdateRow performs one per-row ALS solve: it gathers the partner
// rows row i of target was observed against, assembles the regularized
// Gram system A = XᵀX + λI and right-hand side b = Xᵀr, solves A·y = b via
// Conjugate Gradients warm-started from target.F[i], and writes the result
// back into target.F[i].
//
// scratch must be sized for target.F.Cols() == partner.F.Cols(); it grows
// automatically if row i has more observations than scratch was sized for.
func UpdateRow(target *Embedding, i int, partner *Embedding, lambda, eps float32, scratch *RowScratch) error {
	k := target.F.Cols()
	if scratch.k != k {
		return fmt.Errorf("als: update_row %w: scratch sized for k=%d, embedding has k=%d", ErrDimensionMismatch, scratch.k, k)
	}
	obs := target.Obs[i]
	m := len(obs)

	y := target.F.RowSlice(i)

	if m == 0 {
		// With no observations A = λI and b = 0, so y = 0 without
		// dividing by anything. CG would converge to this too (and exit at
		// once, ρ=0<=ε, only when the warm start is already zero), but
		// skipping it avoids touching the scratch matrices.
		for j := range y {
			y[j] = 0
		}
		return nil
	}

	scratch.grow(m)
	x := scratch.x
	x.ShrinkRows(m)
	xt := scratch.xt
	xt.ShrinkCols(m)
	idx := scratch.idx[:m]
	r := scratch.r[:m]

	for obsIdx, o := range obs {
		idx[obsIdx] = o.Partner
		r[obsIdx] = o.Rating
	}
	if err := GatherRows(partner.F, idx, x); err != nil {
		return fmt.Errorf("als: update_row: %w", err)
	}

	if err := Transpose(x, xt); err != nil {
		return fmt.Errorf("als: update_row: %w", err)
	}

	a := scratch.a
	if err := SyrkTranspose(xt, a); err != nil {
		return fmt.Errorf("als: update_row: %w", err)
	}
	if err := AddEye(a, lambda); err != nil {
		return fmt.Errorf("als: update_row: %w", err)
	}

	b := scratch.rhs
	if err := ProdVector(xt, r, b); err != nil {
		return fmt.Errorf("als: update_row: %w", err)
	}

	if err := CGSolve(a, y, b, k, eps, scratch.cg); err != nil {
		return fmt.Errorf("als: update_row: %w", err)
	}
	return nil
}
