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

// defaultCGIterCap bounds CG iterations. Tolerance is the intended exit;
// the cap only fires when a caller hands over a non-SPD system or
// eps <= 0, which would otherwise spin forever.
const defaultCGIterCap = 10000

// CGScratch holds the working vectors one Conjugate Gradients solve needs,
// so a caller solving many systems of the same size (one per ALS row) can
// allocate it once and reuse it across rows instead of allocating r, p, and
// t on every call, keeping allocator pressure off the per-row hot path.
type CGScratch struct {
	r, p, t []float32
}

// NewCGScratch allocates a CGScratch sized for systems of dimension n.
func NewCGScratch(n int) *CGScratch {
	return &CGScratch{r: make([]float32, n), p: make([]float32, n), t: make([]float32, n)}
}

// CGSolve solves A·x = b for symmetric positive-definite A of size n,
// iterating from the caller-supplied initial guess x (typically a warm
// start from the previous embedding row) and writing the result back into
// x in place. eps is the squared-residual tolerance: iteration stops once
// ⟨r,r⟩ <= eps.
//
// A must be symmetric positive-definite; CGSolve does not check this. If A
// is not SPD or eps <= 0 the recurrence has no guaranteed exit, so CGSolve
// stops after defaultCGIterCap iterations and returns
// ErrNotPositiveDefinite rather than looping forever.
func CGSolve(a *AlignedMatrix, x []float32, b []float32, n int, eps float32, scratch *CGScratch) error {
	if a.Rows() != n || a.Cols() != n || len(x) < n || len(b) < n {
		return fmt.Errorf("als: cg_solve %w", ErrDimensionMismatch)
	}
	if scratch == nil {
		scratch = NewCGScratch(n)
	}
	r, p, t := scratch.r[:n], scratch.p[:n], scratch.t[:n]

	// r <- b - A*x0
	if err := SubProdVector(b, a, x, r); err != nil {
		return err
	}
	copy(p, r)
	rho := Dot(r, r, n)

	if rho <= eps {
		return nil
	}

	for iter := 0; iter < defaultCGIterCap; iter++ {
		// t <- A*p
		if err := ProdVector(a, p, t); err != nil {
			return err
		}
		pt := Dot(p, t, n)
		if pt == 0 {
			return fmt.Errorf("als: cg_solve %w", ErrNotPositiveDefinite)
		}
		alpha := rho / pt

		// x <- x + alpha*p
		WeightedAdd(x, 1, p, alpha, x, n)
		// r <- r - alpha*t
		WeightedAdd(r, 1, t, -alpha, r, n)

		rhoNext := Dot(r, r, n)
		if rhoNext <= eps {
			return nil
		}
		beta := rhoNext / rho
		// p <- r + beta*p, not beta*r + p; operand order matters
		WeightedAdd(r, 1, p, beta, p, n)
		rho = rhoNext
	}
	return ErrNotPositiveDefinite
}
