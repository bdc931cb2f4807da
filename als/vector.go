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

import "github.com/ajroetker/go-als/hwy"

// Dot computes the inner product sum(a[i]*b[i]) over a[:n] and b[:n].
//
// a and b must have length >= n. Full lanes-wide chunks are loaded and
// multiply-accumulated directly; the final partial chunk (n % lanes, where
// lanes is hwy.MaxLanes[float32]()) is handled by hwy.TailMask/hwy.MaskLoad
// rather than a scalar fallback, so the tail of a padded AlignedVector's
// backing storage is masked off lane-by-lane and never contributes to the
// sum. Accumulation is lane-parallel with a final horizontal reduction,
// giving tree-reduction rounding rather than strict left-to-right order.
func Dot(a, b []float32, n int) float32 {
	if len(a) < n || len(b) < n {
		panic("als: dot: a/b shorter than n")
	}
	a, b = a[:n], b[:n]

	sum := hwy.Zero[float32]()
	hwy.ProcessWithTail[float32](n,
		func(offset int) {
			va, vb := hwy.Load(a[offset:]), hwy.Load(b[offset:])
			sum = hwy.MulAdd(va, vb, sum)
		},
		func(offset, count int) {
			mask := hwy.TailMask[float32](count)
			va, vb := hwy.MaskLoad(mask, a[offset:]), hwy.MaskLoad(mask, b[offset:])
			sum = hwy.MulAdd(va, vb, sum)
		},
	)
	return hwy.ReduceSum(sum)
}

// DiffNorm2 computes sum((a[i]-b[i])^2) over a[:n] and b[:n], with the same
// masked-tail treatment as Dot.
func DiffNorm2(a, b []float32, n int) float32 {
	if len(a) < n || len(b) < n {
		panic("als: diff_norm2: a/b shorter than n")
	}
	a, b = a[:n], b[:n]

	sum := hwy.Zero[float32]()
	hwy.ProcessWithTail[float32](n,
		func(offset int) {
			va, vb := hwy.Load(a[offset:]), hwy.Load(b[offset:])
			diff := hwy.Sub(va, vb)
			sum = hwy.MulAdd(diff, diff, sum)
		},
		func(offset, count int) {
			mask := hwy.TailMask[float32](count)
			va, vb := hwy.MaskLoad(mask, a[offset:]), hwy.MaskLoad(mask, b[offset:])
			diff := hwy.Sub(va, vb)
			sum = hwy.MulAdd(diff, diff, sum)
		},
	)
	return hwy.ReduceSum(sum)
}

// WeightedAdd computes out[:n] = wa*a[:n] + wb*b[:n]. out may alias a or b;
// a and b must not partially overlap except by identity. The tail chunk is
// written through hwy.MaskStore so that padding past n in out is left
// untouched rather than scribbled over by a full-width store.
func WeightedAdd(a []float32, wa float32, b []float32, wb float32, out []float32, n int) {
	if len(a) < n || len(b) < n || len(out) < n {
		panic("als: weighted_add: a/b/out shorter than n")
	}
	a, b, out = a[:n], b[:n], out[:n]

	vwa := hwy.Set(wa)
	vwb := hwy.Set(wb)
	hwy.ProcessWithTail[float32](n,
		func(offset int) {
			va, vb := hwy.Load(a[offset:]), hwy.Load(b[offset:])
			vout := hwy.MulAdd(vb, vwb, hwy.Mul(va, vwa))
			hwy.Store(vout, out[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[float32](count)
			va, vb := hwy.MaskLoad(mask, a[offset:]), hwy.MaskLoad(mask, b[offset:])
			vout := hwy.MulAdd(vb, vwb, hwy.Mul(va, vwa))
			hwy.MaskStore(mask, vout, out[offset:])
		},
	)
}
