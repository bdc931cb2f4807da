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

import "testing"

func fillMatrix(m *AlignedMatrix, vals [][]float32) {
	for i, row := range vals {
		copy(m.RowSlice(i), row)
	}
}

// A 3x5 transpose exercises both boundary-masked dimensions at once.
func TestTransposeRectangular(t *testing.T) {
	src := NewAlignedMatrix(3, 5)
	fillMatrix(src, [][]float32{
		{1, 2, 3, 4, 5},
		{6, 7, 8, 9, 10},
		{11, 12, 13, 14, 15},
	})
	dst := NewAlignedMatrix(5, 3)
	if err := Transpose(src, dst); err != nil {
		t.Fatalf("Transpose: %v", err)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 5; j++ {
			if dst.RowSlice(j)[i] != src.RowSlice(i)[j] {
				t.Errorf("dst[%d][%d] = %v, want %v", j, i, dst.RowSlice(j)[i], src.RowSlice(i)[j])
			}
		}
	}
}

// Property: transpose(transpose(M)) == M.
func TestTransposeInvolution(t *testing.T) {
	for _, dims := range [][2]int{{3, 5}, {8, 8}, {1, 1}, {7, 9}, {16, 4}} {
		rows, cols := dims[0], dims[1]
		src := NewAlignedMatrix(rows, cols)
		v := float32(1)
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				src.RowSlice(i)[j] = v
				v++
			}
		}
		mid := NewAlignedMatrix(cols, rows)
		back := NewAlignedMatrix(rows, cols)
		if err := Transpose(src, mid); err != nil {
			t.Fatalf("Transpose: %v", err)
		}
		if err := Transpose(mid, back); err != nil {
			t.Fatalf("Transpose: %v", err)
		}
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				if back.RowSlice(i)[j] != src.RowSlice(i)[j] {
					t.Errorf("dims=%v: back[%d][%d] = %v, want %v", dims, i, j, back.RowSlice(i)[j], src.RowSlice(i)[j])
				}
			}
		}
	}
}

func TestGatherRows(t *testing.T) {
	f := NewAlignedMatrix(4, 2)
	fillMatrix(f, [][]float32{{1, 1}, {2, 2}, {3, 3}, {4, 4}})
	dst := NewAlignedMatrix(3, 2)
	if err := GatherRows(f, []int32{2, 0, 0}, dst); err != nil {
		t.Fatalf("GatherRows: %v", err)
	}
	want := [][]float32{{3, 3}, {1, 1}, {1, 1}}
	for i, w := range want {
		got := dst.RowSlice(i)
		if got[0] != w[0] || got[1] != w[1] {
			t.Errorf("row %d = %v, want %v", i, got, w)
		}
	}
}

func TestProdVector(t *testing.T) {
	m := NewAlignedMatrix(2, 3)
	fillMatrix(m, [][]float32{{1, 2, 3}, {4, 5, 6}})
	out := make([]float32, 2)
	if err := ProdVector(m, []float32{1, 0, 1}, out); err != nil {
		t.Fatalf("ProdVector: %v", err)
	}
	want := []float32{4, 10}
	if out[0] != want[0] || out[1] != want[1] {
		t.Errorf("ProdVector = %v, want %v", out, want)
	}
}

func TestSubProdVector(t *testing.T) {
	m := NewAlignedMatrix(2, 2)
	fillMatrix(m, [][]float32{{1, 0}, {0, 1}})
	out := make([]float32, 2)
	if err := SubProdVector([]float32{10, 20}, m, []float32{3, 4}, out); err != nil {
		t.Fatalf("SubProdVector: %v", err)
	}
	want := []float32{7, 16}
	if out[0] != want[0] || out[1] != want[1] {
		t.Errorf("SubProdVector = %v, want %v", out, want)
	}
}

// Known 2x3 input with hand-computed M*Mᵀ.
func TestSyrkTranspose(t *testing.T) {
	m := NewAlignedMatrix(2, 3)
	fillMatrix(m, [][]float32{{1, 2, 3}, {4, 5, 6}})
	out := NewAlignedMatrix(2, 2)
	if err := SyrkTranspose(m, out); err != nil {
		t.Fatalf("SyrkTranspose: %v", err)
	}
	want := [][]float32{{14, 32}, {32, 77}}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if out.RowSlice(i)[j] != want[i][j] {
				t.Errorf("out[%d][%d] = %v, want %v", i, j, out.RowSlice(i)[j], want[i][j])
			}
		}
	}
}

// Property: syrk output is bit-identical across the diagonal for arbitrary
// shapes, including ones that don't divide evenly into 8-wide blocks.
func TestSyrkSymmetryProperty(t *testing.T) {
	for _, dims := range [][2]int{{5, 3}, {9, 4}, {1, 1}, {8, 8}, {3, 17}} {
		rows, cols := dims[0], dims[1]
		m := NewAlignedMatrix(rows, cols)
		v := float32(1)
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				m.RowSlice(i)[j] = v
				v += 0.37
			}
		}
		out := NewAlignedMatrix(rows, rows)
		if err := SyrkTranspose(m, out); err != nil {
			t.Fatalf("SyrkTranspose: %v", err)
		}
		for i := 0; i < rows; i++ {
			for j := 0; j < rows; j++ {
				if out.RowSlice(i)[j] != out.RowSlice(j)[i] {
					t.Errorf("dims=%v: out[%d][%d]=%v != out[%d][%d]=%v", dims, i, j, out.RowSlice(i)[j], j, i, out.RowSlice(j)[i])
				}
			}
		}
	}
}

// fakePool runs ParallelForAtomic inline (no goroutines), enough to verify
// SyrkTransposeParallel produces the same result as the sequential path.
type fakePool struct{}

func (fakePool) ParallelForAtomic(n int, fn func(i int)) {
	for i := 0; i < n; i++ {
		fn(i)
	}
}

func TestSyrkTransposeParallelMatchesSequential(t *testing.T) {
	for _, dims := range [][2]int{{5, 3}, {9, 4}, {1, 1}, {8, 8}} {
		rows, cols := dims[0], dims[1]
		m := NewAlignedMatrix(rows, cols)
		v := float32(1)
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				m.RowSlice(i)[j] = v
				v += 0.37
			}
		}
		want := NewAlignedMatrix(rows, rows)
		if err := SyrkTranspose(m, want); err != nil {
			t.Fatalf("SyrkTranspose: %v", err)
		}
		got := NewAlignedMatrix(rows, rows)
		if err := SyrkTransposeParallel(m, got, fakePool{}); err != nil {
			t.Fatalf("SyrkTransposeParallel: %v", err)
		}
		for i := 0; i < rows; i++ {
			for j := 0; j < rows; j++ {
				if got.RowSlice(i)[j] != want.RowSlice(i)[j] {
					t.Errorf("dims=%v: got[%d][%d]=%v != want[%d][%d]=%v", dims, i, j, got.RowSlice(i)[j], i, j, want.RowSlice(i)[j])
				}
			}
		}
	}
}

func TestSyrkTransposeParallelNilPoolFallsBack(t *testing.T) {
	m := NewAlignedMatrix(2, 3)
	fillMatrix(m, [][]float32{{1, 2, 3}, {4, 5, 6}})
	out := NewAlignedMatrix(2, 2)
	if err := SyrkTransposeParallel(m, out, nil); err != nil {
		t.Fatalf("SyrkTransposeParallel: %v", err)
	}
	want := [][]float32{{14, 32}, {32, 77}}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if out.RowSlice(i)[j] != want[i][j] {
				t.Errorf("out[%d][%d] = %v, want %v", i, j, out.RowSlice(i)[j], want[i][j])
			}
		}
	}
}

func TestAddEye(t *testing.T) {
	m := NewAlignedMatrix(2, 2)
	fillMatrix(m, [][]float32{{1, 2}, {3, 4}})
	if err := AddEye(m, 10); err != nil {
		t.Fatalf("AddEye: %v", err)
	}
	want := [][]float32{{11, 2}, {3, 14}}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if m.RowSlice(i)[j] != want[i][j] {
				t.Errorf("m[%d][%d] = %v, want %v", i, j, m.RowSlice(i)[j], want[i][j])
			}
		}
	}
}

func TestInvert(t *testing.T) {
	m := NewAlignedMatrix(2, 2)
	fillMatrix(m, [][]float32{{4, 0}, {0, 2}})
	out := NewAlignedMatrix(2, 2)
	if err := Invert(m, out); err != nil {
		t.Fatalf("Invert: %v", err)
	}
	want := [][]float32{{0.25, 0}, {0, 0.5}}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if diff := out.RowSlice(i)[j] - want[i][j]; diff > 1e-6 || diff < -1e-6 {
				t.Errorf("out[%d][%d] = %v, want %v", i, j, out.RowSlice(i)[j], want[i][j])
			}
		}
	}
}

func TestInvertSingular(t *testing.T) {
	m := NewAlignedMatrix(2, 2)
	fillMatrix(m, [][]float32{{1, 1}, {1, 1}})
	out := NewAlignedMatrix(2, 2)
	if err := Invert(m, out); err == nil {
		t.Fatal("Invert: expected error for singular matrix")
	}
}
