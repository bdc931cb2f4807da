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

// Package als provides the numeric core of an Alternating Least Squares
// matrix-factorization trainer: 8-lane-aligned dense vector and matrix
// kernels, a Conjugate Gradients linear solver, and a per-row ALS update
// built on top of them.
//
// All kernels operate on row-major buffers whose row width is padded to a
// multiple of 8 (WIDTH) floats; see AlignedVector and AlignedMatrix. Kernels
// are written against the hwy package's portable vector primitives, so
// their chunk width follows hwy's runtime CPU dispatch (AVX2, AVX-512,
// NEON, or the scalar default) without any build-tag duplication in this
// package.
package als
