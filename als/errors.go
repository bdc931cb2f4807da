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

import "errors"

// ErrDimensionMismatch is returned by operations given inputs whose shapes
// are incompatible, where the check is cheap enough to make on the hot
// path without defeating the purpose of the kernel.
var ErrDimensionMismatch = errors.New("als: dimension mismatch")

// ErrSingular is returned by Invert when the input matrix is (numerically)
// singular and no inverse exists.
var ErrSingular = errors.New("als: matrix is singular")

// ErrNotPositiveDefinite is returned by CGSolve when the iteration count
// exceeds its cap without reaching the requested tolerance, which in
// exact arithmetic can only happen if A was not symmetric positive
// definite.
var ErrNotPositiveDefinite = errors.New("als: conjugate gradients did not converge; A may not be symmetric positive definite")
