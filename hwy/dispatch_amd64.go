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

//go:build amd64 && !goexperiment.simd

package hwy

// Fallback for when GOEXPERIMENT=simd is not enabled.
//
// Without GOEXPERIMENT=simd, we can't use archsimd for CPU detection, so
// leave the current SIMD configured to Scalar. While SSE2 is available on
// all amd64 CPUs, it's not available without the simd extension.
//
// Build with GOEXPERIMENT=simd for proper AVX2/AVX512 detection.

func init() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}
	setScalarMode()
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16 // Use 16-byte vectors even in scalar mode for consistency
}
