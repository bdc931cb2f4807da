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

import "math/rand/v2"

// Observation is one (partner row, rating) pair recorded against a row of
// an Embedding's factor matrix.
type Observation struct {
	Partner int32
	Rating  float32
}

// Embedding owns one side's latent factor matrix F (N x K) and its
// append-only, read-only-after-ingestion observation lists. Obs[i]
// is the ordered list of (partner_id, rating) pairs row i of F was fit
// against.
type Embedding struct {
	F   *AlignedMatrix
	Obs [][]Observation
}

// NewEmbedding allocates an N x K factor matrix and N empty observation
// lists.
func NewEmbedding(n, k int) *Embedding {
	return &Embedding{
		F:   NewAlignedMatrix(n, k),
		Obs: make([][]Observation, n),
	}
}

// AddObservation appends (partner, rating) to row i's observation list.
// Observation lists are append-only during ingestion; callers must
// not call this once HALF_* solves against this Embedding have begun.
func (e *Embedding) AddObservation(i int, partner int32, rating float32) {
	e.Obs[i] = append(e.Obs[i], Observation{Partner: partner, Rating: rating})
}

// Init fills F with small-magnitude pseudo-random values, seeded
// deterministically from seed so a run is reproducible. Values are drawn
// uniformly from [-0.5/K, 0.5/K) so the initial dot product of two rows
// lands in the same scale as an observed rating.
func (e *Embedding) Init(seed int64) {
	src := rand.NewPCG(uint64(seed), uint64(seed)>>32|1)
	rng := rand.New(src)
	k := e.F.Cols()
	if k == 0 {
		return
	}
	scale := float32(1.0 / float64(k))
	for i := 0; i < e.F.Rows(); i++ {
		row := e.F.RowSlice(i)
		for j := range row {
			row[j] = (rng.Float32() - 0.5) * scale
		}
	}
}
