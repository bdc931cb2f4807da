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

// Package driver implements the single-process training loop around the
// als package's numeric core: the HALF_U/HALF_V half-iterations, the
// worker-pool fan-out across rows, and held-out RMSE evaluation.
//
// What this package is explicitly not: a multi-process/MPI-style
// distributed driver. Every HALF_* call here runs within one process,
// fanning work out across goroutines rather than ranks; SYNC_U/SYNC_V are
// no-ops because a single process has nothing to publish rows across.
package driver

import "github.com/ajroetker/go-als/als"

// Model holds the two sides of an ALS factorization in training: the user
// and item embeddings and the shared hyperparameters the state machine
// threads through every half-iteration.
type Model struct {
	Users, Items *als.Embedding
	K            int
	Lambda       float32
	CGEpsilon    float32
}

// NewModel allocates a Model with numUsers x K and numItems x K factor
// matrices, both uninitialized (call Init before the first HALF_*).
func NewModel(numUsers, numItems, k int) *Model {
	return &Model{
		Users:     als.NewEmbedding(numUsers, k),
		Items:     als.NewEmbedding(numItems, k),
		K:         k,
		CGEpsilon: 1e-6,
	}
}

// Init seeds both embeddings' initial factor values deterministically from
// seed. Users and items get distinct derived seeds so the two sides don't
// start identical.
func (m *Model) Init(seed int64) {
	m.Users.Init(seed)
	m.Items.Init(seed ^ -0x61C8864680B583EB)
}
