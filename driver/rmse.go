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

package driver

import (
	"math"

	"github.com/ajroetker/go-als/als"
)

// RMSE computes the root-mean-squared error of m's current factors against
// a held-out set of (user, item, rating) triples: for each triple,
// accumulate (rating - <F_user, G_item>)^2, then divide by the count and
// take the square root.
func RMSE(m *Model, users, items []int32, ratings []float32) float64 {
	if len(users) == 0 {
		return 0
	}
	var sumSq float64
	for i := range users {
		u, it, r := users[i], items[i], ratings[i]
		pred := als.Dot(m.Users.F.RowSlice(int(u)), m.Items.F.RowSlice(int(it)), m.K)
		d := float64(r) - float64(pred)
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(users)))
}

// Objective computes the regularized ALS objective:
// sum((r_um - <f_u,g_m>)^2) over every recorded training observation, plus
// lambda*(||F||^2 + ||G||^2). A correct ALS implementation never increases
// it across a full outer iteration, so driving it once per iteration is a
// cheap end-to-end check.
func Objective(m *Model, lambda float32) float64 {
	var loss float64
	for u := 0; u < m.Users.F.Rows(); u++ {
		fu := m.Users.F.RowSlice(u)
		for _, o := range m.Users.Obs[u] {
			pred := als.Dot(fu, m.Items.F.RowSlice(int(o.Partner)), m.K)
			d := float64(o.Rating) - float64(pred)
			loss += d * d
		}
	}
	var reg float64
	for u := 0; u < m.Users.F.Rows(); u++ {
		fu := m.Users.F.RowSlice(u)
		reg += float64(als.Dot(fu, fu, m.K))
	}
	for it := 0; it < m.Items.F.Rows(); it++ {
		gi := m.Items.F.RowSlice(it)
		reg += float64(als.Dot(gi, gi, m.K))
	}
	return loss + float64(lambda)*reg
}
