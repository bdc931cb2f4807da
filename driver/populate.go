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

import "github.com/ajroetker/go-als/ingest"

// LoadTrainingSet records every triple in ds against both sides'
// observation lists. m.Users and m.Items must
// already be sized to at least ds.NumUsers and ds.NumItems rows
// respectively.
func (m *Model) LoadTrainingSet(ds *ingest.Dataset) {
	for _, t := range ds.Triples {
		m.Users.AddObservation(int(t.User), t.Item, t.Rating)
		m.Items.AddObservation(int(t.Item), t.User, t.Rating)
	}
}
