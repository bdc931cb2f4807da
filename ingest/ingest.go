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

// Package ingest reads (user, item, rating) triples from a text file into
// the shape the als/driver packages need to train on. It lives outside
// the als package so the numeric core stays free of file I/O.
package ingest

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Triple is one observed (user, item, rating) record.
type Triple struct {
	User   int32
	Item   int32
	Rating float32
}

// Dataset is the result of loading a ratings file: the triples themselves
// plus the user/item id space they span (the smallest N, M such that every
// triple's ids are in [0,N) and [0,M) respectively).
type Dataset struct {
	Triples  []Triple
	NumUsers int
	NumItems int
}

// LoadTriples reads whitespace/tab-separated "user_id item_id rating"
// lines from path, one triple per line. Blank lines and lines starting
// with '#' are skipped. ids are expected to already be small dense
// integers; the numeric core does not validate them.
func LoadTriples(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: %w", err)
	}
	defer f.Close()
	return LoadTriplesFrom(f)
}

// LoadTriplesFrom reads triples from an arbitrary reader; LoadTriples is a
// thin os.Open wrapper around this for testability.
func LoadTriplesFrom(r io.Reader) (*Dataset, error) {
	scanner := bufio.NewScanner(r)
	ds := &Dataset{}

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("ingest: line %d: want 3 fields, got %d", lineNo, len(fields))
		}
		user, err := strconv.ParseInt(fields[0], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("ingest: line %d: user id: %w", lineNo, err)
		}
		item, err := strconv.ParseInt(fields[1], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("ingest: line %d: item id: %w", lineNo, err)
		}
		rating, err := strconv.ParseFloat(fields[2], 32)
		if err != nil {
			return nil, fmt.Errorf("ingest: line %d: rating: %w", lineNo, err)
		}

		t := Triple{User: int32(user), Item: int32(item), Rating: float32(rating)}
		ds.Triples = append(ds.Triples, t)
		if int(t.User)+1 > ds.NumUsers {
			ds.NumUsers = int(t.User) + 1
		}
		if int(t.Item)+1 > ds.NumItems {
			ds.NumItems = int(t.Item) + 1
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ingest: %w", err)
	}
	return ds, nil
}
