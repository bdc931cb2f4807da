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

// Command alstrain trains a matrix-factorization model via Alternating
// Least Squares against a ratings file, reporting held-out RMSE once per
// outer iteration.
//
// Usage:
//
//	alstrain -train ratings.tsv -k 16 -lambda 0.1 -iters 10 -workers 8 \
//	    [-test holdout.tsv] [-seed 1] [-cg-epsilon 1e-6] [-simd-info]
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/ajroetker/go-als/config"
	"github.com/ajroetker/go-als/driver"
	"github.com/ajroetker/go-als/hwy"
	"github.com/ajroetker/go-als/hwy/contrib/workerpool"
	"github.com/ajroetker/go-als/ingest"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Parse(args)
	if err != nil {
		return err
	}

	if cfg.SimdInfo {
		fmt.Printf("dispatch=%s width_bytes=%d\n", hwy.CurrentName(), hwy.CurrentWidth())
		if cfg.TrainPath == "" {
			return nil
		}
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	train, err := ingest.LoadTriples(cfg.TrainPath)
	if err != nil {
		return err
	}
	log.Info("loaded training set", "triples", len(train.Triples), "users", train.NumUsers, "items", train.NumItems)

	var evalSet *driver.EvalSet
	if cfg.TestPath != "" {
		test, err := ingest.LoadTriples(cfg.TestPath)
		if err != nil {
			return err
		}
		evalSet = &driver.EvalSet{}
		for _, t := range test.Triples {
			evalSet.Users = append(evalSet.Users, t.User)
			evalSet.Items = append(evalSet.Items, t.Item)
			evalSet.Ratings = append(evalSet.Ratings, t.Rating)
		}
	}

	model := driver.NewModel(train.NumUsers, train.NumItems, cfg.K)
	model.Lambda = float32(cfg.Lambda)
	model.CGEpsilon = float32(cfg.CGEpsilon)
	model.Init(cfg.Seed)
	model.LoadTrainingSet(train)

	pool := workerpool.New(cfg.Workers)
	defer pool.Close()

	log.Info("starting training", "k", cfg.K, "lambda", cfg.Lambda, "iters", cfg.Iters, "workers", pool.NumWorkers(), "simd", hwy.CurrentName())
	if err := driver.Run(context.Background(), model, pool, cfg.Iters, evalSet, log); err != nil {
		return err
	}
	log.Info("training complete")
	return nil
}
