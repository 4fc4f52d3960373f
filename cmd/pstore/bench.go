// Copyright 2020 The go-probeum Authors
// This file is part of the go-probeum library.
//
// The go-probeum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-probeum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-probeum library. If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/urfave/cli.v1"

	"github.com/probeum/persistent/hamt"
	"github.com/probeum/persistent/vector"
)

var benchCommand = cli.Command{
	Action:    runBench,
	Name:      "bench",
	Usage:     "Time Map/Vector growth across the 32/1024/32768 boundaries",
	ArgsUsage: " ",
	Category:  "MEASUREMENT",
	Description: `The bench command pushes/assocs up through each of the
32, 1024 and 32768 element boundaries (the points at which the vector's
trie grows a level and the hamt's trie is statistically forced to
deepen) and reports elapsed time to reach each boundary.`,
}

var benchBoundaries = []int{32, 1024, 32768}

func runBench(ctx *cli.Context) error {
	cfg := loadCLIConfig(ctx)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"boundary", "map assoc", "vector push"})

	m := hamt.NewStringMap()
	v := vector.New[string]()

	prev := 0
	for _, n := range benchBoundaries {
		mapStart := time.Now()
		for i := prev; i < n; i++ {
			m = m.Assoc(fmt.Sprintf("k%d", i), fmt.Sprintf("v%d", i))
		}
		mapElapsed := time.Since(mapStart)

		vecStart := time.Now()
		for i := prev; i < n; i++ {
			v = v.Push(fmt.Sprintf("v%d", i))
		}
		vecElapsed := time.Since(vecStart)

		table.Append([]string{fmt.Sprintf("%d", n), mapElapsed.String(), vecElapsed.String()})
		prev = n
	}

	table.Render()

	if cfg.ReportBranching {
		fmt.Printf("hamt: %d bits consumed per trie level\n", 5)
		fmt.Printf("vector: %d-ary trie, %d-element tail buffer\n", 32, 32)
	}

	if m.Count() != v.Count() {
		return fmt.Errorf("internal inconsistency: map count %d != vector count %d", m.Count(), v.Count())
	}
	return nil
}

func loadCLIConfig(ctx *cli.Context) config {
	cfg := defaultConfig()
	if file := ctx.GlobalString(configFileFlag.Name); file != "" {
		if err := loadConfig(file, &cfg); err != nil {
			fmt.Fprintln(os.Stderr, "pstore: failed to load config:", err)
		}
	}
	return cfg
}
