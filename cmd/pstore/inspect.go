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
	"encoding/binary"
	"fmt"
	"os"
	"sort"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	"github.com/status-im/keycard-go/hexutils"
	"gopkg.in/urfave/cli.v1"

	"github.com/probeum/persistent/hamt"
	"github.com/probeum/persistent/vector"
)

var inspectCommand = cli.Command{
	Action:    runInspect,
	Name:      "inspect",
	Usage:     "Build a demo Map/Vector and dump their contents",
	ArgsUsage: " ",
	Category:  "MEASUREMENT",
	Flags: []cli.Flag{
		cli.IntFlag{Name: "entries", Value: 40, Usage: "number of demo entries to generate"},
	},
	Description: `The inspect command populates a Map and a Vector with
uuid-keyed demo entries, then prints a table of every (key, hash, value)
triple alongside the vector's unflushed tail buffer.`,
}

func runInspect(ctx *cli.Context) error {
	n := ctx.Int("entries")
	if n <= 0 {
		n = 40
	}

	m := hamt.NewStringMap()
	v := vector.New[string]()

	keys := make([]string, 0, n)
	for i := 0; i < n; i++ {
		k := uuid.New().String()
		val := fmt.Sprintf("entry-%d", i)
		m = m.Assoc(k, val)
		v = v.Push(val)
		keys = append(keys, k)
	}
	sort.Strings(keys)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"key", "djb2 hash (hex)", "value"})
	for _, k := range keys {
		val, _ := m.Get(k)
		var hashBytes [8]byte
		binary.BigEndian.PutUint64(hashBytes[:], hamt.DefaultHash(k))
		table.Append([]string{k, hexutils.BytesToHex(hashBytes[:]), val})
	}
	table.Render()

	fmt.Printf("map: %d entries\nvector: %d entries, tail buffer:\n", m.Count(), v.Count())
	fmt.Println(spew.Sdump(v.Tail()))

	return nil
}
