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
	"io"
	"strconv"
	"strings"

	"github.com/peterh/liner"
	"gopkg.in/urfave/cli.v1"

	"github.com/probeum/persistent/internal/plog"
)

var replCommand = cli.Command{
	Action:    runRepl,
	Name:      "repl",
	Usage:     "Start an interactive session over one Map and one Vector",
	ArgsUsage: " ",
	Category:  "INTERACTIVE",
	Description: `The repl command starts a line-editing shell for driving a
single persistent Map and a single persistent Vector by hand. Type 'help'
at the prompt for the command list.`,
}

const replHelp = `commands:
  map-assoc KEY VAL     Map = Map.Assoc(KEY, VAL)
  map-dissoc KEY        Map = Map.Dissoc(KEY)
  map-get KEY           print the value bound to KEY, if any
  map-count             print Map.Count()
  map-iterate           print every (key, val) pair in Map
  vector-push VAL       Vector = Vector.Push(VAL)
  vector-pop            Vector = Vector.Pop()
  vector-get INDEX      print the element at INDEX, if any
  vector-set INDEX VAL  Vector = Vector.Set(INDEX, VAL)
  vector-count          print Vector.Count()
  vector-tail           print Vector.Tail(), the unflushed tail buffer
  vector-iterate        print every element in Vector, in order
  help                  print this message
  quit                  exit
`

func runRepl(ctx *cli.Context) error {
	sess := newSession()

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	fmt.Println("pstore interactive session — type 'help' for commands, 'quit' to exit")
	for {
		input, err := line.Prompt("pstore> ")
		if err == liner.ErrPromptAborted || err == io.EOF {
			return nil
		}
		if err != nil {
			plog.Error("repl prompt failed", "err", err)
			return err
		}
		line.AppendHistory(input)

		fields := strings.Fields(input)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "quit", "exit":
			return nil
		case "help":
			fmt.Print(replHelp)
		default:
			if err := sess.dispatch(fields); err != nil {
				fmt.Println("error:", err)
			}
		}
	}
}

func (s *session) dispatch(fields []string) error {
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "map-assoc":
		if len(args) != 2 {
			return fmt.Errorf("usage: map-assoc KEY VAL")
		}
		s.m = s.m.Assoc(args[0], args[1])
		fmt.Println("ok, count =", s.m.Count())

	case "map-dissoc":
		if len(args) != 1 {
			return fmt.Errorf("usage: map-dissoc KEY")
		}
		s.m = s.m.Dissoc(args[0])
		fmt.Println("ok, count =", s.m.Count())

	case "map-get":
		if len(args) != 1 {
			return fmt.Errorf("usage: map-get KEY")
		}
		if v, ok := s.m.Get(args[0]); ok {
			fmt.Println(v)
		} else {
			fmt.Println("(not found)")
		}

	case "map-count":
		fmt.Println(s.m.Count())

	case "map-iterate":
		for it := s.m.Iterator(); !it.Done(); it = it.Next() {
			e := it.Value()
			fmt.Printf("%s = %s\n", e.Key, e.Val)
		}

	case "vector-push":
		if len(args) != 1 {
			return fmt.Errorf("usage: vector-push VAL")
		}
		s.v = s.v.Push(args[0])
		fmt.Println("ok, count =", s.v.Count())

	case "vector-pop":
		if s.v.Empty() {
			return fmt.Errorf("vector is empty")
		}
		s.v = s.v.Pop()
		fmt.Println("ok, count =", s.v.Count())

	case "vector-get":
		if len(args) != 1 {
			return fmt.Errorf("usage: vector-get INDEX")
		}
		i, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		if v, ok := s.v.Get(i); ok {
			fmt.Println(v)
		} else {
			fmt.Println("(out of range)")
		}

	case "vector-set":
		if len(args) != 2 {
			return fmt.Errorf("usage: vector-set INDEX VAL")
		}
		i, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		if i < 0 || i >= s.v.Count() {
			return fmt.Errorf("index %d out of range [0, %d)", i, s.v.Count())
		}
		s.v = s.v.Set(i, args[1])
		fmt.Println("ok")

	case "vector-count":
		fmt.Println(s.v.Count())

	case "vector-tail":
		fmt.Println(s.v.Tail())

	case "vector-iterate":
		for it := s.v.Iterator(); !it.Done(); it = it.Next() {
			fmt.Println(it.Value())
		}

	default:
		return fmt.Errorf("unknown command %q, type 'help'", cmd)
	}

	return nil
}
