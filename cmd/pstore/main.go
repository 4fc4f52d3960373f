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

// Command pstore is a demonstration CLI/REPL over the persistent Map and
// Vector collections in the hamt and vector packages. It adds no new
// map/vector semantics; it only drives the existing API end-to-end.
package main

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/urfave/cli.v1"

	"github.com/probeum/persistent/internal/plog"
)

var configFileFlag = cli.StringFlag{
	Name:  "config",
	Usage: "TOML configuration file (see config.go for fields)",
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "pstore"
	app.Usage = "drive the persistent hamt.Map and vector.Vector collections"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{configFileFlag}
	app.Commands = []cli.Command{
		replCommand,
		benchCommand,
		inspectCommand,
	}
	sort.Sort(cli.CommandsByName(app.Commands))
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		plog.Error("pstore exiting", "err", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
