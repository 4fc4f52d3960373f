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
	"bufio"
	"fmt"
	"os"
	"reflect"
	"unicode"

	"github.com/naoina/toml"
)

// tomlSettings mirrors cmd/gprobe's config loader: field names are used
// verbatim as TOML keys, and an unrecognized field is a hard error rather
// than silently ignored.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string { return key },
	FieldToKey:    func(rt reflect.Type, field string) string { return field },
	MissingField: func(rt reflect.Type, field string) error {
		var link string
		if unicode.IsUpper(rune(rt.Name()[0])) {
			link = fmt.Sprintf(" (see type %s)", rt.Name())
		}
		return fmt.Errorf("field '%s' is not defined in %s%s", field, rt.String(), link)
	},
}

// config holds the handful of knobs pstore exposes: none of it changes
// map/vector semantics, only how the CLI reports on them.
type config struct {
	// HashLabel names a hash function; it defaults to "djb2", matching
	// hamt.DefaultHash. bench and inspect do not read it: inspect always
	// hashes with hamt.DefaultHash.
	HashLabel string
	// Colorize is accepted in the config file but not read by any
	// command; plog colors its output from TTY detection alone.
	Colorize bool
	// ReportBranching includes the vector's node width (32) and hamt's
	// bits-per-level (5) in bench output, for readers unfamiliar with
	// either structure's growth boundaries.
	ReportBranching bool
}

func defaultConfig() config {
	return config{HashLabel: "djb2", ReportBranching: true}
}

func loadConfig(file string, cfg *config) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	if _, ok := err.(*toml.LineError); ok {
		err = fmt.Errorf("%s, %v", file, err)
	}
	return err
}
