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
	"github.com/probeum/persistent/hamt"
	"github.com/probeum/persistent/vector"
)

// session is the REPL's in-memory state: one Map and one Vector, each
// replaced wholesale on every mutating command, the way every persistent
// operation in this library returns a new value rather than mutating in
// place. There is no serialization format (spec non-goal), so session
// state never outlives the process.
type session struct {
	m *hamt.Map[string, string]
	v *vector.Vector[string]
}

func newSession() *session {
	return &session{m: hamt.NewStringMap(), v: vector.New[string]()}
}
