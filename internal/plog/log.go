// Copyright 2014 The go-probeum Authors
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

// Package plog is a small structured logger in the style of the wider
// go-probeum tooling: levelled Info/Warn/Error/Debug calls taking
// alternating key/value pairs, colorized when standard error is a
// terminal, with the call site attached to anything at Warn or above.
package plog

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/go-stack/stack"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// Level identifies the severity of a log line.
type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

func (l Level) String() string {
	switch l {
	case LevelError:
		return "ERROR"
	case LevelWarn:
		return "WARN"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	default:
		return "?????"
	}
}

var levelColor = map[Level]*color.Color{
	LevelError: color.New(color.FgRed, color.Bold),
	LevelWarn:  color.New(color.FgYellow, color.Bold),
	LevelInfo:  color.New(color.FgGreen),
	LevelDebug: color.New(color.FgCyan),
}

// Logger is a minimal levelled, key/value logger. The zero value is not
// usable; construct one with New or use the package-level default.
type Logger struct {
	mu       sync.Mutex
	out      io.Writer
	colorize bool
	level    Level
}

// New creates a Logger writing to w. Color is auto-detected from w when w
// is *os.File and refers to a terminal (mirrors the teacher's reliance on
// mattn/go-isatty + mattn/go-colorable to decide whether to wrap stderr).
func New(w io.Writer) *Logger {
	colorize := false
	out := w
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		colorize = true
		out = colorable.NewColorable(f)
	}
	return &Logger{out: out, colorize: colorize, level: LevelDebug}
}

// SetLevel restricts output to lines at or above the given severity
// (LevelError is the most severe, LevelDebug the least).
func (l *Logger) SetLevel(lvl Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = lvl
}

func (l *Logger) log(lvl Level, msg string, ctx ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if lvl > l.level {
		return
	}

	var b strings.Builder
	b.WriteString(time.Now().UTC().Format("2006-01-02T15:04:05.000Z"))
	b.WriteByte(' ')

	tag := fmt.Sprintf("[%-5s]", lvl.String())
	if l.colorize {
		tag = levelColor[lvl].Sprint(tag)
	}
	b.WriteString(tag)
	b.WriteByte(' ')
	b.WriteString(msg)

	for i := 0; i+1 < len(ctx); i += 2 {
		fmt.Fprintf(&b, " %v=%v", ctx[i], ctx[i+1])
	}
	if len(ctx)%2 == 1 {
		fmt.Fprintf(&b, " %v=MISSING", ctx[len(ctx)-1])
	}

	if lvl <= LevelWarn {
		// attach the immediate caller, skipping the three log.go frames
		if call := stack.Caller(3); call != (stack.Call{}) {
			fmt.Fprintf(&b, " caller=%v", call)
		}
	}

	b.WriteByte('\n')
	io.WriteString(l.out, b.String())
}

func (l *Logger) Error(msg string, ctx ...interface{}) { l.log(LevelError, msg, ctx...) }
func (l *Logger) Warn(msg string, ctx ...interface{})  { l.log(LevelWarn, msg, ctx...) }
func (l *Logger) Info(msg string, ctx ...interface{})  { l.log(LevelInfo, msg, ctx...) }
func (l *Logger) Debug(msg string, ctx ...interface{}) { l.log(LevelDebug, msg, ctx...) }

// std is the package default, writing to stderr like the teacher's root logger.
var std = New(os.Stderr)

func Default() *Logger { return std }

func Error(msg string, ctx ...interface{}) { std.Error(msg, ctx...) }
func Warn(msg string, ctx ...interface{})  { std.Warn(msg, ctx...) }
func Info(msg string, ctx ...interface{})  { std.Info(msg, ctx...) }
func Debug(msg string, ctx ...interface{}) { std.Debug(msg, ctx...) }
