/*
 * ShISA - Interactive monitor.
 *
 * Copyright 2026, ShISA contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package monitor is a liner-driven interactive console for stepping a
// running engine, inspecting its registers and memory, and setting
// breakpoints, in the style of a simple in-circuit debugger.
package monitor

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/peterh/liner"

	"github.com/shisa-vm/shisa/isa"
	"github.com/shisa-vm/shisa/sim"
)

// Monitor drives one engine through an interactive command loop.
type Monitor struct {
	eng    sim.Engine
	out    io.Writer
	breaks map[isa.Addr]bool
}

// New returns a Monitor driving eng, writing all output to out. If out is
// nil, output goes to os.Stdout.
func New(eng sim.Engine, out io.Writer) *Monitor {
	if out == nil {
		out = os.Stdout
	}
	return &Monitor{eng: eng, out: out, breaks: make(map[isa.Addr]bool)}
}

// Run starts the interactive console and blocks until the user quits or
// the input stream is closed.
func (m *Monitor) Run() {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(func(in string) []string {
		return completeCmd(in)
	})

	for {
		input, err := line.Prompt("shisa> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				return
			}
			fmt.Fprintln(m.out, "error reading line:", err)
			return
		}

		line.AppendHistory(input)
		quit, err := m.dispatch(input)
		if err != nil {
			fmt.Fprintln(m.out, "error:", err)
		}
		if quit {
			return
		}
	}
}
