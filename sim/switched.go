/*
 * ShISA - Switch-dispatched engine.
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

package sim

import (
	"github.com/shisa-vm/shisa/binary"
	"github.com/shisa-vm/shisa/isa"
)

// Switched fetches and decodes one instruction at a time, dispatching
// through a Go switch keyed on the opcode.
type Switched struct {
	base
}

// NewSwitched returns a Switched engine loaded with b.
func NewSwitched(b binary.Binary) *Switched {
	return &Switched{base: newBase(b)}
}

// ExecuteOne fetches, decodes and runs the instruction at PC.
func (s *Switched) ExecuteOne() error {
	word, err := s.cpu.FetchNext()
	if err != nil {
		return err
	}
	d := isa.DecodeInst(word)
	return s.dispatch(d.Op, d.Dst, d.SrcL, d.SrcR)
}

// ExecuteAll runs until the program ends or faults.
func (s *Switched) ExecuteAll() error { return executeAll(s) }
