/*
 * ShISA - Binary container produced by the assembler or a test fixture.
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

// Package binary holds the in-memory artifact the assembler (or a test
// fixture) hands to the simulator: an ordered instruction stream and an
// ordered data segment.
package binary

import "github.com/shisa-vm/shisa/isa"

// Data is a 16-bit data word, loaded into RAM ahead of the program text.
type Data = uint16

// Binary is an immutable (insts, data) pair. Once built with New, a Binary
// is meant to be handed to exactly one CPU's LoadBin and not reused.
type Binary struct {
	insts []isa.RawInst
	data  []Data
}

// New builds a Binary from an instruction stream and a data segment. Both
// slices are copied, so the caller is free to keep mutating its originals.
func New(insts []isa.RawInst, data []Data) Binary {
	i := make([]isa.RawInst, len(insts))
	copy(i, insts)
	d := make([]Data, len(data))
	copy(d, data)
	return Binary{insts: i, data: d}
}

// Insts returns the instruction stream in load order. Callers must treat
// the result as read-only.
func (b Binary) Insts() []isa.RawInst { return b.insts }

// Data returns the data segment in load order. Callers must treat the
// result as read-only.
func (b Binary) Data() []Data { return b.data }

// NumInsts returns the number of instructions in the binary.
func (b Binary) NumInsts() int { return len(b.insts) }

// NumData returns the number of data words in the binary.
func (b Binary) NumData() int { return len(b.data) }
