/*
 * ShISA - Predecoded, table-dispatched engine.
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

// PredecodedSubroutined combines Predecoded's one-time decode with
// Subroutined's table dispatch - the fastest of the four variants in the
// common case.
type PredecodedSubroutined struct {
	base
	decoded []isa.Decoded
}

// NewPredecodedSubroutined returns a PredecodedSubroutined engine loaded
// with b.
func NewPredecodedSubroutined(b binary.Binary) *PredecodedSubroutined {
	return &PredecodedSubroutined{base: newBase(b), decoded: predecode(b)}
}

func (p *PredecodedSubroutined) instIndex() int {
	return int((p.cpu.PC() - p.cpu.RAM.ProgramStart()) / isa.CellsPerInst)
}

// ExecuteOne advances PC past the current instruction and runs its
// precomputed decode through the routines table.
func (p *PredecodedSubroutined) ExecuteOne() error {
	if p.cpu.ReachedEnd() {
		return isa.ErrProgramEnd
	}
	idx := p.instIndex()
	d := p.decoded[idx]
	if err := p.cpu.PCIncrement(); err != nil {
		return err
	}
	return p.dispatchTable(d.Op, d.Dst, d.SrcL, d.SrcR)
}

// ExecuteAll runs until the program ends or faults.
func (p *PredecodedSubroutined) ExecuteAll() error { return executeAll(p) }
