/*
 * ShISA - Predecoded engine: instructions are decoded once at load time.
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

// predecode decodes every instruction in b once, in load order, so a
// dispatch loop never has to re-decode a raw word it has already seen.
func predecode(b binary.Binary) []isa.Decoded {
	insts := b.Insts()
	out := make([]isa.Decoded, len(insts))
	for i, word := range insts {
		out[i] = isa.DecodeInst(word)
	}
	return out
}

// Predecoded dispatches through a Go switch, like Switched, but decodes
// every instruction once up front rather than on every fetch.
type Predecoded struct {
	base
	decoded []isa.Decoded
}

// NewPredecoded returns a Predecoded engine loaded with b.
func NewPredecoded(b binary.Binary) *Predecoded {
	return &Predecoded{base: newBase(b), decoded: predecode(b)}
}

// instIndex maps the current PC to an index into p.decoded.
func (p *Predecoded) instIndex() int {
	return int((p.cpu.PC() - p.cpu.RAM.ProgramStart()) / isa.CellsPerInst)
}

// ExecuteOne advances PC past the current instruction and runs its
// precomputed decode.
func (p *Predecoded) ExecuteOne() error {
	if p.cpu.ReachedEnd() {
		return isa.ErrProgramEnd
	}
	idx := p.instIndex()
	d := p.decoded[idx]
	if err := p.cpu.PCIncrement(); err != nil {
		return err
	}
	return p.dispatch(d.Op, d.Dst, d.SrcL, d.SrcR)
}

// ExecuteAll runs until the program ends or faults.
func (p *Predecoded) ExecuteAll() error { return executeAll(p) }
