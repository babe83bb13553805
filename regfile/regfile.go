/*
 * ShISA - Register file.
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

// Package regfile implements the ShISA register file: r0 reads as the
// constant 0, r1 reads as the constant 1, and both are immutable. Only
// [isa.FirstWritableReg, isa.NumRegs) may be written.
package regfile

import (
	"fmt"
	"io"
	"strings"

	"github.com/shisa-vm/shisa/isa"
	"github.com/shisa-vm/shisa/util/hex"
)

// File holds the processor's general registers.
type File struct {
	regs [isa.NumRegs]isa.Reg
}

// New returns a File in its initial state: {0, 1, 0, 0, ...}.
func New() *File {
	f := &File{}
	f.regs[1] = 1
	return f
}

// Read returns the value of register r. Reads are total: every index in
// [0, isa.NumRegs) is valid.
func (f *File) Read(r int) isa.Reg {
	return f.regs[r]
}

// Write stores value into register r, unless r is 0 or 1, in which case
// the write is silently discarded.
func (f *File) Write(r int, value isa.Reg) {
	if r == 0 || r == 1 {
		return
	}
	f.regs[r] = value
}

// EachWritable calls fn once per writable register, ascending from
// isa.FirstWritableReg to isa.NumRegs-1. This is the order CALL spills the
// register file in.
func (f *File) EachWritable(fn func(r int)) {
	for r := isa.FirstWritableReg; r < isa.NumRegs; r++ {
		fn(r)
	}
}

// EachWritableReverse calls fn once per writable register, descending from
// isa.NumRegs-1 to isa.FirstWritableReg. This is the order RET restores the
// register file in - the reversal is what makes CALL/RET symmetric.
func (f *File) EachWritableReverse(fn func(r int)) {
	for r := isa.NumRegs - 1; r >= isa.FirstWritableReg; r-- {
		fn(r)
	}
}

// Dump writes a human-readable hex listing of every register to w.
func (f *File) Dump(w io.Writer) {
	fmt.Fprintln(w, "Register file dump")
	for r, v := range f.regs {
		var b strings.Builder
		hex.FormatHalf(&b, false, []uint16{v})
		fmt.Fprintf(w, "r%-2d = 0x%s\n", r, strings.TrimSpace(b.String()))
	}
}
