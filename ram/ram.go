/*
 * ShISA - RAM and RAM controller.
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

// Package ram implements byte-addressable linear memory and the controller
// that lays a Binary out in it: data first, then read-only program text,
// then an empty stack region.
package ram

import (
	"fmt"
	"io"
	"strings"

	"github.com/shisa-vm/shisa/binary"
	"github.com/shisa-vm/shisa/isa"
	"github.com/shisa-vm/shisa/util/hex"
)

// Size is the number of addressable cells: 2^(8*sizeof(Addr)).
const Size = 1 << 16

// RAM is a fixed-size, zero-initialized array of cells.
type RAM struct {
	cells [Size]isa.Cell
}

// Read returns the cell at addr. Reads are total.
func (r *RAM) Read(addr isa.Addr) isa.Cell {
	return r.cells[addr]
}

// Write stores data at addr. Writes are total.
func (r *RAM) Write(addr isa.Addr, data isa.Cell) {
	r.cells[addr] = data
}

// Dump writes a human-readable hex listing of every cell to w, 16 to a
// line.
func (r *RAM) Dump(w io.Writer) {
	fmt.Fprintln(w, "RAM dump")
	const perLine = 16
	for addr := 0; addr < len(r.cells); addr += perLine {
		end := addr + perLine
		if end > len(r.cells) {
			end = len(r.cells)
		}
		var b strings.Builder
		hex.FormatBytes(&b, true, r.cells[addr:end])
		fmt.Fprintf(w, "0x%04x: %s\n", addr, strings.TrimSpace(b.String()))
	}
}

// Controller wraps a RAM, lays out a loaded Binary in it, and enforces that
// the program text is read-only once loaded.
type Controller struct {
	ram     RAM
	dataEnd isa.Addr
	binEnd  isa.Addr
	loaded  bool
}

// NewController returns an empty, unloaded Controller.
func NewController() *Controller {
	return &Controller{}
}

// LoadBin writes b's data segment starting at address 0, then b's
// instruction stream immediately after, both big-endian (most significant
// cell first). It must be called exactly once per Controller.
func (c *Controller) LoadBin(b binary.Binary) {
	var addr isa.Addr

	for _, d := range b.Data() {
		for i := isa.CellsPerData - 1; i >= 0; i-- {
			shift := uint(i) * 8
			c.ram.Write(addr, isa.Cell((d>>shift)&0xFF))
			addr++
		}
	}
	c.dataEnd = addr

	for _, inst := range b.Insts() {
		for i := isa.CellsPerInst - 1; i >= 0; i-- {
			shift := uint(i) * 8
			c.ram.Write(addr, isa.Cell((inst>>shift)&0xFF))
			addr++
		}
	}
	c.binEnd = addr
	c.loaded = true
}

// ProgramStart returns dataEnd, the address of the first executable
// instruction.
func (c *Controller) ProgramStart() isa.Addr { return c.dataEnd }

// ProgramEnd returns binEnd, one past the last instruction cell.
func (c *Controller) ProgramEnd() isa.Addr { return c.binEnd }

// BinEnd is an alias for ProgramEnd used by stack bound checks.
func (c *Controller) BinEnd() isa.Addr { return c.binEnd }

// BinDataAddr returns the address the data segment was loaded at, always 0.
func (c *Controller) BinDataAddr() isa.Addr { return 0 }

// Loaded reports whether LoadBin has been called.
func (c *Controller) Loaded() bool { return c.loaded }

// Read returns the cell at addr. Reads are total.
func (c *Controller) Read(addr isa.Addr) isa.Cell {
	return c.ram.Read(addr)
}

// Write stores data at addr, unless addr falls in the program text region
// [dataEnd, binEnd), in which case the write is silently dropped: the
// binary is read-only once loaded. Addresses below dataEnd (the data
// segment) and at or above binEnd (the stack) are writable.
func (c *Controller) Write(addr isa.Addr, data isa.Cell) {
	if addr >= c.dataEnd && addr < c.binEnd {
		return
	}
	c.ram.Write(addr, data)
}

// Dump writes a human-readable listing of the controller's region
// boundaries and the underlying RAM to w.
func (c *Controller) Dump(w io.Writer) {
	fmt.Fprintln(w, "RAM controller dump")
	fmt.Fprintf(w, "dataEnd = 0x%04x\n", c.dataEnd)
	fmt.Fprintf(w, "binEnd  = 0x%04x\n", c.binEnd)
	c.ram.Dump(w)
}
