/*
 * ShISA - CPU state: PC/SP discipline, fetch, word packing, stack ops.
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

// Package cpu ties the register file and RAM controller together into one
// processor state: program counter, stack pointer, fetch, multi-cell word
// packing, and the stack primitives the CALL/RET/PUSH/POP instructions are
// built from. A CPU owns its register file and RAM controller exclusively
// and is loaded with exactly one Binary over its lifetime.
package cpu

import (
	"fmt"
	"io"

	"github.com/shisa-vm/shisa/binary"
	"github.com/shisa-vm/shisa/isa"
	"github.com/shisa-vm/shisa/ram"
	"github.com/shisa-vm/shisa/regfile"
)

// CPU holds the full architectural state: registers, memory, PC and SP.
type CPU struct {
	Regs *regfile.File
	RAM  *ram.Controller

	pc       isa.Addr
	sp       isa.Addr
	reachEnd bool
}

// New returns a CPU with an empty register file and unloaded RAM. LoadBin
// must be called before fetching or executing.
func New() *CPU {
	return &CPU{
		Regs: regfile.New(),
		RAM:  ram.NewController(),
	}
}

// LoadBin installs b into RAM and resets PC to the first instruction and SP
// to an empty stack: PC = dataEnd, SP = binEnd.
func (c *CPU) LoadBin(b binary.Binary) {
	c.RAM.LoadBin(b)
	c.pc = c.RAM.ProgramStart()
	c.sp = c.RAM.BinEnd()
	c.reachEnd = c.pc == c.RAM.BinEnd()
}

// PC returns the current program counter.
func (c *CPU) PC() isa.Addr { return c.pc }

// SP returns the current stack pointer.
func (c *CPU) SP() isa.Addr { return c.sp }

// ReachedEnd reports whether PC has reached the end of the binary.
func (c *CPU) ReachedEnd() bool { return c.reachEnd }

// PCIncrement advances PC by one instruction. If the result would exceed
// the end of the binary, PC is left unchanged and ErrProgramEnd is raised.
func (c *CPU) PCIncrement() error {
	next := c.pc + isa.CellsPerInst
	if next > c.RAM.BinEnd() {
		return isa.ErrProgramEnd
	}
	c.pc = next
	c.reachEnd = c.pc == c.RAM.BinEnd()
	return nil
}

// SetPC jumps to addr. Addresses past the end of the binary raise
// ErrProgramEnd; addresses before the start of the program text raise
// ErrBadPC.
func (c *CPU) SetPC(addr isa.Addr) error {
	if addr > c.RAM.BinEnd() {
		return isa.ErrProgramEnd
	}
	if addr < c.RAM.ProgramStart() {
		return isa.ErrBadPC
	}
	c.pc = addr
	c.reachEnd = c.pc == c.RAM.BinEnd()
	return nil
}

// SetPCToEnd forces PC to the end of the binary without raising. DIV uses
// this as a soft halt on division by zero: the next fetch will surface
// ErrProgramEnd instead of crashing the host.
func (c *CPU) SetPCToEnd() {
	c.pc = c.RAM.BinEnd()
	c.reachEnd = true
}

// FetchNext reads the instruction word at PC, advances PC, and returns the
// word. It raises ErrProgramEnd if PC has already reached the end of the
// binary.
func (c *CPU) FetchNext() (isa.RawInst, error) {
	if c.reachEnd {
		return 0, isa.ErrProgramEnd
	}

	var word isa.RawInst
	for i := 0; i < isa.CellsPerInst; i++ {
		word = word<<8 | isa.RawInst(c.RAM.Read(c.pc+isa.Addr(i)))
	}

	if err := c.PCIncrement(); err != nil {
		return 0, err
	}
	return word, nil
}

// SPIncrementBy moves SP up by n cells. It raises ErrStackOverflow, leaving
// SP unchanged, if the result would exceed binEnd+StackOffset.
func (c *CPU) SPIncrementBy(n isa.Addr) error {
	next := c.sp + n
	if next > c.RAM.BinEnd()+isa.StackOffset {
		return isa.ErrStackOverflow
	}
	c.sp = next
	return nil
}

// SPDecrementBy moves SP down by n cells. It raises ErrStackUnderflow,
// leaving SP unchanged, if the subtraction would wrap or the result would
// fall below binEnd - including decrementing an empty stack.
func (c *CPU) SPDecrementBy(n isa.Addr) error {
	if n > c.sp {
		return isa.ErrStackUnderflow
	}
	next := c.sp - n
	if next < c.RAM.BinEnd() {
		return isa.ErrStackUnderflow
	}
	c.sp = next
	return nil
}

// SPIncrement moves SP up by one cell.
func (c *CPU) SPIncrement() error { return c.SPIncrementBy(1) }

// SPDecrement moves SP down by one cell.
func (c *CPU) SPDecrement() error { return c.SPDecrementBy(1) }

// SPRegIncrement moves SP up by one register's worth of cells.
func (c *CPU) SPRegIncrement() error { return c.SPIncrementBy(isa.CellsPerReg) }

// SPRegDecrement moves SP down by one register's worth of cells.
func (c *CPU) SPRegDecrement() error { return c.SPDecrementBy(isa.CellsPerReg) }

// ReadWordFromRAM reads isa.CellsPerReg cells starting at addr and packs
// them big-endian into a register-width value.
func (c *CPU) ReadWordFromRAM(addr isa.Addr) isa.Reg {
	var v isa.Reg
	for i := 0; i < isa.CellsPerReg; i++ {
		v = v<<8 | isa.Reg(c.RAM.Read(addr+isa.Addr(i)))
	}
	return v
}

// WriteWordToRAM is the inverse of ReadWordFromRAM: it writes value as
// isa.CellsPerReg cells, most significant cell first, starting at addr.
func (c *CPU) WriteWordToRAM(addr isa.Addr, value isa.Reg) {
	for i := 0; i < isa.CellsPerReg; i++ {
		shift := uint(isa.CellsPerReg-1-i) * 8
		c.RAM.Write(addr+isa.Addr(i), isa.Cell((value>>shift)&0xFF))
	}
}

// ReadRegFromRAM loads a word from addr into register r.
func (c *CPU) ReadRegFromRAM(addr isa.Addr, r int) {
	c.Regs.Write(r, c.ReadWordFromRAM(addr))
}

// WriteRegToRAM stores register r's value as a word at addr.
func (c *CPU) WriteRegToRAM(addr isa.Addr, r int) {
	c.WriteWordToRAM(addr, c.Regs.Read(r))
}

// StoreOnStack pushes a single cell and advances SP by one.
func (c *CPU) StoreOnStack(cell isa.Cell) error {
	c.RAM.Write(c.sp, cell)
	return c.SPIncrement()
}

// LoadFromStack retreats SP by one and pops a single cell.
func (c *CPU) LoadFromStack() (isa.Cell, error) {
	if err := c.SPDecrement(); err != nil {
		return 0, err
	}
	return c.RAM.Read(c.sp), nil
}

// StoreRegOnStack pushes register r's value and advances SP by one
// register's worth of cells.
func (c *CPU) StoreRegOnStack(r int) error {
	c.WriteRegToRAM(c.sp, r)
	return c.SPRegIncrement()
}

// LoadRegFromStack retreats SP by one register's worth of cells and pops a
// value into register r.
func (c *CPU) LoadRegFromStack(r int) error {
	if err := c.SPRegDecrement(); err != nil {
		return err
	}
	c.ReadRegFromRAM(c.sp, r)
	return nil
}

// StorePCOnStack pushes the current PC.
func (c *CPU) StorePCOnStack() error {
	c.WriteWordToRAM(c.sp, isa.Reg(c.pc))
	return c.SPRegIncrement()
}

// LoadPCFromStack pops a PC value and jumps to it.
func (c *CPU) LoadPCFromStack() error {
	if err := c.SPRegDecrement(); err != nil {
		return err
	}
	return c.SetPC(isa.Addr(c.ReadWordFromRAM(c.sp)))
}

// StoreRegsOnStack spills the writable register range onto the stack in
// ascending order. Paired with LoadRegsFromStack, this is CALL's half of
// the calling convention.
func (c *CPU) StoreRegsOnStack() error {
	var err error
	c.Regs.EachWritable(func(r int) {
		if err != nil {
			return
		}
		err = c.StoreRegOnStack(r)
	})
	return err
}

// LoadRegsFromStack restores the writable register range from the stack in
// descending order - the reverse of StoreRegsOnStack - which is what keeps
// CALL and RET symmetric.
func (c *CPU) LoadRegsFromStack() error {
	var err error
	c.Regs.EachWritableReverse(func(r int) {
		if err != nil {
			return
		}
		err = c.LoadRegFromStack(r)
	})
	return err
}

// Dump writes a human-readable listing of PC, SP, the register file and RAM
// to w.
func (c *CPU) Dump(w io.Writer) {
	fmt.Fprintln(w, "CPU state dump")
	fmt.Fprintf(w, "PC = 0x%04x\n", c.pc)
	fmt.Fprintf(w, "SP = 0x%04x\n", c.sp)
	c.Regs.Dump(w)
	c.RAM.Dump(w)
}
