/*
 * ShISA - Instruction word types and bit widths.
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

// Package isa defines the ShISA instruction word: its bit widths, opcode
// table, and the encode/decode codec shared by the assembler, disassembler
// and simulator.
package isa

// Reg is the width of a general register.
type Reg = uint16

// Addr is the width of a memory address.
type Addr = uint16

// Cell is the smallest addressable unit of RAM.
type Cell = uint8

// RawInst is the unsigned integer type holding one encoded instruction word.
type RawInst = uint16

const (
	// NumRegs is the size of the register file.
	NumRegs = 16

	// FirstWritableReg is the first register index writes actually land in;
	// r0 and r1 are hardwired constants.
	FirstWritableReg = 2

	// StackOffset is the maximum stack depth, in cells, above the end of
	// the loaded binary.
	StackOffset Addr = 0x1000

	// CellsPerReg is the number of RAM cells a register occupies.
	CellsPerReg = 2

	// CellsPerInst is the number of RAM cells an instruction word occupies.
	CellsPerInst = 2

	// CellsPerData is the number of RAM cells a data word occupies.
	CellsPerData = 2
)
