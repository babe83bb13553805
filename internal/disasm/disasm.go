/*
 * ShISA - Disassembler.
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

// Package disasm renders a raw instruction word as assembly-like text, for
// the monitor's list command and the assembler's verbose mode.
package disasm

import (
	"fmt"

	"github.com/shisa-vm/shisa/isa"
)

// One renders a single decoded instruction. The operand layout mirrors
// internal/assemble's codegen: each opcode prints only the fields it
// actually uses.
func One(word isa.RawInst) string {
	d := isa.DecodeInst(word)
	if !d.Op.Valid() {
		return fmt.Sprintf("??? (0x%04x)", word)
	}

	m := d.Op.String()
	switch d.Op {
	case isa.OpADD, isa.OpSUB, isa.OpMUL, isa.OpDIV, isa.OpAND, isa.OpOR, isa.OpXOR, isa.OpCMP:
		return fmt.Sprintf("%s r%d, r%d, r%d", m, d.Dst, d.SrcL, d.SrcR)
	case isa.OpNOT, isa.OpLD:
		return fmt.Sprintf("%s r%d, r%d", m, d.Dst, d.SrcL)
	case isa.OpST:
		return fmt.Sprintf("%s r%d, r%d", m, d.SrcL, d.SrcR)
	case isa.OpJTR:
		return fmt.Sprintf("%s r%d, r%d", m, d.SrcL, d.SrcR)
	case isa.OpPUSH:
		return fmt.Sprintf("%s r%d", m, d.SrcL)
	case isa.OpPOP, isa.OpCALL:
		return fmt.Sprintf("%s r%d", m, d.Dst)
	case isa.OpRET:
		return m
	default:
		return fmt.Sprintf("??? (0x%04x)", word)
	}
}

// Program renders every instruction in insts, one per line, prefixed with
// its byte address relative to dataEnd.
func Program(insts []isa.RawInst) []string {
	lines := make([]string, len(insts))
	for i, word := range insts {
		addr := isa.Addr(i) * isa.CellsPerInst
		lines[i] = fmt.Sprintf("0x%04x: %s", addr, One(word))
	}
	return lines
}
