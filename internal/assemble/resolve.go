/*
 * ShISA - Assembler label resolution and code generation.
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

package assemble

import (
	"fmt"

	"github.com/shisa-vm/shisa/binary"
	"github.com/shisa-vm/shisa/isa"
)

// Assembled programs carry no data segment: the grammar has no directive
// for one, and jtr's label form materializes its target address with
// arithmetic instead of loading it from data (see expandLabelJump).
// dataEnd is therefore always 0 and label addresses are instruction
// indices times isa.CellsPerInst.

// addrAccReg and addrTwoReg are reserved by the assembler to materialize a
// jtr target address from a label. Source that also uses r13 or r14 around
// a label-form jtr will have those registers clobbered; this is a known
// trade-off of expressing an absolute jump target in an ISA with no
// immediate-load instruction.
const (
	addrTwoReg = 13
	addrAccReg = 14
)

// labelJumpSize is the number of raw instructions a single `jtr reg LABEL`
// statement expands to: two setup instructions (the constant two and the
// zeroed accumulator), 16 double-and-add-bit steps, and the final jtr.
const labelJumpSize = 2 + 2*16 + 1

// resolveError reports a problem found during label resolution, such as an
// undefined or duplicated label.
type resolveError struct {
	line int
	msg  string
}

func (e *resolveError) Error() string { return fmt.Sprintf("line %d: %s", e.line, e.msg) }

// sizeOf returns how many raw instructions stmt expands to.
func sizeOf(stmt statement) int {
	if stmt.isLabelDef {
		return 0
	}
	if stmt.op == isa.OpJTR && stmt.operands[1].kind == operandLabel {
		return labelJumpSize
	}
	return 1
}

// assemble turns a parsed statement list into a binary.Binary. Label
// addresses are resolved in a first pass (every statement's expansion size
// is fixed and independent of any address, so one pass suffices), then code
// is generated in a second pass now that every label's address is known.
func assemble(stmts []statement) (binary.Binary, []error) {
	labels := map[string]isa.Addr{}
	var errs []error

	idx := 0
	for _, s := range stmts {
		if s.isLabelDef {
			if _, dup := labels[s.labelName]; dup {
				errs = append(errs, &resolveError{s.line, "duplicate label " + s.labelName})
				continue
			}
			labels[s.labelName] = isa.Addr(idx) * isa.CellsPerInst
			continue
		}
		idx += sizeOf(s)
	}

	for _, s := range stmts {
		if !s.isLabelDef && s.op == isa.OpJTR && s.operands[1].kind == operandLabel {
			if _, ok := labels[s.operands[1].label]; !ok {
				errs = append(errs, &resolveError{s.line, "undefined label " + s.operands[1].label})
			}
		}
	}
	if len(errs) > 0 {
		return binary.Binary{}, errs
	}

	var insts []isa.RawInst
	for _, s := range stmts {
		if s.isLabelDef {
			continue
		}
		insts = append(insts, codegen(s, labels)...)
	}
	return binary.New(insts, nil), nil
}

// codegen emits the raw instruction(s) for one statement. Every opcode has
// exactly one encoding shape except jtr-with-label, which expands to
// labelJumpSize instructions.
func codegen(s statement, labels map[string]isa.Addr) []isa.RawInst {
	switch s.op {
	case isa.OpADD, isa.OpSUB, isa.OpMUL, isa.OpDIV, isa.OpAND, isa.OpOR, isa.OpCMP:
		return []isa.RawInst{isa.Encode(s.op, reg(s, 0), reg(s, 1), reg(s, 2))}

	case isa.OpNOT, isa.OpLD:
		return []isa.RawInst{isa.Encode(s.op, reg(s, 0), reg(s, 1), 0)}

	case isa.OpST:
		// st addrReg valueReg -> dst unused, srcL=addr, srcR=value.
		return []isa.RawInst{isa.Encode(s.op, 0, reg(s, 0), reg(s, 1))}

	case isa.OpPUSH:
		return []isa.RawInst{isa.Encode(s.op, 0, reg(s, 0), 0)}

	case isa.OpPOP:
		return []isa.RawInst{isa.Encode(s.op, reg(s, 0), 0, 0)}

	case isa.OpCALL:
		return []isa.RawInst{isa.Encode(s.op, reg(s, 0), 0, 0)}

	case isa.OpRET:
		return []isa.RawInst{isa.Encode(s.op, 0, 0, 0)}

	case isa.OpJTR:
		pred := reg(s, 0)
		if s.operands[1].kind == operandReg {
			return []isa.RawInst{isa.Encode(s.op, 0, pred, uint8(s.operands[1].reg))}
		}
		target := labels[s.operands[1].label]
		return expandLabelJump(pred, target)
	}

	panic("assemble: unreachable opcode " + s.op.String())
}

func reg(s statement, i int) uint8 { return uint8(s.operands[i].reg) }

// expandLabelJump materializes the absolute address target into addrAccReg
// using a fixed-length double-and-add-bit sequence (MSB first), then emits
// the jtr. The instruction count does not depend on target's value, only on
// its bit width, which keeps label addresses computable in a single pass.
func expandLabelJump(pred uint8, target isa.Addr) []isa.RawInst {
	out := make([]isa.RawInst, 0, labelJumpSize)
	out = append(out, isa.Encode(isa.OpADD, addrTwoReg, 1, 1))    // two = 1 + 1
	out = append(out, isa.Encode(isa.OpADD, addrAccReg, 0, 0))    // acc = 0 + 0

	for bit := 15; bit >= 0; bit-- {
		out = append(out, isa.Encode(isa.OpMUL, addrAccReg, addrAccReg, addrTwoReg))
		addend := uint8(0)
		if target&(1<<uint(bit)) != 0 {
			addend = 1
		}
		out = append(out, isa.Encode(isa.OpADD, addrAccReg, addrAccReg, addend))
	}

	out = append(out, isa.Encode(isa.OpJTR, 0, pred, addrAccReg))
	return out
}
