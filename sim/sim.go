/*
 * ShISA - Execution engine: four dispatch variants sharing one handler set.
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

// Package sim provides four interchangeable execution engines over the same
// CPU state and instruction handlers, differing only in how executeOne
// selects a handler: switch-dispatched, table-dispatched, predecoded, and
// predecoded+table. All four must produce identical register/memory state
// for any valid program; they exist to measure interpreter dispatch
// overhead, not to change semantics.
package sim

import (
	"errors"
	"io"

	"github.com/shisa-vm/shisa/binary"
	"github.com/shisa-vm/shisa/cpu"
	"github.com/shisa-vm/shisa/isa"
)

// Engine is the capability every dispatch variant implements: step one
// instruction, run to completion, and expose the underlying CPU state for
// inspection (by the monitor, the disassembler, or a test).
type Engine interface {
	ExecuteOne() error
	ExecuteAll() error
	State() *cpu.CPU
}

// Variant names a dispatch strategy, for CLI selection and the benchmark
// harness.
type Variant string

const (
	VariantSwitched              Variant = "switched"
	VariantSubroutined           Variant = "subroutined"
	VariantPredecoded            Variant = "predecoded"
	VariantPredecodedSubroutined Variant = "predecoded-subroutined"
)

// Variants lists every known Variant, in a stable order.
var Variants = []Variant{VariantSwitched, VariantSubroutined, VariantPredecoded, VariantPredecodedSubroutined}

// New constructs the engine named by v over binary b. It panics if v is not
// one of the Variants - that is a programming error, not a runtime fault.
func New(v Variant, b binary.Binary) Engine {
	switch v {
	case VariantSwitched:
		return NewSwitched(b)
	case VariantSubroutined:
		return NewSubroutined(b)
	case VariantPredecoded:
		return NewPredecoded(b)
	case VariantPredecodedSubroutined:
		return NewPredecodedSubroutined(b)
	default:
		panic("sim: unknown variant " + string(v))
	}
}

// base is embedded by every dispatch variant. It owns the CPU and
// implements the instruction semantics shared across all four engines; the
// only thing a variant adds is how it gets from a raw instruction word to
// one of these calls.
type base struct {
	cpu *cpu.CPU
}

func newBase(b binary.Binary) base {
	c := cpu.New()
	c.LoadBin(b)
	return base{cpu: c}
}

// State returns the underlying CPU state.
func (s *base) State() *cpu.CPU { return s.cpu }

// DumpState writes the CPU's state to w.
func (s *base) DumpState(w io.Writer) { s.cpu.Dump(w) }

func (s *base) processAdd(dst, srcL, srcR uint8) error {
	s.cpu.Regs.Write(int(dst), s.cpu.Regs.Read(int(srcL))+s.cpu.Regs.Read(int(srcR)))
	return nil
}

func (s *base) processSub(dst, srcL, srcR uint8) error {
	s.cpu.Regs.Write(int(dst), s.cpu.Regs.Read(int(srcL))-s.cpu.Regs.Read(int(srcR)))
	return nil
}

func (s *base) processMul(dst, srcL, srcR uint8) error {
	s.cpu.Regs.Write(int(dst), s.cpu.Regs.Read(int(srcL))*s.cpu.Regs.Read(int(srcR)))
	return nil
}

func (s *base) processDiv(dst, srcL, srcR uint8) error {
	r := s.cpu.Regs.Read(int(srcR))
	if r == 0 {
		// Soft halt: division by zero does not raise. The next fetch
		// surfaces ProgramEnd instead of crashing the host. Maybe needs
		// MMIO later.
		s.cpu.SetPCToEnd()
		return nil
	}
	s.cpu.Regs.Write(int(dst), s.cpu.Regs.Read(int(srcL))/r)
	return nil
}

func (s *base) processAnd(dst, srcL, srcR uint8) error {
	s.cpu.Regs.Write(int(dst), s.cpu.Regs.Read(int(srcL))&s.cpu.Regs.Read(int(srcR)))
	return nil
}

func (s *base) processOr(dst, srcL, srcR uint8) error {
	s.cpu.Regs.Write(int(dst), s.cpu.Regs.Read(int(srcL))|s.cpu.Regs.Read(int(srcR)))
	return nil
}

func (s *base) processXor(dst, srcL, srcR uint8) error {
	s.cpu.Regs.Write(int(dst), s.cpu.Regs.Read(int(srcL))^s.cpu.Regs.Read(int(srcR)))
	return nil
}

func (s *base) processNot(dst, srcL, _ uint8) error {
	s.cpu.Regs.Write(int(dst), ^s.cpu.Regs.Read(int(srcL)))
	return nil
}

// processCmp is a wrapping subtract - zero iff equal - not a three-way
// comparison. Generated programs XOR the result with 1 to get a 0/1 branch
// predicate.
func (s *base) processCmp(dst, srcL, srcR uint8) error {
	s.cpu.Regs.Write(int(dst), s.cpu.Regs.Read(int(srcL))-s.cpu.Regs.Read(int(srcR)))
	return nil
}

// processJmpTrue takes the branch when the predicate register reads zero.
func (s *base) processJmpTrue(_, srcL, srcR uint8) error {
	if s.cpu.Regs.Read(int(srcL)) == 0 {
		return s.cpu.SetPC(s.cpu.Regs.Read(int(srcR)))
	}
	return nil
}

func (s *base) processLoad(dst, srcL, _ uint8) error {
	addr := s.cpu.Regs.Read(int(srcL))
	s.cpu.Regs.Write(int(dst), s.cpu.ReadWordFromRAM(addr))
	return nil
}

func (s *base) processStore(_, srcL, srcR uint8) error {
	addr := s.cpu.Regs.Read(int(srcL))
	s.cpu.WriteWordToRAM(addr, s.cpu.Regs.Read(int(srcR)))
	return nil
}

func (s *base) processPush(_, srcL, _ uint8) error {
	return s.cpu.StoreRegOnStack(int(srcL))
}

func (s *base) processPop(dst, _, _ uint8) error {
	return s.cpu.LoadRegFromStack(int(dst))
}

func (s *base) processCall(dst, _, _ uint8) error {
	target := s.cpu.Regs.Read(int(dst))
	if err := s.cpu.StorePCOnStack(); err != nil {
		return err
	}
	if err := s.cpu.StoreRegsOnStack(); err != nil {
		return err
	}
	return s.cpu.SetPC(target)
}

func (s *base) processRet(_, _, _ uint8) error {
	if err := s.cpu.LoadRegsFromStack(); err != nil {
		return err
	}
	return s.cpu.LoadPCFromStack()
}

// dispatch runs op's handler with the given operands. Shared by the
// switched and predecoded variants.
func (s *base) dispatch(op isa.Opcode, dst, srcL, srcR uint8) error {
	switch op {
	case isa.OpADD:
		return s.processAdd(dst, srcL, srcR)
	case isa.OpSUB:
		return s.processSub(dst, srcL, srcR)
	case isa.OpMUL:
		return s.processMul(dst, srcL, srcR)
	case isa.OpDIV:
		return s.processDiv(dst, srcL, srcR)
	case isa.OpAND:
		return s.processAnd(dst, srcL, srcR)
	case isa.OpOR:
		return s.processOr(dst, srcL, srcR)
	case isa.OpXOR:
		return s.processXor(dst, srcL, srcR)
	case isa.OpNOT:
		return s.processNot(dst, srcL, srcR)
	case isa.OpCMP:
		return s.processCmp(dst, srcL, srcR)
	case isa.OpJTR:
		return s.processJmpTrue(dst, srcL, srcR)
	case isa.OpLD:
		return s.processLoad(dst, srcL, srcR)
	case isa.OpST:
		return s.processStore(dst, srcL, srcR)
	case isa.OpPUSH:
		return s.processPush(dst, srcL, srcR)
	case isa.OpPOP:
		return s.processPop(dst, srcL, srcR)
	case isa.OpCALL:
		return s.processCall(dst, srcL, srcR)
	case isa.OpRET:
		return s.processRet(dst, srcL, srcR)
	default:
		return &isa.InvalidInstError{Op: op}
	}
}

// routine is one entry of a handler table, keyed by opcode value.
type routine func(s *base, dst, srcL, srcR uint8) error

// routines is the handler table used by the subroutined and
// predecoded+subroutined variants: an array of handlers indexed by opcode
// value, built once and shared by every instance (the handlers are stateless
// functions; all per-simulator state lives in *base).
var routines = [16]routine{
	isa.OpADD:  func(s *base, d, l, r uint8) error { return s.processAdd(d, l, r) },
	isa.OpSUB:  func(s *base, d, l, r uint8) error { return s.processSub(d, l, r) },
	isa.OpMUL:  func(s *base, d, l, r uint8) error { return s.processMul(d, l, r) },
	isa.OpDIV:  func(s *base, d, l, r uint8) error { return s.processDiv(d, l, r) },
	isa.OpAND:  func(s *base, d, l, r uint8) error { return s.processAnd(d, l, r) },
	isa.OpOR:   func(s *base, d, l, r uint8) error { return s.processOr(d, l, r) },
	isa.OpXOR:  func(s *base, d, l, r uint8) error { return s.processXor(d, l, r) },
	isa.OpNOT:  func(s *base, d, l, r uint8) error { return s.processNot(d, l, r) },
	isa.OpCMP:  func(s *base, d, l, r uint8) error { return s.processCmp(d, l, r) },
	isa.OpJTR:  func(s *base, d, l, r uint8) error { return s.processJmpTrue(d, l, r) },
	isa.OpLD:   func(s *base, d, l, r uint8) error { return s.processLoad(d, l, r) },
	isa.OpST:   func(s *base, d, l, r uint8) error { return s.processStore(d, l, r) },
	isa.OpPUSH: func(s *base, d, l, r uint8) error { return s.processPush(d, l, r) },
	isa.OpPOP:  func(s *base, d, l, r uint8) error { return s.processPop(d, l, r) },
	isa.OpCALL: func(s *base, d, l, r uint8) error { return s.processCall(d, l, r) },
	isa.OpRET:  func(s *base, d, l, r uint8) error { return s.processRet(d, l, r) },
}

func (s *base) dispatchTable(op isa.Opcode, dst, srcL, srcR uint8) error {
	if !op.Valid() {
		return &isa.InvalidInstError{Op: op}
	}
	fn := routines[op]
	if fn == nil {
		return &isa.InvalidInstError{Op: op}
	}
	return fn(s, dst, srcL, srcR)
}

// executeAll drives e.ExecuteOne until ProgramEnd is raised, which it
// converts to a nil (success) return. Any other error propagates.
func executeAll(e Engine) error {
	for {
		err := e.ExecuteOne()
		if err == nil {
			continue
		}
		if errors.Is(err, isa.ErrProgramEnd) {
			return nil
		}
		return err
	}
}
