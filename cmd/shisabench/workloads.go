/*
 * ShISA - Benchmark workload programs.
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

package main

import (
	"github.com/shisa-vm/shisa/binary"
	"github.com/shisa-vm/shisa/isa"
)

// Raw register numbers, matching the original benchmark program's naming.
// These are handed to isa.Encode directly; r0/r1 stay hardwired to 0 and 1
// as always, which every workload below relies on (e.g. "ADD rf, r0, r0"
// zeroes rf).
const (
	r0 = 0x0
	r1 = 0x1
	r2 = 0x2
	r3 = 0x3
	r4 = 0x4
	r5 = 0x5
	r6 = 0x6
	r7 = 0x7
	r8 = 0x8
	r9 = 0x9
	ra = 0xa
	rb = 0xb
	rc = 0xc
	rd = 0xd
	re = 0xe
	rf = 0xf
)

func i(op isa.Opcode, dst, srcL, srcR int) isa.RawInst {
	return isa.Encode(op, uint8(dst), uint8(srcL), uint8(srcR))
}

// maxInsts is the largest instruction count that fits in the 64KB cell
// address space, matching the original benchmark's MAX_N_INSTS.
const maxInsts = int(^isa.Addr(0)) / int(isa.CellsPerInst)

func nops(n int) []isa.RawInst {
	out := make([]isa.RawInst, n)
	for idx := range out {
		out[idx] = i(isa.OpADD, r0, r0, r0)
	}
	return out
}

// workloadOnlyNops is a binary consisting of nothing but the maximum
// possible number of no-op instructions: a baseline measuring raw
// per-instruction dispatch overhead.
func workloadOnlyNops() binary.Binary {
	return binary.New(nops(maxInsts), nil)
}

// workloadOneLoop decrements a counter loaded from data until it reaches
// zero, looping a short, fixed number of times.
func workloadOneLoop() binary.Binary {
	insts := []isa.RawInst{
		i(isa.OpADD, rf, r0, r0),
		i(isa.OpLD, r3, rf, r0),
		i(isa.OpADD, r2, r1, r1),
		i(isa.OpADD, rf, rf, r2),
		i(isa.OpLD, re, rf, r0),
		i(isa.OpADD, r4, r4, r1),
		i(isa.OpCMP, r5, r3, r4),
		i(isa.OpXOR, r5, r5, r1),
		i(isa.OpJTR, r0, r5, re),
		i(isa.OpADD, r0, r0, r0),
	}
	data := []binary.Data{0xffff, 0x000e}
	return binary.New(insts, data)
}

// workloadOneLongLoop is workloadOneLoop's counting body padded with nops
// until it fills the entire address space, measuring dispatch throughput
// over a realistically sized instruction stream rather than a handful of
// hot instructions.
func workloadOneLongLoop() binary.Binary {
	insts := []isa.RawInst{
		i(isa.OpADD, rf, r0, r0),
		i(isa.OpLD, r3, rf, r0),
		i(isa.OpADD, r2, r1, r1),
		i(isa.OpADD, rf, rf, r2),
		i(isa.OpLD, re, rf, r0),
		i(isa.OpADD, r4, r4, r1),
		i(isa.OpCMP, r5, r3, r4),
		i(isa.OpXOR, r5, r5, r1),
	}
	const nData = 2 // number of Data words below
	nNops := maxInsts - len(insts) - nData*2
	insts = append(insts, nops(nNops)...)
	insts = append(insts, i(isa.OpJTR, r0, r5, re))

	data := []binary.Data{0xffff, 0x000e}
	return binary.New(insts, data)
}

// workloadNestedLoops runs an inner counting loop inside an outer counting
// loop, exercising the jump-and-branch path at two nesting depths.
func workloadNestedLoops() binary.Binary {
	insts := []isa.RawInst{
		i(isa.OpADD, rf, r0, r0),
		i(isa.OpLD, r3, rf, r0),
		i(isa.OpADD, r2, r1, r1),
		i(isa.OpADD, rf, rf, r2),
		i(isa.OpLD, re, rf, r0),
		i(isa.OpADD, r4, r4, r1),
		i(isa.OpCMP, r5, r3, r4),
		i(isa.OpXOR, r5, r5, r1),
		i(isa.OpJTR, r0, r5, re), // inner loop
		i(isa.OpADD, r4, r0, r0),
		i(isa.OpADD, r6, r6, r1),
		i(isa.OpCMP, r5, r3, r6),
		i(isa.OpXOR, r5, r5, r1),
		i(isa.OpJTR, r0, r5, re), // outer loop
		i(isa.OpADD, r0, r0, r0),
	}
	data := []binary.Data{0x3fff, 0x000e}
	return binary.New(insts, data)
}

// workloadFunctionInLoop calls a small CALL/RET function from inside a
// counting loop once per iteration, exercising the stack discipline under
// load.
func workloadFunctionInLoop() binary.Binary {
	insts := []isa.RawInst{
		i(isa.OpADD, rf, r0, r0),  // rf = 0x0
		i(isa.OpADD, r2, r1, r1),  //
		i(isa.OpLD, re, rf, r0),   // load loop addr
		i(isa.OpADD, rf, rf, r2),  // rf = 0x2
		i(isa.OpLD, r6, rf, r0),   // load func addr
		i(isa.OpADD, rf, rf, r2),  // rf = 0x4
		i(isa.OpLD, r5, rf, r0),   // load func arg addr
		i(isa.OpADD, rf, rf, r2),  // rf = 0x6
		i(isa.OpADD, rf, rf, r2),  // rf = 0x8
		i(isa.OpLD, r7, rf, r0),   // load func ret addr
		i(isa.OpSUB, rf, rf, r2),  // rf = 0x6
		i(isa.OpSUB, rf, rf, r2),  // rf = 0x4
		i(isa.OpADD, r4, r4, r1),  //
		i(isa.OpST, r0, r5, r4),   // store func arg
		i(isa.OpCALL, r6, r0, r0), // call func
		i(isa.OpLD, r8, r7, r0),   // load func ret
		i(isa.OpJTR, r0, r8, re),  // loop jump
		i(isa.OpADD, rf, rf, r2),  // rf = 0x6
		i(isa.OpADD, rf, rf, r2),  // rf = 0x8
		i(isa.OpADD, rf, rf, r2),  // rf = 0xa
		i(isa.OpLD, rd, rf, r0),   // load end addr
		i(isa.OpJTR, r0, r0, rd),  // jump to end
		i(isa.OpADD, r2, r1, r1),  // func
		i(isa.OpLD, r3, rf, r0),   // load func arg addr
		i(isa.OpLD, r3, r3, r0),   // load func arg
		i(isa.OpADD, rf, rf, r2),  //
		i(isa.OpLD, r4, rf, r0),   // load n loops
		i(isa.OpCMP, r5, r3, r4),  //
		i(isa.OpXOR, r5, r5, r1),  //
		i(isa.OpADD, rf, rf, r2),  //
		i(isa.OpADD, r0, r0, r0),  //
		i(isa.OpLD, r6, rf, r0),   // load func ret addr
		i(isa.OpST, r0, r6, r5),   // store return value
		i(isa.OpRET, r0, r0, r0),  //
		i(isa.OpADD, r0, r0, r0),  //
	}
	data := []binary.Data{
		0x0024, // loopAddr
		0x0038, // funcAddr
		0x8000, // funcArgAddr
		0xffff, // nLoops
		0x8002, // funcRetAddr
		0x0050, // instEnd
	}
	return binary.New(insts, data)
}

// workloadFunctionWithNopsInLoop is workloadFunctionInLoop padded with nops
// until it fills the address space, measuring call/return overhead over a
// realistically sized instruction stream.
func workloadFunctionWithNopsInLoop() binary.Binary {
	insts := []isa.RawInst{
		i(isa.OpADD, rf, r0, r0),  // rf = 0x0
		i(isa.OpADD, r2, r1, r1),  //
		i(isa.OpLD, re, rf, r0),   // load loop addr
		i(isa.OpADD, rf, rf, r2),  // rf = 0x2
		i(isa.OpLD, r6, rf, r0),   // load func addr
		i(isa.OpADD, rf, rf, r2),  // rf = 0x4
		i(isa.OpLD, r5, rf, r0),   // load func arg addr
		i(isa.OpADD, rf, rf, r2),  // rf = 0x6
		i(isa.OpADD, rf, rf, r2),  // rf = 0x8
		i(isa.OpLD, r7, rf, r0),   // load func ret addr
		i(isa.OpSUB, rf, rf, r2),  // rf = 0x6
		i(isa.OpSUB, rf, rf, r2),  // rf = 0x4
		i(isa.OpADD, r4, r4, r1),  //
		i(isa.OpST, r0, r5, r4),   // store func arg
		i(isa.OpCALL, r6, r0, r0), // call func
		i(isa.OpLD, r8, r7, r0),   // load func ret
		i(isa.OpJTR, r0, r8, re),  // loop jump
		i(isa.OpADD, rf, rf, r2),  // rf = 0x6
		i(isa.OpADD, rf, rf, r2),  // rf = 0x8
		i(isa.OpADD, rf, rf, r2),  // rf = 0xa
		i(isa.OpLD, rd, rf, r0),   // load end addr
		i(isa.OpJTR, r0, r0, rd),  // jump to end
		i(isa.OpADD, r2, r1, r1),  // func
		i(isa.OpLD, r3, rf, r0),   // load func arg addr
		i(isa.OpLD, r3, r3, r0),   // load func arg
		i(isa.OpADD, rf, rf, r2),  //
		i(isa.OpLD, r4, rf, r0),   // load n loops
		i(isa.OpCMP, r5, r3, r4),  //
		i(isa.OpXOR, r5, r5, r1),  //
		i(isa.OpADD, rf, rf, r2),  //
		i(isa.OpADD, r0, r0, r0),  //
		i(isa.OpLD, r6, rf, r0),   // load func ret addr
		i(isa.OpST, r0, r6, r5),   // store return value
	}
	funcEnd := []isa.RawInst{
		i(isa.OpRET, r0, r0, r0),
		i(isa.OpADD, r0, r0, r0),
	}
	data := []binary.Data{
		0x0024, // loopAddr
		0x0038, // funcAddr
		0xfffc, // funcArgAddr
		0xffff, // nLoops
		0xfffe, // funcRetAddr
		0xeff6, // instEnd
	}

	const stackOffsetInsts = int(isa.StackOffset) / int(isa.CellsPerInst)
	const regSpillInsts = 2 * 2 // 2 * sizeof(Reg)/sizeof(Cell), in the original's instruction-sized units
	nNops := maxInsts - len(insts) - len(funcEnd) - len(data) - stackOffsetInsts - regSpillInsts

	insts = append(insts, nops(nNops)...)
	insts = append(insts, funcEnd...)
	return binary.New(insts, data)
}

// workloadFibonacci fills an array in RAM with the first n Fibonacci
// numbers via a recursive-shaped CALL/RET function, driven by a counting
// loop: the workload most representative of a real small program rather
// than a synthetic loop.
func workloadFibonacci() binary.Binary {
	insts := []isa.RawInst{
		i(isa.OpADD, rf, r0, r0),  // rf = 0x0
		i(isa.OpADD, r2, r1, r1),  // r2 = 0x2
		i(isa.OpLD, re, rf, r0),   // load loop addr
		i(isa.OpADD, rf, rf, r2),  // rf = 0x2
		i(isa.OpLD, r5, rf, r0),   // load n numbers
		i(isa.OpADD, rf, rf, r2),  // rf = 0x4
		i(isa.OpLD, r6, rf, r0),   // load func addr
		i(isa.OpADD, rf, rf, r2),  // rf = 0x6
		i(isa.OpLD, r7, rf, r0),   // load func arg addr
		i(isa.OpADD, r4, r0, r0),  // r4 = 0x0
		i(isa.OpST, r0, r7, r4),   // store func arg, loop start
		i(isa.OpCALL, r6, r0, r0), // call func
		i(isa.OpADD, r4, r4, r1),  // r4 += 1
		i(isa.OpCMP, r8, r4, r5),  //
		i(isa.OpXOR, r8, r8, r1),  // if nth number is calculated
		i(isa.OpJTR, r0, r8, re),  // loop jump
		i(isa.OpADD, rf, rf, r2),  // rf = 0x8
		i(isa.OpADD, rf, rf, r2),  // rf = 0xa
		i(isa.OpADD, rf, rf, r2),  // rf = 0xc
		i(isa.OpLD, rd, rf, r0),   // load end addr
		i(isa.OpJTR, r0, r0, rd),  // jump to end
		i(isa.OpADD, r2, r1, r1),  // func
		i(isa.OpLD, r3, rf, r0),   // load func arg addr
		i(isa.OpLD, r3, r3, r0),   // load func arg
		i(isa.OpADD, rf, rf, r2),  // rf = 0x8
		i(isa.OpLD, re, rf, r0),   // load array address
		i(isa.OpADD, rf, rf, r2),  // rf = 0xa
		i(isa.OpLD, rd, rf, r0),   // load jump addr if arg > 2
		i(isa.OpCMP, r4, r3, r0),  // r4 = r3 != r0
		i(isa.OpCMP, r5, r3, r1),  // r5 = r3 != r1
		i(isa.OpXOR, r6, r5, r4),  // r6 = r5 | r4
		i(isa.OpADD, r0, r0, r0),  //
		i(isa.OpJTR, r0, r6, rd),  // jump if arg > 2
		i(isa.OpMUL, r7, r3, r2),  // r7 = r3 * r2, elem offset
		i(isa.OpADD, r8, re, r7),  // elem addr
		i(isa.OpST, r0, r8, r1),   // store 1 for i < 2
		i(isa.OpRET, r0, r0, r0),  //
		i(isa.OpMUL, r4, r3, r2),  // r4 = r3 * r2, elem offset
		i(isa.OpADD, r5, re, r4),  // arr[i] addr
		i(isa.OpSUB, r6, r5, r2),  // arr[i-1] addr
		i(isa.OpLD, r7, r6, r0),   // load arr[i-1]
		i(isa.OpSUB, r8, r6, r2),  // arr[i-2] addr
		i(isa.OpLD, r9, r8, r0),   // load arr[i-2]
		i(isa.OpADD, ra, r7, r9),  // arr[i] = arr[i-1] + arr[i-2]
		i(isa.OpST, r0, r5, ra),   // store arr[i]
		i(isa.OpRET, r0, r0, r0),  //
		i(isa.OpNOT, r0, r0, r0),  //
	}

	const n = 0x7000
	const cellsPerData = 2
	fibArray := binary.Data(0x10000 - cellsPerData*(n+1))
	data := []binary.Data{
		0x0022,   // loopAddr
		n,        // n
		0x0038,   // funcAddr
		0xfffe,   // funcArgAddr
		fibArray, // fibArray
		0x0058,   // funcJmp
		0x006c,   // instEnd
	}
	return binary.New(insts, data)
}

type workload struct {
	name  string
	build func() binary.Binary
}

var workloads = []workload{
	{"ONLY_NOPS", workloadOnlyNops},
	{"ONE_LOOP", workloadOneLoop},
	{"ONE_LONG_LOOP", workloadOneLongLoop},
	{"NESTED_LOOPS", workloadNestedLoops},
	{"FUNCTION_IN_LOOP", workloadFunctionInLoop},
	{"FUNCTION_WITH_NOPS_IN_LOOP", workloadFunctionWithNopsInLoop},
	{"FIBONACCI", workloadFibonacci},
}
