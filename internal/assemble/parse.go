/*
 * ShISA - Assembler grammar parser.
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

	"github.com/shisa-vm/shisa/isa"
)

// mnemonics is the set of opcode words the assembler's text grammar
// recognizes. It deliberately excludes "xor": XOR-encoded instructions are
// only produced programmatically (by the benchmark generator), never from
// source text.
var mnemonics = map[string]isa.Opcode{
	"add": isa.OpADD, "sub": isa.OpSUB, "mul": isa.OpMUL, "div": isa.OpDIV,
	"and": isa.OpAND, "or": isa.OpOR, "not": isa.OpNOT, "cmp": isa.OpCMP,
	"jtr": isa.OpJTR, "ld": isa.OpLD, "st": isa.OpST,
	"push": isa.OpPUSH, "pop": isa.OpPOP, "call": isa.OpCALL, "ret": isa.OpRET,
}

func isMnemonic(f string) bool {
	_, ok := mnemonics[lower(f)]
	return ok
}

func lower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c - 'A' + 'a'
		}
	}
	return string(b)
}

// operandKind distinguishes the two things an operand token can denote: a
// register, or a label to be resolved to an address later.
type operandKind int

const (
	operandReg operandKind = iota
	operandLabel
)

type operand struct {
	kind  operandKind
	reg   int
	label string
}

// statement is one parsed line: either a label definition or an
// instruction with its operand list.
type statement struct {
	line int

	isLabelDef bool
	labelName  string

	op       isa.Opcode
	operands []operand
}

// parseError reports a grammar problem at a specific source line.
type parseError struct {
	line int
	msg  string
}

func (e *parseError) Error() string { return fmt.Sprintf("line %d: %s", e.line, e.msg) }

// parse consumes a token stream produced by lex and returns the statement
// list. As with lex, every malformed line is reported; parsing does not
// stop at the first error.
func parse(toks []token) ([]statement, []error) {
	var stmts []statement
	var errs []error

	i := 0
	for toks[i].kind != tokEOF {
		if toks[i].kind == tokNewline {
			i++
			continue
		}

		lineToks, next := takeLine(toks, i)
		i = next

		stmt, err := parseLine(lineToks)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		stmts = append(stmts, stmt)
	}
	return stmts, errs
}

// takeLine returns the tokens up to (not including) the next newline or
// EOF, and the index to resume scanning from.
func takeLine(toks []token, start int) ([]token, int) {
	i := start
	for toks[i].kind != tokNewline && toks[i].kind != tokEOF {
		i++
	}
	line := toks[start:i]
	if toks[i].kind == tokNewline {
		i++
	}
	return line, i
}

func parseLine(line []token) (statement, error) {
	lineNo := line[0].line

	// LABEL:
	if len(line) == 2 && line[0].kind == tokLabel && line[1].kind == tokColon {
		return statement{line: lineNo, isLabelDef: true, labelName: line[0].text}, nil
	}

	if line[0].kind != tokMnemonic {
		return statement{}, &parseError{lineNo, "expected an opcode mnemonic, got " + line[0].text}
	}
	op := mnemonics[line[0].text]
	rest := line[1:]

	switch op {
	case isa.OpADD, isa.OpSUB, isa.OpMUL, isa.OpDIV, isa.OpAND, isa.OpOR, isa.OpCMP:
		return parseOperands(op, lineNo, rest, []operandKind{operandReg, operandReg, operandReg})
	case isa.OpNOT, isa.OpLD, isa.OpST:
		return parseOperands(op, lineNo, rest, []operandKind{operandReg, operandReg})
	case isa.OpJTR:
		return parseOperands(op, lineNo, rest, []operandKind{operandReg, operandLabelOrReg})
	case isa.OpPUSH, isa.OpPOP, isa.OpCALL:
		return parseOperands(op, lineNo, rest, []operandKind{operandReg})
	default: // isa.OpRET
		if len(rest) != 0 {
			return statement{}, &parseError{lineNo, "ret takes no operands"}
		}
		return statement{line: lineNo, op: op}, nil
	}
}

// operandLabelOrReg is a pseudo-kind only used by the want-list in
// parseOperands: the position may hold either a register or a label.
const operandLabelOrReg operandKind = 99

func parseOperands(op isa.Opcode, lineNo int, toks []token, want []operandKind) (statement, error) {
	if len(toks) != len(want) {
		return statement{}, &parseError{lineNo, fmt.Sprintf("%s takes %d operand(s), got %d", op, len(want), len(toks))}
	}
	operands := make([]operand, len(toks))
	for i, k := range want {
		t := toks[i]
		switch k {
		case operandReg:
			if t.kind != tokRegister {
				return statement{}, &parseError{lineNo, fmt.Sprintf("%s: operand %d must be a register, got %s", op, i+1, t.text)}
			}
			operands[i] = operand{kind: operandReg, reg: t.reg}
		case operandLabelOrReg:
			switch t.kind {
			case tokRegister:
				operands[i] = operand{kind: operandReg, reg: t.reg}
			case tokLabel:
				operands[i] = operand{kind: operandLabel, label: t.text}
			default:
				return statement{}, &parseError{lineNo, fmt.Sprintf("%s: operand %d must be a register or a label, got %s", op, i+1, t.text)}
			}
		}
	}
	return statement{line: lineNo, op: op, operands: operands}, nil
}
