/*
 * ShISA - Assembler lexer.
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

// Package assemble turns ShISA assembly source into a binary.Binary: a
// lexer (this file), a line-grammar parser, and a two-pass label resolver.
package assemble

import (
	"fmt"
	"strings"
	"unicode"
)

type tokenKind int

const (
	tokMnemonic tokenKind = iota
	tokRegister
	tokLabel
	tokColon
	tokNewline
	tokEOF
)

type token struct {
	kind tokenKind
	text string
	reg  int // valid when kind == tokRegister
	line int
}

// lexError reports a lexical problem at a specific source line.
type lexError struct {
	line int
	msg  string
}

func (e *lexError) Error() string { return fmt.Sprintf("line %d: %s", e.line, e.msg) }

// lex tokenizes src. It never stops at the first error: every bad token on
// every line is collected so the caller can report them all at once.
func lex(src string) ([]token, []error) {
	var toks []token
	var errs []error

	lines := strings.Split(src, "\n")
	for i, raw := range lines {
		lineNo := i + 1
		line := raw
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		fields := splitFields(line)
		for _, f := range fields {
			tok, err := lexField(f, lineNo)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			toks = append(toks, tok)
		}
		if len(fields) > 0 {
			toks = append(toks, token{kind: tokNewline, line: lineNo})
		}
	}
	toks = append(toks, token{kind: tokEOF, line: len(lines) + 1})
	return toks, errs
}

// splitFields breaks a line into whitespace- and colon-separated fields.
// Each colon is split off from the identifier before it and kept as a
// field of its own.
func splitFields(line string) []string {
	var out []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			out = append(out, cur.String())
			cur.Reset()
		}
	}
	for _, r := range line {
		switch {
		case unicode.IsSpace(r):
			flush()
		case r == ':':
			flush()
			out = append(out, ":")
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return out
}

func lexField(f string, lineNo int) (token, error) {
	switch {
	case f == ":":
		return token{kind: tokColon, text: f, line: lineNo}, nil
	case isRegisterName(f):
		n := regNumber(f)
		return token{kind: tokRegister, text: f, reg: n, line: lineNo}, nil
	case isMnemonic(f):
		return token{kind: tokMnemonic, text: strings.ToLower(f), line: lineNo}, nil
	case isLabelName(f):
		return token{kind: tokLabel, text: f, line: lineNo}, nil
	default:
		return token{}, &lexError{line: lineNo, msg: "unrecognized token " + f}
	}
}

func isRegisterName(f string) bool {
	if len(f) < 2 || len(f) > 3 || f[0] != 'r' {
		return false
	}
	n := regNumber(f)
	return n >= 0 && n < 16
}

func regNumber(f string) int {
	n := 0
	for _, r := range f[1:] {
		if r < '0' || r > '9' {
			return -1
		}
		n = n*10 + int(r-'0')
	}
	return n
}

func isLabelName(f string) bool {
	if f == "" {
		return false
	}
	for _, r := range f {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
