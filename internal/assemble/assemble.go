/*
 * ShISA - Assembler entry point.
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
	"strings"

	"github.com/shisa-vm/shisa/binary"
)

// Report collects every lexical, grammar and label error found while
// assembling a source file. Assembling never stops at the first error.
type Report struct {
	Errors []error
}

func (r *Report) Error() string {
	lines := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		lines[i] = e.Error()
	}
	return fmt.Sprintf("%d error(s):\n%s", len(r.Errors), strings.Join(lines, "\n"))
}

// Assemble compiles ShISA assembly source into a Binary. On any lexical,
// grammar, or label error it returns a non-nil *Report listing every error
// found, rather than stopping at the first one.
func Assemble(src string) (binary.Binary, error) {
	toks, lexErrs := lex(src)
	if len(lexErrs) > 0 {
		return binary.Binary{}, &Report{Errors: lexErrs}
	}

	stmts, parseErrs := parse(toks)
	if len(parseErrs) > 0 {
		return binary.Binary{}, &Report{Errors: parseErrs}
	}

	bin, asmErrs := assemble(stmts)
	if len(asmErrs) > 0 {
		return binary.Binary{}, &Report{Errors: asmErrs}
	}
	return bin, nil
}
