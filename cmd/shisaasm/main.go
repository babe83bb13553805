/*
 * ShISA - Assembler command-line driver.
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

// Command shisaasm compiles ShISA assembly source into the text binary
// format the driver loads.
package main

import (
	"fmt"
	"os"

	getopt "github.com/pborman/getopt/v2"

	"github.com/shisa-vm/shisa/binary"
	"github.com/shisa-vm/shisa/internal/assemble"
	"github.com/shisa-vm/shisa/internal/disasm"
)

func main() {
	optOutput := getopt.StringLong("output", 'o', "", "Output file (default: stdout)")
	optVerbose := getopt.BoolLong("verbose", 'v', "Print a disassembly listing to stderr")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.SetParameters("<source-file>")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	args := getopt.Args()
	if len(args) != 1 {
		getopt.Usage()
		os.Exit(1)
	}

	src, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, "shisaasm:", err)
		os.Exit(1)
	}

	bin, err := assemble.Assemble(string(src))
	if err != nil {
		fmt.Fprintln(os.Stderr, "shisaasm: assembly failed:")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *optVerbose {
		for _, line := range disasm.Program(bin.Insts()) {
			fmt.Fprintln(os.Stderr, line)
		}
	}

	out := os.Stdout
	if *optOutput != "" {
		f, err := os.Create(*optOutput)
		if err != nil {
			fmt.Fprintln(os.Stderr, "shisaasm:", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	if err := binary.WriteText(out, bin); err != nil {
		fmt.Fprintln(os.Stderr, "shisaasm:", err)
		os.Exit(1)
	}
}
