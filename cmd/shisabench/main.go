/*
 * ShISA - Benchmark harness.
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

// Command shisabench runs a fixed set of representative programs across
// all four dispatch variants and reports wall-clock time for each
// workload/variant pair.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	getopt "github.com/pborman/getopt/v2"

	"github.com/shisa-vm/shisa/sim"
)

func main() {
	optOnly := getopt.StringLong("workload", 'w', "", "Run only the named workload")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	selected := workloads
	if *optOnly != "" {
		selected = nil
		for _, w := range workloads {
			if w.name == *optOnly {
				selected = append(selected, w)
			}
		}
		if len(selected) == 0 {
			fmt.Fprintln(os.Stderr, "shisabench: unknown workload:", *optOnly)
			os.Exit(1)
		}
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "WORKLOAD\tVARIANT\tELAPSED")

	for _, w := range selected {
		bin := w.build()
		for _, v := range sim.Variants {
			eng := sim.New(v, bin)
			start := time.Now()
			if err := eng.ExecuteAll(); err != nil {
				fmt.Fprintf(os.Stderr, "shisabench: %s/%s: %v\n", w.name, v, err)
				os.Exit(1)
			}
			elapsed := time.Since(start)
			fmt.Fprintf(tw, "%s\t%s\t%s\n", w.name, v, elapsed)
		}
	}

	tw.Flush()
}
