/*
 * ShISA - Binary container text encoding.
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

package binary

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shisa-vm/shisa/isa"
)

// WriteText serializes b to a plain hex listing, one value per line: the
// instruction stream under a "# insts" marker followed by the data segment
// under a "# data" marker. This is the on-disk form cmd/shisaasm writes and
// the driver loads.
func WriteText(w io.Writer, b Binary) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# insts: %d\n", b.NumInsts())
	for _, inst := range b.insts {
		fmt.Fprintf(bw, "0x%04x\n", inst)
	}
	fmt.Fprintf(bw, "# data: %d\n", b.NumData())
	for _, d := range b.data {
		fmt.Fprintf(bw, "0x%04x\n", d)
	}
	return bw.Flush()
}

// ReadText parses the format WriteText produces.
func ReadText(r io.Reader) (Binary, error) {
	scanner := bufio.NewScanner(r)

	var insts []isa.RawInst
	var data []Data
	section := ""

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "# insts"):
			section = "insts"
			continue
		case strings.HasPrefix(line, "# data"):
			section = "data"
			continue
		case strings.HasPrefix(line, "#"):
			continue
		}

		v, err := strconv.ParseUint(line, 0, 16)
		if err != nil {
			return Binary{}, fmt.Errorf("binary: invalid line %q: %w", line, err)
		}
		switch section {
		case "insts":
			insts = append(insts, isa.RawInst(v))
		case "data":
			data = append(data, Data(v))
		default:
			return Binary{}, fmt.Errorf("binary: value %q outside any section", line)
		}
	}
	if err := scanner.Err(); err != nil {
		return Binary{}, err
	}
	return New(insts, data), nil
}
