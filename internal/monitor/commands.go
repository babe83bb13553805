/*
 * ShISA - Monitor commands.
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

package monitor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shisa-vm/shisa/internal/disasm"
	"github.com/shisa-vm/shisa/isa"
)

type command struct {
	name    string
	min     int // minimum prefix length that uniquely selects this command
	process func(m *Monitor, args []string) (bool, error)
}

var commands = []command{
	{name: "step", min: 1, process: (*Monitor).cmdStep},
	{name: "run", min: 1, process: (*Monitor).cmdRun},
	{name: "dump", min: 1, process: (*Monitor).cmdDump},
	{name: "break", min: 1, process: (*Monitor).cmdBreak},
	{name: "unbreak", min: 3, process: (*Monitor).cmdUnbreak},
	{name: "list", min: 1, process: (*Monitor).cmdList},
	{name: "quit", min: 1, process: (*Monitor).cmdQuit},
	{name: "help", min: 1, process: (*Monitor).cmdHelp},
}

// dispatch parses one input line and runs the matching command. The
// returned bool is true when the monitor should exit.
func (m *Monitor) dispatch(input string) (bool, error) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return false, nil
	}
	name := strings.ToLower(fields[0])

	match := matchCommands(name)
	switch len(match) {
	case 0:
		return false, errors.New("unknown command: " + name)
	case 1:
		return match[0].process(m, fields[1:])
	default:
		return false, errors.New("ambiguous command: " + name)
	}
}

func matchCommands(prefix string) []command {
	if prefix == "" {
		return nil
	}
	var match []command
	for _, c := range commands {
		if len(prefix) >= c.min && strings.HasPrefix(c.name, prefix) {
			match = append(match, c)
		}
	}
	return match
}

func completeCmd(input string) []string {
	fields := strings.Fields(input)
	if len(fields) > 1 || (len(fields) == 1 && strings.HasSuffix(input, " ")) {
		return nil
	}
	prefix := ""
	if len(fields) == 1 {
		prefix = strings.ToLower(fields[0])
	}
	var out []string
	for _, c := range commands {
		if strings.HasPrefix(c.name, prefix) {
			out = append(out, c.name+" ")
		}
	}
	return out
}

// cmdStep advances the engine by one instruction, or by n when an operand
// is given.
func (m *Monitor) cmdStep(args []string) (bool, error) {
	n := 1
	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil {
			return false, fmt.Errorf("step count must be a number: %s", args[0])
		}
		n = v
	}

	for i := 0; i < n; i++ {
		if err := m.eng.ExecuteOne(); err != nil {
			if errors.Is(err, isa.ErrProgramEnd) {
				fmt.Fprintln(m.out, "program ended")
				return false, nil
			}
			return false, err
		}
		fmt.Fprintf(m.out, "0x%04x\n", m.eng.State().PC())
		if m.breaks[m.eng.State().PC()] {
			fmt.Fprintf(m.out, "breakpoint at 0x%04x\n", m.eng.State().PC())
			break
		}
	}
	return false, nil
}

// cmdRun executes until the program ends or a breakpoint is hit.
func (m *Monitor) cmdRun(_ []string) (bool, error) {
	for {
		pc := m.eng.State().PC()
		if m.breaks[pc] {
			fmt.Fprintf(m.out, "breakpoint at 0x%04x\n", pc)
			return false, nil
		}
		if err := m.eng.ExecuteOne(); err != nil {
			if errors.Is(err, isa.ErrProgramEnd) {
				fmt.Fprintln(m.out, "program ended")
				return false, nil
			}
			return false, err
		}
	}
}

// cmdDump prints the current register file and memory layout.
func (m *Monitor) cmdDump(_ []string) (bool, error) {
	m.eng.State().Dump(m.out)
	return false, nil
}

// cmdBreak sets a breakpoint at a hexadecimal address, with or without a
// 0x prefix.
func (m *Monitor) cmdBreak(args []string) (bool, error) {
	if len(args) != 1 {
		return false, errors.New("usage: break <addr>")
	}
	addr, err := parseAddr(args[0])
	if err != nil {
		return false, err
	}
	m.breaks[addr] = true
	fmt.Fprintf(m.out, "breakpoint set at 0x%04x\n", addr)
	return false, nil
}

// cmdUnbreak clears a previously set breakpoint.
func (m *Monitor) cmdUnbreak(args []string) (bool, error) {
	if len(args) != 1 {
		return false, errors.New("usage: unbreak <addr>")
	}
	addr, err := parseAddr(args[0])
	if err != nil {
		return false, err
	}
	delete(m.breaks, addr)
	fmt.Fprintf(m.out, "breakpoint cleared at 0x%04x\n", addr)
	return false, nil
}

// cmdList disassembles the code region starting at the current PC.
func (m *Monitor) cmdList(args []string) (bool, error) {
	n := 10
	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil {
			return false, fmt.Errorf("list count must be a number: %s", args[0])
		}
		n = v
	}

	state := m.eng.State()
	pc := state.PC()
	binEnd := state.RAM.BinEnd()
	for i := 0; i < n; i++ {
		addr := pc + isa.Addr(i)*isa.CellsPerInst
		if addr >= binEnd {
			break
		}
		word := state.ReadWordFromRAM(addr)
		fmt.Fprintf(m.out, "0x%04x: %s\n", addr, disasm.One(isa.RawInst(word)))
	}
	return false, nil
}

func (m *Monitor) cmdQuit(_ []string) (bool, error) {
	return true, nil
}

func (m *Monitor) cmdHelp(_ []string) (bool, error) {
	fmt.Fprintln(m.out, "commands: step [n], run, dump, break <addr>, unbreak <addr>, list [n], quit, help")
	return false, nil
}

func parseAddr(s string) (isa.Addr, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "0x"), 16, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid address: %s", s)
	}
	return isa.Addr(v), nil
}
