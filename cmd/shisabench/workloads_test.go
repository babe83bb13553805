package main

import (
	"testing"

	"github.com/shisa-vm/shisa/isa"
)

// TestWorkloadsFitAddressSpace checks that every workload's instruction
// stream fits in the address space once its data segment is accounted
// for.
func TestWorkloadsFitAddressSpace(t *testing.T) {
	for _, w := range workloads {
		t.Run(w.name, func(t *testing.T) {
			bin := w.build()
			insts := bin.Insts()
			if len(insts) == 0 {
				t.Fatalf("%s: no instructions produced", w.name)
			}
			if len(insts) > maxInsts {
				t.Fatalf("%s: %d instructions exceeds maxInsts %d", w.name, len(insts), maxInsts)
			}
			dataEnd := len(bin.Data()) * isa.CellsPerData
			binEnd := dataEnd + len(insts)*isa.CellsPerInst
			if binEnd > 1<<16 {
				t.Fatalf("%s: binary end 0x%x overflows the 64KB address space", w.name, binEnd)
			}
		})
	}
}

func TestOnlyNopsFillsAddressSpace(t *testing.T) {
	bin := workloadOnlyNops()
	if len(bin.Insts()) != maxInsts {
		t.Errorf("ONLY_NOPS: got %d instructions, want maxInsts %d", len(bin.Insts()), maxInsts)
	}
}

func TestPaddedLoopsFillAddressSpace(t *testing.T) {
	// ONE_LONG_LOOP pads up to maxInsts less two instruction slots per data
	// word (two data words), then appends the closing jtr.
	long := workloadOneLongLoop()
	if got, want := len(long.Insts()), maxInsts-3; got != want {
		t.Errorf("ONE_LONG_LOOP: got %d instructions, want %d", got, want)
	}

	// FUNCTION_WITH_NOPS_IN_LOOP pads so that the binary ends exactly at its
	// instEnd data word, the address the program jumps to in order to finish.
	withNops := workloadFunctionWithNopsInLoop()
	binEnd := len(withNops.Data())*isa.CellsPerData + len(withNops.Insts())*isa.CellsPerInst
	if want := int(withNops.Data()[5]); binEnd != want {
		t.Errorf("FUNCTION_WITH_NOPS_IN_LOOP: binary ends at 0x%04x, want instEnd 0x%04x", binEnd, want)
	}
}
