package cpu

import (
	"errors"
	"testing"

	"github.com/shisa-vm/shisa/binary"
	"github.com/shisa-vm/shisa/isa"
)

func newLoaded(insts []isa.RawInst, data []binary.Data) *CPU {
	c := New()
	c.LoadBin(binary.New(insts, data))
	return c
}

// TestWordRoundTrip is property 3: writing then reading a word back at any
// in-bounds stack address returns the value written.
func TestWordRoundTrip(t *testing.T) {
	c := newLoaded([]isa.RawInst{0x1234}, nil)
	addrs := []isa.Addr{c.RAM.BinEnd(), c.RAM.BinEnd() + isa.StackOffset - isa.CellsPerReg}
	values := []isa.Reg{0x0000, 0xffff, 0xbeef}

	for _, addr := range addrs {
		for _, v := range values {
			c.WriteWordToRAM(addr, v)
			if got := c.ReadWordFromRAM(addr); got != v {
				t.Errorf("addr 0x%04x: round-trip 0x%04x got 0x%04x", addr, v, got)
			}
		}
	}
}

// TestStackRoundTrip is property 4: spilling and restoring the writable
// register range preserves contents and restores SP.
func TestStackRoundTrip(t *testing.T) {
	c := newLoaded([]isa.RawInst{0x1234}, nil)
	for r := isa.FirstWritableReg; r < isa.NumRegs; r++ {
		c.Regs.Write(r, isa.Reg(r)*0x1111)
	}

	spBefore := c.SP()
	if err := c.StoreRegsOnStack(); err != nil {
		t.Fatalf("StoreRegsOnStack: %v", err)
	}

	for r := isa.FirstWritableReg; r < isa.NumRegs; r++ {
		c.Regs.Write(r, 0)
	}

	if err := c.LoadRegsFromStack(); err != nil {
		t.Fatalf("LoadRegsFromStack: %v", err)
	}

	if c.SP() != spBefore {
		t.Errorf("SP after round-trip = 0x%04x, want 0x%04x", c.SP(), spBefore)
	}
	for r := isa.FirstWritableReg; r < isa.NumRegs; r++ {
		want := isa.Reg(r) * 0x1111
		if got := c.Regs.Read(r); got != want {
			t.Errorf("r%d = 0x%04x, want 0x%04x", r, got, want)
		}
	}
}

// TestPCBounds is property 7: SetPC succeeds within [dataEnd, binEnd] and
// raises without moving PC otherwise.
func TestPCBounds(t *testing.T) {
	// One data word puts the program start at 2, so start-1 is a real
	// address below the program text rather than a wrap to 0xffff.
	c := newLoaded([]isa.RawInst{0x1234, 0x5678}, []binary.Data{0xaabb})
	start, end := c.RAM.ProgramStart(), c.RAM.BinEnd()

	if err := c.SetPC(start); err != nil {
		t.Fatalf("SetPC(start): %v", err)
	}
	if err := c.SetPC(end); err != nil {
		t.Fatalf("SetPC(end): %v", err)
	}

	before := c.PC()
	if err := c.SetPC(start - 1); !errors.Is(err, isa.ErrBadPC) {
		t.Errorf("SetPC(start-1) = %v, want ErrBadPC", err)
	}
	if c.PC() != before {
		t.Errorf("PC moved after a rejected SetPC: 0x%04x, want 0x%04x", c.PC(), before)
	}

	before = c.PC()
	if err := c.SetPC(end + 1); !errors.Is(err, isa.ErrProgramEnd) {
		t.Errorf("SetPC(end+1) = %v, want ErrProgramEnd", err)
	}
	if c.PC() != before {
		t.Errorf("PC moved after a rejected SetPC: 0x%04x, want 0x%04x", c.PC(), before)
	}
}

func TestFetchAdvancesPCAndSignalsEnd(t *testing.T) {
	c := newLoaded([]isa.RawInst{0xabcd}, nil)
	word, err := c.FetchNext()
	if err != nil {
		t.Fatalf("FetchNext: %v", err)
	}
	if word != 0xabcd {
		t.Errorf("FetchNext = 0x%04x, want 0xabcd", word)
	}
	if !c.ReachedEnd() {
		t.Fatal("expected ReachedEnd after fetching the only instruction")
	}
	if _, err := c.FetchNext(); !errors.Is(err, isa.ErrProgramEnd) {
		t.Errorf("FetchNext past end = %v, want ErrProgramEnd", err)
	}
}

func TestStackCellRoundTrip(t *testing.T) {
	c := newLoaded([]isa.RawInst{0x1234}, nil)
	if err := c.StoreOnStack(0x42); err != nil {
		t.Fatalf("StoreOnStack: %v", err)
	}
	got, err := c.LoadFromStack()
	if err != nil {
		t.Fatalf("LoadFromStack: %v", err)
	}
	if got != 0x42 {
		t.Errorf("LoadFromStack = 0x%02x, want 0x42", got)
	}
}
