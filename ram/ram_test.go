package ram

import (
	"testing"

	"github.com/shisa-vm/shisa/binary"
	"github.com/shisa-vm/shisa/isa"
)

func TestLoadBinLayout(t *testing.T) {
	b := binary.New(
		[]isa.RawInst{0x1234, 0x5678},
		[]binary.Data{0xaabb},
	)
	c := NewController()
	c.LoadBin(b)

	if got, want := c.ProgramStart(), isa.Addr(2); got != want {
		t.Errorf("ProgramStart = %d, want %d", got, want)
	}
	if got, want := c.BinEnd(), isa.Addr(6); got != want {
		t.Errorf("BinEnd = %d, want %d", got, want)
	}

	if got := c.Read(0); got != 0xaa {
		t.Errorf("data[0] = 0x%02x, want 0xaa", got)
	}
	if got := c.Read(1); got != 0xbb {
		t.Errorf("data[1] = 0x%02x, want 0xbb", got)
	}
	if got := c.Read(2); got != 0x12 {
		t.Errorf("inst[0] high cell = 0x%02x, want 0x12", got)
	}
	if got := c.Read(3); got != 0x34 {
		t.Errorf("inst[0] low cell = 0x%02x, want 0x34", got)
	}
}

// TestCodeRegionReadOnly is property 2: writes in [dataEnd, binEnd) never
// take effect.
func TestCodeRegionReadOnly(t *testing.T) {
	b := binary.New([]isa.RawInst{0x1234}, []binary.Data{0xaabb})
	c := NewController()
	c.LoadBin(b)

	before := make([]isa.Cell, 0, int(c.BinEnd()-c.ProgramStart()))
	for a := c.ProgramStart(); a < c.BinEnd(); a++ {
		before = append(before, c.Read(a))
	}

	for a := c.ProgramStart(); a < c.BinEnd(); a++ {
		c.Write(a, 0xff)
	}

	for i, a := 0, c.ProgramStart(); a < c.BinEnd(); i, a = i+1, a+1 {
		if got := c.Read(a); got != before[i] {
			t.Errorf("code region mutated at 0x%04x: got 0x%02x, want 0x%02x", a, got, before[i])
		}
	}
}

func TestDataAndStackRegionsWritable(t *testing.T) {
	b := binary.New([]isa.RawInst{0x1234}, []binary.Data{0xaabb})
	c := NewController()
	c.LoadBin(b)

	c.Write(0, 0x55)
	if got := c.Read(0); got != 0x55 {
		t.Errorf("data write did not apply: got 0x%02x", got)
	}

	c.Write(c.BinEnd(), 0x66)
	if got := c.Read(c.BinEnd()); got != 0x66 {
		t.Errorf("stack write did not apply: got 0x%02x", got)
	}
}
