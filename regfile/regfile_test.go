package regfile

import (
	"testing"

	"github.com/shisa-vm/shisa/isa"
)

// TestHardwiredRegsImmutable is property 1: r0 and r1 never change, no
// matter what is written to them.
func TestHardwiredRegsImmutable(t *testing.T) {
	f := New()
	f.Write(0, 0xdead)
	f.Write(1, 0xbeef)
	if got := f.Read(0); got != 0 {
		t.Errorf("r0 = 0x%04x, want 0", got)
	}
	if got := f.Read(1); got != 1 {
		t.Errorf("r1 = 0x%04x, want 1", got)
	}
}

func TestWritableRange(t *testing.T) {
	f := New()
	for r := isa.FirstWritableReg; r < isa.NumRegs; r++ {
		f.Write(r, isa.Reg(r)*0x0101)
	}
	for r := isa.FirstWritableReg; r < isa.NumRegs; r++ {
		want := isa.Reg(r) * 0x0101
		if got := f.Read(r); got != want {
			t.Errorf("r%d = 0x%04x, want 0x%04x", r, got, want)
		}
	}
}

func TestEachWritableOrder(t *testing.T) {
	f := New()
	var seen []int
	f.EachWritable(func(r int) { seen = append(seen, r) })
	for i, r := range seen {
		if r != isa.FirstWritableReg+i {
			t.Fatalf("EachWritable order = %v", seen)
		}
	}

	var rev []int
	f.EachWritableReverse(func(r int) { rev = append(rev, r) })
	for i := range seen {
		if rev[i] != seen[len(seen)-1-i] {
			t.Fatalf("EachWritableReverse is not the reverse of EachWritable: %v vs %v", rev, seen)
		}
	}
}
