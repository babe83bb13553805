package binary

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shisa-vm/shisa/isa"
)

func TestNewCopiesSlices(t *testing.T) {
	insts := []isa.RawInst{0x1111, 0x2222}
	data := []Data{0xaaaa}

	b := New(insts, data)
	insts[0] = 0x9999
	data[0] = 0x9999

	if b.Insts()[0] != 0x1111 {
		t.Errorf("Binary.Insts mutated by caller's slice: got 0x%04x", b.Insts()[0])
	}
	if b.Data()[0] != 0xaaaa {
		t.Errorf("Binary.Data mutated by caller's slice: got 0x%04x", b.Data()[0])
	}
}

func TestCounts(t *testing.T) {
	b := New([]isa.RawInst{1, 2, 3}, []Data{4, 5})
	if b.NumInsts() != 3 {
		t.Errorf("NumInsts() = %d, want 3", b.NumInsts())
	}
	if b.NumData() != 2 {
		t.Errorf("NumData() = %d, want 2", b.NumData())
	}
}

func TestTextRoundTrip(t *testing.T) {
	want := New([]isa.RawInst{0x0201, 0xf000}, []Data{0x0007, 0xbeef})

	var buf bytes.Buffer
	if err := WriteText(&buf, want); err != nil {
		t.Fatalf("WriteText: %v", err)
	}

	got, err := ReadText(&buf)
	if err != nil {
		t.Fatalf("ReadText: %v", err)
	}
	if len(got.Insts()) != len(want.Insts()) || got.Insts()[0] != want.Insts()[0] || got.Insts()[1] != want.Insts()[1] {
		t.Errorf("Insts round trip = %v, want %v", got.Insts(), want.Insts())
	}
	if len(got.Data()) != len(want.Data()) || got.Data()[0] != want.Data()[0] || got.Data()[1] != want.Data()[1] {
		t.Errorf("Data round trip = %v, want %v", got.Data(), want.Data())
	}
}

func TestReadTextRejectsGarbage(t *testing.T) {
	_, err := ReadText(strings.NewReader("# insts: 1\nnot-a-number\n"))
	if err == nil {
		t.Fatal("expected an error for a non-hex line")
	}
}
