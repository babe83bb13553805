package isa

import "testing"

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := []struct {
		op              Opcode
		dst, srcL, srcR uint8
	}{
		{OpADD, 0x2, 0x0, 0x1},
		{OpXOR, 0xf, 0xe, 0xd},
		{OpRET, 0x0, 0x0, 0x0},
	}
	for _, c := range cases {
		word := Encode(c.op, c.dst, c.srcL, c.srcR)
		op, dst, srcL, srcR := Decode(word)
		if op != c.op || dst != c.dst || srcL != c.srcL || srcR != c.srcR {
			t.Errorf("Decode(Encode(%v,%x,%x,%x)) = (%v,%x,%x,%x)",
				c.op, c.dst, c.srcL, c.srcR, op, dst, srcL, srcR)
		}
	}
}

func TestDecodeInst(t *testing.T) {
	word := Encode(OpCMP, 0x3, 0x4, 0x5)
	d := DecodeInst(word)
	if d.Op != OpCMP || d.Dst != 0x3 || d.SrcL != 0x4 || d.SrcR != 0x5 {
		t.Errorf("DecodeInst = %+v", d)
	}
}

func TestOpcodeValidAndString(t *testing.T) {
	if !OpRET.Valid() {
		t.Error("OpRET should be valid")
	}
	if Opcode(0x10).Valid() {
		t.Error("0x10 should not be a valid opcode")
	}
	if OpADD.String() != "add" {
		t.Errorf("OpADD.String() = %q", OpADD.String())
	}
	if Opcode(0x10).String() != "???" {
		t.Errorf("invalid opcode String() = %q", Opcode(0x10).String())
	}
}

func TestArityOf(t *testing.T) {
	cases := map[Opcode]Arity{
		OpADD:  ArityThree,
		OpXOR:  ArityThree,
		OpCMP:  ArityThree,
		OpNOT:  ArityTwo,
		OpLD:   ArityTwo,
		OpST:   ArityTwo,
		OpJTR:  ArityTwo,
		OpPUSH: ArityOne,
		OpPOP:  ArityOne,
		OpCALL: ArityOne,
		OpRET:  ArityZero,
	}
	for op, want := range cases {
		if got := ArityOf(op); got != want {
			t.Errorf("ArityOf(%v) = %v, want %v", op, got, want)
		}
	}
}
