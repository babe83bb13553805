package assemble

import (
	"testing"

	"github.com/shisa-vm/shisa/isa"
)

func TestAssembleArithmetic(t *testing.T) {
	bin, err := Assemble("add r2 r0 r1\nret\n")
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if bin.NumInsts() != 2 {
		t.Fatalf("NumInsts = %d, want 2", bin.NumInsts())
	}
	d := isa.DecodeInst(bin.Insts()[0])
	if d.Op != isa.OpADD || d.Dst != 2 || d.SrcL != 0 || d.SrcR != 1 {
		t.Errorf("decoded add = %+v", d)
	}
	if isa.DecodeInst(bin.Insts()[1]).Op != isa.OpRET {
		t.Errorf("second instruction is not ret")
	}
}

func TestAssembleStoreFieldMapping(t *testing.T) {
	bin, err := Assemble("st r15 r4\n")
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	d := isa.DecodeInst(bin.Insts()[0])
	if d.Dst != 0 || d.SrcL != 15 || d.SrcR != 4 {
		t.Errorf("st field mapping = %+v, want dst=0 srcL=15 srcR=4", d)
	}
}

func TestAssembleDirectJump(t *testing.T) {
	bin, err := Assemble("jtr r1 r3\n")
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	d := isa.DecodeInst(bin.Insts()[0])
	if d.Op != isa.OpJTR || d.SrcL != 1 || d.SrcR != 3 {
		t.Errorf("jtr direct = %+v", d)
	}
}

func TestAssembleLabelJump(t *testing.T) {
	src := "jtr r1 TARGET\nadd r2 r0 r1\nTARGET:\nret\n"
	bin, err := Assemble(src)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	// jtr-with-label expands to labelJumpSize instructions, then the add,
	// then ret.
	if bin.NumInsts() != labelJumpSize+2 {
		t.Fatalf("NumInsts = %d, want %d", bin.NumInsts(), labelJumpSize+2)
	}
	last := isa.DecodeInst(bin.Insts()[labelJumpSize-1])
	if last.Op != isa.OpJTR || last.SrcL != 1 || last.SrcR != addrAccReg {
		t.Errorf("expanded jtr = %+v", last)
	}
}

func TestUndefinedLabelReported(t *testing.T) {
	_, err := Assemble("jtr r1 NOWHERE\n")
	if err == nil {
		t.Fatal("expected an error for an undefined label")
	}
}

func TestBadMnemonicReported(t *testing.T) {
	_, err := Assemble("xor r2 r0 r1\n")
	if err == nil {
		t.Fatal("expected an error: xor is not a recognized assembler mnemonic")
	}
}

func TestWrongOperandCountReported(t *testing.T) {
	_, err := Assemble("add r2 r0\n")
	if err == nil {
		t.Fatal("expected an error for a missing operand")
	}
}
