package isa

// Opcode identifies one of the 16 ShISA instructions. The numeric values
// are the canonical encoding used by the benchmark programs and test
// fixtures.
type Opcode uint8

const (
	OpADD  Opcode = 0x0
	OpSUB  Opcode = 0x1
	OpMUL  Opcode = 0x2
	OpDIV  Opcode = 0x3
	OpAND  Opcode = 0x4
	OpOR   Opcode = 0x5
	OpXOR  Opcode = 0x6
	OpNOT  Opcode = 0x7
	OpCMP  Opcode = 0x8
	OpJTR  Opcode = 0x9
	OpLD   Opcode = 0xA
	OpST   Opcode = 0xB
	OpPUSH Opcode = 0xC
	OpPOP  Opcode = 0xD
	OpCALL Opcode = 0xE
	OpRET  Opcode = 0xF
)

var mnemonics = [16]string{
	OpADD: "add", OpSUB: "sub", OpMUL: "mul", OpDIV: "div",
	OpAND: "and", OpOR: "or", OpXOR: "xor", OpNOT: "not",
	OpCMP: "cmp", OpJTR: "jtr", OpLD: "ld", OpST: "st",
	OpPUSH: "push", OpPOP: "pop", OpCALL: "call", OpRET: "ret",
}

// Valid reports whether op is one of the 16 defined opcodes.
func (op Opcode) Valid() bool {
	return op <= OpRET
}

// String returns the assembly mnemonic for op, or a placeholder for an
// opcode value outside the 16-entry table.
func (op Opcode) String() string {
	if !op.Valid() {
		return "???"
	}
	return mnemonics[op]
}

// Arity is the number of operands an instruction's mnemonic takes in
// assembly source. It is a plain operand count; which encoded field
// (dst/srcL/srcR) each operand lands in is opcode-specific and is the
// assembler's and disassembler's concern, not this package's - ST, for
// instance, takes two operands (address, value) that land in srcL and
// srcR, leaving dst unused, while NOT's two operands (dst, src) land in
// dst and srcL.
type Arity int

const (
	ArityZero  Arity = 0
	ArityOne   Arity = 1
	ArityTwo   Arity = 2
	ArityThree Arity = 3
)

// ArityOf reports the assembly-source arity of op.
func ArityOf(op Opcode) Arity {
	switch op {
	case OpADD, OpSUB, OpMUL, OpDIV, OpAND, OpOR, OpXOR, OpCMP:
		return ArityThree
	case OpNOT, OpLD, OpST, OpJTR:
		return ArityTwo
	case OpPUSH, OpPOP, OpCALL:
		return ArityOne
	default: // OpRET
		return ArityZero
	}
}
