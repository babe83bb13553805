package sim

import (
	"errors"
	"testing"

	"github.com/shisa-vm/shisa/binary"
	"github.com/shisa-vm/shisa/isa"
)

func enc(op isa.Opcode, dst, srcL, srcR uint8) isa.RawInst {
	return isa.Encode(op, dst, srcL, srcR)
}

func runToEnd(t *testing.T, e Engine) {
	t.Helper()
	if err := e.ExecuteAll(); err != nil {
		t.Fatalf("ExecuteAll: %v", err)
	}
}

// testArithmeticFor mirrors the arithmetic sanity scenario: one instruction per
// opcode, operands (r0, r1), writing to every writable register.
func testArithmeticFor(t *testing.T, v Variant) {
	cases := []struct {
		op  isa.Opcode
		val isa.Reg
	}{
		{isa.OpADD, 0x0001},
		{isa.OpSUB, 0xffff},
		{isa.OpMUL, 0x0000},
		{isa.OpDIV, 0x0000},
		{isa.OpAND, 0x0000},
		{isa.OpOR, 0x0001},
		{isa.OpNOT, 0xffff},
		{isa.OpCMP, 0xffff},
	}

	for _, c := range cases {
		for r := isa.FirstWritableReg; r < isa.NumRegs; r++ {
			b := binary.New([]isa.RawInst{enc(c.op, uint8(r), 0, 1)}, nil)
			e := New(v, b)
			runToEnd(t, e)
			got := e.State().Regs.Read(r)
			if got != c.val {
				t.Errorf("%s %s: r%d = 0x%04x, want 0x%04x", v, c.op, r, got, c.val)
			}
		}
	}
}

func TestArithmetic(t *testing.T) {
	for _, v := range Variants {
		t.Run(string(v), func(t *testing.T) { testArithmeticFor(t, v) })
	}
}

func jumpProgram() binary.Binary {
	insts := []isa.RawInst{
		enc(isa.OpADD, 0x2, 0x1, 0x1),
		enc(isa.OpADD, 0xf, 0x0, 0x0),
		enc(isa.OpLD, 0x3, 0xf, 0x0),
		enc(isa.OpADD, 0xf, 0xf, 0x2),
		enc(isa.OpLD, 0x4, 0xf, 0x0),
		enc(isa.OpJTR, 0x0, 0x1, 0x3),
		enc(isa.OpADD, 0x5, 0x0, 0x1),
		enc(isa.OpJTR, 0x0, 0x0, 0x4),
		enc(isa.OpADD, 0x6, 0x0, 0x1),
		enc(isa.OpADD, 0x0, 0x0, 0x0),
		enc(isa.OpADD, 0x0, 0x0, 0x0),
		enc(isa.OpADD, 0x7, 0x0, 0x1),
		enc(isa.OpADD, 0x0, 0x0, 0x0),
	}
	return binary.New(insts, []binary.Data{0x0014, 0x0018})
}

func testJumpFor(t *testing.T, v Variant) {
	e := New(v, jumpProgram())
	runToEnd(t, e)
	regs := e.State().Regs
	want := map[int]isa.Reg{0x5: 0x1, 0x6: 0x0, 0x7: 0x1}
	for r, expect := range want {
		if got := regs.Read(r); got != expect {
			t.Errorf("%s: r%d = 0x%04x, want 0x%04x", v, r, got, expect)
		}
	}
}

func TestJump(t *testing.T) {
	for _, v := range Variants {
		t.Run(string(v), func(t *testing.T) { testJumpFor(t, v) })
	}
}

func memoryProgram() binary.Binary {
	insts := []isa.RawInst{
		enc(isa.OpADD, 0x2, 0x1, 0x1),
		enc(isa.OpADD, 0x3, 0x2, 0x1),
		enc(isa.OpADD, 0xf, 0x0, 0x0),
		enc(isa.OpLD, 0x4, 0xf, 0x0),
		enc(isa.OpADD, 0xf, 0xf, 0x2),
		enc(isa.OpLD, 0x5, 0xf, 0x0),
		enc(isa.OpADD, 0xf, 0xf, 0x2),
		enc(isa.OpLD, 0x6, 0xf, 0x0),
		enc(isa.OpST, 0x0, 0xf, 0x4),
		enc(isa.OpLD, 0x7, 0xf, 0x0),
		enc(isa.OpADD, 0xf, 0xf, 0x2),
		enc(isa.OpLD, 0x8, 0xf, 0x0),
		enc(isa.OpST, 0x0, 0xf, 0x7),
		enc(isa.OpLD, 0x9, 0xf, 0x0),
		enc(isa.OpPUSH, 0x0, 0x5, 0x0),
		enc(isa.OpPOP, 0xa, 0x0, 0x0),
		enc(isa.OpADD, 0xf, 0xf, 0x2),
		enc(isa.OpMUL, 0xe, 0xf, 0xf),
		enc(isa.OpMUL, 0xe, 0xe, 0x2),
		enc(isa.OpST, 0x0, 0xe, 0xe),
		enc(isa.OpLD, 0xb, 0xe, 0x0),
	}
	return binary.New(insts, []binary.Data{0xbeef, 0xdead, 0xeeee})
}

func testMemoryFor(t *testing.T, v Variant) {
	e := New(v, memoryProgram())
	runToEnd(t, e)
	regs := e.State().Regs
	want := map[int]isa.Reg{
		0x2: 0x0002, 0x3: 0x0003, 0x4: 0xbeef, 0x5: 0xdead, 0x6: 0xeeee,
		0x7: 0xeeee, 0x8: 0x1211, 0x9: 0x1211, 0xa: 0xdead, 0xb: 0x0080,
		0xc: 0, 0xd: 0, 0xe: 0x0080, 0xf: 0x0008,
	}
	for r, expect := range want {
		if got := regs.Read(r); got != expect {
			t.Errorf("%s: r%d = 0x%04x, want 0x%04x", v, r, got, expect)
		}
	}
}

func TestMemory(t *testing.T) {
	for _, v := range Variants {
		t.Run(string(v), func(t *testing.T) { testMemoryFor(t, v) })
	}
}

func funcsProgram() binary.Binary {
	insts := []isa.RawInst{
		enc(isa.OpADD, 0x2, 0x1, 0x1),
		enc(isa.OpADD, 0xf, 0x0, 0x0),
		enc(isa.OpLD, 0x3, 0xf, 0x0),
		enc(isa.OpADD, 0xf, 0xf, 0x2),
		enc(isa.OpLD, 0x4, 0xf, 0x0),
		enc(isa.OpCALL, 0x3, 0x0, 0x0),
		enc(isa.OpLD, 0x5, 0x4, 0x0),
		enc(isa.OpADD, 0x6, 0x5, 0x1),
		enc(isa.OpADD, 0xf, 0xf, 0x2),
		enc(isa.OpLD, 0x7, 0xf, 0x0),
		enc(isa.OpJTR, 0x0, 0x0, 0x7),
		enc(isa.OpMUL, 0x4, 0x2, 0x2),
		enc(isa.OpMUL, 0x4, 0x4, 0x4),
		enc(isa.OpLD, 0x3, 0xf, 0x0),
		enc(isa.OpST, 0x0, 0x3, 0x4),
		enc(isa.OpRET, 0x0, 0x0, 0x0),
	}
	return binary.New(insts, []binary.Data{0x001c, 0x2000, 0x0026})
}

func testFuncsFor(t *testing.T, v Variant) {
	e := New(v, funcsProgram())
	runToEnd(t, e)
	regs := e.State().Regs
	want := map[int]isa.Reg{
		0x2: 0x0002, 0x3: 0x001c, 0x4: 0x2000, 0x5: 0x0010, 0x6: 0x0011,
		0x7: 0x0026, 0x8: 0, 0x9: 0, 0xa: 0, 0xb: 0, 0xc: 0, 0xd: 0, 0xe: 0,
		0xf: 0x0004,
	}
	for r, expect := range want {
		if got := regs.Read(r); got != expect {
			t.Errorf("%s: r%d = 0x%04x, want 0x%04x", v, r, got, expect)
		}
	}
}

func TestFuncs(t *testing.T) {
	for _, v := range Variants {
		t.Run(string(v), func(t *testing.T) { testFuncsFor(t, v) })
	}
}

// TestEngineEquivalence runs the same binary through all four engines and
// checks they land on identical register state (property 5).
func TestEngineEquivalence(t *testing.T) {
	programs := []binary.Binary{jumpProgram(), memoryProgram(), funcsProgram()}
	for i, b := range programs {
		var refs [isa.NumRegs]isa.Reg
		for vi, v := range Variants {
			e := New(v, b)
			runToEnd(t, e)
			for r := 0; r < isa.NumRegs; r++ {
				got := e.State().Regs.Read(r)
				if vi == 0 {
					refs[r] = got
				} else if got != refs[r] {
					t.Errorf("program %d: %s disagrees with %s on r%d: 0x%04x vs 0x%04x",
						i, v, Variants[0], r, got, refs[r])
				}
			}
		}
	}
}

// TestStackBounds exercises property/scenario F: STACK_OFFSET successful
// pushes reach the top of the stack region; one more overflows.
func TestStackBounds(t *testing.T) {
	e := NewSwitched(binary.New([]isa.RawInst{enc(isa.OpADD, 0x0, 0x0, 0x0)}, nil))
	c := e.State()

	for i := 0; i < int(isa.StackOffset); i++ {
		if err := c.SPIncrement(); err != nil {
			t.Fatalf("SPIncrement %d: %v", i, err)
		}
	}
	if got, want := c.SP(), c.RAM.BinEnd()+isa.StackOffset; got != want {
		t.Fatalf("SP = 0x%04x, want 0x%04x", got, want)
	}

	if err := c.SPIncrement(); !errors.Is(err, isa.ErrStackOverflow) {
		t.Fatalf("SPIncrement at top: got %v, want ErrStackOverflow", err)
	}
	if got, want := c.SP(), c.RAM.BinEnd()+isa.StackOffset; got != want {
		t.Fatalf("SP moved after overflow: 0x%04x, want unchanged 0x%04x", got, want)
	}

	for i := 0; i < int(isa.StackOffset); i++ {
		if err := c.SPDecrement(); err != nil {
			t.Fatalf("SPDecrement %d: %v", i, err)
		}
	}
	if got, want := c.SP(), c.RAM.BinEnd(); got != want {
		t.Fatalf("SP = 0x%04x, want 0x%04x", got, want)
	}
	if err := c.SPDecrement(); !errors.Is(err, isa.ErrStackUnderflow) {
		t.Fatalf("SPDecrement at bottom: got %v, want ErrStackUnderflow", err)
	}
}

// TestDivByZeroHalts checks the soft-halt behavior documented on processDiv.
func TestDivByZeroHalts(t *testing.T) {
	b := binary.New([]isa.RawInst{enc(isa.OpDIV, 0x2, 0x0, 0x0)}, nil)
	e := NewSwitched(b)
	if err := e.ExecuteAll(); err != nil {
		t.Fatalf("ExecuteAll: %v", err)
	}
	if !e.State().ReachedEnd() {
		t.Fatal("expected PC to reach end after division by zero")
	}
}
