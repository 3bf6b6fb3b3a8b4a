package cpu

// ReadWriter is the memory port the CPU is bound to.
// Addresses are never checked or mapped by the CPU.
type ReadWriter interface {
	Read8(addr uint16) uint8
	Write8(addr uint16, data uint8)
}

const (
	// The stack is located in the fixed memory page $0100 to $01FF.
	stackStartAddr = uint16(0x100)

	resetVector = uint16(0xfffa)
	nmiVector   = uint16(0xfffa)
	irqVector   = uint16(0xfffe)

	interruptCycles = 7
)

type CPU struct {
	a           uint8  // used to perform arithmetic and logical operations
	x           uint8  // used primarily for indexing and temporary storage
	y           uint8  // used mainly for indexing and temporary storage
	p           uint8  // contains flags from flagX
	sp          uint8  // stack pointer
	pc          uint16 // program counter
	mem         ReadWriter
	totalCycles uint64

	resetLine bool
	nmiLine   bool
	irqLine   bool
}

// State is a snapshot of the registers and the cycle counter,
// taken between two steps.
type State struct {
	PC     uint16
	A      uint8
	X      uint8
	Y      uint8
	P      uint8
	SP     uint8
	Cycles uint64
}

// New returns a CPU in its power-on state bound to mem.
// Memory is not accessed until the first Step.
func New(mem ReadWriter) *CPU {
	return &CPU{
		mem: mem,
		sp:  0xfd,
		p:   flagU | flagI,
	}
}

func (c *CPU) A() uint8       { return c.a }
func (c *CPU) SetA(v uint8)   { c.a = v }
func (c *CPU) X() uint8       { return c.x }
func (c *CPU) SetX(v uint8)   { c.x = v }
func (c *CPU) Y() uint8       { return c.y }
func (c *CPU) SetY(v uint8)   { c.y = v }
func (c *CPU) SP() uint8      { return c.sp }
func (c *CPU) SetSP(v uint8)  { c.sp = v }
func (c *CPU) PC() uint16     { return c.pc }
func (c *CPU) SetPC(v uint16) { c.pc = v }

// Cycles returns the number of cycles consumed since the CPU was created.
func (c *CPU) Cycles() uint64 {
	return c.totalCycles
}

func (c *CPU) State() State {
	return State{
		PC:     c.pc,
		A:      c.a,
		X:      c.x,
		Y:      c.y,
		P:      c.Status(),
		SP:     c.sp,
		Cycles: c.totalCycles,
	}
}

func (c *CPU) read8(addr uint16) uint8 {
	return c.mem.Read8(addr)
}

func (c *CPU) read16(addr uint16) uint16 {
	return uint16(c.read8(addr)) | uint16(c.read8(addr+1))<<8
}

func (c *CPU) write8(addr uint16, data uint8) {
	c.mem.Write8(addr, data)
}

// next reads the byte at PC and moves PC past it.
func (c *CPU) next() uint8 {
	v := c.read8(c.pc)
	c.pc++
	return v
}

func (c *CPU) stackPop8() uint8 {
	c.sp++
	return c.read8(stackStartAddr | uint16(c.sp))
}

func (c *CPU) stackPop16() uint16 {
	lo := uint16(c.stackPop8())
	hi := uint16(c.stackPop8())
	return lo | hi<<8
}

func (c *CPU) stackPush8(data uint8) {
	c.write8(stackStartAddr|uint16(c.sp), data)
	c.sp--
}

func (c *CPU) stackPush16(data uint16) {
	c.stackPush8(uint8(data >> 8))
	c.stackPush8(uint8(data))
}

// Step services at most one pending interrupt line or executes exactly
// one instruction, and returns the number of cycles it took.
func (c *CPU) Step() (int, error) {
	if n, ok := c.serviceInterrupt(); ok {
		c.totalCycles += uint64(n)
		return n, nil
	}

	at := c.pc
	opcode := c.next()
	op := opcodes[opcode]
	if op.mnemonic == opUndefined {
		return 0, &UndefinedOpcodeError{Opcode: opcode, PC: at}
	}

	cycles := int(op.cycles)
	addr, crossed, err := c.resolve(op.mode)
	if err != nil {
		return 0, err
	}
	if crossed && op.pageCross {
		cycles++
	}

	extra, err := c.execute(op, addr, crossed)
	if err != nil {
		return 0, err
	}
	cycles += extra

	c.totalCycles += uint64(cycles)
	return cycles, nil
}

// ExecuteCycles steps until at least budget cycles have been consumed
// and returns how far the last instruction overshot the budget.
// Instructions are never split, so the overshoot may be positive.
func (c *CPU) ExecuteCycles(budget int) (int, error) {
	consumed := 0
	for consumed < budget {
		n, err := c.Step()
		if err != nil {
			return 0, err
		}
		consumed += n
	}
	return consumed - budget, nil
}
