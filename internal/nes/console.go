package nes

import (
	"log"

	"github.com/nevisdale/nescore/internal/cpu"
	"github.com/nevisdale/nescore/internal/trace"
)

// Console wires the CPU to the bus, the cartridge and the dot clock.
// It stops on the first CPU error and keeps returning it until Reset.
type Console struct {
	cpu   *cpu.CPU
	ram   *RAM
	cart  *Cart
	clock *DotClock
	mem   *cpuMemory

	halted  error
	paused  bool
	oneStep bool
}

func NewConsole() *Console {
	c := &Console{}
	c.ram = NewRAM()
	c.clock = NewDotClock()
	c.mem = c.newCpuMemory()
	c.cpu = cpu.New(c.mem)
	return c
}

// LoadCart inserts the cartridge and resets the console.
func (c *Console) LoadCart(cart *Cart) {
	c.cart = cart
	c.Reset()
}

// Reset raises the reset line and services it right away, so the
// console is ready to run from the reset vector with 7 cycles spent.
func (c *Console) Reset() {
	c.halted = nil
	c.cpu.Reset()
	if _, err := c.cpu.Step(); err != nil {
		c.halt(err)
	}
	c.clock.Reset()
}

func (c *Console) CPU() *cpu.CPU {
	return c.cpu
}

func (c *Console) Clock() *DotClock {
	return c.clock
}

// Memory returns the CPU bus.
func (c *Console) Memory() ReadWriter {
	return c.mem
}

// Halted returns the error that stopped the console, if any.
func (c *Console) Halted() error {
	return c.halted
}

func (c *Console) halt(err error) {
	c.halted = err
	log.Printf("cpu halted: %s. PC: %04X\n", err, c.cpu.PC())
}

// Step executes one instruction or interrupt sequence.
func (c *Console) Step() (int, error) {
	if c.halted != nil {
		return 0, c.halted
	}
	n, err := c.cpu.Step()
	if err != nil {
		c.halt(err)
		return 0, err
	}
	c.clock.Advance(n)
	return n, nil
}

// ExecuteCycles steps until budget cycles are consumed and returns the overshoot.
func (c *Console) ExecuteCycles(budget int) (int, error) {
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

// RunFrame steps until the dot clock enters the next frame.
func (c *Console) RunFrame() error {
	frame := c.clock.Frame()
	for c.clock.Frame() == frame {
		if _, err := c.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Trace describes the instruction at PC and the state before it runs.
func (c *Console) Trace() trace.Line {
	state := c.cpu.State()
	text, size := c.cpu.Disassemble(state.PC)
	bytes := make([]uint8, size)
	for i := range bytes {
		bytes[i] = c.mem.Read8(state.PC + uint16(i))
	}
	return trace.Line{
		PC:       state.PC,
		Bytes:    bytes,
		Text:     text,
		A:        state.A,
		X:        state.X,
		Y:        state.Y,
		P:        state.P,
		SP:       state.SP,
		Dot:      c.clock.Dot(),
		Scanline: c.clock.Scanline(),
		Cycles:   state.Cycles,
	}
}

func (c *Console) DebugInfo() cpu.State {
	return c.cpu.State()
}

func (c *Console) Paused() bool {
	return c.paused
}

func (c *Console) TogglePause() {
	c.paused = !c.paused
}

// OneStepAndStop pauses the console after the next instruction.
func (c *Console) OneStepAndStop() {
	c.paused = true
	c.oneStep = true
}

// Update advances the console by one frame, or by one instruction
// when a single step was requested. A halted console does not move.
func (c *Console) Update() error {
	switch {
	case c.halted != nil:
		return nil
	case c.oneStep:
		c.oneStep = false
		_, err := c.Step()
		return err
	case c.paused:
		return nil
	}
	return c.RunFrame()
}
