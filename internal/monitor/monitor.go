// Package monitor is a single-key console for stepping a machine and
// watching its trace.
package monitor

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/nevisdale/nescore/internal/trace"
)

// RunCycles is the budget spent by the run command.
const RunCycles = 1000

// Machine is what the monitor drives. *nes.Console satisfies it.
type Machine interface {
	Step() (int, error)
	ExecuteCycles(budget int) (int, error)
	RunFrame() error
	Reset()
	Trace() trace.Line
}

type Monitor struct {
	m       Machine
	in      *bufio.Reader
	out     io.Writer
	tracing bool

	// Raw terminals need an explicit carriage return.
	Raw bool
}

func New(m Machine, in io.Reader, out io.Writer) *Monitor {
	return &Monitor{
		m:   m,
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (mon *Monitor) println(format string, args ...any) {
	fmt.Fprintf(mon.out, format, args...)
	if mon.Raw {
		fmt.Fprint(mon.out, "\r\n")
		return
	}
	fmt.Fprint(mon.out, "\n")
}

func (mon *Monitor) help() {
	mon.println("(s)tep - execute one instruction")
	mon.println("(f)rame - run until the next frame")
	mon.println("(c)ontinue - run %d cycles", RunCycles)
	mon.println("(r)eset - hit the reset button")
	mon.println("(t)race - toggle per-instruction trace")
	mon.println("(q)uit")
}

func (mon *Monitor) status() {
	mon.println("%s", trace.Format(mon.m.Trace()))
}

// Run reads commands until q or the end of input.
func (mon *Monitor) Run() error {
	mon.help()
	mon.status()
	for {
		key, err := mon.in.ReadByte()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("couldn't read a command: %w", err)
		}
		if quit := mon.Handle(key); quit {
			return nil
		}
	}
}

// Handle executes the command bound to key and reports whether the
// monitor should quit. Machine errors are printed, not returned, so
// the user can still reset.
func (mon *Monitor) Handle(key byte) bool {
	var err error
	switch key {
	case 's', 'S':
		err = mon.step()
	case 'f', 'F':
		err = mon.m.RunFrame()
	case 'c', 'C':
		err = mon.run(RunCycles)
	case 'r', 'R':
		mon.m.Reset()
	case 't', 'T':
		mon.tracing = !mon.tracing
		mon.println("trace: %t", mon.tracing)
		return false
	case 'q', 'Q':
		return true
	case '?', 'h', 'H':
		mon.help()
		return false
	default:
		// Enter and other keys are ignored
		return false
	}
	if err != nil {
		mon.println("halted: %s", err)
	}
	mon.status()
	return false
}

func (mon *Monitor) step() error {
	if mon.tracing {
		mon.status()
	}
	_, err := mon.m.Step()
	return err
}

func (mon *Monitor) run(budget int) error {
	if !mon.tracing {
		_, err := mon.m.ExecuteCycles(budget)
		return err
	}
	for consumed := 0; consumed < budget; {
		mon.status()
		n, err := mon.m.Step()
		if err != nil {
			return err
		}
		consumed += n
	}
	return nil
}
