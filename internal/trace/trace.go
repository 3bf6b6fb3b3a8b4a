// Package trace renders and parses per-instruction execution logs in
// the layout of the nestest reference logs.
package trace

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var ErrBadLine = errors.New("unrecognized trace line")

// Layout tells which timing columns a parsed line carried.
type Layout uint8

const (
	// LayoutDots is "... SP:FD CYC:  0 SL:241" where CYC is the dot
	// within the scanline.
	LayoutDots Layout = iota
	// LayoutCycles is "... SP:FD PPU:  0, 21 CYC:7" where CYC is the
	// running CPU cycle count.
	LayoutCycles
)

// Line is the machine state before the instruction at PC runs.
type Line struct {
	PC    uint16
	Bytes []uint8 // instruction bytes, opcode first
	Text  string  // disassembly

	A  uint8
	X  uint8
	Y  uint8
	P  uint8
	SP uint8

	Dot      int
	Scanline int
	Cycles   uint64

	Layout Layout
}

// Format renders l in the dot layout:
//
//	C000  4C F5 C5  JMP $C5F5                       A:00 X:00 Y:00 P:24 SP:FD CYC:  0 SL:241
func Format(l Line) string {
	hex := make([]string, len(l.Bytes))
	for i, b := range l.Bytes {
		hex[i] = fmt.Sprintf("%02X", b)
	}
	return fmt.Sprintf("%04X  %-8s  %-32sA:%02X X:%02X Y:%02X P:%02X SP:%02X CYC:%3d SL:%d",
		l.PC, strings.Join(hex, " "), l.Text, l.A, l.X, l.Y, l.P, l.SP, l.Dot, l.Scanline)
}

var (
	regsRe   = regexp.MustCompile(`^([0-9A-F]{4})\s.*A:([0-9A-F]{2}) X:([0-9A-F]{2}) Y:([0-9A-F]{2}) P:([0-9A-F]{2}) SP:([0-9A-F]{2})`)
	dotsRe   = regexp.MustCompile(`CYC:\s*(\d+) SL:\s*(-?\d+)`)
	cyclesRe = regexp.MustCompile(`PPU:\s*(\d+),\s*(\d+) CYC:(\d+)`)
	bytesRe  = regexp.MustCompile(`^[0-9A-F]{4}  ((?:[0-9A-F]{2} ?){1,3})`)
)

// Parse reads one log line in either layout. Text is left empty.
func Parse(s string) (Line, error) {
	s = strings.TrimRight(s, "\r\n")
	regs := regsRe.FindStringSubmatch(s)
	if regs == nil {
		return Line{}, fmt.Errorf("%w: %q", ErrBadLine, s)
	}

	var l Line
	pc, _ := strconv.ParseUint(regs[1], 16, 16)
	l.PC = uint16(pc)
	for i, reg := range []*uint8{&l.A, &l.X, &l.Y, &l.P, &l.SP} {
		v, _ := strconv.ParseUint(regs[i+2], 16, 8)
		*reg = uint8(v)
	}

	if m := bytesRe.FindStringSubmatch(s); m != nil {
		for _, field := range strings.Fields(m[1]) {
			b, _ := strconv.ParseUint(field, 16, 8)
			l.Bytes = append(l.Bytes, uint8(b))
		}
	}

	// timing columns follow the registers
	rest := s[len(regs[0]):]
	if m := cyclesRe.FindStringSubmatch(rest); m != nil {
		l.Layout = LayoutCycles
		l.Scanline, _ = strconv.Atoi(m[1])
		l.Dot, _ = strconv.Atoi(m[2])
		l.Cycles, _ = strconv.ParseUint(m[3], 10, 64)
		return l, nil
	}
	if m := dotsRe.FindStringSubmatch(rest); m != nil {
		l.Layout = LayoutDots
		l.Dot, _ = strconv.Atoi(m[1])
		l.Scanline, _ = strconv.Atoi(m[2])
		return l, nil
	}
	return Line{}, fmt.Errorf("%w: no timing columns in %q", ErrBadLine, s)
}
