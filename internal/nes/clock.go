package nes

const (
	dotsPerCPUCycle   = 3
	dotsPerScanline   = 341
	scanlinesPerFrame = 262

	// the first scanline after power-up in the reference trace logs
	resetScanline = 241
)

// DotClock counts picture-unit dots alongside the CPU. It renders
// nothing and only keeps the dot/scanline/frame position used by
// traces and frame pacing.
type DotClock struct {
	dot      uint16
	scanline uint16
	frame    uint64
}

func NewDotClock() *DotClock {
	d := &DotClock{}
	d.Reset()
	return d
}

func (d *DotClock) Reset() {
	d.dot = 0
	d.scanline = resetScanline
	d.frame = 0
}

// Tic advances the clock by one dot.
func (d *DotClock) Tic() {
	d.dot++
	if d.dot >= dotsPerScanline {
		d.dot = 0
		d.scanline++

		if d.scanline >= scanlinesPerFrame {
			d.scanline = 0
			d.frame++
		}
	}
}

// Advance moves the clock by the dots that cpuCycles take.
func (d *DotClock) Advance(cpuCycles int) {
	for i := 0; i < cpuCycles*dotsPerCPUCycle; i++ {
		d.Tic()
	}
}

func (d *DotClock) Dot() int {
	return int(d.dot)
}

// Scanline returns the current scanline. The pre-render line is
// reported as -1 the way trace logs print it.
func (d *DotClock) Scanline() int {
	if d.scanline == scanlinesPerFrame-1 {
		return -1
	}
	return int(d.scanline)
}

func (d *DotClock) Frame() uint64 {
	return d.frame
}
