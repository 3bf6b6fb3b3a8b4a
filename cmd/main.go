package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/nevisdale/nescore/internal/monitor"
	"github.com/nevisdale/nescore/internal/nes"
	"github.com/nevisdale/nescore/internal/trace"
	"github.com/nevisdale/nescore/internal/ui"
	"github.com/pkg/profile"
	"golang.org/x/term"
)

var (
	romFile     = flag.String("rom", "", "Path to the iNES ROM to run.")
	startPC     = flag.String("pc", "", "Start execution at this hex address instead of the reset vector (eg: C000).")
	traceLines  = flag.Int("trace", 0, "Run headless and print this many trace lines.")
	cycles      = flag.Int("cycles", 0, "Run headless for this many CPU cycles and print the final state.")
	monitorMode = flag.Bool("monitor", false, "Start the interactive single-key monitor.")
	uiMode      = flag.Bool("ui", false, "Open the debugger window.")
	profileMode = flag.String("profile", "", "Profile the run: cpu, mem or trace.")
)

func main() {
	flag.Parse()

	if *romFile == "" {
		flag.Usage()
		os.Exit(2)
	}

	switch *profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	case "trace":
		defer profile.Start(profile.TraceProfile, profile.ProfilePath(".")).Stop()
	default:
		log.Fatalf("unknown profile mode %q\n", *profileMode)
	}

	cart, err := nes.NewCartFromFile(*romFile)
	if err != nil {
		log.Fatalf("couldn't load cart: %s\n", err)
	}
	log.Printf("loaded %s: mapper %d, %d PRG banks, %d CHR banks, %s mirroring\n",
		*romFile, cart.MapperID(), cart.PRGBanks(), cart.CHRBanks(), cart.Mirroring())

	console := nes.NewConsole()
	console.LoadCart(cart)
	if *startPC != "" {
		pc, err := strconv.ParseUint(*startPC, 16, 16)
		if err != nil {
			log.Fatalf("invalid -pc %q: %s\n", *startPC, err)
		}
		console.CPU().SetPC(uint16(pc))
	}

	switch {
	case *traceLines > 0:
		runTrace(console, *traceLines)
	case *cycles > 0:
		runCycles(console, *cycles)
	case *monitorMode:
		runMonitor(console)
	case *uiMode:
		if err := ui.RunUI(ui.New(console)); err != nil {
			log.Fatalf("ui: %s\n", err)
		}
	default:
		runCycles(console, 1_000_000)
	}
}

func runTrace(console *nes.Console, lines int) {
	for i := 0; i < lines; i++ {
		fmt.Println(trace.Format(console.Trace()))
		if _, err := console.Step(); err != nil {
			return
		}
	}
}

func runCycles(console *nes.Console, budget int) {
	over, err := console.ExecuteCycles(budget)
	fmt.Println(trace.Format(console.Trace()))
	if err != nil {
		return
	}
	log.Printf("ran %d cycles (%d over budget)\n", budget+over, over)
}

func runMonitor(console *nes.Console) {
	mon := monitor.New(console, os.Stdin, os.Stdout)

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		oldState, err := term.MakeRaw(fd)
		if err != nil {
			log.Fatalf("couldn't set raw mode: %s\n", err)
		}
		defer func() {
			_ = term.Restore(fd, oldState)
		}()
		mon.Raw = true
	}

	if err := mon.Run(); err != nil {
		log.Printf("monitor: %s\n", err)
	}
}
