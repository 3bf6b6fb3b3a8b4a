package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/nevisdale/nescore/internal/nes"
)

// P - pause
// R - one step and stop
// PageUp/PageDown - move the memory view by one page

type UI struct {
	console *nes.Console
	page    uint8 // memory page shown in the dump panel
	err     error
}

func New(console *nes.Console) *UI {
	return &UI{console: console}
}

func (ui *UI) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		ui.console.TogglePause()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		ui.console.OneStepAndStop()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		ui.page--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) {
		ui.page++
	}

	// the console logs and keeps the halt, the window stays open to show it
	if err := ui.console.Update(); err != nil {
		ui.err = err
	}
	return nil
}

func (ui *UI) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, registerPanelWidth, screenHeight, color.RGBA{50, 50, 50, 255}, false)
	ebitenutil.DebugPrintAt(screen, ui.registerPanel(), 0, 0)

	vector.DrawFilledRect(screen, registerPanelWidth, 0, memoryPanelWidth, screenHeight, color.RGBA{30, 30, 60, 255}, false)
	ebitenutil.DebugPrintAt(screen, ui.memoryPanel(), registerPanelWidth, 0)

	// stack pointer marker over the stack page bar
	sp := ui.console.DebugInfo().SP
	barY := float32(screenHeight - stackBarHeight)
	vector.DrawFilledRect(screen, registerPanelWidth, barY, memoryPanelWidth, stackBarHeight, color.RGBA{20, 20, 20, 255}, false)
	markerX := registerPanelWidth + float32(sp)*memoryPanelWidth/256
	vector.DrawFilledRect(screen, markerX, barY, 2, stackBarHeight, color.RGBA{220, 60, 60, 255}, false)
}

func (ui *UI) registerPanel() string {
	info := ui.console.DebugInfo()
	cpu := ui.console.CPU()
	clock := ui.console.Clock()

	var infoStr strings.Builder
	fmt.Fprintf(&infoStr, " FPS: %0.0f\n", ebiten.ActualFPS())
	fmt.Fprintf(&infoStr, " STATUS: %s\n", cpu.StatusString())
	fmt.Fprintf(&infoStr, " PC: %04X\n", info.PC)
	fmt.Fprintf(&infoStr, " A: $%02X [%03d]", info.A, info.A)
	fmt.Fprintf(&infoStr, " X: $%02X [%03d]", info.X, info.X)
	fmt.Fprintf(&infoStr, " Y: $%02X [%03d]\n", info.Y, info.Y)
	fmt.Fprintf(&infoStr, " SP: $%02X\n", info.SP)
	fmt.Fprintf(&infoStr, " CYC: %d\n", info.Cycles)
	fmt.Fprintf(&infoStr, " FRAME: %d SL: %d DOT: %d\n", clock.Frame(), clock.Scanline(), clock.Dot())
	switch {
	case ui.err != nil:
		fmt.Fprintf(&infoStr, " HALTED: %s\n", ui.err)
	case ui.console.Paused():
		infoStr.WriteString(" PAUSED\n")
	default:
		infoStr.WriteString("\n")
	}
	infoStr.WriteString("\n")

	addr := info.PC
	for i := 0; i < disasmLines; i++ {
		text, size := cpu.Disassemble(addr)
		marker := " "
		if i == 0 {
			marker = "*"
		}
		fmt.Fprintf(&infoStr, "%s$%04X: %s\n", marker, addr, text)
		addr += uint16(size)
	}
	return infoStr.String()
}

func (ui *UI) memoryPanel() string {
	mem := ui.console.Memory()
	base := uint16(ui.page) << 8

	var dump strings.Builder
	fmt.Fprintf(&dump, " PAGE $%02X\n", ui.page)
	for row := uint16(0); row < 16; row++ {
		fmt.Fprintf(&dump, " %04X:", base+row*16)
		for col := uint16(0); col < 16; col++ {
			fmt.Fprintf(&dump, " %02X", mem.Read8(base+row*16+col))
		}
		dump.WriteString("\n")
	}
	return dump.String()
}

const (
	screenScale = 2

	registerPanelWidth = 286
	memoryPanelWidth   = 330
	screenHeight       = 320
	stackBarHeight     = 8

	disasmLines = 16
)

func (ui *UI) Layout(_, _ int) (int, int) {
	return registerPanelWidth + memoryPanelWidth, screenHeight
}

func RunUI(ui *UI) error {
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("nescore")
	screenSizeX, screenSizeY := registerPanelWidth+memoryPanelWidth, screenHeight
	screenSizeX *= screenScale
	screenSizeY *= screenScale
	ebiten.SetWindowSize(screenSizeX, screenSizeY)
	ebiten.SetTPS(60)
	return ebiten.RunGame(ui)
}
