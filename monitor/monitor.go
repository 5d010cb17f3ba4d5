// Package monitor provides the live termui dashboard and the
// per-sample step prompt for the run loop.
package monitor

import (
	"fmt"
	"math"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	"github.com/pkg/errors"

	"github.com/sverrel/ym7128emu/base"
	"github.com/sverrel/ym7128emu/chip"
	"github.com/sverrel/ym7128emu/settings"
)

type Monitor struct {
	registerView *widgets.Paragraph
	leftGauge    *widgets.Gauge
	rightGauge   *widgets.Gauge
	infoLine     *widgets.Paragraph

	events <-chan ui.Event
	paused bool

	// Quit is set once the user has asked to stop processing.
	Quit bool
}

func New() (*Monitor, error) {
	if err := ui.Init(); err != nil {
		return nil, errors.Wrap(err, "initializing termui")
	}

	m := new(Monitor)
	m.registerView = widgets.NewParagraph()
	m.registerView.Title = "Registers"
	m.leftGauge = widgets.NewGauge()
	m.leftGauge.Title = "Left"
	m.leftGauge.BarColor = ui.ColorGreen
	m.rightGauge = widgets.NewGauge()
	m.rightGauge.Title = "Right"
	m.rightGauge.BarColor = ui.ColorGreen
	m.infoLine = widgets.NewParagraph()
	m.infoLine.Border = false

	m.layout()
	m.events = ui.PollEvents()
	return m, nil
}

func (m *Monitor) Close() {
	ui.Close()
}

func (m *Monitor) layout() {
	width, _ := ui.TerminalDimensions()
	if width < 60 {
		width = 60
	}
	m.registerView.SetRect(0, 0, width, 7)
	m.leftGauge.SetRect(0, 7, width, 10)
	m.rightGauge.SetRect(0, 10, width, 13)
	m.infoLine.SetRect(0, 13, width, 15)
}

// Update refreshes the dashboard and handles pending key events.
// Call it every settings.MonitorInterval samples.
func (m *Monitor) Update(proc chip.Processor, sampleNum int, left, right float64) {
	m.poll(false)
	for m.paused && !m.Quit {
		m.poll(true)
	}
	if m.Quit {
		return
	}

	m.registerView.Text = RegisterDump(proc)
	m.leftGauge.Percent = levelPercent(left)
	m.rightGauge.Percent = levelPercent(right)
	m.infoLine.Text = fmt.Sprintf("engine=%s  sample=%d   [space] pause, [q] quit",
		settings.Engine, sampleNum)

	ui.Render(m.registerView, m.leftGauge, m.rightGauge, m.infoLine)
}

func (m *Monitor) poll(block bool) {
	for {
		if block {
			m.handle(<-m.events)
			return
		}
		select {
		case e := <-m.events:
			m.handle(e)
		default:
			return
		}
	}
}

func (m *Monitor) handle(e ui.Event) {
	switch e.ID {
	case "q", "<C-c>", "<Escape>":
		m.Quit = true
	case "<Space>":
		m.paused = !m.paused
	case "<Resize>":
		m.layout()
	}
}

func levelPercent(v float64) int {
	p := int(math.Abs(v) * 100)
	if p > 100 {
		p = 100
	}
	return p
}

// RegisterDump formats the full register file, eight per line.
func RegisterDump(proc chip.Processor) string {
	ret := ""
	for i, name := range base.RegisterNames {
		ret += fmt.Sprintf("%3s=%02X ", name, proc.Read(uint8(i)))
		if (i+1)%8 == 0 {
			ret += "\n"
		}
	}
	return ret
}
