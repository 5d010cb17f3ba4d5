package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/pkg/errors"

	"github.com/sverrel/ym7128emu/base"
	"github.com/sverrel/ym7128emu/chip"
	"github.com/sverrel/ym7128emu/monitor"
	"github.com/sverrel/ym7128emu/player"
	"github.com/sverrel/ym7128emu/presets"
	"github.com/sverrel/ym7128emu/reader"
	"github.com/sverrel/ym7128emu/settings"
	"github.com/sverrel/ym7128emu/stream"
	"github.com/sverrel/ym7128emu/utils"
	"github.com/sverrel/ym7128emu/writer"
)

// Raw hex strings from the --reg-<NAME> flags, by address
var regFlags [base.RegCount]string

func parseCommandLineParameters() {
	flag.StringVar(&settings.Format, "f", settings.Format, "Sample stream format")
	flag.StringVar(&settings.Format, "format", settings.Format, "Sample stream format")
	flag.StringVar(&settings.Engine, "e", settings.Engine, "Engine variant (fixed, float, ideal, short)")
	flag.StringVar(&settings.Engine, "engine", settings.Engine, "Engine variant (fixed, float, ideal, short)")
	flag.IntVar(&settings.Rate, "r", settings.Rate, "Sample rate [Hz] (ideal/short engines)")
	flag.IntVar(&settings.Rate, "rate", settings.Rate, "Sample rate [Hz] (ideal/short engines)")
	flag.StringVar(&settings.Preset, "preset", settings.Preset, "Named register configuration")
	flag.StringVar(&settings.RegDump, "regdump", settings.RegDump, "Register dump as one hex string, up to 32 bytes")
	flag.Float64Var(&settings.DryDB, "dry", settings.DryDB, "Dry path level [dB]; |dB| >= 128 mutes")
	flag.Float64Var(&settings.WetDB, "wet", settings.WetDB, "Wet path level [dB]; |dB| >= 128 mutes")
	flag.StringVar(&settings.InputWav, "in", settings.InputWav, "Input WAV file (default: raw stdin)")
	flag.StringVar(&settings.OutputWav, "out", settings.OutputWav, "Output WAV file (default: raw stdout)")
	flag.BoolVar(&settings.Play, "play", settings.Play, "Play the processed output when done")
	flag.BoolVar(&settings.Monitor, "monitor", settings.Monitor, "Show the live register/level dashboard")
	flag.BoolVar(&settings.StepDebug, "step", settings.StepDebug, "Per-sample step debugger")
	flag.BoolVar(&settings.PrintRegs, "print-regs", settings.PrintRegs, "Print the effective register values")

	for i, name := range base.RegisterNames {
		flag.StringVar(&regFlags[i], "reg-"+name, "", "Value of the "+name+" register (hex)")
	}

	flag.Usage = printUsage
	flag.Parse()
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `ym7128emu v%s -- Yamaha YM7128B Surround Processor emulator

Reads a sample stream from standard input (or a WAV file), runs it
through the emulated chip and writes interleaved stereo to standard
output (or a WAV file). The fixed and float engines run at the chip's
native rate and emit two output pairs per input sample; the ideal and
short engines run at --rate and emit one.

USAGE:
  ym7128emu [OPTION]...

`, settings.Version)
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nFORMAT: %s\n", strings.Join(formatNames(), ", "))
	fmt.Fprintf(os.Stderr, "ENGINE: %s\n", strings.Join(chip.EngineNames, ", "))
	fmt.Fprintf(os.Stderr, "PRESET: %s\n", strings.Join(presets.Names(), ", "))
}

func formatNames() []string {
	names := make([]string, len(stream.Formats))
	for i := range stream.Formats {
		names[i] = stream.Formats[i].Name
	}
	return names
}

func parseHexByte(s string) (uint8, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "0x"), 16, 16)
	if err != nil || v > 0xFF {
		return 0, errors.Errorf("invalid register value: %s", s)
	}
	return uint8(v), nil
}

// buildRegisters assembles the effective register image. Precedence:
// preset, then regdump, then individual --reg-* flags.
func buildRegisters() ([base.RegCount]uint8, error) {
	var regs [base.RegCount]uint8

	if settings.Preset != "" {
		p, err := presets.Lookup(settings.Preset)
		if err != nil {
			return regs, err
		}
		regs = p.Regs
	}

	if settings.RegDump != "" {
		hex := strings.TrimPrefix(settings.RegDump, "0x")
		hex = strings.Join(strings.Fields(hex), "")
		if len(hex)%2 != 0 {
			return regs, errors.Errorf("odd number of hex digits in regdump")
		}
		if len(hex) > 2*base.AddressCount {
			return regs, errors.Errorf("regdump longer than %d bytes", base.AddressCount)
		}
		for i := 0; i*2 < len(hex); i++ {
			v, err := parseHexByte(hex[i*2 : i*2+2])
			if err != nil {
				return regs, errors.Wrap(err, "parsing regdump")
			}
			if i < base.RegCount {
				regs[i] = v
			}
		}
	}

	for i, s := range regFlags {
		if s == "" {
			continue
		}
		v, err := parseHexByte(s)
		if err != nil {
			return regs, err
		}
		regs[i] = v
	}

	return regs, nil
}

func writeRegisters(p chip.Processor, regs [base.RegCount]uint8) {
	for addr := 0; addr < base.RegCount; addr++ {
		p.Write(uint8(addr), regs[addr])
	}
}

func toFixed(v float64) chip.Fixed {
	return chip.Fixed(utils.ClampFloat(v) * base.FixedMax)
}

// makeEngine builds the requested chip variant, loaded with regs but
// not yet started. The returned process closure consumes one input
// frame and fills out[phase][channel], returning the phase count.
func makeEngine(regs [base.RegCount]uint8) (chip.Processor, func([2]float64, *[2][2]float64) int, int, error) {
	switch settings.Engine {
	case "fixed":
		c := chip.NewFixedChip()
		c.Reset()
		writeRegisters(c, regs)
		var data chip.FixedData
		process := func(in [2]float64, out *[2][2]float64) int {
			data.Inputs[0] = toFixed(in[0])
			data.Inputs[1] = toFixed(in[1])
			c.Process(&data)
			const k = 1.0 / base.FixedMax
			out[0][0] = float64(data.Outputs[0][0]) * k
			out[0][1] = float64(data.Outputs[1][0]) * k
			out[1][0] = float64(data.Outputs[0][1]) * k
			out[1][1] = float64(data.Outputs[1][1]) * k
			return 2
		}
		return c, process, base.OutputRate, nil

	case "float":
		c := chip.NewFloatChip()
		c.Reset()
		writeRegisters(c, regs)
		var data chip.FloatData
		process := func(in [2]float64, out *[2][2]float64) int {
			data.Inputs[0] = in[0]
			data.Inputs[1] = in[1]
			c.Process(&data)
			out[0][0] = data.Outputs[0][0]
			out[0][1] = data.Outputs[1][0]
			out[1][0] = data.Outputs[0][1]
			out[1][1] = data.Outputs[1][1]
			return 2
		}
		return c, process, base.OutputRate, nil

	case "ideal":
		c := chip.NewIdealChip()
		if err := c.Setup(settings.Rate); err != nil {
			return nil, nil, 0, err
		}
		c.Reset()
		writeRegisters(c, regs)
		var data chip.IdealData
		process := func(in [2]float64, out *[2][2]float64) int {
			data.Inputs[0] = in[0]
			data.Inputs[1] = in[1]
			c.Process(&data)
			out[0][0] = data.Outputs[0]
			out[0][1] = data.Outputs[1]
			return 1
		}
		return c, process, settings.Rate, nil

	case "short":
		c := chip.NewShortChip()
		if err := c.Setup(settings.Rate); err != nil {
			return nil, nil, 0, err
		}
		c.Reset()
		writeRegisters(c, regs)
		var data chip.ShortData
		process := func(in [2]float64, out *[2][2]float64) int {
			data.Inputs[0] = toFixed(in[0])
			data.Inputs[1] = toFixed(in[1])
			c.Process(&data)
			const k = 1.0 / base.FixedMax
			out[0][0] = float64(data.Outputs[0]) * k
			out[0][1] = float64(data.Outputs[1]) * k
			return 1
		}
		return c, process, settings.Rate, nil
	}
	return nil, nil, 0, errors.Errorf("unknown engine: %s", settings.Engine)
}

// readRawFrame reads both input channels. EOF on the first channel
// is a clean end of stream; EOF between channels is a truncated
// frame.
func readRawFrame(r *bufio.Reader, f *stream.Format) ([2]float64, error) {
	var frame [2]float64
	var err error

	frame[0], err = f.Read(r)
	if err != nil {
		return frame, err
	}
	frame[1], err = f.Read(r)
	if err == io.EOF {
		return frame, errors.New("short read inside a frame")
	}
	return frame, err
}

func run() error {
	fmtAdapter, err := stream.Lookup(settings.Format)
	if err != nil {
		return err
	}

	regs, err := buildRegisters()
	if err != nil {
		return err
	}

	dry := utils.DBToLinear(settings.DryDB)
	wet := utils.DBToLinear(settings.WetDB)

	var src func() ([2]float64, error)
	if settings.InputWav != "" {
		wavIn, err := reader.OpenWav(settings.InputWav)
		if err != nil {
			return err
		}
		defer wavIn.Close()
		fmt.Fprintf(os.Stderr, "* Reading '%s' (%d channels @ %dHz)\n",
			settings.InputWav, wavIn.Channels(), wavIn.Rate())
		src = wavIn.ReadFrame
	} else {
		in := bufio.NewReader(os.Stdin)
		src = func() ([2]float64, error) { return readRawFrame(in, fmtAdapter) }
	}

	proc, process, outRate, err := makeEngine(regs)
	if err != nil {
		return err
	}

	if settings.PrintRegs {
		fmt.Fprintf(os.Stderr, "* Registers:\n%s", monitor.RegisterDump(proc))
	}

	capture := settings.OutputWav != "" || settings.Play
	var captured [][2]float64
	var rawOut *bufio.Writer
	if !capture {
		rawOut = bufio.NewWriter(os.Stdout)
	}

	emit := func(final *[2][2]float64, phases int) error {
		if capture {
			for p := 0; p < phases; p++ {
				captured = append(captured, final[p])
			}
			return nil
		}
		// Raw output is interleaved stereo: one left/right pair per
		// phase.
		for p := 0; p < phases; p++ {
			for ch := 0; ch < chip.OutputChannels; ch++ {
				if err := fmtAdapter.Write(rawOut, final[p][ch]); err != nil {
					return errors.Wrap(err, "writing output stream")
				}
			}
		}
		return nil
	}

	var mon *monitor.Monitor
	if settings.Monitor {
		mon, err = monitor.New()
		if err != nil {
			return err
		}
		defer mon.Close()
	}

	proc.Start()
	defer proc.Stop()

	var outs, final [2][2]float64
	stepping := settings.StepDebug
	sampleNum := 0

	for {
		in, err := src()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		phases := process(in, &outs)
		mono := (in[0] + in[1]) / 2
		for p := 0; p < phases; p++ {
			final[p][0] = dry*mono + wet*outs[p][0]
			final[p][1] = dry*mono + wet*outs[p][1]
		}
		if err := emit(&final, phases); err != nil {
			return err
		}

		if mon != nil {
			if sampleNum%settings.MonitorInterval == 0 {
				mon.Update(proc, sampleNum, final[0][0], final[0][1])
			}
			if mon.Quit {
				break
			}
		}

		if stepping {
			switch monitor.StepPrompt(proc, sampleNum, final[0][0], final[0][1]) {
			case "quit":
				return nil
			case "continue":
				stepping = false
			}
		}

		sampleNum++
	}

	if rawOut != nil {
		if err := rawOut.Flush(); err != nil {
			return errors.Wrap(err, "flushing output stream")
		}
	}
	if settings.OutputWav != "" {
		if err := writer.SaveAsWAV(settings.OutputWav, outRate, captured); err != nil {
			return err
		}
	}
	if settings.Play {
		if err := player.Play(outRate, captured); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	parseCommandLineParameters()

	if err := run(); err != nil {
		color.New(color.FgRed).Fprintf(color.Error, "ERROR: %s\n", err)
		syscall.Exit(1)
	}
}
