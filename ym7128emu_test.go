package main

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/sverrel/ym7128emu/base"
	"github.com/sverrel/ym7128emu/settings"
	"github.com/sverrel/ym7128emu/stream"
)

func Test_ParseHexByte(t *testing.T) {
	good := map[string]uint8{"3F": 0x3F, "0x1f": 0x1F, "00": 0, "ff": 0xFF}
	for s, want := range good {
		got, err := parseHexByte(s)
		if err != nil || got != want {
			t.Errorf("parseHexByte(%q) = %d, %v; want %d", s, got, err, want)
		}
	}

	for _, s := range []string{"", "zz", "100", "-1"} {
		if _, err := parseHexByte(s); err == nil {
			t.Errorf("parseHexByte(%q) should fail", s)
		}
	}
}

func Test_BuildRegistersPrecedence(t *testing.T) {
	defer func() {
		settings.Preset = ""
		settings.RegDump = ""
		regFlags = [base.RegCount]string{}
	}()

	settings.Preset = "direct"
	settings.RegDump = "0102"
	regFlags[base.RegisterAddress("GL2")] = "0x2A"

	regs, err := buildRegisters()
	if err != nil {
		t.Fatal(err)
	}

	// regdump overrides the preset bytes it covers
	if regs[base.REG_GL1] != 0x01 {
		t.Errorf("regdump did not override the preset: 0x%02X", regs[base.REG_GL1])
	}
	// individual flags win last, over both preset and regdump
	if regs[base.RegisterAddress("GL2")] != 0x2A {
		t.Errorf("--reg-GL2 did not apply")
	}
	// preset values survive where not overridden
	if regs[base.REG_VM] != 0x3F {
		t.Errorf("preset VM lost: 0x%02X", regs[base.REG_VM])
	}
}

func Test_BuildRegistersRejectsBadInput(t *testing.T) {
	defer func() {
		settings.Preset = ""
		settings.RegDump = ""
	}()

	settings.Preset = "nonexistent"
	if _, err := buildRegisters(); err == nil {
		t.Errorf("unknown preset should fail")
	}
	settings.Preset = ""

	settings.RegDump = "123"
	if _, err := buildRegisters(); err == nil {
		t.Errorf("odd-length regdump should fail")
	}

	settings.RegDump = strings.Repeat("0", 2*base.AddressCount+2)
	if _, err := buildRegisters(); err == nil {
		t.Errorf("oversized regdump should fail")
	}
}

func Test_ReadRawFrameEOF(t *testing.T) {
	f, err := stream.Lookup("S16_LE")
	if err != nil {
		t.Fatal(err)
	}

	// One full frame, then a clean EOF on the frame boundary
	r := bufio.NewReader(bytes.NewReader([]byte{0x00, 0x40, 0x00, 0xC0}))
	frame, err := readRawFrame(r, f)
	if err != nil {
		t.Fatal(err)
	}
	if frame[0] != 0.5 || frame[1] != -0.5 {
		t.Errorf("frame decoded to %v", frame)
	}
	if _, err := readRawFrame(r, f); err != io.EOF {
		t.Errorf("frame-boundary EOF should be io.EOF, got %v", err)
	}

	// EOF between the two channels is a truncated frame
	r = bufio.NewReader(bytes.NewReader([]byte{0x00, 0x40}))
	if _, err := readRawFrame(r, f); err == nil || err == io.EOF {
		t.Errorf("mid-frame EOF must be an error, got %v", err)
	}
}
