// Package presets holds ready-made register configurations in the
// spirit of the datasheet application examples: a dry reference
// setting plus a spread of rooms, halls and effect settings.
package presets

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/sverrel/ym7128emu/base"
)

// Preset is a full register image for the chip.
type Preset struct {
	Name string
	Regs [base.RegCount]uint8
}

// regs builds a register image from mnemonic/value pairs.
func regs(pairs map[string]uint8) [base.RegCount]uint8 {
	var out [base.RegCount]uint8
	for name, v := range pairs {
		addr := base.RegisterAddress(name)
		if addr < 0 {
			panic("unknown register in preset: " + name)
		}
		out[addr] = v & base.AddressMasks[addr]
	}
	return out
}

var Table = []Preset{
	{"direct", regs(map[string]uint8{
		"GL1": 0x3F, "GR1": 0x3F, "VM": 0x3F, "VL": 0x3F, "VR": 0x3F,
	})},
	{"room1", regs(map[string]uint8{
		"GL1": 0x3A, "GR1": 0x3A, "GL2": 0x32, "GR2": 0x30,
		"VM": 0x3F, "VC": 0x32, "VL": 0x3C, "VR": 0x3C,
		"C0": 0x3A, "C1": 0x2C,
		"T0": 0x02, "T1": 0x01, "T2": 0x03,
	})},
	{"room2", regs(map[string]uint8{
		"GL1": 0x38, "GR1": 0x38, "GL2": 0x30, "GR2": 0x2E, "GL3": 0x0C, "GR3": 0x2C,
		"VM": 0x3F, "VC": 0x34, "VL": 0x3C, "VR": 0x3C,
		"C0": 0x38, "C1": 0x2E,
		"T0": 0x04, "T1": 0x02, "T2": 0x04, "T3": 0x06,
	})},
	{"room3", regs(map[string]uint8{
		"GL1": 0x39, "GR1": 0x38, "GL2": 0x11, "GR2": 0x31, "GL3": 0x2C, "GR3": 0x0D,
		"VM": 0x3F, "VC": 0x35, "VL": 0x3C, "VR": 0x3C,
		"C0": 0x37, "C1": 0x30,
		"T0": 0x05, "T1": 0x03, "T2": 0x05, "T3": 0x08,
	})},
	{"hall1", regs(map[string]uint8{
		"GL1": 0x38, "GR1": 0x36, "GL2": 0x32, "GR2": 0x32, "GL3": 0x0E, "GR3": 0x2E,
		"GL4": 0x2A, "GR4": 0x0A,
		"VM": 0x3F, "VC": 0x38, "VL": 0x3D, "VR": 0x3D,
		"C0": 0x36, "C1": 0x32,
		"T0": 0x0A, "T1": 0x04, "T2": 0x08, "T3": 0x0C, "T4": 0x10,
	})},
	{"hall2", regs(map[string]uint8{
		"GL1": 0x36, "GR1": 0x36, "GL2": 0x10, "GR2": 0x30, "GL3": 0x2C, "GR3": 0x0C,
		"GL4": 0x08, "GR4": 0x28,
		"VM": 0x3F, "VC": 0x3A, "VL": 0x3D, "VR": 0x3D,
		"C0": 0x35, "C1": 0x34,
		"T0": 0x0E, "T1": 0x06, "T2": 0x0B, "T3": 0x11, "T4": 0x16,
	})},
	{"hall3", regs(map[string]uint8{
		"GL1": 0x35, "GR1": 0x34, "GL2": 0x30, "GR2": 0x0F, "GL3": 0x0B, "GR3": 0x2B,
		"GL4": 0x28, "GR4": 0x07, "GL5": 0x04, "GR5": 0x24,
		"VM": 0x3F, "VC": 0x3B, "VL": 0x3E, "VR": 0x3E,
		"C0": 0x34, "C1": 0x35,
		"T0": 0x13, "T1": 0x07, "T2": 0x0D, "T3": 0x13, "T4": 0x19, "T5": 0x1E,
	})},
	{"stage1", regs(map[string]uint8{
		"GL1": 0x3A, "GR1": 0x39, "GL2": 0x2E, "GR2": 0x0E,
		"VM": 0x3F, "VC": 0x30, "VL": 0x3C, "VR": 0x3C,
		"C0": 0x39, "C1": 0x2A,
		"T0": 0x03, "T1": 0x02, "T2": 0x05,
	})},
	{"stage2", regs(map[string]uint8{
		"GL1": 0x38, "GR1": 0x38, "GL2": 0x0F, "GR2": 0x2F, "GL3": 0x29, "GR3": 0x09,
		"VM": 0x3F, "VC": 0x33, "VL": 0x3C, "VR": 0x3C,
		"C0": 0x38, "C1": 0x2C,
		"T0": 0x06, "T1": 0x03, "T2": 0x07, "T3": 0x0A,
	})},
	{"theater1", regs(map[string]uint8{
		"GL1": 0x36, "GR1": 0x35, "GL2": 0x31, "GR2": 0x11, "GL3": 0x0D, "GR3": 0x2D,
		"GL4": 0x27, "GR4": 0x06,
		"VM": 0x3F, "VC": 0x36, "VL": 0x3D, "VR": 0x3D,
		"C0": 0x36, "C1": 0x31,
		"T0": 0x0C, "T1": 0x05, "T2": 0x0A, "T3": 0x0F, "T4": 0x14,
	})},
	{"theater2", regs(map[string]uint8{
		"GL1": 0x35, "GR1": 0x35, "GL2": 0x0F, "GR2": 0x30, "GL3": 0x2A, "GR3": 0x0A,
		"GL4": 0x05, "GR4": 0x26,
		"VM": 0x3F, "VC": 0x38, "VL": 0x3D, "VR": 0x3D,
		"C0": 0x35, "C1": 0x33,
		"T0": 0x10, "T1": 0x06, "T2": 0x0C, "T3": 0x12, "T4": 0x18,
	})},
	{"church", regs(map[string]uint8{
		"GL1": 0x34, "GR1": 0x33, "GL2": 0x2F, "GR2": 0x0F, "GL3": 0x0A, "GR3": 0x2A,
		"GL4": 0x26, "GR4": 0x05, "GL5": 0x02, "GR5": 0x22,
		"VM": 0x3F, "VC": 0x3C, "VL": 0x3E, "VR": 0x3E,
		"C0": 0x33, "C1": 0x36,
		"T0": 0x17, "T1": 0x08, "T2": 0x0E, "T3": 0x14, "T4": 0x1A, "T5": 0x1F,
	})},
	{"cathedral", regs(map[string]uint8{
		"GL1": 0x33, "GR1": 0x33, "GL2": 0x0E, "GR2": 0x2E, "GL3": 0x29, "GR3": 0x09,
		"GL4": 0x04, "GR4": 0x25, "GL5": 0x21, "GR5": 0x01,
		"VM": 0x3F, "VC": 0x3D, "VL": 0x3E, "VR": 0x3E,
		"C0": 0x32, "C1": 0x37,
		"T0": 0x1B, "T1": 0x0A, "T2": 0x10, "T3": 0x16, "T4": 0x1C, "T5": 0x1F,
	})},
	{"plate", regs(map[string]uint8{
		"GL1": 0x37, "GR1": 0x17, "GL2": 0x13, "GR2": 0x33, "GL3": 0x2E, "GR3": 0x0E,
		"VM": 0x3F, "VC": 0x36, "VL": 0x3C, "VR": 0x3C,
		"C0": 0x3C, "C1": 0x24,
		"T0": 0x02, "T1": 0x01, "T2": 0x02, "T3": 0x03,
	})},
	{"spring", regs(map[string]uint8{
		"GL1": 0x39, "GR1": 0x19, "GL2": 0x30, "GR2": 0x10,
		"VM": 0x3F, "VC": 0x39, "VL": 0x3C, "VR": 0x3C,
		"C0": 0x3E, "C1": 0x20,
		"T0": 0x01, "T1": 0x01, "T2": 0x02,
	})},
	{"echo", regs(map[string]uint8{
		"GL1": 0x3C, "GR1": 0x3C,
		"VM": 0x3F, "VC": 0x38, "VL": 0x3D, "VR": 0x3D,
		"C0": 0x3F,
		"T0": 0x14, "T1": 0x14,
	})},
	{"slapback", regs(map[string]uint8{
		"GL1": 0x3F, "GR1": 0x3B,
		"VM": 0x3F, "VL": 0x3D, "VR": 0x3D,
		"T1": 0x04, "T2": 0x00,
	})},
	{"karaoke", regs(map[string]uint8{
		"GL1": 0x3B, "GR1": 0x3B, "GL2": 0x35, "GR2": 0x15,
		"VM": 0x3F, "VC": 0x35, "VL": 0x3C, "VR": 0x3C,
		"C0": 0x3B, "C1": 0x28,
		"T0": 0x07, "T1": 0x04, "T2": 0x09,
	})},
	{"stadium", regs(map[string]uint8{
		"GL1": 0x34, "GR1": 0x14, "GL2": 0x31, "GR2": 0x11, "GL3": 0x2D, "GR3": 0x0D,
		"GL4": 0x28, "GR4": 0x08,
		"VM": 0x3F, "VC": 0x3C, "VL": 0x3E, "VR": 0x3E,
		"C0": 0x34, "C1": 0x34,
		"T0": 0x1F, "T1": 0x0C, "T2": 0x13, "T3": 0x1A, "T4": 0x1F,
	})},
}

// Lookup resolves a preset by name.
func Lookup(name string) (*Preset, error) {
	for i := range Table {
		if Table[i].Name == name {
			return &Table[i], nil
		}
	}
	return nil, errors.Errorf("unknown preset: %s", name)
}

// Names returns the preset names, sorted.
func Names() []string {
	names := make([]string, len(Table))
	for i, p := range Table {
		names[i] = p.Name
	}
	sort.Strings(names)
	return names
}
