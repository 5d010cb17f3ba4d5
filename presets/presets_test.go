package presets

import (
	"testing"

	"github.com/sverrel/ym7128emu/base"
)

func Test_TableShape(t *testing.T) {
	if len(Table) != 19 {
		t.Fatalf("preset table holds %d entries, want 19", len(Table))
	}

	seen := map[string]bool{}
	for _, p := range Table {
		if seen[p.Name] {
			t.Errorf("duplicate preset name: %s", p.Name)
		}
		seen[p.Name] = true

		for addr, v := range p.Regs {
			if v&^base.AddressMasks[addr] != 0 {
				t.Errorf("preset %s: register %s value 0x%02X exceeds its field",
					p.Name, base.RegisterNames[addr], v)
			}
		}
	}
}

func Test_DirectPreset(t *testing.T) {
	p, err := Lookup("direct")
	if err != nil {
		t.Fatal(err)
	}

	full := map[int]bool{
		base.REG_GL1: true, base.REG_GR1: true,
		base.REG_VM: true, base.REG_VL: true, base.REG_VR: true,
	}
	for addr, v := range p.Regs {
		if full[addr] {
			if v != 0x3F {
				t.Errorf("direct: %s = 0x%02X, want 0x3F", base.RegisterNames[addr], v)
			}
		} else if v != 0 {
			t.Errorf("direct: %s = 0x%02X, want 0", base.RegisterNames[addr], v)
		}
	}
}

func Test_Lookup(t *testing.T) {
	if _, err := Lookup("no-such-preset"); err == nil {
		t.Errorf("unknown preset should error")
	}
	names := Names()
	if len(names) != len(Table) {
		t.Errorf("Names() returned %d entries", len(names))
	}
	for _, n := range names {
		if _, err := Lookup(n); err != nil {
			t.Errorf("listed preset %s did not resolve", n)
		}
	}
}
