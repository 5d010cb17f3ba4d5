package chip

import (
	"testing"

	"github.com/sverrel/ym7128emu/base"
)

func Test_RegisterWriteMasking(t *testing.T) {
	c := NewFixedChip()

	for addr := 0; addr < base.AddressCount; addr++ {
		for v := 0; v < 256; v++ {
			c.Write(uint8(addr), uint8(v))
			got := c.Read(uint8(addr))
			want := uint8(v) & base.AddressMasks[addr]
			if got != want {
				t.Fatalf("addr %d value 0x%02X: read back 0x%02X, want 0x%02X",
					addr, v, got, want)
			}
		}
	}
}

func Test_RegisterOutOfRange(t *testing.T) {
	c := NewFloatChip()
	c.Write(200, 0xFF)
	if c.Read(200) != 0 {
		t.Errorf("out-of-range read must return 0")
	}

	// A bad write must not disturb valid state
	c.Write(base.REG_VM, 0x3F)
	c.Write(255, 0x12)
	if c.Read(base.REG_VM) != 0x3F {
		t.Errorf("out-of-range write clobbered VM")
	}
}

func Test_ResetClearsRegisters(t *testing.T) {
	for _, p := range []Processor{NewFixedChip(), NewFloatChip(), NewIdealChip(), NewShortChip()} {
		p.Write(base.REG_GL1, 0x3F)
		p.Write(base.REG_T0, 0x1F)
		p.Reset()
		if p.Read(base.REG_GL1) != 0 || p.Read(base.REG_T0) != 0 {
			t.Errorf("%T: Reset left register state behind", p)
		}
	}
}

func Test_ProcessDoesNotTouchRegisters(t *testing.T) {
	c := NewFixedChip()
	c.Write(base.REG_VM, 0x3F)
	c.Write(base.REG_T1, 0x05)
	c.Start()

	var data FixedData
	data.Inputs[0] = 1000
	data.Inputs[1] = 1000
	for i := 0; i < 100; i++ {
		c.Process(&data)
	}

	if c.Read(base.REG_VM) != 0x3F || c.Read(base.REG_T1) != 0x05 {
		t.Errorf("Process modified register state")
	}
}
