package chip

import (
	"math"
	"testing"

	"github.com/sverrel/ym7128emu/base"
)

func setupIdealTap(p Processor) {
	p.Reset()
	p.Write(base.REG_VM, 0x3F)
	p.Write(base.REG_GL1, 0x3F)
	p.Write(base.REG_GR1, 0x3F)
	p.Write(base.REG_VL, 0x3F)
	p.Write(base.REG_VR, 0x3F)
	p.Write(base.REG_T1, 0x01)
	p.Start()
}

func Test_IdealTapScaling(t *testing.T) {
	c := NewIdealChip()
	if err := c.Setup(2 * base.NativeRate); err != nil {
		t.Fatal(err)
	}
	setupIdealTap(c)

	// At exactly twice the native rate the scaled tap position is
	// integral, so the impulse surfaces in a single sample.
	d := 2 * base.TapTable[1]
	var data IdealData
	for i := 0; i <= d+5; i++ {
		if i == 0 {
			data.Inputs[0] = 1.0
			data.Inputs[1] = 1.0
		} else {
			data.Inputs[0] = 0
			data.Inputs[1] = 0
		}
		c.Process(&data)
		if i < d && data.Outputs[0] != 0 {
			t.Fatalf("early output %f at sample %d (tap delay %d)", data.Outputs[0], i, d)
		}
		if i == d && math.Abs(data.Outputs[0]-fullGain*fullGain*fullGain) > 1e-12 {
			t.Fatalf("impulse at sample %d: got %f", i, data.Outputs[0])
		}
	}
}

func Test_IdealFractionalTap(t *testing.T) {
	c := NewIdealChip()
	rate := 30000
	if err := c.Setup(rate); err != nil {
		t.Fatal(err)
	}
	setupIdealTap(c)

	pos := float64(base.TapTable[1]) * float64(rate) / base.NativeRate
	d := int(pos)
	frac := pos - float64(d)
	if frac == 0 {
		t.Fatalf("test rate should give a fractional tap position, got %f", pos)
	}

	var data IdealData
	outs := make([]float64, d+3)
	for i := range outs {
		if i == 0 {
			data.Inputs[0] = 1.0
			data.Inputs[1] = 1.0
		} else {
			data.Inputs[0] = 0
			data.Inputs[1] = 0
		}
		c.Process(&data)
		outs[i] = data.Outputs[0]
	}

	// The impulse is split across the two neighbouring samples by
	// the interpolation weights.
	if outs[d] == 0 || outs[d+1] == 0 {
		t.Fatalf("fractional tap should spread the impulse over samples %d and %d: %v",
			d, d+1, outs[d:])
	}
	full := fullGain * fullGain * fullGain
	if math.Abs(outs[d]-(1-frac)*full) > 1e-9 || math.Abs(outs[d+1]-frac*full) > 1e-9 {
		t.Errorf("interpolation weights off: got (%f, %f), want (%f, %f)",
			outs[d], outs[d+1], (1-frac)*full, frac*full)
	}
	for i := 0; i < d; i++ {
		if outs[i] != 0 {
			t.Errorf("early output at sample %d: %f", i, outs[i])
		}
	}
}

func Test_ShortTapScaling(t *testing.T) {
	c := NewShortChip()
	rate := 30000
	if err := c.Setup(rate); err != nil {
		t.Fatal(err)
	}
	setupIdealTap(c)

	d := int(math.Round(float64(base.TapTable[1]) * float64(rate) / base.NativeRate))

	var data ShortData
	for i := 0; i <= d+5; i++ {
		if i == 0 {
			data.Inputs[0] = base.FixedMax
			data.Inputs[1] = base.FixedMax
		} else {
			data.Inputs[0] = 0
			data.Inputs[1] = 0
		}
		c.Process(&data)
		if i < d && data.Outputs[0] != 0 {
			t.Fatalf("early output at sample %d", i)
		}
		if i == d && data.Outputs[0] == 0 {
			t.Fatalf("impulse did not surface at the rounded tap delay %d", d)
		}
	}
}

func Test_ShortMatchesFixedAtNativeRate(t *testing.T) {
	s := NewShortChip()
	if err := s.Setup(base.NativeRate); err != nil {
		t.Fatal(err)
	}
	f := NewFixedChip()

	for _, p := range []Processor{s, f} {
		p.Reset()
		p.Write(base.REG_VM, 0x3F)
		p.Write(base.REG_VC, 0x34)
		p.Write(base.REG_C0, 0x3A)
		p.Write(base.REG_C1, 0x2C)
		p.Write(base.REG_T0, 0x02)
		p.Write(base.REG_GL1, 0x3F)
		p.Write(base.REG_GR2, 0x38)
		p.Write(base.REG_VL, 0x3F)
		p.Write(base.REG_VR, 0x3D)
		p.Write(base.REG_T1, 0x01)
		p.Write(base.REG_T2, 0x03)
		p.Start()
	}

	var sd ShortData
	var fd FixedData
	for i := 0; i < 1000; i++ {
		in := Fixed(i*131%8191 - 4095)
		sd.Inputs[0] = in
		sd.Inputs[1] = in
		fd.Inputs[0] = in
		fd.Inputs[1] = in
		s.Process(&sd)
		f.Process(&fd)

		// The short engine at native rate is the fixed pipeline
		// without oversampling: its pair must equal phase 0.
		if sd.Outputs[0] != fd.Outputs[0][0] || sd.Outputs[1] != fd.Outputs[1][0] {
			t.Fatalf("sample %d: short (%d, %d) != fixed phase 0 (%d, %d)",
				i, sd.Outputs[0], sd.Outputs[1], fd.Outputs[0][0], fd.Outputs[1][0])
		}
	}
}

func Test_SetupReallocates(t *testing.T) {
	c := NewIdealChip()
	if err := c.Setup(96000); err != nil {
		t.Fatal(err)
	}
	if c.Rate() != 96000 {
		t.Errorf("rate not applied")
	}
	// Taps written before a rate change are rescaled by Setup
	c.Write(base.REG_T1, 0x1F)
	if err := c.Setup(48000); err != nil {
		t.Fatal(err)
	}
	want := float64(base.TapTable[0x1F]) * 48000 / base.NativeRate
	if math.Abs(c.taps[1]-want) > 1e-9 {
		t.Errorf("tap not rescaled on Setup: %f, want %f", c.taps[1], want)
	}

	if err := c.Setup(0); err == nil {
		t.Errorf("Setup must reject rates below 1")
	}
}
