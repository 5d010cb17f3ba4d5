package chip

import (
	"github.com/pkg/errors"

	"github.com/sverrel/ym7128emu/base"
)

// IdealChip is the rate-agnostic float model. Setup picks the
// operating sample rate; tap positions are rescaled from the chip's
// native rate and kept fractional, so tap reads interpolate between
// the two neighbouring delay slots. Output is a single stereo pair
// per input sample, no oversampling.
type IdealChip struct {
	registerFile

	rate  int
	gains [base.REG_C1 + 1]float64
	taps  [9]float64

	buffer *floatBuffer
	lp     float64

	running bool
}

func NewIdealChip() *IdealChip {
	c := &IdealChip{rate: base.NativeRate}
	c.buffer = newFloatBuffer(c.maxTap())
	c.Reset()
	return c
}

func (c *IdealChip) maxTap() int {
	return int(float64(base.TapMax)*float64(c.rate)/base.NativeRate) + 1
}

func (c *IdealChip) scaleTap(field uint8) float64 {
	return float64(base.TapTable[field]) * float64(c.rate) / base.NativeRate
}

// Setup sets the operating sample rate and resizes the delay memory
// accordingly. Delay contents do not survive a rate change.
func (c *IdealChip) Setup(rate int) error {
	if rate < 1 {
		return errors.Errorf("invalid sample rate: %d", rate)
	}
	c.rate = rate
	c.buffer = newFloatBuffer(c.maxTap())
	for k := 0; k < 9; k++ {
		c.taps[k] = c.scaleTap(c.tapField(k))
	}
	return nil
}

// Rate returns the operating sample rate.
func (c *IdealChip) Rate() int { return c.rate }

func (c *IdealChip) Reset() {
	c.registerFile.Reset()
	for i := range c.gains {
		c.gains[i] = 0
	}
	for i := range c.taps {
		c.taps[i] = 0
	}
	c.buffer.Reset()
	c.lp = 0
}

func (c *IdealChip) Start() { c.running = true }
func (c *IdealChip) Stop()  { c.running = false }

func (c *IdealChip) Write(addr uint8, value uint8) {
	if !c.registerFile.Write(addr, value) {
		return
	}
	switch a := int(addr); {
	case a <= base.REG_C1:
		c.gains[a] = base.GainFloat[c.gainField(a)]
	case a <= base.REG_T8:
		c.taps[a-base.REG_T0] = c.scaleTap(c.tapField(a - base.REG_T0))
	}
}

func (c *IdealChip) Process(data *IdealData) {
	if !c.running {
		data.Outputs[0] = 0
		data.Outputs[1] = 0
		return
	}

	x := (data.Inputs[0] + data.Inputs[1]) / 2

	fb := c.buffer.ReadFrac(c.taps[0])
	lp := fb*c.gains[base.REG_C0] + c.lp*c.gains[base.REG_C1]
	c.lp = lp

	head := x*c.gains[base.REG_VM] + lp*c.gains[base.REG_VC]
	c.buffer.Write(head)

	var left, right float64
	for k := 1; k <= 8; k++ {
		s := c.buffer.ReadFrac(c.taps[k])
		left += s * c.gains[base.REG_GL1+k-1]
		right += s * c.gains[base.REG_GR1+k-1]
	}

	data.Outputs[0] = left * c.gains[base.REG_VL]
	data.Outputs[1] = right * c.gains[base.REG_VR]
}
