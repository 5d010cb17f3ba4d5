package chip

import (
	"math"

	"github.com/pkg/errors"

	"github.com/sverrel/ym7128emu/base"
)

// ShortChip is the rate-agnostic fixed-point model: the same S.13
// saturating pipeline as FixedChip, but with the tap delays rescaled
// to a caller-chosen rate and rounded to whole samples. One output
// pair per input sample.
type ShortChip struct {
	registerFile

	rate  int
	gains [base.REG_C1 + 1]int16
	taps  [9]int

	buffer *fixedBuffer
	lp     Fixed

	running bool
}

func NewShortChip() *ShortChip {
	c := &ShortChip{rate: base.NativeRate}
	c.buffer = newFixedBuffer(c.maxTap())
	c.Reset()
	return c
}

func (c *ShortChip) maxTap() int {
	return int(float64(base.TapMax)*float64(c.rate)/base.NativeRate) + 1
}

func (c *ShortChip) scaleTap(field uint8) int {
	return int(math.Round(float64(base.TapTable[field]) * float64(c.rate) / base.NativeRate))
}

func (c *ShortChip) Setup(rate int) error {
	if rate < 1 {
		return errors.Errorf("invalid sample rate: %d", rate)
	}
	c.rate = rate
	c.buffer = newFixedBuffer(c.maxTap())
	for k := 0; k < 9; k++ {
		c.taps[k] = c.scaleTap(c.tapField(k))
	}
	return nil
}

func (c *ShortChip) Rate() int { return c.rate }

func (c *ShortChip) Reset() {
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

func (c *ShortChip) Start() { c.running = true }
func (c *ShortChip) Stop()  { c.running = false }

func (c *ShortChip) Write(addr uint8, value uint8) {
	if !c.registerFile.Write(addr, value) {
		return
	}
	switch a := int(addr); {
	case a <= base.REG_C1:
		c.gains[a] = base.GainFixed[c.gainField(a)]
	case a <= base.REG_T8:
		c.taps[a-base.REG_T0] = c.scaleTap(c.tapField(a - base.REG_T0))
	}
}

func (c *ShortChip) Process(data *ShortData) {
	if !c.running {
		data.Outputs[0] = 0
		data.Outputs[1] = 0
		return
	}

	x := Fixed((int32(data.Inputs[0]) + int32(data.Inputs[1])) / 2)

	fb := c.buffer.Read(c.taps[0])
	lp := addSat(mulSat(fb, c.gains[base.REG_C0]), mulSat(c.lp, c.gains[base.REG_C1]))
	c.lp = lp

	head := addSat(mulSat(x, c.gains[base.REG_VM]), mulSat(lp, c.gains[base.REG_VC]))
	c.buffer.Write(head)

	var left, right Fixed
	for k := 1; k <= 8; k++ {
		s := c.buffer.Read(c.taps[k])
		left = addSat(left, mulSat(s, c.gains[base.REG_GL1+k-1]))
		right = addSat(right, mulSat(s, c.gains[base.REG_GR1+k-1]))
	}

	data.Outputs[0] = mulSat(left, c.gains[base.REG_VL])
	data.Outputs[1] = mulSat(right, c.gains[base.REG_VR])
}
