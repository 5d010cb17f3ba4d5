package chip

import "github.com/sverrel/ym7128emu/base"

// FloatChip runs the same signal-flow graph as FixedChip with
// float64 arithmetic: the register quantization is kept (gains decode
// through the same tables) but the signal path neither saturates nor
// truncates.
type FloatChip struct {
	registerFile

	gains [base.REG_C1 + 1]float64
	taps  [9]int

	buffer *floatBuffer
	lp     float64
	prevL  float64
	prevR  float64

	running bool
}

func NewFloatChip() *FloatChip {
	c := &FloatChip{buffer: newFloatBuffer(base.TapMax)}
	c.Reset()
	return c
}

func (c *FloatChip) Reset() {
	c.registerFile.Reset()
	for i := range c.gains {
		c.gains[i] = 0
	}
	for i := range c.taps {
		c.taps[i] = 0
	}
	c.buffer.Reset()
	c.lp = 0
	c.prevL = 0
	c.prevR = 0
}

func (c *FloatChip) Start() { c.running = true }
func (c *FloatChip) Stop()  { c.running = false }

func (c *FloatChip) Write(addr uint8, value uint8) {
	if !c.registerFile.Write(addr, value) {
		return
	}
	switch a := int(addr); {
	case a <= base.REG_C1:
		c.gains[a] = base.GainFloat[c.gainField(a)]
	case a <= base.REG_T8:
		c.taps[a-base.REG_T0] = base.TapTable[c.tapField(a-base.REG_T0)]
	}
}

func (c *FloatChip) Process(data *FloatData) {
	if !c.running {
		for ch := 0; ch < OutputChannels; ch++ {
			data.Outputs[ch][0] = 0
			data.Outputs[ch][1] = 0
		}
		return
	}

	x := (data.Inputs[0] + data.Inputs[1]) / 2

	fb := c.buffer.Read(c.taps[0])
	lp := fb*c.gains[base.REG_C0] + c.lp*c.gains[base.REG_C1]
	c.lp = lp

	head := x*c.gains[base.REG_VM] + lp*c.gains[base.REG_VC]
	c.buffer.Write(head)

	var left, right float64
	for k := 1; k <= 8; k++ {
		s := c.buffer.Read(c.taps[k])
		left += s * c.gains[base.REG_GL1+k-1]
		right += s * c.gains[base.REG_GR1+k-1]
	}

	vl := c.gains[base.REG_VL]
	vr := c.gains[base.REG_VR]
	data.Outputs[0][0] = left * vl
	data.Outputs[1][0] = right * vr
	data.Outputs[0][1] = (left + c.prevL) / 2 * vl
	data.Outputs[1][1] = (right + c.prevR) / 2 * vr

	c.prevL = left
	c.prevR = right
}
