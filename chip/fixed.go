package chip

import "github.com/sverrel/ym7128emu/base"

// FixedChip is the bit-exact model of the chip's own pipeline: S.13
// saturating arithmetic at the native rate, with 2x oversampled
// output.
type FixedChip struct {
	registerFile

	// Decoded caches, refreshed on register writes
	gains [base.REG_C1 + 1]int16
	taps  [9]int

	buffer *fixedBuffer
	lp     Fixed // previous low-pass output
	prevL  Fixed // oversampling holds
	prevR  Fixed

	running bool
}

func NewFixedChip() *FixedChip {
	c := &FixedChip{buffer: newFixedBuffer(base.TapMax)}
	c.Reset()
	return c
}

func (c *FixedChip) Reset() {
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

func (c *FixedChip) Start() { c.running = true }
func (c *FixedChip) Stop()  { c.running = false }

func (c *FixedChip) Write(addr uint8, value uint8) {
	if !c.registerFile.Write(addr, value) {
		return
	}
	switch a := int(addr); {
	case a <= base.REG_C1:
		c.gains[a] = base.GainFixed[c.gainField(a)]
	case a <= base.REG_T8:
		c.taps[a-base.REG_T0] = base.TapTable[c.tapField(a-base.REG_T0)]
	}
}

// Process consumes one input frame and produces both oversampling
// phases of the stereo output.
func (c *FixedChip) Process(data *FixedData) {
	if !c.running {
		for ch := 0; ch < OutputChannels; ch++ {
			data.Outputs[ch][0] = 0
			data.Outputs[ch][1] = 0
		}
		return
	}

	x := Fixed((int32(data.Inputs[0]) + int32(data.Inputs[1])) / 2)

	// Feedback tap through the one-pole low-pass, then VC
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

	vl := c.gains[base.REG_VL]
	vr := c.gains[base.REG_VR]
	data.Outputs[0][0] = mulSat(left, vl)
	data.Outputs[1][0] = mulSat(right, vr)
	data.Outputs[0][1] = mulSat(halfway(left, c.prevL), vl)
	data.Outputs[1][1] = mulSat(halfway(right, c.prevR), vr)

	c.prevL = left
	c.prevR = right
}
