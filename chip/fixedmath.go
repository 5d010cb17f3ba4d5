package chip

import "github.com/sverrel/ym7128emu/base"

// Fixed is one sample of the fixed-point pipeline, an S.13 value in
// [base.FixedMin, base.FixedMax]. All arithmetic on it saturates; no
// intermediate escapes the 14-bit range.
type Fixed = int16

func clampFixed(x int32) Fixed {
	if x > base.FixedMax {
		return base.FixedMax
	}
	if x < base.FixedMin {
		return base.FixedMin
	}
	return Fixed(x)
}

func addSat(a, b Fixed) Fixed {
	return clampFixed(int32(a) + int32(b))
}

// mulSat applies a S.13 gain coefficient. The product is truncated
// toward zero, matching the chip's multiplier.
func mulSat(a Fixed, gain int16) Fixed {
	return clampFixed(int32(a) * int32(gain) / (1 << base.GainBits))
}

// halfway is the oversampling interpolation kernel: the midpoint of
// the current and previous mixer output.
func halfway(cur, prev Fixed) Fixed {
	return Fixed((int32(cur) + int32(prev)) / 2)
}
