package base

import "math"

// Gain magnitude curve. The 5-bit magnitude index walks a 2dB ladder:
// index 31 is 0dB, index 1 is -60dB, index 0 is mute.
//
// GainFloat/GainFixed are indexed by the full 6-bit register field.
// Bit 5 is the polarity bit: set means positive, clear means
// negative, so 0x3F is the largest positive gain and 0x1F the largest
// negative one. Magnitude 0 decodes to exactly zero for both
// polarities.
var GainFloat [1 << GainDataBits]float64
var GainFixed [1 << GainDataBits]int16

// TapTable holds the selectable delay lengths in samples at the
// native rate. The 32 steps are spaced 3.25ms apart, 0..100.75ms.
var TapTable [TapCount]int

// TapMax is the largest entry of TapTable.
var TapMax int

const tapStepSeconds = 0.00325

func init() {
	// The float entries carry the same S.13 quantization as the
	// fixed ones; only the signal path differs between the engine
	// families.
	for m := 1; m < TapCount; m++ {
		db := -2.0 * float64(31-m)
		mag := math.Pow(10, db/20.0)
		fixed := int16(math.Round(mag * (1 << GainBits)))
		if fixed > FixedMax {
			fixed = FixedMax
		}
		GainFixed[m] = -fixed
		GainFixed[m|GainSignBit] = fixed
		GainFloat[m] = -float64(fixed) / (1 << GainBits)
		GainFloat[m|GainSignBit] = float64(fixed) / (1 << GainBits)
	}

	for i := 0; i < TapCount; i++ {
		TapTable[i] = int(math.Round(float64(i) * tapStepSeconds * NativeRate))
	}
	TapMax = TapTable[TapCount-1]
}
