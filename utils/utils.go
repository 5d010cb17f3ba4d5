package utils

import (
	"fmt"
	"math"
)

// MuteDB is the dry/wet threshold: at or beyond +-128dB the path is
// muted outright.
const MuteDB = 128.0

// DBToLinear converts a decibel value to a linear multiplier.
func DBToLinear(db float64) float64 {
	if math.Abs(db) >= MuteDB {
		return 0
	}
	return math.Pow(10, db/20.0)
}

// ClampFloat limits a normalized sample to [-1, +1].
func ClampFloat(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

func Assert(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
