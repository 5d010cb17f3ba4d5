package writer

import (
	"fmt"
	"os"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
	"github.com/pkg/errors"
)

// CaptureStreamer replays a captured output buffer as a beep stream,
// for WAV encoding and speaker playback.
type CaptureStreamer struct {
	Data           [][2]float64
	SamplesWritten int
}

func (cs *CaptureStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if cs.SamplesWritten >= len(cs.Data) {
		return 0, false
	}
	n = copy(samples, cs.Data[cs.SamplesWritten:])
	cs.SamplesWritten += n
	return n, true
}

func (cs *CaptureStreamer) Err() error {
	return nil
}

// SaveAsWAV writes the captured stereo buffer to a 16-bit WAV file
// at the given rate.
func SaveAsWAV(filename string, rate int, samples [][2]float64) error {
	fmt.Fprintf(os.Stderr, "* Writing to '%s' (%d samples @ %dHz)\n", filename, len(samples), rate)

	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "creating output wav")
	}

	format := beep.Format{
		SampleRate:  beep.SampleRate(rate),
		NumChannels: 2,
		Precision:   2,
	}
	if err := wav.Encode(f, &CaptureStreamer{Data: samples}, format); err != nil {
		f.Close()
		return errors.Wrap(err, "encoding wav")
	}
	return f.Close()
}
