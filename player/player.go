package player

import (
	"fmt"
	"os"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/pkg/errors"

	"github.com/sverrel/ym7128emu/writer"
)

// Play renders the captured output buffer through the default audio
// device and blocks until it has drained.
func Play(rate int, samples [][2]float64) error {
	sr := beep.SampleRate(rate)
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return errors.Wrap(err, "initializing speaker")
	}
	defer speaker.Close()

	fmt.Fprintf(os.Stderr, "* Playing %d samples @ %dHz\n", len(samples), rate)

	done := make(chan bool)
	speaker.Play(beep.Seq(
		&writer.CaptureStreamer{Data: samples},
		beep.Callback(func() { done <- true }),
	))
	<-done
	return nil
}
