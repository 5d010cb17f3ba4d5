package reader

import (
	"io"
	"os"

	"github.com/pkg/errors"
	wav "github.com/youpy/go-wav"
)

// WavInput reads normalized stereo frames from a WAV file. Mono
// files are duplicated into both chip input channels.
type WavInput struct {
	file     *os.File
	rd       *wav.Reader
	channels int
	rate     int

	buf []wav.Sample
	pos int
}

func OpenWav(filename string) (*WavInput, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "opening input wav")
	}

	rd := wav.NewReader(f)
	format, err := rd.Format()
	if err != nil {
		f.Close()
		return nil, errors.Wrap(err, "reading wav header")
	}
	if format.NumChannels < 1 || format.NumChannels > 2 {
		f.Close()
		return nil, errors.Errorf("unsupported channel count: %d", format.NumChannels)
	}

	return &WavInput{
		file:     f,
		rd:       rd,
		channels: int(format.NumChannels),
		rate:     int(format.SampleRate),
	}, nil
}

func (w *WavInput) Rate() int {
	return w.rate
}

func (w *WavInput) Channels() int {
	return w.channels
}

// ReadFrame returns the next frame as normalized floats. io.EOF
// marks the end of the file.
func (w *WavInput) ReadFrame() ([2]float64, error) {
	var frame [2]float64

	for w.pos >= len(w.buf) {
		samples, err := w.rd.ReadSamples()
		if err == io.EOF {
			return frame, io.EOF
		}
		if err != nil {
			return frame, errors.Wrap(err, "reading wav samples")
		}
		w.buf = samples
		w.pos = 0
	}

	s := w.buf[w.pos]
	w.pos++

	frame[0] = w.rd.FloatValue(s, 0)
	if w.channels == 2 {
		frame[1] = w.rd.FloatValue(s, 1)
	} else {
		frame[1] = frame[0]
	}
	return frame, nil
}

func (w *WavInput) Close() error {
	return w.file.Close()
}
