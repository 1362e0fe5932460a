// Package wavwriter records tone output to disk as a WAV file. Samples are
// buffered in memory in their entirety and written out on Close, which
// makes it suitable for capturing short recordings only.
package wavwriter

import (
	"fmt"
	"os"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/youpy/go-wav"
)

// WavWriter buffers unsigned 8 bit mono samples and writes them as a WAV
// file on Close.
type WavWriter struct {
	filename string
	buffer   []wav.Sample
}

// New returns a recorder that writes to the given file on Close.
func New(filename string) *WavWriter {
	return &WavWriter{
		filename: filename,
		buffer:   make([]wav.Sample, 0, chip8.SampleFrequency),
	}
}

// AddSamples appends one frame batch of unsigned 8 bit samples.
func (w *WavWriter) AddSamples(samples []uint8) {
	for _, value := range samples {
		s := wav.Sample{}
		s.Values[0] = int(value)
		w.buffer = append(w.buffer, s)
	}
}

// Close writes the buffered samples to disk.
func (w *WavWriter) Close() (rerr error) {
	f, err := os.Create(w.filename)
	if err != nil {
		return fmt.Errorf("creating WAV file '%s': %w", w.filename, err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = fmt.Errorf("closing WAV file '%s': %w", w.filename, err)
		}
	}()

	enc := wav.NewWriter(f, uint32(len(w.buffer)), 1, uint32(chip8.SampleFrequency), 8)
	if err := enc.WriteSamples(w.buffer); err != nil {
		return fmt.Errorf("writing WAV samples: %w", err)
	}
	return nil
}
