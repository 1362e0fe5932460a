package chip8

import "math"

// Audio constants for the tone generator.
const (
	// SampleFrequency is the audio sample rate in Hz.
	SampleFrequency = 44100

	// AudioBufferSize is the number of samples per video frame.
	AudioBufferSize = SampleFrequency / 60

	toneFrequency = 440.0
	phaseRate     = 2 * math.Pi * toneFrequency / SampleFrequency
)

// Timer holds the delay and sound countdown counters and the phase
// accumulator of the tone generator. Update advances the counters once per
// video frame, independent of the number of CPU cycles executed.
type Timer struct {
	delay int
	sound int
	phase float64

	independent bool
}

// NewTimer returns a timer with both counters at zero. With independent set,
// the sound counter decrements on its own as on the original hardware,
// otherwise it follows the decremented delay counter.
func NewTimer(independent bool) *Timer {
	return &Timer{independent: independent}
}

// Delay returns the current delay counter value.
func (t *Timer) Delay() int {
	return t.delay
}

// Sound returns the current sound counter value.
func (t *Timer) Sound() int {
	return t.sound
}

// SetDelay sets the delay counter.
func (t *Timer) SetDelay(value int) {
	t.delay = value
}

// SetSound sets the sound counter.
func (t *Timer) SetSound(value int) {
	t.sound = value
}

// Update decrements the counters by one, floored at zero. In linked mode the
// sound counter is assigned the decremented delay value instead of counting
// down on its own.
func (t *Timer) Update() {
	delay := t.delay - 1
	if delay < 0 {
		delay = 0
	}
	t.delay = delay

	if t.independent {
		if t.sound > 0 {
			t.sound--
		}
		return
	}
	t.sound = delay
}

// Wave invokes the callback with one video frame worth of tone samples,
// amplitude sin(phase)/2. A sample is emitted on every iteration regardless
// of the sound counter, only the phase advance is gated on it, so the
// waveform freezes rather than dropping to zero when the counter runs out.
// Consumers that need true silence have to gate on Sound themselves.
func (t *Timer) Wave(callback func(n int, sample float64)) {
	for n := 0; n < AudioBufferSize; n++ {
		callback(n, math.Sin(t.phase)/2)

		if t.sound > 0 {
			t.phase = math.Mod(t.phase+phaseRate, 2*math.Pi)
		}
	}
}
