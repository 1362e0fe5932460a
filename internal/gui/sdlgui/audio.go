package sdlgui

import (
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/veandco/go-sdl2/sdl"
)

// queuedSizeLimit caps how much audio may pile up in the device queue.
// Beyond roughly three frames of samples new batches are dropped so the
// tone does not drift behind the video.
const queuedSizeLimit = 3 * chip8.AudioBufferSize

// audio queues frame sized batches of unsigned 8 bit samples on an SDL
// audio device.
type audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec
}

func newAudio() (*audio, error) {
	aud := &audio{}

	spec := &sdl.AudioSpec{
		Freq:     chip8.SampleFrequency,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  uint16(chip8.AudioBufferSize),
	}

	var actualSpec sdl.AudioSpec
	var err error
	aud.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, err
	}
	aud.spec = actualSpec

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

func (a *audio) queue(buffer []uint8) error {
	if sdl.GetQueuedAudioSize(a.id) > uint32(queuedSizeLimit) {
		return nil
	}
	return sdl.QueueAudio(a.id, buffer)
}

func (a *audio) destroy() {
	sdl.CloseAudioDevice(a.id)
}
