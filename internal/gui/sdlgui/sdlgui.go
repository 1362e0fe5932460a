// Package sdlgui implements the SDL frontend of the emulator: the scaled
// window with its streaming video texture, the keypad input mapping and the
// queued audio sink.
package sdlgui

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/veandco/go-sdl2/sdl"
)

const windowTitle = "retrochip8"

// pixelDepth is the number of bytes per ABGR8888 pixel.
const pixelDepth = 4

// keypadMap maps host scancodes to the 16 key CHIP-8 keypad:
//
//	1 2 3 4        1 2 3 C
//	q w e r   ->   4 5 6 D
//	a s d f        7 8 9 E
//	z x c v        A 0 B F
var keypadMap = map[sdl.Scancode]byte{
	sdl.SCANCODE_1: 0x1, sdl.SCANCODE_2: 0x2, sdl.SCANCODE_3: 0x3, sdl.SCANCODE_4: 0xC,
	sdl.SCANCODE_Q: 0x4, sdl.SCANCODE_W: 0x5, sdl.SCANCODE_E: 0x6, sdl.SCANCODE_R: 0xD,
	sdl.SCANCODE_A: 0x7, sdl.SCANCODE_S: 0x8, sdl.SCANCODE_D: 0x9, sdl.SCANCODE_F: 0xE,
	sdl.SCANCODE_Z: 0xA, sdl.SCANCODE_X: 0x0, sdl.SCANCODE_C: 0xB, sdl.SCANCODE_V: 0xF,
}

// GUI owns the SDL window, renderer, video texture and audio device.
type GUI struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	audio    *audio

	// staging buffer for the ABGR8888 frame upload
	pixels []byte
}

// New initializes SDL and opens the emulator window at the given scale.
func New(scale int) (*GUI, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO); err != nil {
		return nil, fmt.Errorf("initializing SDL: %w", err)
	}

	window, err := sdl.CreateWindow(windowTitle,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(chip8.DisplayWidth*scale), int32(chip8.DisplayHeight*scale),
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	texture, err := renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		int32(chip8.DisplayWidth), int32(chip8.DisplayHeight))
	if err != nil {
		return nil, fmt.Errorf("creating texture: %w", err)
	}

	aud, err := newAudio()
	if err != nil {
		return nil, fmt.Errorf("opening audio device: %w", err)
	}

	return &GUI{
		window:   window,
		renderer: renderer,
		texture:  texture,
		audio:    aud,
		pixels:   make([]byte, chip8.DisplayWidth*chip8.DisplayHeight*pixelDepth),
	}, nil
}

// Service polls pending SDL events and updates the keypad state.
// It reports whether the user asked to quit.
func (g *GUI) Service(keyboard *chip8.Keyboard) bool {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			return true

		case *sdl.KeyboardEvent:
			if ev.Keysym.Scancode == sdl.SCANCODE_ESCAPE {
				return true
			}

			key, ok := keypadMap[ev.Keysym.Scancode]
			if !ok {
				continue
			}
			switch ev.Type {
			case sdl.KEYDOWN:
				keyboard.SetKeyState(key, true)
			case sdl.KEYUP:
				keyboard.SetKeyState(key, false)
			}
		}
	}
	return false
}

// Render uploads the display contents to the window.
func (g *GUI) Render(display *chip8.Display) error {
	i := 0
	for y := 0; y < chip8.DisplayHeight; y++ {
		for x := 0; x < chip8.DisplayWidth; x++ {
			var value byte
			if display.Pixel(x, y) {
				value = 0xFF
			}
			g.pixels[i] = value
			g.pixels[i+1] = value
			g.pixels[i+2] = value
			g.pixels[i+3] = 0xFF
			i += pixelDepth
		}
	}

	if err := g.texture.Update(nil, g.pixels, chip8.DisplayWidth*pixelDepth); err != nil {
		return fmt.Errorf("updating texture: %w", err)
	}
	if err := g.renderer.Clear(); err != nil {
		return fmt.Errorf("clearing renderer: %w", err)
	}
	if err := g.renderer.Copy(g.texture, nil, nil); err != nil {
		return fmt.Errorf("copying texture: %w", err)
	}
	g.renderer.Present()
	return nil
}

// QueueAudio appends one frame of samples to the audio device queue.
func (g *GUI) QueueAudio(buffer []uint8) error {
	return g.audio.queue(buffer)
}

// Destroy releases all SDL resources.
func (g *GUI) Destroy() {
	g.audio.destroy()
	_ = g.texture.Destroy()
	_ = g.renderer.Destroy()
	_ = g.window.Destroy()
	sdl.Quit()
}
