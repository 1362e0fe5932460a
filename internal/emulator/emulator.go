// Package emulator implements the host frame loop driving the virtual
// machine: keypad input is written before each frame, StepFor executes the
// frame's CPU cycles and the display and tone output are read afterwards.
package emulator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/gui/sdlgui"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/wavwriter"
	"github.com/retroenv/retrogolib/log"
)

// framesPerSecond is the display and timer cadence of the machine.
const framesPerSecond = 60

// audioCenter is the unsigned 8 bit silence value the tone samples are
// centered on.
const audioCenter = 128

// Emulator owns the machine and the frontend and runs the frame loop.
type Emulator struct {
	logger *log.Logger
	cpu    *chip8.CPU
	opts   options.Emulator

	audioBuffer []uint8
}

// New returns an emulator for the given machine.
func New(logger *log.Logger, cpu *chip8.CPU, opts options.Emulator) *Emulator {
	return &Emulator{
		logger:      logger,
		cpu:         cpu,
		opts:        opts,
		audioBuffer: make([]uint8, chip8.AudioBufferSize),
	}
}

// Run drives the machine until the window is closed, the configured frame
// count is reached in headless mode, or the context is cancelled.
func (e *Emulator) Run(ctx context.Context) error {
	if e.opts.Headless {
		return e.runHeadless(ctx)
	}
	return e.runWindow(ctx)
}

func (e *Emulator) runWindow(ctx context.Context) (rerr error) {
	gui, err := sdlgui.New(e.opts.Scale)
	if err != nil {
		return err
	}
	defer gui.Destroy()

	recorder := e.newRecorder()
	defer func() {
		if err := e.closeRecorder(recorder); err != nil && rerr == nil {
			rerr = err
		}
	}()

	tick := time.NewTicker(time.Second / framesPerSecond)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick.C:
		}

		if quit := gui.Service(e.cpu.Keyboard); quit {
			return nil
		}

		e.cpu.StepFor(e.opts.CyclesPerFrame)

		if err := gui.Render(e.cpu.Display); err != nil {
			return err
		}

		e.frameAudio()
		if err := gui.QueueAudio(e.audioBuffer); err != nil {
			return fmt.Errorf("queueing audio: %w", err)
		}
		if recorder != nil {
			recorder.AddSamples(e.audioBuffer)
		}
	}
}

// runHeadless runs the configured number of frames at full speed without a
// window, for benchmarking and automated runs.
func (e *Emulator) runHeadless(ctx context.Context) (rerr error) {
	recorder := e.newRecorder()
	defer func() {
		if err := e.closeRecorder(recorder); err != nil && rerr == nil {
			rerr = err
		}
	}()

	for frame := 0; frame < e.opts.Frames; frame++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		e.cpu.StepFor(e.opts.CyclesPerFrame)

		e.frameAudio()
		if recorder != nil {
			recorder.AddSamples(e.audioBuffer)
		}
	}

	if e.opts.Dump {
		fmt.Print(RenderText(e.cpu.Display))
	}
	return nil
}

// frameAudio fills the audio buffer with one frame of tone samples. The
// machine emits a frozen waveform while the sound counter is zero, so the
// output is gated to true silence here.
func (e *Emulator) frameAudio() {
	silent := e.cpu.Timer.Sound() == 0

	e.cpu.Timer.Wave(func(n int, sample float64) {
		if silent {
			sample = 0
		}
		e.audioBuffer[n] = uint8(audioCenter + sample*127)
	})
}

func (e *Emulator) newRecorder() *wavwriter.WavWriter {
	if e.opts.WavFile == "" {
		return nil
	}
	return wavwriter.New(e.opts.WavFile)
}

func (e *Emulator) closeRecorder(recorder *wavwriter.WavWriter) error {
	if recorder == nil {
		return nil
	}
	e.logger.Info("Writing tone recording", log.String("file", e.opts.WavFile))
	return recorder.Close()
}

// RenderText returns the display contents as a text block, one character
// per pixel.
func RenderText(display *chip8.Display) string {
	var sb strings.Builder

	for y := 0; y < chip8.DisplayHeight; y++ {
		for x := 0; x < chip8.DisplayWidth; x++ {
			if display.Pixel(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
