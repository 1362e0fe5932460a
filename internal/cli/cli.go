// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/options"
)

// ParseFlags parses command line flags and returns program and emulator options
func ParseFlags() (options.Program, options.Emulator, error) {
	return parseFlags(os.Args[1:])
}

func parseFlags(args []string) (options.Program, options.Emulator, error) {
	flags := flag.NewFlagSet("retrochip8", flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	var opts options.Program
	emuOpts := options.NewEmulator()
	readProgramFlags(flags, &opts)
	readEmulatorFlags(flags, &emuOpts)

	err := flags.Parse(args)
	rest := flags.Args()
	if err != nil || len(rest) == 0 {
		return opts, emuOpts, &UsageError{flags: flags}
	}

	if err := validateArgs(rest); err != nil {
		return opts, emuOpts, err
	}
	opts.Input = rest[0]

	if err := validateOptions(emuOpts); err != nil {
		return opts, emuOpts, err
	}

	return opts, emuOpts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: retrochip8 [options] <rom file>\n\n")
	e.flags.SetOutput(os.Stdout)
	e.flags.PrintDefaults()
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after the ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	return nil
}

// validateOptions validates option values
func validateOptions(emuOpts options.Emulator) error {
	if emuOpts.CyclesPerFrame < 1 {
		return fmt.Errorf("invalid cycles per frame %d, must be at least 1", emuOpts.CyclesPerFrame)
	}
	if emuOpts.Scale < 1 {
		return fmt.Errorf("invalid window scale %d, must be at least 1", emuOpts.Scale)
	}
	if emuOpts.Frames < 1 {
		return fmt.Errorf("invalid frame count %d, must be at least 1", emuOpts.Frames)
	}
	return nil
}

func readProgramFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Output, "o", "", "name of the listing output file, printed on console if no name given")
	flags.BoolVar(&opts.Disasm, "disasm", false, "print a disassembly listing of the ROM instead of running it")
	flags.BoolVar(&opts.NoHexComments, "nohexcomments", false, "do not output opcode bytes as hex values in listing comments")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}

func readEmulatorFlags(flags *flag.FlagSet, opts *options.Emulator) {
	flags.IntVar(&opts.CyclesPerFrame, "cycles", opts.CyclesPerFrame, "CPU instructions executed per video frame")
	flags.IntVar(&opts.Scale, "scale", opts.Scale, "window scale factor")
	flags.StringVar(&opts.WavFile, "wav", "", "record tone output to the given WAV file")
	flags.BoolVar(&opts.Headless, "headless", false, "run without a window")
	flags.IntVar(&opts.Frames, "frames", opts.Frames, "number of frames to run in headless mode")
	flags.BoolVar(&opts.Dump, "dump", false, "print the final display after a headless run")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction")
	flags.BoolVar(&opts.IndependentTimers, "independent-timers", false, "decrement the sound timer independently of the delay timer")
	flags.BoolVar(&opts.WideSprites, "wide-sprites", false, "draw all 8 sprite columns instead of 7")
}
