// Package app provides the main application helper for the emulator.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/disasm"
	"github.com/retroenv/retrochip8/internal/emulator"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// maxROMSize is the number of program bytes that fit into machine memory.
const maxROMSize = chip8.MemorySize - chip8.ProgramStart

// Run loads the ROM and executes the selected mode, either the disassembly
// listing or the emulator itself.
func Run(ctx context.Context, logger *log.Logger, opts options.Program, emuOpts options.Emulator) error {
	rom, err := LoadROM(opts.Input)
	if err != nil {
		return err
	}

	PrintInfo(logger, opts, len(rom))

	if opts.Disasm {
		return disassemble(rom, opts)
	}

	cpu := chip8.New(logger, rom, chip8.Options{
		IndependentTimers: emuOpts.IndependentTimers,
		WideSprites:       emuOpts.WideSprites,
		Trace:             emuOpts.Trace,
	})

	emu := emulator.New(logger, cpu, emuOpts)
	return emu.Run(ctx)
}

// LoadROM reads and validates a ROM image.
func LoadROM(filename string) ([]byte, error) {
	rom, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading ROM file '%s': %w", filename, err)
	}

	if len(rom) == 0 {
		return nil, fmt.Errorf("ROM file '%s' is empty", filename)
	}
	if len(rom) > maxROMSize {
		return nil, fmt.Errorf("ROM size %d exceeds the %d byte program space", len(rom), maxROMSize)
	}
	return rom, nil
}

// PrintInfo prints the information about the input file.
func PrintInfo(logger *log.Logger, opts options.Program, romSize int) {
	if opts.Quiet {
		return
	}

	logger.Info("Processing CHIP-8 ROM",
		log.String("file", opts.Input),
		log.Int("size", romSize),
	)
}

func disassemble(rom []byte, opts options.Program) error {
	var writer io.Writer = os.Stdout

	var file *os.File
	if opts.Output != "" {
		var err error
		file, err = os.Create(opts.Output)
		if err != nil {
			return fmt.Errorf("creating file '%s': %w", opts.Output, err)
		}
		writer = file
	}

	err := disasm.Disassemble(rom, writer, disasm.Options{
		CodeBaseAddress: chip8.ProgramStart,
		HexComments:     !opts.NoHexComments,
	})

	if file != nil {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing file '%s': %w", opts.Output, closeErr)
		}
	}
	return err
}
