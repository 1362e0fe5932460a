// Package disasm provides a linear disassembler for CHIP-8 ROM images.
// Opcodes are matched against the retrogolib CHIP-8 instruction tables and
// formatted as assembly mnemonics with their parameters. It backs both the
// listing output mode and the per-instruction execution trace.
package disasm

import (
	"bufio"
	"fmt"
	"io"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// opcodeSize is the size of CHIP-8 instructions in bytes.
const opcodeSize = 2

// Options controls the listing output.
type Options struct {
	// CodeBaseAddress is the memory address of ROM offset 0.
	CodeBaseAddress uint16

	// HexComments appends the opcode bytes as a hex comment to every line.
	HexComments bool
}

// Lookup matches a 16 bit opcode against the CHIP-8 opcode table and
// returns its instruction metadata.
func Lookup(opcode uint16) (chip8.Opcode, bool) {
	firstNibble := (opcode & 0xF000) >> 12

	for _, op := range chip8.Opcodes[int(firstNibble)] {
		if op.Info.Mask&opcode == op.Info.Value {
			return op, true
		}
	}
	return chip8.Opcode{}, false
}

// Format returns the assembly form of the opcode, for example "ld V0, $05".
// It returns false for opcodes that match no instruction.
func Format(opcode uint16) (string, bool) {
	op, ok := Lookup(opcode)
	if !ok || op.Instruction == nil {
		return "", false
	}

	name := op.Instruction.Name
	if params := formatParams(name, opcode); params != "" {
		return fmt.Sprintf("%s %s", name, params), true
	}
	return name, true
}

// Disassemble writes a linear listing of the ROM image to the writer.
// Words that match no instruction are emitted as data bytes.
func Disassemble(rom []byte, writer io.Writer, opts Options) error {
	out := bufio.NewWriter(writer)

	for offset := 0; offset < len(rom); offset += opcodeSize {
		address := opts.CodeBaseAddress + uint16(offset)

		if offset+1 >= len(rom) { // trailing odd byte
			writeLine(out, address, fmt.Sprintf(".byte $%02X", rom[offset]), "")
			break
		}

		b1, b2 := rom[offset], rom[offset+1]
		opcode := uint16(b1)<<8 | uint16(b2)

		code, ok := Format(opcode)
		if !ok {
			code = fmt.Sprintf(".byte $%02X, $%02X", b1, b2)
		}

		var comment string
		if opts.HexComments {
			comment = fmt.Sprintf("%02X %02X", b1, b2)
		}
		writeLine(out, address, code, comment)
	}

	return out.Flush()
}

func writeLine(out *bufio.Writer, address uint16, code, comment string) {
	if comment == "" {
		fmt.Fprintf(out, "$%04X:  %s\n", address, code)
		return
	}
	fmt.Fprintf(out, "$%04X:  %-20s ; %s\n", address, code, comment)
}
