package disasm

import (
	"fmt"
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestLookup(t *testing.T) {
	op, ok := Lookup(0x00E0)
	assert.True(t, ok)
	assert.Equal(t, chip8.ClsInst.Name, op.Instruction.Name)

	op, ok = Lookup(0x6005)
	assert.True(t, ok)
	assert.Equal(t, chip8.LdInst.Name, op.Instruction.Name)

	_, ok = Lookup(0xFFFF)
	assert.False(t, ok)
}

func TestFormat(t *testing.T) {
	tests := []struct {
		opcode uint16
		want   string
	}{
		{0x00E0, chip8.ClsInst.Name},
		{0x00EE, chip8.RetInst.Name},
		{0x1234, chip8.JpInst.Name + " $234"},
		{0x2345, chip8.CallInst.Name + " $345"},
		{0x3A42, chip8.SeInst.Name + " VA, $42"},
		{0x4B42, chip8.SneInst.Name + " VB, $42"},
		{0x5120, chip8.SeInst.Name + " V1, V2"},
		{0x6005, chip8.LdInst.Name + " V0, $05"},
		{0x7003, chip8.AddInst.Name + " V0, $03"},
		{0x8120, chip8.LdInst.Name + " V1, V2"},
		{0x8121, chip8.OrInst.Name + " V1, V2"},
		{0x8122, chip8.AndInst.Name + " V1, V2"},
		{0x8123, chip8.XorInst.Name + " V1, V2"},
		{0x8124, chip8.AddInst.Name + " V1, V2"},
		{0x8125, chip8.SubInst.Name + " V1, V2"},
		{0x8126, chip8.ShrInst.Name + " V1"},
		{0x8127, chip8.SubnInst.Name + " V1, V2"},
		{0x812E, chip8.ShlInst.Name + " V1"},
		{0x9120, chip8.SneInst.Name + " V1, V2"},
		{0xA200, chip8.LdInst.Name + " I, $200"},
		{0xB123, chip8.JpInst.Name + " V0, $123"},
		{0xC00F, chip8.RndInst.Name + " V0, $0F"},
		{0xD125, chip8.DrwInst.Name + " V1, V2, $5"},
		{0xE59E, chip8.SkpInst.Name + " V5"},
		{0xE5A1, chip8.SknpInst.Name + " V5"},
		{0xF107, chip8.LdInst.Name + " V1, DT"},
		{0xF10A, chip8.LdInst.Name + " V1, K"},
		{0xF115, chip8.LdInst.Name + " DT, V1"},
		{0xF118, chip8.LdInst.Name + " ST, V1"},
		{0xF11E, chip8.AddInst.Name + " I, V1"},
		{0xF129, chip8.LdInst.Name + " F, V1"},
		{0xF133, chip8.LdInst.Name + " B, V1"},
		{0xF155, chip8.LdInst.Name + " [I], V1"},
		{0xF165, chip8.LdInst.Name + " V1, [I]"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%04X", tt.opcode), func(t *testing.T) {
			text, ok := Format(tt.opcode)
			assert.True(t, ok)
			assert.Equal(t, tt.want, text)
		})
	}
}

func TestFormatUnknownOpcode(t *testing.T) {
	_, ok := Format(0xFFFF)
	assert.False(t, ok)
}

func TestDisassemble(t *testing.T) {
	rom := []byte{0x60, 0x05, 0x70, 0x03, 0x12, 0x00}
	var buf strings.Builder

	err := Disassemble(rom, &buf, Options{CodeBaseAddress: 0x200})
	assert.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, "$0200:  "+chip8.LdInst.Name+" V0, $05", lines[0])
	assert.Equal(t, "$0202:  "+chip8.AddInst.Name+" V0, $03", lines[1])
	assert.Equal(t, "$0204:  "+chip8.JpInst.Name+" $200", lines[2])
}

func TestDisassembleHexComments(t *testing.T) {
	rom := []byte{0x60, 0x05}
	var buf strings.Builder

	err := Disassemble(rom, &buf, Options{CodeBaseAddress: 0x200, HexComments: true})
	assert.NoError(t, err)

	line := strings.TrimSuffix(buf.String(), "\n")
	assert.True(t, strings.HasPrefix(line, "$0200:  "+chip8.LdInst.Name+" V0, $05"))
	assert.True(t, strings.HasSuffix(line, "; 60 05"))
}

func TestDisassembleDataBytes(t *testing.T) {
	// 0xFFFF matches no instruction and is emitted as data
	rom := []byte{0xFF, 0xFF}
	var buf strings.Builder

	err := Disassemble(rom, &buf, Options{CodeBaseAddress: 0x200})
	assert.NoError(t, err)

	assert.Equal(t, "$0200:  .byte $FF, $FF\n", buf.String())
}

func TestDisassembleTrailingByte(t *testing.T) {
	rom := []byte{0x60, 0x05, 0xAB}
	var buf strings.Builder

	err := Disassemble(rom, &buf, Options{CodeBaseAddress: 0x200})
	assert.NoError(t, err)

	assert.True(t, strings.HasSuffix(buf.String(), "$0202:  .byte $AB\n"))
}
