package disasm

import (
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// formatParams formats the parameters of a CHIP-8 instruction.
// It returns an empty string for instructions without parameters.
func formatParams(name string, opcode uint16) string {
	switch name {
	case chip8.ClsInst.Name, chip8.RetInst.Name:
		return ""
	case chip8.JpInst.Name:
		return formatJumpParams(opcode)
	case chip8.CallInst.Name:
		return fmt.Sprintf("$%03X", opcode&0x0FFF)
	case chip8.SeInst.Name, chip8.SneInst.Name:
		return formatCompareParams(opcode)
	case chip8.LdInst.Name:
		return formatLoadParams(opcode)
	case chip8.AddInst.Name:
		return formatAddParams(opcode)
	case chip8.OrInst.Name, chip8.AndInst.Name, chip8.XorInst.Name, chip8.SubInst.Name, chip8.SubnInst.Name:
		return fmt.Sprintf("V%X, V%X", registerX(opcode), registerY(opcode))
	case chip8.ShrInst.Name, chip8.ShlInst.Name:
		return fmt.Sprintf("V%X", registerX(opcode))
	case chip8.RndInst.Name:
		return fmt.Sprintf("V%X, $%02X", registerX(opcode), opcode&0x00FF)
	case chip8.DrwInst.Name:
		return fmt.Sprintf("V%X, V%X, $%X", registerX(opcode), registerY(opcode), opcode&0x000F)
	case chip8.SkpInst.Name, chip8.SknpInst.Name:
		return fmt.Sprintf("V%X", registerX(opcode))
	}
	return ""
}

// formatJumpParams formats jump parameters, JP addr and JP V0, addr.
func formatJumpParams(opcode uint16) string {
	switch opcode & 0xF000 {
	case 0x1000:
		return fmt.Sprintf("$%03X", opcode&0x0FFF)
	case 0xB000:
		return fmt.Sprintf("V0, $%03X", opcode&0x0FFF)
	}
	return ""
}

// formatCompareParams formats SE and SNE parameters:
//
//	3XNN: SE Vx, byte
//	4XNN: SNE Vx, byte
//	5XY0: SE Vx, Vy
//	9XY0: SNE Vx, Vy
func formatCompareParams(opcode uint16) string {
	x := registerX(opcode)

	switch opcode & 0xF000 {
	case 0x3000, 0x4000:
		return fmt.Sprintf("V%X, $%02X", x, opcode&0x00FF)
	case 0x5000, 0x9000:
		return fmt.Sprintf("V%X, V%X", x, registerY(opcode))
	}
	return ""
}

// formatLoadParams formats the parameters of the LD instruction forms,
// including the Fx** timer, keypad and memory transfers.
func formatLoadParams(opcode uint16) string {
	x := registerX(opcode)

	switch opcode & 0xF000 {
	case 0x6000:
		return fmt.Sprintf("V%X, $%02X", x, opcode&0x00FF)
	case 0x8000:
		return fmt.Sprintf("V%X, V%X", x, registerY(opcode))
	case 0xA000:
		return fmt.Sprintf("I, $%03X", opcode&0x0FFF)
	case 0xF000:
		switch opcode & 0x00FF {
		case 0x07:
			return fmt.Sprintf("V%X, DT", x)
		case 0x0A:
			return fmt.Sprintf("V%X, K", x)
		case 0x15:
			return fmt.Sprintf("DT, V%X", x)
		case 0x18:
			return fmt.Sprintf("ST, V%X", x)
		case 0x29:
			return fmt.Sprintf("F, V%X", x)
		case 0x33:
			return fmt.Sprintf("B, V%X", x)
		case 0x55:
			return fmt.Sprintf("[I], V%X", x)
		case 0x65:
			return fmt.Sprintf("V%X, [I]", x)
		}
	}
	return ""
}

// formatAddParams formats ADD parameters, 7XNN, 8XY4 and Fx1E.
func formatAddParams(opcode uint16) string {
	x := registerX(opcode)

	switch opcode & 0xF000 {
	case 0x7000:
		return fmt.Sprintf("V%X, $%02X", x, opcode&0x00FF)
	case 0x8000:
		return fmt.Sprintf("V%X, V%X", x, registerY(opcode))
	case 0xF000:
		return fmt.Sprintf("I, V%X", x)
	}
	return ""
}

// registerX extracts the X register nibble from an opcode.
func registerX(opcode uint16) uint16 {
	return (opcode & 0x0F00) >> 8
}

// registerY extracts the Y register nibble from an opcode.
func registerY(opcode uint16) uint16 {
	return (opcode & 0x00F0) >> 4
}
