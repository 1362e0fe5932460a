package chip8

// Reg identifies one of the 16 general purpose registers V0-VF.
type Reg uint8

// flags is the VF register, repurposed by several instructions to report
// carry, borrow and sprite collision.
const flags Reg = 0xF

// Instr is one fetched 16 bit instruction word.
type Instr uint16

// Nibbles splits the instruction into its four 4 bit fields, most
// significant first.
func (in Instr) Nibbles() (byte, byte, byte, byte) {
	return byte(in >> 12 & 0xF), byte(in >> 8 & 0xF), byte(in >> 4 & 0xF), byte(in & 0xF)
}

// Addr returns the embedded 12 bit address.
func (in Instr) Addr() uint16 {
	return uint16(in) & 0xFFF
}

// Arg returns the embedded 8 bit immediate.
func (in Instr) Arg() byte {
	return byte(in)
}

// X returns the first register selector, bits 8-11.
func (in Instr) X() Reg {
	return Reg(in >> 8 & 0xF)
}

// Y returns the second register selector, bits 4-7.
func (in Instr) Y() Reg {
	return Reg(in >> 4 & 0xF)
}
