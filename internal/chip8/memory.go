package chip8

// Memory layout constants. The low 512 bytes belong to the interpreter,
// programs are loaded at ProgramStart.
const (
	// MemorySize is the size of machine memory in bytes.
	MemorySize = 4096

	// ProgramStart is the address where execution of a loaded program begins.
	ProgramStart = 0x200

	glyphBase   = 0x50
	glyphHeight = 5

	addressMask = MemorySize - 1
)

// font contains the built-in glyph sprites for the hexadecimal digits 0-F,
// 5 bytes per digit.
var font = [80]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// Memory is the flat 4 KB byte store holding the glyph font and the loaded
// program image. Addresses are masked to the 12 bit address space, the index
// register is allowed to run past the visible memory without bounds checks.
type Memory struct {
	data [MemorySize]byte
}

// NewMemory returns memory initialized with the glyph font and the given
// program image loaded at ProgramStart.
func NewMemory(program []byte) *Memory {
	m := &Memory{}
	copy(m.data[glyphBase:], font[:])
	copy(m.data[ProgramStart:], program)
	return m
}

// ReadByte returns the byte at the given address.
func (m *Memory) ReadByte(address uint16) byte {
	return m.data[address&addressMask]
}

// WriteByte stores a byte at the given address.
func (m *Memory) WriteByte(address uint16, value byte) {
	m.data[address&addressMask] = value
}

// ReadWord reads a big-endian 16 bit word, the byte at the given address
// forming the high byte. Used for opcode fetching.
func (m *Memory) ReadWord(address uint16) uint16 {
	return uint16(m.ReadByte(address))<<8 | uint16(m.ReadByte(address+1))
}

// GlyphAddress returns the address of the 5 byte glyph sprite for a
// hexadecimal digit 0-15.
func GlyphAddress(digit uint16) uint16 {
	return glyphBase + digit*glyphHeight
}
