// Package chip8 implements the CHIP-8 virtual machine: 4 KB of memory, 16
// general purpose registers, a 16 slot call stack, a 64x32 monochrome
// display, a 16 key keypad and two 60 Hz countdown timers. The host drives
// the machine by calling StepFor once per video frame and reading the
// display and tone output afterwards.
package chip8

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/disasm"
	"github.com/retroenv/retrogolib/log"
)

// Options configures the quirk switches of the virtual machine. The zero
// value keeps the quirk behaviors enabled.
type Options struct {
	// IndependentTimers decrements the sound counter on its own instead of
	// tying it to the delay counter.
	IndependentTimers bool

	// WideSprites draws all 8 sprite columns instead of 7.
	WideSprites bool

	// Trace logs every executed instruction at debug level.
	Trace bool
}

// CPU owns the machine state and executes one instruction per step. The
// display, keyboard and timer are exported for the host: it writes keypad
// state before each frame and reads pixels and tone samples after it.
type CPU struct {
	pc uint16
	i  uint16
	v  [16]byte

	memory *Memory
	stack  *Stack
	random *Random

	Display  *Display
	Keyboard *Keyboard
	Timer    *Timer

	logger *log.Logger
	trace  bool
}

// New returns a machine with the given ROM image loaded at ProgramStart.
func New(logger *log.Logger, rom []byte, opts Options) *CPU {
	return &CPU{
		pc:       ProgramStart,
		memory:   NewMemory(rom),
		stack:    &Stack{},
		random:   NewRandom(),
		Display:  NewDisplay(opts.WideSprites),
		Keyboard: &Keyboard{},
		Timer:    NewTimer(opts.IndependentTimers),
		logger:   logger,
		trace:    opts.Trace,
	}
}

// PC returns the program counter.
func (c *CPU) PC() uint16 {
	return c.pc
}

// Index returns the index register.
func (c *CPU) Index() uint16 {
	return c.i
}

// Register returns the value of a general purpose register.
func (c *CPU) Register(reg Reg) byte {
	return c.v[reg&0xF]
}

// SetRegister sets the value of a general purpose register.
func (c *CPU) SetRegister(reg Reg, value byte) {
	c.v[reg&0xF] = value
}

// Memory returns the machine memory.
func (c *CPU) Memory() *Memory {
	return c.memory
}

func (c *CPU) get(reg Reg) byte {
	return c.v[reg]
}

func (c *CPU) set(reg Reg, value byte) {
	c.v[reg] = value
}

// skip advances the program counter past one instruction.
func (c *CPU) skip() {
	c.pc += 2
}

// back rewinds the program counter to the previous instruction.
func (c *CPU) back() {
	c.pc -= 2
}

// fetch reads the instruction word at pc and advances pc past it. Relative
// jumps and skips are expressed as further pc adjustment on top of this.
func (c *CPU) fetch() Instr {
	code := Instr(c.memory.ReadWord(c.pc))
	c.skip()
	return code
}

// StepFor executes n instructions and then advances the timers by one tick.
// The host calls this once per video frame, n is its cycles per frame
// tuning choice.
func (c *CPU) StepFor(n int) {
	for j := 0; j < n; j++ {
		c.Step()
	}

	c.Timer.Update()
}

// Step fetches, decodes and executes one instruction. Unrecognized opcode
// patterns panic, matching the undefined behavior of broken ROMs on the
// original hardware.
func (c *CPU) Step() {
	code := c.fetch()

	if c.trace {
		c.logTrace(code)
	}

	op1, _, op3, op4 := code.Nibbles()

	switch {
	case code == 0x00E0: // CLS
		c.Display.Cls()

	case code == 0x00EE: // RET
		c.pc = c.stack.Pull()

	case op1 == 0x0: // SYS addr, legacy machine code call
		c.logger.Debug("SYS instruction executed", log.Hex("address", code.Addr()))

	case op1 == 0x1: // JP addr
		c.pc = code.Addr()

	case op1 == 0x2: // CALL addr
		c.stack.Push(c.pc)
		c.pc = code.Addr()

	case op1 == 0x3: // SE Vx, byte
		if c.get(code.X()) == code.Arg() {
			c.skip()
		}

	case op1 == 0x4: // SNE Vx, byte
		if c.get(code.X()) != code.Arg() {
			c.skip()
		}

	case op1 == 0x5 && op4 == 0x0: // SE Vx, Vy
		if c.get(code.X()) == c.get(code.Y()) {
			c.skip()
		}

	case op1 == 0x6: // LD Vx, byte
		c.set(code.X(), code.Arg())

	case op1 == 0x7: // ADD Vx, byte
		c.set(code.X(), c.get(code.X())+code.Arg())

	case op1 == 0x8:
		c.stepALU(code, op4)

	case op1 == 0x9 && op4 == 0x0: // SNE Vx, Vy
		if c.get(code.X()) != c.get(code.Y()) {
			c.skip()
		}

	case op1 == 0xA: // LD I, addr
		c.i = code.Addr()

	case op1 == 0xB: // JP V0, addr
		c.pc = code.Addr() + uint16(c.get(0))

	case op1 == 0xC: // RND Vx, byte
		c.set(code.X(), c.random.Next(code.Arg()))

	case op1 == 0xD: // DRW Vx, Vy, nibble
		c.draw(code, op4)

	case op1 == 0xE && op3 == 0x9 && op4 == 0xE: // SKP Vx
		if c.Keyboard.KeyPressed(byte(code.X())) {
			c.skip()
		}

	case op1 == 0xE && op3 == 0xA && op4 == 0x1: // SKNP Vx
		if !c.Keyboard.KeyPressed(byte(code.X())) {
			c.skip()
		}

	case op1 == 0xF:
		c.stepMisc(code, op3, op4)

	default:
		c.fatal(code)
	}
}

// stepALU executes the 8xy* register-to-register operations. The flag
// register is written before the result, so instructions targeting VF
// overwrite their own flag.
func (c *CPU) stepALU(code Instr, op4 byte) {
	x, y := code.X(), code.Y()

	switch op4 {
	case 0x0: // LD Vx, Vy
		c.set(x, c.get(y))

	case 0x1: // OR Vx, Vy
		c.set(x, c.get(x)|c.get(y))

	case 0x2: // AND Vx, Vy
		c.set(x, c.get(x)&c.get(y))

	case 0x3: // XOR Vx, Vy
		c.set(x, c.get(x)^c.get(y))

	case 0x4: // ADD Vx, Vy
		result := uint16(c.get(x)) + uint16(c.get(y))
		c.set(flags, flagValue(result > 0xFF))
		c.set(x, byte(result))

	case 0x5: // SUB Vx, Vy, VF set on borrow
		vx, vy := c.get(x), c.get(y)
		c.set(flags, flagValue(vy > vx))
		c.set(x, vx-vy)

	case 0x6: // SHR Vx
		c.set(flags, c.get(x)&1)
		c.set(x, c.get(x)>>1)

	case 0x7: // SUBN Vx, Vy, VF set on borrow
		vx, vy := c.get(x), c.get(y)
		c.set(flags, flagValue(vx > vy))
		c.set(x, vy-vx)

	case 0xE: // SHL Vx
		c.set(flags, c.get(x)>>7&1)
		c.set(x, c.get(x)<<1)

	default:
		c.fatal(code)
	}
}

// stepMisc executes the Fx** family.
func (c *CPU) stepMisc(code Instr, op3, op4 byte) {
	x := code.X()

	switch {
	case op3 == 0x0 && op4 == 0x7: // LD Vx, DT
		c.set(x, byte(c.Timer.Delay()))

	case op3 == 0x0 && op4 == 0xA: // LD Vx, K
		if key, ok := c.Keyboard.FirstPressedKey(); ok {
			c.set(x, key)
		} else {
			// busy-wait: re-execute this instruction on the next step
			c.back()
		}

	case op3 == 0x1 && op4 == 0x5: // LD DT, Vx
		c.Timer.SetDelay(int(c.get(x)))

	case op3 == 0x1 && op4 == 0x8: // LD ST, Vx
		c.Timer.SetSound(int(c.get(x)))

	case op3 == 0x1 && op4 == 0xE: // ADD I, Vx
		c.i += uint16(c.get(x))

	case op3 == 0x2 && op4 == 0x9: // LD F, Vx
		c.i = GlyphAddress(uint16(c.get(x)))

	case op3 == 0x3 && op4 == 0x3: // LD B, Vx
		value := c.get(x)
		c.memory.WriteByte(c.i, value/100%10)
		c.memory.WriteByte(c.i+1, value/10%10)
		c.memory.WriteByte(c.i+2, value%10)

	case op3 == 0x5 && op4 == 0x5: // LD [I], Vx
		for reg := Reg(0); reg <= x; reg++ {
			c.memory.WriteByte(c.i+uint16(reg), c.get(reg))
		}

	case op3 == 0x6 && op4 == 0x5: // LD Vx, [I]
		for reg := Reg(0); reg <= x; reg++ {
			c.set(reg, c.memory.ReadByte(c.i+uint16(reg)))
		}

	default:
		c.fatal(code)
	}
}

// draw reads the sprite rows at the index register and XOR-draws them at
// the position given by the Vx and Vy values, setting VF on collision.
func (c *CPU) draw(code Instr, rows byte) {
	sprite := make([]byte, rows)
	for n := range sprite {
		sprite[n] = c.memory.ReadByte(c.i + uint16(n))
	}

	collision := c.Display.Drw(int(c.get(code.X())), int(c.get(code.Y())), sprite)
	c.set(flags, flagValue(collision))
}

func (c *CPU) logTrace(code Instr) {
	text, ok := disasm.Format(uint16(code))
	if !ok {
		text = "???"
	}

	c.logger.Debug("executing",
		log.Hex("pc", c.pc-2),
		log.Hex("opcode", uint16(code)),
		log.String("code", text),
	)
}

func (c *CPU) fatal(code Instr) {
	panic(fmt.Sprintf("chip8: unrecognized instruction $%04X at address $%03X",
		uint16(code), c.pc-2))
}

func flagValue(set bool) byte {
	if set {
		return 1
	}
	return 0
}
