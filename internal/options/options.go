// Package options contains the program options.
package options

// Program contains file paths and mode selection.
type Program struct {
	Input  string // ROM file to run or disassemble
	Output string // listing output file, stdout if empty

	Disasm        bool // print a disassembly listing instead of running
	NoHexComments bool // omit the opcode hex column in the listing

	Debug bool
	Quiet bool
}

// Emulator defines options to control the virtual machine and its frontend.
type Emulator struct {
	CyclesPerFrame int    // CPU instructions executed per video frame
	Scale          int    // window scale factor
	WavFile        string // record tone output to this WAV file

	Headless bool // run without a window
	Frames   int  // number of frames to run in headless mode
	Dump     bool // print the final display after a headless run

	IndependentTimers bool // decrement the sound timer independently
	WideSprites       bool // draw all 8 sprite columns
	Trace             bool // log every executed instruction
}

// NewEmulator returns a new emulator options instance with default values.
func NewEmulator() Emulator {
	return Emulator{
		CyclesPerFrame: 25,
		Scale:          10,
		Frames:         600,
	}
}
