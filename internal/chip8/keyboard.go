package chip8

// KeyCount is the number of keys on the CHIP-8 keypad.
const KeyCount = 16

// Keyboard tracks the pressed state of the 16 key keypad. The host writes
// key states between frames, the CPU reads them for the SKP, SKNP and key
// wait instructions.
type Keyboard struct {
	pressed [KeyCount]bool
}

// KeyPressed reports whether the given key 0-15 is pressed.
func (k *Keyboard) KeyPressed(key byte) bool {
	return k.pressed[key&0x0F]
}

// SetKeyState records a key as pressed or released.
func (k *Keyboard) SetKeyState(key byte, pressed bool) {
	k.pressed[key&0x0F] = pressed
}

// FirstPressedKey scans the keys in ascending order and returns the first
// pressed one, or false if no key is pressed.
func (k *Keyboard) FirstPressedKey() (byte, bool) {
	for key := byte(0); key < KeyCount; key++ {
		if k.pressed[key] {
			return key, true
		}
	}
	return 0, false
}
