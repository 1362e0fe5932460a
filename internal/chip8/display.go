package chip8

// Display dimensions. Both are powers of two so that coordinates wrap with
// a simple mask.
const (
	// DisplayWidth is the horizontal resolution in pixels.
	DisplayWidth = 64

	// DisplayHeight is the vertical resolution in pixels.
	DisplayHeight = 32

	widthMask  = DisplayWidth - 1
	heightMask = DisplayHeight - 1
)

// Display is the 64x32 monochrome framebuffer. Coordinates wrap around both
// axes, giving toroidal addressing.
type Display struct {
	buffer [DisplayHeight][DisplayWidth]bool

	// number of sprite columns drawn per row byte. The default quirk mode
	// draws only 7 of the 8 columns, dropping the least significant bit of
	// every sprite row.
	spriteColumns int
}

// NewDisplay returns a cleared display. With wideSprites set, DRW draws all
// 8 sprite columns instead of 7.
func NewDisplay(wideSprites bool) *Display {
	d := &Display{spriteColumns: 7}
	if wideSprites {
		d.spriteColumns = 8
	}
	return d
}

// Pixel returns the pixel state at the wrapped coordinates.
func (d *Display) Pixel(x, y int) bool {
	return d.buffer[y&heightMask][x&widthMask]
}

// SetPixel sets the pixel state at the wrapped coordinates.
func (d *Display) SetPixel(x, y int, on bool) {
	d.buffer[y&heightMask][x&widthMask] = on
}

// Cls switches every pixel off.
func (d *Display) Cls() {
	for y := range d.buffer {
		for x := range d.buffer[y] {
			d.buffer[y][x] = false
		}
	}
}

// Drw XOR-draws the sprite rows at the given position and reports whether
// any lit pixel was flipped off.
func (d *Display) Drw(x, y int, sprite []byte) bool {
	collision := false

	for row, tile := range sprite {
		for col := 0; col < d.spriteColumns; col++ {
			if (tile>>(7-col))&1 == 0 {
				continue
			}

			previous := d.Pixel(x+col, y+row)
			if previous {
				collision = true
			}
			d.SetPixel(x+col, y+row, !previous)
		}
	}

	return collision
}
