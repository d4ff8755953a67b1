// Package framebuffer holds a row-major RGBA8 pixel buffer and the single
// write path every drawing routine goes through.
package framebuffer

import (
	"image"
	"image/color"
)

// Framebuffer is a row-major RGBA8 buffer with a top-left origin.
// len(Pix) is always 4*Width*Height.
type Framebuffer struct {
	Width  int
	Height int
	Pix    []byte
}

// New allocates a cleared framebuffer. Non-positive sizes yield an empty buffer.
func New(width, height int) *Framebuffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pix:    make([]byte, 4*width*height),
	}
}

// Contains reports whether (x, y) addresses a pixel inside the buffer.
func (fb *Framebuffer) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < fb.Width && y < fb.Height
}

// Plot writes c at (x, y). Coordinates outside the buffer are dropped and
// Plot reports false; nothing outside the pixel's own four bytes is touched.
func (fb *Framebuffer) Plot(x, y int, c color.RGBA) bool {
	if !fb.Contains(x, y) {
		return false
	}
	i := 4 * (x + fb.Width*y)
	fb.Pix[i] = c.R
	fb.Pix[i+1] = c.G
	fb.Pix[i+2] = c.B
	fb.Pix[i+3] = c.A
	return true
}

// Clear fills the whole buffer with c.
func (fb *Framebuffer) Clear(c color.RGBA) {
	if len(fb.Pix) == 0 {
		return
	}
	fb.Pix[0], fb.Pix[1], fb.Pix[2], fb.Pix[3] = c.R, c.G, c.B, c.A
	for filled := 4; filled < len(fb.Pix); filled *= 2 {
		copy(fb.Pix[filled:], fb.Pix[:filled])
	}
}

// At returns the pixel at (x, y), or the zero color outside the buffer.
// Presenters use it; the renderer never reads back.
func (fb *Framebuffer) At(x, y int) color.RGBA {
	if !fb.Contains(x, y) {
		return color.RGBA{}
	}
	i := 4 * (x + fb.Width*y)
	return color.RGBA{R: fb.Pix[i], G: fb.Pix[i+1], B: fb.Pix[i+2], A: fb.Pix[i+3]}
}

// Image exposes the buffer as an *image.RGBA sharing the same pixels.
func (fb *Framebuffer) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    fb.Pix,
		Stride: 4 * fb.Width,
		Rect:   image.Rect(0, 0, fb.Width, fb.Height),
	}
}
