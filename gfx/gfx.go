/*
NAME
  gfx.go

DESCRIPTION
  Graphics primitives shared by the director cast-member decoder and the
  playback engine: positions, sizes, rectangles, 24-bit and 48-bit RGB
  colors, a 256-entry palette, an indexed image buffer, and a nearest
  neighbour blitter.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package gfx provides the graphics primitives that director cast members
// decode into and that a playback engine composites: positions, sizes,
// rectangles, RGB colors, palettes, indexed image buffers, and a blitter.
package gfx

// Pos is a coordinate pair, stored y-before-x to match the on-disk field
// order used throughout Director's rectangle and sprite records.
type Pos struct {
	Y, X int16
}

// Neg returns the negated position.
func (p Pos) Neg() Pos { return Pos{Y: -p.Y, X: -p.X} }

// Size is a height/width pair.
type Size struct {
	H, W int16
}

// IsEmpty reports whether the size has zero or negative area.
func (s Size) IsEmpty() bool { return s.H <= 0 || s.W <= 0 }

// Rect is an axis-aligned rectangle using Director's y0,x0,y1,x1 field
// order: (y0,x0) is the top-left corner, (y1,x1) the bottom-right.
type Rect struct {
	Y0, X0, Y1, X1 int16
}

// Width returns x1-x0.
func (r Rect) Width() int16 { return r.X1 - r.X0 }

// Height returns y1-y0.
func (r Rect) Height() int16 { return r.Y1 - r.Y0 }

// IsEmpty reports whether the rectangle has zero or negative width or height.
func (r Rect) IsEmpty() bool { return r.Width() <= 0 || r.Height() <= 0 }

// Scale returns r with every coordinate multiplied by scale and truncated
// back to int16.
func (r Rect) Scale(scale float32) Rect {
	return Rect{
		Y0: int16(scale * float32(r.Y0)),
		X0: int16(scale * float32(r.X0)),
		Y1: int16(scale * float32(r.Y1)),
		X1: int16(scale * float32(r.X1)),
	}
}

// Translate returns r shifted by pos.
func (r Rect) Translate(pos Pos) Rect {
	return Rect{
		Y0: r.Y0 + pos.Y,
		X0: r.X0 + pos.X,
		Y1: r.Y1 + pos.Y,
		X1: r.X1 + pos.X,
	}
}

// Rgb888 is a 24-bit RGB color.
type Rgb888 struct {
	R, G, B uint8
}

// ToU32 converts the color to 0xFFRRGGBB, fully opaque.
func (c Rgb888) ToU32() uint32 {
	return 0xff000000 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Rgb888FromU32 reads the R, G, B bytes out of a 0xXXRRGGBB value, ignoring
// the top byte.
func Rgb888FromU32(v uint32) Rgb888 {
	return Rgb888{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}

// Rgb161616 is a 48-bit RGB color, Director's native palette precision.
type Rgb161616 struct {
	R, G, B uint16
}

// ToRgb888 truncates each 16-bit channel to its high byte.
func (c Rgb161616) ToRgb888() Rgb888 {
	return Rgb888{R: uint8(c.R >> 8), G: uint8(c.G >> 8), B: uint8(c.B >> 8)}
}

// Rgb161616FromRgb888 expands each 8-bit channel by shifting it into the
// high byte of the 16-bit channel; the low byte is zero.
func Rgb161616FromRgb888(c Rgb888) Rgb161616 {
	return Rgb161616{R: uint16(c.R) << 8, G: uint16(c.G) << 8, B: uint16(c.B) << 8}
}

// Palette holds 256 48-bit RGB entries, indexed by an 8-bit color index.
type Palette struct {
	entries [256]Rgb161616
}

// Set assigns the color at index.
func (p *Palette) Set(index uint8, color Rgb161616) {
	p.entries[index] = color
}

// At returns the raw 48-bit color at index.
func (p *Palette) At(index uint8) Rgb161616 {
	return p.entries[index]
}

// Rgb888At returns the 24-bit RGB color at index.
func (p *Palette) Rgb888At(index uint8) Rgb888 {
	return p.entries[index].ToRgb888()
}

// IndexedImageBuffer is an 8-bit indexed-color image: one byte per pixel,
// indexing into a Palette.
type IndexedImageBuffer struct {
	Width, Height int
	Data          []byte
}

// NewIndexedImageBuffer allocates a zeroed buffer of the given dimensions.
func NewIndexedImageBuffer(width, height int) *IndexedImageBuffer {
	return &IndexedImageBuffer{Width: width, Height: height, Data: make([]byte, width*height)}
}

func (b *IndexedImageBuffer) inBounds(x, y int16) bool {
	return int(x) >= 0 && int(x) < b.Width && int(y) >= 0 && int(y) < b.Height
}

func (b *IndexedImageBuffer) index(x, y int16) int {
	return int(y)*b.Width + int(x)
}

// ColorIndexAt returns the color index at (x,y), or false if out of bounds.
func (b *IndexedImageBuffer) ColorIndexAt(x, y int16) (uint8, bool) {
	if !b.inBounds(x, y) {
		return 0, false
	}
	return b.Data[b.index(x, y)], true
}

// SetColorIndex sets the color index at (x,y), silently ignoring
// out-of-bounds coordinates.
func (b *IndexedImageBuffer) SetColorIndex(x, y int16, index uint8) {
	if !b.inBounds(x, y) {
		return
	}
	b.Data[b.index(x, y)] = index
}

// NoTransparentColor disables color-keying in Blit.
const NoTransparentColor = -1

// Blit draws src (indexed pixels within srcRect) into dst (packed 0xFFRRGGBB
// pixels, dstStride pixels per row) within dstRect, nearest-neighbour
// scaling src to fit dstRect. When transparentIndex is not
// NoTransparentColor, source pixels equal to it are skipped instead of
// written.
func Blit(dst []uint32, dstStride int, dstRect Rect, src *IndexedImageBuffer, srcRect Rect, palette *Palette, transparentIndex int) {
	dstW := int(dstRect.Width())
	dstH := int(dstRect.Height())
	srcW := int(srcRect.Width())
	srcH := int(srcRect.Height())
	if dstW <= 0 || dstH <= 0 || srcW <= 0 || srcH <= 0 {
		return
	}

	for dy := 0; dy < dstH; dy++ {
		sy := int16(float64(dy) * float64(srcH) / float64(dstH))
		for dx := 0; dx < dstW; dx++ {
			sx := int16(float64(dx) * float64(srcW) / float64(dstW))

			index, ok := src.ColorIndexAt(srcRect.X0+sx, srcRect.Y0+sy)
			if !ok {
				continue
			}
			if transparentIndex != NoTransparentColor && int(index) == transparentIndex {
				continue
			}

			px := int(dstRect.X0) + dx
			py := int(dstRect.Y0) + dy
			if px < 0 || py < 0 {
				continue
			}
			off := py*dstStride + px
			if off < 0 || off >= len(dst) {
				continue
			}
			dst[off] = palette.Rgb888At(index).ToU32()
		}
	}
}
