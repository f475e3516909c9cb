/*
NAME
  bitmap.go

DESCRIPTION
  bitmap.go decodes the BITD cast member data chunk (a run-length-encoded
  indexed bitmap) and the optional THUM thumbnail chunk, plus the
  BitmapInfo header found inline in the CASt chunk's own data section.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package director

import (
	"github.com/ausocean/director/errs"
	"github.com/ausocean/director/gfx"
	"github.com/ausocean/director/reader"
	"github.com/ausocean/director/tag"
)

// BitmapInfo is the fixed-layout header preceding a bitmap cast member's
// name and other variable fields in the CASt chunk's data section.
type BitmapInfo struct {
	Pitch     uint16
	Rect      gfx.Rect
	Reg       gfx.Pos
	BitDepth  uint8
	PaletteID int16
}

func readBitmapInfo(r *reader.Reader) (BitmapInfo, error) {
	a, err := r.ReadBEU16()
	if err != nil {
		return BitmapInfo{}, err
	}
	pitch := a & 0xfff

	y0, err := r.ReadBEI16()
	if err != nil {
		return BitmapInfo{}, err
	}
	x0, err := r.ReadBEI16()
	if err != nil {
		return BitmapInfo{}, err
	}
	y1, err := r.ReadBEI16()
	if err != nil {
		return BitmapInfo{}, err
	}
	x1, err := r.ReadBEI16()
	if err != nil {
		return BitmapInfo{}, err
	}
	rect := gfx.Rect{Y0: y0, X0: x0, Y1: y1, X1: x1}

	// Four further rect-shaped fields that playback does not use.
	for i := 0; i < 4; i++ {
		if _, err := r.ReadBEI16(); err != nil {
			return BitmapInfo{}, err
		}
	}

	regY, err := r.ReadBEI16()
	if err != nil {
		return BitmapInfo{}, err
	}
	regX, err := r.ReadBEI16()
	if err != nil {
		return BitmapInfo{}, err
	}
	reg := gfx.Pos{Y: regY, X: regX}

	// Reserved byte; some movies omit it at the end of a truncated chunk.
	_, _ = r.ReadU8()

	bitDepth := uint8(1)
	if v, err := r.ReadU8(); err == nil {
		bitDepth = v
	}

	paletteID := int16(1)
	if v, err := r.ReadBEI16(); err == nil {
		paletteID = v
	}
	paletteID--

	return BitmapInfo{Pitch: pitch, Rect: rect, Reg: reg, BitDepth: bitDepth, PaletteID: paletteID}, nil
}

// BitmapData is the BITD chunk: a run-length-encoded indexed image.
type BitmapData struct {
	buf []byte
}

func readBitmapData(payload *reader.Reader) (BitmapData, error) {
	return BitmapData{buf: payload.ReadToEnd()}, nil
}

// Thumbnail is the optional THUM chunk, a smaller preview bitmap in the
// same encoding as BitmapData.
type Thumbnail struct {
	buf     []byte
	Present bool
}

func readThumbnail(payload *reader.Reader) (Thumbnail, error) {
	buf := payload.ReadToEnd()
	if len(buf) == 0 {
		return Thumbnail{}, nil
	}
	return Thumbnail{buf: buf, Present: true}, nil
}

// rleRunLengths decodes one control byte into (repeatCount, literalCount):
// for a repeat run, literalCount is 0 and the single next
// byte is repeated repeatCount times; for a literal run, repeatCount is 0
// and the next literalCount bytes are copied verbatim.
func rleRunLengths(control byte) (repeatCount, literalCount int) {
	if control&0x80 != 0 {
		return 257 - int(control), 0
	}
	return 0, int(control) + 1
}

// decompressLen computes the decoded length of an RLE stream without
// allocating the output, by replaying the control-byte sequence.
func decompressLen(r *reader.Reader) (int, error) {
	start := r.Pos()
	total := 0
	for r.Remaining() > 0 {
		control, err := r.ReadU8()
		if err != nil {
			return 0, err
		}
		repeatCount, literalCount := rleRunLengths(control)
		if repeatCount > 0 {
			if _, err := r.ReadU8(); err != nil {
				return 0, err
			}
			total += repeatCount
		} else {
			if _, err := r.ReadBytes(literalCount); err != nil {
				return 0, err
			}
			total += literalCount
		}
	}
	if err := r.Seek(start); err != nil {
		return 0, err
	}
	return total, nil
}

// decompress expands an RLE stream into buf, which must be exactly the
// length decompressLen reported.
func decompress(r *reader.Reader, buf []byte) error {
	pos := 0
	for r.Remaining() > 0 {
		control, err := r.ReadU8()
		if err != nil {
			return err
		}
		repeatCount, literalCount := rleRunLengths(control)
		if repeatCount > 0 {
			b, err := r.ReadU8()
			if err != nil {
				return err
			}
			if pos+repeatCount > len(buf) {
				return errs.NewInvalidData(tag.BITD.String(), r.Pos(), "RLE repeat run overruns decoded buffer")
			}
			for i := 0; i < repeatCount; i++ {
				buf[pos+i] = b
			}
			pos += repeatCount
		} else {
			lit, err := r.ReadBytes(literalCount)
			if err != nil {
				return err
			}
			if pos+literalCount > len(buf) {
				return errs.NewInvalidData(tag.BITD.String(), r.Pos(), "RLE literal run overruns decoded buffer")
			}
			copy(buf[pos:], lit)
			pos += literalCount
		}
	}
	return nil
}

// Image decodes the bitmap's pixels into an 8-bit indexed image buffer,
// using info's pitch to derive the decoded height. Bit depths other than 8
// are parsed but not decoded: Image returns a zeroed placeholder buffer
// sized from info.Rect instead, so a sprite referencing one still occupies
// its rectangle in the display list rather than vanishing.
func (b *BitmapData) Image(info BitmapInfo) (*gfx.IndexedImageBuffer, error) {
	if info.BitDepth != 8 {
		w := int(info.Rect.X1 - info.Rect.X0)
		h := int(info.Rect.Y1 - info.Rect.Y0)
		if w < 0 {
			w = 0
		}
		if h < 0 {
			h = 0
		}
		return gfx.NewIndexedImageBuffer(w, h), nil
	}
	if info.Pitch == 0 {
		return nil, errs.NewInvalidData(tag.BITD.String(), 0, "bitmap pitch is zero")
	}

	r := reader.New(b.buf)
	n, err := decompressLen(r)
	if err != nil {
		return nil, err
	}

	out := make([]byte, n)
	if err := decompress(r, out); err != nil {
		return nil, err
	}

	height := n / int(info.Pitch)
	img := gfx.NewIndexedImageBuffer(int(info.Pitch), height)
	copy(img.Data, out)
	return img, nil
}
