package gfx

import "testing"

func TestRectWidthHeightAndEmpty(t *testing.T) {
	r := Rect{Y0: 10, X0: 5, Y1: 30, X1: 25}
	if r.Width() != 20 {
		t.Errorf("Width() = %d, want 20", r.Width())
	}
	if r.Height() != 20 {
		t.Errorf("Height() = %d, want 20", r.Height())
	}
	if r.IsEmpty() {
		t.Error("IsEmpty() = true for non-degenerate rect")
	}

	degenerate := Rect{Y0: 0, X0: 0, Y1: 0, X1: 10}
	if !degenerate.IsEmpty() {
		t.Error("IsEmpty() = false for zero-height rect")
	}
}

func TestRectTranslate(t *testing.T) {
	r := Rect{Y0: 1, X0: 2, Y1: 3, X1: 4}
	got := r.Translate(Pos{Y: 10, X: 20})
	want := Rect{Y0: 11, X0: 22, Y1: 13, X1: 24}
	if got != want {
		t.Errorf("Translate = %+v, want %+v", got, want)
	}
}

func TestRgb888ToU32RoundTrip(t *testing.T) {
	c := Rgb888{R: 0x10, G: 0x20, B: 0x30}
	got := c.ToU32()
	want := uint32(0xFF102030)
	if got != want {
		t.Errorf("ToU32() = 0x%08X, want 0x%08X", got, want)
	}
	back := Rgb888FromU32(got)
	if back != c {
		t.Errorf("Rgb888FromU32(ToU32()) = %+v, want %+v", back, c)
	}
}

func TestRgb161616Conversion(t *testing.T) {
	c := Rgb888{R: 0xAB, G: 0xCD, B: 0xEF}
	wide := Rgb161616FromRgb888(c)
	if wide.R != 0xAB00 || wide.G != 0xCD00 || wide.B != 0xEF00 {
		t.Errorf("Rgb161616FromRgb888 = %+v", wide)
	}
	back := wide.ToRgb888()
	if back != c {
		t.Errorf("round trip = %+v, want %+v", back, c)
	}
}

func TestIndexedImageBufferBoundsChecks(t *testing.T) {
	b := NewIndexedImageBuffer(4, 4)
	b.SetColorIndex(2, 2, 9)
	if v, ok := b.ColorIndexAt(2, 2); !ok || v != 9 {
		t.Errorf("ColorIndexAt(2,2) = %d,%v, want 9,true", v, ok)
	}
	if _, ok := b.ColorIndexAt(100, 100); ok {
		t.Error("ColorIndexAt out of bounds should return ok=false")
	}
	b.SetColorIndex(100, 100, 1) // must not panic
}

func TestBlitNearestNeighbourAndColorKey(t *testing.T) {
	src := NewIndexedImageBuffer(2, 2)
	src.SetColorIndex(0, 0, 1)
	src.SetColorIndex(1, 0, 2)
	src.SetColorIndex(0, 1, 3)
	src.SetColorIndex(1, 1, 4)

	var pal Palette
	pal.Set(1, Rgb161616FromRgb888(Rgb888{R: 10, G: 10, B: 10}))
	pal.Set(2, Rgb161616FromRgb888(Rgb888{R: 20, G: 20, B: 20}))
	pal.Set(3, Rgb161616FromRgb888(Rgb888{R: 30, G: 30, B: 30}))
	pal.Set(4, Rgb161616FromRgb888(Rgb888{R: 40, G: 40, B: 40}))

	dst := make([]uint32, 4*4)
	dstRect := Rect{Y0: 0, X0: 0, Y1: 4, X1: 4}
	srcRect := Rect{Y0: 0, X0: 0, Y1: 2, X1: 2}

	Blit(dst, 4, dstRect, src, srcRect, &pal, NoTransparentColor)

	if dst[0] != (Rgb888{R: 10, G: 10, B: 10}).ToU32() {
		t.Errorf("top-left pixel = 0x%08X", dst[0])
	}
	if dst[3] != (Rgb888{R: 20, G: 20, B: 20}).ToU32() {
		t.Errorf("top-right quadrant pixel = 0x%08X", dst[3])
	}

	dst2 := make([]uint32, 4*4)
	Blit(dst2, 4, dstRect, src, srcRect, &pal, 1)
	if dst2[0] != 0 {
		t.Errorf("color-keyed pixel should be left untouched, got 0x%08X", dst2[0])
	}
}
