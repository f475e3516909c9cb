package director

import (
	"bytes"
	"testing"

	"github.com/ausocean/director/gfx"
	"github.com/ausocean/director/reader"
)

// encodeRLE produces a minimal RLE stream for the given pixel rows: each
// row is emitted as a single literal run, which decompress must expand
// back to the exact bytes given.
func encodeRLE(rows [][]byte) []byte {
	var buf []byte
	for _, row := range rows {
		buf = append(buf, byte(len(row)-1))
		buf = append(buf, row...)
	}
	return buf
}

func TestRLERepeatAndLiteralRuns(t *testing.T) {
	var buf []byte
	buf = append(buf, 0x03, 'a', 'b', 'c', 'd') // literal run of 4
	buf = append(buf, byte(257-5), 'x')         // repeat run of 5 'x's

	r := reader.New(buf)
	n, err := decompressLen(r)
	if err != nil {
		t.Fatalf("decompressLen: %v", err)
	}
	if n != 9 {
		t.Fatalf("decompressLen = %d, want 9", n)
	}

	out := make([]byte, n)
	if err := decompress(r, out); err != nil {
		t.Fatalf("decompress: %v", err)
	}

	want := []byte("abcdxxxxx")
	if !bytes.Equal(out, want) {
		t.Errorf("decompress = %q, want %q", out, want)
	}
}

func TestBitmapDataImageDecodesRows(t *testing.T) {
	rows := [][]byte{
		{1, 2, 3},
		{4, 5, 6},
	}
	data := BitmapData{buf: encodeRLE(rows)}
	info := BitmapInfo{Pitch: 3, BitDepth: 8}

	img, err := data.Image(info)
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	if img.Width != 3 || img.Height != 2 {
		t.Fatalf("image dims = %dx%d, want 3x2", img.Width, img.Height)
	}

	idx, ok := img.ColorIndexAt(0, 1)
	if !ok || idx != 4 {
		t.Errorf("ColorIndexAt(0,1) = %d, %v, want 4, true", idx, ok)
	}
}

func TestBitmapDataImageReturnsPlaceholderForNonIndexedDepth(t *testing.T) {
	data := BitmapData{buf: encodeRLE([][]byte{{1, 2}})}
	info := BitmapInfo{Pitch: 2, BitDepth: 1, Rect: gfx.Rect{X0: 0, Y0: 0, X1: 4, Y1: 2}}

	img, err := data.Image(info)
	if err != nil {
		t.Fatalf("Image: %v, want a placeholder instead of an error", err)
	}
	if img.Width != 4 || img.Height != 2 {
		t.Errorf("placeholder dims = %dx%d, want 4x2", img.Width, img.Height)
	}
	for _, b := range img.Data {
		if b != 0 {
			t.Fatal("placeholder image should be zeroed")
		}
	}
}
