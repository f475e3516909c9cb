package reader

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReadU16NativeOrder(t *testing.T) {
	cases := []struct {
		name  string
		order ByteOrder
		buf   []byte
		want  uint16
	}{
		{"little endian", LittleEndian, []byte{0x34, 0x12}, 0x1234},
		{"big endian", BigEndian, []byte{0x12, 0x34}, 0x1234},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := New(c.buf)
			r.SetByteOrder(c.order)
			got, err := r.ReadU16()
			if err != nil {
				t.Fatalf("ReadU16: %v", err)
			}
			if got != c.want {
				t.Errorf("ReadU16 = 0x%x, want 0x%x", got, c.want)
			}
		})
	}
}

func TestReadBEIgnoresNativeOrder(t *testing.T) {
	r := New([]byte{0x00, 0x01})
	r.SetByteOrder(LittleEndian)
	got, err := r.ReadBEU16()
	if err != nil {
		t.Fatalf("ReadBEU16: %v", err)
	}
	if got != 1 {
		t.Errorf("ReadBEU16 = %d, want 1", got)
	}
}

func TestSeekAndAbsoluteReads(t *testing.T) {
	r := New([]byte{0, 0, 0, 0, 0xAB, 0xCD})
	v, err := r.ReadBEU16At(4)
	if err != nil {
		t.Fatalf("ReadBEU16At: %v", err)
	}
	if v != 0xABCD {
		t.Errorf("ReadBEU16At = 0x%x, want 0xABCD", v)
	}
	if r.Pos() != 6 {
		t.Errorf("Pos after ReadBEU16At = %d, want 6", r.Pos())
	}
}

func TestSubRangeIsIndependent(t *testing.T) {
	r := New([]byte{1, 2, 3, 4, 5, 6})
	sub, err := r.SubRange(2, 3)
	if err != nil {
		t.Fatalf("SubRange: %v", err)
	}
	got, err := sub.ReadBytes(3)
	if err != nil {
		t.Fatalf("ReadBytes: %v", err)
	}
	want := []byte{3, 4, 5}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SubRange contents mismatch (-want +got):\n%s", diff)
	}
	if r.Pos() != 0 {
		t.Errorf("parent reader position moved to %d, want 0", r.Pos())
	}
}

func TestSubRangeOutOfBounds(t *testing.T) {
	r := New([]byte{1, 2, 3})
	if _, err := r.SubRange(1, 10); err == nil {
		t.Fatal("expected error for out-of-bounds subrange, got nil")
	}
}

func TestReadFixedStringDropsNulAndDecodesLatin1(t *testing.T) {
	r := New([]byte{'h', 'i', 0, 'X', 0xE9})
	s, err := r.ReadFixedString(5)
	if err != nil {
		t.Fatalf("ReadFixedString: %v", err)
	}
	if s != "hi" {
		t.Errorf("ReadFixedString = %q, want %q", s, "hi")
	}
}

func TestReadPascalString(t *testing.T) {
	r := New([]byte{3, 'f', 'o', 'o', 'X'})
	s, err := r.ReadPascalString()
	if err != nil {
		t.Fatalf("ReadPascalString: %v", err)
	}
	if s != "foo" {
		t.Errorf("ReadPascalString = %q, want %q", s, "foo")
	}
	if r.Pos() != 4 {
		t.Errorf("Pos after ReadPascalString = %d, want 4", r.Pos())
	}
}

func TestReadBytesUnexpectedEOF(t *testing.T) {
	r := New([]byte{1, 2})
	if _, err := r.ReadBytes(3); err == nil {
		t.Fatal("expected error reading past end of buffer, got nil")
	}
}
