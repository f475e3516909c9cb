package director

import (
	"testing"

	"github.com/ausocean/director/reader"
)

// buildVListU32 assembles a u32-header VList with the given fixed
// numbers and entries (each entry's raw bytes, already encoded).
func buildVListU32(numbers []uint32, entries [][]byte) []byte {
	var buf []byte
	offset := uint32(4 + 4*len(numbers))
	buf = append(buf, beU32(offset)...)
	for _, n := range numbers {
		buf = append(buf, beU32(n)...)
	}

	entryCount := uint16(len(entries))
	buf = append(buf, byte(entryCount>>8), byte(entryCount))

	var cursor uint32
	offsets := []uint32{0}
	for _, e := range entries {
		cursor += uint32(len(e))
		offsets = append(offsets, cursor)
	}
	for _, o := range offsets {
		buf = append(buf, beU32(o)...)
	}
	for _, e := range entries {
		buf = append(buf, e...)
	}
	return buf
}

func TestVListFixedNumbersAndEntries(t *testing.T) {
	buf := buildVListU32(
		[]uint32{1, 2, 3},
		[][]byte{{4, 'n', 'a', 'm', 'e'}, {}},
	)

	r := reader.New(buf)
	r.SetByteOrder(reader.BigEndian)
	vl, err := readVListU32(r)
	if err != nil {
		t.Fatalf("readVListU32: %v", err)
	}

	if v, ok := vl.FixedNumber(1); !ok || v != 2 {
		t.Errorf("FixedNumber(1) = %d, %v, want 2, true", v, ok)
	}
	if _, ok := vl.FixedNumber(10); ok {
		t.Error("FixedNumber(10) should report false")
	}

	name, ok, err := vl.TryGetAsPascalString(0)
	if err != nil || !ok || name != "name" {
		t.Errorf("TryGetAsPascalString(0) = %q, %v, %v, want \"name\", true, nil", name, ok, err)
	}

	if _, ok, _ := vl.TryGetAsPascalString(1); ok {
		t.Error("TryGetAsPascalString(1) should report false for a zero-length entry")
	}
}

func TestVListRejectsNonMonotonicOffsets(t *testing.T) {
	var buf []byte
	buf = append(buf, beU32(4)...) // offset == 4, no fixed numbers
	buf = append(buf, 0, 2)        // entryCount = 2
	buf = append(buf, beU32(0)...)
	buf = append(buf, beU32(10)...)
	buf = append(buf, beU32(5)...) // decreasing: invalid

	r := reader.New(buf)
	r.SetByteOrder(reader.BigEndian)
	if _, err := readVListU32(r); err == nil {
		t.Fatal("expected an error for a non-monotonic offset table, got nil")
	}
}
