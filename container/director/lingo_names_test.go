package director

import (
	"testing"

	"github.com/ausocean/director/reader"
)

// buildLingoNamesChunk assembles a big-endian Lnam payload listing names as
// Pascal strings immediately after the fixed header.
func buildLingoNamesChunk(names []string) []byte {
	const headerSize = 20

	var table []byte
	for _, n := range names {
		table = append(table, byte(len(n)))
		table = append(table, []byte(n)...)
	}

	var buf []byte
	buf = append(buf, beU32(0)...)                    // unknown0
	buf = append(buf, beU32(0)...)                    // unknown1
	buf = append(buf, beU32(0)...)                    // len1
	buf = append(buf, beU32(0)...)                    // len2
	buf = append(buf, beU16(headerSize)...)            // names_offset
	buf = append(buf, beU16(uint16(len(names)))...)   // names_count
	buf = append(buf, table...)

	return buf
}

func TestReadLingoNamesRoundTrips(t *testing.T) {
	names := []string{"go", "repeat", "exitFrame"}
	buf := buildLingoNamesChunk(names)

	r := reader.New(buf)
	r.SetByteOrder(reader.BigEndian)
	n, err := readLingoNames(r)
	if err != nil {
		t.Fatalf("readLingoNames: %v", err)
	}

	if len(n.Names) != len(names) {
		t.Fatalf("got %d names, want %d", len(n.Names), len(names))
	}
	for i, want := range names {
		if got, ok := n.Name(uint16(i)); !ok || got != want {
			t.Errorf("Name(%d) = %q, %v, want %q, true", i, got, ok, want)
		}
	}
	if _, ok := n.Name(uint16(len(names))); ok {
		t.Error("Name() should report false past the end of the table")
	}
}
