package director

import (
	"testing"

	"github.com/ausocean/director/tag"
)

// buildContainer assembles a minimal RIFX- or XFIR-framed movie: the
// outer tag+size+type header, an imap pointing at an mmap, and the mmap
// itself. magic selects which native byte order is used; tag bytes within the container are always written in
// that same native order, per the container's on-disk convention.
func buildContainer(t *testing.T, magic tag.Tag) []byte {
	t.Helper()

	putU32 := leU32
	if magic == tag.RIFX {
		putU32 = beU32
	}

	mmapEntries := []MemoryMapEntry{
		{ID: 0, Tag: tag.Free},
	}

	// Build mmap chunk by hand to control byte order for both magics.
	body := make([]byte, 0)
	u16 := func(v uint16) []byte {
		b := putU32(uint32(v))
		if magic == tag.RIFX {
			return b[2:]
		}
		return b[:2]
	}
	body = append(body, u16(24)...)
	body = append(body, u16(20)...)
	body = append(body, putU32(uint32(len(mmapEntries)))...)
	body = append(body, putU32(uint32(len(mmapEntries)))...)
	body = append(body, putU32(0)...)
	body = append(body, putU32(0)...)
	body = append(body, putU32(0xFFFFFFFF)...)
	for _, e := range mmapEntries {
		body = append(body, putU32(uint32(e.Tag))...)
		body = append(body, putU32(e.Len)...)
		body = append(body, putU32(e.Pos)...)
		body = append(body, u16(e.Flags)...)
		body = append(body, u16(0)...)
		body = append(body, putU32(0)...)
	}

	var mmapChunk []byte
	mmapChunk = append(mmapChunk, putU32(uint32(tag.Mmap))...)
	mmapChunk = append(mmapChunk, putU32(uint32(len(body)))...)
	mmapChunk = append(mmapChunk, body...)

	var imapBody []byte
	imapBody = append(imapBody, putU32(1)...) // mmap version
	// mmap offset filled in after we know the header size below.

	headerSize := 12 // tag+size+type
	mmapOffset := uint32(headerSize + 8 /*imap header*/ + 8 /*imap body*/)
	imapBody = append(imapBody, putU32(mmapOffset)...)

	var imapChunk []byte
	imapChunk = append(imapChunk, putU32(uint32(tag.Imap))...)
	imapChunk = append(imapChunk, putU32(uint32(len(imapBody)))...)
	imapChunk = append(imapChunk, imapBody...)

	var buf []byte
	buf = append(buf, beU32(uint32(magic))...) // magic is always read big-endian
	buf = append(buf, putU32(0)...)            // size
	buf = append(buf, putU32(uint32(tag.MV93))...)
	buf = append(buf, imapChunk...)
	buf = append(buf, mmapChunk...)

	return buf
}

func TestOpenDetectsRIFXBigEndian(t *testing.T) {
	buf := buildContainer(t, tag.RIFX)
	c, err := Open(buf)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if c.TypeTag() != tag.MV93 {
		t.Errorf("TypeTag() = %v, want MV93", c.TypeTag())
	}
	if len(c.Mmap().Entries) != 1 {
		t.Errorf("got %d mmap entries, want 1", len(c.Mmap().Entries))
	}
}

func TestOpenDetectsXFIRLittleEndian(t *testing.T) {
	buf := buildContainer(t, tag.XFIR)
	c, err := Open(buf)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if c.TypeTag() != tag.MV93 {
		t.Errorf("TypeTag() = %v, want MV93", c.TypeTag())
	}
}

func TestOpenRejectsUnknownMagic(t *testing.T) {
	buf := append(beU32(uint32(tag.MV93)), make([]byte, 8)...)
	if _, err := Open(buf); err == nil {
		t.Fatal("expected an error for an unrecognised magic, got nil")
	}
}
