/*
NAME
  projector.go

DESCRIPTION
  projector.go locates the movie container embedded in a Director
  projector executable (the "player" stub bundled with a published
  movie), by following the trailer Director appends to the end of the
  executable image.

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
	"github.com/ausocean/director/reader"
	"github.com/ausocean/director/tag"
)

// ProjectorHeader is the fixed-layout trailer Director 93+ projectors
// carry, naming the offsets of the embedded movie and the DLLs the
// projector may load alongside it.
type ProjectorHeader struct {
	RifxOfs    uint32
	FmapOfs    uint32
	Res1Ofs    uint32
	Res2Ofs    uint32
	GfxDllOfs  uint32
	SndDllOfs  uint32
	RifxOfsAlt uint32
	Flags      uint32
}

// Projector is an opened Director projector executable.
type Projector struct {
	buf    []byte
	header ProjectorHeader
}

// OpenProjector locates and parses a projector's trailer. buf is the
// entire executable image; it is never copied or mutated.
func OpenProjector(buf []byte) (*Projector, error) {
	if len(buf) < 4 {
		return nil, errs.NewInvalidData("PJ93", 0, "file too small to contain a projector trailer")
	}

	r := reader.New(buf)
	r.SetByteOrder(reader.LittleEndian)

	if err := r.Seek(int64(len(buf) - 4)); err != nil {
		return nil, err
	}
	offset, err := r.ReadU32()
	if err != nil {
		return nil, err
	}

	if err := r.Seek(int64(offset)); err != nil {
		return nil, err
	}
	rawTag, err := r.ReadBEU32()
	if err != nil {
		return nil, err
	}
	if tag.Tag(rawTag) != tag.PJ93 {
		return nil, errs.NewInvalidData(tag.Tag(rawTag).String(), int64(offset), "not a PJ93 projector trailer")
	}

	var h ProjectorHeader
	h.RifxOfs, err = r.ReadU32()
	if err != nil {
		return nil, err
	}
	h.FmapOfs, err = r.ReadU32()
	if err != nil {
		return nil, err
	}
	h.Res1Ofs, err = r.ReadU32()
	if err != nil {
		return nil, err
	}
	h.Res2Ofs, err = r.ReadU32()
	if err != nil {
		return nil, err
	}
	h.GfxDllOfs, err = r.ReadU32()
	if err != nil {
		return nil, err
	}
	h.SndDllOfs, err = r.ReadU32()
	if err != nil {
		return nil, err
	}
	h.RifxOfsAlt, err = r.ReadU32()
	if err != nil {
		return nil, err
	}
	h.Flags, err = r.ReadU32()
	if err != nil {
		return nil, err
	}

	return &Projector{buf: buf, header: h}, nil
}

// Header returns the parsed projector trailer.
func (p *Projector) Header() ProjectorHeader { return p.header }

// ReadInitialRiff opens the movie container the trailer points to. If the
// container is wrapped in an APPL container (some projectors embed the
// movie inside one), the wrapper is unwrapped transparently: its
// memory map is searched for the first entry tagged File, and the
// container at that entry's offset is opened instead.
func (p *Projector) ReadInitialRiff() (*Container, error) {
	if int(p.header.RifxOfs) >= len(p.buf) {
		return nil, errs.NewInvalidData("RIFX", int64(p.header.RifxOfs), "projector rifx offset out of range")
	}

	c, err := Open(p.buf[p.header.RifxOfs:])
	if err != nil {
		return nil, err
	}
	if c.TypeTag() != tag.APPL {
		return c, nil
	}

	entry, ok := c.mmap.FirstEntryWithTag(tag.File)
	if !ok {
		return nil, errs.NewNotFound("File entry in APPL wrapper")
	}
	if int(entry.Pos) >= len(c.buf) {
		return nil, errs.NewInvalidData(tag.File.String(), int64(entry.Pos), "APPL wrapper File offset out of range")
	}

	return Open(c.buf[entry.Pos:])
}
