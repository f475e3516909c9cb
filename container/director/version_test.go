package director

import "testing"

func TestNewVersionPicksHighestQualifyingEntry(t *testing.T) {
	cases := []struct {
		raw       uint16
		wantMajor uint16
		wantMinor uint16
	}{
		{0x000, 3, 0},
		{0x403, 3, 0},
		{0x404, 3, 0},
		{0x405, 3, 10},
		{0x45B, 4, 0},
		{0x45D, 4, 4},
		{0x4B1, 5, 0},
		{0x4C2, 6, 0},
		{0x4C8, 7, 0},
		{0x582, 8, 0},
		{0x6A4, 8, 50},
		{0x73B, 10, 0},
		{0x781, 11, 0},
		{0x782, 11, 50},
		{0x79F, 12, 0},
		{0xffff, 12, 0},
	}

	for _, c := range cases {
		v := NewVersion(c.raw)
		if v.Major() != c.wantMajor || v.Minor() != c.wantMinor {
			t.Errorf("NewVersion(0x%x) = %d.%02d, want %d.%02d", c.raw, v.Major(), v.Minor(), c.wantMajor, c.wantMinor)
		}
	}
}
