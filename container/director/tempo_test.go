package director

import "testing"

func TestNewTempo(t *testing.T) {
	cases := []struct {
		raw      int8
		wantKind TempoKind
		wantFPS  uint8
		wantErr  bool
	}{
		{0, TempoNone, 0, false},
		{30, TempoFPS, 30, false},
		{1, TempoFPS, 1, false},
		{-121, TempoWaitForSoundChannel1, 0, false},
		{-122, TempoWaitForSoundChannel2, 0, false},
		{-128, TempoWaitForMouse, 0, false},
		{-1, 0, 0, true},
		{-100, 0, 0, true},
	}

	for _, c := range cases {
		got, err := NewTempo(c.raw)
		if c.wantErr {
			if err == nil {
				t.Errorf("NewTempo(%d): expected an error, got nil", c.raw)
			}
			continue
		}
		if err != nil {
			t.Errorf("NewTempo(%d): unexpected error: %v", c.raw, err)
			continue
		}
		if got.Kind != c.wantKind || got.FPS != c.wantFPS {
			t.Errorf("NewTempo(%d) = %+v, want kind %v fps %d", c.raw, got, c.wantKind, c.wantFPS)
		}
	}
}
