package playback

import (
	"testing"
	"time"

	"github.com/ausocean/director/container/director"
)

func TestFrameDurationReflectsTempo(t *testing.T) {
	e := &Engine{tempo: director.Tempo{Kind: director.TempoFPS, FPS: 10}}
	d, ok := e.FrameDuration()
	if !ok {
		t.Fatal("FrameDuration() reported false for an FPS tempo")
	}
	if d != 100*time.Millisecond {
		t.Errorf("FrameDuration() = %v, want 100ms", d)
	}
}

func TestFrameDurationIsAbsentForWaitTempos(t *testing.T) {
	e := &Engine{tempo: director.Tempo{Kind: director.TempoWaitForMouse}}
	if _, ok := e.FrameDuration(); ok {
		t.Error("FrameDuration() should report false for a wait-for-mouse tempo")
	}
}

func TestTimeForNewFrame(t *testing.T) {
	now := time.Unix(1000, 0)
	e := &Engine{nextFrameTime: now}
	if !e.TimeForNewFrame(now) {
		t.Error("TimeForNewFrame should be true when now equals nextFrameTime")
	}
	if e.TimeForNewFrame(now.Add(-time.Second)) {
		t.Error("TimeForNewFrame should be false before nextFrameTime")
	}
}
