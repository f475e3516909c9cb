package director

import (
	"testing"

	"github.com/ausocean/director/reader"
)

func TestReadFrameLabels(t *testing.T) {
	// Two labels: "intro" at frame 1, "loop" at frame 10.
	var buf []byte
	buf = append(buf, 0, 2) // label count

	// (frame, textOffset) pairs, one extra trailing pair for the end offset.
	buf = append(buf, 0, 1, 0, 0)  // frame 1, offset 0
	buf = append(buf, 0, 10, 0, 5) // frame 10, offset 5
	buf = append(buf, 0, 0, 0, 9)  // trailing, offset 9 (end of "loop")

	buf = append(buf, []byte("introloop")...)

	r := reader.New(buf)
	r.SetByteOrder(reader.BigEndian)
	labels, err := readFrameLabels(r)
	if err != nil {
		t.Fatalf("readFrameLabels: %v", err)
	}

	if len(labels.Labels) != 2 {
		t.Fatalf("got %d labels, want 2", len(labels.Labels))
	}
	if labels.Labels[0].Number != 1 || labels.Labels[0].Text != "intro" {
		t.Errorf("label 0 = %+v, want {1 intro}", labels.Labels[0])
	}
	if labels.Labels[1].Number != 10 || labels.Labels[1].Text != "loop" {
		t.Errorf("label 1 = %+v, want {10 loop}", labels.Labels[1])
	}
}

func TestFrameLabelsIsEmpty(t *testing.T) {
	var f FrameLabels
	if !f.IsEmpty() {
		t.Error("zero-value FrameLabels should report empty")
	}
}
