package render

import (
	"errors"
	"testing"
)

func TestLoadScoreFace(t *testing.T) {
	face, err := LoadScoreFace(40)
	if err != nil {
		t.Fatalf("LoadScoreFace(40): %v", err)
	}
	if face == nil {
		t.Fatal("LoadScoreFace(40) returned a nil face")
	}
	if w, h := NewScreen(face).MeasureText("0  0"); w <= 0 || h <= 0 {
		t.Fatalf("MeasureText = %v x %v, want a non-empty box", w, h)
	}

	for _, size := range []float64{0, -12} {
		if _, err := LoadScoreFace(size); !errors.Is(err, ErrFontSize) {
			t.Fatalf("LoadScoreFace(%v) err = %v, want ErrFontSize", size, err)
		}
	}
}

func TestScreenWithoutTarget(t *testing.T) {
	s := NewScreen(nil)
	if err := s.FillRect(0, 0, 1, 1, nil); !errors.Is(err, ErrNoTarget) {
		t.Fatalf("FillRect err = %v, want ErrNoTarget", err)
	}
	if err := s.DrawText("1", 0, 0, nil); !errors.Is(err, ErrNoTarget) {
		t.Fatalf("DrawText err = %v, want ErrNoTarget", err)
	}
	if w, h := s.MeasureText("1"); w != 0 || h != 0 {
		t.Fatalf("MeasureText without face = %v x %v", w, h)
	}
}
