package graphics

import "testing"

func TestInset(t *testing.T) {
	r := NewRect(0, 0, 144, 168)

	got := r.Inset(UniformInsets(4))
	want := NewRect(4, 4, 136, 160)
	if got != want {
		t.Errorf("Inset(4) = %+v, want %+v", got, want)
	}

	if got := r.Inset(UniformInsets(0)); got != r {
		t.Errorf("Inset(0) = %+v, want unchanged", got)
	}

	if got := NewRect(0, 0, 6, 6).Inset(UniformInsets(4)); !got.Empty() {
		t.Errorf("oversized inset should produce an empty rect, got %+v", got)
	}
}

func TestFitCircle(t *testing.T) {
	tests := []struct {
		name string
		in   Rect
		want Rect
	}{
		{"square", NewRect(0, 0, 180, 180), NewRect(0, 0, 180, 180)},
		{"tall", NewRect(4, 4, 136, 160), NewRect(4, 16, 136, 136)},
		{"wide", NewRect(0, 0, 100, 50), NewRect(25, 0, 50, 50)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.FitCircle(); got != tt.want {
				t.Errorf("FitCircle(%+v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDegToTrigAngle(t *testing.T) {
	tests := []struct {
		deg  int
		want int32
	}{
		{0, 0},
		{90, TrigAngleMax / 4},
		{-90, -TrigAngleMax / 4},
		{360, TrigAngleMax},
		{-360, -TrigAngleMax},
	}
	for _, tt := range tests {
		if got := DegToTrigAngle(tt.deg); got != tt.want {
			t.Errorf("DegToTrigAngle(%d) = %d, want %d", tt.deg, got, tt.want)
		}
	}
}

// ringPoints returns pixels in the middle of the ring at each compass point
func ringPoints(size, thickness int) map[string]Point {
	mid := size / 2
	depth := thickness / 2
	return map[string]Point{
		"top":    {mid, depth},
		"right":  {size - 1 - depth, mid},
		"bottom": {mid, size - 1 - depth},
		"left":   {depth, mid},
		// diagonals, 45° into each quadrant
		"upper-left":  {depth + size/7, depth + size/7},
		"upper-right": {size - 1 - depth - size/7, depth + size/7},
		"lower-right": {size - 1 - depth - size/7, size - 1 - depth - size/7},
		"lower-left":  {depth + size/7, size - 1 - depth - size/7},
	}
}

func TestFillRadialZeroSweepPaintsNothing(t *testing.T) {
	fb := NewFrameBuffer(100, 100, ColorBlack)
	fb.SetFillColor(ColorYellow)
	fb.FillRadial(NewRect(0, 0, 100, 100), 10, DegToTrigAngle(0), DegToTrigAngle(0))

	if n := fb.Count(ColorYellow); n != 0 {
		t.Errorf("zero sweep painted %d pixels", n)
	}
}

func TestFillRadialFullRing(t *testing.T) {
	for _, deg := range []int{-360, -400, -720} {
		fb := NewFrameBuffer(100, 100, ColorBlack)
		fb.SetFillColor(ColorYellow)
		fb.FillRadial(NewRect(0, 0, 100, 100), 10, DegToTrigAngle(deg), 0)

		for name, p := range ringPoints(100, 10) {
			if got := fb.At(p.X, p.Y); got != ColorYellow {
				t.Errorf("sweep %d: %s pixel %v = %v, want yellow", deg, name, p, got)
			}
		}
		if got := fb.At(50, 50); got != ColorBlack {
			t.Errorf("sweep %d: centre painted %v", deg, got)
		}
	}
}

func TestFillRadialQuarterCounterClockwise(t *testing.T) {
	fb := NewFrameBuffer(100, 100, ColorBlack)
	fb.SetFillColor(ColorYellow)
	fb.FillRadial(NewRect(0, 0, 100, 100), 10, DegToTrigAngle(-90), 0)

	points := ringPoints(100, 10)
	if got := fb.At(points["upper-left"].X, points["upper-left"].Y); got != ColorYellow {
		t.Errorf("upper-left = %v, want yellow", got)
	}
	for _, name := range []string{"upper-right", "lower-right", "lower-left", "bottom"} {
		p := points[name]
		if got := fb.At(p.X, p.Y); got != ColorBlack {
			t.Errorf("%s = %v, want black", name, got)
		}
	}
}

func TestFillRadialClearColorIsNoop(t *testing.T) {
	fb := NewFrameBuffer(20, 20, ColorBlack)
	fb.SetFillColor(ColorClear)
	fb.FillRadial(NewRect(0, 0, 20, 20), 4, -TrigAngleMax, 0)
	if n := fb.Count(ColorBlack); n != 400 {
		t.Errorf("clear fill changed %d pixels", 400-n)
	}
}

func TestTranslate(t *testing.T) {
	fb := NewFrameBuffer(10, 10, ColorBlack)
	ctx := Translate(fb, Point{X: 5, Y: 5})
	ctx.SetFillColor(ColorGreen)
	ctx.FillRect(NewRect(0, 0, 2, 2))

	if fb.At(5, 5) != ColorGreen || fb.At(6, 6) != ColorGreen {
		t.Error("translated rect not painted at offset")
	}
	if fb.At(0, 0) != ColorBlack {
		t.Error("translated rect painted at origin")
	}
	if n := fb.Count(ColorGreen); n != 4 {
		t.Errorf("painted %d pixels, want 4", n)
	}
}
