package graphics

import "math"

// FrameBuffer is an in-memory pixel surface implementing Context
type FrameBuffer struct {
	w, h int
	pix  []Color
	fill Color
}

// NewFrameBuffer allocates a w×h buffer filled with bg
func NewFrameBuffer(w, h int, bg Color) *FrameBuffer {
	fb := &FrameBuffer{w: w, h: h, pix: make([]Color, w*h), fill: ColorBlack}
	fb.Clear(bg)
	return fb
}

// Size returns the buffer dimensions
func (fb *FrameBuffer) Size() Size {
	return Size{W: fb.w, H: fb.h}
}

// Clear paints every pixel with c
func (fb *FrameBuffer) Clear(c Color) {
	for i := range fb.pix {
		fb.pix[i] = c
	}
}

// At returns the pixel at (x, y); out of range reads ColorClear
func (fb *FrameBuffer) At(x, y int) Color {
	if x < 0 || y < 0 || x >= fb.w || y >= fb.h {
		return ColorClear
	}
	return fb.pix[y*fb.w+x]
}

// SetFillColor implements Context
func (fb *FrameBuffer) SetFillColor(c Color) {
	fb.fill = c
}

func (fb *FrameBuffer) set(x, y int) {
	if fb.fill == ColorClear || x < 0 || y < 0 || x >= fb.w || y >= fb.h {
		return
	}
	fb.pix[y*fb.w+x] = fb.fill
}

// FillRect implements Context
func (fb *FrameBuffer) FillRect(r Rect) {
	for y := r.Origin.Y; y < r.Origin.Y+r.Size.H; y++ {
		for x := r.Origin.X; x < r.Origin.X+r.Size.W; x++ {
			fb.set(x, y)
		}
	}
}

// FillRadial implements Context.
// A sweep of a full revolution or more paints the whole ring.
func (fb *FrameBuffer) FillRadial(frame Rect, thickness int, start, end int32) {
	if thickness <= 0 || end <= start {
		return
	}
	circle := frame.FitCircle()
	if circle.Empty() {
		return
	}

	outer := float64(circle.Size.W) / 2
	inner := math.Max(outer-float64(thickness), 0)
	cx := float64(circle.Origin.X) + outer
	cy := float64(circle.Origin.Y) + outer

	span := float64(end - start)
	full := span >= TrigAngleMax
	from := math.Mod(float64(start), TrigAngleMax)
	if from < 0 {
		from += TrigAngleMax
	}

	for y := circle.Origin.Y; y < circle.Origin.Y+circle.Size.H; y++ {
		for x := circle.Origin.X; x < circle.Origin.X+circle.Size.W; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			d := math.Hypot(dx, dy)
			if d > outer || d < inner {
				continue
			}
			if !full {
				rel := math.Mod(pixelTrigAngle(dx, dy)-from+TrigAngleMax, TrigAngleMax)
				if rel > span {
					continue
				}
			}
			fb.set(x, y)
		}
	}
}

// pixelTrigAngle measures clockwise from 12 o'clock, in trig-angle units
func pixelTrigAngle(dx, dy float64) float64 {
	rad := math.Atan2(dx, -dy)
	if rad < 0 {
		rad += 2 * math.Pi
	}
	return rad / (2 * math.Pi) * TrigAngleMax
}

// Count returns how many pixels hold c
func (fb *FrameBuffer) Count(c Color) int {
	n := 0
	for _, p := range fb.pix {
		if p == c {
			n++
		}
	}
	return n
}
