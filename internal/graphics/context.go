package graphics

// Context is the drawing surface handed to layer update procs
type Context interface {
	SetFillColor(c Color)
	FillRect(r Rect)
	// FillRadial fills a ring inscribed in frame (fitted to a circle), thickness
	// pixels deep, sweeping clockwise from start to end.
	FillRadial(frame Rect, thickness int, start, end int32)
}

// Translate returns a Context whose coordinates are offset by origin
func Translate(ctx Context, origin Point) Context {
	if origin == (Point{}) {
		return ctx
	}
	return translated{ctx: ctx, origin: origin}
}

type translated struct {
	ctx    Context
	origin Point
}

func (t translated) SetFillColor(c Color) { t.ctx.SetFillColor(c) }

func (t translated) FillRect(r Rect) { t.ctx.FillRect(r.Offset(t.origin)) }

func (t translated) FillRadial(frame Rect, thickness int, start, end int32) {
	t.ctx.FillRadial(frame.Offset(t.origin), thickness, start, end)
}
