package game

// Canvas is the drawing surface the render passes paint into. Coordinates
// are window pixels, origin top-left, y down. Alpha is 0..1. Quads take
// their corners clockwise from top-left; gradients colour the top pair
// toward the bottom pair. The GL renderer batches these into vertex
// buffers; tests substitute a recorder.
type Canvas interface {
	Quad(x1, y1, x2, y2, x3, y3, x4, y4 float64, col RGB, alpha float64)
	QuadGrad(x1, y1, x2, y2, x3, y3, x4, y4 float64, top, bottom RGB, alpha float64)
	Rect(x, y, w, h float64, col RGB, alpha float64)
	RectGrad(x, y, w, h float64, top, bottom RGB, alpha float64)
	Circle(cx, cy, r float64, col RGB, alpha float64)
	Glow(cx, cy, size float64, col RGB, intensity float64)
}

// RoadRenderer paints the projected road window back to front, sprites
// interleaved so nearer rows cover farther scenery.
type RoadRenderer struct {
	views []SegmentView
}

func NewRoadRenderer() *RoadRenderer {
	return &RoadRenderer{views: make([]SegmentView, 0, DrawDistance)}
}

func (rr *RoadRenderer) Draw(c Canvas, trk *Track, v *Vehicle, w, h int) {
	rr.views = ProjectWindow(trk, v.Position, v.LateralOffset, w, h, rr.views)
	views := rr.views
	if len(views) < 2 {
		return
	}
	theme := trk.Theme

	for j := len(views) - 1; j >= 1; j-- {
		far, near := &views[j], &views[j-1]
		if far.Y >= near.Y || far.HalfWidth <= 0 || near.HalfWidth <= 0 {
			continue
		}
		if far.Y > float64(h) || near.Y < 0 {
			continue
		}
		rr.drawRow(c, theme, far, near, w)
		drawSegmentSprites(c, theme, far)
	}
	drawSegmentSprites(c, theme, &views[0])
}

func (rr *RoadRenderer) drawRow(c Canvas, theme *TrackTheme, far, near *SegmentView, w int) {
	idx := near.Seg.Index
	fog := near.Fog
	fogCol := theme.SkyHorizon

	ground := lerpRGB(theme.GroundBand(idx), fogCol, fog)
	c.Rect(0, far.Y, float64(w), near.Y-far.Y, ground, 1)

	rumble := lerpRGB(theme.RumbleBand(idx), fogCol, fog)
	fr := far.HalfWidth * RumbleOuterFrac
	nr := near.HalfWidth * RumbleOuterFrac
	c.Quad(far.X-fr, far.Y, far.X+fr, far.Y, near.X+nr, near.Y, near.X-nr, near.Y, rumble, 1)

	road := lerpRGB(theme.RoadBand(idx), fogCol, fog)
	c.Quad(far.X-far.HalfWidth, far.Y, far.X+far.HalfWidth, far.Y,
		near.X+near.HalfWidth, near.Y, near.X-near.HalfWidth, near.Y, road, 1)

	if idx < FinishBandSegs {
		rr.drawFinishRow(c, far, near, idx, fog, fogCol)
		return
	}
	if floorMod(idx, 2) == 0 {
		dash := lerpRGB(Palette.LaneMark, fogCol, fog)
		fd := far.HalfWidth * LaneDashFrac
		nd := near.HalfWidth * LaneDashFrac
		c.Quad(far.X-fd, far.Y, far.X+fd, far.Y, near.X+nd, near.Y, near.X-nd, near.Y, dash, 1)
	}
}

// drawFinishRow overlays the start/finish checker onto the road body.
func (rr *RoadRenderer) drawFinishRow(c Canvas, far, near *SegmentView, idx int, fog float64, fogCol RGB) {
	const cells = 8
	fl := far.X - far.HalfWidth
	nl := near.X - near.HalfWidth
	fw := far.HalfWidth * 2
	nw := near.HalfWidth * 2
	for k := 0; k < cells; k++ {
		col := Palette.FinishLight
		if (k+idx)%2 == 1 {
			col = Palette.FinishDark
		}
		col = lerpRGB(col, fogCol, fog)
		t0 := float64(k) / cells
		t1 := float64(k+1) / cells
		c.Quad(fl+fw*t0, far.Y, fl+fw*t1, far.Y, nl+nw*t1, near.Y, nl+nw*t0, near.Y, col, 1)
	}
}
