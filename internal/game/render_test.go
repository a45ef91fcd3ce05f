package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordCanvas captures draw calls for assertions. Every coordinate is
// checked for NaN/Inf on the way in, so any pass drawn through it gets a
// free non-degeneracy check.
type recordCanvas struct {
	t      *testing.T
	quads  int
	rects  int
	grads  int
	circs  int
	glows  int
	rectAt [][4]float64 // x, y, w, h
}

func newRecordCanvas(t *testing.T) *recordCanvas { return &recordCanvas{t: t} }

func (rc *recordCanvas) total() int {
	return rc.quads + rc.rects + rc.grads + rc.circs + rc.glows
}

func (rc *recordCanvas) checkFinite(vals ...float64) {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			rc.t.Fatalf("non-finite draw coordinate %v", vals)
		}
	}
}

func (rc *recordCanvas) Quad(x1, y1, x2, y2, x3, y3, x4, y4 float64, col RGB, alpha float64) {
	rc.checkFinite(x1, y1, x2, y2, x3, y3, x4, y4, alpha)
	rc.quads++
}

func (rc *recordCanvas) QuadGrad(x1, y1, x2, y2, x3, y3, x4, y4 float64, top, bottom RGB, alpha float64) {
	rc.checkFinite(x1, y1, x2, y2, x3, y3, x4, y4, alpha)
	rc.grads++
}

func (rc *recordCanvas) Rect(x, y, w, h float64, col RGB, alpha float64) {
	rc.checkFinite(x, y, w, h, alpha)
	rc.rects++
	rc.rectAt = append(rc.rectAt, [4]float64{x, y, w, h})
}

func (rc *recordCanvas) RectGrad(x, y, w, h float64, top, bottom RGB, alpha float64) {
	rc.checkFinite(x, y, w, h, alpha)
	rc.grads++
}

func (rc *recordCanvas) Circle(cx, cy, r float64, col RGB, alpha float64) {
	rc.checkFinite(cx, cy, r, alpha)
	rc.circs++
}

func (rc *recordCanvas) Glow(cx, cy, size float64, col RGB, intensity float64) {
	rc.checkFinite(cx, cy, size, intensity)
	rc.glows++
}

var _ Canvas = (*recordCanvas)(nil)

func TestRoadPassPaintsEveryCatalogTrack(t *testing.T) {
	rr := NewRoadRenderer()
	for _, def := range TrackCatalog {
		trk, err := BuildTrack(def, 5)
		require.NoError(t, err)
		v := NewVehicle(VehicleCatalog[0], trk, 5)

		for _, pos := range []float64{0, SegmentLength * 1.5, trk.Length() - 10} {
			v.Position = pos
			rc := newRecordCanvas(t)
			rr.Draw(rc, trk, v, 1280, 720)
			assert.Greater(t, rc.quads, 50, "track %s pos %v draws the road body", def.ID, pos)
			assert.Greater(t, rc.rects, 10, "track %s pos %v draws ground bands", def.ID, pos)
		}
	}
}

func TestRoadPassSurvivesWrapBoundary(t *testing.T) {
	trk := buildTestTrack(t, []Section{{Hold: 70, Curve: 2, Hill: 10}})
	v := testVehicle(t, trk)
	rr := NewRoadRenderer()

	for _, pos := range []float64{trk.Length(), trk.Length() - 0.001, 0} {
		v.Position = pos
		rc := newRecordCanvas(t)
		rr.Draw(rc, trk, v, 1280, 720)
		assert.Positive(t, rc.total(), "pos %v", pos)
	}
}

func TestThemeBandColors(t *testing.T) {
	th := &ThemeMeadow
	assert.NotEqual(t, th.RoadBand(0), th.RoadBand(1), "road shade alternates by parity")
	assert.Equal(t, th.RoadBand(0), th.RoadBand(2))
	assert.Equal(t, th.GroundBand(1), th.GroundBand(3))
	assert.Equal(t, Palette.RumbleRed, th.RumbleBand(0))
	assert.Equal(t, Palette.RumbleWhite, th.RumbleBand(1))

	rb := &ThemeRainbow
	assert.Equal(t, rb.RoadBand(0), rb.RoadBand(1), "rainbow bands pair up")
	assert.NotEqual(t, rb.RoadBand(0), rb.RoadBand(2), "then cycle hues")
	assert.Equal(t, rb.RoadBand(0), rb.RoadBand(2*len(rainbowCycle)), "full cycle repeats")
}

func TestSkyPassByTheme(t *testing.T) {
	sky := NewSkyRenderer(7)
	for _, th := range []*TrackTheme{&ThemeMeadow, &ThemeAlpine, &ThemeNightCity, &ThemeDesertDusk, &ThemeRainbow} {
		rc := newRecordCanvas(t)
		sky.Draw(rc, th, 1280, 720)
		assert.Positive(t, rc.grads, "theme %s gradient", th.Name)
		assert.Positive(t, rc.circs, "theme %s sun or moon", th.Name)
		if th.Night {
			assert.Greater(t, rc.glows, 50, "theme %s stars", th.Name)
		}
	}
}

func TestPlayerSpriteStates(t *testing.T) {
	trk := buildTestTrack(t, []Section{{Hold: 20}})
	v := testVehicle(t, trk)

	rc := newRecordCanvas(t)
	DrawPlayer(rc, v, 1280, 720)
	assert.Positive(t, rc.total(), "a healthy car draws its body")

	// The invincibility blink hides the car on odd phases.
	v.InvincibleTimer = 1.0 / 8 // int(1) -> odd phase
	rc = newRecordCanvas(t)
	DrawPlayer(rc, v, 1280, 720)
	assert.Zero(t, rc.total(), "blink phase hides the sprite")

	v.InvincibleTimer = 0
	v.Crash = CrashExplode
	v.CrashTimer = 1
	rc = newRecordCanvas(t)
	DrawPlayer(rc, v, 1280, 720)
	assert.Positive(t, rc.circs, "the wreck draws a fireball")
	assert.Positive(t, rc.glows)
}

func TestEveryVehicleKindDraws(t *testing.T) {
	trk := buildTestTrack(t, []Section{{Hold: 20}})
	for _, spec := range VehicleCatalog {
		v := NewVehicle(spec, trk, 9)
		rc := newRecordCanvas(t)
		DrawPlayer(rc, v, 1280, 720)
		assert.Positive(t, rc.total(), "vehicle %s", spec.ID)
	}
}

func TestEveryObstacleAndHazardKindDraws(t *testing.T) {
	view := &SegmentView{X: 640, Y: 500, HalfWidth: 300, Scale: 1}

	for kind := ObstacleKind(0); kind < obstacleKindCount; kind++ {
		seg := Segment{Right: &Obstacle{Offset: 1.4, Width: 0.3, Kind: kind}}
		view.Seg = &seg
		rc := newRecordCanvas(t)
		drawSegmentSprites(rc, &ThemeMeadow, view)
		assert.Positive(t, rc.total(), "obstacle kind %d", kind)
	}

	for kind := HazardKind(0); kind < hazardKindCount; kind++ {
		seg := Segment{Hazard: &Hazard{Offset: 0.2, Width: 0.25, Kind: kind}}
		view.Seg = &seg
		rc := newRecordCanvas(t)
		drawSegmentSprites(rc, &ThemeMeadow, view)
		assert.Positive(t, rc.total(), "hazard kind %d", kind)
	}
}

func TestTinyProjectedSpritesAreCulled(t *testing.T) {
	seg := Segment{Right: &Obstacle{Offset: 1.4, Width: 0.3, Kind: ObstacleTree}}
	view := &SegmentView{Seg: &seg, X: 640, Y: 365, HalfWidth: 2, Scale: 0.002}

	rc := newRecordCanvas(t)
	drawSegmentSprites(rc, &ThemeMeadow, view)
	assert.Zero(t, rc.total(), "sub-pixel sprites are skipped")
}
