package game

// SkyRenderer paints the backdrop once per frame beneath the road pass:
// a vertical gradient, the sun or moon, and a horizon silhouette built
// from a per-column deterministic hash so it never flickers between
// frames or runs.
type SkyRenderer struct {
	seed uint64
}

func NewSkyRenderer(seed uint64) *SkyRenderer {
	return &SkyRenderer{seed: splitmix64(seed ^ 0x5C1E5)}
}

var skylineDrawFuncs = [...]func(sr *SkyRenderer, c Canvas, theme *TrackTheme, w, h int){
	SkylineHills:     (*SkyRenderer).drawHills,
	SkylineMountains: (*SkyRenderer).drawMountains,
	SkylineCity:      (*SkyRenderer).drawCitySkyline,
	SkylineDunes:     (*SkyRenderer).drawDunes,
	SkylineNone:      func(*SkyRenderer, Canvas, *TrackTheme, int, int) {},
}

func (sr *SkyRenderer) Draw(c Canvas, theme *TrackTheme, w, h int) {
	fw, fh := float64(w), float64(h)
	horizon := fh * 0.5
	c.RectGrad(0, 0, fw, horizon, theme.SkyTop, theme.SkyHorizon, 1)
	// The road pass paints over everything below the horizon; this fill
	// closes the cracks left by degenerate rows.
	c.Rect(0, horizon, fw, fh-horizon, theme.SkyHorizon, 1)

	if theme.Night {
		sr.drawStars(c, w, int(horizon))
	}
	sr.drawCelestial(c, theme, fw, horizon)
	skylineDrawFuncs[theme.Skyline](sr, c, theme, w, h)
}

func (sr *SkyRenderer) drawStars(c Canvas, w, horizon int) {
	for i := 0; i < 110; i++ {
		hx := hash2D(sr.seed, i, 7)
		x := float64(hx % uint64(w))
		y := float64((hx >> 18) % uint64(horizon*9/10))
		size := 1.0 + float64((hx>>40)%20)/10.0
		c.Glow(x, y, size, RGB{R: 235, G: 238, B: 255}, 0.25+float64((hx>>52)%40)/100.0)
	}
}

func (sr *SkyRenderer) drawCelestial(c Canvas, theme *TrackTheme, fw, horizon float64) {
	x := fw * 0.76
	y := horizon * 0.34
	r := horizon * 0.11
	c.Glow(x, y, r*3.4, theme.Celestial, 0.55)
	c.Circle(x, y, r, theme.Celestial, 1)
	if theme.Night {
		// Crescent: bite out of the disc with the sky colour.
		c.Circle(x+r*0.42, y-r*0.2, r*0.86, theme.SkyTop, 1)
	}
}

// skylineNoise samples smooth value noise for a column, in [0,1].
func (sr *SkyRenderer) skylineNoise(x, wavelength int, salt int) float64 {
	k := floorDiv(x, wavelength)
	t := float64(floorMod(x, wavelength)) / float64(wavelength)
	a := float64(hash2D(sr.seed, k, salt)%1000) / 1000.0
	b := float64(hash2D(sr.seed, k+1, salt)%1000) / 1000.0
	t = t * t * (3 - 2*t)
	return a + (b-a)*t
}

func (sr *SkyRenderer) drawHills(c Canvas, theme *TrackTheme, w, h int) {
	horizon := float64(h) * 0.5
	col := lerpRGB(theme.SkyHorizon, RGB{R: 40, G: 70, B: 44}, 0.45)
	for x := 0; x < w; x += 6 {
		n := sr.skylineNoise(x, 140, 3)
		top := horizon - (12 + n*46)
		c.Rect(float64(x), top, 6, horizon-top+1, col, 1)
	}
}

func (sr *SkyRenderer) drawMountains(c Canvas, theme *TrackTheme, w, h int) {
	horizon := float64(h) * 0.5
	rockCol := lerpRGB(theme.SkyHorizon, RGB{R: 52, G: 58, B: 76}, 0.55)
	capCol := lerpRGB(theme.SkyHorizon, RGB{R: 235, G: 240, B: 248}, 0.6)
	for x := 0; x < w; x += 5 {
		n := sr.skylineNoise(x, 90, 11)
		peak := 26 + n*n*120
		top := horizon - peak
		c.Rect(float64(x), top, 5, peak+1, rockCol, 1)
		if peak > 95 {
			c.Rect(float64(x), top, 5, 10, capCol, 1)
		}
	}
}

func (sr *SkyRenderer) drawCitySkyline(c Canvas, theme *TrackTheme, w, h int) {
	horizon := float64(h) * 0.5
	block := lerpRGB(theme.SkyHorizon, RGB{R: 14, G: 16, B: 24}, 0.7)
	for x := 0; x < w; x += 26 {
		hx := hash2D(sr.seed, x/26, 19)
		bh := 24 + float64(hx%90)
		bw := 18 + float64((hx>>8)%8)
		top := horizon - bh
		c.Rect(float64(x), top, bw, bh+1, block, 1)
		if !theme.Night {
			continue
		}
		// A few lit windows per tower.
		for k := 0; k < 4; k++ {
			wh := hash2D(sr.seed, x/26, 23+k)
			wx := float64(x) + 2 + float64(wh%uint64(bw-5))
			wy := top + 4 + float64((wh>>16)%uint64(bh-8))
			c.Rect(wx, wy, 2, 3, RGB{R: 250, G: 220, B: 130}, 0.9)
		}
	}
}

func (sr *SkyRenderer) drawDunes(c Canvas, theme *TrackTheme, w, h int) {
	horizon := float64(h) * 0.5
	col := lerpRGB(theme.SkyHorizon, RGB{R: 150, G: 112, B: 74}, 0.4)
	for x := 0; x < w; x += 8 {
		n := sr.skylineNoise(x, 220, 29)
		top := horizon - (8 + n*30)
		c.Rect(float64(x), top, 8, horizon-top+1, col, 1)
	}
}
