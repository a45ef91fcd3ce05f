package game

import "math"

// Scenery, hazard, and vehicle silhouettes dispatch through kind-indexed
// tables so adding a variant never touches the draw loop.

var obstacleDrawFuncs [obstacleKindCount]func(c Canvas, x, y, w, fog float64, fogCol RGB, variant uint64)

var hazardDrawFuncs [hazardKindCount]func(c Canvas, x, y, w, fog float64, fogCol RGB)

var vehicleDrawFuncs [vehicleKindCount]func(c Canvas, x, y, cw, ch, skew float64, body, trim RGB)

func init() {
	obstacleDrawFuncs = [obstacleKindCount]func(Canvas, float64, float64, float64, float64, RGB, uint64){
		ObstacleTree:      drawTreeSprite,
		ObstaclePine:      drawPineSprite,
		ObstacleBoulder:   drawBoulderSprite,
		ObstacleCactus:    drawCactusSprite,
		ObstacleLamp:      drawLampSprite,
		ObstacleBillboard: drawBillboardSprite,
	}
	hazardDrawFuncs = [hazardKindCount]func(Canvas, float64, float64, float64, float64, RGB){
		HazardCone:   drawConeSprite,
		HazardBarrel: drawBarrelSprite,
		HazardOil:    drawOilSprite,
		HazardRock:   drawRockSprite,
	}
	vehicleDrawFuncs = [vehicleKindCount]func(Canvas, float64, float64, float64, float64, float64, RGB, RGB){
		KindCoupe:   drawCoupeBody,
		KindMuscle:  drawMuscleBody,
		KindCompact: drawCompactBody,
		KindBuggy:   drawBuggyBody,
	}
}

// drawSegmentSprites paints one segment's roadside scenery and on-road
// hazard at its projected row. Called far to near by the road pass.
func drawSegmentSprites(c Canvas, theme *TrackTheme, view *SegmentView) {
	fogCol := theme.SkyHorizon
	if ob := view.Seg.Left; ob != nil {
		drawObstacle(c, view, ob, fogCol)
	}
	if ob := view.Seg.Right; ob != nil {
		drawObstacle(c, view, ob, fogCol)
	}
	if hz := view.Seg.Hazard; hz != nil {
		x := view.X + hz.Offset*view.HalfWidth
		w := hz.Width * view.HalfWidth
		if w >= 1 {
			hazardDrawFuncs[hz.Kind](c, x, view.Y, w, view.Fog, fogCol)
		}
	}
}

func drawObstacle(c Canvas, view *SegmentView, ob *Obstacle, fogCol RGB) {
	x := view.X + ob.Offset*view.HalfWidth
	w := ob.Width * view.HalfWidth
	if w < 1 {
		return
	}
	obstacleDrawFuncs[ob.Kind](c, x, view.Y, w, view.Fog, fogCol, ob.Variant)
}

func drawTreeSprite(c Canvas, x, y, w, fog float64, fogCol RGB, variant uint64) {
	h := w * 2.6
	trunk := lerpRGB(RGB{R: 110, G: 82, B: 52}, fogCol, fog)
	crown := lerpRGB(RGB{R: 74, G: 132, B: 60}, fogCol, fog)
	if variant&1 == 1 {
		crown = lerpRGB(RGB{R: 92, G: 148, B: 70}, fogCol, fog)
	}
	c.Rect(x-w*0.12, y-h*0.45, w*0.24, h*0.45, trunk, 1)
	c.Circle(x, y-h*0.62, w*0.52, crown, 1)
	c.Circle(x-w*0.34, y-h*0.48, w*0.4, crown, 1)
	c.Circle(x+w*0.34, y-h*0.5, w*0.42, crown, 1)
}

func drawPineSprite(c Canvas, x, y, w, fog float64, fogCol RGB, variant uint64) {
	h := w * 3.2
	trunk := lerpRGB(RGB{R: 96, G: 70, B: 46}, fogCol, fog)
	nd := lerpRGB(RGB{R: 44, G: 96, B: 58}, fogCol, fog)
	c.Rect(x-w*0.1, y-h*0.3, w*0.2, h*0.3, trunk, 1)
	// Three stacked fronds, narrowing upward.
	for i := 0; i < 3; i++ {
		t := float64(i)
		half := w * (0.55 - t*0.14)
		base := y - h*(0.28+t*0.22)
		top := base - h*0.26
		c.Quad(x, top, x, top, x+half, base, x-half, base, nd, 1)
	}
}

func drawBoulderSprite(c Canvas, x, y, w, fog float64, fogCol RGB, variant uint64) {
	rock := lerpRGB(RGB{R: 128, G: 126, B: 120}, fogCol, fog)
	dark := lerpRGB(RGB{R: 102, G: 100, B: 96}, fogCol, fog)
	c.Circle(x-w*0.2, y-w*0.34, w*0.42, dark, 1)
	c.Circle(x+w*0.18, y-w*0.3, w*0.5, rock, 1)
}

func drawCactusSprite(c Canvas, x, y, w, fog float64, fogCol RGB, variant uint64) {
	h := w * 2.2
	green := lerpRGB(RGB{R: 70, G: 128, B: 74}, fogCol, fog)
	c.Rect(x-w*0.16, y-h, w*0.32, h, green, 1)
	c.Rect(x-w*0.52, y-h*0.72, w*0.36, h*0.1, green, 1)
	c.Rect(x-w*0.52, y-h*0.72, w*0.1, h*0.3, green, 1)
	c.Rect(x+w*0.16, y-h*0.56, w*0.36, h*0.1, green, 1)
	c.Rect(x+w*0.42, y-h*0.56, w*0.1, h*0.24, green, 1)
}

func drawLampSprite(c Canvas, x, y, w, fog float64, fogCol RGB, variant uint64) {
	h := w * 4.5
	pole := lerpRGB(RGB{R: 70, G: 74, B: 82}, fogCol, fog)
	c.Rect(x-w*0.1, y-h, w*0.2, h, pole, 1)
	c.Circle(x, y-h, w*0.34, lerpRGB(RGB{R: 255, G: 232, B: 170}, fogCol, fog), 1)
	c.Glow(x, y-h, w*2.2, RGB{R: 255, G: 220, B: 140}, (1-fog)*0.7)
}

func drawBillboardSprite(c Canvas, x, y, w, fog float64, fogCol RGB, variant uint64) {
	h := w * 1.2
	leg := lerpRGB(RGB{R: 88, G: 80, B: 70}, fogCol, fog)
	c.Rect(x-w*0.64, y-h*0.5, w*0.1, h*0.5, leg, 1)
	c.Rect(x+w*0.54, y-h*0.5, w*0.1, h*0.5, leg, 1)
	panel := billboardHues[variant%uint64(len(billboardHues))]
	c.RectGrad(x-w*0.8, y-h*1.15, w*1.6, h*0.68,
		lerpRGB(panel, fogCol, fog), lerpRGB(panel.Mul(168), fogCol, fog), 1)
	c.Rect(x-w*0.8, y-h*0.5, w*1.6, h*0.05, lerpRGB(RGB{R: 230, G: 230, B: 224}, fogCol, fog), 1)
}

var billboardHues = []RGB{
	{R: 208, G: 82, B: 70},
	{R: 70, G: 140, B: 190},
	{R: 224, G: 170, B: 60},
	{R: 96, G: 168, B: 96},
}

func drawConeSprite(c Canvas, x, y, w, fog float64, fogCol RGB) {
	h := w * 1.7
	cone := lerpRGB(RGB{R: 235, G: 120, B: 40}, fogCol, fog)
	band := lerpRGB(Palette.RumbleWhite, fogCol, fog)
	c.Quad(x, y-h, x, y-h, x+w*0.5, y, x-w*0.5, y, cone, 1)
	c.Quad(x-w*0.14, y-h*0.55, x+w*0.14, y-h*0.55, x+w*0.22, y-h*0.32, x-w*0.22, y-h*0.32, band, 1)
}

func drawBarrelSprite(c Canvas, x, y, w, fog float64, fogCol RGB) {
	h := w * 1.5
	a := lerpRGB(RGB{R: 188, G: 64, B: 52}, fogCol, fog)
	b := lerpRGB(RGB{R: 226, G: 222, B: 212}, fogCol, fog)
	c.Rect(x-w*0.5, y-h, w, h*0.34, a, 1)
	c.Rect(x-w*0.5, y-h*0.66, w, h*0.33, b, 1)
	c.Rect(x-w*0.5, y-h*0.33, w, h*0.33, a, 1)
}

func drawOilSprite(c Canvas, x, y, w, fog float64, fogCol RGB) {
	oil := lerpRGB(RGB{R: 30, G: 32, B: 40}, fogCol, fog)
	c.Circle(x, y-w*0.06, w*0.5, oil, 0.92)
	c.Circle(x-w*0.42, y-w*0.03, w*0.3, oil, 0.92)
	c.Circle(x+w*0.44, y-w*0.04, w*0.26, oil, 0.92)
}

func drawRockSprite(c Canvas, x, y, w, fog float64, fogCol RGB) {
	rock := lerpRGB(RGB{R: 120, G: 112, B: 100}, fogCol, fog)
	c.Circle(x, y-w*0.3, w*0.46, rock, 1)
	c.Circle(x+w*0.3, y-w*0.2, w*0.3, rock.Mul(200), 1)
}

// PlayerScreenPos returns the car sprite's anchor point. Particle spawns
// and the renderer agree on it.
func PlayerScreenPos(v *Vehicle, w, h int) (float64, float64) {
	cw := float64(w) * 0.14
	ch := cw * 0.55
	x := float64(w)*0.5 + v.VisualTilt*cw*0.3
	y := float64(h) - ch*0.62 - 16 + v.Bounce
	return x, y
}

// DrawPlayer paints the player car near the bottom centre. The road
// slides underneath, so only tilt nudges the sprite sideways.
func DrawPlayer(c Canvas, v *Vehicle, w, h int) {
	cw := float64(w) * 0.14
	ch := cw * 0.55
	x, y := PlayerScreenPos(v, w, h)

	if v.Crash == CrashExplode {
		drawFireball(c, x, y-ch*0.3, cw, v.CrashTimer)
		return
	}
	// Invincibility blink at ~4 Hz.
	if v.InvincibleTimer > 0 && int(v.InvincibleTimer*8)%2 == 1 {
		return
	}

	width := cw
	if v.Crash == CrashSpin {
		width = cw * (0.28 + 0.72*absF(math.Cos(v.SpinAngle)))
	}
	skew := v.VisualTilt * cw * 0.18
	vehicleDrawFuncs[v.Spec.Kind](c, x, y, width, ch, skew, v.Spec.Body, v.Spec.Trim)
}

func drawFireball(c Canvas, x, y, cw, timer float64) {
	pulse := 0.85 + 0.15*math.Sin(timer*31)
	r := cw * 0.5 * pulse
	c.Glow(x, y, r*3.2, Palette.FireMid, 0.9)
	c.Circle(x, y, r, Palette.FireCool, 0.95)
	c.Circle(x-r*0.2, y-r*0.15, r*0.62, Palette.FireMid, 0.95)
	c.Circle(x+r*0.1, y-r*0.25, r*0.34, Palette.FireHot, 1)
}

func drawWheelPair(c Canvas, x, y, cw, ch, r float64) {
	dark := RGB{R: 22, G: 22, B: 24}
	c.Circle(x-cw*0.38, y+ch*0.3, r, dark, 1)
	c.Circle(x+cw*0.38, y+ch*0.3, r, dark, 1)
}

func drawCoupeBody(c Canvas, x, y, cw, ch, skew float64, body, trim RGB) {
	drawWheelPair(c, x, y, cw, ch, ch*0.3)
	c.Quad(x-cw*0.42+skew, y-ch*0.1, x+cw*0.42+skew, y-ch*0.1,
		x+cw*0.5, y+ch*0.34, x-cw*0.5, y+ch*0.34, body, 1)
	c.Quad(x-cw*0.26+skew*1.6, y-ch*0.46, x+cw*0.26+skew*1.6, y-ch*0.46,
		x+cw*0.3+skew, y-ch*0.08, x-cw*0.3+skew, y-ch*0.08, body.Mul(200), 1)
	c.Rect(x-cw*0.3+skew*1.6, y-ch*0.42, cw*0.6, ch*0.14, RGB{R: 40, G: 48, B: 60}, 1)
	c.Rect(x-cw*0.5, y+ch*0.18, cw, ch*0.08, trim, 1)
}

func drawMuscleBody(c Canvas, x, y, cw, ch, skew float64, body, trim RGB) {
	drawWheelPair(c, x, y, cw, ch, ch*0.34)
	c.Quad(x-cw*0.48+skew, y-ch*0.14, x+cw*0.48+skew, y-ch*0.14,
		x+cw*0.54, y+ch*0.36, x-cw*0.54, y+ch*0.36, body, 1)
	c.Quad(x-cw*0.28+skew*1.6, y-ch*0.5, x+cw*0.28+skew*1.6, y-ch*0.5,
		x+cw*0.34+skew, y-ch*0.1, x-cw*0.34+skew, y-ch*0.1, body.Mul(190), 1)
	c.Rect(x-cw*0.1+skew*1.3, y-ch*0.3, cw*0.2, ch*0.2, body.Mul(150), 1)
	c.Rect(x-cw*0.54, y+ch*0.2, cw*1.08, ch*0.1, trim, 1)
}

func drawCompactBody(c Canvas, x, y, cw, ch, skew float64, body, trim RGB) {
	drawWheelPair(c, x, y, cw*0.9, ch, ch*0.28)
	c.Quad(x-cw*0.38+skew, y-ch*0.22, x+cw*0.38+skew, y-ch*0.22,
		x+cw*0.44, y+ch*0.34, x-cw*0.44, y+ch*0.34, body, 1)
	c.Quad(x-cw*0.28+skew*1.6, y-ch*0.56, x+cw*0.28+skew*1.6, y-ch*0.56,
		x+cw*0.32+skew, y-ch*0.18, x-cw*0.32+skew, y-ch*0.18, body.Mul(205), 1)
	c.Rect(x-cw*0.26+skew*1.6, y-ch*0.52, cw*0.52, ch*0.16, RGB{R: 44, G: 52, B: 64}, 1)
	c.Rect(x-cw*0.44, y+ch*0.16, cw*0.88, ch*0.07, trim, 1)
}

func drawBuggyBody(c Canvas, x, y, cw, ch, skew float64, body, trim RGB) {
	big := ch * 0.42
	dark := RGB{R: 22, G: 22, B: 24}
	c.Circle(x-cw*0.42, y+ch*0.26, big, dark, 1)
	c.Circle(x+cw*0.42, y+ch*0.26, big, dark, 1)
	c.Quad(x-cw*0.36+skew, y-ch*0.12, x+cw*0.36+skew, y-ch*0.12,
		x+cw*0.42, y+ch*0.26, x-cw*0.42, y+ch*0.26, body, 1)
	// Roll cage.
	c.Rect(x-cw*0.3+skew*1.6, y-ch*0.52, cw*0.06, ch*0.42, trim, 1)
	c.Rect(x+cw*0.24+skew*1.6, y-ch*0.52, cw*0.06, ch*0.42, trim, 1)
	c.Rect(x-cw*0.3+skew*1.6, y-ch*0.54, cw*0.6, ch*0.08, trim, 1)
}
