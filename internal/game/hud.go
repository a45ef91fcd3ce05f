package game

import (
	"fmt"
	"math"
)

// HUD draws every overlay: menus, countdown, race telemetry, pause, and
// the finish summary. Everything is text and flat shapes over the Canvas,
// laid out against a 720-high reference and scaled with the window.
type HUD struct {
	Time float64 // drives blinking and pulsing
	FPS  float64
}

func (hd *HUD) Update(dt float64) { hd.Time += dt }

func (hd *HUD) blink(hz float64) bool {
	return int(hd.Time*hz*2)%2 == 0
}

func (hd *HUD) Draw(c Canvas, s *Session, w, h int) {
	su := float64(h) / 720.0
	switch s.State {
	case StateTitle:
		hd.drawTitle(c, w, h, su)
	case StateVehicleSelect:
		hd.drawVehicleSelect(c, s, w, h, su)
	case StateTrackSelect:
		hd.drawTrackSelect(c, s, w, h, su)
	case StateCountdown:
		hd.drawRaceHUD(c, s, w, h, su)
		hd.drawCountdown(c, s, w, h, su)
	case StateRacing:
		hd.drawRaceHUD(c, s, w, h, su)
		if s.RaceTime < 0.9 {
			DrawStringCentered(c, "GO!", float64(w)/2, float64(h)*0.3, 14*su, Palette.HudAccent, 1)
		}
	case StatePaused:
		hd.drawRaceHUD(c, s, w, h, su)
		hd.drawPause(c, w, h, su)
	case StateFinished:
		hd.drawFinished(c, s, w, h, su)
	}

	if hd.FPS > 0 {
		DrawString(c, fmt.Sprintf("%.0f FPS", hd.FPS), 8*su, float64(h)-16*su, 1.6*su, Palette.HudDim, 0.8)
	}
}

func (hd *HUD) drawTitle(c Canvas, w, h int, su float64) {
	cx := float64(w) / 2
	// Drop shadow first, then the face.
	DrawStringCentered(c, "ROADBURN", cx+4*su, float64(h)*0.2+4*su, 10*su, RGB{R: 30, G: 16, B: 26}, 0.9)
	DrawStringCentered(c, "ROADBURN", cx, float64(h)*0.2, 10*su, Palette.HudAccent, 1)
	DrawStringCentered(c, "ARCADE ROAD RACING", cx, float64(h)*0.2+90*su, 3*su, Palette.HudText, 1)

	if hd.blink(0.8) {
		DrawStringCentered(c, "PRESS ENTER", cx, float64(h)*0.62, 4*su, Palette.HudText, 1)
	}

	y := float64(h) * 0.78
	for _, line := range []string{
		"ARROWS OR WASD  DRIVE",
		"ESC  PAUSE    M  MUTE",
	} {
		DrawStringCentered(c, line, cx, y, 2*su, Palette.HudDim, 1)
		y += 22 * su
	}
}

func (hd *HUD) drawVehicleSelect(c Canvas, s *Session, w, h int, su float64) {
	cx := float64(w) / 2
	spec := s.SelectedVehicle()

	DrawStringCentered(c, "PICK YOUR RIDE", cx, 46*su, 5*su, Palette.HudText, 1)
	DrawStringCentered(c, spec.Name, cx, 120*su, 6*su, Palette.HudAccent, 1)
	DrawString(c, "(", cx-260*su, 124*su, 5*su, Palette.HudDim, 1)
	DrawString(c, ")", cx+240*su, 124*su, 5*su, Palette.HudDim, 1)

	// Big preview of the selected body.
	pw := float64(w) * 0.2
	vehicleDrawFuncs[spec.Kind](c, cx, float64(h)*0.42, pw, pw*0.55, 0, spec.Body, spec.Trim)

	y := float64(h) * 0.62
	hd.drawStatBar(c, "TOP SPEED", spec.TopSpeed, cx, y, su)
	hd.drawStatBar(c, "ACCELERATION", spec.Accel, cx, y+34*su, su)
	hd.drawStatBar(c, "HANDLING", spec.Handling, cx, y+68*su, su)
	hd.drawStatBar(c, "OFFROAD", spec.Offroad, cx, y+102*su, su)

	DrawStringCentered(c, "ENTER CONFIRM    ESC BACK", cx, float64(h)-40*su, 2*su, Palette.HudDim, 1)
}

// drawStatBar paints a labelled row of rating cells, filled up to value.
func (hd *HUD) drawStatBar(c Canvas, label string, value int, cx, y, su float64) {
	DrawString(c, label, cx-250*su, y, 2*su, Palette.HudText, 1)
	cell := 22 * su
	x0 := cx + 10*su
	for i := 0; i < RatingScale; i++ {
		col := Palette.StatBarEmpty
		if i < value {
			col = Palette.StatBarFull
		}
		c.Rect(x0+float64(i)*cell, y, cell-4*su, 14*su, col, 1)
	}
}

func (hd *HUD) drawTrackSelect(c Canvas, s *Session, w, h int, su float64) {
	cx := float64(w) / 2
	def := s.SelectedTrack()

	DrawStringCentered(c, "PICK A TRACK", cx, 46*su, 5*su, Palette.HudText, 1)
	DrawStringCentered(c, def.Name, cx, 120*su, 6*su, Palette.HudAccent, 1)
	DrawString(c, "(", cx-280*su, 124*su, 5*su, Palette.HudDim, 1)
	DrawString(c, ")", cx+260*su, 124*su, 5*su, Palette.HudDim, 1)

	sub := def.Theme.Name
	if trk := s.PreviewTrack; trk != nil {
		sub = fmt.Sprintf("%s  -  %d LAPS  -  %.1f KM", def.Theme.Name, def.Laps, trk.Length()/1000.0)
	}
	DrawStringCentered(c, sub, cx, 180*su, 2.4*su, Palette.HudText, 1)

	if trk := s.PreviewTrack; trk != nil {
		hd.drawTrackMap(c, trk, cx, float64(h)*0.48, 200*su, -1)
	}

	if s.PreviewLap > 0 {
		DrawStringCentered(c,
			fmt.Sprintf("BEST LAP %s    BEST RACE %s", formatTime(s.PreviewLap), formatTime(s.PreviewRace)),
			cx, float64(h)*0.78, 2.4*su, Palette.FinishLight, 1)
	} else {
		DrawStringCentered(c, "NO RECORDS YET", cx, float64(h)*0.78, 2.4*su, Palette.HudDim, 1)
	}

	DrawStringCentered(c, "ENTER RACE    ESC BACK", cx, float64(h)-40*su, 2*su, Palette.HudDim, 1)
}

// drawTrackMap plots the track ribbon by integrating curvature into a
// heading and walking one step per segment, then fitting the result into
// a box centred at (cx, cy). playerIdx marks the car, -1 for none.
func (hd *HUD) drawTrackMap(c Canvas, trk *Track, cx, cy, size float64, playerIdx int) {
	n := trk.SegmentCount()
	if n < 2 {
		return
	}
	pts := make([][2]float64, n)
	heading := 0.0
	x, y := 0.0, 0.0
	for i := 0; i < n; i++ {
		seg := trk.AtIndex(i)
		heading += seg.Curve * 0.045
		x += math.Sin(heading)
		y -= math.Cos(heading)
		pts[i] = [2]float64{x, y}
	}

	minX, maxX := pts[0][0], pts[0][0]
	minY, maxY := pts[0][1], pts[0][1]
	for _, p := range pts {
		if p[0] < minX {
			minX = p[0]
		}
		if p[0] > maxX {
			maxX = p[0]
		}
		if p[1] < minY {
			minY = p[1]
		}
		if p[1] > maxY {
			maxY = p[1]
		}
	}
	span := maxX - minX
	if maxY-minY > span {
		span = maxY - minY
	}
	if span <= 0 {
		span = 1
	}
	scale := size / span
	ox := cx - (minX+maxX)/2*scale
	oy := cy - (minY+maxY)/2*scale

	dot := clampF(size*0.014, 2, 4)
	for i, p := range pts {
		px := ox + p[0]*scale
		py := oy + p[1]*scale
		col := Palette.HudDim
		d := dot
		switch {
		case i < FinishBandSegs:
			col = Palette.FinishLight
			d = dot * 1.5
		case trk.AtIndex(i).Hazard != nil:
			col = Palette.HudWarn
			d = dot * 1.5
		}
		c.Rect(px-d/2, py-d/2, d, d, col, 0.95)
	}
	if playerIdx >= 0 {
		p := pts[floorMod(playerIdx, n)]
		px := ox + p[0]*scale
		py := oy + p[1]*scale
		c.Rect(px-dot, py-dot, dot*2, dot*2, Palette.HudAccent, 1)
	}
}

func (hd *HUD) drawCountdown(c Canvas, s *Session, w, h int, su float64) {
	n := int(s.Countdown) + 1
	if n < 1 {
		return
	}
	frac := s.Countdown - float64(n-1)
	scale := (10 + 6*frac) * su
	DrawStringCentered(c, fmt.Sprintf("%d", n), float64(w)/2, float64(h)*0.28, scale, Palette.HudWarn, 0.4+0.6*frac)
}

func (hd *HUD) drawRaceHUD(c Canvas, s *Session, w, h int, su float64) {
	if s.Car == nil || s.Track == nil {
		return
	}

	// Timing panel, top left.
	c.Rect(12*su, 12*su, 250*su, 108*su, Palette.HudPanel, 0.6)
	lap := s.Car.Lap + 1
	if lap > s.Track.Laps {
		lap = s.Track.Laps
	}
	x := 24 * su
	DrawString(c, fmt.Sprintf("LAP %d/%d", lap, s.Track.Laps), x, 24*su, 3*su, Palette.HudText, 1)
	DrawString(c, "TIME "+formatTime(s.RaceTime), x, 56*su, 2.4*su, Palette.HudText, 1)
	DrawString(c, "LAP  "+formatTime(s.LapTime), x, 78*su, 2.4*su, Palette.HudText, 1)
	best := Palette.HudDim
	if s.BestLap > 0 && (s.TargetLap == 0 || s.BestLap < s.TargetLap) {
		best = Palette.FinishLight
	}
	DrawString(c, "BEST "+formatTime(s.BestLap), x, 100*su, 2.4*su, best, 1)

	// Stored record, top right.
	if s.TargetLap > 0 {
		txt := "RECORD " + formatTime(s.TargetLap)
		DrawString(c, txt, float64(w)-TextWidth(txt, 2.4*su)-20*su, 24*su, 2.4*su, Palette.HudDim, 1)
	}

	// Minimap, top centre.
	hd.drawTrackMap(c, s.Track, float64(w)/2, 70*su, 110*su,
		int(s.Car.Position/SegmentLength))

	// Speedometer, bottom right.
	kmh := int(absF(s.Car.Speed) * SpeedometerUnit)
	spd := fmt.Sprintf("%d", kmh)
	DrawString(c, spd, float64(w)-TextWidth(spd, 7*su)-120*su, float64(h)-92*su, 7*su, Palette.HudText, 1)
	DrawString(c, "KM/H", float64(w)-104*su, float64(h)-56*su, 2.4*su, Palette.HudDim, 1)
	barW := 220 * su
	bx := float64(w) - barW - 20*su
	by := float64(h) - 28*su
	c.Rect(bx, by, barW, 10*su, Palette.StatBarEmpty, 0.9)
	fill := s.Car.SpeedFraction()
	fillCol := Palette.StatBarFull
	if fill > 0.92 {
		fillCol = Palette.HudWarn
	}
	c.Rect(bx, by, barW*fill, 10*su, fillCol, 1)

	if s.Car.Speed < 0 {
		DrawStringCentered(c, "REVERSE", float64(w)/2, float64(h)*0.62, 3*su, Palette.HudWarn, 0.9)
	}
}

func (hd *HUD) drawPause(c Canvas, w, h int, su float64) {
	c.Rect(0, 0, float64(w), float64(h), RGB{}, 0.55)
	cx := float64(w) / 2
	DrawStringCentered(c, "PAUSED", cx, float64(h)*0.38, 8*su, Palette.HudText, 1)
	DrawStringCentered(c, "ESC RESUME    Q QUIT TO TITLE", cx, float64(h)*0.56, 2.4*su, Palette.HudDim, 1)
}

func (hd *HUD) drawFinished(c Canvas, s *Session, w, h int, su float64) {
	cx := float64(w) / 2
	pw := 460 * su
	ph := 420 * su
	px := cx - pw/2
	py := float64(h)*0.5 - ph/2
	c.Rect(px, py, pw, ph, Palette.HudPanel, 0.78)

	DrawStringCentered(c, "RACE COMPLETE", cx, py+28*su, 5*su, Palette.HudAccent, 1)
	DrawStringCentered(c, "TIME "+formatTime(s.RaceTime), cx, py+90*su, 3*su, Palette.HudText, 1)
	DrawStringCentered(c, "BEST LAP "+formatTime(s.BestLap), cx, py+124*su, 3*su, Palette.HudText, 1)

	y := py + 170*su
	for i, lt := range s.LapTimes {
		DrawStringCentered(c, fmt.Sprintf("LAP %d   %s", i+1, formatTime(lt)), cx, y, 2*su, Palette.HudDim, 1)
		y += 20 * su
	}

	y += 10 * su
	if s.LapRecordSet && hd.blink(1.2) {
		DrawStringCentered(c, "NEW LAP RECORD!", cx, y, 3*su, Palette.FinishLight, 1)
	}
	y += 32 * su
	if s.RaceRecordSet && hd.blink(1.2) {
		DrawStringCentered(c, "NEW RACE RECORD!", cx, y, 3*su, Palette.FinishLight, 1)
	}

	DrawStringCentered(c, "ENTER RACE AGAIN    ESC TITLE", cx, py+ph-36*su, 2*su, Palette.HudDim, 1)
}

// formatTime renders seconds as M:SS.cc, or a dash placeholder when unset.
func formatTime(t float64) string {
	if t <= 0 {
		return "-:--.--"
	}
	m := int(t) / 60
	return fmt.Sprintf("%d:%05.2f", m, t-float64(m*60))
}
