package game

import "math"

// SegmentView is one projected road row, ready for the painter.
// Rows are emitted near to far; Y grows downward.
type SegmentView struct {
	Seg       *Segment
	X, Y      float64 // road centre on screen
	HalfWidth float64 // projected road half-width in pixels
	Scale     float64
	Fog       float64 // 0 near the camera, 1 at the horizon
}

// ProjectWindow projects up to DrawDistance segments ahead of the camera
// into screen space, reusing out's backing array. Both running
// accumulators advance only after a segment's own position is computed,
// so the nearest visible segment always projects with zero accumulated
// curve and elevation. Segments at non-positive depth are walked but not
// emitted.
func ProjectWindow(trk *Track, position, lateralOffset float64, w, h int, out []SegmentView) []SegmentView {
	out = out[:0]

	baseIdx := int(math.Floor(position / SegmentLength))
	progress := position/SegmentLength - float64(baseIdx)

	halfW := float64(w) * 0.5
	halfH := float64(h) * 0.5

	curveAcc := 0.0
	elevAcc := 0.0

	for i := 0; i < DrawDistance; i++ {
		seg := trk.AtIndex(baseIdx + i)
		depth := (float64(i) - progress) * SegmentLength
		if depth > 0 {
			scale := CameraDepth / depth
			fog := float64(i) / DrawDistance
			if fog > 1 {
				fog = 1
			}
			out = append(out, SegmentView{
				Seg:       seg,
				X:         halfW + (curveAcc-lateralOffset*RoadHalfWidth)*scale*halfW,
				Y:         halfH + (CameraHeight-elevAcc)*scale*halfH,
				HalfWidth: RoadHalfWidth * scale * halfW,
				Scale:     scale,
				Fog:       math.Pow(fog, FogDensity),
			})
		}
		curveAcc += seg.Curve * SegmentLength * CurveFactor
		elevAcc += seg.Elev * ElevFactor
	}
	return out
}
