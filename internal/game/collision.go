package game

type CollisionKind uint8

const (
	CollideBarrier CollisionKind = iota
	CollideHazard
	CollideScenery
)

type Collision struct {
	Kind     CollisionKind
	Severity CrashKind
	Hazard   *Hazard
	Obstacle *Obstacle
}

// CheckCollision inspects the vehicle's segment and lateral position and
// returns at most one outcome per frame, in fixed priority: barrier,
// hazard, scenery. Crashed or invincible vehicles pass through clean.
// The check itself never mutates anything.
func CheckCollision(v *Vehicle, trk *Track) *Collision {
	if v.Crash != CrashNone || v.InvincibleTimer > 0 {
		return nil
	}
	sf := v.SpeedFraction()
	off := v.LateralOffset

	if absF(off) > BarrierBoundary {
		sev := CrashSpin
		if sf >= BarrierExplodeFrac {
			sev = CrashExplode
		}
		return &Collision{Kind: CollideBarrier, Severity: sev}
	}

	seg := trk.AtPosition(v.Position)

	if h := seg.Hazard; h != nil && absF(off-h.Offset) < h.Width+VehicleHalfWidth {
		switch {
		case sf < HazardMinFrac:
			// Slow enough to nudge through.
		case sf >= HazardExplodeFrac:
			return &Collision{Kind: CollideHazard, Severity: CrashExplode, Hazard: h}
		default:
			return &Collision{Kind: CollideHazard, Severity: CrashSpin, Hazard: h}
		}
	}

	for _, ob := range [2]*Obstacle{seg.Left, seg.Right} {
		if ob == nil || absF(off-ob.Offset) >= ob.Width+VehicleHalfWidth {
			continue
		}
		switch {
		case sf < SceneryMinFrac:
			// Brushing past at walking pace is free.
		case sf >= SceneryExplodeFrac:
			return &Collision{Kind: CollideScenery, Severity: CrashExplode, Obstacle: ob}
		default:
			return &Collision{Kind: CollideScenery, Severity: CrashSpin, Obstacle: ob}
		}
	}
	return nil
}
