package game

import "math"

type CrashKind uint8

const (
	CrashNone CrashKind = iota
	CrashSpin
	CrashExplode
)

// Dynamics are the resolved physics numbers a vehicle races with, after
// any surface blending has been applied.
type Dynamics struct {
	TopSpeed float64
	Accel    float64
	Grip     float64
}

// Vehicle carries the full driving state for one car on one track.
// All fields are plain values; updates are driven by boolean intents.
type Vehicle struct {
	Spec VehicleSpec
	Dyn  Dynamics

	Position float64
	Speed    float64
	Lap      int

	LateralOffset float64
	LateralVel    float64
	SteerInput    float64

	Crash           CrashKind
	CrashTimer      float64
	SpinAngle       float64
	InvincibleTimer float64

	VisualTilt float64
	Bounce     float64
	BounceVel  float64

	// Bumpers turns the road edges into bouncy walls instead of letting
	// the car run onto the shoulder.
	Bumpers bool

	// WallScrape is set for the frame a bumper reflect happened, with the
	// sign of the wall that was hit.
	WallScrape float64

	rng *Rand
}

func NewVehicle(spec VehicleSpec, trk *Track, seed uint64) *Vehicle {
	return &Vehicle{
		Spec: spec,
		Dyn:  spec.DynamicsFor(trk),
		rng:  NewRand(seed ^ 0x5EED),
	}
}

func (v *Vehicle) SpeedFraction() float64 {
	if v.Dyn.TopSpeed <= 0 {
		return 0
	}
	return clampF(absF(v.Speed)/v.Dyn.TopSpeed, 0, 1)
}

func (v *Vehicle) OffRoad() bool {
	return absF(v.LateralOffset) > OffRoadBoundary
}

// steerResponse maps speed fraction to steering effectiveness: zero when
// parked, strongest at a moderate fraction, mildly reduced flat out.
func steerResponse(f float64) float64 {
	return math.Sin(math.Pi * SteerCurveShape * f)
}

// Update advances the vehicle by one frame and reports whether the
// start/finish line was crossed forward.
func (v *Vehicle) Update(in Intent, trk *Track, dt float64) (lapCompleted bool) {
	if dt <= 0 {
		return false
	}
	if dt > MaxFrameStep {
		dt = MaxFrameStep
	}

	v.WallScrape = 0
	if v.InvincibleTimer > 0 {
		v.InvincibleTimer -= dt
		if v.InvincibleTimer < 0 {
			v.InvincibleTimer = 0
		}
	}

	if v.Crash != CrashNone {
		return v.updateCrashed(trk, dt)
	}

	seg := trk.AtPosition(v.Position)
	top := v.Dyn.TopSpeed

	// Throttle, brake, coast. Braking through zero becomes reverse.
	switch {
	case in.Accelerate:
		v.Speed += v.Dyn.Accel * dt
	case in.Brake:
		v.Speed -= BrakeRate * dt
	default:
		v.Speed = approach(v.Speed, 0, CoastRate*dt)
	}
	v.Speed = clampF(v.Speed, -ReverseSpeedFrac*top, top)

	// Steering input smoothing, asymmetric so letting go straightens
	// faster than turning in.
	target := 0.0
	if in.Left {
		target -= 1
	}
	if in.Right {
		target += 1
	}
	rate := SteerEngageRate
	if target == 0 || target*v.SteerInput < 0 {
		rate = SteerReleaseRate
	}
	v.SteerInput = approach(v.SteerInput, target, rate*dt)

	// Lateral forces: driver steering against the corner's pull.
	sf := v.SpeedFraction()
	v.LateralVel += v.SteerInput * steerResponse(sf) * SteerForce * dt
	v.LateralVel -= seg.Curve * CentrifugalForce * sf * sf * dt

	// Tire grip damps the drift; hard drift scrubs forward speed.
	damp := v.Dyn.Grip * dt
	if damp > 1 {
		damp = 1
	}
	v.LateralVel -= v.LateralVel * damp
	if ex := absF(v.LateralVel) - ScrubThreshold; ex > 0 {
		v.Speed -= v.Speed * ex * ScrubDrag * dt
	}

	// Lateral position follows the direction of travel; a near-parked
	// car does not creep sideways.
	if absF(v.Speed) > CrawlSpeedFrac*top {
		dir := 1.0
		if v.Speed < 0 {
			dir = -1
		}
		v.LateralOffset += v.LateralVel * dir * dt
	}

	if absF(v.LateralOffset) > OffRoadBoundary {
		if v.Bumpers {
			if v.LateralOffset > 0 {
				v.LateralOffset = OffRoadBoundary
				v.WallScrape = 1
			} else {
				v.LateralOffset = -OffRoadBoundary
				v.WallScrape = -1
			}
			v.LateralVel = -v.LateralVel * WallRestitution
			v.Speed *= WallSpeedKeep
		} else {
			v.Speed -= v.Speed * OffRoadDrag * dt
		}
	}

	// Visual spring: body tilt into the turn plus suspension jitter.
	tiltTarget := v.SteerInput*TiltSteerGain + clampF(v.LateralVel, -2, 2)*TiltDriftGain
	v.VisualTilt = approach(v.VisualTilt, tiltTarget, TiltRate*dt)

	amp := BounceRoad
	if v.OffRoad() {
		amp = BounceDirt
	}
	v.BounceVel += v.rng.RangeF(-amp, amp) * sf * dt
	v.BounceVel -= (v.Bounce*BounceSpring + v.BounceVel*BounceDamp) * dt
	v.Bounce += v.BounceVel * dt

	return v.advance(trk, dt)
}

// updateCrashed ticks the crash timer while the car slides on. Respawn
// floors the speed, pulls the car back onto the road, and grants a short
// invincibility window.
func (v *Vehicle) updateCrashed(trk *Track, dt float64) bool {
	v.CrashTimer -= dt
	v.SpinAngle += SpinRate * dt
	v.LateralOffset -= v.LateralOffset * CrashCenterPull * dt
	wrapped := v.advance(trk, dt)

	if v.CrashTimer <= 0 {
		v.Crash = CrashNone
		v.CrashTimer = 0
		v.SpinAngle = 0
		if min := RestartSpeedFrac * v.Dyn.TopSpeed; v.Speed < min {
			v.Speed = min
		}
		v.LateralOffset = clampF(v.LateralOffset, -RespawnLateralMax, RespawnLateralMax)
		v.InvincibleTimer = InvincibleDuration
	}
	return wrapped
}

// advance integrates position and wraps it onto the circular track.
// Only a forward crossing counts as a lap; reversing over the line just
// wraps the position back.
func (v *Vehicle) advance(trk *Track, dt float64) bool {
	v.Position += v.Speed * dt
	length := trk.Length()
	if v.Position >= length {
		v.Position -= length
		v.Lap++
		return true
	}
	if v.Position < 0 {
		v.Position += length
	}
	return false
}

// ApplyCrash starts a crash. Repeat crashes while already crashed or
// invincible are ignored.
func (v *Vehicle) ApplyCrash(kind CrashKind) {
	if kind == CrashNone || v.Crash != CrashNone || v.InvincibleTimer > 0 {
		return
	}
	v.Crash = kind
	v.LateralVel = 0
	v.SteerInput = 0
	switch kind {
	case CrashSpin:
		v.CrashTimer = SpinDuration
		v.Speed *= SpinSpeedKeep
	case CrashExplode:
		v.CrashTimer = ExplodeDuration
		v.Speed = 0
	}
}
