package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testVehicle(t *testing.T, trk *Track) *Vehicle {
	t.Helper()
	return NewVehicle(VehicleCatalog[0], trk, 42)
}

func TestSpeedNeverExceedsTopSpeed(t *testing.T) {
	trk := buildTestTrack(t, []Section{{Hold: 80}})
	v := testVehicle(t, trk)

	for i := 0; i < 2000; i++ {
		v.Update(Intent{Accelerate: true}, trk, 0.016)
		if v.Speed > v.Dyn.TopSpeed {
			t.Fatalf("speed %v above top speed %v at frame %d", v.Speed, v.Dyn.TopSpeed, i)
		}
	}
	assert.InDelta(t, v.Dyn.TopSpeed, v.Speed, 1e-9, "should be pinned at top speed")
}

func TestReverseCapsAtThirtyPercent(t *testing.T) {
	trk := buildTestTrack(t, []Section{{Hold: 80}})
	v := testVehicle(t, trk)

	floor := -ReverseSpeedFrac * v.Dyn.TopSpeed
	for i := 0; i < 2000; i++ {
		v.Update(Intent{Brake: true}, trk, 0.016)
		if v.Speed < floor {
			t.Fatalf("speed %v below reverse floor %v at frame %d", v.Speed, floor, i)
		}
	}
	assert.Negative(t, v.Speed, "holding brake from standstill should reverse")
	assert.InDelta(t, floor, v.Speed, 1e-9)
}

func TestCoastBleedsTowardZero(t *testing.T) {
	trk := buildTestTrack(t, []Section{{Hold: 80}})
	v := testVehicle(t, trk)
	v.Speed = 4000

	v.Update(Intent{}, trk, 0.1)
	assert.InDelta(t, 4000-CoastRate*0.1, v.Speed, 1e-9)

	v.Speed = 10
	v.Update(Intent{}, trk, 0.1)
	assert.Zero(t, v.Speed, "coast never crosses zero")
}

func TestForwardWrapSignalsLap(t *testing.T) {
	trk := buildTestTrack(t, []Section{{Hold: 10}}) // 2000 world units
	v := testVehicle(t, trk)
	v.Position = 1990
	v.Speed = 200

	wrapped := v.advance(trk, 0.1)
	require.True(t, wrapped)
	assert.InDelta(t, 10.0, v.Position, 1e-9)
	assert.Equal(t, 1, v.Lap)
}

func TestBackwardWrapIsSilent(t *testing.T) {
	trk := buildTestTrack(t, []Section{{Hold: 10}})
	v := testVehicle(t, trk)
	v.Position = 5
	v.Speed = -200

	wrapped := v.advance(trk, 0.1)
	assert.False(t, wrapped, "reversing over the line is not a lap")
	assert.InDelta(t, 1985.0, v.Position, 1e-9)
	assert.Zero(t, v.Lap)
}

func TestUpdateSignalsLapThroughTheFullStep(t *testing.T) {
	trk := buildTestTrack(t, []Section{{Hold: 10}})
	v := testVehicle(t, trk)
	v.Speed = v.Dyn.TopSpeed
	v.Position = trk.Length() - 1

	wrapped := v.Update(Intent{Accelerate: true}, trk, 0.05)
	assert.True(t, wrapped)
	assert.GreaterOrEqual(t, v.Position, 0.0)
	assert.Less(t, v.Position, trk.Length())
}

func TestDtIsClampedAndNonPositiveDtIgnored(t *testing.T) {
	trk := buildTestTrack(t, []Section{{Hold: 10}})
	v := testVehicle(t, trk)
	v.Speed = 1000

	v.Update(Intent{}, trk, 0)
	assert.Equal(t, 0.0, v.Position, "zero dt is a no-op")

	v.Update(Intent{}, trk, 5.0) // clamped to MaxFrameStep
	assert.LessOrEqual(t, v.Position, 1000*MaxFrameStep+1e-9)
}

func TestSteerResponseShape(t *testing.T) {
	assert.Zero(t, steerResponse(0), "no steering authority when parked")
	for _, f := range []float64{0.05, 0.2, 0.5, 0.7, 0.9, 1.0} {
		assert.Positive(t, steerResponse(f), "response at %v", f)
	}
	// Local maximum sits at a moderate fraction, not flat out.
	assert.Greater(t, steerResponse(0.7), steerResponse(1.0))
	assert.Greater(t, steerResponse(0.7), steerResponse(0.15))
}

func TestSteeringReleaseIsFasterThanEngage(t *testing.T) {
	if SteerReleaseRate < SteerEngageRate {
		t.Fatalf("release rate %v below engage rate %v", SteerReleaseRate, SteerEngageRate)
	}

	trk := buildTestTrack(t, []Section{{Hold: 80}})
	v := testVehicle(t, trk)
	v.Speed = v.Dyn.TopSpeed * 0.5

	v.Update(Intent{Accelerate: true, Right: true}, trk, 0.05)
	engaged := v.SteerInput
	require.Positive(t, engaged)
	assert.InDelta(t, SteerEngageRate*0.05, engaged, 1e-9)

	v.SteerInput = 1
	v.Update(Intent{Accelerate: true}, trk, 0.05)
	released := 1 - v.SteerInput
	assert.GreaterOrEqual(t, released, engaged, "letting go must straighten at least as fast")
}

func TestCentrifugalForcePushesOutOfTheCurve(t *testing.T) {
	// Constant right-hander: positive curve shoves the car left (negative).
	trk := buildTestTrack(t, []Section{{Hold: 80, Curve: 4}})
	v := testVehicle(t, trk)
	v.Speed = v.Dyn.TopSpeed

	v.Update(Intent{Accelerate: true}, trk, 0.05)
	assert.Negative(t, v.LateralVel)
}

func TestCorneringScrubBleedsSpeed(t *testing.T) {
	trk := buildTestTrack(t, []Section{{Hold: 80}})
	v := testVehicle(t, trk)
	v.Speed = v.Dyn.TopSpeed
	v.LateralVel = ScrubThreshold * 3

	before := v.Speed
	v.Update(Intent{Accelerate: true}, trk, 0.05)
	assert.Less(t, v.Speed, before, "hard drift must scrub forward speed")
}

func TestOffRoadDragSlowsTheCar(t *testing.T) {
	trk := buildTestTrack(t, []Section{{Hold: 80}})
	v := testVehicle(t, trk)
	v.Speed = v.Dyn.TopSpeed
	v.LateralOffset = 1.5

	onRoad := testVehicle(t, trk)
	onRoad.Speed = onRoad.Dyn.TopSpeed

	v.Update(Intent{}, trk, 0.05)
	onRoad.Update(Intent{}, trk, 0.05)
	assert.Less(t, v.Speed, onRoad.Speed)
	assert.True(t, v.OffRoad())
}

func TestBumpersReflectAtTheRoadEdge(t *testing.T) {
	trk := buildTestTrack(t, []Section{{Hold: 80}})
	v := testVehicle(t, trk)
	v.Bumpers = true
	v.Speed = v.Dyn.TopSpeed * 0.6
	v.LateralOffset = 0.98
	v.LateralVel = 4

	v.Update(Intent{}, trk, 0.05)
	assert.Equal(t, OffRoadBoundary, v.LateralOffset, "clamped to the wall")
	assert.Equal(t, 1.0, v.WallScrape)
	assert.Negative(t, v.LateralVel, "lateral velocity reflects off the wall")
	assert.Less(t, v.Speed, v.Dyn.TopSpeed*0.6, "the hit bleeds speed")
}

func TestCrashSpinKeepsPartOfTheSpeed(t *testing.T) {
	trk := buildTestTrack(t, []Section{{Hold: 80}})
	v := testVehicle(t, trk)
	v.Speed = 1000

	v.ApplyCrash(CrashSpin)
	assert.Equal(t, CrashSpin, v.Crash)
	assert.Equal(t, SpinSpeedKeep*1000, v.Speed)
	assert.Equal(t, SpinDuration, v.CrashTimer)
}

func TestCrashExplodeLifecycle(t *testing.T) {
	trk := buildTestTrack(t, []Section{{Hold: 80}})
	v := testVehicle(t, trk)
	v.Speed = 5000
	v.LateralOffset = 2.0

	v.ApplyCrash(CrashExplode)
	require.Equal(t, CrashExplode, v.Crash)
	assert.Zero(t, v.Speed)

	elapsed := 0.0
	for i := 0; v.Crash != CrashNone; i++ {
		if i > 1000 {
			t.Fatal("crash never cleared")
		}
		v.Update(Intent{Accelerate: true}, trk, 0.05)
		elapsed += 0.05
	}

	assert.GreaterOrEqual(t, elapsed, ExplodeDuration)
	assert.GreaterOrEqual(t, v.Speed, RestartSpeedFrac*v.Dyn.TopSpeed, "respawn floors the speed")
	assert.LessOrEqual(t, absF(v.LateralOffset), RespawnLateralMax, "respawn pulls the car inside the road")
	assert.Positive(t, v.InvincibleTimer)
}

func TestCrashWhileCrashedOrInvincibleIsIgnored(t *testing.T) {
	trk := buildTestTrack(t, []Section{{Hold: 80}})
	v := testVehicle(t, trk)
	v.Speed = 1000

	v.ApplyCrash(CrashSpin)
	timer := v.CrashTimer
	v.ApplyCrash(CrashExplode)
	assert.Equal(t, CrashSpin, v.Crash, "a second crash while down changes nothing")
	assert.Equal(t, timer, v.CrashTimer)

	v.Crash = CrashNone
	v.InvincibleTimer = 1
	v.ApplyCrash(CrashExplode)
	assert.Equal(t, CrashNone, v.Crash, "invincibility shrugs the hit off")
}

func TestOffroadRatingSoftensDirtPenalty(t *testing.T) {
	dirt, err := BuildTrack(TrackDef{
		ID: "dirt", Theme: &ThemeDesertDusk, Surface: SurfaceDirt,
		Laps: 1, Sections: []Section{{Hold: 10}},
	}, 1)
	require.NoError(t, err)

	var buggy, muscle VehicleSpec
	for _, s := range VehicleCatalog {
		switch s.Kind {
		case KindBuggy:
			buggy = s
		case KindMuscle:
			muscle = s
		}
	}
	require.Greater(t, buggy.Offroad, muscle.Offroad)

	buggyKeep := buggy.DynamicsFor(dirt).TopSpeed / buggy.DynamicsFor(nil).TopSpeed
	muscleKeep := muscle.DynamicsFor(dirt).TopSpeed / muscle.DynamicsFor(nil).TopSpeed
	assert.Greater(t, buggyKeep, muscleKeep, "higher off-road rating keeps more pace on dirt")

	// Paved surfaces apply no blend at all.
	paved := buildTestTrack(t, []Section{{Hold: 10}})
	assert.Equal(t, buggy.DynamicsFor(nil), buggy.DynamicsFor(paved))
}

func TestNearParkedCarDoesNotCreepSideways(t *testing.T) {
	trk := buildTestTrack(t, []Section{{Hold: 80}})
	v := testVehicle(t, trk)
	v.LateralVel = 2

	v.Update(Intent{}, trk, 0.05)
	assert.Zero(t, v.LateralOffset, "no lateral drift below the crawl threshold")
}
