package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeKeeper is an in-memory RecordKeeper for session tests.
type fakeKeeper struct {
	lap, race float64
	submits   int
	lastTrack string
	lastVeh   string
}

func (f *fakeKeeper) Best(trackID string) (float64, float64, error) {
	return f.lap, f.race, nil
}

func (f *fakeKeeper) Submit(trackID, vehicleID string, bestLap, raceTime float64) (bool, bool, error) {
	f.submits++
	f.lastTrack = trackID
	f.lastVeh = vehicleID
	lapRec := f.lap == 0 || bestLap < f.lap
	raceRec := f.race == 0 || raceTime < f.race
	if lapRec {
		f.lap = bestLap
	}
	if raceRec {
		f.race = raceTime
	}
	return lapRec, raceRec, nil
}

func collectEvents(bus *EventBus, types ...EventType) *[]Event {
	got := &[]Event{}
	for _, ty := range types {
		bus.Subscribe(ty, func(e Event) { *got = append(*got, e) })
	}
	return got
}

func startTestRace(t *testing.T, keeper RecordKeeper, bus *EventBus) *Session {
	t.Helper()
	s := NewSession(77, bus, keeper)
	require.NoError(t, s.StartRace(nil, nil, nil))
	return s
}

func TestStartRaceArmsCountdown(t *testing.T) {
	keeper := &fakeKeeper{lap: 30, race: 95}
	s := startTestRace(t, keeper, NewEventBus())

	assert.Equal(t, StateCountdown, s.State)
	assert.Equal(t, float64(CountdownSeconds), s.Countdown)
	require.NotNil(t, s.Track)
	require.NotNil(t, s.Car)
	assert.Equal(t, 30.0, s.TargetLap, "stored records load at race start")
	assert.Equal(t, 95.0, s.TargetRace)
}

func TestCountdownTicksDownToRacing(t *testing.T) {
	bus := NewEventBus()
	ticks := collectEvents(bus, EventCountdownTick)
	goes := collectEvents(bus, EventCountdownGo)
	s := startTestRace(t, nil, bus)

	for i := 0; i < 200 && s.State == StateCountdown; i++ {
		s.Update(Intent{}, 0.05)
	}
	assert.Equal(t, StateRacing, s.State)
	assert.Len(t, *goes, 1)
	// One beep per second: 3, 2, 1.
	require.Len(t, *ticks, CountdownSeconds)
	assert.Equal(t, 3, (*ticks)[0].Data)
	assert.Equal(t, 1, (*ticks)[2].Data)
}

func TestCarIsFrozenUntilGreen(t *testing.T) {
	s := startTestRace(t, nil, NewEventBus())
	s.Update(Intent{Accelerate: true}, 0.05)
	assert.Zero(t, s.Car.Speed, "countdown updates never reach the car")
	assert.Zero(t, s.RaceTime)
}

func TestLapCompletionBanksTimes(t *testing.T) {
	bus := NewEventBus()
	laps := collectEvents(bus, EventLapCompleted)
	s := startTestRace(t, nil, bus)
	s.State = StateRacing

	s.Car.Speed = s.Car.Dyn.TopSpeed
	s.Car.Position = s.Track.Length() - 1
	s.Update(Intent{Accelerate: true}, 0.05)

	require.Len(t, *laps, 1)
	assert.Equal(t, 1, (*laps)[0].Lap)
	assert.Positive(t, (*laps)[0].Time)
	assert.Len(t, s.LapTimes, 1)
	assert.Equal(t, s.LapTimes[0], s.BestLap)
	assert.Zero(t, s.LapTime, "lap clock restarts")
	assert.Positive(t, s.RaceTime, "race clock keeps running")
	assert.Equal(t, StateRacing, s.State)
}

func TestFinalLapFinishesAndSubmits(t *testing.T) {
	keeper := &fakeKeeper{}
	bus := NewEventBus()
	fins := collectEvents(bus, EventRaceFinished)
	recs := collectEvents(bus, EventRecordSet)
	s := startTestRace(t, keeper, bus)
	s.State = StateRacing
	s.RaceTime = 100
	s.LapTime = 31
	s.BestLap = 33

	s.Car.Lap = s.Track.Laps - 1
	s.Car.Speed = s.Car.Dyn.TopSpeed
	s.Car.Position = s.Track.Length() - 1
	s.Update(Intent{Accelerate: true}, 0.05)

	assert.Equal(t, StateFinished, s.State)
	require.Len(t, *fins, 1)
	assert.Equal(t, 1, keeper.submits)
	assert.Equal(t, s.Track.ID, keeper.lastTrack)
	assert.Equal(t, s.Car.Spec.ID, keeper.lastVeh)
	assert.True(t, s.LapRecordSet, "first time out is always a record")
	assert.True(t, s.RaceRecordSet)
	assert.Len(t, *recs, 1)
}

func TestSlowerRunSetsNoRecord(t *testing.T) {
	keeper := &fakeKeeper{lap: 10, race: 50}
	s := startTestRace(t, keeper, NewEventBus())
	s.State = StateRacing
	s.RaceTime = 200
	s.LapTime = 60
	s.BestLap = 60

	s.Car.Lap = s.Track.Laps - 1
	s.Car.Speed = s.Car.Dyn.TopSpeed
	s.Car.Position = s.Track.Length() - 1
	s.Update(Intent{Accelerate: true}, 0.05)

	assert.Equal(t, StateFinished, s.State)
	assert.False(t, s.LapRecordSet)
	assert.False(t, s.RaceRecordSet)
}

func TestRaceRunsWithoutAKeeper(t *testing.T) {
	s := startTestRace(t, nil, NewEventBus())
	s.State = StateRacing
	s.Car.Lap = s.Track.Laps - 1
	s.Car.Speed = s.Car.Dyn.TopSpeed
	s.Car.Position = s.Track.Length() - 1

	s.Update(Intent{Accelerate: true}, 0.05)
	assert.Equal(t, StateFinished, s.State)
	assert.False(t, s.LapRecordSet)
}

func TestPauseOnlyTogglesWhileRacing(t *testing.T) {
	s := NewSession(1, nil, nil)
	s.TogglePause()
	assert.Equal(t, StateTitle, s.State)

	s.State = StateRacing
	s.TogglePause()
	assert.Equal(t, StatePaused, s.State)
	s.TogglePause()
	assert.Equal(t, StateRacing, s.State)
}

func TestMenuSelectionWraps(t *testing.T) {
	s := NewSession(1, nil, nil)
	s.CycleVehicle(-1)
	assert.Equal(t, len(VehicleCatalog)-1, s.VehicleIdx)
	s.CycleVehicle(1)
	assert.Equal(t, 0, s.VehicleIdx)

	s.CycleTrack(-1)
	assert.Equal(t, len(TrackCatalog)-1, s.TrackIdx)
	require.NotNil(t, s.PreviewTrack, "cycling refreshes the preview build")
	for range TrackCatalog {
		s.CycleTrack(1)
	}
	assert.Equal(t, len(TrackCatalog)-1, s.TrackIdx)
}

func TestRestartResetsRaceState(t *testing.T) {
	keeper := &fakeKeeper{}
	s := startTestRace(t, keeper, NewEventBus())
	s.State = StateRacing
	s.RaceTime = 123
	s.LapTimes = append(s.LapTimes, 40, 41)
	s.BestLap = 40
	s.LapRecordSet = true
	firstCar := s.Car

	require.NoError(t, s.StartRace(nil, nil, nil))
	assert.Equal(t, StateCountdown, s.State)
	assert.Zero(t, s.RaceTime)
	assert.Empty(t, s.LapTimes)
	assert.Zero(t, s.BestLap)
	assert.False(t, s.LapRecordSet)
	assert.NotSame(t, firstCar, s.Car, "every race seats a fresh vehicle")
}

func TestHandleCollisionCrashesAndShakes(t *testing.T) {
	bus := NewEventBus()
	crashes := collectEvents(bus, EventCrash)
	s := startTestRace(t, nil, bus)
	s.State = StateRacing
	s.Car.Speed = s.Car.Dyn.TopSpeed

	ps := NewParticleSystem(500, 1280, 720, 3)
	cam := &Camera{}
	s.HandleCollision(&Collision{Kind: CollideBarrier, Severity: CrashExplode}, ps, cam, 1280, 720)

	assert.Equal(t, CrashExplode, s.Car.Crash)
	assert.NotEmpty(t, ps.P, "a wreck throws particles")
	assert.Positive(t, cam.ShakeIntensity)
	require.Len(t, *crashes, 1)
	assert.Equal(t, int(CrashExplode), (*crashes)[0].Data)

	// nil outcome is a no-op.
	s.HandleCollision(nil, ps, cam, 1280, 720)
}

func TestShowcaseCarNeverWrecks(t *testing.T) {
	s := NewSession(5, nil, nil)
	for i := 0; i < 50; i++ {
		s.UpdateShowcase(nil, 0.05)
	}
	require.NotNil(t, s.Car)
	assert.Positive(t, s.Car.InvincibleTimer)
	assert.Positive(t, s.Car.Speed, "the backdrop car drives itself")
}

func TestFinishedStateRainsConfetti(t *testing.T) {
	s := startTestRace(t, nil, NewEventBus())
	s.State = StateFinished
	ps := NewParticleSystem(500, 1280, 720, 3)

	s.EmitEffects(ps, nil, 0.5, 1280, 720)
	assert.NotEmpty(t, ps.P)
}

func TestHUDDrawsEveryState(t *testing.T) {
	s := startTestRace(t, &fakeKeeper{lap: 30, race: 95}, NewEventBus())
	hud := &HUD{}
	hud.Update(0.5)

	for _, st := range []SessionState{
		StateTitle, StateVehicleSelect, StateTrackSelect,
		StateCountdown, StateRacing, StatePaused, StateFinished,
	} {
		s.State = st
		if st == StateTrackSelect {
			s.ToTrackSelect()
		}
		rc := newRecordCanvas(t)
		hud.Draw(rc, s, 1280, 720)
		assert.Positive(t, rc.total(), "state %d draws something", st)
	}
}
