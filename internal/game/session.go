package game

import "math"

type SessionState int

const (
	StateTitle SessionState = iota
	StateVehicleSelect
	StateTrackSelect
	StateCountdown
	StateRacing
	StatePaused
	StateFinished
)

// RecordKeeper persists best times per track. A session runs fine without
// one; times then just live for the current run.
type RecordKeeper interface {
	Best(trackID string) (bestLap, bestRace float64, err error)
	Submit(trackID, vehicleID string, bestLap, raceTime float64) (lapRecord, raceRecord bool, err error)
}

// Session drives the menu and race flow and owns all timing.
type Session struct {
	State SessionState

	VehicleIdx int
	TrackIdx   int

	Track *Track
	Car   *Vehicle

	Bus     *EventBus
	Records RecordKeeper

	Countdown float64
	lastTick  int

	RaceTime float64
	LapTime  float64
	LapTimes []float64
	BestLap  float64 // best lap this race, 0 until one is banked

	TargetLap  float64 // stored records before this race, 0 = none yet
	TargetRace float64

	LapRecordSet  bool
	RaceRecordSet bool
	RecordErr     error

	// Track-select preview: a built copy of the highlighted track plus
	// its stored records, refreshed whenever the selection moves.
	PreviewTrack *Track
	PreviewLap   float64
	PreviewRace  float64

	// Bumpers is carried into every vehicle the session builds.
	Bumpers bool

	seed  uint64
	races uint64

	showTrack int
	showVeh   int

	dustAcc     float64
	smokeAcc    float64
	fireAcc     float64
	confettiAcc float64
}

func NewSession(seed uint64, bus *EventBus, records RecordKeeper) *Session {
	if seed == 0 {
		seed = 1
	}
	return &Session{
		State:     StateTitle,
		Bus:       bus,
		Records:   records,
		seed:      seed,
		showTrack: -1,
		showVeh:   -1,
	}
}

func (s *Session) SelectedVehicle() VehicleSpec { return VehicleCatalog[s.VehicleIdx] }

func (s *Session) SelectedTrack() TrackDef { return TrackCatalog[s.TrackIdx] }

func (s *Session) CycleVehicle(dir int) {
	s.VehicleIdx = floorMod(s.VehicleIdx+dir, len(VehicleCatalog))
}

func (s *Session) CycleTrack(dir int) {
	s.TrackIdx = floorMod(s.TrackIdx+dir, len(TrackCatalog))
	s.loadPreview()
}

func (s *Session) ToVehicleSelect() { s.State = StateVehicleSelect }

func (s *Session) ToTrackSelect() {
	s.State = StateTrackSelect
	s.loadPreview()
}

func (s *Session) loadPreview() {
	s.PreviewTrack, _ = BuildTrack(s.SelectedTrack(), s.seed)
	s.PreviewLap = 0
	s.PreviewRace = 0
	if s.Records != nil {
		if lap, race, err := s.Records.Best(s.SelectedTrack().ID); err == nil {
			s.PreviewLap = lap
			s.PreviewRace = race
		}
	}
}

// UpdateShowcase drives the menu backdrop: while the player browses, the
// selected car cruises the selected track on its own. Rebuilds whenever
// the highlighted choice moves.
func (s *Session) UpdateShowcase(ws *WeatherSystem, dt float64) {
	if s.Track == nil || s.Car == nil || s.showTrack != s.TrackIdx || s.showVeh != s.VehicleIdx {
		trk, err := BuildTrack(s.SelectedTrack(), s.seed)
		if err != nil {
			return
		}
		s.Track = trk
		s.Car = NewVehicle(s.SelectedVehicle(), trk, s.seed)
		s.showTrack = s.TrackIdx
		s.showVeh = s.VehicleIdx
		if ws != nil {
			ws.Configure(trk.Theme.Weather, s.seed^stringSeed(trk.ID))
		}
	}

	in := Intent{Accelerate: s.Car.SpeedFraction() < 0.55}
	if s.Car.LateralOffset > 0.25 {
		in.Left = true
	} else if s.Car.LateralOffset < -0.25 {
		in.Right = true
	}
	s.Car.Update(in, s.Track, dt)
	// The backdrop car never wrecks.
	s.Car.InvincibleTimer = 1
}

// StartRace builds the selected track, seats the selected vehicle, and
// arms the countdown. Particles, weather, and camera are reset to match.
func (s *Session) StartRace(ps *ParticleSystem, ws *WeatherSystem, cam *Camera) error {
	def := s.SelectedTrack()
	trk, err := BuildTrack(def, s.seed)
	if err != nil {
		return err
	}
	s.races++
	s.Track = trk

	car := NewVehicle(s.SelectedVehicle(), trk, s.seed^splitmix64(s.races))
	car.Bumpers = s.Bumpers
	s.Car = car

	s.RaceTime = 0
	s.LapTime = 0
	s.LapTimes = s.LapTimes[:0]
	s.BestLap = 0
	s.LapRecordSet = false
	s.RaceRecordSet = false
	s.RecordErr = nil
	s.TargetLap = 0
	s.TargetRace = 0
	if s.Records != nil {
		if lap, race, err := s.Records.Best(trk.ID); err == nil {
			s.TargetLap = lap
			s.TargetRace = race
		}
	}

	if ps != nil {
		ps.Clear()
	}
	if ws != nil {
		ws.Configure(trk.Theme.Weather, s.seed^stringSeed(trk.ID))
	}
	if cam != nil {
		*cam = Camera{}
	}

	s.Countdown = CountdownSeconds
	s.State = StateCountdown
	s.emitTick(CountdownSeconds)
	return nil
}

func (s *Session) emitTick(n int) {
	s.lastTick = n
	if s.Bus != nil {
		s.Bus.Emit(Event{Type: EventCountdownTick, Data: n})
	}
}

// TogglePause flips between racing and paused; other states ignore it.
func (s *Session) TogglePause() {
	switch s.State {
	case StateRacing:
		s.State = StatePaused
	case StatePaused:
		s.State = StateRacing
	}
}

// ToTitle abandons the current race and returns to the title screen.
func (s *Session) ToTitle() {
	s.State = StateTitle
}

// Update advances whatever the current state needs: the countdown clock,
// the race clocks and car, or the rolling-out car under the flag.
func (s *Session) Update(in Intent, dt float64) {
	switch s.State {
	case StateCountdown:
		s.Countdown -= dt
		if s.Countdown <= 0 {
			s.Countdown = 0
			s.State = StateRacing
			if s.Bus != nil {
				s.Bus.Emit(Event{Type: EventCountdownGo})
			}
			return
		}
		if n := int(math.Ceil(s.Countdown)); n != s.lastTick && n >= 1 {
			s.emitTick(n)
		}

	case StateRacing:
		s.RaceTime += dt
		s.LapTime += dt
		if s.Car.Update(in, s.Track, dt) {
			s.completeLap()
		}

	case StateFinished:
		// Roll out under the flag, throttle ignored.
		s.Car.Update(Intent{}, s.Track, dt)
	}
}

func (s *Session) completeLap() {
	lap := s.LapTime
	s.LapTimes = append(s.LapTimes, lap)
	if s.BestLap == 0 || lap < s.BestLap {
		s.BestLap = lap
	}
	if s.Bus != nil {
		s.Bus.Emit(Event{Type: EventLapCompleted, Lap: s.Car.Lap, Time: lap})
	}
	s.LapTime = 0

	if s.Car.Lap >= s.Track.Laps {
		s.finishRace()
	}
}

func (s *Session) finishRace() {
	s.State = StateFinished
	if s.Bus != nil {
		s.Bus.Emit(Event{Type: EventRaceFinished, Lap: s.Car.Lap, Time: s.RaceTime})
	}
	if s.Records == nil {
		return
	}
	lapRec, raceRec, err := s.Records.Submit(s.Track.ID, s.Car.Spec.ID, s.BestLap, s.RaceTime)
	s.LapRecordSet = lapRec
	s.RaceRecordSet = raceRec
	s.RecordErr = err
	if err == nil && (lapRec || raceRec) && s.Bus != nil {
		s.Bus.Emit(Event{Type: EventRecordSet, Time: s.BestLap})
	}
}

// HandleCollision applies a collision outcome to the car and fires the
// matching feedback: particles, camera shake, and the crash event.
func (s *Session) HandleCollision(col *Collision, ps *ParticleSystem, cam *Camera, w, h int) {
	if col == nil || s.Car == nil {
		return
	}
	sf := s.Car.SpeedFraction()
	s.Car.ApplyCrash(col.Severity)

	cx, cy := PlayerScreenPos(s.Car, w, h)
	switch col.Severity {
	case CrashExplode:
		if ps != nil {
			ps.SpawnCrashExplosion(cx, cy, s.Car.Spec.Body, 0.7+sf)
		}
		if cam != nil {
			cam.AddShake(14*(0.5+sf), 0.55)
		}
	case CrashSpin:
		if ps != nil {
			ps.SpawnTireSmoke(cx, cy, 18)
		}
		if cam != nil {
			cam.AddShake(6*(0.5+sf), 0.3)
		}
	}
	if s.Bus != nil {
		s.Bus.Emit(Event{Type: EventCrash, Data: int(col.Severity)})
	}
}

// EmitEffects spawns the per-frame ambience: wall sparks, off-road dust,
// scrub smoke, wreck fire, and finish confetti. Amounts accumulate over
// dt so the density does not depend on frame rate.
func (s *Session) EmitEffects(ps *ParticleSystem, cam *Camera, dt float64, w, h int) {
	if ps == nil || s.Car == nil {
		return
	}

	if s.State == StateFinished {
		s.confettiAcc += 90 * dt
		if n := int(s.confettiAcc); n > 0 {
			s.confettiAcc -= float64(n)
			ps.SpawnConfetti(n)
		}
		return
	}
	if s.State != StateRacing {
		return
	}

	sf := s.Car.SpeedFraction()
	cx, cy := PlayerScreenPos(s.Car, w, h)

	if s.Car.WallScrape != 0 {
		side := s.Car.WallScrape
		ps.SpawnSparks(cx+side*float64(w)*0.09, cy, -side, 10)
		if cam != nil {
			cam.AddShake(3, 0.15)
		}
		if s.Bus != nil {
			s.Bus.Emit(Event{Type: EventWallHit})
		}
	}

	if s.Car.Crash == CrashExplode {
		s.fireAcc += 30 * dt
		if n := int(s.fireAcc); n > 0 {
			s.fireAcc -= float64(n)
			ps.SpawnWreckFire(cx, cy, n)
		}
		return
	}

	if s.Car.OffRoad() && sf > 0.05 {
		s.dustAcc += 90 * sf * dt
		if n := int(s.dustAcc); n > 0 {
			s.dustAcc -= float64(n)
			ps.SpawnDust(cx, cy+6, s.Car.LateralVel, n)
		}
	}

	if ex := absF(s.Car.LateralVel) - ScrubThreshold; ex > 0 && sf > 0.2 {
		s.smokeAcc += clampF(ex, 0, 1) * 60 * dt
		if n := int(s.smokeAcc); n > 0 {
			s.smokeAcc -= float64(n)
			ps.SpawnTireSmoke(cx, cy+4, n)
		}
	}
}
