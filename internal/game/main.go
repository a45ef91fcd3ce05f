package game

import (
	"fmt"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

// Options carries the resolved CLI and environment configuration into the
// game loop.
type Options struct {
	Width      int
	Height     int
	Fullscreen bool
	NoVsync    bool
	Seed       uint64
	Bumpers    bool
	Mute       bool
}

// RunDesktop owns the window, the GL context and the frame loop, and only
// returns when the window closes. records may be nil when the lap database
// is unavailable; racing still works, times just are not persisted.
func RunDesktop(opts Options, records RecordKeeper, lg *zap.SugaredLogger) error {
	runtime.LockOSThread()

	window, err := initWindow(opts)
	if err != nil {
		return fmt.Errorf("window: %w", err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	if err := InitAudio(); err != nil {
		lg.Warnw("audio init failed, continuing without sound", "error", err)
	}
	SetMuted(opts.Mute)

	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	fbW, fbH := window.GetFramebufferSize()

	bus := NewEventBus()
	session := NewSession(seed, bus, records)
	session.Bumpers = opts.Bumpers
	particles := NewParticleSystem(MaxParticles, fbW, fbH, seed^0xBEAD)
	weather := NewWeatherSystem(fbW, fbH, seed^0x57A7)
	cam := &Camera{}
	sky := NewSkyRenderer(seed)
	road := NewRoadRenderer()
	hud := &HUD{}
	input := NewInput()

	wireSounds(bus)
	bus.Subscribe(EventRaceFinished, func(e Event) {
		lg.Infow("race finished", "track", session.Track.ID, "laps", e.Lap, "time", e.Time)
	})

	lg.Infow("ready", "seed", seed, "bumpers", opts.Bumpers)

	// Reusable particle render buffers.
	var glowBuf, normBuf []float32
	var skidCool float64
	lastState := session.State

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > MaxFrameStep {
			dt = MaxFrameStep
		}

		glfw.PollEvents()

		fbW, fbH = window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		if input.JustPressed(window, glfw.KeyM) {
			ToggleMuted()
		}

		// State transitions.
		switch session.State {
		case StateTitle:
			if confirmPressed(input, window) {
				PlaySound(SoundMenuConfirm)
				session.ToVehicleSelect()
			}
			if input.JustPressed(window, glfw.KeyEscape) {
				window.SetShouldClose(true)
				continue
			}

		case StateVehicleSelect:
			if cycleMenu(input, window, session.CycleVehicle) {
				PlaySound(SoundMenuTick)
			}
			if confirmPressed(input, window) {
				PlaySound(SoundMenuConfirm)
				session.ToTrackSelect()
			}
			if input.JustPressed(window, glfw.KeyEscape) {
				session.ToTitle()
			}

		case StateTrackSelect:
			if cycleMenu(input, window, session.CycleTrack) {
				PlaySound(SoundMenuTick)
			}
			if confirmPressed(input, window) {
				PlaySound(SoundMenuConfirm)
				if err := session.StartRace(particles, weather, cam); err != nil {
					lg.Errorw("track build failed", "track", session.SelectedTrack().ID, "error", err)
				}
			}
			if input.JustPressed(window, glfw.KeyEscape) {
				session.ToVehicleSelect()
			}

		case StateCountdown:
			if input.JustPressed(window, glfw.KeyEscape) {
				session.ToTitle()
			}

		case StateRacing:
			if input.JustPressed(window, glfw.KeyEscape) {
				session.TogglePause()
			}

		case StatePaused:
			if input.JustPressed(window, glfw.KeyEscape) {
				session.TogglePause()
			}
			if input.JustPressed(window, glfw.KeyQ) {
				session.ToTitle()
			}

		case StateFinished:
			if confirmPressed(input, window) {
				PlaySound(SoundMenuConfirm)
				if err := session.StartRace(particles, weather, cam); err != nil {
					lg.Errorw("track build failed", "track", session.SelectedTrack().ID, "error", err)
				}
			}
			if input.JustPressed(window, glfw.KeyEscape) {
				session.ToTitle()
			}
		}

		// Simulation.
		switch session.State {
		case StateTitle, StateVehicleSelect, StateTrackSelect:
			session.UpdateShowcase(weather, dt)

		case StateCountdown, StateRacing, StateFinished:
			in := Intent{}
			if session.State == StateRacing {
				in = ReadIntent(window)
			}
			session.Update(in, dt)
			if session.State == StateRacing {
				if col := CheckCollision(session.Car, session.Track); col != nil {
					session.HandleCollision(col, particles, cam, fbW, fbH)
				}
			}
			session.EmitEffects(particles, cam, dt, fbW, fbH)
		}

		// Skid squeal while the tires scrub hard.
		skidCool -= dt
		if session.State == StateRacing && session.Car != nil {
			ex := absF(session.Car.LateralVel) - ScrubThreshold
			if ex > 0.25 && session.Car.SpeedFraction() > 0.3 && skidCool <= 0 {
				PlaySoundWithGain(SoundSkid, clampF(0.4+ex*0.5, 0, 1))
				skidCool = 0.45
			}
		}

		if session.State != StatePaused {
			weather.UpdateAndSpawn(particles, dt)
			particles.Update(dt)
			cam.UpdateShake(dt, seed^uint64(now*1000))
		}
		hud.Update(dt)
		if dt > 0 {
			hud.FPS = hud.FPS*0.92 + (1.0/dt)*0.08
		}

		// Audio follows the sim.
		EnsureStreams()
		speedFrac, gravel, gain := engineAudioState(session)
		SetEngineState(speedFrac, gravel, gain)
		SetMusicActive(musicWanted(session.State))

		if session.State == StateFinished && lastState != StateFinished && session.RecordErr != nil {
			lg.Warnw("record submit failed", "error", session.RecordErr)
		}
		lastState = session.State

		// Render: sky steady, road and car shaken, particles and HUD steady.
		rend.BeginFrame(fbW, fbH)
		if session.Track != nil && session.Car != nil {
			sky.Draw(rend, session.Track.Theme, fbW, fbH)
			sx, sy := cam.Offsets()
			rend.SetOrigin(sx, sy)
			road.Draw(rend, session.Track, session.Car, fbW, fbH)
			DrawPlayer(rend, session.Car, fbW, fbH)
			rend.SetOrigin(0, 0)
		}
		glowBuf, normBuf = particles.ParticleRenderData(glowBuf, normBuf)
		rend.DrawParticles(normBuf)
		rend.DrawParticleGlow(glowBuf)
		hud.Draw(rend, session, fbW, fbH)
		rend.FlushPolys()
		rend.FlushGlow()

		window.SwapBuffers()
	}

	lg.Infow("shutting down")
	return nil
}

// confirmPressed reports an edge on either menu confirm key.
func confirmPressed(in *Input, window *glfw.Window) bool {
	enter := in.JustPressed(window, glfw.KeyEnter)
	space := in.JustPressed(window, glfw.KeySpace)
	return enter || space
}

// cycleMenu moves a selection left/right and reports whether it moved.
func cycleMenu(in *Input, window *glfw.Window, cycle func(int)) bool {
	moved := false
	if in.JustPressed(window, glfw.KeyLeft) || in.JustPressed(window, glfw.KeyA) {
		cycle(-1)
		moved = true
	}
	if in.JustPressed(window, glfw.KeyRight) || in.JustPressed(window, glfw.KeyD) {
		cycle(1)
		moved = true
	}
	return moved
}

// wireSounds maps race events onto the one-shot effects.
func wireSounds(bus *EventBus) {
	bus.Subscribe(EventCountdownTick, func(Event) { PlaySound(SoundCountBeep) })
	bus.Subscribe(EventCountdownGo, func(Event) { PlaySound(SoundCountGo) })
	bus.Subscribe(EventLapCompleted, func(Event) { PlaySound(SoundLapChime) })
	bus.Subscribe(EventRaceFinished, func(Event) { PlaySound(SoundFinish) })
	bus.Subscribe(EventRecordSet, func(Event) { PlaySound(SoundRecordFanfare) })
	bus.Subscribe(EventWallHit, func(Event) { PlaySoundWithGain(SoundThud, 0.5) })
	bus.Subscribe(EventCrash, func(e Event) {
		if CrashKind(e.Data) == CrashExplode {
			PlaySound(SoundCrash)
		} else {
			PlaySound(SoundThud)
		}
	})
}

// engineAudioState maps the session onto the streaming engine inputs. The
// showcase car keeps a quiet hum under the menus; the wreck cuts the
// engine while it burns.
func engineAudioState(s *Session) (speedFrac, gravel, gain float64) {
	if s.Car == nil {
		return 0, 0, 0
	}
	speedFrac = s.Car.SpeedFraction()
	if s.Car.OffRoad() {
		gravel = 1
	}
	switch s.State {
	case StateRacing:
		gain = 1
	case StateCountdown:
		gain = 0.85
	case StateFinished:
		gain = 0.6
	case StatePaused:
		gain = 0.12
	default:
		gain = 0.35
	}
	if s.Car.Crash == CrashExplode {
		gain *= 0.25
	}
	return speedFrac, gravel, gain
}

func musicWanted(st SessionState) bool {
	switch st {
	case StateTitle, StateVehicleSelect, StateTrackSelect, StateFinished:
		return true
	}
	return false
}
