package game

import "math"

const (
	debrisGravity   = 620.0
	sparkGravity    = 480.0
	confettiGravity = 160.0
	fireLift        = 240.0
	smokeLift       = 34.0
)

// particleDecays holds exponential drag factors precomputed once per frame.
// Avoids calling math.Exp() inside the per-particle hot loop.
type particleDecays struct {
	smokeXY    float64 // exp(-1.2 * dt)
	dustXY     float64 // exp(-2.0 * dt)
	fireXY     float64 // exp(-2.2 * dt)
	debrisXY   float64 // exp(-1.65 * dt)
	sparkXY    float64 // exp(-3.0 * dt)
	confettiXY float64 // exp(-0.9 * dt)
	rainXY     float64 // exp(-0.25 * dt)
	snowXY     float64 // exp(-0.4 * dt)
}

func computeDecays(dt float64) particleDecays {
	return particleDecays{
		smokeXY:    math.Exp(-1.2 * dt),
		dustXY:     math.Exp(-2.0 * dt),
		fireXY:     math.Exp(-2.2 * dt),
		debrisXY:   math.Exp(-1.65 * dt),
		sparkXY:    math.Exp(-3.0 * dt),
		confettiXY: math.Exp(-0.9 * dt),
		rainXY:     math.Exp(-0.25 * dt),
		snowXY:     math.Exp(-0.4 * dt),
	}
}

func (ps *ParticleSystem) Update(dt float64) {
	if dt <= 0 {
		return
	}

	d := computeDecays(dt)

	for i := 0; i < len(ps.P); {
		p := &ps.P[i]

		p.Life += dt
		if p.Life >= p.MaxLife {
			ps.P[i] = ps.P[len(ps.P)-1]
			ps.P = ps.P[:len(ps.P)-1]
			continue
		}

		// Skip delayed particles.
		if p.Life < 0 {
			i++
			continue
		}

		switch p.Kind {
		case ParticleSmoke:
			ps.updatePuff(p, dt, d.smokeXY, smokeLift)
		case ParticleDust:
			ps.updatePuff(p, dt, d.dustXY, 0)
			p.VY += 90.0 * dt
		case ParticleFire:
			ps.updateFire(p, dt, d.fireXY)
		case ParticleSpark:
			ps.updateFalling(p, dt, d.sparkXY, sparkGravity)
		case ParticleConfetti:
			ps.updateConfetti(p, dt, d.confettiXY)
		case ParticleRain:
			ps.updateRain(p, dt, d.rainXY)
		case ParticleSnow:
			ps.updateSnow(p, dt, d.snowXY)
		default: // Debris, Glow
			ps.updateFalling(p, dt, d.debrisXY, debrisGravity)
			p.Spin += p.SpinVel * dt
		}

		if ps.offscreen(p) {
			ps.P[i] = ps.P[len(ps.P)-1]
			ps.P = ps.P[:len(ps.P)-1]
			continue
		}

		i++
	}
}

// updatePuff drifts smoke-like particles with drag and a slow rise.
func (ps *ParticleSystem) updatePuff(p *Particle, dt, decayXY, lift float64) {
	p.VX *= decayXY
	p.VY *= decayXY
	p.VY -= lift * dt
	p.X += p.VX * dt
	p.Y += p.VY * dt
}

func (ps *ParticleSystem) updateFire(p *Particle, dt, decayXY float64) {
	p.VX *= decayXY
	p.VY *= decayXY
	p.VY -= fireLift * dt

	// Sideways jitter.
	j := float64(int(hash2D(0xF17E, int(p.X), int(p.Y))>>56)-128) / 128.0
	p.VX += j * 60.0 * dt

	p.X += p.VX * dt
	p.Y += p.VY * dt
}

func (ps *ParticleSystem) updateFalling(p *Particle, dt, decayXY, gravity float64) {
	p.VX *= decayXY
	p.VY += gravity * dt
	p.X += p.VX * dt
	p.Y += p.VY * dt
}

func (ps *ParticleSystem) updateConfetti(p *Particle, dt, decayXY float64) {
	flutter := math.Sin(p.Life*5.0+p.Spin) * 28.0
	p.VX = p.VX*decayXY + flutter*dt
	p.VY += confettiGravity * dt
	if p.VY > 180 {
		p.VY = 180
	}
	p.Spin += p.SpinVel * dt
	p.X += p.VX * dt
	p.Y += p.VY * dt
}

func (ps *ParticleSystem) updateRain(p *Particle, dt, decayXY float64) {
	p.VX *= decayXY
	p.X += p.VX * dt
	p.Y += p.VY * dt
}

func (ps *ParticleSystem) updateSnow(p *Particle, dt, decayXY float64) {
	wobble := math.Sin((p.X*0.06)+(p.Life*3.0)) * 14.0
	p.VX = p.VX*decayXY + wobble*dt
	p.X += p.VX * dt
	p.Y += p.VY * dt
}

// offscreen reports whether a particle left the expanded screen rectangle.
func (ps *ParticleSystem) offscreen(p *Particle) bool {
	return p.X < -80 || p.X > float64(ps.W)+80 || p.Y > float64(ps.H)+40 || p.Y < -160
}
