package game

import "math"

// SpawnCrashExplosion bursts debris, fire, glow, and smoke at a screen point.
// Intensity scales counts and velocities; spins use it for severity.
func (ps *ParticleSystem) SpawnCrashExplosion(x, y float64, baseCol RGB, intensity float64) {
	if intensity <= 0 {
		return
	}
	r := ps.rng

	// Debris.
	for range int(40 * intensity) {
		ang := r.RangeF(0, math.Pi*2)
		spd := r.RangeF(90, 340) * intensity
		col := baseCol.Add(r.Range(-14, 14), r.Range(-14, 14), r.Range(-14, 14))
		ps.Add(Particle{
			X: x + r.RangeF(-4, 4), Y: y + r.RangeF(-4, 4),
			VX: math.Cos(ang) * spd,
			VY: math.Sin(ang)*spd - r.RangeF(60, 220)*intensity,
			Size: r.RangeF(3.0, 6.0), MaxLife: r.RangeF(0.5, 1.1),
			SpinVel: r.RangeF(-9, 9),
			Col:     col, Kind: ParticleDebris,
		})
	}

	// Fire.
	for range int(50 * intensity) {
		ang := r.RangeF(0, math.Pi*2)
		spd := r.RangeF(20, 90)
		ps.Add(Particle{
			X: x + r.RangeF(-5, 5), Y: y + r.RangeF(-5, 5),
			VX: math.Cos(ang) * spd, VY: math.Sin(ang)*spd - r.RangeF(20, 70),
			Size: r.RangeF(4.0, 9.0), MaxLife: r.RangeF(0.25, 0.6),
			Col: Palette.FireHot, Kind: ParticleFire,
		})
	}

	// Glow flash.
	for range int(10 * intensity) {
		ang := r.RangeF(0, math.Pi*2)
		spd := r.RangeF(140, 420) * intensity
		ps.Add(Particle{
			X: x + r.RangeF(-2, 2), Y: y + r.RangeF(-2, 2),
			VX: math.Cos(ang) * spd, VY: math.Sin(ang) * spd,
			Size: r.RangeF(6.0, 12.0), MaxLife: r.RangeF(0.12, 0.3),
			Col: Palette.FireHot, Kind: ParticleGlow,
		})
	}

	// Smoke.
	for range int(30*intensity) + 12 {
		ang := r.RangeF(0, math.Pi*2)
		spd := r.RangeF(10, 45)
		ps.Add(Particle{
			X: x + r.RangeF(-6, 6), Y: y + r.RangeF(-6, 6),
			VX: math.Cos(ang) * spd, VY: math.Sin(ang)*spd - r.RangeF(15, 50),
			Size: r.RangeF(5.0, 10.0), MaxLife: r.RangeF(0.5, 1.3),
			Col: Palette.Smoke, Kind: ParticleSmoke,
		})
	}

	// White plume, delayed a touch so it reads after the flash.
	for range int(14 * intensity) {
		ps.Add(Particle{
			X: x + r.RangeF(-7, 7), Y: y + r.RangeF(-5, 5),
			VX: r.RangeF(-20, 20), VY: -r.RangeF(30, 90),
			Size: r.RangeF(6.0, 11.0), Life: -r.RangeF(0, 0.12),
			MaxLife: r.RangeF(0.6, 1.4),
			Col:     RGB{R: 245, G: 245, B: 250}, Kind: ParticleSmoke,
		})
	}
}

// SpawnSparks throws sparks from a wall strike. dir is +1 when the hit
// came from the left wall (sparks fly right) and -1 from the right.
func (ps *ParticleSystem) SpawnSparks(x, y, dir float64, count int) {
	r := ps.rng
	for range count {
		ang := r.RangeF(-0.9, 0.3) // above horizontal
		spd := r.RangeF(120, 380)
		ps.Add(Particle{
			X: x + r.RangeF(-2, 2), Y: y + r.RangeF(-2, 2),
			VX: dir * math.Cos(ang) * spd, VY: math.Sin(ang) * spd,
			Size: r.RangeF(2.0, 4.0), MaxLife: r.RangeF(0.18, 0.5),
			Col: Palette.Spark, Kind: ParticleSpark,
		})
	}
}

// SpawnDust puffs dirt behind the wheels while off the pavement.
// sideVel leans the puff with the car's lateral motion.
func (ps *ParticleSystem) SpawnDust(x, y, sideVel float64, count int) {
	r := ps.rng
	for range count {
		ps.Add(Particle{
			X: x + r.RangeF(-8, 8), Y: y + r.RangeF(-3, 3),
			VX: sideVel*18 + r.RangeF(-35, 35), VY: -r.RangeF(15, 70),
			Size: r.RangeF(4.0, 8.0), MaxLife: r.RangeF(0.4, 0.9),
			Col: Palette.Dust.Add(r.Range(-12, 12), r.Range(-10, 10), r.Range(-8, 8)),
			Kind: ParticleDust,
		})
	}
}

// SpawnTireSmoke marks hard lateral scrub at the contact patch.
func (ps *ParticleSystem) SpawnTireSmoke(x, y float64, count int) {
	r := ps.rng
	for range count {
		ps.Add(Particle{
			X: x + r.RangeF(-5, 5), Y: y + r.RangeF(-2, 2),
			VX: r.RangeF(-25, 25), VY: -r.RangeF(10, 45),
			Size: r.RangeF(4.5, 8.5), MaxLife: r.RangeF(0.3, 0.7),
			Col: Palette.TireSmoke, Kind: ParticleSmoke,
		})
	}
}

// SpawnWreckFire keeps a wrecked car burning between impact and respawn.
func (ps *ParticleSystem) SpawnWreckFire(x, y float64, count int) {
	r := ps.rng
	for range count {
		ps.Add(Particle{
			X: x + r.RangeF(-10, 10), Y: y + r.RangeF(-4, 2),
			VX: r.RangeF(-15, 15), VY: -r.RangeF(20, 80),
			Size: r.RangeF(3.5, 7.0), MaxLife: r.RangeF(0.2, 0.5),
			Col: Palette.FireHot, Kind: ParticleFire,
		})
		if r.RangeF(0, 1) < 0.45 {
			ps.Add(Particle{
				X: x + r.RangeF(-8, 8), Y: y + r.RangeF(-4, 0),
				VX: r.RangeF(-12, 12), VY: -r.RangeF(30, 70),
				Size: r.RangeF(5.0, 9.0), MaxLife: r.RangeF(0.5, 1.1),
				Col: Palette.Smoke, Kind: ParticleSmoke,
			})
		}
	}
}

// SpawnConfetti rains colored flakes from the top of the screen.
func (ps *ParticleSystem) SpawnConfetti(count int) {
	r := ps.rng
	for range count {
		col := rainbowCycle[r.Range(0, len(rainbowCycle)-1)]
		ps.Add(Particle{
			X: r.RangeF(0, float64(ps.W)), Y: -r.RangeF(4, 60),
			VX: r.RangeF(-30, 30), VY: r.RangeF(40, 130),
			Size: r.RangeF(4.0, 7.0), Life: -r.RangeF(0, 0.8),
			MaxLife: r.RangeF(2.2, 4.0),
			Spin:    r.RangeF(0, math.Pi*2), SpinVel: r.RangeF(-7, 7),
			Col: col, Kind: ParticleConfetti,
		})
	}
}
