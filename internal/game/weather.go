package game

type WeatherType uint8

const (
	WeatherNone WeatherType = iota
	WeatherRain
	WeatherSnow
)

// WeatherSystem streams rain or snow in from above the screen. Each track
// theme fixes the mode; seed and gusts vary the look between races.
type WeatherSystem struct {
	seed      uint64
	mode      WeatherType
	w, h      int
	intensity float64
	windX     float64
	spawnAcc  float64
	gustAcc   float64
	spawnSeq  uint64
}

func NewWeatherSystem(w, h int, seed uint64) *WeatherSystem {
	if seed == 0 {
		seed = 1
	}
	return &WeatherSystem{
		seed:      seed,
		mode:      WeatherNone,
		w:         w,
		h:         h,
		intensity: 1.0,
	}
}

func (ws *WeatherSystem) Configure(mode WeatherType, seed uint64) {
	if ws == nil {
		return
	}
	if seed == 0 {
		seed = 1
	}
	ws.seed = seed ^ 0x57A7E12D
	ws.mode = mode
	ws.spawnAcc = 0
	ws.gustAcc = 0
	ws.spawnSeq = 0

	r := NewRand(ws.seed ^ 0xA24BAED4)
	ws.intensity = 0.78 + r.RangeF(0, 0.62)
	ws.windX = r.RangeF(-14.0, 14.0)
}

func (ws *WeatherSystem) Mode() WeatherType {
	if ws == nil {
		return WeatherNone
	}
	return ws.mode
}

func (ws *WeatherSystem) UpdateAndSpawn(ps *ParticleSystem, dt float64) {
	if ws == nil || ps == nil || dt <= 0 || ws.mode == WeatherNone {
		return
	}

	// Slow gust drift so rain/snow direction changes over time.
	ws.gustAcc += dt
	if ws.gustAcc >= 0.6 {
		g := NewRand(ws.seed ^ uint64(int(ws.gustAcc*1000)+1)*0xC2B2AE3D27D4EB4F ^ ws.spawnSeq)
		ws.windX = clampF(ws.windX+g.RangeF(-2.8, 2.8), -18.0, 18.0)
		ws.gustAcc = 0
	}

	rate := 0.0
	switch ws.mode {
	case WeatherRain:
		rate = 240.0 * ws.intensity
	case WeatherSnow:
		rate = 120.0 * ws.intensity
	default:
		return
	}

	ws.spawnAcc += rate * dt
	count := int(ws.spawnAcc)
	if count <= 0 {
		return
	}
	ws.spawnAcc -= float64(count)

	for i := 0; i < count; i++ {
		ws.spawnSeq++
		r := NewRand(ws.seed ^ ws.spawnSeq*0x9E3779B185EBCA87)
		x := r.RangeF(-30.0, float64(ws.w)+30.0)
		y := -r.RangeF(2.0, 40.0)

		switch ws.mode {
		case WeatherRain:
			ps.Add(Particle{
				X: x, Y: y,
				VX:      ws.windX*6.0 + r.RangeF(-15.0, 15.0),
				VY:      520.0 + r.RangeF(0.0, 240.0),
				Size:    2.0 + r.RangeF(0.0, 1.2),
				MaxLife: 1.6 + r.RangeF(0.0, 0.8),
				Col:     Palette.Rain,
				Kind:    ParticleRain,
			})
		case WeatherSnow:
			ps.Add(Particle{
				X: x, Y: y,
				VX:      ws.windX + r.RangeF(-9.0, 9.0),
				VY:      55.0 + r.RangeF(0.0, 65.0),
				Size:    3.0 + r.RangeF(0.0, 2.5),
				MaxLife: 6.0 + r.RangeF(0.0, 5.0),
				Col:     Palette.Snow,
				Kind:    ParticleSnow,
			})
		}
	}
}
