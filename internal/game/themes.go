package game

type SkyFeature uint8

const (
	SkylineHills SkyFeature = iota
	SkylineMountains
	SkylineCity
	SkylineDunes
	SkylineNone
)

// TrackTheme is the visual identity of a track: sky, ground and road band
// colours, the horizon silhouette, precipitation, and which scenery kinds
// the placement pass may pick from.
type TrackTheme struct {
	Name       string
	SkyTop     RGB
	SkyHorizon RGB // doubles as the fog colour
	Ground     [2]RGB
	Road       [2]RGB
	Celestial  RGB // sun or moon disc
	Night      bool
	Rainbow    bool // road bands cycle instead of alternating
	Skyline    SkyFeature
	Weather    WeatherType
	Obstacles  []ObstacleKind
}

var (
	ThemeMeadow = TrackTheme{
		Name:       "Meadow",
		SkyTop:     RGB{R: 92, G: 148, B: 222},
		SkyHorizon: RGB{R: 186, G: 214, B: 238},
		Ground:     [2]RGB{{R: 118, G: 168, B: 86}, {R: 104, G: 152, B: 76}},
		Road:       [2]RGB{{R: 108, G: 110, B: 116}, {R: 98, G: 100, B: 106}},
		Celestial:  RGB{R: 255, G: 238, B: 180},
		Skyline:    SkylineHills,
		Obstacles:  []ObstacleKind{ObstacleTree, ObstacleTree, ObstacleBillboard, ObstacleLamp},
	}
	ThemeAlpine = TrackTheme{
		Name:       "Alpine",
		SkyTop:     RGB{R: 70, G: 110, B: 180},
		SkyHorizon: RGB{R: 168, G: 196, B: 224},
		Ground:     [2]RGB{{R: 96, G: 138, B: 92}, {R: 84, G: 124, B: 82}},
		Road:       [2]RGB{{R: 96, G: 98, B: 104}, {R: 86, G: 88, B: 94}},
		Celestial:  RGB{R: 255, G: 244, B: 200},
		Skyline:    SkylineMountains,
		Weather:    WeatherSnow,
		Obstacles:  []ObstacleKind{ObstaclePine, ObstaclePine, ObstacleBoulder},
	}
	ThemeNightCity = TrackTheme{
		Name:       "Night City",
		SkyTop:     RGB{R: 10, G: 12, B: 28},
		SkyHorizon: RGB{R: 48, G: 42, B: 78},
		Ground:     [2]RGB{{R: 30, G: 34, B: 42}, {R: 26, G: 30, B: 38}},
		Road:       [2]RGB{{R: 52, G: 54, B: 62}, {R: 46, G: 48, B: 56}},
		Celestial:  RGB{R: 230, G: 232, B: 240},
		Night:      true,
		Skyline:    SkylineCity,
		Weather:    WeatherRain,
		Obstacles:  []ObstacleKind{ObstacleLamp, ObstacleBillboard, ObstacleLamp},
	}
	ThemeDesertDusk = TrackTheme{
		Name:       "Desert Dusk",
		SkyTop:     RGB{R: 90, G: 50, B: 110},
		SkyHorizon: RGB{R: 252, G: 170, B: 96},
		Ground:     [2]RGB{{R: 196, G: 168, B: 112}, {R: 184, G: 156, B: 100}},
		Road:       [2]RGB{{R: 122, G: 108, B: 96}, {R: 112, G: 100, B: 88}},
		Celestial:  RGB{R: 255, G: 210, B: 140},
		Skyline:    SkylineDunes,
		Obstacles:  []ObstacleKind{ObstacleCactus, ObstacleBoulder, ObstacleCactus},
	}
	ThemeRainbow = TrackTheme{
		Name:       "Rainbow",
		SkyTop:     RGB{R: 24, G: 10, B: 48},
		SkyHorizon: RGB{R: 90, G: 40, B: 120},
		Ground:     [2]RGB{{R: 40, G: 24, B: 70}, {R: 34, G: 20, B: 62}},
		Road:       [2]RGB{{R: 70, G: 70, B: 90}, {R: 62, G: 62, B: 82}},
		Celestial:  RGB{R: 240, G: 240, B: 255},
		Night:      true,
		Rainbow:    true,
		Skyline:    SkylineNone,
		Obstacles:  []ObstacleKind{ObstacleBillboard, ObstacleBoulder},
	}
)

// RoadBand returns the road body colour for a segment index. Rainbow themes
// cycle a six-colour table keyed by index pairs, everything else alternates
// the light/dark pair by parity.
func (t *TrackTheme) RoadBand(index int) RGB {
	if t.Rainbow {
		return rainbowCycle[floorMod(index/2, len(rainbowCycle))]
	}
	return t.Road[floorMod(index, 2)]
}

// GroundBand returns the off-road colour for a segment index.
func (t *TrackTheme) GroundBand(index int) RGB {
	return t.Ground[floorMod(index, 2)]
}

// RumbleBand returns the rumble strip colour for a segment index.
func (t *TrackTheme) RumbleBand(index int) RGB {
	if floorMod(index, 2) == 0 {
		return Palette.RumbleRed
	}
	return Palette.RumbleWhite
}

func (t *TrackTheme) obstaclePick(h uint64) ObstacleKind {
	if len(t.Obstacles) == 0 {
		return ObstacleBoulder
	}
	return t.Obstacles[h%uint64(len(t.Obstacles))]
}
