package game

import (
	"fmt"
	"math"
)

type ObstacleKind uint8

const (
	ObstacleTree ObstacleKind = iota
	ObstaclePine
	ObstacleBoulder
	ObstacleCactus
	ObstacleLamp
	ObstacleBillboard
	obstacleKindCount
)

type HazardKind uint8

const (
	HazardCone HazardKind = iota
	HazardBarrel
	HazardOil
	HazardRock
	hazardKindCount
)

type SurfaceType uint8

const (
	SurfacePaved SurfaceType = iota
	SurfaceDirt
)

// Section is the authoring unit of track geometry: a curvature/hill target
// reached over Enter segments, held for Hold, released over Leave.
// Zero-length phases contribute no segments and the value jumps.
type Section struct {
	Enter, Hold, Leave int
	Curve, Hill        float64
}

// Hazard is an on-road object placed at an exact segment index.
// Offset is in road-half-width units from the centre, negative left.
type Hazard struct {
	Index  int
	Offset float64
	Width  float64
	Kind   HazardKind
}

// Obstacle is roadside scenery. Offset is signed and always beyond the
// road edge; Variant seeds silhouette variation.
type Obstacle struct {
	Offset  float64
	Width   float64
	Kind    ObstacleKind
	Variant uint64
}

type Segment struct {
	Index  int
	Curve  float64
	Elev   float64
	Left   *Obstacle
	Right  *Obstacle
	Hazard *Hazard
}

// TrackDef is the authored description a Track is built from.
type TrackDef struct {
	ID       string
	Name     string
	Theme    *TrackTheme
	Surface  SurfaceType
	Laps     int
	Sections []Section
	Hazards  []Hazard
}

// Track is immutable once built. All index access wraps, so the road is
// circular and total over any int.
type Track struct {
	ID      string
	Name    string
	Theme   *TrackTheme
	Surface SurfaceType
	Laps    int

	segments []Segment
	length   float64
	hazards  []Hazard
}

// base widths per obstacle kind, in road-half-width units.
var obstacleBaseWidth = [obstacleKindCount]float64{
	ObstacleTree:      0.34,
	ObstaclePine:      0.30,
	ObstacleBoulder:   0.26,
	ObstacleCactus:    0.22,
	ObstacleLamp:      0.10,
	ObstacleBillboard: 0.50,
}

// BuildTrack expands a definition into an immutable track. Phase one lays
// out plain geometry from the sections; phase two produces the annotated
// copy carrying deterministic scenery and the authored hazards. The same
// definition and seed always yield an identical track.
func BuildTrack(def TrackDef, seed uint64) (*Track, error) {
	if len(def.Sections) == 0 {
		return nil, fmt.Errorf("track %q: no sections", def.ID)
	}
	if def.Laps <= 0 {
		return nil, fmt.Errorf("track %q: lap count %d", def.ID, def.Laps)
	}
	if def.Theme == nil {
		return nil, fmt.Errorf("track %q: no theme", def.ID)
	}

	geom := buildGeometry(def.Sections)
	if len(geom) == 0 {
		return nil, fmt.Errorf("track %q: sections produce no segments", def.ID)
	}

	t := &Track{
		ID:      def.ID,
		Name:    def.Name,
		Theme:   def.Theme,
		Surface: def.Surface,
		Laps:    def.Laps,
		length:  float64(len(geom)) * SegmentLength,
	}

	segs := make([]Segment, len(geom))
	copy(segs, geom)
	placeScenery(segs, def.Theme, splitmix64(seed^stringSeed(def.ID)))

	t.hazards = make([]Hazard, len(def.Hazards))
	copy(t.hazards, def.Hazards)
	for i := range t.hazards {
		h := &t.hazards[i]
		if h.Index < 0 || h.Index >= len(segs) {
			return nil, fmt.Errorf("track %q: hazard index %d outside [0,%d)", def.ID, h.Index, len(segs))
		}
		if h.Width <= 0 {
			return nil, fmt.Errorf("track %q: hazard at %d has width %v", def.ID, h.Index, h.Width)
		}
		segs[h.Index].Hazard = h
	}

	t.segments = segs
	return t, nil
}

func buildGeometry(sections []Section) []Segment {
	segs := make([]Segment, 0, 256)
	idx := 0
	push := func(curve, elev float64) {
		segs = append(segs, Segment{Index: idx, Curve: curve, Elev: elev})
		idx++
	}
	for _, sec := range sections {
		// The enter ramp starts flat at local index 0; the hold phase then
		// begins at the full target, so the ramp tops out one step short.
		for i := 0; i < sec.Enter; i++ {
			t := float64(i) / float64(sec.Enter)
			push(sec.Curve*t, sec.Hill*t)
		}
		for i := 0; i < sec.Hold; i++ {
			push(sec.Curve, sec.Hill)
		}
		for i := 0; i < sec.Leave; i++ {
			t := 1.0 - float64(i+1)/float64(sec.Leave)
			push(sec.Curve*t, sec.Hill*t)
		}
	}
	return segs
}

// placeScenery rolls a per-side hash on every ObstacleEvery-th segment.
// The hash keys on the segment index times a fixed odd constant (see
// hash2D), so placement is a pure function of seed and definition.
func placeScenery(segs []Segment, theme *TrackTheme, seed uint64) {
	for i := range segs {
		if i%ObstacleEvery != 0 {
			continue
		}
		if ob := rollObstacle(seed, i, 0, theme); ob != nil {
			ob.Offset = -ob.Offset
			segs[i].Left = ob
		}
		if ob := rollObstacle(seed, i, 1, theme); ob != nil {
			segs[i].Right = ob
		}
	}
}

func rollObstacle(seed uint64, index, side int, theme *TrackTheme) *Obstacle {
	h := hash2D(seed, index, side)
	if h%100 >= ObstacleChancePct {
		return nil
	}
	kind := theme.obstaclePick(h >> 8)
	span := ObstacleOffsetMax - ObstacleOffsetMin
	off := ObstacleOffsetMin + float64((h>>24)%1000)/1000.0*span
	size := 0.8 + float64((h>>40)%1000)/1000.0*0.5
	return &Obstacle{
		Offset:  off,
		Width:   obstacleBaseWidth[kind] * size,
		Kind:    kind,
		Variant: h,
	}
}

// AtIndex wraps with floored modulo, so it is total over all ints.
func (t *Track) AtIndex(i int) *Segment {
	return &t.segments[floorMod(i, len(t.segments))]
}

// AtPosition maps a distance along the track (any float, including
// negative) to its segment.
func (t *Track) AtPosition(pos float64) *Segment {
	return t.AtIndex(int(math.Floor(pos / SegmentLength)))
}

func (t *Track) SegmentCount() int { return len(t.segments) }

func (t *Track) Length() float64 { return t.length }

// Hazards returns the placed hazards, useful for minimap and HUD notes.
func (t *Track) Hazards() []Hazard { return t.hazards }

// stringSeed folds a string into a 64-bit seed (FNV-1a).
func stringSeed(s string) uint64 {
	h := uint64(1469598103934665603)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= 1099511628211
	}
	return h
}
