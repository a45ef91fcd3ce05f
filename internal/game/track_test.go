package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestTrack(t *testing.T, sections []Section, hazards ...Hazard) *Track {
	t.Helper()
	trk, err := BuildTrack(TrackDef{
		ID:       "test-loop",
		Name:     "Test Loop",
		Theme:    &ThemeMeadow,
		Laps:     3,
		Sections: sections,
		Hazards:  hazards,
	}, 12345)
	require.NoError(t, err)
	return trk
}

func TestBuildRejectsDegenerateDefinitions(t *testing.T) {
	base := TrackDef{ID: "x", Theme: &ThemeMeadow, Laps: 1, Sections: []Section{{Hold: 4}}}

	def := base
	def.Sections = nil
	_, err := BuildTrack(def, 1)
	assert.Error(t, err, "empty section list")

	def = base
	def.Laps = 0
	_, err = BuildTrack(def, 1)
	assert.Error(t, err, "no laps")

	def = base
	def.Theme = nil
	_, err = BuildTrack(def, 1)
	assert.Error(t, err, "no theme")

	def = base
	def.Hazards = []Hazard{{Index: 4, Width: 0.2}}
	_, err = BuildTrack(def, 1)
	assert.Error(t, err, "hazard index past the last segment")

	def = base
	def.Hazards = []Hazard{{Index: -1, Width: 0.2}}
	_, err = BuildTrack(def, 1)
	assert.Error(t, err, "negative hazard index")

	def = base
	def.Hazards = []Hazard{{Index: 0, Width: 0}}
	_, err = BuildTrack(def, 1)
	assert.Error(t, err, "zero hazard width")
}

func TestSectionRampShape(t *testing.T) {
	trk := buildTestTrack(t, []Section{{Enter: 10, Hold: 20, Leave: 10, Curve: 4}})
	require.Equal(t, 40, trk.SegmentCount())

	// Enter ramps monotonically from exactly zero up to the target.
	assert.Zero(t, trk.AtIndex(0).Curve, "a section begins flat")
	prev := trk.AtIndex(0).Curve
	for i := 1; i < 10; i++ {
		c := trk.AtIndex(i).Curve
		if c <= prev {
			t.Fatalf("enter ramp not increasing at %d: %v <= %v", i, c, prev)
		}
		prev = c
	}
	assert.Less(t, prev, 4.0, "the ramp tops out below the hold value")

	// Hold stays flat at the target.
	for i := 10; i < 30; i++ {
		assert.InDelta(t, 4.0, trk.AtIndex(i).Curve, 1e-12)
	}

	// Leave ramps monotonically back down and lands on zero.
	prev = 4.0
	for i := 30; i < 40; i++ {
		c := trk.AtIndex(i).Curve
		if c >= prev {
			t.Fatalf("leave ramp not decreasing at %d: %v >= %v", i, c, prev)
		}
		prev = c
	}
	assert.Zero(t, trk.AtIndex(39).Curve)
}

func TestZeroLengthPhasesJumpInstantly(t *testing.T) {
	// No enter or leave: the value jumps straight to the target and back.
	trk := buildTestTrack(t, []Section{{Hold: 3, Curve: 3, Hill: 7}, {Hold: 2}})
	require.Equal(t, 5, trk.SegmentCount())
	for i := 0; i < 3; i++ {
		assert.Equal(t, 3.0, trk.AtIndex(i).Curve)
		assert.Equal(t, 7.0, trk.AtIndex(i).Elev)
	}
	for i := 3; i < 5; i++ {
		assert.Zero(t, trk.AtIndex(i).Curve)
	}
}

func TestIndexWrapIsTotal(t *testing.T) {
	trk := buildTestTrack(t, []Section{{Hold: 10}})
	n := trk.SegmentCount()

	for _, k := range []int{-1, -7, -10, -31, 0, 3, 9, 10, 11, 1000003, -1000003} {
		want := trk.AtIndex(floorMod(k, n))
		if got := trk.AtIndex(k); got != want {
			t.Fatalf("AtIndex(%d) = segment %d, want %d", k, got.Index, want.Index)
		}
	}

	// Positions wrap the same way, negatives included.
	assert.Equal(t, 0, trk.AtPosition(0).Index)
	assert.Equal(t, 0, trk.AtPosition(trk.Length()).Index)
	assert.Equal(t, n-1, trk.AtPosition(-1).Index)
	assert.Equal(t, 2, trk.AtPosition(2*SegmentLength+1).Index)
}

func TestBuildIsDeterministic(t *testing.T) {
	def := TrackCatalog[0]
	a, err := BuildTrack(def, 99)
	require.NoError(t, err)
	b, err := BuildTrack(def, 99)
	require.NoError(t, err)

	require.Equal(t, a.SegmentCount(), b.SegmentCount())
	for i := 0; i < a.SegmentCount(); i++ {
		sa, sb := a.AtIndex(i), b.AtIndex(i)
		require.Equal(t, sa.Curve, sb.Curve, "curve at %d", i)
		require.Equal(t, sa.Elev, sb.Elev, "elev at %d", i)
		requireSameObstacle(t, sa.Left, sb.Left, i)
		requireSameObstacle(t, sa.Right, sb.Right, i)
		if (sa.Hazard == nil) != (sb.Hazard == nil) {
			t.Fatalf("hazard presence differs at %d", i)
		}
	}
}

func requireSameObstacle(t *testing.T, a, b *Obstacle, idx int) {
	t.Helper()
	if (a == nil) != (b == nil) {
		t.Fatalf("obstacle presence differs at segment %d", idx)
	}
	if a == nil {
		return
	}
	require.Equal(t, *a, *b, "obstacle at segment %d", idx)
}

func TestSceneryPlacementRules(t *testing.T) {
	trk := buildTestTrack(t, []Section{{Hold: 64}})

	placed := 0
	for i := 0; i < trk.SegmentCount(); i++ {
		seg := trk.AtIndex(i)
		if seg.Left == nil && seg.Right == nil {
			continue
		}
		placed++
		if i%ObstacleEvery != 0 {
			t.Fatalf("obstacle on segment %d, not a multiple of %d", i, ObstacleEvery)
		}
		if ob := seg.Left; ob != nil {
			assert.Less(t, ob.Offset, -ObstacleOffsetMin+1e-9, "left offset at %d", i)
			assert.Greater(t, ob.Offset, -ObstacleOffsetMax-1e-9, "left offset at %d", i)
			assert.Greater(t, ob.Width, 0.0)
		}
		if ob := seg.Right; ob != nil {
			assert.Greater(t, ob.Offset, ObstacleOffsetMin-1e-9, "right offset at %d", i)
			assert.Less(t, ob.Offset, ObstacleOffsetMax+1e-9, "right offset at %d", i)
			assert.Greater(t, ob.Width, 0.0)
		}
	}
	assert.Greater(t, placed, 0, "a 64-segment track should roll some scenery")
}

func TestHazardsLandOnAuthoredIndices(t *testing.T) {
	trk := buildTestTrack(t, []Section{{Hold: 20}},
		Hazard{Index: 5, Offset: 0.4, Width: 0.2, Kind: HazardCone},
		Hazard{Index: 12, Offset: -0.3, Width: 0.25, Kind: HazardOil},
	)

	for i := 0; i < trk.SegmentCount(); i++ {
		h := trk.AtIndex(i).Hazard
		switch i {
		case 5:
			require.NotNil(t, h)
			assert.Equal(t, HazardCone, h.Kind)
			assert.Equal(t, 0.4, h.Offset)
		case 12:
			require.NotNil(t, h)
			assert.Equal(t, HazardOil, h.Kind)
		default:
			assert.Nil(t, h, "unexpected hazard at %d", i)
		}
	}
	assert.Len(t, trk.Hazards(), 2)
}

func TestTrackLengthFollowsSegmentCount(t *testing.T) {
	trk := buildTestTrack(t, []Section{{Hold: 10}})
	assert.Equal(t, 10*SegmentLength, trk.Length())
}

func TestCatalogTracksAllBuild(t *testing.T) {
	for _, def := range TrackCatalog {
		trk, err := BuildTrack(def, 7)
		require.NoError(t, err, "track %s", def.ID)
		assert.Greater(t, trk.SegmentCount(), DrawDistance, "track %s shorter than the draw window", def.ID)
	}
}
