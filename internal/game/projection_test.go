package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStraightTrackProjectsDeadCenter(t *testing.T) {
	trk := buildTestTrack(t, []Section{{Hold: 80}})
	views := ProjectWindow(trk, 0, 0, 1280, 720, nil)
	require.NotEmpty(t, views)

	for i, v := range views {
		assert.InDelta(t, 640.0, v.X, 1e-9, "view %d drifts off center", i)
	}
}

func TestProjectionIsFiniteEverywhere(t *testing.T) {
	for _, def := range TrackCatalog {
		trk, err := BuildTrack(def, 3)
		require.NoError(t, err)

		positions := []float64{
			0, 1, SegmentLength / 2, SegmentLength,
			trk.Length() - 1, trk.Length(), trk.Length() + 50, -SegmentLength * 1.5,
		}
		for _, pos := range positions {
			views := ProjectWindow(trk, pos, 0.4, 1280, 720, nil)
			assert.LessOrEqual(t, len(views), DrawDistance)
			for i, v := range views {
				if math.IsNaN(v.X) || math.IsInf(v.X, 0) ||
					math.IsNaN(v.Y) || math.IsInf(v.Y, 0) ||
					math.IsNaN(v.HalfWidth) || math.IsInf(v.HalfWidth, 0) {
					t.Fatalf("track %s pos %v view %d not finite: %+v", def.ID, pos, i, v)
				}
				assert.Positive(t, v.HalfWidth, "track %s pos %v view %d", def.ID, pos, i)
			}
		}
	}
}

func TestCurveAccumulatesOnlyBehindTheBend(t *testing.T) {
	// One single curved segment at index 6; everything up to and including
	// it must project dead center, everything past it must be bent. That
	// pins the accumulate-after-use ordering exactly.
	trk := buildTestTrack(t, []Section{{Hold: 6}, {Hold: 1, Curve: 5}, {Hold: 70}})
	require.Greater(t, trk.SegmentCount(), DrawDistance)

	views := ProjectWindow(trk, 0, 0, 1280, 720, nil)
	require.NotEmpty(t, views)
	for _, v := range views {
		if v.Seg.Index <= 6 {
			assert.InDelta(t, 640.0, v.X, 1e-9, "segment %d bent before the curve", v.Seg.Index)
		} else {
			assert.Greater(t, v.X, 640.0, "segment %d missing the accumulated bend", v.Seg.Index)
		}
	}
}

func TestProjectionDepthOrdering(t *testing.T) {
	trk := buildTestTrack(t, []Section{{Hold: 80}})
	views := ProjectWindow(trk, SegmentLength*2.5, 0, 1280, 720, nil)
	require.Greater(t, len(views), 2)

	for i := 1; i < len(views); i++ {
		assert.Less(t, views[i].Scale, views[i-1].Scale, "scale must shrink with distance")
		assert.Less(t, views[i].HalfWidth, views[i-1].HalfWidth)
		assert.GreaterOrEqual(t, views[i].Fog, views[i-1].Fog, "fog never thins with distance")
	}
	assert.GreaterOrEqual(t, views[0].Fog, 0.0)
	assert.LessOrEqual(t, views[len(views)-1].Fog, 1.0)
}

func TestLateralOffsetShiftsTheRoad(t *testing.T) {
	trk := buildTestTrack(t, []Section{{Hold: 80}})

	// Camera right of center pushes the road left on screen.
	right := ProjectWindow(trk, 0, 0.5, 1280, 720, nil)
	left := ProjectWindow(trk, 0, -0.5, 1280, 720, nil)
	require.NotEmpty(t, right)
	assert.Less(t, right[0].X, 640.0)
	assert.Greater(t, left[0].X, 640.0)
}

func TestProjectionReusesTheCallerSlice(t *testing.T) {
	trk := buildTestTrack(t, []Section{{Hold: 80}})
	buf := make([]SegmentView, 0, DrawDistance)
	views := ProjectWindow(trk, 0, 0, 1280, 720, buf)
	assert.Equal(t, cap(buf), cap(views), "no reallocation when capacity suffices")

	again := ProjectWindow(trk, SegmentLength*3, 0, 1280, 720, views)
	assert.Equal(t, cap(buf), cap(again))
}

func TestElevationLowersTheHorizonRow(t *testing.T) {
	flat := buildTestTrack(t, []Section{{Hold: 80}})
	hilly := buildTestTrack(t, []Section{{Hold: 80, Hill: 40}})

	fv := ProjectWindow(flat, 0, 0, 1280, 720, nil)
	hv := ProjectWindow(hilly, 0, 0, 1280, 720, nil)
	require.NotEmpty(t, fv)
	require.NotEmpty(t, hv)

	// Uphill accumulates elevation, so distant rows sit higher on screen
	// (smaller Y) than on the flat track.
	last := len(fv) - 1
	if len(hv)-1 < last {
		last = len(hv) - 1
	}
	assert.Less(t, hv[last].Y, fv[last].Y)
}
