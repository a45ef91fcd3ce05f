package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloorDivMod(t *testing.T) {
	cases := []struct{ a, b, div, mod int }{
		{7, 3, 2, 1},
		{-7, 3, -3, 2},
		{-1, 10, -1, 9},
		{-10, 10, -1, 0},
		{0, 5, 0, 0},
		{9, 10, 0, 9},
		{-31, 10, -4, 9},
	}
	for _, c := range cases {
		assert.Equal(t, c.div, floorDiv(c.a, c.b), "floorDiv(%d, %d)", c.a, c.b)
		assert.Equal(t, c.mod, floorMod(c.a, c.b), "floorMod(%d, %d)", c.a, c.b)
	}
}

func TestApproach(t *testing.T) {
	assert.Equal(t, 5.0, approach(0, 10, 5))
	assert.Equal(t, 10.0, approach(8, 10, 5), "never overshoots upward")
	assert.Equal(t, 10.0, approach(14, 10, 5), "never overshoots downward")
	assert.Equal(t, 3.0, approach(3, 3, 5))
	assert.Equal(t, -2.0, approach(0, -10, 2))
}

func TestClamps(t *testing.T) {
	assert.Equal(t, 3, clamp(7, 0, 3))
	assert.Equal(t, 0, clamp(-2, 0, 3))
	assert.Equal(t, 2, clamp(2, 0, 3))
	assert.Equal(t, 1.0, clampF(4.2, -1, 1))
	assert.Equal(t, -1.0, clampF(-4.2, -1, 1))
	assert.Equal(t, 2.5, absF(-2.5))
	assert.Equal(t, 7.0, lerpF(5, 9, 0.5))
}

func TestRandIsDeterministicPerSeed(t *testing.T) {
	a := NewRand(1234)
	b := NewRand(1234)
	for i := 0; i < 100; i++ {
		if a.NextU64() != b.NextU64() {
			t.Fatalf("streams diverge at step %d", i)
		}
	}

	c := NewRand(1235)
	assert.NotEqual(t, NewRand(1234).NextU64(), c.NextU64(), "different seeds differ")
}

func TestRandZeroSeedStillRuns(t *testing.T) {
	r := NewRand(0)
	assert.NotZero(t, r.NextU64(), "xorshift must not stick at zero")
}

func TestRandRanges(t *testing.T) {
	r := NewRand(99)
	for i := 0; i < 500; i++ {
		n := r.Range(3, 7)
		if n < 3 || n > 7 {
			t.Fatalf("Range out of bounds: %d", n)
		}
		f := r.RangeF(-2, 2)
		if f < -2 || f > 2 {
			t.Fatalf("RangeF out of bounds: %v", f)
		}
		u := r.Float64()
		if u < 0 || u >= 1 {
			t.Fatalf("Float64 out of bounds: %v", u)
		}
	}
	assert.Equal(t, 5, r.Range(5, 5))
	assert.Equal(t, 0, r.Intn(0))
}

func TestHash2DIsDeterministicAndSpreads(t *testing.T) {
	assert.Equal(t, hash2D(42, 10, 1), hash2D(42, 10, 1))
	assert.NotEqual(t, hash2D(42, 10, 0), hash2D(42, 10, 1), "sides roll independently")
	assert.NotEqual(t, hash2D(42, 10, 0), hash2D(42, 11, 0))
	assert.NotEqual(t, hash2D(42, 10, 0), hash2D(43, 10, 0), "seed changes everything")
	assert.Equal(t, hash2D(7, -5, 2), hash2D(7, -5, 2), "negative coordinates are fine")
}

func TestColorLerp(t *testing.T) {
	a := RGB{R: 0, G: 100, B: 200}
	b := RGB{R: 200, G: 100, B: 0}
	assert.Equal(t, a, lerpRGB(a, b, 0))
	assert.Equal(t, b, lerpRGB(a, b, 1))
	mid := lerpRGB(a, b, 0.5)
	assert.Equal(t, uint8(100), mid.R)
	assert.Equal(t, uint8(100), mid.G)

	assert.Equal(t, a, lerpRGB(a, b, -0.5), "t clamps low")
	assert.Equal(t, b, lerpRGB(a, b, 1.5), "t clamps high")
}

func TestRGBHelpers(t *testing.T) {
	c := RGB{R: 100, G: 200, B: 50}
	half := c.Mul(127)
	assert.InDelta(t, 50, int(half.R), 1)
	assert.InDelta(t, 99, int(half.G), 1)

	assert.Equal(t, RGB{R: 255, G: 0, B: 60}, c.Add(200, -250, 10))
}
