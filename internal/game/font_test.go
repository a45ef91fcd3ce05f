package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func countLitPixels(ch rune) int {
	rows, ok := glyphRows[ch]
	if !ok {
		return 0
	}
	n := 0
	for _, row := range rows {
		for _, c := range row {
			if c == 'X' {
				n++
			}
		}
	}
	return n
}

func TestDrawCharPaintsOneRectPerLitPixel(t *testing.T) {
	for _, ch := range []rune{'A', '0', '!', ':'} {
		rc := newRecordCanvas(t)
		adv := DrawChar(rc, ch, 0, 0, 2, Palette.HudText, 1)
		assert.Equal(t, countLitPixels(ch), rc.rects, "glyph %q", ch)
		assert.Equal(t, float64(glyphAdvance*2), adv)
	}
}

func TestLowercaseFoldsToUppercase(t *testing.T) {
	lower := newRecordCanvas(t)
	upper := newRecordCanvas(t)
	DrawString(lower, "go fast", 0, 0, 1, Palette.HudText, 1)
	DrawString(upper, "GO FAST", 0, 0, 1, Palette.HudText, 1)
	assert.Equal(t, upper.rects, lower.rects)
}

func TestUnknownRunesAdvanceWithoutDrawing(t *testing.T) {
	rc := newRecordCanvas(t)
	adv := DrawChar(rc, '~', 0, 0, 3, Palette.HudText, 1)
	assert.Zero(t, rc.rects)
	assert.Equal(t, float64(glyphAdvance*3), adv, "layout stays stable for unknown runes")
}

func TestTextWidth(t *testing.T) {
	assert.Zero(t, TextWidth("", 2))
	assert.Equal(t, float64(glyphAdvance)*2-2, TextWidth("A", 2))
	assert.Equal(t, float64(3*glyphAdvance)*2-2, TextWidth("ABC", 2))
	assert.Equal(t, float64(glyphH*4), TextHeight(4))
}

func TestCenteredTextIsSymmetric(t *testing.T) {
	rc := newRecordCanvas(t)
	DrawStringCentered(rc, "II", 640, 0, 2, Palette.HudText, 1)

	minX, maxX := rc.rectAt[0][0], rc.rectAt[0][0]
	for _, r := range rc.rectAt {
		if r[0] < minX {
			minX = r[0]
		}
		if right := r[0] + r[2]; right > maxX {
			maxX = right
		}
	}
	mid := (minX + maxX) / 2
	assert.InDelta(t, 640, mid, float64(glyphAdvance)*2, "text centers around the anchor")
}

func TestTimeFormatting(t *testing.T) {
	assert.Equal(t, "-:--.--", formatTime(0))
	assert.Equal(t, "-:--.--", formatTime(-3))
	assert.Equal(t, "0:05.50", formatTime(5.5))
	assert.Equal(t, "1:23.22", formatTime(83.22))
	assert.Equal(t, "2:00.00", formatTime(120))
}
