package game

// A 5x7 pixel font kept in source so the binary needs no asset files.
// Glyphs are authored as row strings ('X' = lit) and packed into bit
// rows at init. Text is drawn through the Canvas as scaled pixel rects,
// which keeps it working on any backend and trivially testable.

const (
	glyphW = 5
	glyphH = 7
	// Advance includes one column of spacing.
	glyphAdvance = glyphW + 1
)

var glyphRows = map[rune][glyphH]string{
	'A': {".XXX.", "X...X", "X...X", "XXXXX", "X...X", "X...X", "X...X"},
	'B': {"XXXX.", "X...X", "X...X", "XXXX.", "X...X", "X...X", "XXXX."},
	'C': {".XXX.", "X...X", "X....", "X....", "X....", "X...X", ".XXX."},
	'D': {"XXXX.", "X...X", "X...X", "X...X", "X...X", "X...X", "XXXX."},
	'E': {"XXXXX", "X....", "X....", "XXXX.", "X....", "X....", "XXXXX"},
	'F': {"XXXXX", "X....", "X....", "XXXX.", "X....", "X....", "X...."},
	'G': {".XXX.", "X...X", "X....", "X.XXX", "X...X", "X...X", ".XXX."},
	'H': {"X...X", "X...X", "X...X", "XXXXX", "X...X", "X...X", "X...X"},
	'I': {".XXX.", "..X..", "..X..", "..X..", "..X..", "..X..", ".XXX."},
	'J': {"..XXX", "...X.", "...X.", "...X.", "...X.", "X..X.", ".XX.."},
	'K': {"X...X", "X..X.", "X.X..", "XX...", "X.X..", "X..X.", "X...X"},
	'L': {"X....", "X....", "X....", "X....", "X....", "X....", "XXXXX"},
	'M': {"X...X", "XX.XX", "X.X.X", "X.X.X", "X...X", "X...X", "X...X"},
	'N': {"X...X", "XX..X", "X.X.X", "X..XX", "X...X", "X...X", "X...X"},
	'O': {".XXX.", "X...X", "X...X", "X...X", "X...X", "X...X", ".XXX."},
	'P': {"XXXX.", "X...X", "X...X", "XXXX.", "X....", "X....", "X...."},
	'Q': {".XXX.", "X...X", "X...X", "X...X", "X.X.X", "X..X.", ".XX.X"},
	'R': {"XXXX.", "X...X", "X...X", "XXXX.", "X.X..", "X..X.", "X...X"},
	'S': {".XXXX", "X....", "X....", ".XXX.", "....X", "....X", "XXXX."},
	'T': {"XXXXX", "..X..", "..X..", "..X..", "..X..", "..X..", "..X.."},
	'U': {"X...X", "X...X", "X...X", "X...X", "X...X", "X...X", ".XXX."},
	'V': {"X...X", "X...X", "X...X", "X...X", "X...X", ".X.X.", "..X.."},
	'W': {"X...X", "X...X", "X...X", "X.X.X", "X.X.X", "XX.XX", "X...X"},
	'X': {"X...X", "X...X", ".X.X.", "..X..", ".X.X.", "X...X", "X...X"},
	'Y': {"X...X", "X...X", ".X.X.", "..X..", "..X..", "..X..", "..X.."},
	'Z': {"XXXXX", "....X", "...X.", "..X..", ".X...", "X....", "XXXXX"},
	'0': {".XXX.", "X...X", "X..XX", "X.X.X", "XX..X", "X...X", ".XXX."},
	'1': {"..X..", ".XX..", "..X..", "..X..", "..X..", "..X..", ".XXX."},
	'2': {".XXX.", "X...X", "....X", "...X.", "..X..", ".X...", "XXXXX"},
	'3': {"XXXX.", "....X", "....X", ".XXX.", "....X", "....X", "XXXX."},
	'4': {"...X.", "..XX.", ".X.X.", "X..X.", "XXXXX", "...X.", "...X."},
	'5': {"XXXXX", "X....", "XXXX.", "....X", "....X", "X...X", ".XXX."},
	'6': {".XXX.", "X....", "X....", "XXXX.", "X...X", "X...X", ".XXX."},
	'7': {"XXXXX", "....X", "...X.", "..X..", ".X...", ".X...", ".X..."},
	'8': {".XXX.", "X...X", "X...X", ".XXX.", "X...X", "X...X", ".XXX."},
	'9': {".XXX.", "X...X", "X...X", ".XXXX", "....X", "....X", ".XXX."},
	':': {".....", "..X..", "..X..", ".....", "..X..", "..X..", "....."},
	'.': {".....", ".....", ".....", ".....", ".....", "..XX.", "..XX."},
	',': {".....", ".....", ".....", ".....", ".....", "..X..", ".X..."},
	'/': {"....X", "...X.", "...X.", "..X..", ".X...", ".X...", "X...."},
	'-': {".....", ".....", ".....", "XXXXX", ".....", ".....", "....."},
	'+': {".....", "..X..", "..X..", "XXXXX", "..X..", "..X..", "....."},
	'%': {"XX..X", "XX.X.", "...X.", "..X..", ".X...", ".X.XX", "X..XX"},
	'\'': {"..X..", "..X..", ".....", ".....", ".....", ".....", "....."},
	'!': {"..X..", "..X..", "..X..", "..X..", "..X..", ".....", "..X.."},
	'(': {"...X.", "..X..", ".X...", ".X...", ".X...", "..X..", "...X."},
	')': {".X...", "..X..", "...X.", "...X.", "...X.", "..X..", ".X..."},
}

// glyphBits holds each glyph packed as 7 row masks, bit 4 = left column.
var glyphBits map[rune][glyphH]uint8

func init() {
	glyphBits = make(map[rune][glyphH]uint8, len(glyphRows))
	for r, rows := range glyphRows {
		var packed [glyphH]uint8
		for y, row := range rows {
			var bits uint8
			for x := 0; x < glyphW && x < len(row); x++ {
				if row[x] == 'X' {
					bits |= 1 << uint(glyphW-1-x)
				}
			}
			packed[y] = bits
		}
		glyphBits[r] = packed
	}
}

// DrawChar draws one glyph at pixel scale and returns its advance.
// Unknown runes advance without drawing.
func DrawChar(c Canvas, ch rune, x, y, scale float64, col RGB, alpha float64) float64 {
	if ch >= 'a' && ch <= 'z' {
		ch -= 'a' - 'A'
	}
	adv := glyphAdvance * scale
	bits, ok := glyphBits[ch]
	if !ok {
		return adv
	}
	for row := 0; row < glyphH; row++ {
		b := bits[row]
		if b == 0 {
			continue
		}
		for colIdx := 0; colIdx < glyphW; colIdx++ {
			if b&(1<<uint(glyphW-1-colIdx)) != 0 {
				c.Rect(x+float64(colIdx)*scale, y+float64(row)*scale, scale, scale, col, alpha)
			}
		}
	}
	return adv
}

// DrawString draws s left-aligned at (x, y top edge).
func DrawString(c Canvas, s string, x, y, scale float64, col RGB, alpha float64) {
	for _, ch := range s {
		x += DrawChar(c, ch, x, y, scale, col, alpha)
	}
}

// DrawStringCentered centres s horizontally around cx.
func DrawStringCentered(c Canvas, s string, cx, y, scale float64, col RGB, alpha float64) {
	DrawString(c, s, cx-TextWidth(s, scale)/2, y, scale, col, alpha)
}

// TextWidth returns the rendered width of s, without trailing spacing.
func TextWidth(s string, scale float64) float64 {
	n := 0
	for range s {
		n++
	}
	if n == 0 {
		return 0
	}
	return float64(n*glyphAdvance)*scale - scale
}

// TextHeight returns the glyph height at the given scale.
func TextHeight(scale float64) float64 { return glyphH * scale }
