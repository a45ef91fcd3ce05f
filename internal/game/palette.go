package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

func (c RGB) Add(dr, dg, db int) RGB {
	r := int(c.R) + dr
	g := int(c.G) + dg
	b := int(c.B) + db
	if r < 0 {
		r = 0
	} else if r > 255 {
		r = 255
	}
	if g < 0 {
		g = 0
	} else if g > 255 {
		g = 255
	}
	if b < 0 {
		b = 0
	} else if b > 255 {
		b = 255
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}

var Palette = struct {
	RumbleRed    RGB
	RumbleWhite  RGB
	LaneMark     RGB
	FinishLight  RGB
	FinishDark   RGB
	HudText      RGB
	HudDim       RGB
	HudAccent    RGB
	HudWarn      RGB
	HudPanel     RGB
	StatBarFull  RGB
	StatBarEmpty RGB
	Smoke        RGB
	Dust         RGB
	Spark        RGB
	FireHot      RGB
	FireMid      RGB
	FireCool     RGB
	TireSmoke    RGB
	Rain         RGB
	Snow         RGB
}{
	RumbleRed:    RGB{R: 204, G: 54, B: 47},
	RumbleWhite:  RGB{R: 238, G: 238, B: 232},
	LaneMark:     RGB{R: 228, G: 228, B: 218},
	FinishLight:  RGB{R: 235, G: 235, B: 230},
	FinishDark:   RGB{R: 28, G: 28, B: 30},
	HudText:      RGB{R: 240, G: 240, B: 235},
	HudDim:       RGB{R: 150, G: 152, B: 158},
	HudAccent:    RGB{R: 255, G: 200, B: 90},
	HudWarn:      RGB{R: 235, G: 80, B: 60},
	HudPanel:     RGB{R: 18, G: 20, B: 26},
	StatBarFull:  RGB{R: 120, G: 200, B: 110},
	StatBarEmpty: RGB{R: 58, G: 64, B: 70},
	Smoke:        RGB{R: 120, G: 120, B: 125},
	Dust:         RGB{R: 176, G: 158, B: 116},
	Spark:        RGB{R: 255, G: 224, B: 140},
	FireHot:      RGB{R: 255, G: 210, B: 110},
	FireMid:      RGB{R: 255, G: 150, B: 70},
	FireCool:     RGB{R: 190, G: 70, B: 45},
	TireSmoke:    RGB{R: 200, G: 200, B: 205},
	Rain:         RGB{R: 175, G: 195, B: 220},
	Snow:         RGB{R: 235, G: 242, B: 250},
}

// rainbowCycle is the road band cycle used by theme-cycling tracks.
var rainbowCycle = [6]RGB{
	{R: 196, G: 68, B: 78},
	{R: 206, G: 134, B: 62},
	{R: 198, G: 186, B: 70},
	{R: 84, G: 168, B: 92},
	{R: 70, G: 120, B: 190},
	{R: 138, G: 84, B: 178},
}
