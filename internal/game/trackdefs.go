package game

// TrackCatalog lists the authored tracks in selection order.
// Hazard indices are hand-placed against each track's section layout;
// BuildTrack rejects any that fall outside the expanded geometry.
var TrackCatalog = []TrackDef{
	{
		// Easy intro — long straights, two honest corners, one soft hill.
		ID:      "meadow-loop",
		Name:    "Meadow Loop",
		Theme:   &ThemeMeadow,
		Surface: SurfacePaved,
		Laps:    3,
		Sections: []Section{
			{Hold: 12},
			{Enter: 8, Hold: 10, Leave: 8, Curve: 2},
			{Hold: 10},
			{Enter: 6, Hold: 8, Leave: 6, Curve: -2.5},
			{Enter: 10, Hold: 6, Leave: 10, Hill: 30},
			{Enter: 10, Hold: 6, Leave: 10, Hill: -30},
			{Enter: 6, Hold: 10, Leave: 6, Curve: 1.5},
			{Hold: 8},
		},
		Hazards: []Hazard{
			{Index: 40, Offset: 0.5, Width: 0.18, Kind: HazardCone},
			{Index: 42, Offset: -0.5, Width: 0.18, Kind: HazardCone},
			{Index: 95, Offset: 0.1, Width: 0.24, Kind: HazardBarrel},
		},
	},
	{
		// Mountain pass — stacked S-curves into a long climb, rockfall zones.
		ID:      "alpine-pass",
		Name:    "Alpine Pass",
		Theme:   &ThemeAlpine,
		Surface: SurfacePaved,
		Laps:    3,
		Sections: []Section{
			{Hold: 10},
			{Enter: 6, Hold: 12, Leave: 6, Curve: 3.5, Hill: 20},
			{Enter: 8, Hold: 10, Leave: 8, Curve: -4, Hill: 25},
			{Enter: 4, Hold: 6, Leave: 4, Curve: 2},
			{Enter: 12, Hold: 10, Leave: 12, Hill: 45},
			{Enter: 6, Hold: 8, Leave: 6, Curve: -4.5, Hill: -30},
			{Enter: 6, Hold: 8, Leave: 6, Curve: 4.5, Hill: -30},
			{Enter: 4, Hold: 8, Leave: 4, Curve: -2.5},
			{Hold: 6},
		},
		Hazards: []Hazard{
			{Index: 52, Offset: -0.45, Width: 0.2, Kind: HazardRock},
			{Index: 88, Offset: 0.35, Width: 0.2, Kind: HazardRock},
			{Index: 120, Offset: -0.2, Width: 0.2, Kind: HazardRock},
			{Index: 140, Offset: 0.45, Width: 0.24, Kind: HazardBarrel},
		},
	},
	{
		// Night city — wet streets, cone chicanes, oil near the exits.
		ID:      "night-run",
		Name:    "Night Run",
		Theme:   &ThemeNightCity,
		Surface: SurfacePaved,
		Laps:    3,
		Sections: []Section{
			{Hold: 14},
			{Enter: 5, Hold: 8, Leave: 5, Curve: 2.5},
			{Enter: 5, Hold: 8, Leave: 5, Curve: -2.5},
			{Hold: 10},
			{Enter: 8, Hold: 12, Leave: 8, Curve: 4},
			{Enter: 4, Hold: 6, Leave: 4, Curve: -1.5, Hill: 10},
			{Enter: 4, Hold: 6, Leave: 4, Hill: -10},
			{Enter: 6, Hold: 10, Leave: 6, Curve: -3.5},
			{Hold: 12},
		},
		Hazards: []Hazard{
			{Index: 20, Offset: 0, Width: 0.3, Kind: HazardOil},
			{Index: 58, Offset: 0.55, Width: 0.18, Kind: HazardCone},
			{Index: 60, Offset: -0.55, Width: 0.18, Kind: HazardCone},
			{Index: 100, Offset: -0.15, Width: 0.3, Kind: HazardOil},
			{Index: 130, Offset: 0.3, Width: 0.24, Kind: HazardBarrel},
			{Index: 144, Offset: -0.4, Width: 0.18, Kind: HazardCone},
		},
	},
	{
		// Desert rally — loose surface, wide jumps of elevation, buried rocks.
		ID:      "dune-rally",
		Name:    "Dune Rally",
		Theme:   &ThemeDesertDusk,
		Surface: SurfaceDirt,
		Laps:    2,
		Sections: []Section{
			{Hold: 10},
			{Enter: 8, Hold: 14, Leave: 8, Curve: 3, Hill: 15},
			{Enter: 10, Hold: 8, Leave: 10, Curve: -3.5, Hill: -15},
			{Enter: 12, Hold: 8, Leave: 12, Hill: 35},
			{Enter: 12, Hold: 8, Leave: 12, Hill: -35},
			{Enter: 6, Hold: 12, Leave: 6, Curve: 4},
			{Hold: 8},
		},
		Hazards: []Hazard{
			{Index: 45, Offset: 0.4, Width: 0.22, Kind: HazardRock},
			{Index: 90, Offset: -0.5, Width: 0.22, Kind: HazardRock},
			{Index: 130, Offset: 0.15, Width: 0.22, Kind: HazardRock},
			{Index: 155, Offset: -0.3, Width: 0.24, Kind: HazardBarrel},
		},
	},
	{
		// Rainbow ribbon — flowing full-speed S-es over huge crests.
		ID:      "rainbow-ribbon",
		Name:    "Rainbow Ribbon",
		Theme:   &ThemeRainbow,
		Surface: SurfacePaved,
		Laps:    2,
		Sections: []Section{
			{Hold: 8},
			{Enter: 10, Hold: 6, Leave: 10, Curve: 3, Hill: 30},
			{Enter: 10, Hold: 6, Leave: 10, Curve: -3, Hill: -30},
			{Enter: 10, Hold: 6, Leave: 10, Curve: 3.5, Hill: 30},
			{Enter: 10, Hold: 6, Leave: 10, Curve: -3.5, Hill: -30},
			{Enter: 14, Hold: 10, Leave: 14, Hill: 55},
			{Enter: 14, Hold: 10, Leave: 14, Hill: -55},
			{Hold: 12},
		},
		Hazards: []Hazard{
			{Index: 60, Offset: 0, Width: 0.25, Kind: HazardBarrel},
			{Index: 120, Offset: -0.6, Width: 0.18, Kind: HazardCone},
			{Index: 122, Offset: 0.6, Width: 0.18, Kind: HazardCone},
			{Index: 170, Offset: 0.2, Width: 0.3, Kind: HazardOil},
		},
	},
}
