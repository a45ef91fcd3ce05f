package game

type VehicleKind uint8

const (
	KindCoupe VehicleKind = iota
	KindMuscle
	KindCompact
	KindBuggy
	vehicleKindCount
)

// VehicleSpec is a catalog entry. Ratings run 0..RatingScale and resolve
// into Dynamics at race start.
type VehicleSpec struct {
	ID       string
	Name     string
	Kind     VehicleKind
	TopSpeed int
	Accel    int
	Handling int
	Offroad  int
	Body     RGB
	Trim     RGB
}

// DynamicsFor resolves ratings into physics numbers. On dirt each stat
// blends linearly toward the penalty floor by the off-road rating.
func (s VehicleSpec) DynamicsFor(trk *Track) Dynamics {
	top := TopSpeedFloor + TopSpeedPerRating*float64(s.TopSpeed)
	acc := AccelFloor + AccelPerRating*float64(s.Accel)
	grip := GripFloor + GripPerRating*float64(s.Handling)
	if trk != nil && trk.Surface == SurfaceDirt {
		k := lerpF(OffroadPenaltyFloor, 1.0, float64(s.Offroad)/float64(RatingScale))
		top *= k
		acc *= k
		grip *= k
	}
	return Dynamics{TopSpeed: top, Accel: acc, Grip: grip}
}

// VehicleCatalog lists the selectable cars in menu order.
var VehicleCatalog = []VehicleSpec{
	{
		// All-rounder — the honest default.
		ID: "falcon", Name: "GT Falcon", Kind: KindCoupe,
		TopSpeed: 7, Accel: 6, Handling: 7, Offroad: 4,
		Body: RGB{R: 196, G: 40, B: 40}, Trim: RGB{R: 240, G: 236, B: 228},
	},
	{
		// Straight-line monster that hates corners.
		ID: "brute", Name: "V8 Brute", Kind: KindMuscle,
		TopSpeed: 9, Accel: 8, Handling: 3, Offroad: 2,
		Body: RGB{R: 36, G: 40, B: 52}, Trim: RGB{R: 230, G: 170, B: 60},
	},
	{
		// Slow top end, glued to the road.
		ID: "dart", Name: "City Dart", Kind: KindCompact,
		TopSpeed: 5, Accel: 7, Handling: 9, Offroad: 5,
		Body: RGB{R: 70, G: 150, B: 200}, Trim: RGB{R: 240, G: 240, B: 240},
	},
	{
		// Built for the shoulder; dirt barely slows it.
		ID: "duster", Name: "Dune Duster", Kind: KindBuggy,
		TopSpeed: 6, Accel: 6, Handling: 6, Offroad: 9,
		Body: RGB{R: 200, G: 140, B: 50}, Trim: RGB{R: 60, G: 50, B: 40},
	},
}
