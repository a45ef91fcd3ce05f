package game

// Window defaults.
const (
	WindowWidth  = 1280
	WindowHeight = 720
)

// Road projection (world units).
// RoadHalfWidth equals CameraHeight so the road spans the full screen
// width exactly at the bottom edge.
const (
	SegmentLength = 200.0
	RoadHalfWidth = 1000.0
	CameraHeight  = 1000.0
	CameraDepth   = 0.84
	DrawDistance  = 60
	CurveFactor   = 0.2
	ElevFactor    = 1.0
	FogDensity    = 2.6
)

// Road furniture, as fractions of the projected half-width.
const (
	RumbleOuterFrac = 1.12
	LaneDashFrac    = 0.018
	FinishBandSegs  = 2
)

// Lateral boundaries, in road-half-width units measured from the road
// centre. OffRoadBoundary and BarrierBoundary are independent tuning
// values; neither is derived from the other.
const (
	OffRoadBoundary  = 1.0
	BarrierBoundary  = 2.5
	VehicleHalfWidth = 0.16
)

// Collision severity thresholds, as fractions of the vehicle's top speed.
const (
	BarrierExplodeFrac = 0.65
	HazardMinFrac      = 0.15
	HazardExplodeFrac  = 0.60
	SceneryMinFrac     = 0.08
	SceneryExplodeFrac = 0.45
)

// Crash lifecycle.
const (
	SpinDuration       = 1.1
	ExplodeDuration    = 2.2
	SpinSpeedKeep      = 0.30
	SpinRate           = 9.0 // rad/s of visual heading while crashed
	CrashCenterPull    = 1.6
	RestartSpeedFrac   = 0.25
	RespawnLateralMax  = 0.80
	InvincibleDuration = 2.0
)

// Steering and grip.
// SteerReleaseRate must never be below SteerEngageRate: letting go
// straightens faster than turning in.
const (
	SteerEngageRate  = 5.5
	SteerReleaseRate = 8.0
	SteerForce       = 3.2
	SteerCurveShape  = 0.7 // peak response lands at a moderate speed fraction
	CentrifugalForce = 0.42
	ScrubThreshold   = 1.2
	ScrubDrag        = 0.8
	CrawlSpeedFrac   = 0.01
)

// Off-road surface and arcade walls.
const (
	OffRoadDrag     = 1.8
	WallRestitution = 0.45
	WallSpeedKeep   = 0.82
)

// Forward speed envelope.
const (
	MaxFrameStep     = 0.1
	ReverseSpeedFrac = 0.3
	BrakeRate        = 8000.0
	CoastRate        = 1500.0
)

// Vehicle rating scale; catalog ratings run 0..RatingScale.
const (
	RatingScale         = 10
	TopSpeedFloor       = 7000.0
	TopSpeedPerRating   = 500.0
	AccelFloor          = 2000.0
	AccelPerRating      = 220.0
	GripFloor           = 1.8
	GripPerRating       = 0.22
	OffroadPenaltyFloor = 0.55 // stat factor at off-road rating 0
)

// Visual spring (tilt and suspension bounce).
const (
	TiltSteerGain = 0.55
	TiltDriftGain = 0.22
	TiltRate      = 6.0
	BounceSpring  = 30.0
	BounceDamp    = 8.0
	BounceRoad    = 500.0
	BounceDirt    = 1800.0
)

// Scenery placement. Offsets are road-half-width units past the edge,
// kept well inside the barrier boundary.
const (
	ObstacleEvery     = 4
	ObstacleChancePct = 62
	ObstacleOffsetMin = 1.25
	ObstacleOffsetMax = 2.2
)

// Race flow.
const (
	CountdownSeconds = 3
	SpeedometerUnit  = 0.018 // world units/s to display km/h
)

// Particles.
const MaxParticles = 4000
