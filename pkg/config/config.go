package config

// this holds the resolved configuration values from CLI
var (
	Seed       uint64 // world seed, 0 derives one from the clock
	Width      int    // window width in pixels
	Height     int    // window height in pixels
	Fullscreen bool   // borderless fullscreen on the primary monitor
	NoVsync    bool   // disable vsync
	Bumpers    bool   // road edges bounce the car back instead of letting it run wide
	DB         string // path of the lap-record database
	Mute       bool   // start with all audio muted
	LogLevel   string // sets the log level (zap log level values)
)
