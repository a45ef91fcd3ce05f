package version

// Set via -ldflags at build time.
var (
	Version = "dev"
	Commit  = ""
)

var FullVersion = compose()

func compose() string {
	v := Version
	if Commit != "" {
		v += "+" + Commit
	}
	return v
}
