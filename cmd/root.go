package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"roadburn/internal/game"
	"roadburn/internal/records"
	"roadburn/log"
	"roadburn/pkg/config"
	"roadburn/version"
)

const envPrefix = "ROADBURN"

// rootCmd launches the game directly; there are no subcommands.
var rootCmd = &cobra.Command{
	Use:     "roadburn",
	Short:   "Arcade racer over a fake-perspective road",
	Version: version.FullVersion,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGame()
	},
}

// Execute is called by main.main(). It only needs to happen once.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().Uint64Var(&config.Seed, "seed", 0,
		"world seed (0 derives one from the clock)")
	rootCmd.Flags().IntVar(&config.Width, "width", 1280, "window width")
	rootCmd.Flags().IntVar(&config.Height, "height", 720, "window height")
	rootCmd.Flags().BoolVar(&config.Fullscreen, "fullscreen", false,
		"fullscreen on the primary monitor")
	rootCmd.Flags().BoolVar(&config.NoVsync, "no-vsync", false, "disable vsync")
	rootCmd.Flags().BoolVar(&config.Bumpers, "bumpers", false,
		"arcade wall mode: road edges bounce the car back instead of letting it run wide")
	rootCmd.Flags().StringVar(&config.DB, "db", "roadburn.db", "lap-record database path")
	rootCmd.Flags().BoolVar(&config.Mute, "mute", false, "start with audio muted")
	rootCmd.Flags().StringVar(&config.LogLevel, "log-level", "info", "log level (zap values)")
}

// initConfig binds ROADBURN_* environment variables onto the flags.
func initConfig() {
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	bindFlags(rootCmd, viper.GetViper())
}

// Bind each cobra flag to its associated viper configuration (environment
// variable), e.g. --no-vsync to ROADBURN_NO_VSYNC.
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// Environment variables can't have dashes in them, so bind them to
		// their equivalent keys with underscores.
		if strings.Contains(f.Name, "-") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			if err := v.BindEnv(f.Name,
				fmt.Sprintf("%s_%s", envPrefix, envVarSuffix)); err != nil {
				fmt.Fprintf(os.Stderr, "Could not bind env var %s: %v", f.Name, err)
			}
		}
		// Apply the viper value when the flag was not set on the command line.
		if !f.Changed && v.IsSet(f.Name) {
			val := v.Get(f.Name)
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				fmt.Fprintf(os.Stderr, "Could not set flag value for %s: %v", f.Name, err)
			}
		}
	})
}

func runGame() error {
	log.InitDevelopmentLogger(log.ParseLevel(config.LogLevel))
	lg := log.Logger.Sugar()

	lg.Infow("roadburn", "version", version.FullVersion)

	// A broken records database downgrades to a session without persistence.
	var keeper game.RecordKeeper
	if store, err := records.Open(config.DB); err != nil {
		lg.Warnw("lap records unavailable", "db", config.DB, "error", err)
	} else {
		keeper = store
		defer store.Close()
	}

	opts := game.Options{
		Width:      config.Width,
		Height:     config.Height,
		Fullscreen: config.Fullscreen,
		NoVsync:    config.NoVsync,
		Seed:       config.Seed,
		Bumpers:    config.Bumpers,
		Mute:       config.Mute,
	}
	return game.RunDesktop(opts, keeper, lg)
}
