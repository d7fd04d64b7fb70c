// Command dots shows the DOTS promo poster in a desktop window.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/justdots/dots/standalone"
	"github.com/spf13/cobra"
)

var version = "dev" // set with -ldflags "-X main.version=..."

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger creates a logger with "HH:MM:SS.ms" timestamps at level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "dots",
	})
}

func newRootCmd() *cobra.Command {
	var (
		opts    standalone.Options
		verbose bool
	)

	root := &cobra.Command{
		Use:          "dots",
		Short:        "DOTS promo poster",
		Long:         `Shows the DOTS poster: an auto-advancing gallery of pixel-art dots, the collection facts, the mint sweepstakes and its terms.`,
		Version:      version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			log.SetDefault(newLogger(os.Stderr, level))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Debug("starting", "version", version, "assets", opts.AssetPath, "lang", opts.Lang)
			return standalone.Run(opts)
		},
	}

	flags := root.Flags()
	flags.StringVarP(&opts.AssetPath, "assets", "a", "", "folder or archive (zip, 7z, rar, tar.gz) holding dots/ and the logo")
	flags.StringVar(&opts.DataDir, "data-dir", "", "directory for config.json and screenshots (default: per-user data dir)")
	flags.StringVarP(&opts.Lang, "lang", "l", "", `display language, "en" or "es" (default: saved choice)`)
	flags.BoolVar(&opts.ReducedMotion, "reduced-motion", false, "signal a reduced-motion preference (honored when gallery.respectReducedMotion is true)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	return root
}
