// Command email-extract runs the email content extraction engine against
// raw email files: one at a time with JSON on stdout, or a whole directory
// through a worker pool.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/skyhighcrm/email-extraction/internal/config"
)

var (
	cfgPath string
	rawMode bool

	cfg    *config.Config
	logger zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "email-extract",
	Short: "Extract structured content from raw emails",
	Long: `email-extract normalizes raw email bodies (HTML or plain text) and
pulls out contact details, financial line items, flight segments, booking
references, signatures and quoted sections as JSON.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		logger = newLogger(cfg.LogLevel)
		return nil
	},
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(writer).Level(lvl).With().Timestamp().Logger()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to YAML config file")
	rootCmd.PersistentFlags().BoolVar(&rawMode, "raw", false, "Normalize only, skip structured extraction")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "email-extract:", err)
		os.Exit(1)
	}
}
