package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/skyhighcrm/email-extraction/content"
	"github.com/skyhighcrm/email-extraction/extractors"
	"github.com/skyhighcrm/email-extraction/pkg/email"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse one raw email and print the extracted content as JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	var raw []byte
	var err error
	if len(args) == 1 {
		raw, err = os.ReadFile(args[0])
	} else {
		raw, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	result := extractRaw(raw)

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// extractRaw feeds one raw email through the engine. Input that does not
// parse as an RFC 822 message is treated as a bare body.
func extractRaw(raw []byte) *content.ParsedEmailContent {
	engine := extractors.NewEngine(logger)
	enabled := cfg.ExtractionEnabled && !rawMode

	msg, err := email.Parse(raw)
	if err != nil {
		logger.Debug().Err(err).Msg("not an RFC 822 message, extracting as bare body")
		return engine.Parse(string(raw), "", enabled)
	}

	body, _ := msg.Body()
	return engine.Parse(body, msg.Subject(), enabled)
}
