package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gammazero/workerpool"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var batchWorkers int

var batchCmd = &cobra.Command{
	Use:   "batch [dir]",
	Short: "Extract every .eml file under a directory",
	Long: `Walks the directory tree, runs each .eml file through the engine on a
worker pool and writes one JSON file per input to the output directory.
Extraction calls share no state, so one worker per email is safe.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "Pool size (default from config)")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	var files []string
	err := filepath.Walk(args[0], func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && strings.EqualFold(filepath.Ext(path), ".eml") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("list input dir: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no .eml files under %s", args[0])
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	workers := batchWorkers
	if workers <= 0 {
		workers = cfg.Workers
	}

	wp := workerpool.New(workers)
	bar := progressbar.Default(int64(len(files)))

	for _, path := range files {
		path := path
		wp.Submit(func() {
			defer bar.Add(1)

			raw, err := os.ReadFile(path)
			if err != nil {
				logger.Error().Err(err).Str("path", path).Msg("cannot read file")
				return
			}

			result := extractRaw(raw)

			out, err := json.Marshal(result)
			if err != nil {
				logger.Error().Err(err).Str("path", path).Msg("cannot encode result")
				return
			}

			name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + ".json"
			target := filepath.Join(cfg.OutputDir, name)
			if err := os.WriteFile(target, out, 0o644); err != nil {
				logger.Error().Err(err).Str("path", target).Msg("cannot write result")
			}
		})
	}

	wp.StopWait()
	return nil
}
