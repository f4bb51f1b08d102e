// Package main provides the CLI entry point for alluvial-go.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ukaji3/alluvial-go/pkg/alluvial"
)

var (
	cfg    Config
	logger = zap.NewNop()
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "alluvial [input]",
		Short: "Draw alluvial diagrams of category trends over time",
		Long: `alluvial-go reads records with a category and a year from an Excel or
CSV file, counts them per category and time bucket, and draws the
counts as stacked flows between adjacent buckets.

Output is an image (png, svg) or the computed layout (json, yaml).`,
		Args:              cobra.ExactArgs(1),
		PersistentPreRunE: setup,
		PersistentPostRun: teardown,
		RunE:              run,
		SilenceUsage:      true,
	}
	rootCmd.PersistentFlags().String("config", "", "Config file (default .alluvial.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose logging")
	addGenerateFlags(rootCmd.Flags())

	watchCmd := &cobra.Command{
		Use:   "watch [input]",
		Short: "Regenerate the output whenever the input file changes",
		Args:  cobra.ExactArgs(1),
		RunE:  runWatch,
	}
	addGenerateFlags(watchCmd.Flags())
	rootCmd.AddCommand(watchCmd)

	return rootCmd
}

func addGenerateFlags(fs *pflag.FlagSet) {
	fs.StringP("output", "o", "", "Output file path (default: timestamped image name, or stdout for json/yaml)")
	fs.String("format", "", "Output format: png, svg, json, yaml (default: from output extension, else png)")
	fs.Bool("pretty", false, "Pretty-print JSON output")
	fs.String("sheet", "", "Worksheet to read (default: first sheet)")
	fs.String("range", "", "Cell range to read, e.g. A1:D200 or Sheet1!A1:D200")
	fs.String("category-column", "", "Header of the category column (default \"Topic\")")
	fs.String("year-column", "", "Header of the year column (default \"Publication Year\")")
	fs.IntSlice("boundaries", nil, "Bucket boundaries, e.g. 2010,2015,2020,2025")
}

func setup(cmd *cobra.Command, args []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	if err := initConfig(cfgFile); err != nil {
		return err
	}
	if err := bindFlags(cmd); err != nil {
		return err
	}
	var err error
	cfg, err = Load()
	if err != nil {
		return err
	}

	config := zap.NewProductionConfig()
	if cfg.Verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

func teardown(cmd *cobra.Command, args []string) {
	if logger != nil {
		_ = logger.Sync()
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	// Validate input file exists
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	format, err := resolveFormat(cfg.Format, cfg.Output)
	if err != nil {
		return err
	}
	return generate(inputPath, format, cfg.Output, cfg)
}

// generate runs the pipeline on inputPath and writes the result.
func generate(inputPath, format, outputPath string, c Config) error {
	opts, err := c.Options(logger)
	if err != nil {
		return err
	}

	d, err := alluvial.GenerateFromFile(inputPath, opts)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	if outputPath == "" && isImage(format) {
		outputPath = defaultOutputName(time.Now(), format)
	}
	if err := writeDiagram(d, format, outputPath, c); err != nil {
		return err
	}
	if outputPath != "" {
		logger.Info("saved diagram", zap.String("path", outputPath), zap.String("format", format))
	}
	return nil
}

func runWatch(cmd *cobra.Command, args []string) error {
	inputPath, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}
	format, err := resolveFormat(cfg.Format, cfg.Output)
	if err != nil {
		return err
	}
	outputPath := cfg.Output
	if outputPath == "" && isImage(format) {
		outputPath = defaultOutputName(time.Now(), format)
	}

	ctx, stop := signal.NotifyContext(runContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	regenerate := func() error {
		return generate(inputPath, format, outputPath, cfg)
	}
	if err := regenerate(); err != nil {
		logger.Error("generation failed", zap.Error(err))
	}

	w, err := newFileWatcher(inputPath, cfg.Debounce, logger)
	if err != nil {
		return err
	}
	defer w.Close()

	logger.Info("watching", zap.String("input", inputPath))
	return w.Run(ctx, regenerate)
}

// runContext returns the command context, or a background context
// when the command runs outside Execute.
func runContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
