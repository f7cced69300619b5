package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"docagent/internal/dispatch"
	"docagent/internal/handlers"
	"docagent/internal/observability"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate output for a single task and exit",
	Long:  "Dispatches one task without the interactive loop, for scripted use. The task is routed by the same keyword rules as the interactive session.",
	RunE:  runGenerate,
}

var (
	generateTask       string
	generateOut        string
	generateConfigFile string
	generateAPIKey     string
	generateModel      string
	generateVerbose    bool
)

func init() {
	generateCmd.Flags().StringVarP(&generateTask, "task", "t", "", "Task description (required)")
	generateCmd.Flags().StringVarP(&generateOut, "out", "o", "", "Output folder (default from config)")
	generateCmd.Flags().StringVarP(&generateConfigFile, "config", "c", "", "Path to JSON config file")
	generateCmd.Flags().StringVar(&generateAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	generateCmd.Flags().StringVar(&generateModel, "model", "", "Model name override")
	generateCmd.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Print per-task detail")

	if err := generateCmd.MarkFlagRequired("task"); err != nil {
		panic(fmt.Sprintf("failed to mark task flag as required: %v", err))
	}

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(generateConfigFile, generateAPIKey, generateModel, generateVerbose)
	if err != nil {
		return err
	}

	out := generateOut
	if out == "" {
		out = cfg.OutputDir
	}

	ctx := context.Background()
	client, err := newLLMClient(ctx, cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	deps := handlers.Deps{
		LLM:     client,
		Printer: observability.NewPrinter(os.Stdout, cfg.Verbose),
	}
	return dispatch.Dispatch(ctx, deps, generateTask, out)
}
