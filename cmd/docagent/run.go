package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"docagent/internal/config"
	"docagent/internal/dispatch"
	"docagent/internal/handlers"
	"docagent/internal/llm"
	"docagent/internal/observability"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive session",
	Long:  "Repeatedly prompts for a task and an output folder, routes each task to a format handler, and writes the generated files. Type 'exit' to quit.",
	RunE:  runInteractive,
}

var (
	runConfigFile string
	runAPIKey     string
	runModel      string
	runVerbose    bool
)

func init() {
	runCmd.Flags().StringVarP(&runConfigFile, "config", "c", "", "Path to JSON config file")
	runCmd.Flags().StringVar(&runAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	runCmd.Flags().StringVar(&runModel, "model", "", "Model name override")
	runCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print per-task detail")

	rootCmd.AddCommand(runCmd)
}

// loadConfig merges the config file, flags, and environment into one
// Config. Flags win over the file; the file wins over the environment.
func loadConfig(configFile, apiKey, model string, verbose bool) (*config.Config, error) {
	cfg := &config.Config{}
	if configFile != "" {
		loaded, err := config.LoadConfig(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if apiKey != "" {
		cfg.APIKey = apiKey
	}
	if model != "" {
		cfg.Model = model
	}
	if verbose {
		cfg.Verbose = true
	}
	cfg.MergeWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLLMClient builds the Gemini client from the resolved config.
// Initialized once at startup and passed into the dispatcher as a
// dependency so tests can substitute a stub.
func newLLMClient(ctx context.Context, cfg *config.Config) (llm.Client, error) {
	llmCfg := llm.DefaultConfig()
	if cfg.Model != "" {
		llmCfg = llmCfg.WithModel(cfg.Model)
	}
	return llm.NewClient(ctx, llmCfg, cfg.APIKey)
}

// historyPath returns where interactive input history is persisted.
func historyPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = os.TempDir()
	}
	return filepath.Join(configDir, "docagent", "history")
}

func runInteractive(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(runConfigFile, runAPIKey, runModel, runVerbose)
	if err != nil {
		return err
	}

	ctx := context.Background()
	client, err := newLLMClient(ctx, cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	printer := observability.NewPrinter(os.Stdout, cfg.Verbose)
	printer.PrintBanner()

	deps := handlers.Deps{LLM: client, Printer: printer}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	history := historyPath()
	if f, err := os.Open(history); err == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if err := os.MkdirAll(filepath.Dir(history), 0755); err != nil {
			return
		}
		if f, err := os.Create(history); err == nil {
			_, _ = line.WriteHistory(f)
			f.Close()
		}
	}()

	for {
		task, err := line.Prompt("📝 Enter a task (or 'exit' to quit): ")
		if err != nil {
			// Ctrl+C or EOF ends the session
			fmt.Println()
			return nil
		}
		task = strings.TrimSpace(task)
		if strings.EqualFold(task, "exit") {
			return nil
		}
		if task != "" {
			line.AppendHistory(task)
		}

		folder, err := line.Prompt("📂 Enter output folder (default: " + cfg.OutputDir + "): ")
		if err != nil {
			fmt.Println()
			return nil
		}
		folder = strings.TrimSpace(folder)
		if folder == "" {
			folder = cfg.OutputDir
		}

		printer.Verbosef("task %s: %q -> %s", uuid.NewString(), task, folder)

		if err := dispatch.Dispatch(ctx, deps, task, folder); err != nil {
			if dispatch.IsUnsupported(err) {
				printer.Warnf("Sorry, I don't know how to handle this task yet.")
				continue
			}
			// Service and filesystem failures are terminal for the session.
			return err
		}
	}
}
