// Package main provides the entry point for the docagent CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "docagent",
	Short: "Generate documents from free-text tasks",
	Long:  "docagent turns a free-text task description into generated files (articles, notes, Q&A sets, spreadsheets, Word documents, PDFs, or slide decks) by calling the Gemini API and writing the result in the requested format.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
