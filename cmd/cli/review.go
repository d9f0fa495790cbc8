package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/salvatoreOm/empathic-code-reviewer/internal/app"
	"github.com/salvatoreOm/empathic-code-reviewer/internal/config"
	"github.com/salvatoreOm/empathic-code-reviewer/internal/core"
	"github.com/salvatoreOm/empathic-code-reviewer/internal/llm"
	"github.com/salvatoreOm/empathic-code-reviewer/internal/logger"
	"github.com/salvatoreOm/empathic-code-reviewer/internal/review"
)

var (
	outputPath string
	plain      bool
)

// Color definitions
var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
	dimColor     = color.New(color.FgHiBlack)
)

var reviewCmd = &cobra.Command{
	Use:   "review [input.json]",
	Short: "Generate an empathetic review report from a JSON input file",
	Long: `Generate an empathetic review report.

The input is a JSON document with two fields: "code_snippet" (string) and
"review_comments" (array of strings), plus an optional "language_hint".
Pass "-" to read the document from stdin.

Examples:
  empathic review examples/sample_input.json
  empathic review --mock input.json -o report.md
  cat input.json | empathic review -`,
	Args: cobra.ExactArgs(1),
	RunE: runReview,
}

func init() { //nolint:gochecknoinits // Cobra command registration
	reviewCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the report to a file instead of the terminal")
	reviewCmd.Flags().BoolVar(&plain, "plain", false, "Print raw Markdown without terminal rendering")
	rootCmd.AddCommand(reviewCmd)
}

func runReview(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	req, err := loadRequest(args[0])
	if err != nil {
		return err
	}

	svc, genName, err := buildService()
	if err != nil {
		return err
	}

	titleColor.Println("Empathic Code Reviewer")
	dimColor.Printf("   generator: %s, comments: %d\n\n", genName, len(req.ReviewComments))
	fmt.Println("Generating review...")

	result, err := svc.Run(ctx, req)
	if err != nil {
		errorColor.Printf("review failed: %v\n", err)
		return err
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, []byte(result.Markdown), 0o644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		successColor.Printf("Report saved to %s\n", outputPath)
		return nil
	}

	return printReport(result.Markdown)
}

// loadRequest reads the JSON input document from a file or stdin.
func loadRequest(path string) (*core.ReviewRequest, error) {
	var data []byte
	var err error

	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	var req core.ReviewRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON input: %v", core.ErrInvalidInput, err)
	}
	return &req, nil
}

// buildService constructs the review pipeline for one CLI invocation. The
// CLI never persists history, so the store is nil.
func buildService() (*review.Service, string, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, "", err
	}

	// Keep CLI output clean; warnings and errors still reach stderr.
	cfg.Log.Output = "stderr"
	log := logger.NewLogger(cfg.Log, nil)
	slog.SetDefault(log)

	gen, err := app.NewGenerator(cfg, log)
	if err != nil {
		return nil, "", fmt.Errorf("%w\n\nTip: run with --mock to try it without any credentials", err)
	}

	promptMgr, err := llm.NewPromptManager()
	if err != nil {
		return nil, "", err
	}

	return review.NewService(gen, promptMgr, nil, log), gen.Name(), nil
}

// printReport renders the Markdown for the terminal, falling back to the raw
// text when rendering is disabled or the output is piped.
func printReport(markdown string) error {
	if plain || !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Println(markdown)
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Println(markdown)
		return nil
	}

	out, err := renderer.Render(markdown)
	if err != nil {
		fmt.Println(markdown)
		return nil
	}
	fmt.Print(out)
	return nil
}
