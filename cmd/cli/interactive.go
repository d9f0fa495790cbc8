package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/salvatoreOm/empathic-code-reviewer/internal/core"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Enter a snippet and comments interactively",
	Long: `Enter a code snippet and review comments line by line.

Finish the code snippet with two consecutive empty lines, then add one
comment per line and finish with an empty line.`,
	Args: cobra.NoArgs,
	RunE: runInteractive,
}

func init() { //nolint:gochecknoinits // Cobra command registration
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(_ *cobra.Command, _ []string) error {
	reader := bufio.NewScanner(os.Stdin)
	reader.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	titleColor.Println("Empathic Code Reviewer - Interactive Mode")
	fmt.Println()
	fmt.Println("Paste your code snippet (finish with two empty lines):")

	code, err := readSnippet(reader)
	if err != nil {
		return err
	}

	fmt.Println("Enter review comments, one per line (finish with an empty line):")
	comments, err := readComments(reader)
	if err != nil {
		return err
	}

	req := &core.ReviewRequest{
		CodeSnippet:    code,
		ReviewComments: comments,
	}

	svc, genName, err := buildService()
	if err != nil {
		return err
	}

	dimColor.Printf("   generator: %s\n", genName)
	fmt.Println("Generating review...")

	result, err := svc.Run(context.Background(), req)
	if err != nil {
		errorColor.Printf("review failed: %v\n", err)
		return err
	}

	fmt.Println()
	return printReport(result.Markdown)
}

func readSnippet(reader *bufio.Scanner) (string, error) {
	var lines []string
	emptyCount := 0

	for emptyCount < 2 && reader.Scan() {
		line := reader.Text()
		if strings.TrimSpace(line) == "" {
			emptyCount++
		} else {
			emptyCount = 0
		}
		lines = append(lines, line)
	}
	if err := reader.Err(); err != nil {
		return "", fmt.Errorf("failed to read snippet: %w", err)
	}

	// Drop the trailing empty lines used as the terminator.
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	code := strings.Join(lines, "\n")
	if strings.TrimSpace(code) == "" {
		return "", fmt.Errorf("%w: code snippet cannot be empty", core.ErrInvalidInput)
	}
	return code, nil
}

func readComments(reader *bufio.Scanner) ([]string, error) {
	var comments []string

	for {
		fmt.Printf("Comment %d: ", len(comments)+1)
		if !reader.Scan() {
			break
		}
		comment := strings.TrimSpace(reader.Text())
		if comment == "" {
			break
		}
		comments = append(comments, comment)
	}
	if err := reader.Err(); err != nil {
		return nil, fmt.Errorf("failed to read comments: %w", err)
	}

	if len(comments) == 0 {
		return nil, fmt.Errorf("%w: at least one review comment is required", core.ErrInvalidInput)
	}
	return comments, nil
}
