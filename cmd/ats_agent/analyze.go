package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-analyzer/internal/analysis"
	"github.com/jonathan/ats-analyzer/internal/category"
	"github.com/jonathan/ats-analyzer/internal/config"
	"github.com/jonathan/ats-analyzer/internal/logger"
	"github.com/jonathan/ats-analyzer/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a resume against ATS criteria",
	Long:  "Score a resume text file against ATS criteria for a job category. With --company, the resume is additionally evaluated against the company's hiring requirements for that category.",
	RunE:  runAnalyze,
}

var (
	analyzeInputFile  string
	analyzeCategory   string
	analyzeCompany    bool
	analyzeRegistry   string
	analyzeJSONOutput bool
	analyzeVerbose    bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeInputFile, "in", "i", "", "Path to resume text file (reads stdin if omitted)")
	analyzeCmd.Flags().StringVarP(&analyzeCategory, "category", "c", "", "Job category (auto-detected if omitted)")
	analyzeCmd.Flags().BoolVar(&analyzeCompany, "company", false, "Evaluate against company hiring requirements")
	analyzeCmd.Flags().StringVar(&analyzeRegistry, "registry", "", "Path to a JSON registry of categories and company requirements")
	analyzeCmd.Flags().BoolVar(&analyzeJSONOutput, "json", false, "Print the full result as JSON")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	text, err := readResumeText(analyzeInputFile)
	if err != nil {
		return err
	}

	registry, err := loadRegistry(analyzeRegistry)
	if err != nil {
		return err
	}

	log, err := logger.New(false, analyzeVerbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	analyzer, err := analysis.NewAnalyzer(registry.CategoryWeights(), log.Sugar())
	if err != nil {
		return fmt.Errorf("failed to create analyzer: %w", err)
	}

	jobCategory := analyzeCategory
	detected := false
	if jobCategory == "" {
		jobCategory, _ = category.Detect(text, registry.DetectionVocabularies())
		detected = true
	}

	var result *types.AnalysisResult
	if analyzeCompany {
		req, ok := registry.Company(jobCategory)
		if !ok {
			return fmt.Errorf("no company requirements profile for job category %q", jobCategory)
		}
		result, err = analyzer.AnalyzeForCompany(text, jobCategory,
			registry.Category(jobCategory), req, registry.CriteriaWeights())
	} else {
		result, err = analyzer.Analyze(text, jobCategory, registry.Category(jobCategory))
	}
	if err != nil {
		return err
	}

	if analyzeJSONOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printResult(result, detected)
	return nil
}

// readResumeText loads the resume from a file, or from stdin when no path
// is given.
func readResumeText(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read resume file: %w", err)
	}
	return string(data), nil
}

// loadRegistry returns the built-in registry, overlaid with the given
// registry file when one is provided.
func loadRegistry(path string) (*config.Registry, error) {
	registry := config.DefaultRegistry()
	if path != "" {
		if err := registry.LoadFile(path); err != nil {
			return nil, fmt.Errorf("failed to load registry: %w", err)
		}
	}
	return registry, nil
}

func printResult(result *types.AnalysisResult, detected bool) {
	if detected {
		fmt.Printf("Job category: %s (auto-detected)\n", result.JobCategory)
	} else {
		fmt.Printf("Job category: %s\n", result.JobCategory)
	}
	fmt.Printf("Overall score: %.1f/100 (%s)\n", result.OverallScore, result.Rating)
	if result.Passed {
		fmt.Println("Verdict: PASS")
	} else {
		fmt.Println("Verdict: FAIL")
	}
	fmt.Println()

	fmt.Println("Category scores:")
	for _, cs := range result.CategoryScores {
		fmt.Printf("  %-24s %6.1f  (weight %.0f)\n", strings.ReplaceAll(cs.Name, "_", " "), cs.RawScore, cs.Weight)
	}

	if len(result.Feedback) > 0 {
		fmt.Println()
		fmt.Println("Feedback:")
		for _, line := range result.Feedback {
			fmt.Printf("  - %s\n", line)
		}
	}
}
