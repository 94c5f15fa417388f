package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/user/bountyx-ai/pkg/adk"
	"github.com/user/bountyx-ai/pkg/config"
	"github.com/user/bountyx-ai/pkg/engine"
	"github.com/user/bountyx-ai/pkg/loader"
	"github.com/user/bountyx-ai/pkg/report"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze scan results and generate a report",
	Run: func(cmd *cobra.Command, args []string) {
		adk.DebugEnabled = DebugMode

		target, _ := cmd.Flags().GetString("target")
		inputDir, _ := cmd.Flags().GetString("input-dir")
		format, _ := cmd.Flags().GetString("output-format")
		noAI, _ := cmd.Flags().GetBool("no-ai")

		if target == "" {
			fmt.Println("Error: --target is required")
			return
		}
		if inputDir == "" {
			inputDir = target + "_results"
		}

		results, err := loader.Load(inputDir)
		if err != nil {
			fmt.Printf("Error loading scan results: %v\n", err)
			return
		}

		analyzer := engine.NewAnalyzer()
		analysis := analyzer.Analyze(results)

		if !noAI {
			enhance(analysis)
		}

		rep := report.New(target, analysis, time.Now())
		path, err := rep.Save(inputDir, format)
		if err != nil {
			fmt.Printf("Error saving report: %v\n", err)
			return
		}
		fmt.Printf("Analysis complete. Report saved to %s\n", path)
	},
}

// enhance asks the configured AI provider for an extended analysis. Any
// failure here leaves the report as-is.
func enhance(analysis *engine.Analysis) {
	cfg, err := config.LoadConfig()
	if err != nil {
		adk.Warnf("Could not load config, skipping AI enhancement: %v", err)
		return
	}

	providerName := cfg.SelectedProvider
	if providerName == "" {
		providerName = "gemini"
	}

	apiKey := cfg.GetAPIKey(providerName)
	if apiKey == "" {
		if providerName == "gemini" {
			apiKey = os.Getenv("GOOGLE_API_KEY")
		}
	}
	if apiKey == "" {
		adk.Infof("No API key configured, skipping AI enhancement")
		return
	}

	ctx := context.Background()
	provider, err := adk.NewProvider(ctx, providerName, apiKey, cfg.SelectedModel)
	if err != nil {
		adk.Warnf("Could not initialize AI provider, skipping enhancement: %v", err)
		return
	}
	if closer, ok := provider.(interface{ Close() }); ok {
		defer closer.Close()
	}

	enhancer := &adk.ProviderEnhancer{Provider: provider}
	fmt.Printf("Enhancing analysis with %s...\n", provider.Name())
	text, err := enhancer.Enhance(ctx, analysis)
	if err != nil {
		adk.Warnf("AI enhancement failed: %v", err)
		return
	}

	analysis.AIEnhanced = &engine.AIEnhanced{
		Model:    enhancer.Model(),
		Analysis: text,
	}
}

func init() {
	analyzeCmd.Flags().StringP("target", "t", "", "Target domain the scans were run against")
	analyzeCmd.Flags().StringP("input-dir", "i", "", "Directory containing scan results (default <target>_results)")
	analyzeCmd.Flags().StringP("output-format", "o", "json", "Report format: json, txt or html")
	analyzeCmd.Flags().Bool("no-ai", false, "Skip AI enhancement even when a provider is configured")

	rootCmd.AddCommand(analyzeCmd)
}
