package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bountyx-ai",
	Short: "AI-Assisted Recon Analysis for BountyX",
	Long: `BountyX-AI turns raw reconnaissance and vulnerability scan output into
a classified, prioritized report with concrete remediation guidance.`,
}

var DebugMode bool

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&DebugMode, "debug", false, "Enable debug logging")
}
