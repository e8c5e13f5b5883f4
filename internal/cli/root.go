// Package cli wires the mining pipeline into a cobra command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	quiet   bool
	verbose bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "specminer",
	Short: "Mine supervised training data from API specification corpora",
	Long: `specminer walks a corpus of API specification documents of unknown
validity, extracts (context, description) training pairs, and writes
deterministic train/val/test splits in JSON-lines form.

Malformed documents never abort a run; they are counted and skipped.`,
}

// Execute adds all child commands to the root command and runs it.
// Called once from main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./specminer.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "disable progress output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "list every skipped file and failure")
}
