package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cssmodlint [dir]",
	Short: "Find unused and undefined CSS module classes",
	Long: `Cross-references the classes defined in *.module.css files with the
properties read from their imports in .tsx and .jsx components.
Reports classes that are never used and accesses that have no definition.`,
	// Default behavior: run lint when no subcommand is given.
	// We must call loadConfig here because PreRunE of lintCmd
	// is not triggered when delegating via rootCmd.RunE.
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runLint(cmd, args)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", defaultConfigFile, "Config file path")

	addLintFlags(rootCmd)

	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(importsCmd)
	rootCmd.AddCommand(classesCmd)
	rootCmd.AddCommand(classCmd)
	rootCmd.AddCommand(usagesCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
