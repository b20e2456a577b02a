package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/cssmodlint"
)

var usagesCmd = &cobra.Command{
	Use:   "usages <stylesheet> <name>",
	Short: "List every component access of a class",
	Long: `Print one path:line:column:length entry per access of name on an import of
the stylesheet. Lines are 1-based, columns 0-based at the access operator.`,
	Args: cobra.ExactArgs(2),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		config := buildLintConfig(getStringWithFallback("root", "root", "."))
		config.Logger = newLogger(cmd.ErrOrStderr())

		usages, err := cssmodlint.Usages(cmd.Context(), config, args[0], args[1])
		if err != nil {
			return err
		}
		for _, u := range usages {
			fmt.Fprintf(cmd.OutOrStdout(), "%s:%d:%d:%d\n", u.File, u.Line, u.Column, len(u.Name))
		}
		return nil
	},
}

func init() {
	f := usagesCmd.Flags()
	f.String("root", ".", "Project root containing tsconfig.json")
	f.StringSlice("exclude", nil, "Additional file or directory names and globs to skip")
	f.Bool("gitignore", false, "Also skip paths matched by the root .gitignore")
	addProjectFlags(f)
}
