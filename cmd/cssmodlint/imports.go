package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/yacobolo/cssmodlint"
)

var importsCmd = &cobra.Command{
	Use:   "imports <component>",
	Short: "Print the stylesheets a component imports as JSON",
	Long: `Print a JSON object mapping each resolved stylesheet path imported by the
component to the name it is bound to, e.g. {"src/App.module.css": "styles"}.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		config := buildLintConfig(getStringWithFallback("root", "root", "."))
		config.Logger = newLogger(cmd.ErrOrStderr())

		imports, err := cssmodlint.Imports(cmd.Context(), config, args[0])
		if err != nil {
			return err
		}

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(imports)
	},
}

func init() {
	importsCmd.Flags().String("root", ".", "Project root containing tsconfig.json")
	addProjectFlags(importsCmd.Flags())
}
