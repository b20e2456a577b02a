package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .cssmodlint.yaml config file",
	Long:  `Create a .cssmodlint.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")
		path, _ := cmd.Flags().GetString("config")
		if path == "" {
			path = defaultConfigFile
		}

		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
		return nil
	},
}

const defaultConfig = `# cssmodlint configuration
# Docs: https://github.com/yacobolo/cssmodlint

verbose: false
color: false

lint:
  tsconfig: ""               # default: <dir>/tsconfig.json
  exclude:                   # added to tsconfig "exclude"
    - node_modules
  gitignore: false           # also skip paths matched by .gitignore
  bracket-access: true       # count styles["name"] as a usage
  skip-syntax-check: false
  output-format: text        # text | minified | issues | json
  max-issues-per-linter: 0   # 0 = unlimited
  max-same-issues: 0         # 0 = unlimited
  print-lines: true
  print-linter-name: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
