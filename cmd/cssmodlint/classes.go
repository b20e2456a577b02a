package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/cssmodlint"
)

var classesCmd = &cobra.Command{
	Use:   "classes <stylesheet>",
	Short: "List the classes a stylesheet defines",
	Long: `Print one name:line:column entry per class defined in a *.module.css file.
Lines and columns are 0-based.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		classes, err := cssmodlint.Classes(args[0])
		if err != nil {
			return err
		}
		for _, c := range classes {
			fmt.Fprintf(cmd.OutOrStdout(), "%s:%d:%d\n", c.Name, c.Line, c.Column)
		}
		return nil
	},
}
