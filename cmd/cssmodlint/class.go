package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/cssmodlint"
)

var classCmd = &cobra.Command{
	Use:   "class <stylesheet> <name>",
	Short: "Print the rule that defines a class",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		body, ok, err := cssmodlint.ClassBody(args[0], args[1])
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("class %q not found in %s", args[1], args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), body)
		return nil
	},
}
