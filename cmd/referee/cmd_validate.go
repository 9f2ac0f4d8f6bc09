package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/3loulou/phone-purchase-referee/internal/catalog"
)

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <catalog.yaml> [catalog.yaml...]",
		Short: "Validate catalog files against the schema",
		Args:  cobra.MinimumNArgs(1),
		RunE:  validateCommandE,
	}
}

func validateCommandE(cmd *cobra.Command, args []string) error {
	invalid := 0
	for _, path := range args {
		errs, err := catalog.ValidateFile(path)
		if err != nil {
			return err
		}
		if len(errs) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", path)
			continue
		}
		invalid++
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d problem(s)\n", path, len(errs))
		for _, e := range errs {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", e)
		}
	}
	if invalid > 0 {
		return fmt.Errorf("%d of %d catalog file(s) failed validation", invalid, len(args))
	}
	return nil
}
