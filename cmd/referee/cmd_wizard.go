package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/3loulou/phone-purchase-referee/internal/wizard"
)

var wizardOutputPath string

func newWizardCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wizard",
		Short: "Build a constraints file interactively",
		Args:  cobra.NoArgs,
		RunE:  wizardCommandE,
	}

	cmd.Flags().StringVarP(&wizardOutputPath, "output", "o", "constraints.yaml", "Where to write the constraints file")

	return cmd
}

func wizardCommandE(cmd *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("wizard requires an interactive terminal; write %s by hand instead", wizardOutputPath)
	}

	cs, err := wizard.RunConstraintWizard()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cs)
	if err != nil {
		return fmt.Errorf("encoding constraints: %w", err)
	}
	if err := os.WriteFile(wizardOutputPath, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", wizardOutputPath, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", wizardOutputPath)
	return nil
}
