package main

import (
	"fmt"

	"github.com/rpgo/enoughcalc/internal/config"
	"github.com/rpgo/enoughcalc/internal/domain"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newDefaultsCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "defaults",
		Short: "Print or save the default input record as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := domain.DefaultInputs()
			if out != "" {
				if err := config.SaveInputs(in, out); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Defaults written to: %s\n", out)
				return nil
			}
			b, err := yaml.Marshal(in)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "write to this file instead of stdout")
	return cmd
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <input-file>",
		Short: "Check an input file without running the calculation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := config.NewInputParser().LoadFromFile(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", args[0])
			return nil
		},
	}
}
