package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/floatinput/internal/config"
)

func newThemeCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Print the resolved theme and animation settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides, err := loadOverrides(flags)
			if err != nil {
				return err
			}

			out, err := config.Marshal(overrides.Resolve())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	return cmd
}
