package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tetratelabs/sveasm/internal/version"
)

func getCmdVersion(gs *globalState) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show application version",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			_, err := fmt.Fprintln(gs.stdOut, version.GetSveasmVersion())
			return err
		},
	}
}
