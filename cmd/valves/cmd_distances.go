package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDistancesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "distances <input>",
		Short: "Print the all-pairs distance table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			g := s.Graph()
			labels := make([]string, g.Len())
			for i := range labels {
				labels[i] = g.Label(i)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), s.Distances().Format(labels))
			return err
		},
	}
}
