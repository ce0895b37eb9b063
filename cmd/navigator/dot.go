package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Henok-et/navigation-algorithm-for-a-city/interop"
)

const keyName = "name"

func (a *app) dotCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Print the map as a Graphviz digraph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := a.loadData()
			if err != nil {
				return err
			}
			b, err := interop.MarshalDOT(d.graph, a.v.GetString(keyName))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return err
		},
	}
	cmd.Flags().String(keyName, "navigation", "graph name")

	return cmd
}
