package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-aemgen/pkg/manifest"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list <manifest>",
		Short: "List the custom elements a manifest defines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.orchestrator().LoadManifest(cmd.Context(), manifest.SourceFromFile(args[0]))
			if err != nil {
				return err
			}
			if m.Empty() {
				fmt.Fprintln(a.out, noElementsMessage)
				return nil
			}
			return a.reporter().WriteList(a.out, m)
		},
	}
}
