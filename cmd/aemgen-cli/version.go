package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd(a *app) *cobra.Command {
	var short bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			if short {
				fmt.Fprintln(a.out, version)
				return
			}
			fmt.Fprintf(a.out, "aemgen %s (commit %s)\n", version, commit)
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "print version number only")
	return cmd
}
