package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dunglas/go-routepattern/routetable"
)

func parseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <pattern>...",
		Short: "Print the compiled form of route patterns",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			failed := false

			for _, pattern := range args {
				r := routetable.CompileRoute(routetable.Route{URL: pattern})

				fmt.Fprintf(out, "%s\n", pattern)
				for _, item := range r.Pattern {
					fmt.Fprintf(out, "  %s\n", routetable.Describe(item))
				}

				if !r.OK() {
					failed = true
					if err := routetable.Render(out, r); err != nil {
						return err
					}
				}
			}

			if failed {
				return errDiagnostics
			}

			return nil
		},
	}

	return cmd
}
