package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dunglas/go-routepattern/routetable"
)

func checkCmd() *cobra.Command {
	var (
		concurrency int
		verbose     bool
		json        bool
	)

	cmd := &cobra.Command{
		Use:   "check <routes.yaml>",
		Short: "Compile every route of a route table",
		Long: `Load a YAML route table and compile the url of every route.

Routes with malformed patterns are reported with the column of each problem.
The command exits with status 1 when at least one route has diagnostics.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := routetable.LoadFile(args[0])
			if err != nil {
				return err
			}

			compiler := routetable.NewCompiler(
				routetable.WithLogger(newLogger(cmd.ErrOrStderr(), json, verbose)),
				routetable.WithConcurrency(concurrency),
			)

			compiled, err := compiler.Compile(cmd.Context(), table)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			failed, err := routetable.Report(out, compiled)
			if err != nil {
				return err
			}

			if failed > 0 {
				fmt.Fprintf(out, "%d of %d routes have errors\n", failed, len(compiled))

				return errDiagnostics
			}

			fmt.Fprintf(out, "%d routes OK\n", len(compiled))

			return nil
		},
	}

	cmd.Flags().IntVarP(&concurrency, "concurrency", "c", 0, "Number of routes compiled in parallel (default: GOMAXPROCS)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log every compiled route")
	cmd.Flags().BoolVar(&json, "json", false, "Log in JSON")

	return cmd
}
