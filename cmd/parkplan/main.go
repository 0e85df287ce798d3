package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ChicagoDave/parkplan/pkg/parking"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "parkplan",
		Short: "Municipal parking requirement calculator",
	}

	rootCmd.AddCommand(calcCmd())
	rootCmd.AddCommand(mixedCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(ratiosCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func calcCmd() *cobra.Command {
	var (
		req       parking.Request
		tablePath string
		jsonOut   bool
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate the parking requirement for a single use",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runCalc(req, tablePath, jsonOut)
		},
	}

	cmd.Flags().StringVarP(&req.UseType, "use", "u", "", "use type from the ratio schedule")
	cmd.Flags().Float64Var(&req.GrossSF, "sf", 0, "gross floor area in square feet")
	cmd.Flags().IntVar(&req.Units, "units", 0, "dwelling units, rooms, or classrooms")
	cmd.Flags().IntVar(&req.Seats, "seats", 0, "seats, for assembly uses")
	cmd.Flags().Float64Var(&req.CustomRatio, "ratio", 0, "override the scheduled ratio")
	cmd.Flags().StringVarP(&tablePath, "table", "t", "", "ratio table YAML overlaying the built-in schedule")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit JSON instead of text")
	cmd.MarkFlagRequired("use")

	return cmd
}

func mixedCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "mixed [project-path]",
		Short: "Run a shared-parking analysis for a mixed-use project",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runMixed(args[0], jsonOut)
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit JSON instead of text")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate a project and its ratio schedule without calculating",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func ratiosCmd() *cobra.Command {
	var (
		tablePath string
		jsonOut   bool
	)

	cmd := &cobra.Command{
		Use:   "ratios",
		Short: "List the parking ratio schedule",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runRatios(tablePath, jsonOut)
		},
	}

	cmd.Flags().StringVarP(&tablePath, "table", "t", "", "ratio table YAML overlaying the built-in schedule")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit JSON instead of text")
	return cmd
}

func serveCmd() *cobra.Command {
	var (
		port      int
		tablePath string
		dbPath    string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runServe(port, tablePath, dbPath)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 8080, "HTTP server port")
	cmd.Flags().StringVarP(&tablePath, "table", "t", "", "ratio table YAML overlaying the built-in schedule")
	cmd.Flags().StringVar(&dbPath, "db", "./data/parkplan.db", "history database path (empty disables history)")
	return cmd
}
