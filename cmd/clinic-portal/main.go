package main

import (
	"os"

	"github.com/spf13/cobra"

	_ "github.com/clinicdesk/clinic-portal/docs"
)

// @title        Clinic Portal API
// @version      1.0
// @description  Session, navigation and lab test endpoints of the clinic staff portal.
// @BasePath     /
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "clinic-portal",
		Short:         "Clinic staff portal API server",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(routesCmd())
	rootCmd.AddCommand(seedStaffCmd())
	return rootCmd
}
