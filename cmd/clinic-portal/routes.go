package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/clinicdesk/clinic-portal/internal/core/guard"
)

func routesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the navigation routing table",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := guard.New(guard.DefaultRoutes())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PATH\tVIEW\tACCESS")
			for _, r := range g.Routes() {
				v := string(r.View)
				if r.Access == guard.Entry {
					v = "-"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", r.Path, v, r.Access)
			}
			fmt.Fprintf(w, "*\t%s\t%s\n", "not-found", "any")
			return w.Flush()
		},
	}
}
