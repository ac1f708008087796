package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"campus-console/internal/service"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print location and route statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := service.NewReportService(repo, logger).Summary(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to build summary: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, color.New(color.Bold).Sprint("Locations"))
		fmt.Fprintf(out, "  total %d, accessible %d\n", s.TotalLocations, s.AccessibleLocations)
		for _, b := range s.Buildings {
			fmt.Fprintf(out, "  %-20s %3d  (%d accessible)\n", b.Building, b.Locations, b.Accessible)
		}

		fmt.Fprintln(out, color.New(color.Bold).Sprint("Routes"))
		fmt.Fprintf(out, "  total %d, accessible %d\n", s.TotalRoutes, s.AccessibleRoutes)
		fmt.Fprintf(out, "  distance total %.1f m, average %.1f m\n", s.TotalDistanceM, s.AverageDistanceM)

		fmt.Fprintln(out, color.New(color.Bold).Sprint("Notifications"))
		fmt.Fprintf(out, "  %d\n", s.Notifications)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
