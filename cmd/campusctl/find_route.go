package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"campus-console/internal/service"
)

var findRouteCmd = &cobra.Command{
	Use:     "find-route <start> <end> | --list",
	Aliases: []string{"route"},
	Short:   "Show the shortest direct route between two locations",
	Args:    cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		routeSvc := newRouteService()

		listOnly, _ := cmd.Flags().GetBool("list")
		if listOnly {
			names, err := routeSvc.ListEndpoints(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list routes: %w", err)
			}
			for _, n := range names {
				fmt.Fprintln(out, n)
			}
			return nil
		}

		if len(args) != 2 {
			return fmt.Errorf("requires <start> and <end> arguments")
		}

		best, err := routeSvc.FindShortest(cmd.Context(), args[0], args[1])
		if errors.Is(err, service.ErrNoRouteBetween) {
			fmt.Fprintln(out, color.YellowString("No route found between %s and %s", args[0], args[1]))
			return nil
		}
		if errors.Is(err, service.ErrValidation) {
			return fmt.Errorf("start and end must not be blank")
		}
		if err != nil {
			return fmt.Errorf("failed to find route: %w", err)
		}

		distance := "unknown"
		if best.DistanceM != nil {
			distance = fmt.Sprintf("%g m", *best.DistanceM)
		}
		accessible := color.RedString("no")
		if best.Accessible {
			accessible = color.GreenString("yes")
		}

		fmt.Fprintf(out, "%s %s → %s\n", color.GreenString("✓ Route #%d", best.ID), best.StartLocation, best.EndLocation)
		fmt.Fprintf(out, "  distance:   %s\n", distance)
		fmt.Fprintf(out, "  accessible: %s\n", accessible)
		return nil
	},
}

func init() {
	findRouteCmd.Flags().Bool("list", false, "list known route endpoints instead")

	rootCmd.AddCommand(findRouteCmd)
}
