package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"handup/internal/viewstate"
)

func jobsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "jobs",
		Short: "List open jobs on the marketplace",
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs, err := appCtx.API.ListJobs(cmd.Context())
			if err != nil {
				return err
			}
			for _, j := range jobs {
				fmt.Printf("%s  [%s]  %s — %s (%.1f km)\n", j.ID, j.Status, j.Title, j.Location, j.DistanceKm)
			}
			return nil
		},
	}
}

// job: show one job; with credentials, also the actions your role allows.
func jobCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "job <id>",
		Short: "Show one job and the actions your role allows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if email != "" && password != "" {
				if err := signIn(cmd); err != nil {
					return err
				}
			}

			job, err := appCtx.API.GetJob(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s [%s]\n", job.Title, job.Status)
			fmt.Printf("  When:     %s\n", job.ScheduledOn)
			fmt.Printf("  Where:    %s (%.4f, %.4f)\n", job.Location, job.Latitude, job.Longitude)
			fmt.Printf("  Meet at:  %s\n", job.MeetingPoint)
			fmt.Printf("  Contact:  %s %s\n", job.ContactName, job.ContactNumber)
			fmt.Printf("  %s\n", job.Description)
			for _, r := range job.Requirements {
				fmt.Printf("  - %s\n", r)
			}

			actions := viewstate.ActionsFor(appCtx.Session.Role())
			if actions.CanApply {
				fmt.Println("You can apply: handup apply", job.ID)
			}
			if actions.CanComplete {
				fmt.Println("You can close this out: handup complete", job.ID)
			}
			return nil
		},
	}
}
