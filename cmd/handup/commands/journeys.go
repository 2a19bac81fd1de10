package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"handup/internal/viewstate"
)

// applications: a volunteer's applications paired with their jobs.
func applicationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "applications",
		Short: "List your applications with their jobs",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := signIn(cmd); err != nil {
				return err
			}
			user, _ := appCtx.Session.User()

			items, err := appCtx.API.ListVolunteerApplications(cmd.Context(), user.ID)
			if err != nil {
				return err
			}
			fmt.Println(viewstate.JourneyTitle(user.Role))
			for _, it := range items {
				fmt.Printf("%s  [%s]  %s — %q\n",
					it.Job.ID, it.Application.Status, it.Job.Title, it.Application.Message)
			}
			return nil
		},
	}
}

// myjobs: a requester's posted jobs.
func myJobsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "myjobs",
		Short: "List the jobs you have posted",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := signIn(cmd); err != nil {
				return err
			}
			user, _ := appCtx.Session.User()

			jobs, err := appCtx.API.ListRequesterJobs(cmd.Context(), user.ID)
			if err != nil {
				return err
			}
			fmt.Println(viewstate.JourneyTitle(user.Role))
			for _, j := range jobs {
				fmt.Printf("%s  [%s]  %s on %s\n", j.ID, j.Status, j.Title, j.ScheduledOn)
			}
			return nil
		},
	}
}
