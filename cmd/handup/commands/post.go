package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"handup/internal/domain"
	"handup/internal/viewstate"
)

func postCmd() *cobra.Command {
	var (
		title        string
		scheduledOn  string
		location     string
		meetingPoint string
		description  string
		requirements []string
		latitude     float64
		longitude    float64
	)
	cmd := &cobra.Command{
		Use:   "post",
		Short: "Publish a new job",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := signIn(cmd); err != nil {
				return err
			}
			user, _ := appCtx.Session.User()
			if !viewstate.CanPostJobs(user.Role) {
				return fmt.Errorf("only requesters can post jobs")
			}

			job, err := appCtx.API.CreateJob(cmd.Context(), domain.CreateJobRequest{
				RequesterID:  user.ID,
				Title:        title,
				ScheduledOn:  scheduledOn,
				Location:     location,
				MeetingPoint: meetingPoint,
				Description:  description,
				Requirements: requirements,
				Latitude:     latitude,
				Longitude:    longitude,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Job posted: %s (%s)\n", job.ID, job.Title)
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "job title")
	cmd.Flags().StringVar(&scheduledOn, "on", "", "scheduled date, e.g. 2025-03-01")
	cmd.Flags().StringVar(&location, "location", "", "location name")
	cmd.Flags().StringVar(&meetingPoint, "meet", "", "meeting point")
	cmd.Flags().StringVar(&description, "description", "", "what help is needed")
	cmd.Flags().StringSliceVar(&requirements, "require", nil, "requirement tag (repeatable)")
	cmd.Flags().Float64Var(&latitude, "lat", 0, "latitude")
	cmd.Flags().Float64Var(&longitude, "lng", 0, "longitude")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("description")
	return cmd
}
