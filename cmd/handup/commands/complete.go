package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"handup/internal/domain"
	"handup/internal/viewstate"
)

func completeCmd() *cobra.Command {
	var (
		volunteerID string
		rating      float64
		comment     string
	)
	cmd := &cobra.Command{
		Use:   "complete <job-id>",
		Short: "Record feedback and close a job out",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := signIn(cmd); err != nil {
				return err
			}
			if !viewstate.ActionsFor(appCtx.Session.Role()).CanComplete {
				return fmt.Errorf("only requesters can close jobs out")
			}

			err := appCtx.API.CompleteJob(cmd.Context(), args[0], domain.FeedbackRequest{
				VolunteerID: volunteerID,
				Rating:      rating,
				Comment:     comment,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Job %s completed, feedback recorded for %s\n", args[0], volunteerID)
			return nil
		},
	}
	cmd.Flags().StringVar(&volunteerID, "volunteer", "", "volunteer who provided the help")
	cmd.Flags().Float64Var(&rating, "rating", 0, "rating between 0 and 5")
	cmd.Flags().StringVar(&comment, "comment", "", "feedback comment")
	_ = cmd.MarkFlagRequired("volunteer")
	_ = cmd.MarkFlagRequired("rating")
	return cmd
}
