package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"handup/internal/domain"
	"handup/internal/viewstate"
)

func applyCmd() *cobra.Command {
	var message string
	cmd := &cobra.Command{
		Use:   "apply <job-id>",
		Short: "Apply to a job with a message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := signIn(cmd); err != nil {
				return err
			}
			user, _ := appCtx.Session.User()
			if !viewstate.ActionsFor(user.Role).CanApply {
				return fmt.Errorf("only volunteers can apply")
			}

			app, err := appCtx.API.ApplyToJob(cmd.Context(), args[0], domain.ApplyRequest{
				VolunteerID: user.ID,
				Message:     message,
			})
			if err != nil {
				return fmt.Errorf("applying to %q: %w", args[0], err)
			}
			fmt.Printf("Application sent: %s (%s)\n", app.ID, app.Status)
			return nil
		},
	}
	cmd.Flags().StringVarP(&message, "message", "m", "", "message for the requester")
	return cmd
}
