package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"handup/internal/domain"
)

// profile: show an account. With no argument it signs in and refreshes the
// session's own snapshot; with an id it fetches that profile directly.
func profileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile [id]",
		Short: "Show a profile, your own by default",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var user domain.UserProfile
			if len(args) == 1 {
				var err error
				user, err = appCtx.API.GetProfile(cmd.Context(), args[0])
				if err != nil {
					return err
				}
			} else {
				if err := signIn(cmd); err != nil {
					return err
				}
				if err := appCtx.Session.RefreshProfile(cmd.Context()); err != nil {
					return err
				}
				user, _ = appCtx.Session.User()
			}

			fmt.Printf("%s (%s)\n", user.FullName, user.Role)
			fmt.Printf("  Email:    %s\n", user.Email)
			fmt.Printf("  Phone:    %s\n", user.Phone)
			fmt.Printf("  Address:  %s\n", user.Address)
			if user.Role == domain.RoleVolunteer {
				fmt.Printf("  Skills:   %s\n", strings.Join(user.Skills, ", "))
				fmt.Printf("  Rating:   %.1f over %d jobs\n", user.Rating, user.CompletedJobs)
			}
			if user.Role == domain.RoleRequester {
				fmt.Printf("  Interests: %s\n", strings.Join(user.Interests, ", "))
			}
			if user.Biography != "" {
				fmt.Printf("  %s\n", user.Biography)
			}
			return nil
		},
	}
}
