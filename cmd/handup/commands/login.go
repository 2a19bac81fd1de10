package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"handup/internal/viewstate"
)

func loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Sign in and show your profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := signIn(cmd); err != nil {
				return err
			}
			user, _ := appCtx.Session.User()
			fmt.Printf("Signed in as %s (%s)\n", user.FullName, user.Role)
			if title := viewstate.JourneyTitle(user.Role); title != "" {
				fmt.Printf("Your activity tab: %s\n", title)
			}
			return nil
		},
	}
}
