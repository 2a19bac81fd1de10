package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"handup/internal/app"
)

var (
	apiURL   string
	email    string
	password string

	appCtx *app.App
)

func Execute() error {
	root := &cobra.Command{
		Use:   "handup",
		Short: "Volunteer marketplace CLI",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig()
			if err != nil {
				return err
			}
			if apiURL != "" {
				cfg.APIBaseURL = apiURL
			}
			appCtx = app.New(cfg)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&apiURL, "api", "", "API base URL (default $HANDUP_API_URL)")
	root.PersistentFlags().StringVar(&email, "email", "", "account email")
	root.PersistentFlags().StringVarP(&password, "password", "p", "", "account password")

	root.AddCommand(
		loginCmd(),
		registerCmd(),
		jobsCmd(),
		jobCmd(),
		postCmd(),
		applyCmd(),
		completeCmd(),
		applicationsCmd(),
		myJobsCmd(),
		profileCmd(),
	)
	return root.Execute()
}

// signIn establishes the session from the --email/--password flags.
func signIn(cmd *cobra.Command) error {
	if email == "" || password == "" {
		return fmt.Errorf("--email and --password required")
	}
	if err := appCtx.Session.Login(cmd.Context(), email, password); err != nil {
		return fmt.Errorf("signing in as %q: %w", email, err)
	}
	return nil
}
