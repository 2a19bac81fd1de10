package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"handup/internal/domain"
)

// register: create an account and immediately sign in with it.
func registerCmd() *cobra.Command {
	var (
		role      string
		fullName  string
		phone     string
		address   string
		biography string
		skills    []string
		interests []string
	)
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" || password == "" {
				return fmt.Errorf("--email and --password required")
			}

			req := domain.RegisterRequest{
				Role:      domain.Role(role),
				FullName:  fullName,
				Phone:     phone,
				Email:     email,
				Address:   address,
				Password:  password,
				Skills:    skills,
				Interests: interests,
				Biography: biography,
			}
			if err := appCtx.Session.Register(cmd.Context(), req); err != nil {
				return err
			}
			user, _ := appCtx.Session.User()
			fmt.Printf("Account created. Signed in as %s (%s)\n", user.FullName, user.Role)
			return nil
		},
	}
	cmd.Flags().StringVar(&role, "role", "", "volunteer or requester")
	cmd.Flags().StringVar(&fullName, "name", "", "full name")
	cmd.Flags().StringVar(&phone, "phone", "", "contact number")
	cmd.Flags().StringVar(&address, "address", "", "home address")
	cmd.Flags().StringVar(&biography, "bio", "", "short biography")
	cmd.Flags().StringSliceVar(&skills, "skill", nil, "volunteer skill tag (repeatable)")
	cmd.Flags().StringSliceVar(&interests, "interest", nil, "requester interest tag (repeatable)")
	_ = cmd.MarkFlagRequired("role")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}
