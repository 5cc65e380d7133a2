package console

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) loginCmd() *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with email and password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.fillCredentials(&email, &password); err != nil {
				return err
			}
			p, err := a.session.SignIn(cmd.Context(), email, password)
			if err != nil {
				return fmt.Errorf("sign in failed: %w", err)
			}
			a.printf("Signed in as %s (%s)\n", p.Email, p.Role)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password (prompted when omitted)")
	return cmd
}

func (a *app) signupCmd() *cobra.Command {
	var email, password, name string
	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account and sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.fillCredentials(&email, &password); err != nil {
				return err
			}
			p, err := a.session.SignUp(cmd.Context(), email, password, name)
			if err != nil {
				return fmt.Errorf("sign up failed: %w", err)
			}
			a.printf("Welcome, %s\n", displayName(p.DisplayName, p.Email))
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password (prompted when omitted)")
	cmd.Flags().StringVar(&name, "name", "", "display name")
	return cmd
}

func (a *app) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.session.SignOut(cmd.Context()); err != nil {
				return err
			}
			a.printf("Signed out\n")
			return nil
		},
	}
}

func (a *app) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			p, ok := a.session.Principal()
			if !ok {
				a.printf("Not signed in\n")
				return nil
			}
			a.printf("%s <%s> role=%s\n", displayName(p.DisplayName, p.Email), p.Email, p.Role)
			return nil
		},
	}
}

func (a *app) fillCredentials(email, password *string) error {
	var err error
	if *email == "" {
		if *email, err = a.readLine("Email: "); err != nil {
			return err
		}
	}
	if *password == "" {
		if *password, err = a.readPassword("Password: "); err != nil {
			return err
		}
	}
	return nil
}

func displayName(name, email string) string {
	if name != "" {
		return name
	}
	return email
}
