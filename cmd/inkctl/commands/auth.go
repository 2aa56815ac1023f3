package commands

import (
	"encoding/json"
	"fmt"

	"inkwell/internal/client/api"

	"github.com/spf13/cobra"
)

func newSignupCommand(opts *globalOptions) *cobra.Command {
	var req api.SignupRequest

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Start a registration; a verification code is mailed to you",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.newClient(cmd)
			if err != nil {
				return err
			}

			if req.Password, err = readPassword(cmd, "Password: "); err != nil {
				return err
			}

			email, err := client.Signup(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Verification code sent to %s. Run `inkctl verify --email %s <code>`.\n", email, email)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Email, "email", "", "email address")
	cmd.Flags().StringVar(&req.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&req.LastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "phone number, e.g. +441234567890")
	cmd.Flags().StringVar(&req.DateOfBirth, "dob", "", "date of birth, YYYY-MM-DD")
	cmd.Flags().StringVar(&req.ProfilePicture, "picture", "", "profile picture URL")
	cmd.Flags().StringSliceVar(&req.Preferences, "pref", nil, "preference, repeatable")
	for _, name := range []string{"email", "first-name", "last-name", "phone", "dob", "pref"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func newVerifyCommand(opts *globalOptions) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "verify <code>",
		Short: "Confirm a registration with the mailed code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.newClient(cmd)
			if err != nil {
				return err
			}

			identity, err := client.VerifyCode(cmd.Context(), email, args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s. You can now sign in.\n", identity.FirstName)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email address used at signup")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newResendCommand(opts *globalOptions) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "resend",
		Short: "Mail a fresh verification code",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.newClient(cmd)
			if err != nil {
				return err
			}

			if err := client.ResendCode(cmd.Context(), email); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "A new code was sent to %s.\n", email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email address used at signup")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newSigninCommand(opts *globalOptions) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "signin",
		Short: "Sign in and remember the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.newClient(cmd)
			if err != nil {
				return err
			}

			password, err := readPassword(cmd, "Password: ")
			if err != nil {
				return err
			}

			identity, err := client.Signin(cmd.Context(), email, password)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s.\n", identity.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email address")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newWhoamiCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in identity, refreshing the session if needed",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.newClient(cmd)
			if err != nil {
				return err
			}

			identity, err := client.Authenticate(cmd.Context())
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")

			return enc.Encode(identity)
		},
	}
}

func newPasswdCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "passwd",
		Short: "Change your password",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.newClient(cmd)
			if err != nil {
				return err
			}

			current, err := readPassword(cmd, "Current password: ")
			if err != nil {
				return err
			}
			next, err := readPassword(cmd, "New password: ")
			if err != nil {
				return err
			}

			if err := client.ChangePassword(cmd.Context(), current, next); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Password updated.")
			return nil
		},
	}
}

func newSignoutCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "signout",
		Short: "Forget the local session",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.newClient(cmd)
			if err != nil {
				return err
			}

			if err := client.Signout(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
			return nil
		},
	}
}

func newHealthCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the server is up",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.newClient(cmd)
			if err != nil {
				return err
			}

			if err := client.Health(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}
