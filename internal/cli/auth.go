package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"projectmanager/internal/core/domain"
	"projectmanager/pkg/apierrors"
)

func newLoginCmd(app *App) *cobra.Command {
	var email string
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and persist the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			result := app.Session.Login(cmd.Context(), domain.Credentials{
				Email:    email,
				Password: password,
			})
			if result == nil {
				return errors.New(apierrors.GetTransErrorMsg(apierrors.MsgInvalidCredentials, app.Config.Language))
			}

			user := app.Session.CurrentUser()
			cmd.Printf("Logged in as %s (%s)\n", user.Name, user.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session and clear persisted credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Session.Logout()
			cmd.Println("Logged out.")
			return nil
		},
	}
}

func newRegisterCmd(app *App) *cobra.Command {
	var name string
	var email string
	var password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			user := app.Session.Register(cmd.Context(), domain.Registration{
				Name:     name,
				Email:    email,
				Password: password,
			})
			if user == nil {
				return errors.New(apierrors.GetTransErrorMsg(apierrors.MsgFailCreateUser, app.Config.Language))
			}

			cmd.Printf("Registered %s (%s). You can log in now.\n", user.Name, user.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.requireUser()
			if err != nil {
				return err
			}

			cmd.Printf("%s <%s> (id %s)\n", user.Name, user.Email, user.ID)
			return nil
		},
	}
}
