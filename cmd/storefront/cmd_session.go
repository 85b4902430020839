package main

import (
	"github.com/spf13/cobra"

	"github.com/dwikikusuma/storefront/internal/session"
)

func newLoginCmd(e *env) *cobra.Command {
	var token, username string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store a session token for later commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := e.sess.Set(session.KeyToken, token); err != nil {
				return err
			}
			if username != "" {
				if err := e.sess.Set(session.KeyUsername, username); err != nil {
					return err
				}
			}
			cmd.Println("logged in")
			return nil
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "bearer token issued by the backend")
	cmd.Flags().StringVar(&username, "username", "", "display name for the session")
	_ = cmd.MarkFlagRequired("token")
	return cmd
}

func newLogoutCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := e.sess.Clear(); err != nil {
				return err
			}
			cmd.Println("logged out")
			return nil
		},
	}
}
