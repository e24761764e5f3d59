// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-kns/internal/app"
	"github.com/MKhiriev/go-kns/internal/client"
	"github.com/MKhiriev/go-kns/models"
)

// PasswdOptions holds the new login pair.
type PasswdOptions struct {
	NewUsername string
	NewPassword string
	Confirm     string
}

// NewPasswdCommand creates the passwd command.
func NewPasswdCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PasswdOptions{}

	cmd := &cobra.Command{
		Use:   "passwd",
		Short: "Change the login pair",
		Long: `Replace the stored username and password. The current pair must be
given with --username and --password like for any other command.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.withSession(cmd, func(ctx context.Context, c client.Client, session models.Session, f *OutputFormatter) error {
				if err := c.ChangeCredentials(ctx, session, opts.NewUsername, opts.NewPassword, opts.Confirm); err != nil {
					return f.fail(err)
				}
				return f.Success(app.MsgCredentialsChanged, nil)
			})
		},
	}

	cmd.Flags().StringVar(&opts.NewUsername, "new-username", "", "new username")
	cmd.Flags().StringVar(&opts.NewPassword, "new-password", "", "new password")
	cmd.Flags().StringVar(&opts.Confirm, "confirm", "", "new password again")

	return cmd
}
