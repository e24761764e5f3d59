// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-kns/internal/logger"
	"github.com/MKhiriev/go-kns/internal/service"
)

// NewVersionCommand creates the version command. It is the only command
// outside the login gate.
func NewVersionCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := service.NewAppInfoService(rootOpts.BuildInfo, logger.Nop()).BuildInfo(cmd.Context())
			return rootOpts.formatter(cmd).Success("", newBuildInfoView(info))
		},
	}
}
