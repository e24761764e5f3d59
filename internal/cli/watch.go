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

// NewWatchCommand creates the watch command.
func NewWatchCommand(rootOpts *RootOptions) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "watch [field] [term]",
		Short: "Print the records again whenever they change",
		Long: `Print the current records, then a fresh snapshot every time the table
changes, until interrupted. With a field and term only matching records are
followed, like search.`,
		Args: cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				field models.SearchField
				term  string
			)
			if len(args) > 0 {
				var err error
				if field, term, err = parseSearchArgs(args); err != nil {
					return err
				}
			}

			return rootOpts.withSession(cmd, func(ctx context.Context, c client.Client, _ models.Session, f *OutputFormatter) error {
				ctx, cancel := context.WithCancel(ctx)
				defer cancel()

				snapshots, err := c.WatchRecords(ctx, field, term)
				if err != nil {
					return f.fail(err)
				}

				seen := 0
				for records := range snapshots {
					message := ""
					if len(records) == 0 {
						message = app.MsgNoRecords
					}
					if err = f.Success(message, newRecordTable(records)); err != nil {
						return err
					}
					seen++
					if count > 0 && seen >= count {
						return nil
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 0, "stop after this many snapshots (0 means until interrupted)")

	return cmd
}
