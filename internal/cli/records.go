// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-kns/internal/app"
	"github.com/MKhiriev/go-kns/internal/client"
	"github.com/MKhiriev/go-kns/models"
)

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	var rf *recordFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a record",
		Long: `Add a new record. Name is required; Aadhaar, date of birth and mobile
are checked when given. A record identical to an existing one is ignored.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.withSession(cmd, func(ctx context.Context, c client.Client, _ models.Session, f *OutputFormatter) error {
				var r models.Record
				rf.apply(cmd.Flags(), &r)

				photo, closePhoto, err := rf.photoReader()
				if err != nil {
					return f.fail(err)
				}
				defer closePhoto()

				created, inserted, err := c.CreateRecord(ctx, r, photo)
				if err != nil {
					return f.fail(err)
				}
				if !inserted {
					return f.Success(app.MsgRecordDuplicate, nil)
				}
				return f.Success(app.MsgRecordSaved, recordDetail(created))
			})
		},
	}
	rf = bindRecordFlags(cmd.Flags())

	return cmd
}

// NewEditCommand creates the edit command.
func NewEditCommand(rootOpts *RootOptions) *cobra.Command {
	var rf *recordFlags

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a record",
		Long: `Replace the fields of a record. Only the flags given on the command line
change; every other field keeps its stored value.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseRecordID(args[0])
			if err != nil {
				return err
			}

			return rootOpts.withSession(cmd, func(ctx context.Context, c client.Client, _ models.Session, f *OutputFormatter) error {
				r, err := c.GetRecord(ctx, id)
				if err != nil {
					return f.fail(err)
				}
				rf.apply(cmd.Flags(), &r)

				photo, closePhoto, err := rf.photoReader()
				if err != nil {
					return f.fail(err)
				}
				defer closePhoto()

				if err = c.UpdateRecord(ctx, r, photo); err != nil {
					return f.fail(err)
				}

				updated, err := c.GetRecord(ctx, id)
				if err != nil {
					// deleted in the meantime; the update was a no-op
					return f.Success(app.MsgRecordUpdated, nil)
				}
				return f.Success(app.MsgRecordUpdated, recordDetail(updated))
			})
		},
	}
	rf = bindRecordFlags(cmd.Flags())

	return cmd
}

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseRecordID(args[0])
			if err != nil {
				return err
			}

			return rootOpts.withSession(cmd, func(ctx context.Context, c client.Client, _ models.Session, f *OutputFormatter) error {
				deleted, err := c.DeleteRecord(ctx, id)
				if err != nil {
					return f.fail(err)
				}
				return f.Success(app.MsgRecordDeleted, recordDetail(deleted))
			})
		},
	}
}

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show every field of a record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseRecordID(args[0])
			if err != nil {
				return err
			}

			return rootOpts.withSession(cmd, func(ctx context.Context, c client.Client, _ models.Session, f *OutputFormatter) error {
				r, err := c.GetRecord(ctx, id)
				if err != nil {
					return f.fail(err)
				}
				return f.Success("", recordDetail(r))
			})
		},
	}
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.withSession(cmd, func(ctx context.Context, c client.Client, _ models.Session, f *OutputFormatter) error {
				records, err := c.ListRecords(ctx)
				if err != nil {
					return f.fail(err)
				}
				if len(records) == 0 {
					return f.Success(app.MsgNoRecords, newRecordTable(records))
				}
				return f.Success("", newRecordTable(records))
			})
		},
	}
}

// NewSearchCommand creates the search command.
func NewSearchCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "search <field> [term]",
		Short: "Search records by a field",
		Long: `Search records whose field contains term. field is one of name, aadhaar,
pan, account or cif. An empty term matches every record.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			field, term, err := parseSearchArgs(args)
			if err != nil {
				return err
			}

			return rootOpts.withSession(cmd, func(ctx context.Context, c client.Client, _ models.Session, f *OutputFormatter) error {
				records, err := c.SearchRecords(ctx, field, term)
				if err != nil {
					return f.fail(err)
				}
				if len(records) == 0 {
					return f.Success(app.MsgNoRecordsFound(field.Label()), newRecordTable(records))
				}
				return f.Success("", newRecordTable(records))
			})
		},
	}
}

func parseSearchArgs(args []string) (models.SearchField, string, error) {
	field, err := models.ParseSearchField(args[0])
	if err != nil {
		return "", "", WrapExitError(ExitCommandError, "invalid search field "+args[0], err)
	}

	var term string
	if len(args) > 1 {
		term = args[1]
	}
	return field, term, nil
}

// photoReader opens the --photo file. The returned reader is nil when no
// photo was given; close is always safe to call.
func (rf *recordFlags) photoReader() (io.Reader, func(), error) {
	file, err := rf.openPhoto()
	if err != nil {
		return nil, func() {}, err
	}
	if file == nil {
		return nil, func() {}, nil
	}
	return file, func() { _ = file.Close() }, nil
}
