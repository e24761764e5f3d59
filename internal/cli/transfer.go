// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-kns/internal/app"
	"github.com/MKhiriev/go-kns/internal/client"
	"github.com/MKhiriev/go-kns/models"
)

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	var noProgress bool

	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import records from a CSV file",
		Long: `Import records from a CSV file whose first line is a header. Rows with
fewer than nine columns are skipped and identical records are ignored.
Interrupting the command (Ctrl+C) cancels the import.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			return rootOpts.withSession(cmd, func(ctx context.Context, c client.Client, _ models.Session, f *OutputFormatter) error {
				progressOut := f.GetErrWriter()
				progress := func(processed, total int) {
					if noProgress {
						return
					}
					p := models.ImportProgress{Processed: processed, Total: total}
					fmt.Fprintf(progressOut, "\rImporting %d/%d (%3.0f%%)", processed, total, p.Fraction()*100)
				}

				f.VerboseLog("importing %s", path)
				job := c.StartImport(ctx, path, progress)
				result, err := job.Wait()
				if !noProgress {
					fmt.Fprintln(progressOut)
				}

				if errors.Is(err, context.Canceled) {
					return f.failWith(ErrCodeCancelled, ExitFailure, app.MsgImportCancelled, err)
				}
				if err != nil {
					return f.fail(err)
				}

				f.VerboseLog("%d of %d parsed rows were new", result.Inserted, result.Parsed)
				return f.Success(result.Message(), result)
			})
		},
	}
	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "do not print import progress")

	return cmd
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Export all records to CSV",
		Long: `Write every record to KNS_Exports/KNS_Export_<YYYYMMDD>.csv below the
configured export directory. A second export on the same day replaces the
file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.withSession(cmd, func(ctx context.Context, c client.Client, _ models.Session, f *OutputFormatter) error {
				result, err := c.Export(ctx)
				if err != nil {
					return f.fail(err)
				}
				return f.Success(app.MsgExported(result.Path), result)
			})
		},
	}
}
