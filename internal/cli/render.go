// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/MKhiriev/go-kns/models"
)

// recordTable renders a result set as aligned columns.
type recordTable []models.Record

func newRecordTable(records []models.Record) recordTable {
	if records == nil {
		return recordTable{}
	}
	return recordTable(records)
}

func (t recordTable) renderText(w io.Writer) error {
	if len(t) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tName\tAadhaar\tPAN\tDOB\tMobile\tAccount No\tCIF")
	for _, r := range t {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.Name, r.Aadhaar, r.PAN, r.DOB, r.Mobile, r.BankAccount, r.CIF)
	}
	return tw.Flush()
}

// recordDetail renders every field of a single record.
type recordDetail models.Record

func (d recordDetail) renderText(w io.Writer) error {
	photo := ""
	if d.ImageURI != nil {
		photo = *d.ImageURI
	}

	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	rows := [][2]string{
		{"ID", fmt.Sprint(d.ID)},
		{"Name", d.Name},
		{"Aadhaar", d.Aadhaar},
		{"PAN", d.PAN},
		{"DOB", d.DOB},
		{"Mobile", d.Mobile},
		{"Account No", d.BankAccount},
		{"CIF", d.CIF},
		{"Address", d.Address},
		{"Remark", d.Remark},
		{"Photo", photo},
	}
	for _, row := range rows {
		fmt.Fprintf(tw, "%s:\t%s\n", row[0], row[1])
	}
	return tw.Flush()
}

type buildInfoView struct {
	Version string `json:"version" yaml:"version"`
	Date    string `json:"date" yaml:"date"`
	Commit  string `json:"commit" yaml:"commit"`
}

func newBuildInfoView(info models.AppBuildInfo) buildInfoView {
	return buildInfoView{
		Version: info.BuildVersion(),
		Date:    info.BuildDate(),
		Commit:  info.BuildCommit(),
	}
}

func (v buildInfoView) renderText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Build version: %s\nBuild date: %s\nBuild commit: %s\n", v.Version, v.Date, v.Commit)
	return err
}
