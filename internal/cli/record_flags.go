// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/MKhiriev/go-kns/models"
)

// recordFlags binds one flag per editable record field.
type recordFlags struct {
	values models.Record
	photo  string
}

func bindRecordFlags(fs *pflag.FlagSet) *recordFlags {
	rf := &recordFlags{}

	fs.StringVar(&rf.values.Name, "name", "", "full name")
	fs.StringVar(&rf.values.Aadhaar, "aadhaar", "", "Aadhaar number (1234-5678-9012)")
	fs.StringVar(&rf.values.PAN, "pan", "", "PAN, stored uppercased")
	fs.StringVar(&rf.values.DOB, "dob", "", "date of birth (DD-MM-YYYY)")
	fs.StringVar(&rf.values.Mobile, "mobile", "", "mobile number, at most 10 digits")
	fs.StringVar(&rf.values.BankAccount, "account", "", "bank account number")
	fs.StringVar(&rf.values.CIF, "cif", "", "CIF number")
	fs.StringVar(&rf.values.Address, "address", "", "address")
	fs.StringVar(&rf.values.Remark, "remark", "", "remark")
	fs.StringVar(&rf.photo, "photo", "", "photo file to copy into the photo directory")

	return rf
}

// apply copies the flags that were set on the command line onto r.
func (rf *recordFlags) apply(fs *pflag.FlagSet, r *models.Record) {
	fields := map[string]*string{
		"name":    &r.Name,
		"aadhaar": &r.Aadhaar,
		"pan":     &r.PAN,
		"dob":     &r.DOB,
		"mobile":  &r.Mobile,
		"account": &r.BankAccount,
		"cif":     &r.CIF,
		"address": &r.Address,
		"remark":  &r.Remark,
	}
	sources := map[string]string{
		"name":    rf.values.Name,
		"aadhaar": rf.values.Aadhaar,
		"pan":     rf.values.PAN,
		"dob":     rf.values.DOB,
		"mobile":  rf.values.Mobile,
		"account": rf.values.BankAccount,
		"cif":     rf.values.CIF,
		"address": rf.values.Address,
		"remark":  rf.values.Remark,
	}

	for name, dst := range fields {
		if fs.Changed(name) {
			*dst = sources[name]
		}
	}
}

// openPhoto opens the --photo file. The returned file is nil when no photo
// was given.
func (rf *recordFlags) openPhoto() (*os.File, error) {
	if rf.photo == "" {
		return nil, nil
	}
	f, err := os.Open(rf.photo)
	if err != nil {
		return nil, fmt.Errorf("open photo: %w", err)
	}
	return f, nil
}

func parseRecordID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, NewExitError(ExitCommandError, fmt.Sprintf("invalid record id %q", arg))
	}
	return id, nil
}
