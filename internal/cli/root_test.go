// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-kns/models"
)

// knsEnv is an isolated data directory for end-to-end command runs.
type knsEnv struct {
	t   *testing.T
	dir string
}

func newKNSEnv(t *testing.T) *knsEnv {
	t.Helper()
	t.Setenv("APP_DEFAULT_USERNAME", "123")
	t.Setenv("APP_DEFAULT_PASSWORD", "123")
	t.Setenv("CONFIG", "")

	return &knsEnv{t: t, dir: t.TempDir()}
}

type runResult struct {
	code   int
	stdout string
	stderr string
}

// run executes `kns <command> <storage flags> <login> <rest...>`. Flags in
// rest override the defaults because pflag keeps the last value.
func (e *knsEnv) run(command string, rest ...string) runResult {
	e.t.Helper()

	args := []string{
		command,
		"--db-driver", "sqlite3",
		"--dsn", filepath.Join(e.dir, "kns.db"),
		"--photo-dir", filepath.Join(e.dir, "photos"),
		"--export-dir", filepath.Join(e.dir, "Documents"),
		"--credentials-file", filepath.Join(e.dir, "credentials.json"),
		"--log-dir", filepath.Join(e.dir, "logs"),
		"-u", "123",
		"-p", "123",
	}
	args = append(args, rest...)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd := NewRootCommand(models.NewAppBuildInfo("v1.2.3", "2026-10-01", "abc1234"))
	code := Execute(context.Background(), cmd, args, stdout, stderr)

	return runResult{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func (e *knsEnv) addRecord(name, aadhaar, pan string) models.Record {
	e.t.Helper()

	res := e.run("add", "--format", "json", "--name", name, "--aadhaar", aadhaar, "--pan", pan)
	require.Equal(e.t, ExitSuccess, res.code, res.stdout+res.stderr)

	var resp struct {
		Data models.Record `json:"data"`
	}
	require.NoError(e.t, json.Unmarshal([]byte(res.stdout), &resp))
	return resp.Data
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand(models.NewAppBuildInfo("", "", ""))
	require.NotNil(t, cmd)
	assert.Equal(t, "kns", cmd.Use)
	assert.Contains(t, cmd.Long, "identity records")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand(models.NewAppBuildInfo("", "", ""))
	commands := []string{"add", "edit", "delete", "show", "list", "search", "import", "export", "passwd", "watch", "version"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand(models.NewAppBuildInfo("", "", ""))

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	usernameFlag := cmd.PersistentFlags().Lookup("username")
	require.NotNil(t, usernameFlag)
	assert.Equal(t, "u", usernameFlag.Shorthand)

	passwordFlag := cmd.PersistentFlags().Lookup("password")
	require.NotNil(t, passwordFlag)
	assert.Equal(t, "p", passwordFlag.Shorthand)

	for _, name := range []string{"config", "db-driver", "dsn", "photo-dir", "export-dir", "credentials-file", "log-dir", "log-level", "queue-size"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), "config flag %s", name)
	}
}

func TestRecordFlags(t *testing.T) {
	cmd := NewRootCommand(models.NewAppBuildInfo("", "", ""))

	for _, name := range []string{"add", "edit"} {
		subCmd, _, err := cmd.Find([]string{name})
		require.NoError(t, err)
		for _, flag := range []string{"name", "aadhaar", "pan", "dob", "mobile", "account", "cif", "address", "remark", "photo"} {
			assert.NotNil(t, subCmd.Flags().Lookup(flag), "%s --%s", name, flag)
		}
	}
}

func TestInvalidFormat(t *testing.T) {
	env := newKNSEnv(t)

	res := env.run("list", "--format", "xml")
	assert.Equal(t, ExitCommandError, res.code)
	assert.Contains(t, res.stderr, `invalid format "xml"`)
}

func TestUnknownFlag(t *testing.T) {
	env := newKNSEnv(t)

	res := env.run("list", "--bogus")
	assert.Equal(t, ExitCommandError, res.code)
}

func TestVersionSkipsLogin(t *testing.T) {
	stdout := &bytes.Buffer{}
	cmd := NewRootCommand(models.NewAppBuildInfo("v1.2.3", "", "abc1234"))

	code := Execute(context.Background(), cmd, []string{"version"}, stdout, &bytes.Buffer{})
	require.Equal(t, ExitSuccess, code)
	assert.Equal(t, "Build version: v1.2.3\nBuild date: N/A\nBuild commit: abc1234\n", stdout.String())
}

func TestLoginGate(t *testing.T) {
	env := newKNSEnv(t)

	res := env.run("list", "-p", "wrong")
	assert.Equal(t, ExitAuthFailure, res.code)
	assert.Contains(t, res.stdout, "Invalid username or password")
	assert.Empty(t, res.stderr)
}

func TestRecordLifecycle(t *testing.T) {
	env := newKNSEnv(t)

	asha := env.addRecord("Asha Rao", "1234-5678-9012", "abcde1234f")
	assert.Positive(t, asha.ID)
	assert.Equal(t, "ABCDE1234F", asha.PAN)
	vikram := env.addRecord("Vikram Singh", "2345-6789-0123", "pqrsx6789k")

	res := env.run("list")
	require.Equal(t, ExitSuccess, res.code)
	assert.Contains(t, res.stdout, "Asha Rao")
	assert.Contains(t, res.stdout, "Vikram Singh")

	res = env.run("search", "name", "Vik")
	require.Equal(t, ExitSuccess, res.code)
	assert.Contains(t, res.stdout, "Vikram Singh")
	assert.NotContains(t, res.stdout, "Asha Rao")

	res = env.run("search", "name", "Nobody")
	require.Equal(t, ExitSuccess, res.code)
	assert.Equal(t, "No records found with the specified Name.\n", res.stdout)

	res = env.run("delete", "1")
	require.Equal(t, ExitSuccess, res.code)
	assert.Contains(t, res.stdout, "Record deleted.")

	res = env.run("search", "aadhaar", "")
	require.Equal(t, ExitSuccess, res.code)
	assert.NotContains(t, res.stdout, "Asha Rao")
	assert.Contains(t, res.stdout, "Vikram Singh")

	res = env.run("show", "1")
	assert.Equal(t, ExitFailure, res.code)
	assert.Contains(t, res.stdout, "Record not found.")

	res = env.run("show", "2", "--format", "json")
	require.Equal(t, ExitSuccess, res.code)
	var resp struct {
		Data models.Record `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &resp))
	assert.Equal(t, vikram, resp.Data)
}

func TestAddRejectsInvalidRecord(t *testing.T) {
	env := newKNSEnv(t)

	res := env.run("add", "--aadhaar", "1234-5678-9012")
	assert.Equal(t, ExitCommandError, res.code)
	assert.Contains(t, res.stdout, "Please fill all mandatory fields.")

	res = env.run("add", "--name", "Asha", "--aadhaar", "123456789012")
	assert.Equal(t, ExitCommandError, res.code)
}

func TestAddDuplicateIsIgnored(t *testing.T) {
	env := newKNSEnv(t)
	env.addRecord("Asha Rao", "1234-5678-9012", "ABCDE1234F")

	res := env.run("add", "--name", "Asha Rao", "--aadhaar", "1234-5678-9012", "--pan", "ABCDE1234F")
	require.Equal(t, ExitSuccess, res.code)
	assert.Equal(t, "An identical record already exists; nothing was saved.\n", res.stdout)
}

func TestAddWithPhoto(t *testing.T) {
	env := newKNSEnv(t)
	photo := filepath.Join(env.dir, "face.jpg")
	require.NoError(t, os.WriteFile(photo, []byte("jpeg"), 0o600))

	res := env.run("add", "--format", "json", "--name", "Asha", "--aadhaar", "1234-5678-9012", "--photo", photo)
	require.Equal(t, ExitSuccess, res.code, res.stdout)

	var resp struct {
		Data models.Record `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &resp))
	require.NotNil(t, resp.Data.ImageURI)

	data, err := os.ReadFile(*resp.Data.ImageURI)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", string(data))
}

func TestAddDuplicateWithPhotoLeavesNoCopy(t *testing.T) {
	env := newKNSEnv(t)
	env.addRecord("Asha Rao", "1234-5678-9012", "ABCDE1234F")
	photo := filepath.Join(env.dir, "face.jpg")
	require.NoError(t, os.WriteFile(photo, []byte("jpeg"), 0o600))

	res := env.run("add", "--name", "Asha Rao", "--aadhaar", "1234-5678-9012", "--pan", "ABCDE1234F", "--photo", photo)
	require.Equal(t, ExitSuccess, res.code, res.stdout)
	assert.Contains(t, res.stdout, "An identical record already exists")

	entries, err := os.ReadDir(filepath.Join(env.dir, "photos"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestEditChangesOnlyGivenFields(t *testing.T) {
	env := newKNSEnv(t)
	asha := env.addRecord("Asha Rao", "1234-5678-9012", "ABCDE1234F")
	vikram := env.addRecord("Vikram Singh", "2345-6789-0123", "PQRSX6789K")

	res := env.run("edit", "1", "--mobile", "9876543210", "--pan", "zzzzz9999z")
	require.Equal(t, ExitSuccess, res.code, res.stdout)
	assert.Contains(t, res.stdout, "Record updated successfully.")

	res = env.run("list", "--format", "json")
	require.Equal(t, ExitSuccess, res.code)
	var resp struct {
		Data []models.Record `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &resp))
	require.Len(t, resp.Data, 2)

	asha.Mobile = "9876543210"
	asha.PAN = "ZZZZZ9999Z"
	assert.Equal(t, asha, resp.Data[0])
	assert.Equal(t, vikram, resp.Data[1])
}

func TestEditRejectsBadID(t *testing.T) {
	env := newKNSEnv(t)

	res := env.run("edit", "abc", "--name", "x")
	assert.Equal(t, ExitCommandError, res.code)
	assert.Contains(t, res.stderr, `invalid record id "abc"`)
}

func TestImportAndExport(t *testing.T) {
	env := newKNSEnv(t)
	src := filepath.Join(env.dir, "in.csv")
	content := "Name,Aadhaar,PAN,DOB,Mobile,Bank Account,CIF,Address,Remark\n" +
		"Asha,1234-5678-9012,ABCDE1234F,01-02-1990,9876543210,001122,CIF01,Pune,\n" +
		"broken,row\n" +
		"Vikram,2345-6789-0123,PQRSX6789K,,,334455,CIF02,\"Delhi, Sector 5\",vip\n"
	require.NoError(t, os.WriteFile(src, []byte(content), 0o600))

	res := env.run("import", src)
	require.Equal(t, ExitSuccess, res.code, res.stdout+res.stderr)
	assert.Contains(t, res.stdout, "Successfully imported 2 records.")
	assert.Contains(t, res.stderr, "Importing 3/3")

	res = env.run("export", "--format", "json")
	require.Equal(t, ExitSuccess, res.code, res.stdout)
	var resp struct {
		Data models.ExportResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &resp))
	assert.Equal(t, 2, resp.Data.Records)
	assert.Equal(t, "text/csv", resp.Data.MIMEType)
	assert.Equal(t, filepath.Join(env.dir, "Documents", "KNS_Exports"), filepath.Dir(resp.Data.Path))

	exported, err := os.ReadFile(resp.Data.Path)
	require.NoError(t, err)
	assert.Contains(t, string(exported), `"Vikram","2345-6789-0123"`)
}

func TestImportRejectsNonCSV(t *testing.T) {
	env := newKNSEnv(t)

	res := env.run("import", filepath.Join(env.dir, "records.txt"), "--no-progress")
	assert.Equal(t, ExitCommandError, res.code)
	assert.Contains(t, res.stdout, "please select a CSV file")
}

func TestImportEmptyFile(t *testing.T) {
	env := newKNSEnv(t)
	src := filepath.Join(env.dir, "empty.csv")
	require.NoError(t, os.WriteFile(src, []byte("Name,Aadhaar,PAN,DOB,Mobile,Bank Account,CIF,Address,Remark\n"), 0o600))

	res := env.run("import", src, "--no-progress")
	assert.Equal(t, ExitFailure, res.code)
	assert.Contains(t, res.stdout, "The selected file is empty.")
}

func TestPasswd(t *testing.T) {
	env := newKNSEnv(t)

	res := env.run("passwd", "--new-username", "admin", "--new-password", "s3cret", "--confirm", "other")
	assert.Equal(t, ExitCommandError, res.code)
	assert.Contains(t, res.stdout, "Passwords do not match.")

	res = env.run("passwd", "--new-username", "admin", "--new-password", "s3cret", "--confirm", "s3cret")
	require.Equal(t, ExitSuccess, res.code, res.stdout)
	assert.Equal(t, "Credentials changed successfully.\n", res.stdout)

	res = env.run("list")
	assert.Equal(t, ExitAuthFailure, res.code)

	res = env.run("list", "-u", "admin", "-p", "s3cret")
	assert.Equal(t, ExitSuccess, res.code)
	assert.Equal(t, "No records found.\n", res.stdout)
}

func TestWatchPrintsSnapshot(t *testing.T) {
	env := newKNSEnv(t)
	env.addRecord("Asha Rao", "1234-5678-9012", "ABCDE1234F")

	res := env.run("watch", "name", "Asha", "-n", "1")
	require.Equal(t, ExitSuccess, res.code, res.stdout)
	assert.Contains(t, res.stdout, "Asha Rao")

	res = env.run("watch", "nickname", "Asha", "-n", "1")
	assert.Equal(t, ExitCommandError, res.code)
}
