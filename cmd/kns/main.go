// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-kns/internal/cli"
	"github.com/MKhiriev/go-kns/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	code := cli.Execute(ctx, cli.NewRootCommand(buildInfo), os.Args[1:], os.Stdout, os.Stderr)

	stop()
	os.Exit(code)
}
