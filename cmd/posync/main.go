package main

import (
	"context"
	"os"

	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/cli"
	"github.com/TRENZITSOLUTIONS/POS-mobile/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	if err := cli.Execute(context.Background(), info, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}
