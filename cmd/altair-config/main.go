package main

import (
	"github.com/MKhiriev/altair-config/internal/cli"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cli.Execute(cli.BuildInfo{
		Version: buildVersion,
		Date:    buildDate,
		Commit:  buildCommit,
	})
}
