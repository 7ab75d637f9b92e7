package main

import (
	"os"

	"github.com/abdul-hamid-achik/lunarica/apps/cli/cmd"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	os.Exit(cmd.Execute(version, buildTime))
}
