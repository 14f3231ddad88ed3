package main

import (
	"os"

	"github.com/MKhiriev/go-game-keeper/internal/command"
	"github.com/MKhiriev/go-game-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(orNA(buildVersion), orNA(buildDate), orNA(buildCommit))

	// errors are already printed by the command
	if err := command.Execute(build); err != nil {
		os.Exit(1)
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
