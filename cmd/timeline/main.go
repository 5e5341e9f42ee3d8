package main

import (
	"os"

	"github.com/Josh-Abbott/timeline-schedule-go/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
