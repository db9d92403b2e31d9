// Package main is the entry point for the vehicle-appraisal server.
package main

import (
	"os"

	"github.com/valuelab/vehicle-appraisal/cmd/vehicle-appraisal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
