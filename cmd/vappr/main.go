// Package main is the entry point for the vappr CLI client.
package main

import (
	"github.com/valuelab/vehicle-appraisal/cmd/vappr/cmd"
)

func main() {
	cmd.Execute()
}
