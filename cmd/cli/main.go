// Package main is the entry point for the phoenix CLI binary.
package main

import (
	"os"

	cli "github.com/jordaneaster/phoenix/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
