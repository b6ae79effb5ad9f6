// Package main is the entry point for the jdbcctl CLI binary.
package main

import (
	"os"

	cli "jdbc-bridge/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
