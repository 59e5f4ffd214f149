// Package main provides the CLI entrypoint for infa2sql.
//
// infa2sql converts Informatica workflow exports to ANSI SQL:
//   - Loads PowerCenter XML or IDMC JSON workflows
//   - Resolves each mapping's sources, targets and fields
//   - Joins sources on shared columns and projects target columns
//   - Prints or writes one INSERT INTO ... SELECT statement per target
package main

import (
	"os"

	"infa2sql/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
