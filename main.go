package main

import (
	"fmt"
	"os"

	"github.com/thenoetrevino/dressdash/cmd"
	"github.com/thenoetrevino/dressdash/internal/cli"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if !cli.IsReported(err) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(cli.ExitCode(err))
	}
}
