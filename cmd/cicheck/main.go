package main

import (
	"os"

	"github.com/bjpop/cicheck/internal/cli"
)

func main() {
	err := cli.Execute()
	os.Exit(cli.ExitCodeFor(err))
}
