package main

import (
	"os"

	"movieapi/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
