package main

import (
	"os"

	"github.com/idilsaglam/contactform/internal/cli"
)

func main() {
	os.Exit(cli.Main())
}
