package main

import (
	"os"

	"github.com/thenoetrevino/fete/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
