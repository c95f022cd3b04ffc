package main

import (
	"os"

	"github.com/thenoetrevino/todo/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
