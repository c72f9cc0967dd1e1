package main

import (
	"os"

	"github.com/gogpu/stddraw/cmd/stddraw-demo/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
