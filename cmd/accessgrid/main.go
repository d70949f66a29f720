package main

import (
	"os"

	"github.com/access-grid/accessgrid-go/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
