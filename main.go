package main

import (
	"os"

	"github.com/tzbucket/tzbucket/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
