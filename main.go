package main

import (
	"os"

	"github.com/magnhaug/rp/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
