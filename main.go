package main

import (
	"os"

	"github.com/seiyeolo/park-golf-master/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
