package main

import (
	"os"

	"github.com/abhisek/questiontag/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
