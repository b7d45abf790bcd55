package main

import (
	"fmt"
	"os"

	"tscatalog/cmd/tscat/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "tscat: %v\n", err)
		os.Exit(1)
	}
}
