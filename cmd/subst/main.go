package main

import (
	"fmt"
	"os"

	"github.com/sokinpui/subst"
)

func main() {
	if err := subst.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
