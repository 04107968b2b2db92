package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/dotprov/cmd/dotprov"
	"github.com/arthur-debert/dotprov/internal/version"
)

func main() {
	rootCmd := dotprov.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "DOTPROV",
		Section: "1",
		Source:  "dotprov " + version.Version,
		Manual:  "dotprov manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
