package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/dotprov/cmd/dotprov"
	"github.com/arthur-debert/dotprov/pkg/errors"
	"github.com/arthur-debert/dotprov/pkg/style"
)

func main() {
	rootCmd := dotprov.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		styles := style.New(os.Stderr, false)
		fmt.Fprintln(os.Stderr, styles.Error.Render("Error:"), errors.Diagnostic(err))
		os.Exit(1)
	}
}
