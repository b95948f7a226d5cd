package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"

	"github.com/seashell-books/storefront/cmd"
)

func main() {
	// version is stamped by hand on release
	const version = "0.3.0"

	err := fang.Execute(context.Background(), cmd.NewRootCmd(),
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt, os.Kill),
	)
	if err != nil {
		os.Exit(1)
	}
}
